package dto

import "github.com/google/uuid"

/* ===================== REQUESTS ===================== */

// POST /api/auth/register — registrasi tenant (organisasi / institusi pendidikan)
// Latitude/Longitude/Radius pointer supaya "tidak dikirim" bisa dibedakan dari nol.
type RegisterRequest struct {
	Name      string   `json:"name" validate:"required"`
	Type      string   `json:"type" validate:"required"`
	Username  string   `json:"username" validate:"required"`
	Password  string   `json:"password" validate:"required"`
	Latitude  *float64 `json:"latitude" validate:"required"`
	Longitude *float64 `json:"longitude" validate:"required"`
	Radius    *int     `json:"radius" validate:"required"`
}

// POST /api/auth/organization/createemployee
// POST /api/auth/educational/createstudent
type CreateMemberRequest struct {
	Name        string `json:"name" validate:"required"`
	Username    string `json:"username" validate:"required"`
	Password    string `json:"password" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	PhoneNumber string `json:"phone_number" validate:"required"`

	// nama tenant tempat anggota didaftarkan (salah satu terisi sesuai endpoint)
	CurrentOrganization string `json:"current_organization"`
	CurrentEducational  string `json:"current_educational"`
}

// POST /api/auth/organization/updateemployee
type UpdateMemberRequest struct {
	OldUsername string `json:"old_username" validate:"required"`
	Name        string `json:"name" validate:"required"`
	Username    string `json:"username" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	PhoneNumber string `json:"phone_number" validate:"required"`
	// kosong = password lama dipertahankan
	Password string `json:"password"`

	CurrentOrganization string `json:"current_organization" validate:"required"`
}

// POST /api/auth/user/delete
type DeleteUserRequest struct {
	UserID uuid.UUID `json:"user_id" validate:"required"`
}
