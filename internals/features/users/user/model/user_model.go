package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role akun. ORGANIZATION/EDUCATIONAL = akun pemilik tenant,
// EMPLOYEE/STUDENT = akun anggota yang melakukan absensi.
const (
	RoleOrganization = "ORGANIZATION"
	RoleEducational  = "EDUCATIONAL"
	RoleEmployee     = "EMPLOYEE"
	RoleStudent      = "STUDENT"
)

// UserModel merepresentasikan tabel users di database
type UserModel struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name     string    `gorm:"size:100;not null" json:"name"`
	UserName string    `gorm:"size:100;uniqueIndex;not null" json:"username"`
	Email    *string   `gorm:"size:255" json:"email,omitempty"`
	Phone    *string   `gorm:"size:30" json:"phone,omitempty"`
	// hash bcrypt, tidak pernah keluar lewat JSON
	HashedPassword string `gorm:"not null" json:"-"`
	Role           string `gorm:"type:varchar(20);not null" json:"role"`

	OrganizationID *uuid.UUID `gorm:"type:uuid;index" json:"organization_id,omitempty"`
	EducationalID  *uuid.UUID `gorm:"type:uuid;index" json:"educational_id,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}

func (m *UserModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
