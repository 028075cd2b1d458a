package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	userModel "hadirku_backend/internals/features/users/user/model"
)

// ShiftModel = satu siklus absensi check-in → check-out untuk satu user.
//
// Invariant:
//   - Date & CheckinTime di-set sekali saat create, tidak pernah berubah.
//   - DurationWorked dan Completed=true di-set bersama, tepat sekali, saat close.
//   - Completed monoton: tidak pernah kembali ke false (tidak ada reopen/cancel).
type ShiftModel struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;not null;index:idx_shifts_user_id" json:"user_id"`

	// tanggal kalender shift dibuka, diturunkan dari instant check-in
	Date        datatypes.Date `gorm:"type:date;not null" json:"date"`
	CheckinTime time.Time      `gorm:"not null" json:"checkin_time"`

	// nil sampai shift ditutup
	CheckoutTime *time.Time `json:"checkout_time,omitempty"`
	Completed    bool       `gorm:"not null;default:false" json:"completed"`

	// menit utuh (checkout − checkin), di-set saat close
	DurationWorked *int `json:"duration_worked,omitempty"`

	// counter deteksi geofence selama shift, dikirim klien saat close.
	// Tidak divalidasi tanda/relasinya satu sama lain.
	AmountInside  *int `json:"amount_inside,omitempty"`
	AmountOutside *int `json:"amount_outside,omitempty"`
	AmountChecked *int `json:"amount_checked,omitempty"`

	User *userModel.UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (ShiftModel) TableName() string {
	return "shifts"
}

func (m *ShiftModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
