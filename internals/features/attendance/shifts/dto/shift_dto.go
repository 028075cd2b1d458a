package dto

import (
	"time"

	"github.com/google/uuid"

	model "hadirku_backend/internals/features/attendance/shifts/model"
)

/* ===================== REQUESTS ===================== */

// POST /api/employee/checkin
type OpenShiftRequest struct {
	UserID uuid.UUID `json:"user_id" validate:"required"`
}

// POST /api/employee/updateshift
// CheckinTime opsional: kalau dikirim klien, hanya dicocokkan dengan nilai
// tersimpan — sumber kebenaran tetap record di DB.
type CloseShiftRequest struct {
	ShiftID       uuid.UUID `json:"shift_id" validate:"required"`
	CheckinTime   string    `json:"checkin_time" validate:"omitempty"`
	CheckoutTime  string    `json:"checkout_time" validate:"required"`
	AmountInside  int       `json:"amount_inside"`
	AmountOutside int       `json:"amount_outside"`
	AmountChecked int       `json:"amount_checked"`
}

/* ===================== RESPONSES ===================== */

type ShiftResponse struct {
	ID             uuid.UUID  `json:"id"`
	UserID         uuid.UUID  `json:"user_id"`
	Date           string     `json:"date"`
	CheckinTime    time.Time  `json:"checkin_time"`
	CheckoutTime   *time.Time `json:"checkout_time,omitempty"`
	Completed      bool       `json:"completed"`
	DurationWorked *int       `json:"duration_worked,omitempty"`
	AmountInside   *int       `json:"amount_inside,omitempty"`
	AmountOutside  *int       `json:"amount_outside,omitempty"`
	AmountChecked  *int       `json:"amount_checked,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func FromShiftModel(m model.ShiftModel) ShiftResponse {
	return ShiftResponse{
		ID:             m.ID,
		UserID:         m.UserID,
		Date:           time.Time(m.Date).Format("2006-01-02"),
		CheckinTime:    m.CheckinTime,
		CheckoutTime:   m.CheckoutTime,
		Completed:      m.Completed,
		DurationWorked: m.DurationWorked,
		AmountInside:   m.AmountInside,
		AmountOutside:  m.AmountOutside,
		AmountChecked:  m.AmountChecked,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func FromShiftModels(ms []model.ShiftModel) []ShiftResponse {
	out := make([]ShiftResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromShiftModel(m))
	}
	return out
}
