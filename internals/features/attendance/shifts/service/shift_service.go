package service

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	model "hadirku_backend/internals/features/attendance/shifts/model"
	helper "hadirku_backend/internals/helpers"
)

// ShiftService mengelola siklus hidup shift: Open → Closed, satu transisi maju.
// Clock di-inject supaya instant check-in bisa dibuat deterministik di test.
type ShiftService struct {
	DB  *gorm.DB
	Now func() time.Time
}

func NewShiftService(db *gorm.DB) *ShiftService {
	return &ShiftService{DB: db, Now: time.Now}
}

func (s *ShiftService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// CloseShiftInput membawa payload close dari route layer.
type CloseShiftInput struct {
	CheckinTime   string
	CheckoutTime  string
	AmountInside  int
	AmountOutside int
	AmountChecked int
}

// OpenShift membuka satu siklus absensi baru untuk user:
// date + checkin_time diambil dari clock saat ini, completed=false.
func (s *ShiftService) OpenShift(ctx context.Context, userID uuid.UUID) (*model.ShiftModel, error) {
	if userID == uuid.Nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Missing Fields")
	}

	now := s.now()
	shift := &model.ShiftModel{
		UserID:      userID,
		Date:        datatypes.Date(now),
		CheckinTime: now,
		Completed:   false,
	}

	if err := s.DB.WithContext(ctx).Create(shift).Error; err != nil {
		if helper.IsForeignKeyViolation(err) {
			return nil, fiber.NewError(fiber.StatusBadRequest, "User Not Found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat shift")
	}
	return shift, nil
}

// CloseShift menutup shift: hitung durasi kerja (menit utuh) lalu set
// checkout_time, completed=true, duration_worked dan ketiga counter geofence
// dalam satu UPDATE.
//
// checkin_time dibaca dari record tersimpan, bukan dari klien; salinan yang
// dikirim klien hanya divalidasi kecocokannya. Close kedua ditolak 409 lewat
// compare-and-swap pada kolom completed, jadi tidak ada last-write-wins.
func (s *ShiftService) CloseShift(ctx context.Context, shiftID uuid.UUID, in CloseShiftInput) (*model.ShiftModel, error) {
	if shiftID == uuid.Nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Missing Fields")
	}

	var shift model.ShiftModel
	if err := s.DB.WithContext(ctx).First(&shift, "id = ?", shiftID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Shift Not Found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil shift")
	}
	if shift.Completed {
		return nil, fiber.NewError(fiber.StatusConflict, "Shift Already Completed")
	}

	checkout, err := time.Parse(time.RFC3339, in.CheckoutTime)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid Checkout Time")
	}

	if in.CheckinTime != "" {
		supplied, err := time.Parse(time.RFC3339, in.CheckinTime)
		if err != nil {
			return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid Checkin Time")
		}
		// toleransi sub-detik: DB menyimpan presisi mikro, klien kirim presisi detik
		if !supplied.Truncate(time.Second).Equal(shift.CheckinTime.Truncate(time.Second)) {
			return nil, fiber.NewError(fiber.StatusBadRequest, "Checkin Time Mismatch")
		}
	}

	if checkout.Before(shift.CheckinTime) {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Checkout Before Checkin")
	}

	// menit utuh, truncate ke nol; checkout == checkin → 0
	minutes := int(checkout.Sub(shift.CheckinTime) / time.Minute)

	res := s.DB.WithContext(ctx).Model(&model.ShiftModel{}).
		Where("id = ? AND completed = ?", shiftID, false).
		Updates(map[string]interface{}{
			"checkout_time":   checkout,
			"completed":       true,
			"duration_worked": minutes,
			"amount_inside":   in.AmountInside,
			"amount_outside":  in.AmountOutside,
			"amount_checked":  in.AmountChecked,
		})
	if res.Error != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal menutup shift")
	}
	if res.RowsAffected == 0 {
		// kalah race dengan close lain di antara First dan Updates
		return nil, fiber.NewError(fiber.StatusConflict, "Shift Already Completed")
	}

	if err := s.DB.WithContext(ctx).First(&shift, "id = ?", shiftID).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil shift")
	}
	return &shift, nil
}

// ActiveShift mengambil shift terbuka terakhir milik user (untuk resume di UI).
func (s *ShiftService) ActiveShift(ctx context.Context, userID uuid.UUID) (*model.ShiftModel, error) {
	if userID == uuid.Nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Missing Fields")
	}
	var shift model.ShiftModel
	if err := s.DB.WithContext(ctx).
		Where("user_id = ? AND completed = ?", userID, false).
		Order("checkin_time DESC").
		First(&shift).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "No Active Shift")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil shift")
	}
	return &shift, nil
}

// ListByUser mengambil riwayat shift milik user, terbaru dulu.
func (s *ShiftService) ListByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]model.ShiftModel, int64, error) {
	if userID == uuid.Nil {
		return nil, 0, fiber.NewError(fiber.StatusBadRequest, "Missing Fields")
	}

	q := s.DB.WithContext(ctx).Model(&model.ShiftModel{}).Where("user_id = ?", userID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, fiber.NewError(fiber.StatusInternalServerError, "Gagal menghitung shift")
	}

	var shifts []model.ShiftModel
	if err := q.Order("checkin_time DESC").Offset(offset).Limit(limit).Find(&shifts).Error; err != nil {
		return nil, 0, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil shift")
	}
	return shifts, total, nil
}
