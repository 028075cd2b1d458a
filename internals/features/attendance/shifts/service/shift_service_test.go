package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	model "hadirku_backend/internals/features/attendance/shifts/model"
	userModel "hadirku_backend/internals/features/users/user/model"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&userModel.UserModel{}, &model.ShiftModel{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedUser(t *testing.T, db *gorm.DB) userModel.UserModel {
	t.Helper()
	user := userModel.UserModel{
		Name:           "Budi",
		UserName:       "budi@acme",
		HashedPassword: "x",
		Role:           userModel.RoleEmployee,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func fixedClock(instant time.Time) func() time.Time {
	return func() time.Time { return instant }
}

func fiberCode(t *testing.T, err error) int {
	t.Helper()
	var fe *fiber.Error
	if !errors.As(err, &fe) {
		t.Fatalf("expected *fiber.Error, got %T (%v)", err, err)
	}
	return fe.Code
}

var checkinInstant = time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)

func TestOpenShift(t *testing.T) {
	db := openTestDB(t)
	user := seedUser(t, db)

	svc := &ShiftService{DB: db, Now: fixedClock(checkinInstant)}
	shift, err := svc.OpenShift(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("OpenShift: %v", err)
	}

	if shift.ID == uuid.Nil {
		t.Error("expected generated shift id")
	}
	if shift.Completed {
		t.Error("new shift must not be completed")
	}
	if shift.CheckoutTime != nil {
		t.Error("new shift must not have checkout_time")
	}
	if !shift.CheckinTime.Equal(checkinInstant) {
		t.Errorf("checkin_time = %v, want %v", shift.CheckinTime, checkinInstant)
	}
	if got := time.Time(shift.Date).Format("2006-01-02"); got != "2024-01-01" {
		t.Errorf("date = %s, want 2024-01-01", got)
	}
}

func TestOpenShiftMissingUserID(t *testing.T) {
	db := openTestDB(t)
	svc := NewShiftService(db)

	_, err := svc.OpenShift(context.Background(), uuid.Nil)
	if code := fiberCode(t, err); code != fiber.StatusBadRequest {
		t.Errorf("status = %d, want 400", code)
	}
}

func TestOpenShiftUnknownUser(t *testing.T) {
	db := openTestDB(t)
	svc := NewShiftService(db)

	_, err := svc.OpenShift(context.Background(), uuid.New())
	if err == nil {
		t.Fatal("expected error for unknown user")
	}
	if code := fiberCode(t, err); code != fiber.StatusBadRequest {
		t.Errorf("status = %d, want 400", code)
	}
}

func openFixedShift(t *testing.T, db *gorm.DB) (*ShiftService, *model.ShiftModel) {
	t.Helper()
	user := seedUser(t, db)
	svc := &ShiftService{DB: db, Now: fixedClock(checkinInstant)}
	shift, err := svc.OpenShift(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("OpenShift: %v", err)
	}
	return svc, shift
}

func TestCloseShift(t *testing.T) {
	db := openTestDB(t)
	svc, shift := openFixedShift(t, db)

	updated, err := svc.CloseShift(context.Background(), shift.ID, CloseShiftInput{
		CheckinTime:   "2024-01-01T09:00:00Z",
		CheckoutTime:  "2024-01-01T17:30:00Z",
		AmountInside:  3,
		AmountOutside: 1,
		AmountChecked: 4,
	})
	if err != nil {
		t.Fatalf("CloseShift: %v", err)
	}

	if !updated.Completed {
		t.Error("expected completed = true")
	}
	if updated.CheckoutTime == nil {
		t.Fatal("expected checkout_time to be set")
	}
	if updated.DurationWorked == nil || *updated.DurationWorked != 510 {
		t.Errorf("duration_worked = %v, want 510", updated.DurationWorked)
	}
	if *updated.AmountInside != 3 || *updated.AmountOutside != 1 || *updated.AmountChecked != 4 {
		t.Errorf("counters = %d/%d/%d, want 3/1/4",
			*updated.AmountInside, *updated.AmountOutside, *updated.AmountChecked)
	}
}

func TestCloseShiftZeroDuration(t *testing.T) {
	db := openTestDB(t)
	svc, shift := openFixedShift(t, db)

	updated, err := svc.CloseShift(context.Background(), shift.ID, CloseShiftInput{
		CheckoutTime: "2024-01-01T09:00:00Z",
	})
	if err != nil {
		t.Fatalf("CloseShift: %v", err)
	}
	if updated.DurationWorked == nil || *updated.DurationWorked != 0 {
		t.Errorf("duration_worked = %v, want 0", updated.DurationWorked)
	}
}

func TestCloseShiftTruncatesPartialMinute(t *testing.T) {
	db := openTestDB(t)
	svc, shift := openFixedShift(t, db)

	// 59 detik → 0 menit utuh
	updated, err := svc.CloseShift(context.Background(), shift.ID, CloseShiftInput{
		CheckoutTime: "2024-01-01T09:00:59Z",
	})
	if err != nil {
		t.Fatalf("CloseShift: %v", err)
	}
	if *updated.DurationWorked != 0 {
		t.Errorf("duration_worked = %d, want 0", *updated.DurationWorked)
	}
}

func TestCloseShiftCheckoutBeforeCheckin(t *testing.T) {
	db := openTestDB(t)
	svc, shift := openFixedShift(t, db)

	_, err := svc.CloseShift(context.Background(), shift.ID, CloseShiftInput{
		CheckoutTime: "2024-01-01T08:59:00Z",
	})
	if code := fiberCode(t, err); code != fiber.StatusBadRequest {
		t.Errorf("status = %d, want 400", code)
	}

	// shift harus tetap terbuka setelah close gagal
	var reloaded model.ShiftModel
	if err := db.First(&reloaded, "id = ?", shift.ID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if reloaded.Completed {
		t.Error("failed close must leave shift open")
	}
}

func TestCloseShiftTwiceConflicts(t *testing.T) {
	db := openTestDB(t)
	svc, shift := openFixedShift(t, db)

	first := CloseShiftInput{
		CheckoutTime:  "2024-01-01T17:30:00Z",
		AmountInside:  3,
		AmountOutside: 1,
		AmountChecked: 4,
	}
	if _, err := svc.CloseShift(context.Background(), shift.ID, first); err != nil {
		t.Fatalf("first CloseShift: %v", err)
	}

	second := CloseShiftInput{
		CheckoutTime:  "2024-01-01T23:00:00Z",
		AmountInside:  99,
		AmountOutside: 99,
		AmountChecked: 99,
	}
	_, err := svc.CloseShift(context.Background(), shift.ID, second)
	if code := fiberCode(t, err); code != fiber.StatusConflict {
		t.Errorf("status = %d, want 409", code)
	}

	// nilai dari close pertama harus bertahan
	var reloaded model.ShiftModel
	if err := db.First(&reloaded, "id = ?", shift.ID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if *reloaded.DurationWorked != 510 || *reloaded.AmountInside != 3 {
		t.Errorf("second close overwrote data: duration=%d inside=%d",
			*reloaded.DurationWorked, *reloaded.AmountInside)
	}
}

func TestCloseShiftMissingID(t *testing.T) {
	db := openTestDB(t)
	svc := NewShiftService(db)

	_, err := svc.CloseShift(context.Background(), uuid.Nil, CloseShiftInput{
		CheckoutTime: "2024-01-01T17:30:00Z",
	})
	if code := fiberCode(t, err); code != fiber.StatusBadRequest {
		t.Errorf("status = %d, want 400", code)
	}
}

func TestCloseShiftNotFound(t *testing.T) {
	db := openTestDB(t)
	svc := NewShiftService(db)

	_, err := svc.CloseShift(context.Background(), uuid.New(), CloseShiftInput{
		CheckoutTime: "2024-01-01T17:30:00Z",
	})
	if code := fiberCode(t, err); code != fiber.StatusNotFound {
		t.Errorf("status = %d, want 404", code)
	}
}

func TestCloseShiftMalformedCheckout(t *testing.T) {
	db := openTestDB(t)
	svc, shift := openFixedShift(t, db)

	_, err := svc.CloseShift(context.Background(), shift.ID, CloseShiftInput{
		CheckoutTime: "01-01-2024 17:30",
	})
	if code := fiberCode(t, err); code != fiber.StatusBadRequest {
		t.Errorf("status = %d, want 400", code)
	}
}

func TestCloseShiftCheckinMismatch(t *testing.T) {
	db := openTestDB(t)
	svc, shift := openFixedShift(t, db)

	// checkin_time kiriman klien beda dengan yang tersimpan → tolak
	_, err := svc.CloseShift(context.Background(), shift.ID, CloseShiftInput{
		CheckinTime:  "2024-01-01T07:00:00Z",
		CheckoutTime: "2024-01-01T17:30:00Z",
	})
	if code := fiberCode(t, err); code != fiber.StatusBadRequest {
		t.Errorf("status = %d, want 400", code)
	}
}

func TestActiveShift(t *testing.T) {
	db := openTestDB(t)
	svc, shift := openFixedShift(t, db)

	active, err := svc.ActiveShift(context.Background(), shift.UserID)
	if err != nil {
		t.Fatalf("ActiveShift: %v", err)
	}
	if active.ID != shift.ID {
		t.Errorf("active shift id = %s, want %s", active.ID, shift.ID)
	}

	if _, err := svc.CloseShift(context.Background(), shift.ID, CloseShiftInput{
		CheckoutTime: "2024-01-01T17:30:00Z",
	}); err != nil {
		t.Fatalf("CloseShift: %v", err)
	}

	_, err = svc.ActiveShift(context.Background(), shift.UserID)
	if code := fiberCode(t, err); code != fiber.StatusNotFound {
		t.Errorf("status = %d, want 404 after close", code)
	}
}

func TestListByUser(t *testing.T) {
	db := openTestDB(t)
	user := seedUser(t, db)

	svc := NewShiftService(db)
	for i := 0; i < 3; i++ {
		instant := checkinInstant.Add(time.Duration(i) * 24 * time.Hour)
		svc.Now = fixedClock(instant)
		if _, err := svc.OpenShift(context.Background(), user.ID); err != nil {
			t.Fatalf("OpenShift #%d: %v", i, err)
		}
	}

	shifts, total, err := svc.ListByUser(context.Background(), user.ID, 0, 2)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if total != 3 {
		t.Errorf("total = %d, want 3", total)
	}
	if len(shifts) != 2 {
		t.Errorf("len = %d, want 2 (limit)", len(shifts))
	}
	// terbaru dulu
	if len(shifts) == 2 && shifts[0].CheckinTime.Before(shifts[1].CheckinTime) {
		t.Error("expected newest-first ordering")
	}
}
