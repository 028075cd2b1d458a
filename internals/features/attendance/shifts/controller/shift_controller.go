package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "hadirku_backend/internals/features/attendance/shifts/dto"
	service "hadirku_backend/internals/features/attendance/shifts/service"
	helper "hadirku_backend/internals/helpers"
)

/* ===============================
   Controller & Constructor
=============================== */

type ShiftController struct {
	Service *service.ShiftService
}

func NewShiftController(db *gorm.DB) *ShiftController {
	return &ShiftController{Service: service.NewShiftService(db)}
}

/* ===============================
   CHECK-IN (open shift)
=============================== */

// POST /api/employee/checkin
func (ctrl *ShiftController) CheckIn(c *fiber.Ctx) error {
	var req dto.OpenShiftRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Missing Fields")
	}

	shift, err := ctrl.Service.OpenShift(c.UserContext(), req.UserID)
	if err != nil {
		return err
	}

	return helper.JsonCreated(c, "Shift Created", fiber.Map{
		"shift": dto.FromShiftModel(*shift),
	})
}

/* ===============================
   CHECK-OUT (close shift)
=============================== */

// POST /api/employee/updateshift
func (ctrl *ShiftController) UpdateShift(c *fiber.Ctx) error {
	var req dto.CloseShiftRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Missing Fields")
	}

	updated, err := ctrl.Service.CloseShift(c.UserContext(), req.ShiftID, service.CloseShiftInput{
		CheckinTime:   req.CheckinTime,
		CheckoutTime:  req.CheckoutTime,
		AmountInside:  req.AmountInside,
		AmountOutside: req.AmountOutside,
		AmountChecked: req.AmountChecked,
	})
	if err != nil {
		return err
	}

	return helper.JsonUpdated(c, "Shift Updated", fiber.Map{
		"updated_shift": dto.FromShiftModel(*updated),
	})
}

/* ===============================
   READ (resume + riwayat)
=============================== */

// GET /api/employee/activeshift/:user_id
func (ctrl *ShiftController) ActiveShift(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("user_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "User ID tidak valid")
	}

	shift, err := ctrl.Service.ActiveShift(c.UserContext(), userID)
	if err != nil {
		return err
	}

	return helper.JsonOK(c, "Active Shift Found", fiber.Map{
		"shift": dto.FromShiftModel(*shift),
	})
}

// GET /api/employee/shifts/:user_id?page=&per_page=
func (ctrl *ShiftController) ListByUser(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("user_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "User ID tidak valid")
	}

	p := helper.ResolvePaging(c, 20, 100)
	shifts, total, err := ctrl.Service.ListByUser(c.UserContext(), userID, p.Offset, p.Limit)
	if err != nil {
		return err
	}

	return helper.JsonList(c, "Shifts Found",
		dto.FromShiftModels(shifts),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage),
	)
}
