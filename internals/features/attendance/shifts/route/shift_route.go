package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "hadirku_backend/internals/features/attendance/shifts/controller"
	middlewares "hadirku_backend/internals/middlewares"
)

// ShiftRoutes memasang endpoint absensi di bawah /api/employee
func ShiftRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewShiftController(db)

	employee := api.Group("/employee")
	// limiter ketat anti double-submit dari klien
	employee.Post("/checkin", middlewares.CheckinRateLimiter(), ctrl.CheckIn)
	employee.Post("/updateshift", middlewares.CheckinRateLimiter(), ctrl.UpdateShift)
	employee.Get("/activeshift/:user_id", ctrl.ActiveShift)
	employee.Get("/shifts/:user_id", ctrl.ListByUser)
}
