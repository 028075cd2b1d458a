package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	shiftRoute "hadirku_backend/internals/features/attendance/shifts/route"
)

func ShiftRoutes(api fiber.Router, db *gorm.DB) {
	shiftRoute.ShiftRoutes(api, db)
}
