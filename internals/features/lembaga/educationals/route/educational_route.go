package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "hadirku_backend/internals/features/lembaga/educationals/controller"
)

func EducationalRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewEducationalController(db)

	educationals := api.Group("/lembaga/educationals")
	educationals.Get("/:name", ctrl.GetByName)
	educationals.Get("/:name/students", ctrl.ListStudents)
}
