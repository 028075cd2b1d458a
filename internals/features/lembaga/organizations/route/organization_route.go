package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "hadirku_backend/internals/features/lembaga/organizations/controller"
)

func OrganizationRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewOrganizationController(db)

	organizations := api.Group("/lembaga/organizations")
	organizations.Get("/:name", ctrl.GetByName)
	organizations.Get("/:name/employees", ctrl.ListEmployees)
}
