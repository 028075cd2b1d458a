package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	educationalRoute "hadirku_backend/internals/features/lembaga/educationals/route"
	organizationRoute "hadirku_backend/internals/features/lembaga/organizations/route"
)

func LembagaRoutes(api fiber.Router, db *gorm.DB) {
	organizationRoute.OrganizationRoutes(api, db)
	educationalRoute.EducationalRoutes(api, db)
}
