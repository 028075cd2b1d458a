// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	routeDetails "hadirku_backend/internals/route/details"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api")

	log.Println("[INFO] Setting up AuthRoutes...")
	routeDetails.AuthRoutes(api, db)

	log.Println("[INFO] Setting up LembagaRoutes...")
	routeDetails.LembagaRoutes(api, db)

	log.Println("[INFO] Setting up ShiftRoutes...")
	routeDetails.ShiftRoutes(api, db)
}
