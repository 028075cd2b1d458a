package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"hadirku_backend/internals/middlewares/logger"
)

// SetupMiddlewares memasang middleware global (urutan: recovery → cors → limiter → logger)
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(GlobalRateLimiter())
	app.Use(logger.LoggerMiddleware())
}
