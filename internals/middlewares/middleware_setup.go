package middlewares

import (
	"github.com/gofiber/fiber/v2"
)

// SetupMiddlewares branche les middlewares globaux (ordre: recovery → cors → limiter)
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(GlobalRateLimiter())
}
