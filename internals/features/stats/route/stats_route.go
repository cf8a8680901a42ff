package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	statsController "nexdeal_backend/internals/features/stats/controller"
)

func StatsPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &statsController.StatsController{DB: db}
	r.Post("/visits", ctl.Hit)
}

func StatsAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &statsController.StatsController{DB: db}
	r.Get("/stats", ctl.Overview)
}
