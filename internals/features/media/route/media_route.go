package route

import (
	"github.com/gofiber/fiber/v2"

	mediaController "nexdeal_backend/internals/features/media/controller"
)

// MediaPublicRoutes: lecture seule (section "Ressources & Documentation")
func MediaPublicRoutes(r fiber.Router) {
	ctl := &mediaController.MediaController{}
	r.Get("/media", ctl.List)
}

// MediaAdminRoutes: médiathèque du portail partenaires
func MediaAdminRoutes(r fiber.Router) {
	ctl := &mediaController.MediaController{}

	m := r.Group("/media")
	m.Get("/", ctl.List)
	m.Post("/", ctl.Upload)
	m.Delete("/:name", ctl.Delete)
}
