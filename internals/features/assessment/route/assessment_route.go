package route

import (
	"github.com/gofiber/fiber/v2"

	assessController "nexdeal_backend/internals/features/assessment/controller"
	"nexdeal_backend/internals/features/assessment/service"
)

// AssessmentPublicRoutes monte le bot d'évaluation sous /api/public
func AssessmentPublicRoutes(r fiber.Router, store *service.Store) {
	ctl := &assessController.AssessmentController{Store: store}

	s := r.Group("/assessment/sessions")
	s.Post("/", ctl.CreateSession)
	s.Get("/:id", ctl.GetSession)
	s.Post("/:id/start", ctl.Start)
	s.Post("/:id/sector", ctl.SelectSector)
	s.Post("/:id/size", ctl.SelectSize)
	s.Post("/:id/answer", ctl.Answer)
	s.Post("/:id/lead", ctl.SubmitLead)
	s.Post("/:id/reset", ctl.Reset)
}
