package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	diagController "nexdeal_backend/internals/features/diagnostics/controller"
	diagService "nexdeal_backend/internals/features/diagnostics/service"
)

// DiagnosticsAdminRoutes: portail partenaires (groupe /api/a déjà protégé par AdminGate)
func DiagnosticsAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &diagController.DiagnosticController{Service: diagService.NewDiagnosticService(db)}

	d := r.Group("/diagnostics")
	d.Get("/", ctl.List)
	d.Get("/export/csv", ctl.ExportCSV)
	d.Get("/:id", ctl.Detail)
	d.Delete("/:id", ctl.Delete)
}
