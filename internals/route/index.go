// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	assessmentRoute "nexdeal_backend/internals/features/assessment/route"
	assessmentService "nexdeal_backend/internals/features/assessment/service"
	diagRoute "nexdeal_backend/internals/features/diagnostics/route"
	diagService "nexdeal_backend/internals/features/diagnostics/service"
	mediaRoute "nexdeal_backend/internals/features/media/route"
	statsRoute "nexdeal_backend/internals/features/stats/route"
	"nexdeal_backend/internals/middlewares"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// Le service diagnostics sert de puits d'enregistrement au wizard.
	recorder := diagService.NewDiagnosticService(db)
	store := assessmentService.NewStore(recorder)
	store.StartReaper()

	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public")

	assessmentRoute.AssessmentPublicRoutes(public, store)
	mediaRoute.MediaPublicRoutes(public)
	statsRoute.StatsPublicRoutes(public, db)

	// ===================== ADMIN (portail partenaires) =====================
	log.Println("[INFO] Setting up ADMIN group (AdminGate + limiter)...")
	admin := app.Group("/api/a",
		middlewares.AdminRateLimiter(),
		middlewares.AdminGate(),
	)

	diagRoute.DiagnosticsAdminRoutes(admin, db)
	mediaRoute.MediaAdminRoutes(admin)
	statsRoute.StatsAdminRoutes(admin, db)
}
