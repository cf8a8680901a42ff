// internals/features/stats/controller/stats_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	diagModel "nexdeal_backend/internals/features/diagnostics/model"
	statsModel "nexdeal_backend/internals/features/stats/model"
	helper "nexdeal_backend/internals/helpers"
)

type StatsController struct {
	DB *gorm.DB
}

// =========================================================
// HIT - POST /visits (incrément atomique, appelé au chargement du site)
// =========================================================
func (h *StatsController) Hit(c *fiber.Ctx) error {
	row := statsModel.SiteStatModel{
		SiteStatKey:    statsModel.GlobalStatKey,
		SiteStatVisits: 1,
	}
	err := h.DB.WithContext(c.UserContext()).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "site_stat_key"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"site_stat_visits": gorm.Expr("site_stats.site_stat_visits + 1"),
			}),
		}).
		Create(&row).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Compteur indisponible")
	}
	return helper.JsonOK(c, "Visite enregistrée", fiber.Map{"key": statsModel.GlobalStatKey})
}

// =========================================================
// OVERVIEW - GET /stats (tableau de bord du portail partenaires)
// =========================================================
func (h *StatsController) Overview(c *fiber.Ctx) error {
	var stat statsModel.SiteStatModel
	err := h.DB.WithContext(c.UserContext()).
		Where("site_stat_key = ?", statsModel.GlobalStatKey).
		First(&stat).Error
	if err != nil && err != gorm.ErrRecordNotFound {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Lecture des statistiques impossible")
	}

	var leadCount int64
	if err := h.DB.WithContext(c.UserContext()).
		Model(&diagModel.DiagnosticEntryModel{}).
		Count(&leadCount).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Lecture des statistiques impossible")
	}

	return helper.JsonOK(c, "Statistiques du site", fiber.Map{
		"visits":     stat.SiteStatVisits,
		"lead_count": leadCount,
	})
}
