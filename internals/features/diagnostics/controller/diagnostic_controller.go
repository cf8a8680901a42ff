// internals/features/diagnostics/controller/diagnostic_controller.go
package controller

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "nexdeal_backend/internals/features/diagnostics/dto"
	service "nexdeal_backend/internals/features/diagnostics/service"
	helper "nexdeal_backend/internals/helpers"
)

type DiagnosticController struct {
	Service *service.DiagnosticService
}

// =========================================================
// LIST - GET /diagnostics (les plus récents d'abord)
// =========================================================
func (h *DiagnosticController) List(c *fiber.Ctx) error {
	entries, err := h.Service.List(c.UserContext())
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Lecture de la base impossible")
	}
	return helper.JsonList(c, "Liste des diagnostics", dto.ToDiagnosticEntryResponses(entries))
}

// =========================================================
// DETAIL - GET /diagnostics/:id (fiche diagnostic)
// =========================================================
func (h *DiagnosticController) Detail(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID invalide")
	}
	m, err := h.Service.GetByID(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Diagnostic introuvable")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Lecture impossible")
	}
	resp := dto.ToDiagnosticEntryResponse(m)
	return helper.JsonOK(c, "Fiche diagnostic", resp)
}

// =========================================================
// DELETE - DELETE /diagnostics/:id
// =========================================================
func (h *DiagnosticController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID invalide")
	}
	if err := h.Service.Delete(c.UserContext(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Diagnostic introuvable")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erreur lors de la suppression")
	}
	return helper.JsonDeleted(c, "Diagnostic supprimé", fiber.Map{"id": id})
}

// =========================================================
// EXPORT - GET /diagnostics/export/csv (téléchargement)
// =========================================================
func (h *DiagnosticController) ExportCSV(c *fiber.Ctx) error {
	entries, err := h.Service.List(c.UserContext())
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Lecture de la base impossible")
	}
	data, err := service.ExportCSV(entries)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Génération du CSV impossible")
	}

	filename := service.CSVFilename(time.Now())
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Send(data)
}
