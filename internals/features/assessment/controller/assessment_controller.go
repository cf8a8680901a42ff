// internals/features/assessment/controller/assessment_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	dto "nexdeal_backend/internals/features/assessment/dto"
	"nexdeal_backend/internals/features/assessment/service"
	helper "nexdeal_backend/internals/helpers"
)

type AssessmentController struct {
	Store *service.Store
}

var validate = validator.New()

func parseSessionID(c *fiber.Ctx) (uuid.UUID, error) {
	return uuid.Parse(strings.TrimSpace(c.Params("id")))
}

// mapServiceError traduit les erreurs de transition en statuts HTTP.
func mapServiceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "Session introuvable ou expirée")
	case errors.Is(err, service.ErrWrongStep):
		return helper.JsonError(c, fiber.StatusConflict, "Action impossible à cette étape")
	case errors.Is(err, service.ErrNotReady):
		return helper.JsonError(c, fiber.StatusTooEarly, "L'analyste est en train d'écrire…")
	case errors.Is(err, service.ErrInvalidChoice):
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Choix invalide")
	case errors.Is(err, service.ErrMissingField):
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Nom et rôle sont requis")
	default:
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erreur interne")
	}
}

func (h *AssessmentController) view(c *fiber.Ctx, message string, s service.Session) error {
	return helper.JsonOK(c, message, dto.NewSessionView(s, time.Now()))
}

// =========================================================
// CREATE - POST /assessment/sessions
// =========================================================
func (h *AssessmentController) CreateSession(c *fiber.Ctx) error {
	s := h.Store.Create()
	return helper.JsonCreated(c, "Session créée", dto.NewSessionView(s, time.Now()))
}

// =========================================================
// READ - GET /assessment/sessions/:id
// =========================================================
func (h *AssessmentController) GetSession(c *fiber.Ctx) error {
	id, err := parseSessionID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID de session invalide")
	}
	s, err := h.Store.Get(id)
	if err != nil {
		return mapServiceError(c, err)
	}
	return h.view(c, "ok", s)
}

// =========================================================
// POST /assessment/sessions/:id/start
// =========================================================
func (h *AssessmentController) Start(c *fiber.Ctx) error {
	id, err := parseSessionID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID de session invalide")
	}
	s, err := h.Store.Start(id)
	if err != nil {
		return mapServiceError(c, err)
	}
	return h.view(c, "Analyse démarrée", s)
}

// =========================================================
// POST /assessment/sessions/:id/sector
// =========================================================
func (h *AssessmentController) SelectSector(c *fiber.Ctx) error {
	id, err := parseSessionID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID de session invalide")
	}
	var req dto.SectorRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload invalide")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	s, err := h.Store.SelectSector(id, req.Sector)
	if err != nil {
		return mapServiceError(c, err)
	}
	return h.view(c, "Secteur enregistré", s)
}

// =========================================================
// POST /assessment/sessions/:id/size
// =========================================================
func (h *AssessmentController) SelectSize(c *fiber.Ctx) error {
	id, err := parseSessionID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID de session invalide")
	}
	var req dto.SizeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload invalide")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	s, err := h.Store.SelectSize(id, req.Size)
	if err != nil {
		return mapServiceError(c, err)
	}
	return h.view(c, "Taille enregistrée", s)
}

// =========================================================
// POST /assessment/sessions/:id/answer
// =========================================================
func (h *AssessmentController) Answer(c *fiber.Ctx) error {
	id, err := parseSessionID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID de session invalide")
	}
	var req dto.AnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload invalide")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	s, err := h.Store.Answer(id, *req.Option)
	if err != nil {
		return mapServiceError(c, err)
	}
	return h.view(c, "Réponse enregistrée", s)
}

// =========================================================
// POST /assessment/sessions/:id/lead
// =========================================================
func (h *AssessmentController) SubmitLead(c *fiber.Ctx) error {
	id, err := parseSessionID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID de session invalide")
	}
	var req dto.LeadRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload invalide")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	s, err := h.Store.SubmitLead(id, req.Name, req.Role, req.Website)
	if err != nil {
		return mapServiceError(c, err)
	}
	return h.view(c, "Diagnostic généré", s)
}

// =========================================================
// POST /assessment/sessions/:id/reset
// =========================================================
func (h *AssessmentController) Reset(c *fiber.Ctx) error {
	id, err := parseSessionID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID de session invalide")
	}
	s, err := h.Store.Reset(id)
	if err != nil {
		return mapServiceError(c, err)
	}
	return h.view(c, "Réinitialisation… On reprend depuis le début ?", s)
}
