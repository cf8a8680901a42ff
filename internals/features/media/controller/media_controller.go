// internals/features/media/controller/media_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	service "nexdeal_backend/internals/features/media/service"
	helper "nexdeal_backend/internals/helpers"
)

type MediaController struct{}

// le client OSS est construit à la demande, comme pour les helpers OSS d'origine
func (h *MediaController) svc(c *fiber.Ctx) (*service.MediaService, error) {
	s, err := service.NewMediaService()
	if err != nil {
		return nil, helper.JsonError(c, fiber.StatusServiceUnavailable, "Stockage média non configuré")
	}
	return s, nil
}

// =========================================================
// LIST - GET /media (public: section ressources; admin: médiathèque)
// =========================================================
func (h *MediaController) List(c *fiber.Ctx) error {
	s, err := h.svc(c)
	if s == nil {
		return err
	}
	files, err := s.List(c.UserContext())
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadGateway, "Impossible de charger les fichiers")
	}
	return helper.JsonList(c, "Médiathèque", files)
}

// =========================================================
// UPLOAD - POST /media (multipart, champ "file")
// =========================================================
func (h *MediaController) Upload(c *fiber.Ctx) error {
	s, err := h.svc(c)
	if s == nil {
		return err
	}
	fh, err := c.FormFile("file")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Veuillez sélectionner un fichier")
	}
	f, err := s.Upload(c.UserContext(), fh)
	if err != nil {
		if errors.Is(err, service.ErrFileTooLarge) {
			return helper.JsonError(c, fiber.StatusRequestEntityTooLarge, "Fichier trop volumineux (max 50MB)")
		}
		return helper.JsonError(c, fiber.StatusBadGateway, "Erreur lors du téléchargement")
	}
	return helper.JsonCreated(c, "Fichier téléchargé avec succès !", f)
}

// =========================================================
// DELETE - DELETE /media/:name
// =========================================================
func (h *MediaController) Delete(c *fiber.Ctx) error {
	s, err := h.svc(c)
	if s == nil {
		return err
	}
	name := c.Params("name")
	if err := s.Delete(c.UserContext(), name); err != nil {
		if errors.Is(err, service.ErrBadName) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Nom d'objet invalide")
		}
		return helper.JsonError(c, fiber.StatusBadGateway, "Erreur lors de la suppression")
	}
	return helper.JsonDeleted(c, "Fichier supprimé", fiber.Map{"name": name})
}
