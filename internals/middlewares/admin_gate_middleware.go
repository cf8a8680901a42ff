package middlewares

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"

	"nexdeal_backend/internals/configs"
	"nexdeal_backend/internals/constants"
	helper "nexdeal_backend/internals/helpers"
)

// AdminGate protège le groupe /api/a : passcode partagé unique, envoyé à chaque
// requête via le header X-Admin-Pass. Pas de session ni d'expiration (faiblesse
// assumée, hors périmètre de durcissement).
func AdminGate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		pass := c.Get(constants.AdminPassHeader)
		if pass == "" {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Passcode requis")
		}
		if subtle.ConstantTimeCompare([]byte(pass), []byte(configs.AdminPasscode)) != 1 {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Passcode invalide")
		}
		return c.Next()
	}
}
