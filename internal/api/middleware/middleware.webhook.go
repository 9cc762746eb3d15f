package middleware

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v3"

	basehdl "fieldpulse/internal/api/base/handler"
	"fieldpulse/config"
	"fieldpulse/internal/common"
)

// WebhookSecretHeader carries the shared secret on webhook deliveries.
const WebhookSecretHeader = "X-Webhook-Secret"

// WebhookSecret gates webhook endpoints behind the configured shared
// secret. A mismatch fails before any payload parsing. With no secret
// configured the gate is disabled.
func WebhookSecret(cfg *config.Configuration) fiber.Handler {
	secret := []byte(cfg.WebhookSecret)

	return func(c fiber.Ctx) error {
		if len(secret) == 0 {
			return c.Next()
		}

		provided := []byte(c.Get(WebhookSecretHeader))
		if subtle.ConstantTimeCompare(secret, provided) != 1 {
			return basehdl.HandleResponse(c, nil, common.ErrWebhookSecret)
		}

		return c.Next()
	}
}
