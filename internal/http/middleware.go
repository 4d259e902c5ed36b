package http

import (
	"crypto/subtle"
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/ANIKETSHETTY47/telemetry-gateway/internal/logger"
)

const (
	apiKeyHeader  = "x-api-key"
	traceIDHeader = "X-Trace-ID"
)

// requireAPIKey lets the request through only when x-api-key equals the
// configured key exactly. An unset key rejects everything.
func (h *Handler) requireAPIKey(c *fiber.Ctx) error {
	key := c.Get(apiKeyHeader)
	if h.apiKey == "" || subtle.ConstantTimeCompare([]byte(key), []byte(h.apiKey)) != 1 {
		logger.FromContext(c.UserContext()).Warn().
			Str("path", c.Path()).
			Str("ip", c.IP()).
			Msg("unauthorized request")
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": msgUnauthorized})
	}
	return c.Next()
}

func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		traceID := strings.Clone(c.Get(traceIDHeader))
		if traceID == "" {
			traceID = uuid.NewString()
		}

		ctx, log := logger.WithTraceID(c.UserContext(), traceID)
		c.SetUserContext(ctx)
		c.Set(traceIDHeader, traceID)

		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		var fe *fiber.Error
		if errors.As(err, &fe) {
			status = fe.Code
		}

		log.Info().
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("duration", time.Since(start)).
			Send()

		return err
	}
}
