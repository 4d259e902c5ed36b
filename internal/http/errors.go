package http

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/ANIKETSHETTY47/telemetry-gateway/internal/domain"
	"github.com/ANIKETSHETTY47/telemetry-gateway/internal/logger"
)

const (
	msgUnauthorized    = "Unauthorized"
	msgNoData          = "No data found"
	msgCommandNotFound = "Command not found"
	msgHouseNotFound   = "House not found"
	msgHouseExists     = "House already registered for this device"
	msgInternal        = "Internal server error"
)

// Invalid readings stay a server error on purpose.
var errorStatusMap = map[error]int{
	domain.ErrNotFound:       http.StatusNotFound,
	domain.ErrInvalidCommand: http.StatusBadRequest,
	domain.ErrInvalidHouse:   http.StatusBadRequest,
	domain.ErrAlreadyExists:  http.StatusConflict,
	domain.ErrInvalidReading: http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// fail logs err and writes the response body for its status. Server errors
// never leak the cause to the caller.
func fail(c *fiber.Ctx, op string, err error, notFoundMsg string) error {
	status := statusFromError(err)
	log := logger.FromContext(c.UserContext())

	var msg string
	switch status {
	case http.StatusNotFound:
		msg = notFoundMsg
		log.Info().Str("op", op).Msg(err.Error())
	case http.StatusConflict:
		msg = msgHouseExists
		log.Info().Str("op", op).Msg(err.Error())
	case http.StatusBadRequest:
		msg = err.Error()
		log.Info().Str("op", op).Err(err).Msg("rejected request")
	default:
		msg = msgInternal
		log.Error().Str("op", op).Err(err).Msg("request failed")
	}

	return c.Status(status).JSON(fiber.Map{"error": msg})
}
