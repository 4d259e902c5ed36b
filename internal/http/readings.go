package http

import (
	"encoding/json"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/ANIKETSHETTY47/telemetry-gateway/internal/domain"
)

func (h *Handler) latestReading(c *fiber.Ctx) error {
	deviceID := c.Params("device_id")

	reading, err := h.readings.Latest(c.UserContext(), deviceID)
	if err != nil {
		return fail(c, "latest reading", err, msgNoData)
	}

	return c.JSON(reading)
}

// saveReading answers 500 for a missing or malformed field, the same as for a
// storage failure; devices in the field rely on that.
func (h *Handler) saveReading(c *fiber.Ctx) error {
	var in domain.NewReading
	if err := json.Unmarshal(c.Body(), &in); err != nil {
		return fail(c, "save reading", fmt.Errorf("%w: %w", domain.ErrInvalidReading, err), msgNoData)
	}

	saved, err := h.readings.Save(c.UserContext(), in)
	if err != nil {
		return fail(c, "save reading", err, msgNoData)
	}

	return c.Status(fiber.StatusCreated).JSON(saved)
}
