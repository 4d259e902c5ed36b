package http

import (
	"encoding/json"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/ANIKETSHETTY47/telemetry-gateway/internal/domain"
)

func (h *Handler) registerHouse(c *fiber.Ctx) error {
	var in domain.NewHouse
	if err := json.Unmarshal(c.Body(), &in); err != nil {
		return fail(c, "register house", fmt.Errorf("%w: %w", domain.ErrInvalidHouse, err), msgHouseNotFound)
	}

	house, err := h.houses.Register(c.UserContext(), in)
	if err != nil {
		return fail(c, "register house", err, msgHouseNotFound)
	}

	return c.Status(fiber.StatusCreated).JSON(house)
}

func (h *Handler) houseOverview(c *fiber.Ctx) error {
	overview, err := h.houses.Overview(c.UserContext(), c.Params("device_id"))
	if err != nil {
		return fail(c, "house overview", err, msgHouseNotFound)
	}

	return c.JSON(overview)
}
