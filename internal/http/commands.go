package http

import (
	"encoding/json"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/ANIKETSHETTY47/telemetry-gateway/internal/domain"
)

func (h *Handler) enqueueCommand(c *fiber.Ctx) error {
	var in domain.NewCommand
	if err := json.Unmarshal(c.Body(), &in); err != nil {
		return fail(c, "enqueue command", fmt.Errorf("%w: %w", domain.ErrInvalidCommand, err), msgCommandNotFound)
	}

	cmd, err := h.commands.Enqueue(c.UserContext(), in)
	if err != nil {
		return fail(c, "enqueue command", err, msgCommandNotFound)
	}

	return c.Status(fiber.StatusCreated).JSON(cmd)
}

func (h *Handler) pendingCommands(c *fiber.Ctx) error {
	cmds, err := h.commands.Pending(c.UserContext(), c.Query("deviceId"))
	if err != nil {
		return fail(c, "pending commands", err, msgCommandNotFound)
	}

	return c.JSON(fiber.Map{"commands": cmds})
}

func (h *Handler) confirmCommand(c *fiber.Ctx) error {
	var in domain.CommandConfirmation
	if err := json.Unmarshal(c.Body(), &in); err != nil {
		return fail(c, "confirm command", fmt.Errorf("%w: %w", domain.ErrInvalidCommand, err), msgCommandNotFound)
	}

	if err := h.commands.Confirm(c.UserContext(), in); err != nil {
		return fail(c, "confirm command", err, msgCommandNotFound)
	}

	return c.JSON(fiber.Map{"message": "Command confirmed"})
}
