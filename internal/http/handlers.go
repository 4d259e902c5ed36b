package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/ANIKETSHETTY47/telemetry-gateway/internal/config"
	"github.com/ANIKETSHETTY47/telemetry-gateway/internal/service"
)

type Handler struct {
	readings service.ReadingService
	commands service.CommandService
	houses   service.HouseService
	apiKey   string
}

func NewHandler(svcs *service.Services, apiKey string) *Handler {
	return &Handler{
		readings: svcs.Readings,
		commands: svcs.Commands,
		houses:   svcs.Houses,
		apiKey:   apiKey,
	}
}

// NewApp returns a fiber app whose unhandled errors are rendered as JSON.
func NewApp() *fiber.App {
	return fiber.New(fiber.Config{
		AppName:               "telemetry-gateway",
		DisableStartupMessage: true,
		// device ids come back exactly as they were posted
		UnescapePath: true,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			var fe *fiber.Error
			if errors.As(err, &fe) {
				return c.Status(fe.Code).JSON(fiber.Map{"error": fe.Message})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": msgInternal})
		},
	})
}

func Register(app *fiber.App, svcs *service.Services, cfg *config.Config) {
	h := NewHandler(svcs, cfg.APIKey)

	app.Use(requestLogger())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: "GET,POST,PUT,DELETE,PATCH",
		AllowHeaders: "Content-Type," + apiKeyHeader,
	}))

	api := app.Group("/api")
	api.Get("/health", h.health)

	data := api.Group("/data", h.requireAPIKey)
	data.Get("/:device_id/latest", h.latestReading)
	data.Post("", h.saveReading)

	cmds := api.Group("/commands", h.requireAPIKey)
	cmds.Get("", h.pendingCommands)
	cmds.Post("", h.enqueueCommand)
	cmds.Post("/confirm", h.confirmCommand)

	houses := api.Group("/maisons", h.requireAPIKey)
	houses.Post("", h.registerHouse)
	houses.Get("/:device_id", h.houseOverview)
}

func (h *Handler) health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}
