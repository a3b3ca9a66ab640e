package events

import (
	"push-console/internal/common/api"
	"push-console/internal/config"
	"push-console/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type EventsApi struct {
	controller *EventsController
	config     *config.Config
}

func NewEventsApi(controller *EventsController, config *config.Config) api.Route {
	return &EventsApi{
		controller: controller,
		config:     config,
	}
}

func (h *EventsApi) Setup(app *fiber.App) {
	group := app.Group("/api/events", middleware.AuthMiddleware(h.config.SkipAuth))

	group.Get("/types", h.controller.ListTypes)
}
