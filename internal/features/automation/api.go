package automation

import (
	"push-console/internal/common/api"
	"push-console/internal/config"
	"push-console/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type AutomationApi struct {
	controller *AutomationController
	config     *config.Config
}

func NewAutomationApi(controller *AutomationController, config *config.Config) api.Route {
	return &AutomationApi{
		controller: controller,
		config:     config,
	}
}

func (h *AutomationApi) Setup(app *fiber.App) {
	group := app.Group("/api/automation", middleware.AuthMiddleware(h.config.SkipAuth))

	group.Get("/", h.controller.List)
	group.Post("/", h.controller.Create)
	group.Post("/test", h.controller.SendTest)
	group.Post("/trigger", h.controller.Trigger)
	group.Get("/:id", h.controller.Get)
	group.Put("/:id", h.controller.Update)
	group.Patch("/:id/toggle", h.controller.Toggle)
	group.Post("/:id/archive", h.controller.Archive)
	group.Delete("/:id", h.controller.Delete)
}
