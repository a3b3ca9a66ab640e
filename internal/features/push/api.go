package push

import (
	"push-console/internal/common/api"
	"push-console/internal/config"
	"push-console/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type PushApi struct {
	controller *PushController
	config     *config.Config
}

func NewPushApi(controller *PushController, config *config.Config) api.Route {
	return &PushApi{
		controller: controller,
		config:     config,
	}
}

func (h *PushApi) Setup(app *fiber.App) {
	group := app.Group("/api/notifications", middleware.AuthMiddleware(h.config.SkipAuth))

	group.Post("/send", h.controller.Send)
}
