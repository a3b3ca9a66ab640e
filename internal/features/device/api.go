package device

import (
	"push-console/internal/common/api"
	"push-console/internal/config"
	"push-console/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type DeviceApi struct {
	controller *DeviceController
	config     *config.Config
}

func NewDeviceApi(controller *DeviceController, config *config.Config) api.Route {
	return &DeviceApi{
		controller: controller,
		config:     config,
	}
}

func (h *DeviceApi) Setup(app *fiber.App) {
	group := app.Group("/api/devices", middleware.AuthMiddleware(h.config.SkipAuth))

	group.Post("/", h.controller.Register)
}
