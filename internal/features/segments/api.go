package segments

import (
	"push-console/internal/common/api"
	"push-console/internal/config"
	"push-console/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type SegmentsApi struct {
	controller *SegmentsController
	config     *config.Config
}

func NewSegmentsApi(controller *SegmentsController, config *config.Config) api.Route {
	return &SegmentsApi{
		controller: controller,
		config:     config,
	}
}

func (h *SegmentsApi) Setup(app *fiber.App) {
	group := app.Group("/api/analytics", middleware.AuthMiddleware(h.config.SkipAuth))

	group.Get("/segments", h.controller.List)
}
