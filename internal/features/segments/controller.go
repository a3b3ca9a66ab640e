package segments

import (
	"github.com/gofiber/fiber/v2"
)

type SegmentsController struct {
	Service SegmentsService
}

func NewSegmentsController(service SegmentsService) *SegmentsController {
	return &SegmentsController{
		Service: service,
	}
}

// List godoc
// @Summary List audience segments
// @Description Lists default segments plus the property's custom analytics audiences
// @Tags analytics
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/analytics/segments [get]
func (ctrl *SegmentsController) List(c *fiber.Ctx) error {
	segs, stats := ctrl.Service.List(c.UserContext())
	return c.JSON(fiber.Map{"success": true, "segments": segs, "stats": stats})
}
