package events

import (
	"github.com/gofiber/fiber/v2"
)

type EventsController struct{}

func NewEventsController() *EventsController {
	return &EventsController{}
}

// ListTypes godoc
// @Summary List event types
// @Description Lists the application event types a rule can trigger on
// @Tags events
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/events/types [get]
func (ctrl *EventsController) ListTypes(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"success": true, "types": Types()})
}
