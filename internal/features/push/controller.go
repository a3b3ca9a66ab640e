package push

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"push-console/internal/common/apperr"
)

type PushController struct {
	Gateway *Gateway
	Logger  *zap.Logger
}

func NewPushController(gateway *Gateway, logger *zap.Logger) *PushController {
	return &PushController{
		Gateway: gateway,
		Logger:  logger,
	}
}

// Send godoc
// @Summary Send an ad hoc notification
// @Description Sends one notification to a single token, a token list, or a platform audience
// @Tags notifications
// @Accept json
// @Produce json
// @Param request body SendRequest true "Notification"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/notifications/send [post]
func (ctrl *PushController) Send(c *fiber.Ctx) error {
	var req SendRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}

	if req.Title == "" || req.Body == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "title and body are required"})
	}

	msg := Compose(Payload{
		Title:    req.Title,
		Body:     req.Body,
		ImageURL: req.ImageURL,
		Data:     req.Data,
	}, nil)

	target := Target{
		Token:    req.Token,
		Tokens:   req.Tokens,
		Platform: req.Platform,
	}

	result, err := ctrl.Gateway.Deliver(c.UserContext(), msg, target)
	if err != nil {
		if !errors.Is(err, apperr.ErrValidation) {
			ctrl.Logger.Error("ad hoc send failed", zap.Error(err))
		}
		return c.Status(apperr.StatusCode(err)).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	if result.TotalTokens > 0 {
		return c.JSON(fiber.Map{
			"success": true,
			"results": fiber.Map{
				"success":     result.SuccessCount,
				"failure":     result.FailureCount,
				"totalTokens": result.TotalTokens,
				"validTokens": result.ValidTokens,
			},
		})
	}

	return c.JSON(fiber.Map{"success": true, "messageId": result.MessageID})
}
