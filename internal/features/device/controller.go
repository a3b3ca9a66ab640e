package device

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"push-console/internal/features/push"
	"push-console/internal/middleware"
)

type DeviceController struct {
	Repo   DeviceRepository
	Logger *zap.Logger
}

func NewDeviceController(repo DeviceRepository, logger *zap.Logger) *DeviceController {
	return &DeviceController{
		Repo:   repo,
		Logger: logger,
	}
}

// Register godoc
// @Summary Register an FCM device token
// @Tags devices
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /api/devices [post]
func (ctrl *DeviceController) Register(c *fiber.Ctx) error {
	var body struct {
		Token    string `json:"token"`
		Platform string `json:"platform"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}

	if !push.IsValidToken(body.Token) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "A valid FCM token is required"})
	}

	dev := &Device{
		Token:    body.Token,
		Platform: body.Platform,
	}
	if claims := middleware.Claims(c); claims != nil {
		dev.Email = claims.Email
	}

	if err := ctrl.Repo.Upsert(c.UserContext(), dev); err != nil {
		ctrl.Logger.Error("device registration failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "internal error"})
	}

	return c.JSON(fiber.Map{"success": true})
}
