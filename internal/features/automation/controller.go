package automation

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"push-console/internal/common/apperr"
	"push-console/internal/middleware"
)

type AutomationController struct {
	Service AutomationService
	Logger  *zap.Logger
}

func NewAutomationController(service AutomationService, logger *zap.Logger) *AutomationController {
	return &AutomationController{
		Service: service,
		Logger:  logger,
	}
}

func (ctrl *AutomationController) fail(c *fiber.Ctx, err error) error {
	if apperr.StatusCode(err) == fiber.StatusInternalServerError {
		ctrl.Logger.Error("automation request failed",
			zap.String("path", c.Path()), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false, "error": "internal error",
		})
	}
	return c.Status(apperr.StatusCode(err)).JSON(fiber.Map{"success": false, "error": err.Error()})
}

// Create godoc
// @Summary Create automation rule
// @Description Create a new automation rule
// @Tags automation
// @Accept json
// @Produce json
// @Param rule body RuleInput true "Automation Rule"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/automation [post]
func (ctrl *AutomationController) Create(c *fiber.Ctx) error {
	var input RuleInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}

	var actor *Principal
	if claims := middleware.Claims(c); claims != nil {
		actor = &Principal{Email: claims.Email, Name: claims.Name}
	}

	rule, err := ctrl.Service.Create(c.UserContext(), &input, actor)
	if err != nil {
		return ctrl.fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "rule": rule})
}

// List godoc
// @Summary List automation rules
// @Description Lists rules filtered by status, platform and free-text search
// @Tags automation
// @Produce json
// @Param status query string false "all|active|inactive|archived"
// @Param platform query string false "all|ios|android"
// @Param search query string false "Substring match on name and eventType"
// @Param sort query string false "name|createdAt|updatedAt|sent|success"
// @Param order query string false "asc|desc"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/automation [get]
func (ctrl *AutomationController) List(c *fiber.Ctx) error {
	filter := ListFilter{
		Status:   c.Query("status", "all"),
		Platform: c.Query("platform", "all"),
		Search:   c.Query("search"),
		Sort:     c.Query("sort", "createdAt"),
		Order:    c.Query("order", "desc"),
	}

	rules, stats, err := ctrl.Service.List(c.UserContext(), filter)
	if err != nil {
		return ctrl.fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "automations": rules, "stats": stats})
}

// Get godoc
// @Summary Get automation rule
// @Tags automation
// @Produce json
// @Param id path string true "Rule ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/automation/{id} [get]
func (ctrl *AutomationController) Get(c *fiber.Ctx) error {
	rule, err := ctrl.Service.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return ctrl.fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "rule": rule})
}

// Update godoc
// @Summary Update automation rule
// @Tags automation
// @Accept json
// @Produce json
// @Param id path string true "Rule ID"
// @Param rule body RuleInput true "Automation Rule"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/automation/{id} [put]
func (ctrl *AutomationController) Update(c *fiber.Ctx) error {
	var input RuleInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}

	rule, err := ctrl.Service.Update(c.UserContext(), c.Params("id"), &input)
	if err != nil {
		return ctrl.fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "rule": rule})
}

// Toggle godoc
// @Summary Enable or disable a rule
// @Tags automation
// @Accept json
// @Produce json
// @Param id path string true "Rule ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/automation/{id}/toggle [patch]
func (ctrl *AutomationController) Toggle(c *fiber.Ctx) error {
	var body struct {
		Enabled bool `json:"enabled"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}

	rule, err := ctrl.Service.Toggle(c.UserContext(), c.Params("id"), body.Enabled)
	if err != nil {
		return ctrl.fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "rule": rule})
}

// Archive godoc
// @Summary Archive a rule
// @Description Archiving disables the rule permanently; it cannot be re-enabled
// @Tags automation
// @Produce json
// @Param id path string true "Rule ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/automation/{id}/archive [post]
func (ctrl *AutomationController) Archive(c *fiber.Ctx) error {
	if err := ctrl.Service.Archive(c.UserContext(), c.Params("id")); err != nil {
		return ctrl.fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

// Delete godoc
// @Summary Delete a rule
// @Tags automation
// @Produce json
// @Param id path string true "Rule ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/automation/{id} [delete]
func (ctrl *AutomationController) Delete(c *fiber.Ctx) error {
	if err := ctrl.Service.Delete(c.UserContext(), c.Params("id")); err != nil {
		return ctrl.fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

// Trigger godoc
// @Summary Fire the rule registered for an application event
// @Tags automation
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/automation/trigger [post]
func (ctrl *AutomationController) Trigger(c *fiber.Ctx) error {
	var body struct {
		EventName string `json:"eventName"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}

	result, err := ctrl.Service.Trigger(c.UserContext(), body.EventName)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false, "error": "no automation registered for this event",
			})
		}
		return ctrl.fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "result": result})
}

// SendTest godoc
// @Summary Send a test notification
// @Description Sends the notification once to the given token with a [TEST] prefix
// @Tags automation
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/automation/test [post]
func (ctrl *AutomationController) SendTest(c *fiber.Ctx) error {
	var body struct {
		Notification NotificationPayload `json:"notification"`
		Token        string              `json:"token"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}

	result, err := ctrl.Service.SendTest(c.UserContext(), body.Notification, body.Token)
	if err != nil {
		return ctrl.fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "result": result})
}
