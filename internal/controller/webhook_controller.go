package controller

import (
	"errors"

	"survey-interview-be/internal/dto"
	"survey-interview-be/internal/entity"
	"survey-interview-be/internal/pkg/logger"
	"survey-interview-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IWebhookController interface {
	RegisterRoutes(r fiber.Router)
	HandleWebhook(ctx *fiber.Ctx) error
}

type webhookController struct {
	webhookService service.IWebhookService
	sysLogger      logger.ILogger
}

func NewWebhookController(webhookService service.IWebhookService, sysLogger logger.ILogger) IWebhookController {
	return &webhookController{
		webhookService: webhookService,
		sysLogger:      sysLogger,
	}
}

func (c *webhookController) RegisterRoutes(r fiber.Router) {
	r.Post("/webhook", c.HandleWebhook)
}

// HandleWebhook accepts the survey provider's delivery. A payload without a
// usable user id is acknowledged with 200 so the provider stops retrying, but
// no session is created.
func (c *webhookController) HandleWebhook(ctx *fiber.Ctx) error {
	var payload dto.TypeformWebhookPayload
	if err := ctx.BodyParser(&payload); err != nil {
		c.sysLogger.Warn("webhook", "Unparseable webhook payload", map[string]interface{}{
			"error": err.Error(),
		})
		return fiber.NewError(fiber.StatusBadRequest, "invalid webhook payload")
	}

	if err := c.webhookService.Ingest(ctx.Context(), &payload); err != nil {
		if errors.Is(err, entity.ErrMalformedPayload) {
			c.sysLogger.Warn("webhook", "Invalid or missing user id, ignoring submission", map[string]interface{}{
				"event_id": payload.EventId,
			})
			return ctx.JSON(fiber.Map{
				"status": "ignored",
				"reason": "invalid_user_id",
			})
		}
		return err
	}

	return ctx.JSON(fiber.Map{"status": "success"})
}
