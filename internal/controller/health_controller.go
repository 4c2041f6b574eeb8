package controller

import (
	"survey-interview-be/internal/metrics"
	"survey-interview-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
)

type IHealthController interface {
	RegisterRoutes(r fiber.Router)
	Health(ctx *fiber.Ctx) error
	Metrics(ctx *fiber.Ctx) error
}

type healthController struct {
	metrics *metrics.Metrics
}

func NewHealthController(collector *metrics.Metrics) IHealthController {
	return &healthController{metrics: collector}
}

func (c *healthController) RegisterRoutes(r fiber.Router) {
	r.Get("/health", c.Health)
	r.Get("/metrics", c.Metrics)
}

func (c *healthController) Health(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{"status": "healthy"})
}

func (c *healthController) Metrics(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Metrics snapshot", c.metrics.GetSnapshot()))
}
