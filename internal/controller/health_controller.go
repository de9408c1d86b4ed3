package controller

import (
	"mindwell-be/internal/pkg/apperror"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type IHealthController interface {
	RegisterRoutes(r fiber.Router)
}

type healthController struct {
	db *gorm.DB
}

func NewHealthController(db *gorm.DB) IHealthController {
	return &healthController{db: db}
}

func (c *healthController) RegisterRoutes(r fiber.Router) {
	r.Get("/", c.Root)
	r.Get("/healthz", c.Health)
}

func (c *healthController) Root(ctx *fiber.Ctx) error {
	return ctx.SendString("Mindwell API is running")
}

func (c *healthController) Health(ctx *fiber.Ctx) error {
	sqlDB, err := c.db.DB()
	if err != nil {
		return apperror.Server("database unavailable", err)
	}
	if err := sqlDB.PingContext(ctx.UserContext()); err != nil {
		return apperror.Server("database unavailable", err)
	}
	return ctx.JSON(fiber.Map{"status": "ok"})
}
