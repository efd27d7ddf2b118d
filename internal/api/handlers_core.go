package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":    "healthy",
		"uptime":    time.Since(handler.startedAt).Seconds(),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (handler *Handler) Test(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message":   "Unified server is working!",
		"services":  []string{"Auth", "Medications", "Reminders", "Reports", "Tests"},
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
