package api

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"pda-backend/internal/db"
	"pda-backend/internal/models"
)

type reminderInput struct {
	UserID  uint   `json:"user_id"`
	MedName string `json:"med_name"`
	Dosage  string `json:"dosage"`
	MedType string `json:"med_type"`
	MedTime string `json:"med_time"`
}

func (handler *Handler) ListReminders(c *fiber.Ctx) error {
	userID, err := parseUintParam(c, "user_id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "Invalid user_id")
	}

	reminders, err := handler.repos.Reminders.ListByUser(userID)
	if err != nil {
		handler.log.WithError(err).Error("fetch reminders failed")
		return apiError(c, fiber.StatusInternalServerError, "Database error")
	}
	return c.JSON(reminders)
}

func (handler *Handler) AddReminder(c *fiber.Ctx) error {
	var input reminderInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "Invalid input")
	}
	if input.UserID == 0 {
		return apiError(c, fiber.StatusBadRequest, "Missing user_id")
	}

	reminder := models.Reminder{
		UserID:  input.UserID,
		MedName: input.MedName,
		Dosage:  input.Dosage,
		MedType: input.MedType,
		MedTime: input.MedTime,
	}
	if err := handler.repos.Reminders.Create(&reminder); err != nil {
		handler.log.WithError(err).Error("insert reminder failed")
		return apiError(c, fiber.StatusInternalServerError, "Database error")
	}
	return c.JSON(fiber.Map{"message": "Reminder added"})
}

func (handler *Handler) DeleteReminder(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "Invalid id")
	}
	userID, err := parseUintParam(c, "user_id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "Invalid user_id")
	}

	if err := handler.repos.Reminders.DeleteOwned(id, userID); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return apiError(c, fiber.StatusNotFound, "Reminder not found")
		}
		handler.log.WithError(err).Error("delete reminder failed")
		return apiError(c, fiber.StatusInternalServerError, "Database error")
	}
	return c.JSON(fiber.Map{"message": fmt.Sprintf("Reminder with ID %d deleted", id)})
}

func (handler *Handler) CountReminders(c *fiber.Ctx) error {
	userID, err := parseUintParam(c, "user_id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "Invalid user_id")
	}

	count, err := handler.repos.Reminders.CountByUser(userID)
	if err != nil {
		handler.log.WithError(err).Error("count reminders failed")
		return apiError(c, fiber.StatusInternalServerError, "Database error")
	}
	return c.JSON(fiber.Map{"count": count})
}
