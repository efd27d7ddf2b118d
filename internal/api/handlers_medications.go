package api

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"pda-backend/internal/db"
	"pda-backend/internal/models"
)

type medicationInput struct {
	UserID    uint   `json:"user_id"`
	Name      string `json:"name"`
	Dosage    string `json:"dosage"`
	Frequency string `json:"frequency"`
	Route     string `json:"route"`
	Value     int    `json:"value"`
}

func (handler *Handler) ListMedications(c *fiber.Ctx) error {
	userID, err := parseUintParam(c, "user_id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "Invalid user_id")
	}

	medications, err := handler.repos.Medications.ListByUser(userID)
	if err != nil {
		handler.log.WithError(err).Error("fetch medications failed")
		return apiError(c, fiber.StatusInternalServerError, "Database error")
	}
	return c.JSON(medications)
}

func (handler *Handler) AddMedication(c *fiber.Ctx) error {
	var input medicationInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "Invalid input")
	}
	if input.UserID == 0 {
		return apiError(c, fiber.StatusBadRequest, "Missing user_id")
	}

	medication := models.Medication{
		UserID:    input.UserID,
		Name:      input.Name,
		Dosage:    input.Dosage,
		Frequency: input.Frequency,
		Route:     input.Route,
		Value:     input.Value,
	}
	if err := handler.repos.Medications.Create(&medication); err != nil {
		handler.log.WithError(err).Error("insert medication failed")
		return apiError(c, fiber.StatusInternalServerError, "Database error")
	}
	return c.JSON(fiber.Map{"message": "Medication added successfully"})
}

func (handler *Handler) DeleteMedication(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "Invalid id")
	}
	userID, err := parseUintParam(c, "user_id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "Invalid user_id")
	}

	if err := handler.repos.Medications.DeleteOwned(id, userID); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return apiError(c, fiber.StatusNotFound, "Medication not found or not yours")
		}
		handler.log.WithError(err).Error("delete medication failed")
		return apiError(c, fiber.StatusInternalServerError, "Database error")
	}
	return c.JSON(fiber.Map{"message": fmt.Sprintf("Medication with ID %d deleted", id)})
}

func (handler *Handler) CountMedications(c *fiber.Ctx) error {
	userID, err := parseUintParam(c, "user_id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "Invalid user_id")
	}

	count, err := handler.repos.Medications.CountByUser(userID)
	if err != nil {
		handler.log.WithError(err).Error("count medications failed")
		return apiError(c, fiber.StatusInternalServerError, "Database error")
	}
	return c.JSON(fiber.Map{"count": count})
}
