package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"pda-backend/internal/db"
	"pda-backend/internal/models"
)

type testRecordInput struct {
	UserID        uint   `json:"user_id"`
	TestName      string `json:"test_name"`
	DoctorName    string `json:"doctor_name"`
	TestForPerson string `json:"test_for_person"`
	Date          string `json:"date"`
	LabName       string `json:"lab_name"`
}

func (handler *Handler) CreateTestRecord(c *fiber.Ctx) error {
	var input testRecordInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "Invalid input")
	}
	if input.UserID == 0 {
		return apiError(c, fiber.StatusBadRequest, "Missing user_id")
	}

	record := models.TestRecord{
		UserID:        input.UserID,
		TestName:      input.TestName,
		DoctorName:    input.DoctorName,
		TestForPerson: input.TestForPerson,
		Date:          input.Date,
		LabName:       input.LabName,
	}
	if err := handler.repos.TestRecords.Create(&record); err != nil {
		handler.log.WithError(err).Error("insert test record failed")
		return apiError(c, fiber.StatusInternalServerError, "Failed to create test")
	}
	return c.JSON(record)
}

func (handler *Handler) ListTestRecords(c *fiber.Ctx) error {
	userID, err := parseUintParam(c, "user_id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "Invalid user_id")
	}

	records, err := handler.repos.TestRecords.ListByUser(userID)
	if err != nil {
		handler.log.WithError(err).Error("fetch test records failed")
		return apiError(c, fiber.StatusInternalServerError, "Failed to fetch tests")
	}
	return c.JSON(records)
}

func (handler *Handler) DeleteTestRecord(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "Invalid id")
	}
	userID, err := parseUintParam(c, "user_id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "Invalid user_id")
	}

	if err := handler.repos.TestRecords.DeleteOwned(id, userID); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return apiError(c, fiber.StatusNotFound, "Test not found or not yours")
		}
		handler.log.WithError(err).Error("delete test record failed")
		return apiError(c, fiber.StatusInternalServerError, "Failed to delete test")
	}
	return c.JSON(fiber.Map{"success": true})
}

func (handler *Handler) CountTestRecords(c *fiber.Ctx) error {
	userID, err := parseUintParam(c, "user_id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "Invalid user_id")
	}

	count, err := handler.repos.TestRecords.CountByUser(userID)
	if err != nil {
		handler.log.WithError(err).Error("count test records failed")
		return apiError(c, fiber.StatusInternalServerError, "Database error")
	}
	return c.JSON(fiber.Map{"count": count})
}
