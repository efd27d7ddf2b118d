package api

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"pda-backend/internal/db"
	"pda-backend/internal/models"
	"pda-backend/internal/storage"
)

// CreateReport accepts a multipart form with an optional report_pdf file.
// A non-PDF upload is rejected before anything is stored; the attachment
// can only be set at creation time.
func (handler *Handler) CreateReport(c *fiber.Ctx) error {
	userID, err := strconv.ParseUint(c.FormValue("user_id"), 10, 64)
	if err != nil || userID == 0 {
		return apiError(c, fiber.StatusBadRequest, "Missing user_id")
	}

	var pdfPath *string
	if fileHeader, fileErr := c.FormFile("report_pdf"); fileErr == nil {
		path, saveErr := handler.uploads.Save(fileHeader)
		if saveErr != nil {
			if errors.Is(saveErr, storage.ErrUnsupportedMediaType) {
				return apiError(c, fiber.StatusUnsupportedMediaType, "Only PDFs are allowed")
			}
			handler.log.WithError(saveErr).Error("store report pdf failed")
			return apiError(c, fiber.StatusInternalServerError, "Failed to create report")
		}
		pdfPath = &path
	}

	report := models.Report{
		UserID:     uint(userID),
		ReportName: c.FormValue("report_name"),
		DoctorName: c.FormValue("doctor_name"),
		ReportDate: c.FormValue("report_date"),
		LabName:    c.FormValue("lab_name"),
		PDFPath:    pdfPath,
	}
	if err := handler.repos.Reports.Create(&report); err != nil {
		handler.log.WithError(err).Error("insert report failed")
		return apiError(c, fiber.StatusInternalServerError, "Failed to create report")
	}
	return c.JSON(report)
}

func (handler *Handler) ListReports(c *fiber.Ctx) error {
	userID, err := parseUintParam(c, "user_id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "Invalid user_id")
	}

	reports, err := handler.repos.Reports.ListByUser(userID)
	if err != nil {
		handler.log.WithError(err).Error("fetch reports failed")
		return apiError(c, fiber.StatusInternalServerError, "Failed to fetch reports")
	}
	return c.JSON(reports)
}

// DeleteReport removes the attached PDF best-effort, then the row. The
// two steps are not atomic: a crash in between can orphan the file, and
// the row delete decides the response either way.
func (handler *Handler) DeleteReport(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "Invalid id")
	}
	userID, err := parseUintParam(c, "user_id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "Invalid user_id")
	}

	report, err := handler.repos.Reports.FindOwned(id, userID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return apiError(c, fiber.StatusNotFound, "Report not found or not yours")
		}
		handler.log.WithError(err).Error("fetch report for delete failed")
		return apiError(c, fiber.StatusInternalServerError, "Failed to delete report")
	}

	if report.PDFPath != nil {
		if removeErr := handler.uploads.Remove(*report.PDFPath); removeErr != nil {
			handler.log.WithError(removeErr).WithField("path", *report.PDFPath).
				Warn("remove report pdf failed")
		}
	}

	if err := handler.repos.Reports.DeleteOwned(id, userID); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return apiError(c, fiber.StatusNotFound, "Report not found or not yours")
		}
		handler.log.WithError(err).Error("delete report failed")
		return apiError(c, fiber.StatusInternalServerError, "Failed to delete report")
	}
	return c.JSON(fiber.Map{"success": true})
}

func (handler *Handler) CountReports(c *fiber.Ctx) error {
	userID, err := parseUintParam(c, "user_id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "Invalid user_id")
	}

	count, err := handler.repos.Reports.CountByUser(userID)
	if err != nil {
		handler.log.WithError(err).Error("count reports failed")
		return apiError(c, fiber.StatusInternalServerError, "Database error")
	}
	return c.JSON(fiber.Map{"count": count})
}
