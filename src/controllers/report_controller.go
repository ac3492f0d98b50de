package controllers

import (
	"encoding/json"
	"log"

	"Backend-EduSync/src/database"
	"Backend-EduSync/src/jobs"
	"Backend-EduSync/src/services/reports"
	"Backend-EduSync/src/utils"

	"github.com/gofiber/fiber/v2"
)

// GenerateReport godoc
// @Summary Generate a report
// @Description Renders a PDF/Excel/CSV report and persists a download handle.
// @Description With async=true the work is queued and the handle appears in
// @Description /reports/recent when finished.
// @Tags reports
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body object true "reportType, format and options"
// @Success 201 {object} models.Report
// @Success 202 {object} map[string]interface{}
// @Failure 400 {object} models.ErrorResponse
// @Router /reports/generate [post]
func GenerateReport(c *fiber.Ctx) error {
	var req struct {
		ReportType string          `json:"reportType" validate:"required"`
		Format     string          `json:"format" validate:"required"`
		Options    reports.Options `json:"options"`
	}
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validate.Struct(req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	userID, err := callerID(c)
	if err != nil {
		return utils.HandleError(c, fiber.StatusUnauthorized, "Invalid token")
	}

	if c.QueryBool("async") && database.AsynqClient != nil {
		rawOpts, err := json.Marshal(req.Options)
		if err != nil {
			return utils.HandleError(c, fiber.StatusBadRequest, "Invalid options")
		}
		task, err := jobs.NewGenerateReportTask(jobs.GenerateReportPayload{
			ReportType: req.ReportType,
			Format:     req.Format,
			Options:    rawOpts,
			UserID:     userID.Hex(),
		})
		if err != nil {
			return utils.HandleServiceError(c, err)
		}
		if _, err := database.AsynqClient.Enqueue(task); err != nil {
			log.Println("❌ Failed to enqueue report task:", err)
			return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to queue report")
		}
		return c.Status(fiber.StatusAccepted).JSON(fiber.Map{"message": "Report queued"})
	}

	report, err := reportService.Generate(c.Context(), req.ReportType, req.Format, req.Options, userID)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(report)
}

// DownloadReport godoc
// @Summary Download a generated report file
// @Tags reports
// @Produce octet-stream
// @Security BearerAuth
// @Param id path string true "Report ID"
// @Success 200 {file} file
// @Failure 404 {object} models.ErrorResponse
// @Router /reports/{id}/download [get]
func DownloadReport(c *fiber.Ctx) error {
	id, err := objectIDParam(c, "id")
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid id")
	}

	report, err := reportService.Download(c.Context(), id)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.Download(report.FilePath, report.FileName)
}

// GetRecentReports godoc
// @Summary The caller's 10 most recent reports, newest first
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Report
// @Router /reports/recent [get]
func GetRecentReports(c *fiber.Ctx) error {
	userID, err := callerID(c)
	if err != nil {
		return utils.HandleError(c, fiber.StatusUnauthorized, "Invalid token")
	}

	rs, err := reportService.ListRecent(c.Context(), userID)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(rs)
}
