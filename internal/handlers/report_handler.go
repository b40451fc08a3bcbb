package handlers

import (
	"errors"
	"strconv"

	"github.com/dicehaven/backend/internal/dto"
	"github.com/dicehaven/backend/internal/middleware"
	"github.com/dicehaven/backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ReportHandler struct {
	reportService *services.ReportService
}

func NewReportHandler(reportService *services.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// CreateReport files a complaint. Any authenticated user may report.
func (h *ReportHandler) CreateReport(c *fiber.Ctx) error {
	reporterID, err := middleware.CurrentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.CreateReportRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	report, err := h.reportService.CreateReport(req.TargetType, req.TargetID, reporterID, req.Reason)
	if err != nil {
		status := fiber.StatusBadRequest
		if errors.Is(err, services.ErrTargetNotFound) {
			status = fiber.StatusNotFound
		}
		return c.Status(status).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(report)
}

// ListReports serves the admin moderation queue.
func (h *ReportHandler) ListReports(c *fiber.Ctx) error {
	status := c.Query("status", "")
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	offset, _ := strconv.Atoi(c.Query("offset", "0"))

	if limit > 100 {
		limit = 100
	}

	reports, total, err := h.reportService.ListReports(status, limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch reports",
		})
	}

	return c.JSON(fiber.Map{
		"reports": reports,
		"total":   total,
		"limit":   limit,
		"offset":  offset,
	})
}

// ListUnresolvedForTarget returns still-open complaints against one entity.
func (h *ReportHandler) ListUnresolvedForTarget(c *fiber.Ctx) error {
	targetType := c.Params("target_type")
	targetID := c.Params("target_id")

	reports, err := h.reportService.ListUnresolvedFor(targetType, targetID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch reports",
		})
	}

	return c.JSON(fiber.Map{"reports": reports})
}

// UpdateStatus performs one report state machine transition.
func (h *ReportHandler) UpdateStatus(c *fiber.Ctx) error {
	actorID, err := middleware.CurrentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	reportID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid report ID",
		})
	}

	var req dto.UpdateReportStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	report, err := h.reportService.UpdateStatus(reportID, req.Status, req.ResolutionNotes, actorID, req.TargetStatus)
	if err != nil {
		return c.Status(reportErrorStatus(err)).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	return c.JSON(report)
}

func reportErrorStatus(err error) int {
	switch {
	case errors.Is(err, services.ErrReportNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, services.ErrUnauthorized):
		return fiber.StatusForbidden
	case errors.Is(err, services.ErrInvalidTransition):
		return fiber.StatusConflict
	case errors.Is(err, services.ErrResolutionNotesRequired):
		return fiber.StatusBadRequest
	case errors.Is(err, services.ErrAtomicWrite):
		return fiber.StatusInternalServerError
	default:
		return fiber.StatusBadRequest
	}
}
