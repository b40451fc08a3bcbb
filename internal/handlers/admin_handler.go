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

// AdminHandler exposes the privileged moderation actions of the admin panel.
// The routes carry JWT + AdminRequired middleware; every mutation here lands
// in the audit ledger via AdminService.
type AdminHandler struct {
	adminService *services.AdminService
	auditService *services.AuditService
}

func NewAdminHandler(adminService *services.AdminService, auditService *services.AuditService) *AdminHandler {
	return &AdminHandler{adminService: adminService, auditService: auditService}
}

func (h *AdminHandler) SetUserStatus(c *fiber.Ctx) error {
	actorID, err := middleware.CurrentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid user ID",
		})
	}

	var req dto.SetUserStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	user, err := h.adminService.SetUserStatus(userID, req.Status, actorID, req.Reason)
	if err != nil {
		status := fiber.StatusBadRequest
		if errors.Is(err, services.ErrUserNotFound) {
			status = fiber.StatusNotFound
		} else if errors.Is(err, services.ErrAtomicWrite) {
			status = fiber.StatusInternalServerError
		}
		return c.Status(status).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	return c.JSON(user)
}

func (h *AdminHandler) RemovePost(c *fiber.Ctx) error {
	return h.removeContent(c, func(id, actorID uuid.UUID, reason string) error {
		return h.adminService.RemovePost(id, actorID, reason)
	})
}

func (h *AdminHandler) RemoveComment(c *fiber.Ctx) error {
	return h.removeContent(c, func(id, actorID uuid.UUID, reason string) error {
		return h.adminService.RemoveComment(id, actorID, reason)
	})
}

func (h *AdminHandler) RemoveChatMessage(c *fiber.Ctx) error {
	return h.removeContent(c, func(id, actorID uuid.UUID, reason string) error {
		return h.adminService.RemoveChatMessage(id, actorID, reason)
	})
}

func (h *AdminHandler) DeleteCampaign(c *fiber.Ctx) error {
	return h.removeContent(c, func(id, actorID uuid.UUID, reason string) error {
		return h.adminService.DeleteCampaign(id, actorID, reason)
	})
}

func (h *AdminHandler) removeContent(c *fiber.Ctx, remove func(id, actorID uuid.UUID, reason string) error) error {
	actorID, err := middleware.CurrentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid ID",
		})
	}

	var req dto.RemoveContentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	if err := remove(id, actorID, req.Reason); err != nil {
		status := fiber.StatusBadRequest
		if errors.Is(err, services.ErrPostNotFound) ||
			errors.Is(err, services.ErrCommentNotFound) ||
			errors.Is(err, services.ErrChatMessageNotFound) ||
			errors.Is(err, services.ErrCampaignNotFound) {
			status = fiber.StatusNotFound
		} else if errors.Is(err, services.ErrAtomicWrite) {
			status = fiber.StatusInternalServerError
		}
		return c.Status(status).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	return c.JSON(fiber.Map{"message": "Removed"})
}

// AuditTrail returns the ledger for one subject in commit order.
func (h *AdminHandler) AuditTrail(c *fiber.Ctx) error {
	subjectType := c.Params("subject_type")
	subjectID := c.Params("subject_id")
	limit, _ := strconv.Atoi(c.Query("limit", "50"))
	offset, _ := strconv.Atoi(c.Query("offset", "0"))

	if limit > 200 {
		limit = 200
	}

	entries, total, err := h.auditService.ListBySubject(subjectType, subjectID, limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch audit trail",
		})
	}

	return c.JSON(fiber.Map{
		"entries": entries,
		"total":   total,
	})
}

// RecentAudit returns the newest audit entries across all subjects.
func (h *AdminHandler) RecentAudit(c *fiber.Ctx) error {
	action := c.Query("action", "")
	limit, _ := strconv.Atoi(c.Query("limit", "50"))
	offset, _ := strconv.Atoi(c.Query("offset", "0"))

	if limit > 200 {
		limit = 200
	}

	entries, total, err := h.auditService.ListRecent(action, limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch audit entries",
		})
	}

	return c.JSON(fiber.Map{
		"entries": entries,
		"total":   total,
	})
}
