package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dicehaven/backend/internal/models"
	"github.com/dicehaven/backend/internal/targets"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrInvalidTargetKind       = errors.New("invalid target kind")
	ErrTargetNotFound          = errors.New("report target not found")
	ErrReasonTooShort          = errors.New("report reason too short")
	ErrReportNotFound          = errors.New("report not found")
	ErrUnauthorized            = errors.New("moderation authority required")
	ErrInvalidTransition       = errors.New("invalid report status transition")
	ErrResolutionNotesRequired = errors.New("resolution notes required for a terminal decision")
	ErrAtomicWrite             = errors.New("atomic write failed")
)

// DefaultReasonMinLength is the minimum report reason length when the
// moderation config does not override it.
const DefaultReasonMinLength = 15

// Authorizer answers whether an actor holds moderation authority. The check
// runs before any mutation in UpdateStatus.
type Authorizer interface {
	CanModerate(actorID uuid.UUID) (bool, error)
}

// RoleAuthorizer grants moderation authority to active admin/moderator users.
type RoleAuthorizer struct {
	db *gorm.DB
}

func NewRoleAuthorizer(db *gorm.DB) *RoleAuthorizer {
	return &RoleAuthorizer{db: db}
}

func (a *RoleAuthorizer) CanModerate(actorID uuid.UUID) (bool, error) {
	var user models.User
	if err := a.db.First(&user, "id = ?", actorID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return user.CanModerate() && user.Status == models.UserStatusActive, nil
}

// ReportService owns the report lifecycle. All status transitions go through
// UpdateStatus; no other code path writes report fields after creation.
type ReportService struct {
	db              *gorm.DB
	registry        *targets.Registry
	audit           *AuditService
	authz           Authorizer
	reasonMinLength int
}

func NewReportService(db *gorm.DB, registry *targets.Registry, audit *AuditService, authz Authorizer, reasonMinLength int) *ReportService {
	if reasonMinLength <= 0 {
		reasonMinLength = DefaultReasonMinLength
	}
	return &ReportService{
		db:              db,
		registry:        registry,
		audit:           audit,
		authz:           authz,
		reasonMinLength: reasonMinLength,
	}
}

// CreateReport files a complaint against a registered target. The target must
// exist at creation time; it may be deleted later without invalidating the
// report.
func (s *ReportService) CreateReport(targetType, targetID string, reporterID uuid.UUID, reason string) (*models.Report, error) {
	target, err := s.registry.Resolve(targetType)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidTargetKind, targetType)
	}

	if _, err := target.Find(s.db, targetID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTargetNotFound
		}
		return nil, fmt.Errorf("failed to look up report target: %w", err)
	}

	if len(reason) < s.reasonMinLength {
		return nil, fmt.Errorf("%w: need at least %d characters", ErrReasonTooShort, s.reasonMinLength)
	}

	report := models.Report{
		TargetType: targetType,
		TargetID:   targetID,
		ReporterID: reporterID,
		Reason:     reason,
		Status:     models.ReportStatusOpen,
	}
	if err := s.db.Create(&report).Error; err != nil {
		return nil, fmt.Errorf("failed to create report: %w", err)
	}
	return &report, nil
}

func (s *ReportService) FindReport(id uuid.UUID) (*models.Report, error) {
	var report models.Report
	if err := s.db.First(&report, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReportNotFound
		}
		return nil, err
	}
	return &report, nil
}

// ListUnresolvedFor returns non-terminal reports against one target, oldest
// first, so the earliest-filed complaints are triaged first.
func (s *ReportService) ListUnresolvedFor(targetType, targetID string) ([]models.Report, error) {
	var reports []models.Report
	err := s.db.
		Where("target_type = ? AND target_id = ?", targetType, targetID).
		Where("status NOT IN ?", []string{models.ReportStatusResolved, models.ReportStatusDismissed}).
		Order("created_at ASC").
		Find(&reports).Error
	return reports, err
}

// ListReports returns reports for the admin queue, optionally filtered by
// status, newest first.
func (s *ReportService) ListReports(status string, limit, offset int) ([]models.Report, int64, error) {
	var reports []models.Report
	var total int64

	query := s.db.Model(&models.Report{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	query.Count(&total)

	if err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&reports).Error; err != nil {
		return nil, 0, err
	}
	return reports, total, nil
}

// UpdateStatus performs one transition of the report state machine:
//
//	open -> under_review -> resolved | dismissed
//
// under_review is optional; a report may go straight from open to a terminal
// decision. Terminal states are absorbing. The report update, the optional
// target status change, and the audit entry are written in one transaction.
//
// The status is re-checked at write time, so of two racing moderators exactly
// one wins and the loser gets ErrInvalidTransition.
func (s *ReportService) UpdateStatus(reportID uuid.UUID, newStatus, notes string, actorID uuid.UUID, targetStatus string) (*models.Report, error) {
	allowed, err := s.authz.CanModerate(actorID)
	if err != nil {
		return nil, fmt.Errorf("authorization check failed: %w", err)
	}
	if !allowed {
		return nil, ErrUnauthorized
	}

	report, err := s.FindReport(reportID)
	if err != nil {
		return nil, err
	}

	if !models.IsValidReportTransition(report.Status, newStatus) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, report.Status, newStatus)
	}
	if models.IsTerminalReportStatus(newStatus) && strings.TrimSpace(notes) == "" {
		return nil, ErrResolutionNotesRequired
	}

	fromStatus := report.Status
	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		// Guarded write: the WHERE clause re-validates the status read above,
		// so a transition that lost a race affects zero rows.
		res := tx.Model(&models.Report{}).
			Where("id = ? AND status = ?", report.ID, fromStatus).
			Updates(map[string]interface{}{
				"status":           newStatus,
				"resolution_notes": notes,
				"handled_by_id":    gorm.Expr("COALESCE(handled_by_id, ?)", actorID),
				"updated_at":       time.Now(),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("%w: report is no longer %s", ErrInvalidTransition, fromStatus)
		}

		payload := map[string]interface{}{
			"target_type":      report.TargetType,
			"target_id":        report.TargetID,
			"status_before":    fromStatus,
			"status_after":     newStatus,
			"resolution_notes": notes,
		}

		// A moderation decision may carry a status change for the reported
		// entity itself (e.g. suspending a reported user). It rides on the
		// same transaction as the report write: both commit or neither does.
		if targetStatus != "" {
			target, err := s.registry.Resolve(report.TargetType)
			if err != nil {
				return err
			}
			if target.SetStatus != nil {
				if err := target.SetStatus(tx, report.TargetID, targetStatus); err != nil {
					return fmt.Errorf("failed to apply target status %q: %w", targetStatus, err)
				}
				payload["target_status"] = targetStatus
			}
		}

		return s.audit.LogTx(tx, ActionReportStatusChanged, "report", report.ID.String(), actorID, payload)
	})
	if txErr != nil {
		if errors.Is(txErr, ErrInvalidTransition) {
			return nil, txErr
		}
		return nil, fmt.Errorf("%w: %v", ErrAtomicWrite, txErr)
	}

	return s.FindReport(reportID)
}
