package services

import (
	"encoding/json"
	"fmt"

	"github.com/dicehaven/backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Audit action names.
const (
	ActionReportStatusChanged = "report.status_changed"
	ActionUserStatusChanged   = "user.status_changed"
	ActionPostRemoved         = "post.removed"
	ActionCommentRemoved      = "comment.removed"
	ActionChatMessageRemoved  = "chat_message.removed"
	ActionCampaignDeleted     = "campaign.deleted"
)

// AuditService appends immutable entries to the admin audit ledger. There is
// deliberately no update or delete method; entries written here are permanent.
type AuditService struct {
	db *gorm.DB
}

func NewAuditService(db *gorm.DB) *AuditService {
	return &AuditService{db: db}
}

// Log appends one audit entry outside any caller transaction.
func (s *AuditService) Log(action, subjectType, subjectID string, actorID uuid.UUID, payload map[string]interface{}) error {
	return s.LogTx(s.db, action, subjectType, subjectID, actorID, payload)
}

// LogTx appends one audit entry on the given transaction handle, so the entry
// commits or rolls back together with the mutation it documents. A failed
// write fails the caller's operation; audit writes are never best-effort.
func (s *AuditService) LogTx(tx *gorm.DB, action, subjectType, subjectID string, actorID uuid.UUID, payload map[string]interface{}) error {
	raw := datatypes.JSON("{}")
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to encode audit payload: %w", err)
		}
		raw = datatypes.JSON(b)
	}

	entry := models.AuditEntry{
		ActorID:     actorID,
		Action:      action,
		SubjectType: subjectType,
		SubjectID:   subjectID,
		Payload:     raw,
	}
	if err := tx.Create(&entry).Error; err != nil {
		return fmt.Errorf("failed to append audit entry: %w", err)
	}
	return nil
}

// ListBySubject returns the audit trail for one subject in commit order.
func (s *AuditService) ListBySubject(subjectType, subjectID string, limit, offset int) ([]models.AuditEntry, int64, error) {
	var entries []models.AuditEntry
	var total int64

	query := s.db.Model(&models.AuditEntry{}).
		Where("subject_type = ? AND subject_id = ?", subjectType, subjectID)
	query.Count(&total)

	err := query.Order("created_at ASC").Limit(limit).Offset(offset).Find(&entries).Error
	if err != nil {
		return nil, 0, err
	}
	return entries, total, nil
}

// ListRecent returns the newest entries across all subjects, for the admin
// panel's activity view.
func (s *AuditService) ListRecent(action string, limit, offset int) ([]models.AuditEntry, int64, error) {
	var entries []models.AuditEntry
	var total int64

	query := s.db.Model(&models.AuditEntry{})
	if action != "" {
		query = query.Where("action = ?", action)
	}
	query.Count(&total)

	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&entries).Error
	if err != nil {
		return nil, 0, err
	}
	return entries, total, nil
}
