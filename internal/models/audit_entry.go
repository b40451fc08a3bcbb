package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// AuditEntry is one immutable record of a privileged mutation. Entries are
// append-only: nothing in this codebase updates or deletes a row once written,
// and the retention cleanup explicitly excludes this table.
type AuditEntry struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	ActorID     uuid.UUID      `gorm:"type:uuid;not null;index" json:"actor_id"`
	Action      string         `gorm:"not null;size:100;index" json:"action"`
	SubjectType string         `gorm:"not null;size:50;index:idx_audit_subject" json:"subject_type"`
	SubjectID   string         `gorm:"not null;size:255;index:idx_audit_subject" json:"subject_id"`
	Payload     datatypes.JSON `gorm:"type:jsonb;default:'{}'" json:"payload"`
	CreatedAt   time.Time      `gorm:"index" json:"created_at"`
}

func (e *AuditEntry) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

func (AuditEntry) TableName() string {
	return "audit_entries"
}
