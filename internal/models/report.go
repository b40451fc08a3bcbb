package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Report statuses.
const (
	ReportStatusOpen        = "open"
	ReportStatusUnderReview = "under_review"
	ReportStatusResolved    = "resolved"
	ReportStatusDismissed   = "dismissed"
)

// Valid state transitions: from -> []to. Resolved and dismissed are terminal.
// under_review is an optional waypoint; a report may go straight from open to
// a terminal decision.
var ValidReportTransitions = map[string][]string{
	ReportStatusOpen:        {ReportStatusUnderReview, ReportStatusResolved, ReportStatusDismissed},
	ReportStatusUnderReview: {ReportStatusResolved, ReportStatusDismissed},
	ReportStatusResolved:    {},
	ReportStatusDismissed:   {},
}

func IsValidReportTransition(from, to string) bool {
	allowed, ok := ValidReportTransitions[from]
	if !ok {
		return false
	}
	for _, s := range allowed {
		if s == to {
			return true
		}
	}
	return false
}

// IsTerminalReportStatus reports whether s has no outgoing transitions.
func IsTerminalReportStatus(s string) bool {
	return s == ReportStatusResolved || s == ReportStatusDismissed
}

// Report is a complaint filed against a reportable entity. Reports are never
// deleted; dismissal or resolution is the end of their lifecycle, which keeps
// the audit trail from ever dangling.
type Report struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	TargetType      string     `gorm:"not null;size:50;index:idx_reports_target" json:"target_type"`
	TargetID        string     `gorm:"not null;size:255;index:idx_reports_target" json:"target_id"`
	ReporterID      uuid.UUID  `gorm:"type:uuid;not null;index" json:"reporter_id"`
	Reason          string     `gorm:"type:text;not null" json:"reason"`
	Status          string     `gorm:"not null;default:'open';size:20;index" json:"status"`
	ResolutionNotes string     `gorm:"size:1000" json:"resolution_notes,omitempty"`
	HandledByID     *uuid.UUID `gorm:"type:uuid;index" json:"handled_by_id,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
	Reporter        User       `gorm:"foreignKey:ReporterID" json:"-"`
}

func (r *Report) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
