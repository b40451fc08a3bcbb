package models

import "gorm.io/gorm"

// HasReports is implemented by every entity kind that can be the target of a
// report. It exposes only the identity pair reports are stored under.
type HasReports interface {
	ReportTargetType() string
	ReportTargetID() string
}

// ReportsFor returns all reports filed against the given entity, oldest first.
func ReportsFor(db *gorm.DB, target HasReports) ([]Report, error) {
	var reports []Report
	err := db.
		Where("target_type = ? AND target_id = ?", target.ReportTargetType(), target.ReportTargetID()).
		Order("created_at ASC").
		Find(&reports).Error
	return reports, err
}

// UnresolvedReportsFor returns reports against the entity that still await a
// moderation decision, oldest first.
func UnresolvedReportsFor(db *gorm.DB, target HasReports) ([]Report, error) {
	var reports []Report
	err := db.
		Where("target_type = ? AND target_id = ?", target.ReportTargetType(), target.ReportTargetID()).
		Where("status NOT IN ?", []string{ReportStatusResolved, ReportStatusDismissed}).
		Order("created_at ASC").
		Find(&reports).Error
	return reports, err
}
