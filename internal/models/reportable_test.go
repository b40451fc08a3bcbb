package models

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&User{}, &Report{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func TestReportsFor(t *testing.T) {
	db := openTestDB(t)

	reported := User{Username: "grumbly-gm", Email: "gm@example.com", Password: "x"}
	if err := db.Create(&reported).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	other := User{Username: "bystander", Email: "bystander@example.com", Password: "x"}
	if err := db.Create(&other).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	reporterID := uuid.New()
	base := time.Now().Add(-time.Hour)
	seed := []Report{
		{TargetType: "user", TargetID: reported.ID.String(), ReporterID: reporterID, Reason: "first complaint", Status: ReportStatusOpen},
		{TargetType: "user", TargetID: reported.ID.String(), ReporterID: reporterID, Reason: "second complaint", Status: ReportStatusResolved},
		{TargetType: "user", TargetID: reported.ID.String(), ReporterID: reporterID, Reason: "third complaint", Status: ReportStatusUnderReview},
		{TargetType: "user", TargetID: other.ID.String(), ReporterID: reporterID, Reason: "unrelated", Status: ReportStatusOpen},
	}
	for i := range seed {
		if err := db.Create(&seed[i]).Error; err != nil {
			t.Fatalf("failed to create report: %v", err)
		}
		// Spread creation times so ordering is deterministic.
		if err := db.Model(&seed[i]).Update("created_at", base.Add(time.Duration(i)*time.Minute)).Error; err != nil {
			t.Fatalf("failed to set created_at: %v", err)
		}
	}

	all, err := ReportsFor(db, &reported)
	if err != nil {
		t.Fatalf("ReportsFor: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 reports against user, got %d", len(all))
	}
	if all[0].Reason != "first complaint" || all[2].Reason != "third complaint" {
		t.Errorf("reports not ordered oldest first: %q, %q, %q", all[0].Reason, all[1].Reason, all[2].Reason)
	}

	unresolved, err := UnresolvedReportsFor(db, &reported)
	if err != nil {
		t.Fatalf("UnresolvedReportsFor: %v", err)
	}
	if len(unresolved) != 2 {
		t.Fatalf("expected 2 unresolved reports, got %d", len(unresolved))
	}
	for _, r := range unresolved {
		if IsTerminalReportStatus(r.Status) {
			t.Errorf("unresolved listing contains terminal report %s", r.ID)
		}
	}
}
