package services

import (
	"testing"

	"github.com/dicehaven/backend/internal/models"
	"github.com/dicehaven/backend/internal/targets"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
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

	if err := db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.Campaign{},
		&models.Character{},
		&models.Post{},
		&models.Comment{},
		&models.ChatMessage{},
		&models.Report{},
		&models.AuditEntry{},
	); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username, role string) *models.User {
	t.Helper()

	user := models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: "not-a-real-hash",
		Role:     role,
		Status:   models.UserStatusActive,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to create user %s: %v", username, err)
	}
	return &user
}

func newTestReportService(t *testing.T, db *gorm.DB) *ReportService {
	t.Helper()

	registry := targets.NewRegistry()
	targets.RegisterDefaults(registry, nil)
	audit := NewAuditService(db)
	return NewReportService(db, registry, audit, NewRoleAuthorizer(db), 0)
}

func auditEntriesFor(t *testing.T, db *gorm.DB, subjectType, subjectID string) []models.AuditEntry {
	t.Helper()

	var entries []models.AuditEntry
	if err := db.Where("subject_type = ? AND subject_id = ?", subjectType, subjectID).
		Order("created_at ASC").Find(&entries).Error; err != nil {
		t.Fatalf("failed to load audit entries: %v", err)
	}
	return entries
}
