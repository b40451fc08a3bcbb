package targets

import (
	"errors"
	"testing"

	"github.com/dicehaven/backend/internal/models"
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

	if err := db.AutoMigrate(&models.User{}, &models.Campaign{}, &models.Post{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func TestResolveUnknownKind(t *testing.T) {
	r := NewRegistry()
	RegisterDefaults(r, nil)

	if _, err := r.Resolve("spellbook"); !errors.Is(err, ErrUnknownTargetKind) {
		t.Fatalf("expected ErrUnknownTargetKind, got %v", err)
	}
}

func TestRegisterDefaultsFiltersByEnabled(t *testing.T) {
	r := NewRegistry()
	RegisterDefaults(r, []string{"user", "post"})

	if !r.Exists("user") || !r.Exists("post") {
		t.Error("enabled kinds should be registered")
	}
	if r.Exists("campaign") || r.Exists("chat_message") {
		t.Error("disabled kinds should not be registered")
	}

	all := NewRegistry()
	RegisterDefaults(all, nil)
	if got := len(all.Keys()); got != 6 {
		t.Errorf("expected 6 default kinds, got %d", got)
	}
}

func TestFindResolvesExistingEntity(t *testing.T) {
	db := openTestDB(t)
	r := NewRegistry()
	RegisterDefaults(r, nil)

	user := models.User{Username: "rogue", Email: "rogue@example.com", Password: "x"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	target, err := r.Resolve("user")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	found, err := target.Find(db, user.ID.String())
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if found.ReportTargetType() != "user" || found.ReportTargetID() != user.ID.String() {
		t.Errorf("found wrong entity: %s/%s", found.ReportTargetType(), found.ReportTargetID())
	}

	if _, err := target.Find(db, uuid.NewString()); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("expected ErrRecordNotFound for missing user, got %v", err)
	}
	if _, err := target.Find(db, "not-a-uuid"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("expected ErrRecordNotFound for malformed id, got %v", err)
	}
}

func TestUserSetStatus(t *testing.T) {
	db := openTestDB(t)
	r := NewRegistry()
	RegisterDefaults(r, nil)

	user := models.User{Username: "troll", Email: "troll@example.com", Password: "x", Status: models.UserStatusActive}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	target, err := r.Resolve("user")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if target.SetStatus == nil {
		t.Fatal("user kind must carry a status mutator")
	}

	if err := target.SetStatus(db, user.ID.String(), models.UserStatusSuspended); err != nil {
		t.Fatalf("SetStatus: %v", err)
	}

	var reloaded models.User
	if err := db.First(&reloaded, "id = ?", user.ID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if reloaded.Status != models.UserStatusSuspended {
		t.Errorf("expected suspended, got %s", reloaded.Status)
	}

	if err := target.SetStatus(db, user.ID.String(), "vaporized"); err == nil {
		t.Error("expected error for unknown user status")
	}
	if err := target.SetStatus(db, uuid.NewString(), models.UserStatusBanned); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("expected ErrRecordNotFound for missing user, got %v", err)
	}
}

func TestContentKindsHaveNoStatusMutator(t *testing.T) {
	r := NewRegistry()
	RegisterDefaults(r, nil)

	for _, key := range []string{"campaign", "character", "post", "comment", "chat_message"} {
		target, err := r.Resolve(key)
		if err != nil {
			t.Fatalf("Resolve(%s): %v", key, err)
		}
		if target.SetStatus != nil {
			t.Errorf("kind %s should not carry a status mutator", key)
		}
	}
}
