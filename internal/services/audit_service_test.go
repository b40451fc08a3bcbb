package services

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/dicehaven/backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func TestAuditLogAppendsEntry(t *testing.T) {
	db := newTestDB(t)
	audit := NewAuditService(db)

	actor := uuid.New()
	subject := uuid.NewString()

	err := audit.Log(ActionUserStatusChanged, "user", subject, actor, map[string]interface{}{
		"status_before": "active",
		"status_after":  "suspended",
	})
	if err != nil {
		t.Fatalf("Log: %v", err)
	}

	entries := auditEntriesFor(t, db, "user", subject)
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}

	entry := entries[0]
	if entry.ActorID != actor || entry.Action != ActionUserStatusChanged {
		t.Errorf("entry mismatch: actor=%s action=%s", entry.ActorID, entry.Action)
	}

	var payload map[string]interface{}
	if err := json.Unmarshal(entry.Payload, &payload); err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	if payload["status_after"] != "suspended" {
		t.Errorf("payload status_after = %v", payload["status_after"])
	}
}

func TestAuditLogNilPayload(t *testing.T) {
	db := newTestDB(t)
	audit := NewAuditService(db)

	subject := uuid.NewString()
	if err := audit.Log(ActionPostRemoved, "post", subject, uuid.New(), nil); err != nil {
		t.Fatalf("Log: %v", err)
	}

	entries := auditEntriesFor(t, db, "post", subject)
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if string(entries[0].Payload) != "{}" {
		t.Errorf("nil payload should persist as empty object, got %s", entries[0].Payload)
	}
}

func TestAuditLogTxSharesAtomicBoundary(t *testing.T) {
	db := newTestDB(t)
	audit := NewAuditService(db)

	subject := uuid.NewString()
	sentinel := errors.New("business write failed")

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := audit.LogTx(tx, ActionCampaignDeleted, "campaign", subject, uuid.New(), nil); err != nil {
			return err
		}
		return sentinel
	})
	if !errors.Is(err, sentinel) {
		t.Fatalf("expected sentinel error, got %v", err)
	}

	if entries := auditEntriesFor(t, db, "campaign", subject); len(entries) != 0 {
		t.Errorf("rolled-back transaction left %d audit entries", len(entries))
	}
}

func TestAuditListBySubjectOrder(t *testing.T) {
	db := newTestDB(t)
	audit := NewAuditService(db)

	subject := uuid.NewString()
	actor := uuid.New()
	base := time.Now().Add(-time.Hour)

	actions := []string{ActionReportStatusChanged, ActionReportStatusChanged, ActionUserStatusChanged}
	for i, action := range actions {
		if err := audit.Log(action, "report", subject, actor, map[string]interface{}{"seq": i}); err != nil {
			t.Fatalf("Log: %v", err)
		}
	}
	// Force distinct commit times for deterministic ordering.
	var all []models.AuditEntry
	if err := db.Where("subject_type = ? AND subject_id = ?", "report", subject).Find(&all).Error; err != nil {
		t.Fatalf("load entries: %v", err)
	}
	for i := range all {
		if err := db.Model(&all[i]).Update("created_at", base.Add(time.Duration(i)*time.Second)).Error; err != nil {
			t.Fatalf("adjust created_at: %v", err)
		}
	}

	entries, total, err := audit.ListBySubject("report", subject, 10, 0)
	if err != nil {
		t.Fatalf("ListBySubject: %v", err)
	}
	if total != 3 || len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d (total %d)", len(entries), total)
	}
	for i := 1; i < len(entries); i++ {
		if entries[i].CreatedAt.Before(entries[i-1].CreatedAt) {
			t.Error("entries for one subject must be in commit order")
		}
	}
}
