package targets

import (
	"errors"
	"fmt"
	"sync"

	"github.com/dicehaven/backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrUnknownTargetKind = errors.New("unknown target kind")

// Target binds a short type key to the concrete entity kind it addresses.
// Find checks existence in that kind's id space; SetStatus, when non-nil,
// applies a moderation status to the entity (wired for users only).
type Target struct {
	Key       string
	Find      func(db *gorm.DB, id string) (models.HasReports, error)
	SetStatus func(tx *gorm.DB, id string, status string) error
}

// Registry maps target keys to entity kinds. It is populated once at startup
// and read-only afterwards.
type Registry struct {
	mu    sync.RWMutex
	kinds map[string]*Target
}

func NewRegistry() *Registry {
	return &Registry{kinds: make(map[string]*Target)}
}

func (r *Registry) Register(t *Target) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.kinds[t.Key] = t
}

// Resolve returns the target kind registered under key.
func (r *Registry) Resolve(key string) (*Target, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.kinds[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTargetKind, key)
	}
	return t, nil
}

func (r *Registry) Exists(key string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.kinds[key]
	return ok
}

// Keys returns the registered target keys.
func (r *Registry) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	keys := make([]string, 0, len(r.kinds))
	for k := range r.kinds {
		keys = append(keys, k)
	}
	return keys
}

// RegisterDefaults wires every reportable entity kind of the platform.
// enabled filters which keys are registered; nil enables all.
func RegisterDefaults(r *Registry, enabled []string) {
	all := []*Target{
		{
			Key:  "user",
			Find: findByUUID(func() models.HasReports { return &models.User{} }),
			SetStatus: func(tx *gorm.DB, id string, status string) error {
				if !models.ValidUserStatus(status) {
					return fmt.Errorf("invalid user status: %s", status)
				}
				uid, err := uuid.Parse(id)
				if err != nil {
					return fmt.Errorf("invalid user id: %w", err)
				}
				res := tx.Model(&models.User{}).Where("id = ?", uid).Update("status", status)
				if res.Error != nil {
					return res.Error
				}
				if res.RowsAffected == 0 {
					return gorm.ErrRecordNotFound
				}
				return nil
			},
		},
		{Key: "campaign", Find: findByUUID(func() models.HasReports { return &models.Campaign{} })},
		{Key: "character", Find: findByUUID(func() models.HasReports { return &models.Character{} })},
		{Key: "post", Find: findByUUID(func() models.HasReports { return &models.Post{} })},
		{Key: "comment", Find: findByUUID(func() models.HasReports { return &models.Comment{} })},
		{Key: "chat_message", Find: findByUUID(func() models.HasReports { return &models.ChatMessage{} })},
	}

	allow := make(map[string]bool, len(enabled))
	for _, k := range enabled {
		allow[k] = true
	}
	for _, t := range all {
		if enabled == nil || allow[t.Key] {
			r.Register(t)
		}
	}
}

// findByUUID builds a Find function for entity kinds keyed by uuid.
func findByUUID(newEntity func() models.HasReports) func(db *gorm.DB, id string) (models.HasReports, error) {
	return func(db *gorm.DB, id string) (models.HasReports, error) {
		uid, err := uuid.Parse(id)
		if err != nil {
			return nil, gorm.ErrRecordNotFound
		}
		entity := newEntity()
		if err := db.First(entity, "id = ?", uid).Error; err != nil {
			return nil, err
		}
		return entity, nil
	}
}
