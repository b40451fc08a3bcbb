package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Campaign is a tabletop-RPG campaign run by a game master.
type Campaign struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	OwnerID     uuid.UUID      `gorm:"type:uuid;not null;index" json:"owner_id"`
	Name        string         `gorm:"not null;size:150" json:"name"`
	GameSystem  string         `gorm:"size:100" json:"game_system"`
	Description string         `gorm:"type:text" json:"description"`
	IsPublic    bool           `gorm:"default:true" json:"is_public"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
	Owner       User           `gorm:"foreignKey:OwnerID" json:"-"`
}

func (c *Campaign) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

func (c *Campaign) ReportTargetType() string { return "campaign" }
func (c *Campaign) ReportTargetID() string   { return c.ID.String() }

// Character is a player character inside a campaign.
type Character struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	CampaignID uuid.UUID      `gorm:"type:uuid;not null;index" json:"campaign_id"`
	PlayerID   uuid.UUID      `gorm:"type:uuid;not null;index" json:"player_id"`
	Name       string         `gorm:"not null;size:100" json:"name"`
	Class      string         `gorm:"size:50" json:"class"`
	Level      int            `gorm:"default:1" json:"level"`
	Backstory  string         `gorm:"type:text" json:"backstory"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
	Campaign   Campaign       `gorm:"foreignKey:CampaignID" json:"-"`
}

func (c *Character) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

func (c *Character) ReportTargetType() string { return "character" }
func (c *Character) ReportTargetID() string   { return c.ID.String() }
