package services

import (
	"errors"
	"fmt"

	"github.com/dicehaven/backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrCampaignNotFound = errors.New("campaign not found")

// CampaignService handles campaign, character and table-chat CRUD.
type CampaignService struct {
	db *gorm.DB
}

func NewCampaignService(db *gorm.DB) *CampaignService {
	return &CampaignService{db: db}
}

func (s *CampaignService) CreateCampaign(ownerID uuid.UUID, name, gameSystem, description string) (*models.Campaign, error) {
	if len(name) < 3 {
		return nil, errors.New("campaign name must be at least 3 characters")
	}

	campaign := models.Campaign{
		OwnerID:     ownerID,
		Name:        name,
		GameSystem:  gameSystem,
		Description: description,
		IsPublic:    true,
	}
	if err := s.db.Create(&campaign).Error; err != nil {
		return nil, fmt.Errorf("failed to create campaign: %w", err)
	}
	return &campaign, nil
}

func (s *CampaignService) GetCampaign(id uuid.UUID) (*models.Campaign, error) {
	var campaign models.Campaign
	if err := s.db.First(&campaign, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCampaignNotFound
		}
		return nil, err
	}
	return &campaign, nil
}

func (s *CampaignService) ListCampaigns(page, limit int) ([]models.Campaign, int64, error) {
	var campaigns []models.Campaign
	var total int64

	offset := (page - 1) * limit

	query := s.db.Model(&models.Campaign{}).Where("is_public = ?", true)
	query.Count(&total)

	err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&campaigns).Error
	return campaigns, total, err
}

func (s *CampaignService) CreateCharacter(campaignID, playerID uuid.UUID, name, class, backstory string) (*models.Character, error) {
	if _, err := s.GetCampaign(campaignID); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errors.New("character name is required")
	}

	character := models.Character{
		CampaignID: campaignID,
		PlayerID:   playerID,
		Name:       name,
		Class:      class,
		Level:      1,
		Backstory:  backstory,
	}
	if err := s.db.Create(&character).Error; err != nil {
		return nil, fmt.Errorf("failed to create character: %w", err)
	}
	return &character, nil
}

func (s *CampaignService) ListCharacters(campaignID uuid.UUID) ([]models.Character, error) {
	var characters []models.Character
	err := s.db.Where("campaign_id = ?", campaignID).Order("created_at ASC").Find(&characters).Error
	return characters, err
}

func (s *CampaignService) PostChatMessage(campaignID, senderID uuid.UUID, body string) (*models.ChatMessage, error) {
	if _, err := s.GetCampaign(campaignID); err != nil {
		return nil, err
	}
	if body == "" {
		return nil, errors.New("message body is required")
	}

	message := models.ChatMessage{
		CampaignID: campaignID,
		SenderID:   senderID,
		Body:       body,
	}
	if err := s.db.Create(&message).Error; err != nil {
		return nil, fmt.Errorf("failed to post chat message: %w", err)
	}
	return &message, nil
}

func (s *CampaignService) ListChatMessages(campaignID uuid.UUID, limit int) ([]models.ChatMessage, error) {
	var messages []models.ChatMessage
	err := s.db.Where("campaign_id = ?", campaignID).
		Order("created_at DESC").Limit(limit).Find(&messages).Error
	return messages, err
}
