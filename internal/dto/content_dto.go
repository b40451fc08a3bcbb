package dto

import "github.com/google/uuid"

type CreateCampaignRequest struct {
	Name        string `json:"name"`
	GameSystem  string `json:"game_system"`
	Description string `json:"description"`
}

type CreateCharacterRequest struct {
	Name      string `json:"name"`
	Class     string `json:"class"`
	Backstory string `json:"backstory"`
}

type CreatePostRequest struct {
	CampaignID *uuid.UUID `json:"campaign_id,omitempty"`
	Title      string     `json:"title"`
	Body       string     `json:"body"`
}

type CreateCommentRequest struct {
	Body string `json:"body"`
}

type ChatMessageRequest struct {
	Body string `json:"body"`
}
