package services

import (
	"errors"
	"fmt"

	"github.com/dicehaven/backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrPostNotFound        = errors.New("post not found")
	ErrCommentNotFound     = errors.New("comment not found")
	ErrChatMessageNotFound = errors.New("chat message not found")
)

// ContentService handles forum posts and comments.
type ContentService struct {
	db *gorm.DB
}

func NewContentService(db *gorm.DB) *ContentService {
	return &ContentService{db: db}
}

func (s *ContentService) CreatePost(authorID uuid.UUID, campaignID *uuid.UUID, title, body string) (*models.Post, error) {
	if title == "" {
		return nil, errors.New("post title is required")
	}
	if len(body) < 10 {
		return nil, errors.New("post body must be at least 10 characters")
	}

	post := models.Post{
		AuthorID:   authorID,
		CampaignID: campaignID,
		Title:      title,
		Body:       body,
	}
	if err := s.db.Create(&post).Error; err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}
	return &post, nil
}

func (s *ContentService) GetPost(id uuid.UUID) (*models.Post, error) {
	var post models.Post
	if err := s.db.First(&post, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return &post, nil
}

func (s *ContentService) ListPosts(page, limit int) ([]models.Post, int64, error) {
	var posts []models.Post
	var total int64

	offset := (page - 1) * limit

	s.db.Model(&models.Post{}).Count(&total)
	err := s.db.Order("created_at DESC").Offset(offset).Limit(limit).Find(&posts).Error
	return posts, total, err
}

func (s *ContentService) CreateComment(postID, authorID uuid.UUID, body string) (*models.Comment, error) {
	if _, err := s.GetPost(postID); err != nil {
		return nil, err
	}
	if body == "" {
		return nil, errors.New("comment body is required")
	}

	comment := models.Comment{
		PostID:   postID,
		AuthorID: authorID,
		Body:     body,
	}
	if err := s.db.Create(&comment).Error; err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}
	return &comment, nil
}

func (s *ContentService) ListComments(postID uuid.UUID) ([]models.Comment, error) {
	var comments []models.Comment
	err := s.db.Where("post_id = ?", postID).Order("created_at ASC").Find(&comments).Error
	return comments, err
}
