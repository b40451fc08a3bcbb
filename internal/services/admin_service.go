package services

import (
	"errors"
	"fmt"

	"github.com/dicehaven/backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrInvalidUserStatus = errors.New("invalid user status")
)

// AdminService performs privileged mutations on platform entities. Every
// mutation and its audit entry share one transaction; there is no way to
// change moderated state through here without leaving a ledger record.
type AdminService struct {
	db    *gorm.DB
	audit *AuditService
}

func NewAdminService(db *gorm.DB, audit *AuditService) *AdminService {
	return &AdminService{db: db, audit: audit}
}

// SetUserStatus suspends, bans or reinstates an account.
func (s *AdminService) SetUserStatus(userID uuid.UUID, status string, actorID uuid.UUID, reason string) (*models.User, error) {
	if !models.ValidUserStatus(status) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidUserStatus, status)
	}

	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	statusBefore := user.Status
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&user).Update("status", status).Error; err != nil {
			return err
		}
		return s.audit.LogTx(tx, ActionUserStatusChanged, "user", user.ID.String(), actorID, map[string]interface{}{
			"status_before": statusBefore,
			"status_after":  status,
			"reason":        reason,
		})
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAtomicWrite, err)
	}

	user.Status = status
	return &user, nil
}

// RemovePost soft-deletes a post as a moderation action.
func (s *AdminService) RemovePost(postID uuid.UUID, actorID uuid.UUID, reason string) error {
	var post models.Post
	if err := s.db.First(&post, "id = ?", postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPostNotFound
		}
		return err
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&post).Error; err != nil {
			return err
		}
		return s.audit.LogTx(tx, ActionPostRemoved, "post", post.ID.String(), actorID, map[string]interface{}{
			"author_id": post.AuthorID.String(),
			"title":     post.Title,
			"reason":    reason,
		})
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrAtomicWrite, err)
	}
	return nil
}

// RemoveComment soft-deletes a comment as a moderation action.
func (s *AdminService) RemoveComment(commentID uuid.UUID, actorID uuid.UUID, reason string) error {
	var comment models.Comment
	if err := s.db.First(&comment, "id = ?", commentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCommentNotFound
		}
		return err
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&comment).Error; err != nil {
			return err
		}
		return s.audit.LogTx(tx, ActionCommentRemoved, "comment", comment.ID.String(), actorID, map[string]interface{}{
			"author_id": comment.AuthorID.String(),
			"post_id":   comment.PostID.String(),
			"reason":    reason,
		})
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrAtomicWrite, err)
	}
	return nil
}

// RemoveChatMessage soft-deletes a campaign chat message.
func (s *AdminService) RemoveChatMessage(messageID uuid.UUID, actorID uuid.UUID, reason string) error {
	var message models.ChatMessage
	if err := s.db.First(&message, "id = ?", messageID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrChatMessageNotFound
		}
		return err
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&message).Error; err != nil {
			return err
		}
		return s.audit.LogTx(tx, ActionChatMessageRemoved, "chat_message", message.ID.String(), actorID, map[string]interface{}{
			"sender_id":   message.SenderID.String(),
			"campaign_id": message.CampaignID.String(),
			"reason":      reason,
		})
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrAtomicWrite, err)
	}
	return nil
}

// DeleteCampaign soft-deletes a campaign and its chat as a moderation action.
func (s *AdminService) DeleteCampaign(campaignID uuid.UUID, actorID uuid.UUID, reason string) error {
	var campaign models.Campaign
	if err := s.db.First(&campaign, "id = ?", campaignID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCampaignNotFound
		}
		return err
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("campaign_id = ?", campaign.ID).Delete(&models.ChatMessage{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&campaign).Error; err != nil {
			return err
		}
		return s.audit.LogTx(tx, ActionCampaignDeleted, "campaign", campaign.ID.String(), actorID, map[string]interface{}{
			"owner_id": campaign.OwnerID.String(),
			"name":     campaign.Name,
			"reason":   reason,
		})
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrAtomicWrite, err)
	}
	return nil
}
