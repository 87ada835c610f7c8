package repositories

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"plotforma/admissions-guide/internal/models"
)

type ChatRepository interface {
	Append(messages ...*models.ChatMessage) error
	FindByUserID(userID uuid.UUID, limit int) ([]models.ChatMessage, error)
}

type chatRepository struct {
	db *gorm.DB
}

func NewChatRepository(db *gorm.DB) ChatRepository {
	return &chatRepository{db: db}
}

// Append stores the messages in one transaction so a question is never saved without its reply.
func (r *chatRepository) Append(messages ...*models.ChatMessage) error {
	if len(messages) == 0 {
		return nil
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		for _, m := range messages {
			if err := tx.Create(m).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to append chat messages: %w", err)
	}
	return nil
}

// FindByUserID returns the latest limit messages in chronological order.
func (r *chatRepository) FindByUserID(userID uuid.UUID, limit int) ([]models.ChatMessage, error) {
	var messages []models.ChatMessage
	if err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&messages).Error; err != nil {
		return nil, fmt.Errorf("failed to find chat messages: %w", err)
	}

	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
	return messages, nil
}
