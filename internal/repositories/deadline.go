package repositories

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"plotforma/admissions-guide/internal/models"
)

type DeadlineRepository interface {
	Create(deadline *models.UserDeadline) error
	FindByUserID(userID uuid.UUID, category string) ([]models.UserDeadline, error)
	MarkComplete(userID, id uuid.UUID, at time.Time) (*models.UserDeadline, error)
	Delete(userID, id uuid.UUID) error
}

type deadlineRepository struct {
	db *gorm.DB
}

func NewDeadlineRepository(db *gorm.DB) DeadlineRepository {
	return &deadlineRepository{db: db}
}

func (r *deadlineRepository) Create(deadline *models.UserDeadline) error {
	if err := r.db.Create(deadline).Error; err != nil {
		return fmt.Errorf("failed to create deadline: %w", err)
	}
	return nil
}

// FindByUserID returns the user's deadlines, earliest first. An empty category matches all.
func (r *deadlineRepository) FindByUserID(userID uuid.UUID, category string) ([]models.UserDeadline, error) {
	query := r.db.Where("user_id = ?", userID)
	if category != "" {
		query = query.Where("category = ?", category)
	}

	var deadlines []models.UserDeadline
	if err := query.Order("date ASC, created_at ASC").Find(&deadlines).Error; err != nil {
		return nil, fmt.Errorf("failed to find deadlines: %w", err)
	}
	return deadlines, nil
}

func (r *deadlineRepository) MarkComplete(userID, id uuid.UUID, at time.Time) (*models.UserDeadline, error) {
	result := r.db.Model(&models.UserDeadline{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(map[string]interface{}{
			"completed":    true,
			"completed_at": at,
			"updated_at":   at,
		})
	if result.Error != nil {
		return nil, fmt.Errorf("failed to complete deadline: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, fmt.Errorf("deadline %s: %w", id, ErrRecordNotFound)
	}

	var deadline models.UserDeadline
	if err := r.db.Where("id = ?", id).First(&deadline).Error; err != nil {
		return nil, wrapFind(err, "deadline")
	}
	return &deadline, nil
}

func (r *deadlineRepository) Delete(userID, id uuid.UUID) error {
	result := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.UserDeadline{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete deadline: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("deadline %s: %w", id, ErrRecordNotFound)
	}
	return nil
}
