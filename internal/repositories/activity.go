package repositories

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"plotforma/admissions-guide/internal/models"
)

type ActivityRepository interface {
	Create(activity *models.Activity) error
	FindByID(userID, id uuid.UUID) (*models.Activity, error)
	FindByUserID(userID uuid.UUID) ([]models.Activity, error)
	Update(activity *models.Activity) error
	Delete(userID, id uuid.UUID) error
}

type activityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &activityRepository{db: db}
}

func (r *activityRepository) Create(activity *models.Activity) error {
	if err := r.db.Create(activity).Error; err != nil {
		return fmt.Errorf("failed to create activity: %w", err)
	}
	return nil
}

// FindByID only matches activities owned by userID.
func (r *activityRepository) FindByID(userID, id uuid.UUID) (*models.Activity, error) {
	var activity models.Activity
	if err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&activity).Error; err != nil {
		return nil, wrapFind(err, "activity")
	}
	return &activity, nil
}

func (r *activityRepository) FindByUserID(userID uuid.UUID) ([]models.Activity, error) {
	var activities []models.Activity
	if err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&activities).Error; err != nil {
		return nil, fmt.Errorf("failed to find activities: %w", err)
	}
	return activities, nil
}

func (r *activityRepository) Update(activity *models.Activity) error {
	if err := r.db.Save(activity).Error; err != nil {
		return fmt.Errorf("failed to update activity: %w", err)
	}
	return nil
}

func (r *activityRepository) Delete(userID, id uuid.UUID) error {
	result := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Activity{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete activity: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("activity %s: %w", id, ErrRecordNotFound)
	}
	return nil
}
