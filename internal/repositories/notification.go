package repositories

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"plotforma/admissions-guide/internal/models"
)

type NotificationRepository interface {
	Create(notification *models.Notification) error
	FindByUserID(userID uuid.UUID, filter string, limit int) ([]models.Notification, error)
	CountUnread(userID uuid.UUID) (int64, error)
	MarkRead(userID, id uuid.UUID) error
	MarkAllRead(userID uuid.UUID) (int64, error)
	Delete(userID, id uuid.UUID) error
}

type notificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Create(notification *models.Notification) error {
	if err := r.db.Create(notification).Error; err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}
	return nil
}

// FindByUserID returns the newest notifications first, narrowed by one of the
// models.Notifications* filters.
func (r *notificationRepository) FindByUserID(userID uuid.UUID, filter string, limit int) ([]models.Notification, error) {
	query := r.db.Where("user_id = ?", userID)
	switch filter {
	case models.NotificationsUnread:
		query = query.Where("read = ?", false)
	case models.NotificationsRead:
		query = query.Where("read = ?", true)
	}

	var notifications []models.Notification
	if err := query.Order("created_at DESC").Limit(limit).Find(&notifications).Error; err != nil {
		return nil, fmt.Errorf("failed to find notifications: %w", err)
	}
	return notifications, nil
}

func (r *notificationRepository) CountUnread(userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.Notification{}).
		Where("user_id = ? AND read = ?", userID, false).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count notifications: %w", err)
	}
	return count, nil
}

func (r *notificationRepository) MarkRead(userID, id uuid.UUID) error {
	result := r.db.Model(&models.Notification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("read", true)
	if result.Error != nil {
		return fmt.Errorf("failed to mark notification read: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("notification %s: %w", id, ErrRecordNotFound)
	}
	return nil
}

// MarkAllRead returns how many notifications changed.
func (r *notificationRepository) MarkAllRead(userID uuid.UUID) (int64, error) {
	result := r.db.Model(&models.Notification{}).
		Where("user_id = ? AND read = ?", userID, false).
		Update("read", true)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to mark notifications read: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *notificationRepository) Delete(userID, id uuid.UUID) error {
	result := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Notification{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete notification: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("notification %s: %w", id, ErrRecordNotFound)
	}
	return nil
}
