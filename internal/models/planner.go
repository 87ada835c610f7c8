package models

import (
	"time"

	"github.com/google/uuid"
)

var (
	DeadlineCategories = []string{"Application", "Exam", "Scholarship", "Document"}
	DeadlinePriorities = []string{"Low", "Medium", "High", "Critical"}
)

const (
	DefaultDeadlineCategory = "Application"
	DefaultDeadlinePriority = "Medium"
)

// UserDeadline is a deadline a user tracks in their own calendar, next to the
// shared catalog deadlines.
type UserDeadline struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID      uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	Title       string     `gorm:"type:text;not null" json:"title"`
	Date        string     `gorm:"type:text;not null" json:"date"`
	Category    string     `gorm:"type:text" json:"category"`
	University  string     `gorm:"type:text" json:"university"`
	Priority    string     `gorm:"type:text" json:"priority"`
	Completed   bool       `gorm:"not null;default:false" json:"completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CreatedAt   time.Time  `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (UserDeadline) TableName() string {
	return "user_deadlines"
}

const (
	NotificationDeadline    = "deadline"
	NotificationScholarship = "scholarship"
	NotificationExam        = "exam"
	NotificationInfo        = "info"
	NotificationDocument    = "document"
)

const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Notification filters accepted by the list endpoint.
const (
	NotificationsAll    = "all"
	NotificationsUnread = "unread"
	NotificationsRead   = "read"
)

type Notification struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Type      string    `gorm:"type:text;not null" json:"type"`
	Title     string    `gorm:"type:text" json:"title"`
	Message   string    `gorm:"type:text" json:"message"`
	Priority  string    `gorm:"type:text" json:"priority"`
	Read      bool      `gorm:"not null;default:false" json:"read"`
	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (Notification) TableName() string {
	return "notifications"
}
