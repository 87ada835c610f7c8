package models

import (
	"time"

	"github.com/google/uuid"
)

type Profile struct {
	UserID      uuid.UUID `gorm:"type:uuid;primary_key" json:"user_id"`
	FullName    string    `gorm:"type:text" json:"full_name"`
	Phone       string    `gorm:"type:text" json:"phone"`
	School      string    `gorm:"type:text" json:"school"`
	Grade       string    `gorm:"type:text" json:"grade"`
	GPA         *float64  `gorm:"type:decimal(3,2)" json:"gpa,omitempty"`
	TargetMajor string    `gorm:"type:text" json:"target_major"`
	Bio         string    `gorm:"type:text" json:"bio"`
	Country     string    `gorm:"type:text" json:"country"`
	CreatedAt   time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt   time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Profile) TableName() string {
	return "profiles"
}

type TestScore struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	TestType  string    `gorm:"type:text;not null" json:"test_type"`
	Score     float64   `json:"score"`
	TestDate  string    `gorm:"type:text" json:"test_date"`
	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (TestScore) TableName() string {
	return "test_scores"
}
