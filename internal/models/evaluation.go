package models

import (
	"time"

	"github.com/google/uuid"
)

type Tier string

const (
	TierJunior Tier = "Junior"
	TierMiddle Tier = "Middle"
	TierSenior Tier = "Senior"
)

// Evaluation is a stored ProfileScorer result. Anonymous evaluations are not persisted.
type Evaluation struct {
	ID                    uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID                uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	GPA                   float64   `json:"gpa"`
	LanguageScore         float64   `json:"language_score"`
	StandardizedTestScore float64   `json:"standardized_test_score"`
	VolunteerHours        float64   `json:"volunteer_hours"`
	Tier                  Tier      `gorm:"type:text;not null" json:"tier"`
	Advisories            []string  `gorm:"serializer:json;type:jsonb" json:"advisories"`
	CreatedAt             time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (Evaluation) TableName() string {
	return "evaluations"
}
