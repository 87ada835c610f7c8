package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	ActivityAcademic   = "academic"
	ActivitySports     = "sports"
	ActivityArts       = "arts"
	ActivityCommunity  = "community"
	ActivityWork       = "work"
	ActivityLeadership = "leadership"
)

var ActivityTypes = []string{
	ActivityAcademic,
	ActivitySports,
	ActivityArts,
	ActivityCommunity,
	ActivityWork,
	ActivityLeadership,
}

var ActivityLevels = []string{"local", "state", "national", "international"}

type Activity struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID            uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Type              string    `gorm:"type:text;not null" json:"type"`
	Title             string    `gorm:"type:text" json:"title"`
	Organization      string    `gorm:"type:text" json:"organization"`
	Position          string    `gorm:"type:text" json:"position"`
	Level             string    `gorm:"type:text" json:"level"`
	Description       string    `gorm:"type:text" json:"description"`
	HoursPerWeek      float64   `json:"hours_per_week"`
	WeeksPerYear      float64   `json:"weeks_per_year"`
	YearsParticipated float64   `json:"years_participated"`
	Achievements      []string  `gorm:"serializer:json;type:jsonb" json:"achievements"`
	CreatedAt         time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt         time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Activity) TableName() string {
	return "activities"
}

// TotalHours is the lifetime time commitment of the activity.
func (a Activity) TotalHours() float64 {
	return a.HoursPerWeek * a.WeeksPerYear * a.YearsParticipated
}
