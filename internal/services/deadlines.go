package services

import (
	"math"
	"time"

	"plotforma/admissions-guide/internal/models"
)

const (
	DeadlineOverdue  = "overdue"
	DeadlineUrgent   = "urgent"
	DeadlineSoon     = "soon"
	DeadlineUpcoming = "upcoming"
	DeadlineUnknown  = "unknown"
	// DeadlineCompleted only applies to user deadlines marked done.
	DeadlineCompleted = "completed"
)

const deadlineLayout = "2006-01-02"

// DaysUntil rounds the distance to the deadline up to whole days.
func DaysUntil(date string, now time.Time) (int, bool) {
	deadline, err := time.ParseInLocation(deadlineLayout, date, time.UTC)
	if err != nil {
		return 0, false
	}

	diff := deadline.Sub(now).Hours() / 24
	return int(math.Ceil(diff)), true
}

func DeadlineStatus(date string, now time.Time) string {
	days, ok := DaysUntil(date, now)
	if !ok {
		return DeadlineUnknown
	}

	switch {
	case days < 0:
		return DeadlineOverdue
	case days <= 7:
		return DeadlineUrgent
	case days <= 30:
		return DeadlineSoon
	default:
		return DeadlineUpcoming
	}
}

func DeadlineViews(deadlines []models.Deadline, now time.Time) []models.DeadlineView {
	views := make([]models.DeadlineView, 0, len(deadlines))
	for _, d := range deadlines {
		view := models.DeadlineView{Deadline: d, Status: DeadlineStatus(d.Date, now)}
		if days, ok := DaysUntil(d.Date, now); ok {
			view.DaysLeft = &days
		}
		views = append(views, view)
	}
	return views
}

// UserDeadlineViews annotates a user's deadlines and counts the open ones due within
// a month. Completed deadlines keep their days_left but report DeadlineCompleted.
func UserDeadlineViews(deadlines []models.UserDeadline, now time.Time) ([]models.UserDeadlineView, int) {
	views := make([]models.UserDeadlineView, 0, len(deadlines))
	dueSoon := 0
	for _, d := range deadlines {
		view := models.UserDeadlineView{UserDeadline: d, Status: DeadlineStatus(d.Date, now)}
		if days, ok := DaysUntil(d.Date, now); ok {
			view.DaysLeft = &days
		}

		if d.Completed {
			view.Status = DeadlineCompleted
		} else if view.Status == DeadlineUrgent || view.Status == DeadlineSoon {
			dueSoon++
		}

		views = append(views, view)
	}
	return views, dueSoon
}
