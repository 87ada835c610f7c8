package services

import (
	"strings"

	"plotforma/admissions-guide/internal/models"
)

const (
	languageTestType     = "IELTS"
	standardizedTestType = "SAT"
)

// BuildEvaluationInput assembles scorer input from stored profile data. The latest
// IELTS and SAT results are picked by test date, then by entry time.
func BuildEvaluationInput(profile *models.Profile, scores []models.TestScore, activities []models.Activity) EvaluationInput {
	var input EvaluationInput

	if profile != nil && profile.GPA != nil {
		input.GPA = models.Finite(*profile.GPA)
	}

	input.LanguageScore = latestScore(scores, languageTestType)
	input.StandardizedTestScore = latestScore(scores, standardizedTestType)
	input.VolunteerHours = VolunteerHours(activities)

	return input
}

func latestScore(scores []models.TestScore, testType string) float64 {
	var latest *models.TestScore
	for i := range scores {
		s := &scores[i]
		if !strings.EqualFold(strings.TrimSpace(s.TestType), testType) {
			continue
		}
		if latest == nil || takenAfter(s, latest) {
			latest = s
		}
	}
	if latest == nil {
		return 0
	}
	return models.Finite(latest.Score)
}

// takenAfter compares YYYY-MM-DD test dates as strings. An undated score only wins
// against another undated one, by entry time.
func takenAfter(a, b *models.TestScore) bool {
	da, db := strings.TrimSpace(a.TestDate), strings.TrimSpace(b.TestDate)
	if da != db {
		return da > db
	}
	return a.CreatedAt.After(b.CreatedAt)
}

// VolunteerHours sums the lifetime hours of community service activities.
func VolunteerHours(activities []models.Activity) float64 {
	var total float64
	for _, a := range activities {
		if a.Type == models.ActivityCommunity {
			total += models.Finite(a.TotalHours())
		}
	}
	return total
}

func TotalActivityHours(activities []models.Activity) float64 {
	var total float64
	for _, a := range activities {
		total += models.Finite(a.TotalHours())
	}
	return total
}
