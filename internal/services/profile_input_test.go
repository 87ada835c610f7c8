package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"plotforma/admissions-guide/internal/models"
)

func TestBuildEvaluationInput(t *testing.T) {
	gpa := 3.6
	profile := &models.Profile{GPA: &gpa}
	scores := []models.TestScore{
		{TestType: "SAT", Score: 1320},
		{TestType: "ielts", Score: 7.0},
		{TestType: "IELTS", Score: 6.0},
		{TestType: "SAT", Score: 1100},
	}
	activities := []models.Activity{
		{Type: models.ActivityCommunity, HoursPerWeek: 2, WeeksPerYear: 20, YearsParticipated: 1},
		{Type: models.ActivitySports, HoursPerWeek: 10, WeeksPerYear: 40, YearsParticipated: 3},
		{Type: models.ActivityCommunity, HoursPerWeek: 1, WeeksPerYear: 10, YearsParticipated: 2},
	}

	input := BuildEvaluationInput(profile, scores, activities)

	assert.Equal(t, EvaluationInput{
		GPA:                   3.6,
		LanguageScore:         7.0,
		StandardizedTestScore: 1320,
		VolunteerHours:        60,
	}, input)

	assert.Equal(t, models.TierMiddle, NewProfileScorer().Score(input).Tier)
}

func TestBuildEvaluationInput_LatestByTestDate(t *testing.T) {
	entered := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	scores := []models.TestScore{
		// entered last, but taken first
		{TestType: "IELTS", Score: 5.5, TestDate: "2025-01-10", CreatedAt: entered.Add(48 * time.Hour)},
		{TestType: "IELTS", Score: 7.5, TestDate: "2025-11-02", CreatedAt: entered},
		{TestType: "IELTS", Score: 9.0, CreatedAt: entered.Add(72 * time.Hour)},
		{TestType: "SAT", Score: 1200, CreatedAt: entered},
		{TestType: "SAT", Score: 1380, CreatedAt: entered.Add(time.Hour)},
	}

	input := BuildEvaluationInput(nil, scores, nil)
	assert.Equal(t, 7.5, input.LanguageScore)
	assert.Equal(t, 1380.0, input.StandardizedTestScore)
}

func TestBuildEvaluationInput_Empty(t *testing.T) {
	assert.Equal(t, EvaluationInput{}, BuildEvaluationInput(nil, nil, nil))
	assert.Equal(t, EvaluationInput{}, BuildEvaluationInput(&models.Profile{}, nil, nil))
}

func TestTotalActivityHours(t *testing.T) {
	activities := []models.Activity{
		{HoursPerWeek: 5, WeeksPerYear: 30, YearsParticipated: 2},
		{HoursPerWeek: 1, WeeksPerYear: 52, YearsParticipated: 1},
	}
	assert.Equal(t, 352.0, TotalActivityHours(activities))
	assert.Equal(t, 0.0, TotalActivityHours(nil))
}
