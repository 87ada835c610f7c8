package models

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumber_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		body string
		want EvaluateRequest
	}{
		{"numbers", `{"gpa":3.9,"language_score":8,"standardized_test_score":1450,"volunteer_hours":12.5}`,
			EvaluateRequest{GPA: 3.9, LanguageScore: 8, StandardizedTestScore: 1450, VolunteerHours: 12.5}},
		{"numeric strings", `{"gpa":" 3.4 ","language_score":"6.6"}`,
			EvaluateRequest{GPA: 3.4, LanguageScore: 6.6}},
		{"garbage", `{"gpa":"abc","language_score":"","standardized_test_score":null,"volunteer_hours":{"x":1}}`,
			EvaluateRequest{}},
		{"booleans and arrays", `{"gpa":true,"language_score":[7]}`, EvaluateRequest{}},
		{"non finite strings", `{"gpa":"NaN","language_score":"Inf","standardized_test_score":"-Infinity"}`, EvaluateRequest{}},
		{"missing", `{}`, EvaluateRequest{}},
		{"negative", `{"volunteer_hours":"-5"}`, EvaluateRequest{VolunteerHours: -5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got EvaluateRequest
			require.NoError(t, json.Unmarshal([]byte(tt.body), &got))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFinite(t *testing.T) {
	assert.Equal(t, 0.0, Finite(math.NaN()))
	assert.Equal(t, 0.0, Finite(math.Inf(1)))
	assert.Equal(t, 0.0, Finite(math.Inf(-1)))
	assert.Equal(t, 2.5, Finite(2.5))
}

func TestActivityTotalHours(t *testing.T) {
	a := Activity{HoursPerWeek: 3, WeeksPerYear: 40, YearsParticipated: 2}
	assert.Equal(t, 240.0, a.TotalHours())
}
