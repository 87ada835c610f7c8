package services

import (
	"strconv"

	"plotforma/admissions-guide/internal/models"
)

// CompareUniversities lines up the headline numbers of two universities side by side.
// Missing values render as "".
func CompareUniversities(left, right models.University) models.UniversityComparison {
	return models.UniversityComparison{
		Left:  left,
		Right: right,
		Stats: []models.ComparisonStat{
			{Label: "Cost", Left: costLabel(left), Right: costLabel(right)},
			{Label: "Ranking", Left: left.Ranking, Right: right.Ranking},
			{Label: "IELTS Req", Left: left.Requirements["ielts"], Right: right.Requirements["ielts"]},
			{Label: "Country", Left: left.Country, Right: right.Country},
			{Label: "Grants", Left: strconv.Itoa(len(left.Grants)), Right: strconv.Itoa(len(right.Grants))},
		},
	}
}

func costLabel(uni models.University) string {
	if uni.Cost == nil {
		return ""
	}
	return formatTuition(*uni.Cost)
}
