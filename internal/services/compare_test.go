package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"plotforma/admissions-guide/internal/models"
)

func TestCompareUniversities(t *testing.T) {
	free, fee := 0.0, 4500.0
	left := models.University{
		ID: "nu_kz", Name: "Nazarbayev University", Country: "KZ", Ranking: "#1 in Central Asia", Cost: &free,
		Requirements: map[string]string{"ielts": "6.5"},
		Grants:       []string{"Abay Scholarship", "NU Merit"},
	}
	right := models.University{ID: "kbtu_kz", Name: "KBTU", Country: "KZ", Cost: &fee}

	cmp := CompareUniversities(left, right)

	assert.Equal(t, "Nazarbayev University", cmp.Left.Name)
	assert.Equal(t, "KBTU", cmp.Right.Name)
	assert.Equal(t, []models.ComparisonStat{
		{Label: "Cost", Left: "FREE", Right: "$4500"},
		{Label: "Ranking", Left: "#1 in Central Asia", Right: ""},
		{Label: "IELTS Req", Left: "6.5", Right: ""},
		{Label: "Country", Left: "KZ", Right: "KZ"},
		{Label: "Grants", Left: "2", Right: "0"},
	}, cmp.Stats)

	assert.Equal(t, "", CompareUniversities(models.University{}, models.University{}).Stats[0].Left)
}
