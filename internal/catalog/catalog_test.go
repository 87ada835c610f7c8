package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	require.Len(t, c.Universities, 3)
	assert.Equal(t, "nu_kz", c.Universities[0].ID)
	assert.Equal(t, "Computer Science", c.Universities[0].Programs[1].Title)
	require.NotNil(t, c.Universities[0].Cost)
	assert.Equal(t, 0.0, *c.Universities[0].Cost)

	assert.Len(t, c.Scholarships, 8)
	assert.Len(t, c.VisaGuides, 5)
	assert.Len(t, c.Exams, 6)
	assert.Len(t, c.Deadlines, 8)

	require.Len(t, c.Startups, 1)
	require.NotNil(t, c.Startups[0].Budget)
	assert.Equal(t, 15000.0, *c.Startups[0].Budget)
	assert.Equal(t, "agrotech_ceo", c.Startups[0].Contacts.Telegram)
	assert.Len(t, c.SuccessStories, 2)
	require.Len(t, c.Mentors, 3)
	assert.Equal(t, "IELTS Coach", c.Mentors[2].Role)
}

func TestParseRejectsDuplicateCommunityIDs(t *testing.T) {
	_, err := Parse([]byte(`{"mentors":[{"id":"m1"},{"id":"m1"}]}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `duplicate mentor id "m1"`)

	_, err = Parse([]byte(`{"success_stories":[{"name":"no id"}]}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "success story #0 has no id")
}

func TestParseRejectsDuplicateUniversityIDs(t *testing.T) {
	_, err := Parse([]byte(`{"universities":[{"id":"a"},{"id":"a"}]}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `duplicate university id "a"`)
}

func TestParseRejectsMissingUniversityID(t *testing.T) {
	_, err := Parse([]byte(`{"universities":[{"name":"Nameless"}]}`))
	require.Error(t, err)
}

func TestParseToleratesMissingFields(t *testing.T) {
	c, err := Parse([]byte(`{"universities":[{"id":"bare","programs":[{"title":"Physics"}]}]}`))
	require.NoError(t, err)

	uni, ok := c.University("bare")
	require.True(t, ok)
	assert.Nil(t, uni.Cost)
	assert.Empty(t, uni.Name)
	assert.Empty(t, uni.Programs[0].Career)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"universities":[{"id":"x","name":"X"}]}`), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	require.Len(t, c.Universities, 1)
	assert.Equal(t, "X", c.Universities[0].Name)

	_, err = Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestFilterScholarships(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	assert.Len(t, c.FilterScholarships("", ""), 8)
	assert.Len(t, c.FilterScholarships("all", "all"), 8)

	kz := c.FilterScholarships("kz", "")
	require.Len(t, kz, 2)
	assert.Equal(t, "Bolashak International Scholarship", kz[0].Name)

	kzMedium := c.FilterScholarships("KZ", "Medium")
	require.Len(t, kzMedium, 1)
	assert.Equal(t, 7, kzMedium[0].ID)

	assert.Empty(t, c.FilterScholarships("MARS", ""))
}

func TestFilterDeadlines(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	assert.Len(t, c.FilterDeadlines("all"), 8)
	assert.Len(t, c.FilterDeadlines("Document"), 3)
	assert.Len(t, c.FilterDeadlines("Exam"), 2)
}

func TestLoadFromYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	data := `
universities:
  - id: aitu_kz
    name: Astana IT University
    country: KZ
    cost: 0
    programs:
      - title: Software Engineering
        career: Backend developer
deadlines:
  - id: 1
    title: AITU Application
    date: "2026-07-01"
    category: Application
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	require.Len(t, c.Universities, 1)

	uni := c.Universities[0]
	assert.Equal(t, "Astana IT University", uni.Name)
	require.NotNil(t, uni.Cost)
	assert.Equal(t, 0.0, *uni.Cost)
	require.Len(t, uni.Programs, 1)
	assert.Equal(t, "Backend developer", uni.Programs[0].Career)
	assert.Equal(t, "2026-07-01", c.Deadlines[0].Date)

	require.NoError(t, os.WriteFile(path, []byte("universities: [unclosed"), 0o644))
	_, err = Load(path)
	assert.Error(t, err)
}
