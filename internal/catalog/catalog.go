package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"plotforma/admissions-guide/internal/models"
)

//go:embed data/catalog.json
var defaultCatalog []byte

// Catalog holds the read-only reference data. It is loaded once at startup and
// never mutated afterwards, so it is safe to share between goroutines.
type Catalog struct {
	Universities []models.University  `json:"universities"`
	Scholarships []models.Scholarship `json:"scholarships"`
	VisaGuides   []models.VisaGuide   `json:"visa_guides"`
	Exams        []models.Exam        `json:"exams"`
	Deadlines    []models.Deadline    `json:"deadlines"`

	Startups       []models.Startup      `json:"startups"`
	SuccessStories []models.SuccessStory `json:"success_stories"`
	Mentors        []models.Mentor       `json:"mentors"`
}

// Default returns the catalog bundled with the binary.
func Default() (*Catalog, error) {
	return Parse(defaultCatalog)
}

// Load reads a JSON or YAML catalog from path, or the bundled one when path is empty.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(data)
	default:
		return Parse(data)
	}
}

// ParseYAML accepts the same document as Parse written in YAML, keyed by the JSON field names.
func ParseYAML(data []byte) (*Catalog, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}

	normalized, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}

	return Parse(normalized)
}

func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}

	if err := c.validate(); err != nil {
		return nil, err
	}

	return &c, nil
}

func (c *Catalog) validate() error {
	seen := make(map[string]struct{}, len(c.Universities))
	for i, uni := range c.Universities {
		if uni.ID == "" {
			return fmt.Errorf("university #%d has no id", i)
		}
		if _, dup := seen[uni.ID]; dup {
			return fmt.Errorf("duplicate university id %q", uni.ID)
		}
		seen[uni.ID] = struct{}{}
	}

	scholarships := make(map[int]struct{}, len(c.Scholarships))
	for _, s := range c.Scholarships {
		if _, dup := scholarships[s.ID]; dup {
			return fmt.Errorf("duplicate scholarship id %d", s.ID)
		}
		scholarships[s.ID] = struct{}{}
	}

	exams := make(map[string]struct{}, len(c.Exams))
	for _, e := range c.Exams {
		if _, dup := exams[e.ID]; dup {
			return fmt.Errorf("duplicate exam id %q", e.ID)
		}
		exams[e.ID] = struct{}{}
	}

	deadlines := make(map[int]struct{}, len(c.Deadlines))
	for _, d := range c.Deadlines {
		if _, dup := deadlines[d.ID]; dup {
			return fmt.Errorf("duplicate deadline id %d", d.ID)
		}
		deadlines[d.ID] = struct{}{}
	}

	startups := make([]string, 0, len(c.Startups))
	for _, p := range c.Startups {
		startups = append(startups, p.ID)
	}
	if err := uniqueIDs("startup", startups); err != nil {
		return err
	}

	stories := make([]string, 0, len(c.SuccessStories))
	for _, st := range c.SuccessStories {
		stories = append(stories, st.ID)
	}
	if err := uniqueIDs("success story", stories); err != nil {
		return err
	}

	mentors := make([]string, 0, len(c.Mentors))
	for _, m := range c.Mentors {
		mentors = append(mentors, m.ID)
	}
	return uniqueIDs("mentor", mentors)
}

func uniqueIDs(kind string, ids []string) error {
	seen := make(map[string]struct{}, len(ids))
	for i, id := range ids {
		if id == "" {
			return fmt.Errorf("%s #%d has no id", kind, i)
		}
		if _, dup := seen[id]; dup {
			return fmt.Errorf("duplicate %s id %q", kind, id)
		}
		seen[id] = struct{}{}
	}
	return nil
}

func (c *Catalog) University(id string) (*models.University, bool) {
	for i := range c.Universities {
		if c.Universities[i].ID == id {
			return &c.Universities[i], true
		}
	}
	return nil, false
}

// FilterScholarships filters by country and difficulty. An empty value or "all" matches everything.
func (c *Catalog) FilterScholarships(country, difficulty string) []models.Scholarship {
	result := make([]models.Scholarship, 0, len(c.Scholarships))
	for _, s := range c.Scholarships {
		if !matchFilter(country, s.Country) || !matchFilter(difficulty, s.Difficulty) {
			continue
		}
		result = append(result, s)
	}
	return result
}

func (c *Catalog) FilterDeadlines(category string) []models.Deadline {
	result := make([]models.Deadline, 0, len(c.Deadlines))
	for _, d := range c.Deadlines {
		if matchFilter(category, d.Category) {
			result = append(result, d)
		}
	}
	return result
}

func matchFilter(filter, value string) bool {
	filter = strings.TrimSpace(filter)
	if filter == "" || strings.EqualFold(filter, "all") {
		return true
	}
	return strings.EqualFold(filter, value)
}
