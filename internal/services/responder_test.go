package services

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"plotforma/admissions-guide/internal/catalog"
	"plotforma/admissions-guide/internal/models"
)

func costOf(v float64) *float64 {
	return &v
}

func defaultMatcher(t *testing.T) ResponseMatcher {
	t.Helper()
	c, err := catalog.Default()
	require.NoError(t, err)
	return NewResponseMatcher(c.Universities)
}

func TestResponseMatcher_Fallback(t *testing.T) {
	m := defaultMatcher(t)

	for _, q := range []string{"", "   ", "tell me a joke", "???", "weather tomorrow"} {
		reply := m.Match(q)
		assert.Equal(t, BranchFallback, reply.Branch, "query %q", q)
		assert.Equal(t, fallbackReply, reply.Text, "query %q", q)
	}
}

func TestResponseMatcher_Greeting(t *testing.T) {
	m := defaultMatcher(t)

	queries := []string{
		"hello",
		"Hi, what about SAT and IELTS scholarships in the USA?",
		"hey university",
		"Привет! Расскажи про гранты",
		"салам",
	}
	for _, q := range queries {
		reply := m.Match(q)
		assert.Equal(t, BranchGreeting, reply.Branch, "query %q", q)
		assert.Equal(t, greetingReply, reply.Text)
	}

	// The greeting must open the query.
	assert.NotEqual(t, BranchGreeting, m.Match("well, hello").Branch)
}

func TestResponseMatcher_ProgramLookup(t *testing.T) {
	m := NewResponseMatcher([]models.University{
		{
			ID:      "tu",
			Name:    "Test University",
			Country: "KZ",
			Cost:    costOf(0),
			Programs: []models.Program{
				{Title: "Computer Science", Rank: "Top 1", ReqIntl: "SAT 1500", Career: "Research labs ($5k/mo)"},
			},
		},
	})

	reply := m.Match("best universities for computer science")
	require.Equal(t, BranchProgram, reply.Branch)
	assert.Contains(t, reply.Text, "Test University")
	assert.Contains(t, reply.Text, "Research labs ($5k/mo)")
	assert.Contains(t, reply.Text, `Top Match for "computer science"`)
	assert.Contains(t, reply.Text, "💰 Tuition: FREE")
	assert.Contains(t, reply.Text, "📍 Location: KZ")
}

func TestResponseMatcher_ProgramLookupDefaultCatalog(t *testing.T) {
	m := defaultMatcher(t)

	reply := m.Match("Show me top universities for computer science")
	require.Equal(t, BranchProgram, reply.Branch)
	assert.Contains(t, reply.Text, "Nazarbayev University")
	assert.Contains(t, reply.Text, "Google Zurich, Yandex, Kaspi.kz ($4k/mo start)")

	reply = m.Match("engineering")
	require.Equal(t, BranchProgram, reply.Branch)
	assert.Contains(t, reply.Text, "KBTU")
	assert.Contains(t, reply.Text, "💰 Tuition: $4500")
	assert.Contains(t, reply.Text, "📝 Requirements: Interview + Math Test")
}

func TestResponseMatcher_CollegeDefaultsToComputer(t *testing.T) {
	m := defaultMatcher(t)

	reply := m.Match("which college is good")
	require.Equal(t, BranchProgram, reply.Branch)
	assert.Contains(t, reply.Text, `Top Match for "your field": Nazarbayev University`)
	assert.Contains(t, reply.Text, "Top 3 in KZ")
}

func TestResponseMatcher_FirstHitByIterationOrder(t *testing.T) {
	m := NewResponseMatcher([]models.University{
		{ID: "a", Name: "Alpha", Programs: []models.Program{{Title: "Law"}}},
		{ID: "b", Name: "Beta", Programs: []models.Program{
			{Title: "Veterinary Medicine", Career: "beta-vet"},
			{Title: "Medicine", Career: "beta-general"},
		}},
		{ID: "c", Name: "Gamma", Programs: []models.Program{{Title: "Medicine", Career: "gamma"}}},
	})

	reply := m.Match("medicine")
	require.Equal(t, BranchProgram, reply.Branch)
	assert.Contains(t, reply.Text, "Beta")
	assert.Contains(t, reply.Text, "beta-vet")
	assert.NotContains(t, reply.Text, "Gamma")
}

// "physics" and "robotics" both end in "cs", which sits earlier in the keyword list.
func TestResponseMatcher_KeywordListOrderWins(t *testing.T) {
	m := NewResponseMatcher([]models.University{
		{ID: "e", Name: "Econ School", Programs: []models.Program{{Title: "Economics", Career: "econ"}}},
		{ID: "p", Name: "Physics School", Programs: []models.Program{{Title: "Physics", Career: "phys"}}},
	})

	reply := m.Match("physics")
	require.Equal(t, BranchProgram, reply.Branch)
	assert.Contains(t, reply.Text, `Top Match for "cs": Econ School`)
}

func TestResponseMatcher_ProgramMissFallsThrough(t *testing.T) {
	m := NewResponseMatcher([]models.University{
		{ID: "h", Name: "Humanities U", Programs: []models.Program{{Title: "History"}}},
	})

	reply := m.Match("physics and sat prep")
	assert.Equal(t, BranchSAT, reply.Branch)
	assert.Equal(t, satReply, reply.Text)

	reply = m.Match("medicine")
	assert.Equal(t, BranchFallback, reply.Branch)
}

func TestResponseMatcher_MissingFieldsAreOmitted(t *testing.T) {
	m := NewResponseMatcher([]models.University{
		{ID: "bare", Programs: []models.Program{{Title: "Business Administration"}}},
	})

	reply := m.Match("business")
	require.Equal(t, BranchProgram, reply.Branch)
	assert.Contains(t, reply.Text, `🎓 **Top Match for "business"**`)
	assert.NotContains(t, reply.Text, "Location")
	assert.NotContains(t, reply.Text, "Tuition")
	assert.NotContains(t, reply.Text, "Career")
	assert.NotContains(t, reply.Text, "undefined")
	assert.Contains(t, reply.Text, "Would you like more details")
}

func TestResponseMatcher_NoKnowledgeBase(t *testing.T) {
	m := NewResponseMatcher(nil)

	assert.Equal(t, BranchFallback, m.Match("computer science").Branch)
	assert.Equal(t, BranchIELTS, m.Match("university ielts").Branch)
}

func TestResponseMatcher_BranchOrder(t *testing.T) {
	m := defaultMatcher(t)

	tests := []struct {
		query  string
		branch Branch
		text   string
	}{
		{"sat or ielts?", BranchSAT, satReply},
		{"ielts tips", BranchIELTS, ieltsReply},
		{"How to prepare for ENT?", BranchNationalExam, nationalExamReply},
		{"Как сдать УЕНТ", BranchNationalExam, nationalExamReply},
		{"Tell me about scholarships", BranchScholarship, scholarshipReply},
		{"Как получить грант?", BranchScholarship, scholarshipReply},
		{"how do I apply", BranchApplication, applicationReply},
		{"studying in America", BranchCountry, usaReply},
		{"учеба в США", BranchCountry, usaReply},
		{"I have a startup", BranchStartup, startupReply},
		{"scholarship in america", BranchScholarship, scholarshipReply},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			reply := m.Match(tt.query)
			assert.Equal(t, tt.branch, reply.Branch)
			assert.Equal(t, tt.text, reply.Text)
			assert.Equal(t, tt.text, m.Respond(tt.query))
		})
	}
}

func TestResponseMatcher_Deterministic(t *testing.T) {
	m := defaultMatcher(t)

	queries := []string{"hello", "computer science", "sat", "nothing at all"}
	for _, q := range queries {
		assert.Equal(t, m.Respond(q), m.Respond(q))
	}

	var wg sync.WaitGroup
	want := m.Respond("best universities for computer science")
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, want, m.Respond("best universities for computer science"))
		}()
	}
	wg.Wait()
}

func TestResponseMatcher_CopiesKnowledgeBase(t *testing.T) {
	unis := []models.University{
		{ID: "a", Name: "Original", Programs: []models.Program{{Title: "Robotics"}}},
	}
	m := NewResponseMatcher(unis)

	unis[0].Programs[0] = models.Program{Title: "Medicine"}
	unis[0] = models.University{ID: "b", Name: "Replaced"}

	assert.Contains(t, m.Respond("robotics"), "Original")
	assert.Equal(t, BranchFallback, m.Match("medicine").Branch)
}
