package services

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"plotforma/admissions-guide/internal/models"
)

// Branch names the rule of the chat cascade that produced a reply.
type Branch string

const (
	BranchGreeting     Branch = "greeting"
	BranchProgram      Branch = "program"
	BranchSAT          Branch = "sat"
	BranchIELTS        Branch = "ielts"
	BranchNationalExam Branch = "national_exam"
	BranchScholarship  Branch = "scholarship"
	BranchApplication  Branch = "application"
	BranchCountry      Branch = "country"
	BranchStartup      Branch = "startup"
	BranchFallback     Branch = "fallback"
)

type Reply struct {
	Branch Branch
	Text   string
}

// ResponseMatcher maps a free-text question to exactly one scripted reply.
type ResponseMatcher interface {
	Match(query string) Reply
	Respond(query string) string
}

// rule is one entry of the cascade. render reports false when the rule's keyword
// matched but it has nothing to say, in which case the next rule is tried.
type rule struct {
	branch Branch
	render func(q string) (string, bool)
}

type responseMatcher struct {
	universities []models.University
	rules        []rule
}

var greetingPattern = regexp.MustCompile(`^(hi|hello|hey|привет|салам)`)

// majorKeywords is scanned in list order, not by position in the query.
var majorKeywords = []string{
	"engineering",
	"cs",
	"computer science",
	"it",
	"physics",
	"robotics",
	"business",
	"medicine",
	"инженерия",
	"программирование",
}

const defaultMajorNeedle = "computer"

func NewResponseMatcher(universities []models.University) ResponseMatcher {
	m := &responseMatcher{
		universities: make([]models.University, len(universities)),
	}
	for i, uni := range universities {
		uni.Programs = append([]models.Program(nil), uni.Programs...)
		m.universities[i] = uni
	}

	m.rules = []rule{
		{BranchGreeting, fixed(greetingPattern.MatchString, greetingReply)},
		{BranchProgram, m.programReply},
		{BranchSAT, fixed(containsAny("sat"), satReply)},
		{BranchIELTS, fixed(containsAny("ielts"), ieltsReply)},
		{BranchNationalExam, fixed(containsAny("ent", "ubт", "уент"), nationalExamReply)},
		{BranchScholarship, fixed(containsAny("scholarship", "grant", "грант", "стипендия"), scholarshipReply)},
		{BranchApplication, fixed(containsAny("requirement", "apply", "application", "требования"), applicationReply)},
		{BranchCountry, fixed(containsAny("usa", "america", "сша"), usaReply)},
		{BranchStartup, fixed(containsAny("startup", "стартап", "business idea"), startupReply)},
	}

	return m
}

// Match implements ResponseMatcher.
func (m *responseMatcher) Match(query string) Reply {
	q := strings.ToLower(query)

	for _, r := range m.rules {
		if text, ok := r.render(q); ok {
			return Reply{Branch: r.branch, Text: text}
		}
	}

	return Reply{Branch: BranchFallback, Text: fallbackReply}
}

// Respond implements ResponseMatcher.
func (m *responseMatcher) Respond(query string) string {
	return m.Match(query).Text
}

func (m *responseMatcher) programReply(q string) (string, bool) {
	major := ""
	for _, keyword := range majorKeywords {
		if strings.Contains(q, keyword) {
			major = keyword
			break
		}
	}

	if major == "" && !containsAny("university", "вуз", "college")(q) {
		return "", false
	}

	needle := major
	if needle == "" {
		needle = defaultMajorNeedle
	}

	for _, uni := range m.universities {
		for _, prog := range uni.Programs {
			if strings.Contains(strings.ToLower(prog.Title), needle) {
				return renderProgramMatch(major, uni, prog), true
			}
		}
	}

	return "", false
}

func renderProgramMatch(major string, uni models.University, prog models.Program) string {
	field := major
	if field == "" {
		field = "your field"
	}

	var b strings.Builder
	if uni.Name != "" {
		fmt.Fprintf(&b, "🎓 **Top Match for \"%s\": %s**\n\n", field, uni.Name)
	} else {
		fmt.Fprintf(&b, "🎓 **Top Match for \"%s\"**\n\n", field)
	}

	writeLine(&b, "📍 Location: ", uni.Country)
	writeLine(&b, "📊 Program Ranking: ", prog.Rank)
	if uni.Cost != nil {
		writeLine(&b, "💰 Tuition: ", formatTuition(*uni.Cost))
	}
	writeLine(&b, "📝 Requirements: ", prog.ReqIntl)
	writeLine(&b, "💼 Career Prospects: ", prog.Career)

	b.WriteString("\nWould you like more details about this program or compare it with others?")
	return b.String()
}

func writeLine(b *strings.Builder, label, value string) {
	if value == "" {
		return
	}
	b.WriteString(label)
	b.WriteString(value)
	b.WriteString("\n")
}

func formatTuition(cost float64) string {
	if cost == 0 {
		return "FREE"
	}
	return "$" + strconv.FormatFloat(cost, 'f', -1, 64)
}

func fixed(match func(string) bool, text string) func(string) (string, bool) {
	return func(q string) (string, bool) {
		if match(q) {
			return text, true
		}
		return "", false
	}
}

func containsAny(keywords ...string) func(string) bool {
	return func(q string) bool {
		for _, k := range keywords {
			if strings.Contains(q, k) {
				return true
			}
		}
		return false
	}
}

const greetingReply = "👋 Hello! I'm PlotformaAI, your personal education advisor. I can help you with:\n\n" +
	"• Finding the best university for your major\n" +
	"• SAT/IELTS/ENT preparation strategies\n" +
	"• Scholarship opportunities\n" +
	"• Application requirements\n\n" +
	"What would you like to know?"

const satReply = "📚 **SAT Strategy:**\n\n" +
	"✅ Use Khan Academy (official & free)\n" +
	"✅ Take practice tests every week\n" +
	"✅ Focus on Math first (easier to improve quickly)\n" +
	"✅ Grammar rules for Writing section = easy points!\n\n" +
	"**Score Goals:**\n" +
	"• 1200+ → Good state universities\n" +
	"• 1400+ → Top 100 universities\n" +
	"• 1500+ → Ivy League competitive\n\n" +
	"Need a specific prep plan? Ask me!"

const ieltsReply = "🗣️ **IELTS Preparation:**\n\n" +
	"**Month 1:** Build vocabulary (academic word lists)\n" +
	"**Month 2:** Practice Speaking with partners daily\n" +
	"**Month 3:** Full mock tests under exam conditions\n\n" +
	"**Target Scores:**\n" +
	"• 6.0 → Minimum for most universities\n" +
	"• 6.5 → Competitive for European/Asian unis\n" +
	"• 7.0+ → Top universities & scholarships\n\n" +
	"Free resources: IELTS Liz, British Council practice tests"

const nationalExamReply = "🇰🇿 **ENT (UBT) Strategy:**\n\n" +
	"✅ Focus on Math Literacy (most weight)\n" +
	"✅ Kazakhstan History: memorize key dates\n" +
	"✅ Reading: practice speed reading techniques\n" +
	"✅ Profile subjects (Physics/Bio): solve 20 tests/week\n\n" +
	"**Score Goals:**\n" +
	"• 100+ → Most KZ universities\n" +
	"• 120+ → Top programs (KBTU, AlmaU)\n" +
	"• 140+ → Nazarbayev University competitive\n\n" +
	"Check out iTest.kz for practice!"

const scholarshipReply = "💰 **Scholarship Opportunities:**\n\n" +
	"**Kazakhstan:**\n" +
	"• Bolashak Scholarship (full funding abroad)\n" +
	"• Government Grant (based on ENT score)\n\n" +
	"**International:**\n" +
	"• Chevening (UK)\n" +
	"• Fulbright (USA)\n" +
	"• DAAD (Germany)\n" +
	"• Erasmus+ (Europe)\n\n" +
	"💡 Tip: Start applications 1 year before intended start date!\n\n" +
	"Want details about a specific scholarship?"

const applicationReply = "📋 **Application Requirements (General):**\n\n" +
	"**For Local Universities (KZ):**\n" +
	"• ENT certificate\n" +
	"• School diploma\n" +
	"• ID document\n\n" +
	"**For International Universities:**\n" +
	"• English test (IELTS/TOEFL)\n" +
	"• Transcripts (translated)\n" +
	"• Recommendation letters (2-3)\n" +
	"• Personal statement/Essay\n" +
	"• Portfolio (for creative fields)\n\n" +
	"Which university are you interested in? I can give specific requirements!"

const usaReply = "🇺🇸 **Studying in USA:**\n\n" +
	"**Requirements:**\n" +
	"• SAT: 1200+ minimum\n" +
	"• TOEFL: 80+ or IELTS: 6.5+\n" +
	"• Strong extracurriculars\n" +
	"• Excellent essays\n\n" +
	"**Costs:** $30,000-$70,000/year (including living)\n" +
	"**Scholarships:** Many universities offer merit-based aid\n\n" +
	"Top accessible universities: Arizona State, University of Illinois"

const startupReply = "🚀 **Student Startup Guide:**\n\n" +
	"**Step 1:** Identify a real problem you face daily\n" +
	"**Step 2:** Build MVP (Minimum Viable Product)\n" +
	"**Step 3:** Find co-founders with complementary skills\n" +
	"**Step 4:** Apply to incubators (Y Combinator, Astana Hub)\n\n" +
	"💡 Tip: Universities LOVE entrepreneurial students - add this to your application!\n\n" +
	"Check our Network tab to connect with other student founders!"

const fallbackReply = "🤔 I'm not sure about that specific topic, but I can help you with:\n\n" +
	"• **University Selection** - Ask me about specific majors or countries\n" +
	"• **Exam Prep** - SAT, IELTS, ENT, TOEFL strategies\n" +
	"• **Scholarships** - Finding and applying for funding\n" +
	"• **Application Process** - Requirements and deadlines\n\n" +
	"Try asking something like:\n" +
	"- 'Best universities for Computer Science'\n" +
	"- 'How to prepare for SAT?'\n" +
	"- 'Scholarships for international students'"
