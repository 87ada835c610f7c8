package models

// University is a KnowledgeBase record. Every field except ID may be absent.
type University struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	Country        string            `json:"country"`
	Type           string            `json:"type,omitempty"`
	Ranking        string            `json:"ranking,omitempty"`
	QSRank         string            `json:"qs_rank,omitempty"`
	IntlStudents   string            `json:"intl_students,omitempty"`
	AcceptanceRate string            `json:"acceptance_rate,omitempty"`
	Cost           *float64          `json:"cost,omitempty"`
	Currency       string            `json:"currency,omitempty"`
	Requirements   map[string]string `json:"requirements,omitempty"`
	Description    string            `json:"description,omitempty"`
	Advice         string            `json:"advice,omitempty"`
	Grants         []string          `json:"grants,omitempty"`
	Programs       []Program         `json:"programs,omitempty"`
}

type Program struct {
	Title    string `json:"title"`
	Rank     string `json:"rank,omitempty"`
	ReqLocal string `json:"req_local,omitempty"`
	ReqIntl  string `json:"req_intl,omitempty"`
	Career   string `json:"career,omitempty"`
}

type Scholarship struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Country     string   `json:"country"`
	Amount      string   `json:"amount"`
	Deadline    string   `json:"deadline"`
	Eligibility string   `json:"eligibility"`
	Coverage    []string `json:"coverage"`
	URL         string   `json:"url"`
	Difficulty  string   `json:"difficulty"`
	Rating      int      `json:"rating"`
}

type VisaGuide struct {
	Country        string   `json:"country"`
	Flag           string   `json:"flag"`
	VisaType       string   `json:"visa_type"`
	ProcessingTime string   `json:"processing_time"`
	Cost           string   `json:"cost"`
	Requirements   []string `json:"requirements"`
	Process        []string `json:"process"`
	Tips           []string `json:"tips"`
	Difficulty     string   `json:"difficulty"`
}

type Link struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type Exam struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Desc      string `json:"desc"`
	Links     []Link `json:"links"`
	Plan      string `json:"plan"`
	FreeTests []Link `json:"free_tests"`
}

type Deadline struct {
	ID         int    `json:"id"`
	Title      string `json:"title"`
	Date       string `json:"date"`
	Category   string `json:"category"`
	University string `json:"university"`
	Priority   string `json:"priority"`
}

type Contacts struct {
	WhatsApp string `json:"wa,omitempty"`
	Telegram string `json:"tg,omitempty"`
	Email    string `json:"email,omitempty"`
}

// Startup is a student project looking for team members.
type Startup struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Problem  string   `json:"problem"`
	Solution string   `json:"solution"`
	Budget   *float64 `json:"budget,omitempty"`
	Roles    []string `json:"roles"`
	Contacts Contacts `json:"contacts"`
}

type SuccessStory struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	University string `json:"university"`
	Major      string `json:"major"`
	FullStory  string `json:"full_story"`
	Photo      string `json:"photo,omitempty"`
}

type Mentor struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	Specialty string `json:"specialty"`
	Contact   string `json:"contact"`
	Photo     string `json:"photo,omitempty"`
}
