package models

type ChatRequest struct {
	Message string `json:"message"`
}

type ChatResponse struct {
	Reply  string `json:"reply"`
	Branch string `json:"branch"`
}

type EvaluateRequest struct {
	GPA                   Number `json:"gpa"`
	LanguageScore         Number `json:"language_score"`
	StandardizedTestScore Number `json:"standardized_test_score"`
	VolunteerHours        Number `json:"volunteer_hours"`
}

type EvaluateResponse struct {
	ID         string   `json:"id,omitempty"`
	Tier       string   `json:"tier"`
	Advisories []string `json:"advisories"`
}

type ProfileRequest struct {
	FullName    *string `json:"full_name"`
	Phone       *string `json:"phone"`
	School      *string `json:"school"`
	Grade       *string `json:"grade"`
	GPA         *Number `json:"gpa"`
	TargetMajor *string `json:"target_major"`
	Bio         *string `json:"bio"`
	Country     *string `json:"country"`
}

type TestScoreRequest struct {
	TestType string `json:"test_type"`
	Score    Number `json:"score"`
	TestDate string `json:"test_date"`
}

type ActivityRequest struct {
	Type              string   `json:"type"`
	Title             string   `json:"title"`
	Organization      string   `json:"organization"`
	Position          string   `json:"position"`
	Level             string   `json:"level"`
	Description       string   `json:"description"`
	HoursPerWeek      Number   `json:"hours_per_week"`
	WeeksPerYear      Number   `json:"weeks_per_year"`
	YearsParticipated Number   `json:"years_participated"`
	Achievements      []string `json:"achievements"`
}

type ActivityListResponse struct {
	Activities []Activity `json:"activities"`
	TotalHours float64    `json:"total_hours"`
}

type UploadResponse struct {
	ID           string `json:"id"`
	Filename     string `json:"filename"`
	OriginalName string `json:"original_name"`
	FileType     string `json:"file_type"`
	Status       string `json:"status"`
}

type DeadlineView struct {
	Deadline
	DaysLeft *int   `json:"days_left,omitempty"`
	Status   string `json:"status"`
}

type ProgramSearchResponse struct {
	Query   string       `json:"query"`
	Results []ProgramHit `json:"results"`
}

type ProgramHit struct {
	UniversityID   string  `json:"university_id"`
	UniversityName string  `json:"university_name"`
	ProgramTitle   string  `json:"program_title"`
	Score          float32 `json:"score"`
}

type DeadlineRequest struct {
	Title      string `json:"title"`
	Date       string `json:"date"`
	Category   string `json:"category"`
	University string `json:"university"`
	Priority   string `json:"priority"`
}

type UserDeadlineView struct {
	UserDeadline
	DaysLeft *int   `json:"days_left,omitempty"`
	Status   string `json:"status"`
}

type DeadlineListResponse struct {
	Deadlines []UserDeadlineView `json:"deadlines"`
	// DueSoon counts open deadlines that are urgent or soon.
	DueSoon int `json:"due_soon"`
}

type NotificationListResponse struct {
	Notifications []Notification `json:"notifications"`
	Unread        int64          `json:"unread"`
}

type ComparisonStat struct {
	Label string `json:"label"`
	Left  string `json:"left"`
	Right string `json:"right"`
}

type UniversityComparison struct {
	Left  University       `json:"left"`
	Right University       `json:"right"`
	Stats []ComparisonStat `json:"stats"`
}
