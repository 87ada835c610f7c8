package services

import (
	"plotforma/admissions-guide/internal/models"
)

// EvaluationInput is the four-number applicant summary. Callers coerce absent or
// unparsable values to 0 before building it.
type EvaluationInput struct {
	GPA                   float64
	LanguageScore         float64
	StandardizedTestScore float64
	VolunteerHours        float64
}

type EvaluationResult struct {
	Tier       models.Tier
	Advisories []string
}

// ProfileScorer classifies an applicant into a tier with advisory text.
type ProfileScorer interface {
	Score(input EvaluationInput) EvaluationResult
}

const (
	seniorMinGPA       = 3.8
	seniorMinLanguage  = 7.5
	seniorMinStandard  = 1400
	middleMinGPA       = 3.3
	middleMinLanguage  = 6.5
	middleStandardTip  = 1200
	middleVolunteerTip = 50
	juniorLanguageTip  = 6.0
	juniorGPATip       = 3.2
)

const (
	AdviceSeniorTopSchools = "Your profile fits the world's Top-50 universities (Ivy League, Oxbridge)."
	AdviceSeniorEssays     = "Focus on writing unique essays and securing strong recommendations."
	AdviceMiddleLead       = "A great level for universities in Europe and Asia (Top-200)."
	AdviceMiddleSAT        = "⚡️ To reach Senior: raise your SAT to 1350+."
	AdviceMiddleVolunteer  = "⚡️ Add community involvement: at least 50 volunteer hours are needed."
	AdviceJuniorLead       = "A good start. You need to strengthen your academic results."
	AdviceJuniorIELTS      = "⚡️ Goal #1: IELTS 6.5. Sign up for a prep course."
	AdviceJuniorGPA        = "⚡️ Work on your school grades next semester."
)

type profileScorer struct{}

func NewProfileScorer() ProfileScorer {
	return &profileScorer{}
}

// Score implements ProfileScorer.
func (s *profileScorer) Score(input EvaluationInput) EvaluationResult {
	gpa := models.Finite(input.GPA)
	language := models.Finite(input.LanguageScore)
	standard := models.Finite(input.StandardizedTestScore)
	volunteer := models.Finite(input.VolunteerHours)

	switch {
	case gpa >= seniorMinGPA && language >= seniorMinLanguage && standard >= seniorMinStandard:
		return EvaluationResult{
			Tier:       models.TierSenior,
			Advisories: []string{AdviceSeniorTopSchools, AdviceSeniorEssays},
		}

	case gpa >= middleMinGPA && language >= middleMinLanguage:
		advice := []string{AdviceMiddleLead}
		if standard < middleStandardTip {
			advice = append(advice, AdviceMiddleSAT)
		}
		if volunteer < middleVolunteerTip {
			advice = append(advice, AdviceMiddleVolunteer)
		}
		return EvaluationResult{Tier: models.TierMiddle, Advisories: advice}

	default:
		advice := []string{AdviceJuniorLead}
		if language < juniorLanguageTip {
			advice = append(advice, AdviceJuniorIELTS)
		}
		if gpa < juniorGPATip {
			advice = append(advice, AdviceJuniorGPA)
		}
		return EvaluationResult{Tier: models.TierJunior, Advisories: advice}
	}
}
