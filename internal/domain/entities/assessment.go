package entities

// Assessment languages accepted by the health assessment flow
const (
	AssessmentLangWolof       = "wolof"
	AssessmentLangFrench      = "french"
	AssessmentLangPulaar      = "pulaar"
	AssessmentLangFrancoWolof = "franco-wolof"
)

// ValidAssessmentLanguage reports whether lang is supported
func ValidAssessmentLanguage(lang string) bool {
	switch lang {
	case AssessmentLangWolof, AssessmentLangFrench, AssessmentLangPulaar, AssessmentLangFrancoWolof:
		return true
	}
	return false
}

// RemedyDetail is a remedy suggested inside a health assessment
type RemedyDetail struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// HealthAssessment is the non-diagnostic answer to a user's message
type HealthAssessment struct {
	Assessment          string         `json:"assessment"`
	TraditionalRemedies []RemedyDetail `json:"traditionalRemedies"`
	NextSteps           string         `json:"nextSteps"`
}
