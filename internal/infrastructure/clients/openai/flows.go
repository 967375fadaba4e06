package openai

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/samasante/backend/internal/domain/entities"
	apperrors "github.com/samasante/backend/pkg/errors"
)

const (
	flowRemedyGeneration = "remedy_generation"
	flowHealthAssessment = "health_assessment"
	flowEmergencyTriage  = "emergency_triage"
)

type generatedRemedy struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Symptom     string `json:"symptom"`
}

type remedyGenerationPayload struct {
	GeneratedRemedies *[]generatedRemedy `json:"generatedRemedies"`
}

func (p *remedyGenerationPayload) Validate() error {
	if p.GeneratedRemedies == nil {
		return errors.New("generatedRemedies is missing")
	}
	return nil
}

// remedies drops entries without a name and marks every entry as generated.
func (p *remedyGenerationPayload) remedies(symptom string) []entities.Remedy {
	out := make([]entities.Remedy, 0, len(*p.GeneratedRemedies))
	for _, r := range *p.GeneratedRemedies {
		name := strings.TrimSpace(r.Name)
		if name == "" {
			continue
		}
		s := strings.TrimSpace(r.Symptom)
		if s == "" {
			s = symptom
		}
		out = append(out, entities.Remedy{
			Name:        name,
			Description: strings.TrimSpace(r.Description),
			Symptom:     s,
			IsGenerated: true,
		})
	}
	return out
}

// GenerateRemedies asks the model for traditional remedies for a symptom.
func (c *Client) GenerateRemedies(ctx context.Context, symptom string) ([]entities.Remedy, error) {
	var payload remedyGenerationPayload
	err := c.completeJSON(ctx, flowRemedyGeneration,
		remedyGenerationSystemPrompt,
		buildRemedyGenerationUserPrompt(symptom),
		1200, &payload)
	if err != nil {
		return nil, err
	}
	if err := payload.Validate(); err != nil {
		return nil, apperrors.NewMalformedResponseError("invalid remedy generation output", err)
	}
	return payload.remedies(symptom), nil
}

type healthAssessmentPayload struct {
	Assessment          string          `json:"assessment"`
	TraditionalRemedies json.RawMessage `json:"traditionalRemedies"`
	NextSteps           string          `json:"nextSteps"`
}

func (p *healthAssessmentPayload) Validate() error {
	if strings.TrimSpace(p.Assessment) == "" {
		return errors.New("assessment is missing")
	}
	if strings.TrimSpace(p.NextSteps) == "" {
		return errors.New("nextSteps is missing")
	}
	return nil
}

// traditionalRemedies tolerates a missing or non-array field.
func (p *healthAssessmentPayload) traditionalRemedies() []entities.RemedyDetail {
	var details []entities.RemedyDetail
	if len(p.TraditionalRemedies) > 0 {
		if err := json.Unmarshal(p.TraditionalRemedies, &details); err != nil {
			details = nil
		}
	}
	out := make([]entities.RemedyDetail, 0, len(details))
	for _, d := range details {
		if strings.TrimSpace(d.Name) == "" {
			continue
		}
		out = append(out, d)
	}
	return out
}

// AssessHealth produces a non-diagnostic assessment in the requested language.
func (c *Client) AssessHealth(ctx context.Context, message, language string) (*entities.HealthAssessment, error) {
	var payload healthAssessmentPayload
	err := c.completeJSON(ctx, flowHealthAssessment,
		buildHealthAssessmentSystemPrompt(language),
		buildHealthAssessmentUserPrompt(message),
		1500, &payload)
	if err != nil {
		return nil, err
	}
	if err := payload.Validate(); err != nil {
		return nil, apperrors.NewMalformedResponseError("invalid health assessment output", err)
	}
	return &entities.HealthAssessment{
		Assessment:          strings.TrimSpace(payload.Assessment),
		TraditionalRemedies: payload.traditionalRemedies(),
		NextSteps:           strings.TrimSpace(payload.NextSteps),
	}, nil
}

type emergencyTriagePayload struct {
	IsEmergency *bool   `json:"isEmergency"`
	Reason      *string `json:"reason"`
}

func (p *emergencyTriagePayload) Validate() error {
	if p.IsEmergency == nil {
		return errors.New("isEmergency is missing")
	}
	if p.Reason == nil {
		return errors.New("reason is missing")
	}
	return nil
}

// AssessEmergency decides whether the reported symptoms are an emergency.
func (c *Client) AssessEmergency(ctx context.Context, symptoms string, at entities.Coordinates) (*entities.EmergencyDetermination, error) {
	var payload emergencyTriagePayload
	err := c.completeJSON(ctx, flowEmergencyTriage,
		emergencyTriageSystemPrompt,
		buildEmergencyTriageUserPrompt(symptoms, at.Latitude, at.Longitude),
		300, &payload)
	if err != nil {
		return nil, err
	}
	if err := payload.Validate(); err != nil {
		return nil, apperrors.NewMalformedResponseError("invalid emergency triage output", err)
	}
	return &entities.EmergencyDetermination{
		IsEmergency: *payload.IsEmergency,
		Reason:      strings.TrimSpace(*payload.Reason),
	}, nil
}
