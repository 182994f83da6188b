package response

import (
	"fmt"
	"strings"
	"time"

	"pesquisa_pbr/internal/domain/entities"
)

type AnswerResponse struct {
	QuestionID   string               `json:"questionId"`
	QuestionText string               `json:"questionText,omitempty"`
	Value        entities.AnswerValue `json:"value"`
	Display      string               `json:"display"`
}

type SurveyResponseResponse struct {
	ID             string           `json:"id"`
	ProjectID      string           `json:"projectId"`
	SurveyAreaID   string           `json:"surveyAreaId"`
	ResearcherID   string           `json:"researcherId"`
	CollectionDate time.Time        `json:"collectionDate"`
	Answers        []AnswerResponse `json:"answers"`
}

// FromSurveyResponse renders one collected interview against the project's
// schema: each answer carries the question text and a human-readable display
// value alongside the raw union.
func FromSurveyResponse(r entities.SurveyResponse, project entities.Project) SurveyResponseResponse {
	byID := make(map[string]entities.Question, len(project.Questions))
	for _, q := range project.Questions {
		byID[q.ID] = q
	}

	out := SurveyResponseResponse{
		ID:             r.ID,
		ProjectID:      r.ProjectID,
		SurveyAreaID:   r.SurveyAreaID,
		ResearcherID:   r.ResearcherID,
		CollectionDate: r.CollectionDate,
	}
	for _, a := range r.Answers {
		q := byID[a.QuestionID]
		out.Answers = append(out.Answers, AnswerResponse{
			QuestionID:   a.QuestionID,
			QuestionText: q.Text,
			Value:        a.Value,
			Display:      DisplayValue(q, a.Value),
		})
	}
	return out
}

func FromSurveyResponses(responses []entities.SurveyResponse, project entities.Project) []SurveyResponseResponse {
	out := make([]SurveyResponseResponse, len(responses))
	for i, r := range responses {
		out[i] = FromSurveyResponse(r, project)
	}
	return out
}

// DisplayValue formats an answer value for listing screens: selections join
// with ", ", labeled scale points render as "Label (n)", and the empty
// sentinel reads as not answered.
func DisplayValue(q entities.Question, v entities.AnswerValue) string {
	switch v.Kind {
	case entities.AnswerKindText:
		return v.Text
	case entities.AnswerKindSelections:
		if len(v.Selections) == 0 {
			return "Não respondido"
		}
		return strings.Join(v.Selections, ", ")
	case entities.AnswerKindNumber:
		if q.Type == entities.QuestionTypeScale && q.ScaleMin != nil {
			idx := int(v.Number) - *q.ScaleMin
			if idx >= 0 && idx < len(q.ScaleLabels) {
				return fmt.Sprintf("%s (%s)", q.ScaleLabels[idx], formatNumber(v.Number))
			}
		}
		return formatNumber(v.Number)
	default:
		return "Não respondido"
	}
}

func formatNumber(n float64) string {
	return strings.TrimSuffix(strings.TrimRight(fmt.Sprintf("%.2f", n), "0"), ".")
}
