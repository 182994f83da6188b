package request

import (
	"strings"
	"time"

	"pesquisa_pbr/internal/domain/entities"
)

type QuestionRequest struct {
	ID          string   `json:"id"`
	Text        string   `json:"text" binding:"required"`
	Type        string   `json:"type" binding:"required"`
	Options     []string `json:"options"`
	ScaleMin    *int     `json:"scaleMin"`
	ScaleMax    *int     `json:"scaleMax"`
	ScaleLabels []string `json:"scaleLabels"`
}

type QuotaRequest struct {
	ID            string `json:"id"`
	Name          string `json:"name" binding:"required"`
	TargetCount   int    `json:"targetCount" binding:"required"`
	AchievedCount int    `json:"achievedCount"`
}

// ProjectRequest is the create/update payload for a survey project. Schema
// validation beyond field presence happens in the use case.
type ProjectRequest struct {
	Name           string            `json:"name" binding:"required"`
	Description    string            `json:"description"`
	Status         string            `json:"status"`
	StartDate      *time.Time        `json:"startDate"`
	EndDate        *time.Time        `json:"endDate"`
	TargetAudience string            `json:"targetAudience"`
	Quotas         []QuotaRequest    `json:"quotas"`
	Questions      []QuestionRequest `json:"questions"`
}

func (r ProjectRequest) ToEntity() entities.Project {
	p := entities.Project{
		Name:           strings.TrimSpace(r.Name),
		Description:    r.Description,
		Status:         entities.ProjectStatus(r.Status),
		StartDate:      r.StartDate,
		EndDate:        r.EndDate,
		TargetAudience: r.TargetAudience,
	}
	for _, q := range r.Quotas {
		p.Quotas = append(p.Quotas, entities.QuotaTarget{
			ID:            q.ID,
			Name:          q.Name,
			TargetCount:   q.TargetCount,
			AchievedCount: q.AchievedCount,
		})
	}
	for _, q := range r.Questions {
		p.Questions = append(p.Questions, entities.Question{
			ID:          q.ID,
			Text:        q.Text,
			Type:        entities.QuestionType(q.Type),
			Options:     q.Options,
			ScaleMin:    q.ScaleMin,
			ScaleMax:    q.ScaleMax,
			ScaleLabels: q.ScaleLabels,
		})
	}
	return p
}

type ProjectStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r ProjectStatusRequest) ResolveStatus() entities.ProjectStatus {
	return entities.ProjectStatus(strings.TrimSpace(r.Status))
}
