package response

import (
	"time"

	"pesquisa_pbr/internal/domain/entities"
	"pesquisa_pbr/internal/usecase"
)

type ProjectResponse struct {
	ID             string                 `json:"id"`
	Name           string                 `json:"name"`
	Description    string                 `json:"description"`
	Status         string                 `json:"status"`
	StatusLabel    string                 `json:"statusLabel"`
	CreationDate   time.Time              `json:"creationDate"`
	StartDate      *time.Time             `json:"startDate,omitempty"`
	EndDate        *time.Time             `json:"endDate,omitempty"`
	TargetAudience string                 `json:"targetAudience,omitempty"`
	Quotas         []entities.QuotaTarget `json:"quotas"`
	Questions      []entities.Question    `json:"questions"`
}

func FromProject(p entities.Project) ProjectResponse {
	return ProjectResponse{
		ID:             p.ID,
		Name:           p.Name,
		Description:    p.Description,
		Status:         string(p.Status),
		StatusLabel:    p.Status.Label(),
		CreationDate:   p.CreationDate,
		StartDate:      p.StartDate,
		EndDate:        p.EndDate,
		TargetAudience: p.TargetAudience,
		Quotas:         p.Quotas,
		Questions:      p.Questions,
	}
}

func FromProjects(projects []entities.Project) []ProjectResponse {
	out := make([]ProjectResponse, len(projects))
	for i, p := range projects {
		out[i] = FromProject(p)
	}
	return out
}

type ProjectDetailResponse struct {
	ProjectResponse
	Areas          []AreaResponse `json:"areas"`
	ResponsesCount int            `json:"responsesCount"`
}

func FromProjectDetail(d usecase.ProjectDetail) ProjectDetailResponse {
	return ProjectDetailResponse{
		ProjectResponse: FromProject(d.Project),
		Areas:           FromAreas(d.Areas),
		ResponsesCount:  d.ResponsesCount,
	}
}
