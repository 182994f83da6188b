package response

import (
	"fmt"

	"pesquisa_pbr/internal/usecase"
)

type ProjectProgressResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Status       string `json:"status"`
	QuotaPercent string `json:"quotaPercent"`
	CreationDate string `json:"creationDate"`
}

type DashboardResponse struct {
	ActiveProjects      int                       `json:"activeProjects"`
	TotalResponses      int                       `json:"totalResponses"`
	ResearchersInField  int                       `json:"researchersInField"`
	OverallQuotaPercent string                    `json:"overallQuotaPercent"`
	RecentProjects      []ProjectProgressResponse `json:"recentProjects"`
}

func FromDashboard(s usecase.DashboardSummary) DashboardResponse {
	out := DashboardResponse{
		ActiveProjects:      s.ActiveProjects,
		TotalResponses:      s.TotalResponses,
		ResearchersInField:  s.ResearchersInField,
		OverallQuotaPercent: percentText(s.OverallQuotaPercent),
	}
	for _, p := range s.RecentProjects {
		out.RecentProjects = append(out.RecentProjects, ProjectProgressResponse{
			ID:           p.ID,
			Name:         p.Name,
			Status:       string(p.Status),
			QuotaPercent: percentText(p.QuotaPercent),
			CreationDate: p.CreationDate,
		})
	}
	return out
}

func percentText(p *int) string {
	if p == nil {
		return "N/A"
	}
	return fmt.Sprintf("%d%%", *p)
}
