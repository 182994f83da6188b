package usecase

import (
	"context"
	"math"
	"sort"

	"pesquisa_pbr/internal/domain/entities"
	"pesquisa_pbr/internal/usecase/interfaces"
)

// ProjectProgress is one row of the dashboard's recent-projects table.
// QuotaPercent is nil when the project has no quotas to measure against.
type ProjectProgress struct {
	ID           string
	Name         string
	Status       entities.ProjectStatus
	QuotaPercent *int
	CreationDate string
}

// DashboardSummary aggregates the store's current collections. Everything
// here is a pure fold recomputed on every read; nothing is cached.
type DashboardSummary struct {
	ActiveProjects     int
	TotalResponses     int
	ResearchersInField int
	// OverallQuotaPercent sums quotas of projects in field or analysis.
	// Nil means no relevant quota exists ("N/A").
	OverallQuotaPercent *int
	RecentProjects      []ProjectProgress
}

type IDashboardUseCase interface {
	Summary(ctx context.Context) (DashboardSummary, error)
}

type DashboardUseCase struct {
	store interfaces.IStateStore
}

var _ IDashboardUseCase = (*DashboardUseCase)(nil)

func NewDashboardUseCase(st interfaces.IStateStore) *DashboardUseCase {
	return &DashboardUseCase{store: st}
}

func (u *DashboardUseCase) Summary(ctx context.Context) (DashboardSummary, error) {
	state := u.store.State()
	summary := DashboardSummary{
		TotalResponses: len(state.SurveyResponses),
	}

	var totalTarget, totalAchieved int
	for _, p := range state.Projects {
		if p.Status == entities.ProjectStatusEmCampo {
			summary.ActiveProjects++
		}
		if p.Status == entities.ProjectStatusEmCampo || p.Status == entities.ProjectStatusAnalise {
			achieved, target := p.QuotaProgress()
			totalAchieved += achieved
			totalTarget += target
		}
	}
	if totalTarget > 0 {
		summary.OverallQuotaPercent = percent(totalAchieved, totalTarget)
	}

	for _, user := range state.Users {
		if user.Role != entities.RolePesquisadorCampo {
			continue
		}
		for _, area := range state.SurveyAreas {
			if area.AssignedToResearcherID == user.ID && area.Status == entities.SurveyAreaStatusEmAndamento {
				summary.ResearchersInField++
				break
			}
		}
	}

	recent := append([]entities.Project{}, state.Projects...)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].CreationDate.After(recent[j].CreationDate)
	})
	if len(recent) > 5 {
		recent = recent[:5]
	}
	for _, p := range recent {
		row := ProjectProgress{
			ID:           p.ID,
			Name:         p.Name,
			Status:       p.Status,
			CreationDate: p.CreationDate.Format("2006-01-02"),
		}
		if achieved, target := p.QuotaProgress(); target > 0 {
			row.QuotaPercent = percent(achieved, target)
		}
		summary.RecentProjects = append(summary.RecentProjects, row)
	}

	return summary, nil
}

func percent(achieved, target int) *int {
	v := int(math.Round(float64(achieved) * 100 / float64(target)))
	return &v
}
