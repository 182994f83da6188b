package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"pesquisa_pbr/internal/domain/entities"
	"pesquisa_pbr/internal/store"
	"pesquisa_pbr/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrProjectNotFound      = errors.New("project not found")
	ErrInvalidProjectID     = errors.New("invalid project id")
	ErrInvalidProjectName   = errors.New("project name is required")
	ErrInvalidProjectStatus = errors.New("invalid project status")
)

// ProjectDetail is the read model for the project detail screen: the project
// plus its collection areas and how many responses it has accumulated.
type ProjectDetail struct {
	Project        entities.Project
	Areas          []entities.SurveyAreaAssignment
	ResponsesCount int
}

type IProjectUseCase interface {
	List(ctx context.Context) ([]entities.Project, error)
	Get(ctx context.Context, id string) (ProjectDetail, error)
	Create(ctx context.Context, p entities.Project) (entities.Project, error)
	Update(ctx context.Context, p entities.Project) (entities.Project, error)
	Delete(ctx context.Context, id string) error
	UpdateStatus(ctx context.Context, id string, status entities.ProjectStatus) (entities.Project, error)
	ListResponses(ctx context.Context, projectID string) ([]entities.SurveyResponse, error)
}

type ProjectUseCase struct {
	store interfaces.IStateStore
}

var _ IProjectUseCase = (*ProjectUseCase)(nil)

func NewProjectUseCase(st interfaces.IStateStore) *ProjectUseCase {
	return &ProjectUseCase{store: st}
}

func (u *ProjectUseCase) List(ctx context.Context) ([]entities.Project, error) {
	return u.store.State().Projects, nil
}

func (u *ProjectUseCase) Get(ctx context.Context, id string) (ProjectDetail, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return ProjectDetail{}, ErrInvalidProjectID
	}

	state := u.store.State()
	project, ok := state.ProjectByID(id)
	if !ok {
		return ProjectDetail{}, ErrProjectNotFound
	}

	detail := ProjectDetail{Project: project}
	for _, area := range state.SurveyAreas {
		if area.ProjectID == id {
			detail.Areas = append(detail.Areas, area)
		}
	}
	for _, r := range state.SurveyResponses {
		if r.ProjectID == id {
			detail.ResponsesCount++
		}
	}
	return detail, nil
}

// Create validates the questionnaire schema before the project enters the
// store; the collection engine trusts schemas it finds there.
func (u *ProjectUseCase) Create(ctx context.Context, p entities.Project) (entities.Project, error) {
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		return entities.Project{}, ErrInvalidProjectName
	}
	if p.Status == "" {
		p.Status = entities.ProjectStatusPlanejamento
	}
	if !p.Status.Valid() {
		return entities.Project{}, ErrInvalidProjectStatus
	}
	if err := normalizeSchema(&p); err != nil {
		return entities.Project{}, err
	}

	p.ID = uuid.NewString()
	p.CreationDate = time.Now().UTC()

	if err := u.store.Dispatch(store.AddProject{Project: p}); err != nil {
		return entities.Project{}, err
	}
	return p, nil
}

func (u *ProjectUseCase) Update(ctx context.Context, p entities.Project) (entities.Project, error) {
	p.ID = strings.TrimSpace(p.ID)
	if p.ID == "" {
		return entities.Project{}, ErrInvalidProjectID
	}
	current, ok := u.store.State().ProjectByID(p.ID)
	if !ok {
		return entities.Project{}, ErrProjectNotFound
	}

	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		return entities.Project{}, ErrInvalidProjectName
	}
	if p.Status == "" {
		p.Status = current.Status
	}
	if !p.Status.Valid() {
		return entities.Project{}, ErrInvalidProjectStatus
	}
	if err := normalizeSchema(&p); err != nil {
		return entities.Project{}, err
	}
	p.CreationDate = current.CreationDate

	if err := u.store.Dispatch(store.UpdateProject{Project: p}); err != nil {
		return entities.Project{}, err
	}
	return p, nil
}

func (u *ProjectUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidProjectID
	}
	if _, ok := u.store.State().ProjectByID(id); !ok {
		return ErrProjectNotFound
	}
	return u.store.Dispatch(store.DeleteProject{ProjectID: id})
}

func (u *ProjectUseCase) UpdateStatus(ctx context.Context, id string, status entities.ProjectStatus) (entities.Project, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Project{}, ErrInvalidProjectID
	}
	if !status.Valid() {
		return entities.Project{}, ErrInvalidProjectStatus
	}
	if _, ok := u.store.State().ProjectByID(id); !ok {
		return entities.Project{}, ErrProjectNotFound
	}

	if err := u.store.Dispatch(store.UpdateProjectStatus{ProjectID: id, Status: status}); err != nil {
		return entities.Project{}, err
	}
	updated, _ := u.store.State().ProjectByID(id)
	return updated, nil
}

// ListResponses returns a project's collected responses newest-first.
func (u *ProjectUseCase) ListResponses(ctx context.Context, projectID string) ([]entities.SurveyResponse, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return nil, ErrInvalidProjectID
	}

	state := u.store.State()
	if _, ok := state.ProjectByID(projectID); !ok {
		return nil, ErrProjectNotFound
	}

	var responses []entities.SurveyResponse
	for _, r := range state.SurveyResponses {
		if r.ProjectID == projectID {
			responses = append(responses, r)
		}
	}
	sort.SliceStable(responses, func(i, j int) bool {
		return responses[i].CollectionDate.After(responses[j].CollectionDate)
	})
	return responses, nil
}

// normalizeSchema validates every question and quota, assigning ids where
// the caller left them blank.
func normalizeSchema(p *entities.Project) error {
	for i := range p.Questions {
		if p.Questions[i].ID == "" {
			p.Questions[i].ID = uuid.NewString()
		}
		if err := p.Questions[i].Validate(); err != nil {
			return err
		}
	}
	for i := range p.Quotas {
		if p.Quotas[i].ID == "" {
			p.Quotas[i].ID = uuid.NewString()
		}
	}
	return nil
}
