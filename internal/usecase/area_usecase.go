package usecase

import (
	"context"
	"errors"
	"strings"

	"pesquisa_pbr/internal/domain/entities"
	"pesquisa_pbr/internal/usecase/interfaces"
)

var ErrInvalidAreaID = errors.New("invalid survey area id")

// IAreaUseCase is the read side of area/progress tracking. Areas are defined
// by seed data and mutated only through the store's interview-completion
// transition; there is no area CRUD.
type IAreaUseCase interface {
	List(ctx context.Context) ([]entities.SurveyAreaAssignment, error)
	Get(ctx context.Context, id string) (entities.SurveyAreaAssignment, error)
	ListByResearcher(ctx context.Context, researcherID string) ([]entities.SurveyAreaAssignment, error)
}

type AreaUseCase struct {
	store interfaces.IStateStore
}

var _ IAreaUseCase = (*AreaUseCase)(nil)

func NewAreaUseCase(st interfaces.IStateStore) *AreaUseCase {
	return &AreaUseCase{store: st}
}

func (u *AreaUseCase) List(ctx context.Context) ([]entities.SurveyAreaAssignment, error) {
	return u.store.State().SurveyAreas, nil
}

func (u *AreaUseCase) Get(ctx context.Context, id string) (entities.SurveyAreaAssignment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.SurveyAreaAssignment{}, ErrInvalidAreaID
	}
	area, ok := u.store.State().AreaByID(id)
	if !ok {
		return entities.SurveyAreaAssignment{}, ErrAreaNotFound
	}
	return area, nil
}

// ListByResearcher returns the collection tasks assigned to one researcher,
// the list the field screen renders next to the map.
func (u *AreaUseCase) ListByResearcher(ctx context.Context, researcherID string) ([]entities.SurveyAreaAssignment, error) {
	var areas []entities.SurveyAreaAssignment
	for _, a := range u.store.State().SurveyAreas {
		if a.AssignedToResearcherID == researcherID {
			areas = append(areas, a)
		}
	}
	return areas, nil
}
