package store

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"pesquisa_pbr/internal/domain/entities"
)

var (
	ErrDuplicateEmail     = errors.New("a user with this email already exists")
	ErrRootAdminImmutable = errors.New("the root administrator's email, role and existence are protected")
)

// Store holds the single source of truth for projects, users, survey areas
// and survey responses. Transitions are pure total functions applied under a
// write lock: one writer at a time, and readers always see a fully applied
// state, never a partial one.
//
// Integrity conflicts (duplicate email, root-admin protection) reject the
// transition and leave the state untouched.
type Store struct {
	mu    sync.RWMutex
	state State
}

func New(initial State) *Store {
	return &Store{state: initial}
}

// State returns the current snapshot. Callers must not mutate it.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Dispatch applies one action. On error the state is unchanged.
func (s *Store) Dispatch(action Action) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := reduce(s.state, action)
	if err != nil {
		return err
	}
	s.state = next
	return nil
}

func reduce(state State, action Action) (State, error) {
	switch a := action.(type) {
	case AddProject:
		state.Projects = prependProject(state.Projects, a.Project)
		return state, nil

	case UpdateProject:
		state.Projects = replaceProject(state.Projects, a.Project)
		return state, nil

	case DeleteProject:
		projects := make([]entities.Project, 0, len(state.Projects))
		for _, p := range state.Projects {
			if p.ID != a.ProjectID {
				projects = append(projects, p)
			}
		}
		state.Projects = projects
		return state, nil

	case UpdateProjectStatus:
		projects := make([]entities.Project, len(state.Projects))
		for i, p := range state.Projects {
			if p.ID == a.ProjectID {
				p.Status = a.Status
			}
			projects[i] = p
		}
		state.Projects = projects
		return state, nil

	case AddUser:
		if _, exists := state.UserByEmail(a.User.Email); exists {
			return State{}, ErrDuplicateEmail
		}
		state.Users = sortUsers(append(append([]entities.User{}, state.Users...), a.User))
		return state, nil

	case UpdateUser:
		current, ok := state.UserByID(a.User.ID)
		if !ok {
			return state, nil
		}
		if current.IsRootAdmin() && (!a.User.IsRootAdmin() || a.User.Role != entities.RoleAdministradorSistema) {
			return State{}, ErrRootAdminImmutable
		}
		if other, exists := state.UserByEmail(a.User.Email); exists && other.ID != a.User.ID {
			return State{}, ErrDuplicateEmail
		}
		users := make([]entities.User, len(state.Users))
		for i, u := range state.Users {
			if u.ID == a.User.ID {
				u = a.User
			}
			users[i] = u
		}
		state.Users = sortUsers(users)
		return state, nil

	case DeleteUser:
		if target, ok := state.UserByID(a.UserID); ok && target.IsRootAdmin() {
			return State{}, ErrRootAdminImmutable
		}
		users := make([]entities.User, 0, len(state.Users))
		for _, u := range state.Users {
			if u.ID != a.UserID {
				users = append(users, u)
			}
		}
		state.Users = users
		return state, nil

	case UpdateUserRole:
		if target, ok := state.UserByID(a.UserID); ok && target.IsRootAdmin() && a.Role != entities.RoleAdministradorSistema {
			return State{}, ErrRootAdminImmutable
		}
		users := make([]entities.User, len(state.Users))
		for i, u := range state.Users {
			if u.ID == a.UserID {
				u.Role = a.Role
			}
			users[i] = u
		}
		state.Users = sortUsers(users)
		return state, nil

	case AddSurveyResponse:
		state.SurveyResponses = prependResponse(state.SurveyResponses, a.Response)
		return state, nil

	case CompleteInterview:
		state.SurveyAreas = completeInterview(state.SurveyAreas, a.AreaID, a.Delta)
		return state, nil

	case SubmitInterview:
		state.SurveyResponses = prependResponse(state.SurveyResponses, a.Response)
		state.SurveyAreas = completeInterview(state.SurveyAreas, a.AreaID, 1)
		return state, nil

	default:
		return State{}, fmt.Errorf("unhandled action %T", action)
	}
}

// completeInterview advances the matching area's count and rederives its
// status: CONCLUIDA at or past target, otherwise EM_ANDAMENTO. Areas not
// matching areaID keep their current value; an unknown areaID leaves the
// whole collection as it was.
func completeInterview(areas []entities.SurveyAreaAssignment, areaID string, delta int) []entities.SurveyAreaAssignment {
	if delta == 0 {
		delta = 1
	}
	next := make([]entities.SurveyAreaAssignment, len(areas))
	for i, area := range areas {
		if area.ID == areaID {
			area.InterviewsCompleted += delta
			if area.InterviewsCompleted >= area.InterviewsTarget {
				area.Status = entities.SurveyAreaStatusConcluida
			} else {
				area.Status = entities.SurveyAreaStatusEmAndamento
			}
		}
		next[i] = area
	}
	return next
}

func prependProject(projects []entities.Project, p entities.Project) []entities.Project {
	return append([]entities.Project{p}, projects...)
}

func replaceProject(projects []entities.Project, updated entities.Project) []entities.Project {
	next := make([]entities.Project, len(projects))
	for i, p := range projects {
		if p.ID == updated.ID {
			p = updated
		}
		next[i] = p
	}
	return next
}

func prependResponse(responses []entities.SurveyResponse, r entities.SurveyResponse) []entities.SurveyResponse {
	return append([]entities.SurveyResponse{r}, responses...)
}

// sortUsers keeps the user list ordered by name, the order every listing
// screen expects.
func sortUsers(users []entities.User) []entities.User {
	sort.SliceStable(users, func(i, j int) bool {
		return users[i].Name < users[j].Name
	})
	return users
}
