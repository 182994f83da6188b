package store

import "pesquisa_pbr/internal/domain/entities"

// State is the single state tree: every entity collection the application
// knows about. Snapshots handed out by the store are replaced wholesale on
// every transition and must be treated as read-only by callers.
type State struct {
	Projects        []entities.Project              `json:"projects"`
	Users           []entities.User                 `json:"users"`
	SurveyAreas     []entities.SurveyAreaAssignment `json:"surveyAreas"`
	SurveyResponses []entities.SurveyResponse       `json:"surveyResponses"`
}

// ProjectByID returns the project with the given id, if any.
func (s State) ProjectByID(id string) (entities.Project, bool) {
	for _, p := range s.Projects {
		if p.ID == id {
			return p, true
		}
	}
	return entities.Project{}, false
}

// UserByID returns the user with the given id, if any.
func (s State) UserByID(id string) (entities.User, bool) {
	for _, u := range s.Users {
		if u.ID == id {
			return u, true
		}
	}
	return entities.User{}, false
}

// UserByEmail returns the user with the given email (case-insensitive), if any.
func (s State) UserByEmail(email string) (entities.User, bool) {
	for _, u := range s.Users {
		if entities.EqualEmail(u.Email, email) {
			return u, true
		}
	}
	return entities.User{}, false
}

// AreaByID returns the survey area with the given id, if any.
func (s State) AreaByID(id string) (entities.SurveyAreaAssignment, bool) {
	for _, a := range s.SurveyAreas {
		if a.ID == id {
			return a, true
		}
	}
	return entities.SurveyAreaAssignment{}, false
}
