package store

import "pesquisa_pbr/internal/domain/entities"

// Action is the closed set of state transitions the store understands.
// The unexported marker method seals the set: the reducer's type switch is
// exhaustive over every type declared in this file, and anything else is
// rejected at dispatch time.
type Action interface {
	isAction()
}

type AddProject struct {
	Project entities.Project
}

type UpdateProject struct {
	Project entities.Project
}

type DeleteProject struct {
	ProjectID string
}

type UpdateProjectStatus struct {
	ProjectID string
	Status    entities.ProjectStatus
}

type AddUser struct {
	User entities.User
}

type UpdateUser struct {
	User entities.User
}

type DeleteUser struct {
	UserID string
}

type UpdateUserRole struct {
	UserID string
	Role   entities.UserRole
}

// AddSurveyResponse prepends a finalized response. The store trusts its
// input; validation is the collection engine's responsibility.
type AddSurveyResponse struct {
	Response entities.SurveyResponse
}

// CompleteInterview advances an area's completed-interview count and
// recomputes its status. Delta defaults to 1 when zero. Unknown area ids
// are a no-op over the whole collection.
type CompleteInterview struct {
	AreaID string
	Delta  int
}

// SubmitInterview applies AddSurveyResponse followed by CompleteInterview as
// one transition, so no intervening dispatch can observe the response without
// the progress advance.
type SubmitInterview struct {
	Response entities.SurveyResponse
	AreaID   string
}

func (AddProject) isAction()          {}
func (UpdateProject) isAction()       {}
func (DeleteProject) isAction()       {}
func (UpdateProjectStatus) isAction() {}
func (AddUser) isAction()             {}
func (UpdateUser) isAction()          {}
func (DeleteUser) isAction()          {}
func (UpdateUserRole) isAction()      {}
func (AddSurveyResponse) isAction()   {}
func (CompleteInterview) isAction()   {}
func (SubmitInterview) isAction()     {}
