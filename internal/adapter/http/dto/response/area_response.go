package response

import "pesquisa_pbr/internal/domain/entities"

type AreaResponse struct {
	ID                     string            `json:"id"`
	Name                   string            `json:"name"`
	Coordinates            []entities.LatLng `json:"coordinates"`
	InterviewsTarget       int               `json:"interviewsTarget"`
	InterviewsCompleted    int               `json:"interviewsCompleted"`
	Status                 string            `json:"status"`
	StatusLabel            string            `json:"statusLabel"`
	ProjectID              string            `json:"projectId"`
	AssignedToResearcherID string            `json:"assignedToResearcherId,omitempty"`
}

func FromArea(a entities.SurveyAreaAssignment) AreaResponse {
	return AreaResponse{
		ID:                     a.ID,
		Name:                   a.Name,
		Coordinates:            a.Coordinates,
		InterviewsTarget:       a.InterviewsTarget,
		InterviewsCompleted:    a.InterviewsCompleted,
		Status:                 string(a.Status),
		StatusLabel:            a.Status.Label(),
		ProjectID:              a.ProjectID,
		AssignedToResearcherID: a.AssignedToResearcherID,
	}
}

func FromAreas(areas []entities.SurveyAreaAssignment) []AreaResponse {
	out := make([]AreaResponse, len(areas))
	for i, a := range areas {
		out[i] = FromArea(a)
	}
	return out
}
