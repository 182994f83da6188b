package entities

// SurveyAreaStatus is derived from interview counts: PENDENTE until the first
// interview, EM_ANDAMENTO while below target, CONCLUIDA at or past target.
// PROBLEMA is an out-of-band manual state; no transition in this service
// produces it.
type SurveyAreaStatus string

const (
	SurveyAreaStatusPendente    SurveyAreaStatus = "PENDENTE"
	SurveyAreaStatusEmAndamento SurveyAreaStatus = "EM_ANDAMENTO"
	SurveyAreaStatusConcluida   SurveyAreaStatus = "CONCLUIDA"
	SurveyAreaStatusProblema    SurveyAreaStatus = "PROBLEMA"
)

var surveyAreaStatusLabels = map[SurveyAreaStatus]string{
	SurveyAreaStatusPendente:    "Pendente",
	SurveyAreaStatusEmAndamento: "Em Andamento",
	SurveyAreaStatusConcluida:   "Concluída",
	SurveyAreaStatusProblema:    "Com Problema",
}

func (s SurveyAreaStatus) Valid() bool {
	_, ok := surveyAreaStatusLabels[s]
	return ok
}

func (s SurveyAreaStatus) Label() string {
	if label, ok := surveyAreaStatusLabels[s]; ok {
		return label
	}
	return "Desconhecido"
}

// LatLng is a [latitude, longitude] pair, serialized as a two-element array
// the way the map frontend expects it.
type LatLng [2]float64

// SurveyAreaAssignment is a geographic polygon assigned to a field researcher,
// with its own interview target independent of project-level quotas.
// Coordinates form a closed polygon in vertex order.
type SurveyAreaAssignment struct {
	ID                     string           `json:"id"`
	Name                   string           `json:"name"`
	Coordinates            []LatLng         `json:"coordinates"`
	InterviewsTarget       int              `json:"interviewsTarget"`
	InterviewsCompleted    int              `json:"interviewsCompleted"`
	Status                 SurveyAreaStatus `json:"status"`
	ProjectID              string           `json:"projectId"`
	AssignedToResearcherID string           `json:"assignedToResearcherId,omitempty"`
}

// TargetReached reports whether the area accepts no further interviews.
func (a SurveyAreaAssignment) TargetReached() bool {
	return a.InterviewsCompleted >= a.InterviewsTarget
}
