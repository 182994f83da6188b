package response

import (
	"time"

	"pesquisa_pbr/internal/domain/entities"
	"pesquisa_pbr/internal/usecase"
)

// SessionResponse is the state of one in-progress questionnaire: the schema
// to render, the current draft per question, and how many questions already
// hold a valid-looking (non-empty) value.
type SessionResponse struct {
	SessionID string                          `json:"sessionId"`
	AreaID    string                          `json:"areaId"`
	ProjectID string                          `json:"projectId"`
	StartedAt time.Time                       `json:"startedAt"`
	Questions []entities.Question             `json:"questions"`
	Drafts    map[string]entities.AnswerValue `json:"drafts"`
	Answered  int                             `json:"answered"`
	Total     int                             `json:"total"`
}

func FromSession(s usecase.CollectionSession) SessionResponse {
	answered := 0
	for _, v := range s.Drafts {
		if !v.IsEmpty() {
			answered++
		}
	}
	return SessionResponse{
		SessionID: s.ID,
		AreaID:    s.AreaID,
		ProjectID: s.ProjectID,
		StartedAt: s.StartedAt,
		Questions: s.Questions,
		Drafts:    s.Drafts,
		Answered:  answered,
		Total:     len(s.Questions),
	}
}
