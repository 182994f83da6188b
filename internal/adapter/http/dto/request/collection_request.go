package request

import (
	"strings"

	"pesquisa_pbr/internal/domain/entities"
)

type StartSessionRequest struct {
	AreaID string `json:"areaId" binding:"required"`
}

func (r StartSessionRequest) ResolveAreaID() string {
	return strings.TrimSpace(r.AreaID)
}

// AnswerRequest replaces the draft value of one question. Value accepts the
// answer union on the wire: string, string array, number or null.
type AnswerRequest struct {
	QuestionID string               `json:"questionId" binding:"required"`
	Value      entities.AnswerValue `json:"value"`
}

// ToggleRequest selects or deselects one option of a multiple-choice
// question. Selected is a pointer so an absent field fails binding instead
// of silently deselecting.
type ToggleRequest struct {
	QuestionID string `json:"questionId" binding:"required"`
	Option     string `json:"option" binding:"required"`
	Selected   *bool  `json:"selected" binding:"required"`
}
