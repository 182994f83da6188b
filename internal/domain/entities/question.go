package entities

import (
	"errors"
	"fmt"
)

// QuestionType is the closed set of input controls a questionnaire can use.
type QuestionType string

const (
	QuestionTypeText           QuestionType = "TEXT"
	QuestionTypeSingleChoice   QuestionType = "SINGLE_CHOICE"
	QuestionTypeMultipleChoice QuestionType = "MULTIPLE_CHOICE"
	QuestionTypeNumeric        QuestionType = "NUMERIC"
	QuestionTypeScale          QuestionType = "SCALE"
)

var questionTypeLabels = map[QuestionType]string{
	QuestionTypeText:           "Texto",
	QuestionTypeSingleChoice:   "Escolha Única",
	QuestionTypeMultipleChoice: "Múltipla Escolha",
	QuestionTypeNumeric:        "Numérica",
	QuestionTypeScale:          "Escala",
}

func (t QuestionType) Valid() bool {
	_, ok := questionTypeLabels[t]
	return ok
}

func (t QuestionType) Label() string {
	if label, ok := questionTypeLabels[t]; ok {
		return label
	}
	return "Desconhecido"
}

var (
	ErrInvalidQuestionType  = errors.New("invalid question type")
	ErrEmptyQuestionText    = errors.New("question text is required")
	ErrMissingOptions       = errors.New("choice questions require non-empty options")
	ErrInvalidScaleBounds   = errors.New("scale requires scaleMin <= scaleMax")
	ErrScaleLabelsMismatch  = errors.New("scaleLabels length must equal scaleMax - scaleMin + 1")
	ErrInvalidNumericBounds = errors.New("numeric bounds require scaleMin <= scaleMax")
)

// Question is one entry of a project's questionnaire schema.
//
// Options is meaningful for SINGLE_CHOICE and MULTIPLE_CHOICE.
// ScaleMin/ScaleMax bound SCALE answers and, when set, NUMERIC answers.
// ScaleLabels optionally names each scale point, one label per point.
type Question struct {
	ID          string       `json:"id"`
	Text        string       `json:"text"`
	Type        QuestionType `json:"type"`
	Options     []string     `json:"options,omitempty"`
	ScaleMin    *int         `json:"scaleMin,omitempty"`
	ScaleMax    *int         `json:"scaleMax,omitempty"`
	ScaleLabels []string     `json:"scaleLabels,omitempty"`
}

// Validate checks the schema invariants. Projects refuse questionnaires
// containing an invalid question; the collection engine can then trust
// the schema it is handed.
func (q Question) Validate() error {
	if !q.Type.Valid() {
		return fmt.Errorf("question %q: %w", q.ID, ErrInvalidQuestionType)
	}
	if q.Text == "" {
		return fmt.Errorf("question %q: %w", q.ID, ErrEmptyQuestionText)
	}

	switch q.Type {
	case QuestionTypeSingleChoice, QuestionTypeMultipleChoice:
		if len(q.Options) == 0 {
			return fmt.Errorf("question %q: %w", q.ID, ErrMissingOptions)
		}
	case QuestionTypeScale:
		if q.ScaleMin == nil || q.ScaleMax == nil || *q.ScaleMin > *q.ScaleMax {
			return fmt.Errorf("question %q: %w", q.ID, ErrInvalidScaleBounds)
		}
		if len(q.ScaleLabels) > 0 && len(q.ScaleLabels) != *q.ScaleMax-*q.ScaleMin+1 {
			return fmt.Errorf("question %q: %w", q.ID, ErrScaleLabelsMismatch)
		}
	case QuestionTypeNumeric:
		if q.ScaleMin != nil && q.ScaleMax != nil && *q.ScaleMin > *q.ScaleMax {
			return fmt.Errorf("question %q: %w", q.ID, ErrInvalidNumericBounds)
		}
	}
	return nil
}

// HasOption reports whether value is one of the question's options.
func (q Question) HasOption(value string) bool {
	for _, opt := range q.Options {
		if opt == value {
			return true
		}
	}
	return false
}
