package entities

import (
	"encoding/json"
	"errors"
	"time"
)

// AnswerValueKind discriminates the shapes an answer value can take on the
// wire: string, ordered string list, number, or null.
type AnswerValueKind int

const (
	AnswerKindEmpty AnswerValueKind = iota
	AnswerKindText
	AnswerKindSelections
	AnswerKindNumber
)

// AnswerValue is the union of value shapes a questionnaire answer can hold.
// The zero value is the "unanswered" sentinel; the empty string is treated
// as unanswered as well, matching the draft-state sentinel of the collection
// flow.
//
// JSON mapping:
//   - AnswerKindEmpty      <-> null (and "" on input)
//   - AnswerKindText       <-> string
//   - AnswerKindSelections <-> array of strings, selection order preserved
//   - AnswerKindNumber     <-> number
type AnswerValue struct {
	Kind       AnswerValueKind
	Text       string
	Selections []string
	Number     float64
}

func EmptyValue() AnswerValue {
	return AnswerValue{Kind: AnswerKindEmpty}
}

func TextValue(s string) AnswerValue {
	if s == "" {
		return EmptyValue()
	}
	return AnswerValue{Kind: AnswerKindText, Text: s}
}

func SelectionsValue(values []string) AnswerValue {
	return AnswerValue{Kind: AnswerKindSelections, Selections: values}
}

func NumberValue(n float64) AnswerValue {
	return AnswerValue{Kind: AnswerKindNumber, Number: n}
}

// IsEmpty reports whether the value is the unanswered sentinel. An empty
// selection list also counts as unanswered.
func (v AnswerValue) IsEmpty() bool {
	if v.Kind == AnswerKindEmpty {
		return true
	}
	return v.Kind == AnswerKindSelections && len(v.Selections) == 0
}

func (v AnswerValue) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case AnswerKindText:
		return json.Marshal(v.Text)
	case AnswerKindSelections:
		// Preserve selection order; marshal empty as [] rather than null.
		if v.Selections == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(v.Selections)
	case AnswerKindNumber:
		return json.Marshal(v.Number)
	default:
		return []byte("null"), nil
	}
}

var ErrInvalidAnswerValue = errors.New("answer value must be a string, an array of strings, a number or null")

func (v *AnswerValue) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch val := raw.(type) {
	case nil:
		*v = EmptyValue()
	case string:
		*v = TextValue(val)
	case float64:
		*v = NumberValue(val)
	case []any:
		selections := make([]string, 0, len(val))
		for _, item := range val {
			s, ok := item.(string)
			if !ok {
				return ErrInvalidAnswerValue
			}
			selections = append(selections, s)
		}
		*v = SelectionsValue(selections)
	default:
		return ErrInvalidAnswerValue
	}
	return nil
}

// Answer pairs a question with the value collected for it. Produced only as
// part of a SurveyResponse and never mutated afterward.
type Answer struct {
	QuestionID string      `json:"questionId"`
	Value      AnswerValue `json:"value"`
}

// SurveyResponse is one completed interview: exactly one answer per question
// of the owning project's schema, in schema order.
type SurveyResponse struct {
	ID             string    `json:"id"`
	ProjectID      string    `json:"projectId"`
	SurveyAreaID   string    `json:"surveyAreaId"`
	ResearcherID   string    `json:"researcherId"`
	CollectionDate time.Time `json:"collectionDate"`
	Answers        []Answer  `json:"answers"`
}
