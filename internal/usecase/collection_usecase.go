package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"
	"time"

	"pesquisa_pbr/internal/domain/entities"
	"pesquisa_pbr/internal/store"
	"pesquisa_pbr/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrAreaNotFound       = errors.New("survey area not found")
	ErrAreaNotAssigned    = errors.New("survey area is not assigned to this researcher")
	ErrAreaTargetReached  = errors.New("interview target for this area has been reached")
	ErrSessionNotFound    = errors.New("collection session not found")
	ErrUnknownQuestion    = errors.New("question is not part of this questionnaire")
	ErrNotMultipleChoice  = errors.New("option toggling only applies to multiple-choice questions")
	ErrOptionNotInSchema  = errors.New("option is not part of the question")
	ErrIncompleteAnswers  = errors.New("questionnaire has unanswered or invalid questions")
	ErrProjectForAreaGone = errors.New("project owning this area no longer exists")
)

// IncompleteError carries which questions blocked a submission. It matches
// ErrIncompleteAnswers under errors.Is so handlers can map it while still
// reporting per-question detail.
type IncompleteError struct {
	QuestionIDs []string
}

func (e *IncompleteError) Error() string {
	return fmt.Sprintf("questionnaire incomplete: %s", strings.Join(e.QuestionIDs, ", "))
}

func (e *IncompleteError) Is(target error) bool {
	return target == ErrIncompleteAnswers
}

// CollectionSession is one in-progress questionnaire draft, from area
// selection to submit or cancel. Questions are snapshotted from the owning
// project at start time and are the schema source of truth for the whole
// session. Drafts holds one in-progress value per question id.
type CollectionSession struct {
	ID           string
	AreaID       string
	ProjectID    string
	ResearcherID string
	StartedAt    time.Time
	Questions    []entities.Question
	Drafts       map[string]entities.AnswerValue
}

// SyncReport is what the field "sync data" affordance returns. There is no
// remote to flush to, so PendingUploads is always zero; the report only
// summarizes what the store already holds.
type SyncReport struct {
	ResearcherID       string    `json:"researcherId"`
	ResponsesCollected int       `json:"responsesCollected"`
	PendingUploads     int       `json:"pendingUploads"`
	SyncedAt           time.Time `json:"syncedAt"`
}

// ICollectionUseCase is the dynamic questionnaire engine: it opens collection
// sessions against an assigned area, manages the researcher's draft answers,
// validates, and emits the finalized SurveyResponse to the store.
type ICollectionUseCase interface {
	StartSession(ctx context.Context, areaID, researcherID string) (CollectionSession, error)
	GetSession(ctx context.Context, sessionID string) (CollectionSession, error)
	SetAnswer(ctx context.Context, sessionID, questionID string, value entities.AnswerValue) (CollectionSession, error)
	ToggleOption(ctx context.Context, sessionID, questionID, option string, selected bool) (CollectionSession, error)
	Submit(ctx context.Context, sessionID string) (entities.SurveyResponse, error)
	Cancel(ctx context.Context, sessionID string) error
	Sync(ctx context.Context, researcherID string) (SyncReport, error)
}

type CollectionUseCase struct {
	store interfaces.IStateStore

	mu       sync.Mutex
	sessions map[string]*CollectionSession
}

var _ ICollectionUseCase = (*CollectionUseCase)(nil)

func NewCollectionUseCase(st interfaces.IStateStore) *CollectionUseCase {
	return &CollectionUseCase{
		store:    st,
		sessions: make(map[string]*CollectionSession),
	}
}

// StartSession opens a draft for one interview in the given area. It refuses
// areas that are unknown, not assigned to the researcher, or already at
// their interview target. The draft map is seeded in schema order: an empty
// selection list for MULTIPLE_CHOICE, the empty sentinel for everything else.
func (u *CollectionUseCase) StartSession(ctx context.Context, areaID, researcherID string) (CollectionSession, error) {
	state := u.store.State()

	area, ok := state.AreaByID(strings.TrimSpace(areaID))
	if !ok {
		return CollectionSession{}, ErrAreaNotFound
	}
	if area.AssignedToResearcherID != researcherID {
		return CollectionSession{}, ErrAreaNotAssigned
	}
	if area.TargetReached() {
		return CollectionSession{}, ErrAreaTargetReached
	}
	project, ok := state.ProjectByID(area.ProjectID)
	if !ok {
		return CollectionSession{}, ErrProjectForAreaGone
	}

	drafts := make(map[string]entities.AnswerValue, len(project.Questions))
	for _, q := range project.Questions {
		if q.Type == entities.QuestionTypeMultipleChoice {
			drafts[q.ID] = entities.SelectionsValue([]string{})
		} else {
			drafts[q.ID] = entities.EmptyValue()
		}
	}

	session := &CollectionSession{
		ID:           uuid.NewString(),
		AreaID:       area.ID,
		ProjectID:    project.ID,
		ResearcherID: researcherID,
		StartedAt:    time.Now().UTC(),
		Questions:    project.Questions,
		Drafts:       drafts,
	}

	u.mu.Lock()
	u.sessions[session.ID] = session
	u.mu.Unlock()

	return session.snapshot(), nil
}

func (u *CollectionUseCase) GetSession(ctx context.Context, sessionID string) (CollectionSession, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	session, ok := u.sessions[sessionID]
	if !ok {
		return CollectionSession{}, ErrSessionNotFound
	}
	return session.snapshot(), nil
}

// SetAnswer replaces the draft value of exactly one question. Other drafts
// are never touched.
func (u *CollectionUseCase) SetAnswer(ctx context.Context, sessionID, questionID string, value entities.AnswerValue) (CollectionSession, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	session, ok := u.sessions[sessionID]
	if !ok {
		return CollectionSession{}, ErrSessionNotFound
	}
	if _, ok := session.question(questionID); !ok {
		return CollectionSession{}, ErrUnknownQuestion
	}

	session.Drafts[questionID] = value
	return session.snapshot(), nil
}

// ToggleOption selects or deselects one option of a multiple-choice
// question. Selecting appends to the end of the selection list; deselecting
// removes by value. Toggling an already-selected option on is a no-op.
func (u *CollectionUseCase) ToggleOption(ctx context.Context, sessionID, questionID, option string, selected bool) (CollectionSession, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	session, ok := u.sessions[sessionID]
	if !ok {
		return CollectionSession{}, ErrSessionNotFound
	}
	question, ok := session.question(questionID)
	if !ok {
		return CollectionSession{}, ErrUnknownQuestion
	}
	if question.Type != entities.QuestionTypeMultipleChoice {
		return CollectionSession{}, ErrNotMultipleChoice
	}
	if !question.HasOption(option) {
		return CollectionSession{}, ErrOptionNotInSchema
	}

	current := session.Drafts[questionID].Selections
	next := make([]string, 0, len(current)+1)
	found := false
	for _, v := range current {
		if v == option {
			found = true
			if !selected {
				continue
			}
		}
		next = append(next, v)
	}
	if selected && !found {
		next = append(next, option)
	}

	session.Drafts[questionID] = entities.SelectionsValue(next)
	return session.snapshot(), nil
}

// Submit validates the whole draft and, if complete, emits the finalized
// response and the area progress advance as a single store transition, then
// discards the session. Validation is fail-fast for the submission as a
// whole: nothing is saved when any question is unanswered or invalid.
func (u *CollectionUseCase) Submit(ctx context.Context, sessionID string) (entities.SurveyResponse, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	session, ok := u.sessions[sessionID]
	if !ok {
		return entities.SurveyResponse{}, ErrSessionNotFound
	}

	// Re-check the target against the live snapshot: another submission may
	// have reached it while this session was open.
	area, ok := u.store.State().AreaByID(session.AreaID)
	if !ok {
		return entities.SurveyResponse{}, ErrAreaNotFound
	}
	if area.TargetReached() {
		return entities.SurveyResponse{}, ErrAreaTargetReached
	}

	var incomplete []string
	for _, q := range session.Questions {
		if err := validateAnswer(q, session.Drafts[q.ID]); err != nil {
			incomplete = append(incomplete, q.ID)
		}
	}
	if len(incomplete) > 0 {
		return entities.SurveyResponse{}, &IncompleteError{QuestionIDs: incomplete}
	}

	answers := make([]entities.Answer, len(session.Questions))
	for i, q := range session.Questions {
		answers[i] = entities.Answer{QuestionID: q.ID, Value: session.Drafts[q.ID]}
	}

	response := entities.SurveyResponse{
		ID:             uuid.NewString(),
		ProjectID:      session.ProjectID,
		SurveyAreaID:   session.AreaID,
		ResearcherID:   session.ResearcherID,
		CollectionDate: time.Now().UTC(),
		Answers:        answers,
	}

	if err := u.store.Dispatch(store.SubmitInterview{Response: response, AreaID: session.AreaID}); err != nil {
		return entities.SurveyResponse{}, err
	}

	delete(u.sessions, sessionID)
	return response, nil
}

func (u *CollectionUseCase) Cancel(ctx context.Context, sessionID string) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	if _, ok := u.sessions[sessionID]; !ok {
		return ErrSessionNotFound
	}
	delete(u.sessions, sessionID)
	return nil
}

// Sync reports what the researcher has collected so far. The real upload is
// a placeholder: all responses already live in the store, so there is never
// anything pending.
func (u *CollectionUseCase) Sync(ctx context.Context, researcherID string) (SyncReport, error) {
	state := u.store.State()
	collected := 0
	for _, r := range state.SurveyResponses {
		if r.ResearcherID == researcherID {
			collected++
		}
	}
	return SyncReport{
		ResearcherID:       researcherID,
		ResponsesCollected: collected,
		PendingUploads:     0,
		SyncedAt:           time.Now().UTC(),
	}, nil
}

// validateAnswer applies the per-type completeness rule: a selection list
// must be non-empty for MULTIPLE_CHOICE, every other type must hold a
// non-empty value of the right shape, choice values must come from the
// schema options, and bounded numbers must be in range.
func validateAnswer(q entities.Question, v entities.AnswerValue) error {
	if v.IsEmpty() {
		return ErrIncompleteAnswers
	}

	switch q.Type {
	case entities.QuestionTypeText:
		if v.Kind != entities.AnswerKindText {
			return ErrIncompleteAnswers
		}

	case entities.QuestionTypeSingleChoice:
		if v.Kind != entities.AnswerKindText || !q.HasOption(v.Text) {
			return ErrIncompleteAnswers
		}

	case entities.QuestionTypeMultipleChoice:
		if v.Kind != entities.AnswerKindSelections {
			return ErrIncompleteAnswers
		}
		for _, sel := range v.Selections {
			if !q.HasOption(sel) {
				return ErrIncompleteAnswers
			}
		}

	case entities.QuestionTypeNumeric:
		if v.Kind != entities.AnswerKindNumber {
			return ErrIncompleteAnswers
		}
		if !withinBounds(v.Number, q.ScaleMin, q.ScaleMax) {
			return ErrIncompleteAnswers
		}

	case entities.QuestionTypeScale:
		if v.Kind != entities.AnswerKindNumber || v.Number != math.Trunc(v.Number) {
			return ErrIncompleteAnswers
		}
		if !withinBounds(v.Number, q.ScaleMin, q.ScaleMax) {
			return ErrIncompleteAnswers
		}
	}
	return nil
}

func withinBounds(n float64, min, max *int) bool {
	if min != nil && n < float64(*min) {
		return false
	}
	if max != nil && n > float64(*max) {
		return false
	}
	return true
}

func (s *CollectionSession) question(id string) (entities.Question, bool) {
	for _, q := range s.Questions {
		if q.ID == id {
			return q, true
		}
	}
	return entities.Question{}, false
}

// snapshot copies the session so callers cannot mutate the live draft map.
func (s *CollectionSession) snapshot() CollectionSession {
	drafts := make(map[string]entities.AnswerValue, len(s.Drafts))
	for k, v := range s.Drafts {
		drafts[k] = v
	}
	copied := *s
	copied.Drafts = drafts
	return copied
}
