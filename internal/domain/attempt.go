package domain

import (
	"fmt"
	"sort"
	"time"
)

// Phase is the lifecycle position of an attempt.
type Phase string

const (
	PhaseIdle      Phase = "idle"
	PhaseQuizReady Phase = "quiz_ready"
	PhaseSubmitted Phase = "submitted"
)

// DispatchStatus tracks the best-effort persistence of a submitted attempt.
type DispatchStatus string

const (
	DispatchNone      DispatchStatus = ""
	DispatchPending   DispatchStatus = "pending"
	DispatchSucceeded DispatchStatus = "succeeded"
	DispatchFailed    DispatchStatus = "failed"
)

// Attempt is one session's run through a quiz: Idle -> QuizReady -> Submitted.
// Selections can only change in QuizReady; a Submitted attempt is immutable
// until Reset puts it back into QuizReady with no selections. Retakes counts
// the resets and so identifies the current submission round.
type Attempt struct {
	ID            string         `json:"id"`
	QuizID        string         `json:"quiz_id,omitempty"`
	Quiz          Quiz           `json:"quiz"`
	Difficulty    Difficulty     `json:"difficulty,omitempty"`
	Selected      map[int]Letter `json:"selected_options"`
	Phase         Phase          `json:"phase"`
	ResultID      string         `json:"result_id,omitempty"`
	Dispatch      DispatchStatus `json:"dispatch,omitempty"`
	DispatchError string         `json:"dispatch_error,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	SubmittedAt   *time.Time     `json:"submitted_at,omitempty"`
	Retakes       int            `json:"retakes"`
}

// NewAttempt returns an Idle attempt with no quiz.
func NewAttempt(id string, now time.Time) *Attempt {
	return &Attempt{
		ID:        id,
		Selected:  map[int]Letter{},
		Phase:     PhaseIdle,
		CreatedAt: now,
	}
}

// Load moves an Idle attempt to QuizReady once the generation service has answered.
func (a *Attempt) Load(quizID string, quiz Quiz, difficulty Difficulty) error {
	if a.Phase != PhaseIdle {
		return NewError(CodeAttemptLoaded, "Attempt already has a quiz", nil)
	}
	if err := quiz.Validate(); err != nil {
		return err
	}
	a.QuizID = quizID
	a.Quiz = quiz
	a.Difficulty = difficulty
	a.Selected = map[int]Letter{}
	a.Phase = PhaseQuizReady
	return nil
}

// Select records letter as the answer for question index, replacing any earlier choice.
func (a *Attempt) Select(index int, letter Letter) error {
	if err := a.requireReady(); err != nil {
		return err
	}
	if index < 0 || index >= a.Quiz.Len() {
		return NewError(CodeOutOfRange,
			fmt.Sprintf("Question index %d is out of range [0, %d)", index, a.Quiz.Len()), nil).
			WithContext("index", index)
	}
	if !letter.Valid() {
		return NewInvalidAnswerError(letter)
	}
	if a.Selected == nil {
		a.Selected = map[int]Letter{}
	}
	a.Selected[index] = letter
	return nil
}

// Answered returns how many questions have a selection.
func (a *Attempt) Answered() int {
	return len(a.Selected)
}

// IsComplete reports whether every question index has a selection.
func (a *Attempt) IsComplete() bool {
	n := a.Quiz.Len()
	if n == 0 || len(a.Selected) != n {
		return false
	}
	for i := 0; i < n; i++ {
		if _, ok := a.Selected[i]; !ok {
			return false
		}
	}
	return true
}

// CanSubmit is the completeness gate.
func (a *Attempt) CanSubmit() bool {
	return a.Phase == PhaseQuizReady && a.IsComplete()
}

// Submit freezes the attempt and returns the locally computed score. The
// transition is refused, with the attempt left unchanged, while any question
// is unanswered.
func (a *Attempt) Submit(now time.Time) (Score, error) {
	if err := a.requireReady(); err != nil {
		return Score{}, err
	}
	if !a.IsComplete() {
		return Score{}, NewError(CodeIncompleteAttempt,
			fmt.Sprintf("%d of %d questions answered", a.Answered(), a.Quiz.Len()), nil)
	}
	score, err := CalculateScore(a.Quiz, a.Selected)
	if err != nil {
		return Score{}, err
	}
	a.Phase = PhaseSubmitted
	a.SubmittedAt = &now
	a.Dispatch = DispatchPending
	a.DispatchError = ""
	a.ResultID = ""
	return score, nil
}

// Reset clears the selections of a submitted attempt so the quiz can be retried.
func (a *Attempt) Reset() error {
	if a.Phase != PhaseSubmitted {
		return NewError(CodeAttemptNotSubmitted, "Only a submitted attempt can be reset", nil)
	}
	a.Selected = map[int]Letter{}
	a.Phase = PhaseQuizReady
	a.Retakes++
	a.SubmittedAt = nil
	a.ResultID = ""
	a.Dispatch = DispatchNone
	a.DispatchError = ""
	return nil
}

// MarkPersisted records the identifier returned by the persistence service.
func (a *Attempt) MarkPersisted(resultID string) {
	a.ResultID = resultID
	a.Dispatch = DispatchSucceeded
	a.DispatchError = ""
}

// MarkDispatchFailed records a persistence failure. The attempt stays Submitted.
func (a *Attempt) MarkDispatchFailed(reason string) {
	a.Dispatch = DispatchFailed
	a.DispatchError = reason
}

// Score recomputes the score of the current selections.
func (a *Attempt) Score() (Score, error) {
	return CalculateScore(a.Quiz, a.Selected)
}

// SelectedList returns the selections ordered by question index.
func (a *Attempt) SelectedList() []Letter {
	indexes := make([]int, 0, len(a.Selected))
	for i := range a.Selected {
		indexes = append(indexes, i)
	}
	sort.Ints(indexes)
	list := make([]Letter, 0, len(indexes))
	for _, i := range indexes {
		list = append(list, a.Selected[i])
	}
	return list
}

// Submission builds the payload for the persistence service.
func (a *Attempt) Submission() *Submission {
	return &Submission{
		QuizID:     a.QuizID,
		Quiz:       a.Quiz,
		Selected:   a.SelectedList(),
		Difficulty: a.Difficulty,
	}
}

func (a *Attempt) requireReady() error {
	switch a.Phase {
	case PhaseQuizReady:
		return nil
	case PhaseSubmitted:
		return NewError(CodeAttemptSubmitted, "Attempt has already been submitted", nil)
	default:
		return NewError(CodeAttemptNotReady, "Attempt has no quiz loaded", nil)
	}
}
