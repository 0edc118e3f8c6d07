package domain

import (
	"fmt"
	"strings"
)

// Letter identifies one of the four options of a question.
type Letter string

const (
	LetterA Letter = "A"
	LetterB Letter = "B"
	LetterC Letter = "C"
	LetterD Letter = "D"
)

// Letters lists the option keys in display order.
var Letters = []Letter{LetterA, LetterB, LetterC, LetterD}

// Valid reports whether l is one of A-D. Lower case letters are not accepted.
func (l Letter) Valid() bool {
	switch l {
	case LetterA, LetterB, LetterC, LetterD:
		return true
	}
	return false
}

// Options holds the four fixed answer choices of a question.
type Options struct {
	A string `json:"A"`
	B string `json:"B"`
	C string `json:"C"`
	D string `json:"D"`
}

// Get returns the option text for l.
func (o Options) Get(l Letter) string {
	switch l {
	case LetterA:
		return o.A
	case LetterB:
		return o.B
	case LetterC:
		return o.C
	case LetterD:
		return o.D
	}
	return ""
}

// Question is a single multiple-choice question produced by the generation service.
type Question struct {
	Content     string  `json:"content"`
	Options     Options `json:"options"`
	Answer      Letter  `json:"answer"`
	Explanation string  `json:"explanation"`
}

// Validate validates the question
func (q Question) Validate() error {
	if strings.TrimSpace(q.Content) == "" {
		return NewInvalidInputError("question content is required")
	}
	if !q.Answer.Valid() {
		return NewInvalidAnswerError(q.Answer)
	}
	return nil
}

// Quiz is an ordered list of questions. The position of a question is its index
// in the attempt's selections.
type Quiz struct {
	Questions []Question `json:"questions"`
}

// Len returns the number of questions.
func (q Quiz) Len() int {
	return len(q.Questions)
}

// Validate validates the quiz
func (q Quiz) Validate() error {
	if len(q.Questions) == 0 {
		return ErrEmptyQuiz
	}
	for i, question := range q.Questions {
		if err := question.Validate(); err != nil {
			return NewError(CodeInvalidInput, fmt.Sprintf("question %d is invalid", i+1), err)
		}
	}
	return nil
}

// Difficulty affects generation and display styling only.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// Difficulties lists the supported difficulties in ascending order.
var Difficulties = []Difficulty{DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced}

func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return true
	}
	return false
}

// QuizType tells the generation service how to interpret the submitted content.
type QuizType string

const (
	QuizTypeText QuizType = "text"
	QuizTypeURL  QuizType = "url"
)

func (t QuizType) Valid() bool {
	return t == QuizTypeText || t == QuizTypeURL
}

// QuizRequest is a validated quiz-creation request ready to be sent to the generation service.
type QuizRequest struct {
	Type          QuizType
	Content       string
	Difficulty    Difficulty
	QuestionCount int
}

// GeneratedQuiz is what the generation service returns for a QuizRequest.
type GeneratedQuiz struct {
	ID         string
	Quiz       Quiz
	Difficulty Difficulty
}

// Submission is the payload handed to the result persistence service.
type Submission struct {
	QuizID     string
	Quiz       Quiz
	Selected   []Letter
	Difficulty Difficulty
}

// SubmittedResult is a persisted attempt fetched back by its identifier.
type SubmittedResult struct {
	ID         string     `json:"id"`
	Quiz       Quiz       `json:"quiz"`
	Selected   []Letter   `json:"selected_options"`
	Difficulty Difficulty `json:"difficulty,omitempty"`
}

// Selections converts the dense list stored by the persistence service into the
// index keyed form used by the score calculator.
func (r *SubmittedResult) Selections() map[int]Letter {
	return SelectionsFromList(r.Selected)
}

// SelectionsFromList maps list position to selected letter.
func SelectionsFromList(list []Letter) map[int]Letter {
	selected := make(map[int]Letter, len(list))
	for i, l := range list {
		selected[i] = l
	}
	return selected
}
