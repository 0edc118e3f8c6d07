package dto

import "readum/internal/domain"

// CreateQuizRequest is the body of POST /api/quizzes.
// @Description Quiz creation input
type CreateQuizRequest struct {
	Type          string `json:"type" validate:"required,oneof=text url" example:"text"`
	Content       string `json:"content" validate:"required" example:"Notes about the book I just read..."`
	Difficulty    string `json:"difficulty" validate:"required,oneof=beginner intermediate advanced" example:"beginner"`
	QuestionCount int    `json:"questionCount" example:"5"`
}

// SelectAnswerRequest is the body of PUT /api/quizzes/{attemptId}/answers/{index}.
type SelectAnswerRequest struct {
	Option string `json:"option" validate:"required" example:"A"`
}

// QuestionView is a question as shown while the attempt is unanswered.
// The correct answer and explanation are withheld until submission.
type QuestionView struct {
	Index    int            `json:"index"`
	Content  string         `json:"content"`
	Options  domain.Options `json:"options"`
	Selected domain.Letter  `json:"selected,omitempty"`
}

// AttemptResponse describes an attempt in any phase.
// @Description Quiz attempt state
type AttemptResponse struct {
	ID              string                  `json:"id"`
	QuizID          string                  `json:"quiz_id"`
	Phase           domain.Phase            `json:"phase"`
	Difficulty      domain.Difficulty       `json:"difficulty,omitempty"`
	DifficultyStyle domain.DifficultyStyle  `json:"difficulty_style"`
	Questions       []QuestionView          `json:"questions"`
	Answered        int                     `json:"answered"`
	Total           int                     `json:"total"`
	CanSubmit       bool                    `json:"can_submit"`
	Score           *domain.Score           `json:"score,omitempty"`
	Message         domain.ResultMessage    `json:"message,omitempty"`
	MessageText     string                  `json:"message_text,omitempty"`
	Review          []domain.QuestionReview `json:"review,omitempty"`
	ResultID        string                  `json:"result_id,omitempty"`
	ShareURL        string                  `json:"share_url,omitempty"`
	Dispatch        domain.DispatchStatus   `json:"dispatch,omitempty"`
	Alert           string                  `json:"alert,omitempty"`
}

// ResultResponse is the read-only view of a persisted result.
// @Description Persisted quiz result
type ResultResponse struct {
	ID              string                  `json:"id"`
	QuizID          string                  `json:"quiz_id"`
	Difficulty      domain.Difficulty       `json:"difficulty,omitempty"`
	DifficultyStyle domain.DifficultyStyle  `json:"difficulty_style"`
	Questions       []domain.Question       `json:"questions"`
	Selected        []domain.Letter         `json:"selected_options"`
	Score           domain.Score            `json:"score"`
	Message         domain.ResultMessage    `json:"message"`
	MessageText     string                  `json:"message_text"`
	Review          []domain.QuestionReview `json:"review"`
}

// FormConfigResponse exposes the bounds the creation form must respect.
type FormConfigResponse struct {
	MinQuestionCount int                `json:"min_question_count"`
	MaxQuestionCount int                `json:"max_question_count"`
	URLInputEnabled  bool               `json:"url_input_enabled"`
	Difficulties     []DifficultyOption `json:"difficulties"`
	QuizTypes        []domain.QuizType  `json:"quiz_types"`
}

type DifficultyOption struct {
	Value domain.Difficulty      `json:"value"`
	Style domain.DifficultyStyle `json:"style"`
}
