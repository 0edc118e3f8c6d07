package dto

import "readum/internal/domain"

// Wire shapes of the external quiz backend. The submission and result payloads
// use snake_case selected_options; the creation body keeps questionCount because
// that is the alias the backend declares for it.

type BackendCreateQuizRequest struct {
	Type          string `json:"type"`
	Content       string `json:"content"`
	Difficulty    string `json:"difficulty"`
	QuestionCount int    `json:"questionCount"`
}

type BackendQuiz struct {
	Questions []domain.Question `json:"questions"`
}

type BackendCreateQuizResponse struct {
	ID              string      `json:"id"`
	Preview         BackendQuiz `json:"preview"`
	DifficultyValue string      `json:"difficultyValue,omitempty"`
}

type BackendSubmitRequest struct {
	ID              string          `json:"id"`
	Preview         BackendQuiz     `json:"preview"`
	SelectedOptions []domain.Letter `json:"selected_options"`
	DifficultyValue string          `json:"difficulty_value,omitempty"`
}

type BackendSubmitResponse struct {
	UUID string `json:"uuid"`
}

type BackendResult struct {
	ID              string          `json:"id"`
	Preview         BackendQuiz     `json:"preview"`
	SelectedOptions []domain.Letter `json:"selected_options"`
	DifficultyValue string          `json:"difficulty_value,omitempty"`
}

type BackendErrorResponse struct {
	Detail interface{} `json:"detail"`
}
