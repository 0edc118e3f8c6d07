package domain

import "context"

// QuizBackend is the external service that generates quizzes and persists submitted attempts.
type QuizBackend interface {
	CreateQuiz(ctx context.Context, req *QuizRequest) (*GeneratedQuiz, error)
	SubmitAttempt(ctx context.Context, submission *Submission) (string, error)
	GetResult(ctx context.Context, resultID string) (*SubmittedResult, error)
}
