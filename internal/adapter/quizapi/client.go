package quizapi

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"readum/internal/domain"
	"readum/internal/dto"
	"readum/internal/logger"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

const (
	createQuizPath = "/quiz/create_quiz"
	submitPath     = "/quiz/submit"
	resultPath     = "/result/{uuid}"
)

// Client talks to the external quiz generation and result persistence service.
// Every call is a single request; nothing is retried.
type Client struct {
	http *resty.Client
}

var _ domain.QuizBackend = (*Client)(nil)

// NewClient creates a client for the backend rooted at baseURL, e.g. http://localhost:8000/api/v1.
func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("quiz backend base URL cannot be empty")
	}
	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetRetryCount(0)
	if timeout > 0 {
		httpClient.SetTimeout(timeout)
	}
	return &Client{http: httpClient}, nil
}

// CreateQuiz asks the backend to generate a quiz.
func (c *Client) CreateQuiz(ctx context.Context, req *domain.QuizRequest) (*domain.GeneratedQuiz, error) {
	var out dto.BackendCreateQuizResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(dto.BackendCreateQuizRequest{
			Type:          string(req.Type),
			Content:       req.Content,
			Difficulty:    string(req.Difficulty),
			QuestionCount: req.QuestionCount,
		}).
		SetResult(&out).
		ForceContentType("application/json").
		Post(createQuizPath)
	if err != nil {
		return nil, transportError("create quiz", err)
	}
	if resp.IsError() {
		return nil, statusError("create quiz", resp)
	}
	if out.ID == "" {
		return nil, domain.NewError(domain.CodeBackendInvalidResult, "Quiz service returned a quiz without an ID", nil)
	}

	logger.Get().Debug("Quiz created by backend",
		zap.String("quiz_id", out.ID),
		zap.Int("questions", len(out.Preview.Questions)),
		zap.Duration("elapsed", resp.Time()),
	)

	difficulty := req.Difficulty
	if d := domain.Difficulty(out.DifficultyValue); d.Valid() {
		difficulty = d
	}
	return &domain.GeneratedQuiz{
		ID:         out.ID,
		Quiz:       domain.Quiz{Questions: out.Preview.Questions},
		Difficulty: difficulty,
	}, nil
}

// SubmitAttempt stores a submitted attempt and returns the identifier of the persisted result.
func (c *Client) SubmitAttempt(ctx context.Context, submission *domain.Submission) (string, error) {
	var out dto.BackendSubmitResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(dto.BackendSubmitRequest{
			ID:              submission.QuizID,
			Preview:         dto.BackendQuiz{Questions: submission.Quiz.Questions},
			SelectedOptions: submission.Selected,
			DifficultyValue: string(submission.Difficulty),
		}).
		SetResult(&out).
		ForceContentType("application/json").
		Post(submitPath)
	if err != nil {
		return "", transportError("submit attempt", err)
	}
	if resp.IsError() {
		return "", statusError("submit attempt", resp)
	}
	if out.UUID == "" {
		return "", domain.NewError(domain.CodeBackendInvalidResult, "Quiz service did not return a result ID", nil)
	}
	return out.UUID, nil
}

// GetResult fetches a persisted result. A 404 maps to CodeResultNotFound.
func (c *Client) GetResult(ctx context.Context, resultID string) (*domain.SubmittedResult, error) {
	var out dto.BackendResult
	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("uuid", resultID).
		SetResult(&out).
		ForceContentType("application/json").
		Get(resultPath)
	if err != nil {
		return nil, transportError("get result", err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return nil, domain.NewResultNotFoundError(resultID)
	}
	if resp.IsError() {
		return nil, statusError("get result", resp)
	}
	return &domain.SubmittedResult{
		ID:         out.ID,
		Quiz:       domain.Quiz{Questions: out.Preview.Questions},
		Selected:   out.SelectedOptions,
		Difficulty: domain.Difficulty(out.DifficultyValue),
	}, nil
}

func transportError(op string, err error) *domain.DomainError {
	logger.Get().Warn("Quiz backend unreachable", zap.String("op", op), zap.Error(err))
	return domain.NewError(domain.CodeBackendUnavailable, "Quiz service is unavailable", err).
		WithContext("op", op)
}

func statusError(op string, resp *resty.Response) *domain.DomainError {
	status := resp.StatusCode()
	logger.Get().Warn("Quiz backend returned an error status",
		zap.String("op", op),
		zap.Int("status", status),
		zap.String("body", truncate(resp.String(), 512)),
	)

	var derr *domain.DomainError
	switch {
	case status == http.StatusBadRequest:
		derr = domain.NewError(domain.CodeBackendInvalidInput,
			"The input was rejected: the text may be too short or the URL invalid", nil)
	case status >= http.StatusInternalServerError:
		derr = domain.NewError(domain.CodeBackendServerError,
			"The quiz service failed, please try again later", nil)
	default:
		derr = domain.NewError(domain.CodeBackendError,
			fmt.Sprintf("The quiz service returned status %d", status), nil)
	}
	return derr.WithContext("op", op).WithContext("status", status)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
