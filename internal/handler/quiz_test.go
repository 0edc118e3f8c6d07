package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"readum/internal/config"
	"readum/internal/domain"
	"readum/internal/dto"
	"readum/internal/logger"
	"readum/internal/middleware"
	"readum/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testAttemptID = "01HGZ8VNRYXS8QKNJV5GRWPWDQ"

func TestMain(m *testing.M) {
	if err := logger.Initialize(config.LoggerConfig{Env: "test", Level: "error"}); err != nil {
		log.Fatalf("Failed to initialize logger for handler tests: %v", err)
	}
	exitCode := m.Run()
	_ = logger.Sync()
	os.Exit(exitCode)
}

// MockQuizService is a mock implementation of service.QuizService
type MockQuizService struct {
	mock.Mock
}

func (m *MockQuizService) CreateQuiz(ctx context.Context, req dto.CreateQuizRequest) (*dto.AttemptResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AttemptResponse), args.Error(1)
}

func (m *MockQuizService) GetAttempt(ctx context.Context, attemptID string) (*dto.AttemptResponse, error) {
	args := m.Called(ctx, attemptID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AttemptResponse), args.Error(1)
}

func (m *MockQuizService) SelectAnswer(ctx context.Context, attemptID string, index int, option string) (*dto.AttemptResponse, error) {
	args := m.Called(ctx, attemptID, index, option)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AttemptResponse), args.Error(1)
}

func (m *MockQuizService) Submit(ctx context.Context, attemptID string) (*dto.AttemptResponse, error) {
	args := m.Called(ctx, attemptID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AttemptResponse), args.Error(1)
}

func (m *MockQuizService) Reset(ctx context.Context, attemptID string) (*dto.AttemptResponse, error) {
	args := m.Called(ctx, attemptID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AttemptResponse), args.Error(1)
}

func (m *MockQuizService) Discard(ctx context.Context, attemptID string) error {
	return m.Called(ctx, attemptID).Error(0)
}

func (m *MockQuizService) FormConfig() *dto.FormConfigResponse {
	return m.Called().Get(0).(*dto.FormConfigResponse)
}

// MockResultService is a mock implementation of service.ResultService
type MockResultService struct {
	mock.Mock
}

func (m *MockResultService) GetResult(ctx context.Context, resultID string) (*dto.ResultResponse, error) {
	args := m.Called(ctx, resultID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ResultResponse), args.Error(1)
}

// stubCache satisfies domain.Cache for the health handler.
type stubCache struct {
	pingErr error
}

func (s *stubCache) Get(ctx context.Context, key string) (string, error) { return "", domain.ErrCacheMiss }
func (s *stubCache) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	return nil
}
func (s *stubCache) Delete(ctx context.Context, key string) error { return nil }
func (s *stubCache) Ping(ctx context.Context) error              { return s.pingErr }

func newTestApp(qs *MockQuizService, rs *MockResultService) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
	RegisterRoutes(app, NewQuizHandler(qs, validation.NewValidator()), NewResultHandler(rs), NewHealthHandler(&stubCache{}))
	return app
}

func jsonRequest(t *testing.T, method, path string, body interface{}) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestCreateQuiz(t *testing.T) {
	tests := []struct {
		name           string
		body           interface{}
		mockResponse   *dto.AttemptResponse
		mockError      error
		expectedStatus int
		expectedCode   string
	}{
		{
			name:           "created",
			body:           map[string]interface{}{"type": "text", "content": "notes", "difficulty": "beginner", "questionCount": 5},
			mockResponse:   &dto.AttemptResponse{ID: testAttemptID, Phase: domain.PhaseQuizReady, Total: 5},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "validation failure",
			body:           map[string]interface{}{"type": "text", "content": "notes", "difficulty": "beginner", "questionCount": 42},
			mockError:      domain.ValidationErrors{domain.NewInvalidQuestionCountError("questionCount", 42, 3, 10)},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "VALIDATION_ERROR",
		},
		{
			name:           "backend unavailable",
			body:           map[string]interface{}{"type": "text", "content": "notes", "difficulty": "beginner", "questionCount": 5},
			mockError:      domain.NewError(domain.CodeBackendUnavailable, "Quiz service is unavailable", nil),
			expectedStatus: http.StatusServiceUnavailable,
			expectedCode:   "BACKEND_UNAVAILABLE",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			qs := new(MockQuizService)
			app := newTestApp(qs, new(MockResultService))
			if tt.mockError != nil {
				qs.On("CreateQuiz", mock.Anything, mock.AnythingOfType("dto.CreateQuizRequest")).Return(nil, tt.mockError).Once()
			} else {
				qs.On("CreateQuiz", mock.Anything, dto.CreateQuizRequest{
					Type: "text", Content: "notes", Difficulty: "beginner", QuestionCount: 5,
				}).Return(tt.mockResponse, nil).Once()
			}

			resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/quizzes", tt.body))
			require.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)

			body := decodeBody(t, resp)
			if tt.expectedCode != "" {
				assert.Equal(t, tt.expectedCode, body["code"])
			} else {
				assert.Equal(t, testAttemptID, body["id"])
				assert.Equal(t, "quiz_ready", body["phase"])
			}
			qs.AssertExpectations(t)
		})
	}
}

func TestCreateQuiz_MalformedBody(t *testing.T) {
	qs := new(MockQuizService)
	app := newTestApp(qs, new(MockResultService))

	req := httptest.NewRequest(http.MethodPost, "/api/quizzes", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	qs.AssertNotCalled(t, "CreateQuiz", mock.Anything, mock.Anything)
}

func TestSelectAnswer(t *testing.T) {
	qs := new(MockQuizService)
	app := newTestApp(qs, new(MockResultService))
	qs.On("SelectAnswer", mock.Anything, testAttemptID, 2, "B").
		Return(&dto.AttemptResponse{ID: testAttemptID, Answered: 1, Total: 3}, nil).Once()
	qs.On("SelectAnswer", mock.Anything, testAttemptID, 7, "A").
		Return(nil, domain.NewError(domain.CodeOutOfRange, "Question index 7 is out of range [0, 3)", nil)).Once()

	resp, err := app.Test(jsonRequest(t, http.MethodPut, "/api/quizzes/"+testAttemptID+"/answers/2", dto.SelectAnswerRequest{Option: "B"}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(1), decodeBody(t, resp)["answered"])

	resp, err = app.Test(jsonRequest(t, http.MethodPut, "/api/quizzes/"+testAttemptID+"/answers/7", dto.SelectAnswerRequest{Option: "A"}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, err = app.Test(jsonRequest(t, http.MethodPut, "/api/quizzes/"+testAttemptID+"/answers/0", map[string]string{}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, string(domain.CodeValidation), body["code"])
	errs, ok := body["errors"].([]interface{})
	require.True(t, ok)
	require.Len(t, errs, 1)
	fieldErr := errs[0].(map[string]interface{})
	assert.Equal(t, "option", fieldErr["field"])
	assert.Equal(t, string(domain.CodeMissingField), fieldErr["code"])

	resp, err = app.Test(jsonRequest(t, http.MethodPut, "/api/quizzes/bogus/answers/0", dto.SelectAnswerRequest{Option: "A"}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	qs.AssertExpectations(t)
}

func TestSubmit(t *testing.T) {
	tests := []struct {
		name           string
		mockResponse   *dto.AttemptResponse
		mockError      error
		expectedStatus int
		expectedAlert  string
	}{
		{
			name: "persisted",
			mockResponse: &dto.AttemptResponse{
				ID: testAttemptID, Phase: domain.PhaseSubmitted, Score: &domain.Score{Correct: 2, Total: 3, Percentage: 67},
				Dispatch: domain.DispatchSucceeded, ResultID: "result-1", ShareURL: "/result/result-1",
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "dispatch failed",
			mockResponse: &dto.AttemptResponse{
				ID: testAttemptID, Phase: domain.PhaseSubmitted, Score: &domain.Score{Correct: 3, Total: 3, Percentage: 100},
				Dispatch: domain.DispatchFailed, Alert: "An error occurred while sending your answers.",
			},
			expectedStatus: http.StatusOK,
			expectedAlert:  "An error occurred while sending your answers.",
		},
		{
			name:           "incomplete",
			mockError:      domain.NewError(domain.CodeIncompleteAttempt, "4 of 5 questions answered", nil),
			expectedStatus: http.StatusConflict,
		},
		{
			name:           "unknown attempt",
			mockError:      domain.NewAttemptNotFoundError(testAttemptID),
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			qs := new(MockQuizService)
			app := newTestApp(qs, new(MockResultService))
			if tt.mockError != nil {
				qs.On("Submit", mock.Anything, testAttemptID).Return(nil, tt.mockError).Once()
			} else {
				qs.On("Submit", mock.Anything, testAttemptID).Return(tt.mockResponse, nil).Once()
			}

			resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/api/quizzes/"+testAttemptID+"/submit", nil))
			require.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)

			if tt.mockError == nil {
				body := decodeBody(t, resp)
				assert.Equal(t, "submitted", body["phase"])
				assert.NotNil(t, body["score"])
				if tt.expectedAlert != "" {
					assert.Equal(t, tt.expectedAlert, body["alert"])
				} else {
					assert.NotContains(t, body, "alert")
				}
			}
		})
	}
}

func TestGetResetDiscardAttempt(t *testing.T) {
	qs := new(MockQuizService)
	app := newTestApp(qs, new(MockResultService))
	qs.On("GetAttempt", mock.Anything, testAttemptID).Return(&dto.AttemptResponse{ID: testAttemptID, Phase: domain.PhaseQuizReady}, nil).Once()
	qs.On("Reset", mock.Anything, testAttemptID).Return(nil, domain.NewError(domain.CodeAttemptNotSubmitted, "Only a submitted attempt can be reset", nil)).Once()
	qs.On("Discard", mock.Anything, testAttemptID).Return(nil).Once()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/quizzes/"+testAttemptID, nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodPost, "/api/quizzes/"+testAttemptID+"/reset", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodDelete, "/api/quizzes/"+testAttemptID, nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	qs.AssertExpectations(t)
}

func TestFormConfig(t *testing.T) {
	qs := new(MockQuizService)
	app := newTestApp(qs, new(MockResultService))
	qs.On("FormConfig").Return(&dto.FormConfigResponse{
		MinQuestionCount: 3,
		MaxQuestionCount: 10,
		QuizTypes:        []domain.QuizType{domain.QuizTypeText},
	}).Once()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/config", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, float64(3), body["min_question_count"])
	assert.Equal(t, float64(10), body["max_question_count"])
	assert.Equal(t, false, body["url_input_enabled"])
}
