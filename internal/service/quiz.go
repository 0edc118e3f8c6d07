package service

import (
	"context"
	"fmt"
	"time"

	"readum/internal/domain"
	"readum/internal/dto"
	"readum/internal/logger"
	"readum/internal/util"
	"readum/internal/validation"

	"go.uber.org/zap"
)

// DispatchFailedAlert is shown when a scored attempt could not be saved for sharing.
const DispatchFailedAlert = "An error occurred while sending your answers. Your score is shown below but no share link is available."

// QuizService drives a quiz attempt from creation to submission.
type QuizService interface {
	CreateQuiz(ctx context.Context, req dto.CreateQuizRequest) (*dto.AttemptResponse, error)
	GetAttempt(ctx context.Context, attemptID string) (*dto.AttemptResponse, error)
	SelectAnswer(ctx context.Context, attemptID string, index int, option string) (*dto.AttemptResponse, error)
	Submit(ctx context.Context, attemptID string) (*dto.AttemptResponse, error)
	Reset(ctx context.Context, attemptID string) (*dto.AttemptResponse, error)
	Discard(ctx context.Context, attemptID string) error
	FormConfig() *dto.FormConfigResponse
}

type quizService struct {
	builder    *validation.QuizRequestBuilder
	backend    domain.QuizBackend
	store      AttemptStore
	dispatcher *SubmissionDispatcher
	now        func() time.Time
	newID      func() string
}

// NewQuizService creates a new instance of quizService
func NewQuizService(
	builder *validation.QuizRequestBuilder,
	backend domain.QuizBackend,
	store AttemptStore,
	dispatcher *SubmissionDispatcher,
) QuizService {
	return &quizService{
		builder:    builder,
		backend:    backend,
		store:      store,
		dispatcher: dispatcher,
		now:        time.Now,
		newID:      util.NewULID,
	}
}

// CreateQuiz validates req, asks the backend for a quiz and stores a new
// attempt in QuizReady. Invalid input never reaches the backend.
func (s *quizService) CreateQuiz(ctx context.Context, req dto.CreateQuizRequest) (*dto.AttemptResponse, error) {
	quizReq, err := s.builder.Build(req)
	if err != nil {
		return nil, err
	}

	generated, err := s.backend.CreateQuiz(ctx, quizReq)
	if err != nil {
		return nil, err
	}

	attempt := domain.NewAttempt(s.newID(), s.now())
	if err := attempt.Load(generated.ID, generated.Quiz, generated.Difficulty); err != nil {
		logger.Get().Error("Backend returned an unusable quiz", zap.String("quizID", generated.ID), zap.Error(err))
		return nil, domain.NewError(domain.CodeBackendInvalidResult, "The generated quiz could not be used", err)
	}
	if err := s.store.Save(ctx, attempt); err != nil {
		return nil, err
	}

	logger.Get().Info("Quiz attempt created",
		zap.String("attemptID", attempt.ID),
		zap.String("quizID", attempt.QuizID),
		zap.Int("questions", attempt.Quiz.Len()))
	return newAttemptResponse(attempt), nil
}

func (s *quizService) GetAttempt(ctx context.Context, attemptID string) (*dto.AttemptResponse, error) {
	attempt, err := s.store.Get(ctx, attemptID)
	if err != nil {
		return nil, err
	}
	return newAttemptResponse(attempt), nil
}

// SelectAnswer records option for question index, replacing any earlier choice.
func (s *quizService) SelectAnswer(ctx context.Context, attemptID string, index int, option string) (*dto.AttemptResponse, error) {
	attempt, err := s.store.Get(ctx, attemptID)
	if err != nil {
		return nil, err
	}
	if err := attempt.Select(index, domain.Letter(option)); err != nil {
		return nil, err
	}
	if err := s.store.Save(ctx, attempt); err != nil {
		return nil, err
	}
	return newAttemptResponse(attempt), nil
}

// Submit scores a complete attempt locally and sends it to the backend once.
// A failed send does not undo the submission; it is reported through the
// response alert instead.
func (s *quizService) Submit(ctx context.Context, attemptID string) (*dto.AttemptResponse, error) {
	attempt, err := s.store.Get(ctx, attemptID)
	if err != nil {
		return nil, err
	}
	score, err := attempt.Submit(s.now())
	if err != nil {
		return nil, err
	}
	if err := s.store.Save(ctx, attempt); err != nil {
		return nil, err
	}
	logger.Get().Info("Quiz attempt submitted",
		zap.String("attemptID", attempt.ID),
		zap.Int("correct", score.Correct),
		zap.Int("total", score.Total))

	task := s.dispatcher.Dispatch(ctx, dispatchKey(attempt.ID, attempt.Retakes), attempt.Submission())
	result, finished := task.Wait(ctx)
	if !finished {
		go s.recordDispatch(attempt.ID, attempt.Retakes, task)
		return newAttemptResponse(attempt), nil
	}

	applyDispatchResult(attempt, result)
	if err := s.store.Save(ctx, attempt); err != nil {
		logger.Get().Error("Failed to store dispatch outcome", zap.String("attemptID", attempt.ID), zap.Error(err))
	}
	return newAttemptResponse(attempt), nil
}

// dispatchKey separates a retake's submission from an earlier one still in flight.
func dispatchKey(attemptID string, retakes int) string {
	return fmt.Sprintf("%s:%d", attemptID, retakes)
}

// recordDispatch stores the outcome of a dispatch whose caller stopped waiting.
// It is dropped when the attempt has since been reset or submitted again.
func (s *quizService) recordDispatch(attemptID string, retakes int, task *Task) {
	result := task.Result()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	attempt, err := s.store.Get(ctx, attemptID)
	if err != nil {
		logger.Get().Warn("Attempt gone before dispatch outcome was recorded", zap.String("attemptID", attemptID), zap.Error(err))
		return
	}
	if attempt.Phase != domain.PhaseSubmitted || attempt.Dispatch != domain.DispatchPending || attempt.Retakes != retakes {
		logger.Get().Debug("Dropping stale dispatch outcome", zap.String("attemptID", attemptID))
		return
	}
	applyDispatchResult(attempt, result)
	if err := s.store.Save(ctx, attempt); err != nil {
		logger.Get().Error("Failed to store dispatch outcome", zap.String("attemptID", attemptID), zap.Error(err))
	}
}

func applyDispatchResult(attempt *domain.Attempt, result DispatchResult) {
	if result.OK() {
		attempt.MarkPersisted(result.ResultID)
		return
	}
	reason := "empty result id"
	if result.Err != nil {
		reason = result.Err.Error()
	}
	attempt.MarkDispatchFailed(reason)
}

// Reset clears the selections of a submitted attempt so it can be retaken.
func (s *quizService) Reset(ctx context.Context, attemptID string) (*dto.AttemptResponse, error) {
	attempt, err := s.store.Get(ctx, attemptID)
	if err != nil {
		return nil, err
	}
	if err := attempt.Reset(); err != nil {
		return nil, err
	}
	if err := s.store.Save(ctx, attempt); err != nil {
		return nil, err
	}
	return newAttemptResponse(attempt), nil
}

// Discard drops an attempt. Discarding an unknown attempt is not an error.
func (s *quizService) Discard(ctx context.Context, attemptID string) error {
	return s.store.Delete(ctx, attemptID)
}

func (s *quizService) FormConfig() *dto.FormConfigResponse {
	minCount, maxCount := s.builder.Bounds()
	resp := &dto.FormConfigResponse{
		MinQuestionCount: minCount,
		MaxQuestionCount: maxCount,
		URLInputEnabled:  s.builder.URLInputEnabled(),
		QuizTypes:        []domain.QuizType{domain.QuizTypeText},
	}
	if resp.URLInputEnabled {
		resp.QuizTypes = append(resp.QuizTypes, domain.QuizTypeURL)
	}
	for _, d := range domain.Difficulties {
		resp.Difficulties = append(resp.Difficulties, dto.DifficultyOption{Value: d, Style: domain.StyleFor(d)})
	}
	return resp
}

// ShareURL is the path of the public page of a persisted result.
func ShareURL(resultID string) string {
	if resultID == "" {
		return ""
	}
	return "/result/" + resultID
}

func newAttemptResponse(a *domain.Attempt) *dto.AttemptResponse {
	resp := &dto.AttemptResponse{
		ID:              a.ID,
		QuizID:          a.QuizID,
		Phase:           a.Phase,
		Difficulty:      a.Difficulty,
		DifficultyStyle: domain.StyleFor(a.Difficulty),
		Questions:       make([]dto.QuestionView, 0, a.Quiz.Len()),
		Answered:        a.Answered(),
		Total:           a.Quiz.Len(),
		CanSubmit:       a.CanSubmit(),
	}
	for i, q := range a.Quiz.Questions {
		resp.Questions = append(resp.Questions, dto.QuestionView{
			Index:    i,
			Content:  q.Content,
			Options:  q.Options,
			Selected: a.Selected[i],
		})
	}

	if a.Phase != domain.PhaseSubmitted {
		return resp
	}

	if score, err := a.Score(); err == nil {
		resp.Score = &score
		resp.Message = domain.MessageFor(score.Percentage)
		resp.MessageText = resp.Message.Text()
	}
	resp.Review = domain.Review(a.Quiz, a.Selected)
	resp.Dispatch = a.Dispatch
	resp.ResultID = a.ResultID
	resp.ShareURL = ShareURL(a.ResultID)
	if a.Dispatch == domain.DispatchFailed {
		resp.Alert = DispatchFailedAlert
	}
	return resp
}
