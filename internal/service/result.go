package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"readum/internal/cache"
	"readum/internal/domain"
	"readum/internal/dto"
	"readum/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// ResultService renders persisted results for the shareable result page.
type ResultService interface {
	GetResult(ctx context.Context, resultID string) (*dto.ResultResponse, error)
}

type resultService struct {
	backend domain.QuizBackend
	cache   domain.Cache
	ttl     time.Duration
	sfGroup singleflight.Group
}

// NewResultService creates a ResultService. A nil cache disables caching.
func NewResultService(backend domain.QuizBackend, c domain.Cache, ttl time.Duration) ResultService {
	if c == nil {
		logger.Get().Warn("ResultService initialized with nil cache. Results will always be fetched.")
	}
	return &resultService{backend: backend, cache: c, ttl: ttl}
}

// NormalizeResultID canonicalizes a result identifier. Identifiers that parse
// as a UUID are returned in canonical lower case form; other identifiers are
// accepted as long as they are a single path segment.
func NormalizeResultID(resultID string) (string, bool) {
	resultID = strings.TrimSpace(resultID)
	if resultID == "" || len(resultID) > 128 || strings.ContainsAny(resultID, "/?#% ") {
		return "", false
	}
	if id, err := uuid.Parse(resultID); err == nil {
		return id.String(), true
	}
	return resultID, true
}

// GetResult loads the result identified by resultID and recomputes its score.
// Only the fetched record is cached; the score and message are derived again on
// every read. Unknown identifiers yield CodeResultNotFound.
func (s *resultService) GetResult(ctx context.Context, resultID string) (*dto.ResultResponse, error) {
	id, ok := NormalizeResultID(resultID)
	if !ok {
		return nil, domain.NewResultNotFoundError(resultID)
	}

	key := cache.GenerateCacheKey("result", "record", id)
	if cached := s.cachedResult(ctx, key); cached != nil {
		return newResultResponse(id, cached)
	}

	res, err, _ := s.sfGroup.Do(key, func() (interface{}, error) {
		// The flight outlives any single caller.
		fetchCtx := context.WithoutCancel(ctx)
		result, fetchErr := s.backend.GetResult(fetchCtx, id)
		if fetchErr != nil {
			return nil, fetchErr
		}
		if result == nil {
			return nil, domain.NewResultNotFoundError(id)
		}

		if s.cache != nil && result.Quiz.Len() > 0 {
			if data, errMarshal := json.Marshal(result); errMarshal == nil {
				if errSet := s.cache.Set(fetchCtx, key, string(data), s.ttl); errSet != nil {
					logger.Get().Warn("Failed to cache result record", zap.String("key", key), zap.Error(errSet))
				}
			}
		}
		return result, nil
	})
	if err != nil {
		return nil, err
	}

	result, ok := res.(*domain.SubmittedResult)
	if !ok {
		return nil, domain.NewInternalError(fmt.Sprintf("unexpected type from result fetch: %T", res), nil)
	}
	return newResultResponse(id, result)
}

func (s *resultService) cachedResult(ctx context.Context, key string) *domain.SubmittedResult {
	if s.cache == nil {
		return nil
	}
	data, err := s.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, domain.ErrCacheMiss) {
			logger.Get().Warn("Result cache read failed, fetching", zap.String("key", key), zap.Error(err))
		}
		return nil
	}
	if data == "" {
		return nil
	}
	var cached domain.SubmittedResult
	if errUnmarshal := json.Unmarshal([]byte(data), &cached); errUnmarshal != nil {
		logger.Get().Warn("Failed to unmarshal cached result, fetching", zap.String("key", key), zap.Error(errUnmarshal))
		return nil
	}
	logger.Get().Debug("Result cache hit", zap.String("key", key))
	return &cached
}

func newResultResponse(id string, result *domain.SubmittedResult) (*dto.ResultResponse, error) {
	if result == nil {
		return nil, domain.NewResultNotFoundError(id)
	}
	selected := result.Selections()
	score, err := domain.CalculateScore(result.Quiz, selected)
	if err != nil {
		return nil, domain.NewError(domain.CodeBackendInvalidResult, "The stored result has no questions", err)
	}
	message := domain.MessageFor(score.Percentage)

	return &dto.ResultResponse{
		ID:              id,
		QuizID:          result.ID,
		Difficulty:      result.Difficulty,
		DifficultyStyle: domain.StyleFor(result.Difficulty),
		Questions:       result.Quiz.Questions,
		Selected:        result.Selected,
		Score:           score,
		Message:         message,
		MessageText:     message.Text(),
		Review:          domain.Review(result.Quiz, selected),
	}, nil
}
