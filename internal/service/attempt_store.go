package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"readum/internal/cache"
	"readum/internal/domain"
	"readum/internal/logger"

	"go.uber.org/zap"
)

// AttemptStore keeps the state of in-progress attempts between requests.
type AttemptStore interface {
	Get(ctx context.Context, attemptID string) (*domain.Attempt, error)
	Save(ctx context.Context, attempt *domain.Attempt) error
	Delete(ctx context.Context, attemptID string) error
}

type cacheAttemptStore struct {
	cache domain.Cache
	ttl   time.Duration
}

// NewAttemptStore creates an AttemptStore backed by cache. Every Save refreshes the ttl.
func NewAttemptStore(c domain.Cache, ttl time.Duration) AttemptStore {
	return &cacheAttemptStore{cache: c, ttl: ttl}
}

func (s *cacheAttemptStore) generateKey(attemptID string) string {
	return cache.GenerateCacheKey("attempt", "state", attemptID)
}

// Get loads an attempt. A missing or expired attempt yields CodeAttemptNotFound.
func (s *cacheAttemptStore) Get(ctx context.Context, attemptID string) (*domain.Attempt, error) {
	key := s.generateKey(attemptID)
	data, err := s.cache.Get(ctx, key)
	if err != nil {
		if errors.Is(err, domain.ErrCacheMiss) {
			logger.Get().Debug("Attempt cache miss", zap.String("key", key))
			return nil, domain.NewAttemptNotFoundError(attemptID)
		}
		logger.Get().Error("Failed to get attempt from cache", zap.Error(err), zap.String("key", key))
		return nil, domain.NewInternalError(fmt.Sprintf("failed to get attempt for key %s", key), err)
	}
	if data == "" {
		return nil, domain.NewAttemptNotFoundError(attemptID)
	}

	var attempt domain.Attempt
	if err := json.Unmarshal([]byte(data), &attempt); err != nil {
		logger.Get().Error("Failed to unmarshal attempt", zap.Error(err), zap.String("key", key))
		return nil, domain.NewInternalError(fmt.Sprintf("failed to unmarshal attempt for key %s", key), err)
	}
	if attempt.Selected == nil {
		attempt.Selected = map[int]domain.Letter{}
	}
	return &attempt, nil
}

// Save stores attempt under its ID.
func (s *cacheAttemptStore) Save(ctx context.Context, attempt *domain.Attempt) error {
	if attempt == nil || attempt.ID == "" {
		return domain.NewInvalidInputError("cannot store an attempt without an id")
	}

	key := s.generateKey(attempt.ID)
	data, err := json.Marshal(attempt)
	if err != nil {
		return domain.NewInternalError("failed to marshal attempt", err)
	}
	if err := s.cache.Set(ctx, key, string(data), s.ttl); err != nil {
		logger.Get().Error("Failed to store attempt", zap.Error(err), zap.String("key", key))
		return domain.NewInternalError(fmt.Sprintf("failed to store attempt for key %s", key), err)
	}
	logger.Get().Debug("Stored attempt", zap.String("key", key), zap.String("phase", string(attempt.Phase)))
	return nil
}

func (s *cacheAttemptStore) Delete(ctx context.Context, attemptID string) error {
	if err := s.cache.Delete(ctx, s.generateKey(attemptID)); err != nil {
		return domain.NewInternalError("failed to delete attempt", err)
	}
	return nil
}
