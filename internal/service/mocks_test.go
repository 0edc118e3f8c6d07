package service_test

import (
	"context"
	"sync"
	"time"

	"readum/internal/domain"

	"github.com/stretchr/testify/mock"
)

// --- MockQuizBackend ---
type MockQuizBackend struct {
	mock.Mock
}

func (m *MockQuizBackend) CreateQuiz(ctx context.Context, req *domain.QuizRequest) (*domain.GeneratedQuiz, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GeneratedQuiz), args.Error(1)
}

func (m *MockQuizBackend) SubmitAttempt(ctx context.Context, submission *domain.Submission) (string, error) {
	args := m.Called(ctx, submission)
	return args.String(0), args.Error(1)
}

func (m *MockQuizBackend) GetResult(ctx context.Context, resultID string) (*domain.SubmittedResult, error) {
	args := m.Called(ctx, resultID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SubmittedResult), args.Error(1)
}

// --- memoryCache ---
// memoryCache is an in-process domain.Cache that records the ttl of every Set.
type memoryCache struct {
	mu     sync.Mutex
	data   map[string]string
	ttls   map[string]time.Duration
	getErr error
	setErr error
}

func newMemoryCache() *memoryCache {
	return &memoryCache{data: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (c *memoryCache) Get(ctx context.Context, key string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.getErr != nil {
		return "", c.getErr
	}
	v, ok := c.data[key]
	if !ok {
		return "", domain.ErrCacheMiss
	}
	return v, nil
}

func (c *memoryCache) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.setErr != nil {
		return c.setErr
	}
	c.data[key] = value
	c.ttls[key] = expiration
	return nil
}

func (c *memoryCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, key)
	delete(c.ttls, key)
	return nil
}

func (c *memoryCache) Ping(ctx context.Context) error {
	return nil
}

func (c *memoryCache) has(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.data[key]
	return ok
}

// sampleQuiz returns n questions whose answers cycle through A-D.
func sampleQuiz(n int) domain.Quiz {
	quiz := domain.Quiz{}
	for i := 0; i < n; i++ {
		quiz.Questions = append(quiz.Questions, domain.Question{
			Content:     "Question " + string(rune('1'+i)),
			Options:     domain.Options{A: "first", B: "second", C: "third", D: "fourth"},
			Answer:      domain.Letters[i%len(domain.Letters)],
			Explanation: "Because the passage says so.",
		})
	}
	return quiz
}
