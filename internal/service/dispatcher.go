package service

import (
	"context"
	"fmt"
	"time"

	"readum/internal/domain"
	"readum/internal/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// DispatchResult is the outcome of sending one submission to the backend.
type DispatchResult struct {
	ResultID string
	Err      error
	// Shared is true when the request was collapsed with a concurrent
	// dispatch of the same attempt.
	Shared bool
}

// OK reports whether the submission was persisted.
func (r DispatchResult) OK() bool {
	return r.Err == nil && r.ResultID != ""
}

// Task is a submission in flight.
type Task struct {
	done   chan struct{}
	result DispatchResult
}

// Done is closed once the result is available.
func (t *Task) Done() <-chan struct{} {
	return t.done
}

// Wait blocks until the submission finishes or ctx ends. The second return
// value is false when ctx ended first; the submission keeps running and its
// outcome is still delivered through Result.
func (t *Task) Wait(ctx context.Context) (DispatchResult, bool) {
	select {
	case <-t.done:
		return t.result, true
	case <-ctx.Done():
		return DispatchResult{Err: ctx.Err()}, false
	}
}

// Result blocks until the submission finishes.
func (t *Task) Result() DispatchResult {
	<-t.done
	return t.result
}

// SubmissionDispatcher sends each submitted attempt to the backend once.
// There is no retry; concurrent dispatches under the same key share a
// single request.
type SubmissionDispatcher struct {
	backend domain.QuizBackend
	timeout time.Duration
	group   singleflight.Group
}

// NewSubmissionDispatcher creates a dispatcher. A non-positive timeout means
// the request is bounded only by the backend client.
func NewSubmissionDispatcher(backend domain.QuizBackend, timeout time.Duration) *SubmissionDispatcher {
	return &SubmissionDispatcher{backend: backend, timeout: timeout}
}

// Dispatch starts sending submission and returns immediately. key identifies
// one submission of an attempt. Cancelling ctx does not cancel the request.
func (d *SubmissionDispatcher) Dispatch(ctx context.Context, key string, submission *domain.Submission) *Task {
	task := &Task{done: make(chan struct{})}
	detached := context.WithoutCancel(ctx)

	ch := d.group.DoChan(key, func() (interface{}, error) {
		reqCtx := detached
		if d.timeout > 0 {
			var cancel context.CancelFunc
			reqCtx, cancel = context.WithTimeout(detached, d.timeout)
			defer cancel()
		}
		logger.Get().Debug("Dispatching submission",
			zap.String("dispatchKey", key),
			zap.String("quizID", submission.QuizID),
			zap.Int("selections", len(submission.Selected)))
		return d.backend.SubmitAttempt(reqCtx, submission)
	})

	go func() {
		res := <-ch
		result := DispatchResult{Err: res.Err, Shared: res.Shared}
		if res.Err == nil {
			id, ok := res.Val.(string)
			if !ok {
				result.Err = fmt.Errorf("unexpected type from submission dispatch: %T", res.Val)
			} else {
				result.ResultID = id
			}
		}
		if result.Err != nil {
			logger.Get().Warn("Submission dispatch failed", zap.String("dispatchKey", key), zap.Error(result.Err))
		} else {
			logger.Get().Info("Submission persisted", zap.String("dispatchKey", key), zap.String("resultID", result.ResultID))
		}
		task.result = result
		close(task.done)
	}()

	return task
}
