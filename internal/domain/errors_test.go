package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDomainError(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewError(CodeBackendUnavailable, "Quiz service is unavailable", cause)

	assert.Equal(t, "Quiz service is unavailable: connection refused", err.Error())
	assert.ErrorIs(t, err, cause)

	wrapped := fmt.Errorf("create quiz: %w", err)
	assert.True(t, HasCode(wrapped, CodeBackendUnavailable))
	assert.False(t, HasCode(wrapped, CodeInternal))
	assert.False(t, HasCode(cause, CodeBackendUnavailable))

	data, jerr := json.Marshal(err)
	require.NoError(t, jerr)
	assert.JSONEq(t, `{"code":"BACKEND_UNAVAILABLE","message":"Quiz service is unavailable"}`, string(data))
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		NewMissingFieldError("content"),
		NewInvalidQuestionCountError("questionCount", 11, 3, 10),
	}

	assert.True(t, errs.Has(CodeMissingField))
	assert.True(t, errs.Has(CodeInvalidQuestionCount))
	assert.False(t, errs.Has(CodeInvalidURL))
	assert.Contains(t, errs.Error(), "questionCount must be between 3 and 10")

	var target ValidationErrors
	assert.True(t, errors.As(fmt.Errorf("build: %w", errs), &target))
}
