package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func loadedAttempt(t *testing.T, answers ...Letter) *Attempt {
	t.Helper()
	a := NewAttempt("01HGZ8VNRYXS8QKNJV5GRWPWDQ", testNow)
	require.NoError(t, a.Load("quiz-1", quizWithAnswers(answers...), DifficultyBeginner))
	return a
}

func TestAttempt_Load(t *testing.T) {
	a := NewAttempt("id", testNow)
	assert.Equal(t, PhaseIdle, a.Phase)

	t.Run("empty quiz is refused", func(t *testing.T) {
		err := a.Load("quiz-1", Quiz{}, DifficultyBeginner)
		assert.True(t, HasCode(err, CodeEmptyQuiz))
		assert.Equal(t, PhaseIdle, a.Phase)
	})

	t.Run("question with unknown answer is refused", func(t *testing.T) {
		quiz := quizWithAnswers(LetterA)
		quiz.Questions[0].Answer = "E"
		err := a.Load("quiz-1", quiz, DifficultyBeginner)
		assert.True(t, HasCode(err, CodeInvalidInput))
		assert.Equal(t, PhaseIdle, a.Phase)
	})

	t.Run("valid quiz", func(t *testing.T) {
		require.NoError(t, a.Load("quiz-1", quizWithAnswers(LetterA, LetterB, LetterC), DifficultyAdvanced))
		assert.Equal(t, PhaseQuizReady, a.Phase)
		assert.Equal(t, "quiz-1", a.QuizID)
		assert.Equal(t, DifficultyAdvanced, a.Difficulty)
		assert.Empty(t, a.Selected)
	})

	t.Run("second load is refused", func(t *testing.T) {
		err := a.Load("quiz-2", quizWithAnswers(LetterA), DifficultyBeginner)
		assert.True(t, HasCode(err, CodeAttemptLoaded))
		assert.Equal(t, "quiz-1", a.QuizID)
	})
}

func TestAttempt_Select(t *testing.T) {
	t.Run("idle attempt refuses selections", func(t *testing.T) {
		a := NewAttempt("id", testNow)
		assert.True(t, HasCode(a.Select(0, LetterA), CodeAttemptNotReady))
	})

	t.Run("overwrites earlier choice", func(t *testing.T) {
		a := loadedAttempt(t, LetterA, LetterB)
		require.NoError(t, a.Select(0, LetterB))
		require.NoError(t, a.Select(0, LetterA))
		assert.Equal(t, LetterA, a.Selected[0])
		assert.Equal(t, 1, a.Answered())
	})

	t.Run("index bounds", func(t *testing.T) {
		a := loadedAttempt(t, LetterA, LetterB)
		assert.True(t, HasCode(a.Select(-1, LetterA), CodeOutOfRange))
		assert.True(t, HasCode(a.Select(2, LetterA), CodeOutOfRange))
		assert.Empty(t, a.Selected)
	})

	t.Run("unknown letter", func(t *testing.T) {
		a := loadedAttempt(t, LetterA)
		assert.True(t, HasCode(a.Select(0, "E"), CodeInvalidAnswer))
		assert.True(t, HasCode(a.Select(0, "a"), CodeInvalidAnswer))
	})
}

func TestAttempt_CompletenessGate(t *testing.T) {
	a := loadedAttempt(t, LetterA, LetterB, LetterC, LetterD, LetterA)

	for i := 0; i < 4; i++ {
		require.NoError(t, a.Select(i, LetterA))
	}
	assert.False(t, a.CanSubmit())

	_, err := a.Submit(testNow)
	assert.True(t, HasCode(err, CodeIncompleteAttempt))
	assert.Equal(t, PhaseQuizReady, a.Phase)
	assert.Equal(t, DispatchNone, a.Dispatch)

	require.NoError(t, a.Select(4, LetterA))
	assert.True(t, a.CanSubmit())

	score, err := a.Submit(testNow)
	require.NoError(t, err)
	assert.Equal(t, Score{Correct: 2, Total: 5, Percentage: 40}, score)
	assert.Equal(t, PhaseSubmitted, a.Phase)
	assert.Equal(t, DispatchPending, a.Dispatch)
	require.NotNil(t, a.SubmittedAt)
	assert.False(t, a.CanSubmit())
}

func TestAttempt_SubmittedIsImmutable(t *testing.T) {
	a := loadedAttempt(t, LetterA)
	require.NoError(t, a.Select(0, LetterB))
	_, err := a.Submit(testNow)
	require.NoError(t, err)

	assert.True(t, HasCode(a.Select(0, LetterA), CodeAttemptSubmitted))
	assert.Equal(t, LetterB, a.Selected[0])

	_, err = a.Submit(testNow)
	assert.True(t, HasCode(err, CodeAttemptSubmitted))
}

func TestAttempt_DispatchOutcome(t *testing.T) {
	a := loadedAttempt(t, LetterA)
	require.NoError(t, a.Select(0, LetterA))
	_, err := a.Submit(testNow)
	require.NoError(t, err)

	a.MarkDispatchFailed("server error")
	assert.Equal(t, PhaseSubmitted, a.Phase)
	assert.Equal(t, DispatchFailed, a.Dispatch)
	assert.Equal(t, "server error", a.DispatchError)

	a.MarkPersisted("uuid-1")
	assert.Equal(t, DispatchSucceeded, a.Dispatch)
	assert.Equal(t, "uuid-1", a.ResultID)
	assert.Empty(t, a.DispatchError)
}

func TestAttempt_Reset(t *testing.T) {
	a := loadedAttempt(t, LetterA, LetterB)
	assert.True(t, HasCode(a.Reset(), CodeAttemptNotSubmitted))

	require.NoError(t, a.Select(0, LetterA))
	require.NoError(t, a.Select(1, LetterB))
	_, err := a.Submit(testNow)
	require.NoError(t, err)
	a.MarkPersisted("uuid-1")
	assert.Equal(t, 0, a.Retakes)

	require.NoError(t, a.Reset())
	assert.Equal(t, 1, a.Retakes)
	assert.Equal(t, PhaseQuizReady, a.Phase)
	assert.Empty(t, a.Selected)
	assert.Empty(t, a.ResultID)
	assert.Nil(t, a.SubmittedAt)
	assert.Equal(t, DispatchNone, a.Dispatch)
	assert.Equal(t, "quiz-1", a.QuizID)

	require.NoError(t, a.Select(1, LetterA))
}

func TestAttempt_SelectedListAndSubmission(t *testing.T) {
	a := loadedAttempt(t, LetterA, LetterB, LetterC)
	require.NoError(t, a.Select(2, LetterC))
	require.NoError(t, a.Select(0, LetterD))
	require.NoError(t, a.Select(1, LetterB))

	assert.Equal(t, []Letter{LetterD, LetterB, LetterC}, a.SelectedList())

	sub := a.Submission()
	assert.Equal(t, "quiz-1", sub.QuizID)
	assert.Equal(t, DifficultyBeginner, sub.Difficulty)
	assert.Equal(t, a.Quiz, sub.Quiz)
	assert.Equal(t, []Letter{LetterD, LetterB, LetterC}, sub.Selected)
}

func TestAttempt_JSONRoundTripKeepsSelections(t *testing.T) {
	a := loadedAttempt(t, LetterA, LetterB)
	require.NoError(t, a.Select(1, LetterB))

	data, err := json.Marshal(a)
	require.NoError(t, err)

	var decoded Attempt
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, LetterB, decoded.Selected[1])
	assert.Equal(t, PhaseQuizReady, decoded.Phase)
	assert.False(t, decoded.IsComplete())
}

func TestSubmittedResult_Selections(t *testing.T) {
	r := &SubmittedResult{Selected: []Letter{LetterA, LetterD}}
	assert.Equal(t, map[int]Letter{0: LetterA, 1: LetterD}, r.Selections())
}
