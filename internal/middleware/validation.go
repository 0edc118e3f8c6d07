package middleware

import (
	"strconv"

	"readum/internal/domain"
	"readum/internal/util"

	"github.com/gofiber/fiber/v2"
)

const (
	LocalAttemptID   = "validated_attempt_id"
	LocalAnswerIndex = "validated_answer_index"
)

// ValidationMiddleware provides path parameter validation
type ValidationMiddleware struct{}

// NewValidationMiddleware creates a new validation middleware instance
func NewValidationMiddleware() *ValidationMiddleware {
	return &ValidationMiddleware{}
}

// ValidateAttemptID rejects attempt ids that could never have been issued.
// They are reported as not found rather than as bad input.
func (vm *ValidationMiddleware) ValidateAttemptID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		attemptID := c.Params("attemptId")
		if !util.IsULID(attemptID) {
			return domain.NewAttemptNotFoundError(attemptID)
		}
		c.Locals(LocalAttemptID, attemptID)
		return c.Next()
	}
}

// ValidateAnswerIndex parses the question index path parameter. The upper
// bound is checked by the attempt itself.
func (vm *ValidationMiddleware) ValidateAnswerIndex() fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := c.Params("index")
		index, err := strconv.Atoi(raw)
		if err != nil {
			return domain.ValidationErrors{domain.NewInvalidFormatError("index", raw)}
		}
		if index < 0 {
			return domain.NewError(domain.CodeOutOfRange, "Question index must not be negative", nil).
				WithContext("index", index)
		}
		c.Locals(LocalAnswerIndex, index)
		return c.Next()
	}
}
