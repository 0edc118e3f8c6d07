package handler

import (
	"readum/internal/domain"
	"readum/internal/dto"
	"readum/internal/logger"
	"readum/internal/middleware"
	"readum/internal/service"
	"readum/internal/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// QuizHandler handles quiz attempt HTTP requests
type QuizHandler struct {
	service   service.QuizService
	validator *validation.Validator
}

// NewQuizHandler creates a new QuizHandler instance
func NewQuizHandler(service service.QuizService, validator *validation.Validator) *QuizHandler {
	if validator == nil {
		validator = validation.NewValidator()
	}
	return &QuizHandler{
		service:   service,
		validator: validator,
	}
}

// CreateQuiz godoc
// @Summary Create a quiz attempt
// @Description Generates a quiz from text or a URL and starts an attempt
// @Tags quiz
// @Accept json
// @Produce json
// @Param request body dto.CreateQuizRequest true "Quiz creation input"
// @Success 201 {object} dto.AttemptResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 502 {object} middleware.ErrorResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Router /quizzes [post]
func (h *QuizHandler) CreateQuiz(c *fiber.Ctx) error {
	var req dto.CreateQuizRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Get().Debug("Failed to parse quiz creation body", zap.Error(err))
		return domain.ValidationErrors{domain.NewInvalidFormatError("body", nil)}
	}

	resp, err := h.service.CreateQuiz(c.UserContext(), req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// GetAttempt godoc
// @Summary Get a quiz attempt
// @Tags quiz
// @Produce json
// @Param attemptId path string true "Attempt ID"
// @Success 200 {object} dto.AttemptResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /quizzes/{attemptId} [get]
func (h *QuizHandler) GetAttempt(c *fiber.Ctx) error {
	resp, err := h.service.GetAttempt(c.UserContext(), attemptID(c))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// SelectAnswer godoc
// @Summary Select an answer
// @Description Records the selected option for one question, replacing any earlier choice
// @Tags quiz
// @Accept json
// @Produce json
// @Param attemptId path string true "Attempt ID"
// @Param index path int true "Question index, starting at 0"
// @Param request body dto.SelectAnswerRequest true "Selected option"
// @Success 200 {object} dto.AttemptResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 409 {object} middleware.ErrorResponse
// @Router /quizzes/{attemptId}/answers/{index} [put]
func (h *QuizHandler) SelectAnswer(c *fiber.Ctx) error {
	var req dto.SelectAnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.ValidationErrors{domain.NewInvalidFormatError("body", nil)}
	}
	if errs := h.validator.Struct(req); len(errs) > 0 {
		return errs
	}

	index, _ := c.Locals(middleware.LocalAnswerIndex).(int)
	resp, err := h.service.SelectAnswer(c.UserContext(), attemptID(c), index, req.Option)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// Submit godoc
// @Summary Submit a quiz attempt
// @Description Scores a fully answered attempt and saves it for sharing. A failed save is reported in the alert field.
// @Tags quiz
// @Produce json
// @Param attemptId path string true "Attempt ID"
// @Success 200 {object} dto.AttemptResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 409 {object} middleware.ErrorResponse
// @Router /quizzes/{attemptId}/submit [post]
func (h *QuizHandler) Submit(c *fiber.Ctx) error {
	resp, err := h.service.Submit(c.UserContext(), attemptID(c))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// Reset godoc
// @Summary Retake a submitted quiz
// @Tags quiz
// @Produce json
// @Param attemptId path string true "Attempt ID"
// @Success 200 {object} dto.AttemptResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 409 {object} middleware.ErrorResponse
// @Router /quizzes/{attemptId}/reset [post]
func (h *QuizHandler) Reset(c *fiber.Ctx) error {
	resp, err := h.service.Reset(c.UserContext(), attemptID(c))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// Discard godoc
// @Summary Discard a quiz attempt
// @Tags quiz
// @Param attemptId path string true "Attempt ID"
// @Success 204
// @Router /quizzes/{attemptId} [delete]
func (h *QuizHandler) Discard(c *fiber.Ctx) error {
	if err := h.service.Discard(c.UserContext(), attemptID(c)); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// FormConfig godoc
// @Summary Quiz creation form settings
// @Description Returns the question count bounds, difficulties and accepted input types
// @Tags quiz
// @Produce json
// @Success 200 {object} dto.FormConfigResponse
// @Router /config [get]
func (h *QuizHandler) FormConfig(c *fiber.Ctx) error {
	return c.JSON(h.service.FormConfig())
}

func attemptID(c *fiber.Ctx) string {
	if id, ok := c.Locals(middleware.LocalAttemptID).(string); ok {
		return id
	}
	return c.Params("attemptId")
}
