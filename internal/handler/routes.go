package handler

import (
	"readum/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes mounts the JSON API under /api and the public pages at the root.
func RegisterRoutes(app *fiber.App, quiz *QuizHandler, result *ResultHandler, health *HealthHandler) {
	vm := middleware.NewValidationMiddleware()

	app.Get("/healthz", health.Health)
	app.Get("/result/:uuid", result.ResultPage)

	api := app.Group("/api")
	api.Get("/config", quiz.FormConfig)
	api.Get("/results/:uuid", result.GetResult)

	quizzes := api.Group("/quizzes")
	quizzes.Post("/", quiz.CreateQuiz)

	attempt := quizzes.Group("/:attemptId", vm.ValidateAttemptID())
	attempt.Get("/", quiz.GetAttempt)
	attempt.Delete("/", quiz.Discard)
	attempt.Put("/answers/:index", vm.ValidateAnswerIndex(), quiz.SelectAnswer)
	attempt.Post("/submit", quiz.Submit)
	attempt.Post("/reset", quiz.Reset)
}
