package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

// NewApp создаёт fiber.App с единым обработчиком ошибок и middleware
func NewApp(logger *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "askqa",
		ErrorHandler: ErrorHandler(logger),
	})
	app.Use(RequestLogger(logger))
	app.Use(recover.New())
	return app
}

// RegisterRoutes регистрирует маршруты /health и /api/v1
func RegisterRoutes(app *fiber.App, h *Handler) {
	app.Get("/health", h.Health)

	v1 := app.Group("/api/v1")
	v1.Post("/ask", h.AskQuestion)
	v1.Get("/questions", h.ListQuestions)
}
