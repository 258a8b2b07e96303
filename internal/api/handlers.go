package api

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/katakuxiko/askqa/internal/service"
)

// Pinger проверяет доступность хранилища
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler хранит зависимости для обработчиков
type Handler struct {
	ask    *service.AskPipeline
	list   *service.ListPipeline
	db     Pinger
	logger *zap.Logger
}

// NewHandler конструктор
func NewHandler(ask *service.AskPipeline, list *service.ListPipeline, db Pinger, logger *zap.Logger) *Handler {
	return &Handler{ask: ask, list: list, db: db, logger: logger}
}

// Health — простая проверка, включая доступность БД
func (h *Handler) Health(c *fiber.Ctx) error {
	if err := h.db.Ping(c.UserContext()); err != nil {
		h.logger.Warn("health check failed", zap.Error(err))
		return c.Status(fiber.StatusServiceUnavailable).SendString("database unavailable")
	}
	return c.SendString("ok")
}

// AskQuestion — вопрос модели с сохранением пары вопрос/ответ
func (h *Handler) AskQuestion(c *fiber.Ctx) error {
	rec, err := h.ask.Ask(c.UserContext(), c.Body())
	if err != nil {
		return err
	}
	return c.JSON(rec)
}

// ListQuestions — постраничный список сохранённых пар
func (h *Handler) ListQuestions(c *fiber.Ctx) error {
	resp, err := h.list.List(c.UserContext(), c.Queries())
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
