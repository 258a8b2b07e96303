package api

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/katakuxiko/askqa/internal/model"
	"github.com/katakuxiko/askqa/internal/service"
	"github.com/katakuxiko/askqa/internal/store"
	"github.com/katakuxiko/askqa/internal/validate"
)

// classify — единственное место, где ошибка превращается в HTTP-статус
func classify(err error) model.ErrorResponse {
	var (
		verr  *validate.ValidationError
		svErr *service.ServiceError
		stErr *store.StorageError
		fbErr *fiber.Error
	)

	switch {
	case errors.As(err, &verr):
		return model.ErrorResponse{Error: "Validation Error", Details: verr.Details(), StatusCode: fiber.StatusUnprocessableEntity}
	case errors.As(err, &svErr):
		return model.ErrorResponse{Error: "Service Error", Details: svErr.Error(), StatusCode: fiber.StatusInternalServerError}
	case errors.As(err, &stErr):
		details := "Failed to read from database"
		if stErr.Op == "create" {
			details = "Failed to save to database"
		}
		return model.ErrorResponse{Error: "Processing Error", Details: details, StatusCode: fiber.StatusInternalServerError}
	case errors.Is(err, service.ErrPageNotFound):
		return model.ErrorResponse{Error: "Page not found", Details: err.Error(), StatusCode: fiber.StatusNotFound}
	case errors.As(err, &fbErr):
		return model.ErrorResponse{Error: http.StatusText(fbErr.Code), Details: fbErr.Message, StatusCode: fbErr.Code}
	default:
		return model.ErrorResponse{Error: "Unexpected Error", Details: err.Error(), StatusCode: fiber.StatusInternalServerError}
	}
}

// ErrorHandler отдаёт {error, details, status_code} для любой ошибки обработчика
func ErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		body := classify(err)

		fields := []zap.Field{
			zap.Error(err),
			zap.Int("status", body.StatusCode),
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
		}
		if body.StatusCode >= fiber.StatusInternalServerError {
			logger.Error(body.Error, fields...)
		} else {
			logger.Info(body.Error, fields...)
		}

		return c.Status(body.StatusCode).JSON(body)
	}
}
