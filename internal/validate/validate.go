// Package validate проверяет входящие данные до любых побочных эффектов.
package validate

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/katakuxiko/askqa/internal/model"
)

const (
	MinQuestionLen = 1
	MaxQuestionLen = 1000

	DefaultPage    = 1
	DefaultPerPage = 10
	MaxPerPage     = 100
)

// FieldError — нарушение для одного поля
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError несёт список нарушений по полям.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Details возвращает нарушения по именам полей для тела ошибки.
func (e *ValidationError) Details() map[string]string {
	out := make(map[string]string, len(e.Fields))
	for _, f := range e.Fields {
		if prev, ok := out[f.Field]; ok {
			out[f.Field] = prev + "; " + f.Message
			continue
		}
		out[f.Field] = f.Message
	}
	return out
}

func (e *ValidationError) add(field, format string, args ...any) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: fmt.Sprintf(format, args...)})
}

func (e *ValidationError) orNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

// Question разбирает тело запроса /ask. Пустое тело считается пустым объектом.
func Question(body []byte) (model.QuestionRequest, error) {
	verr := &ValidationError{}

	payload := map[string]any{}
	if len(bytes.TrimSpace(body)) > 0 {
		if err := json.Unmarshal(body, &payload); err != nil {
			verr.add("body", "must be a JSON object")
			return model.QuestionRequest{}, verr
		}
	}

	raw, ok := payload["question"]
	if !ok || raw == nil {
		verr.add("question", "field required")
		return model.QuestionRequest{}, verr
	}
	q, ok := raw.(string)
	if !ok {
		verr.add("question", "must be a string")
		return model.QuestionRequest{}, verr
	}

	if n := utf8.RuneCountInString(q); n < MinQuestionLen || n > MaxQuestionLen {
		verr.add("question", "must be between %d and %d characters", MinQuestionLen, MaxQuestionLen)
		return model.QuestionRequest{}, verr
	}
	return model.QuestionRequest{Question: q}, nil
}

// Pagination разбирает page/per_page из query-параметров, подставляя
// значения по умолчанию для отсутствующих ключей.
func Pagination(query map[string]string) (model.PaginationParams, error) {
	verr := &ValidationError{}
	p := model.PaginationParams{Page: DefaultPage, PerPage: DefaultPerPage}

	if v, ok := query["page"]; ok && v != "" {
		n, err := strconv.Atoi(v)
		switch {
		case err != nil:
			verr.add("page", "must be an integer")
		case n < 1:
			verr.add("page", "must be greater than 0")
		default:
			p.Page = n
		}
	}

	if v, ok := query["per_page"]; ok && v != "" {
		n, err := strconv.Atoi(v)
		switch {
		case err != nil:
			verr.add("per_page", "must be an integer")
		case n < 1 || n > MaxPerPage:
			verr.add("per_page", "must be between 1 and %d", MaxPerPage)
		default:
			p.PerPage = n
		}
	}

	if err := verr.orNil(); err != nil {
		return model.PaginationParams{}, err
	}
	return p, nil
}
