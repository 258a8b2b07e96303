package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/katakuxiko/askqa/internal/model"
	"github.com/katakuxiko/askqa/internal/store"
	"github.com/katakuxiko/askqa/internal/util"
	"github.com/katakuxiko/askqa/internal/validate"
)

// Recorder сохраняет пару вопрос/ответ
type Recorder interface {
	Create(ctx context.Context, question, answer string) (*model.QARecord, error)
}

var errNoRecord = errors.New("store returned no record")

// AskPipeline: валидация -> модель -> сохранение. Останавливается на первой ошибке.
type AskPipeline struct {
	store  Recorder
	llm    Completer
	logger *zap.Logger
}

// NewAskPipeline конструктор
func NewAskPipeline(store Recorder, llm Completer, logger *zap.Logger) *AskPipeline {
	return &AskPipeline{store: store, llm: llm, logger: logger}
}

// Ask разбирает тело запроса, спрашивает модель и сохраняет результат.
// Ответ модели без сохранённой записи никогда не возвращается.
func (p *AskPipeline) Ask(ctx context.Context, body []byte) (*model.QARecord, error) {
	req, err := validate.Question(body)
	if err != nil {
		return nil, err
	}
	p.logger.Info("processing question", zap.String("question", util.Preview(req.Question, 50)))

	answer, err := p.llm.Complete(ctx, req.Question)
	if err != nil {
		var serr *ServiceError
		if !errors.As(err, &serr) {
			err = &ServiceError{Provider: "unknown", Err: err}
		}
		return nil, err
	}
	// без ответа запись не создаём
	if strings.TrimSpace(answer) == "" {
		return nil, &ServiceError{Provider: "unknown", Err: errEmptyAnswer}
	}

	rec, err := p.store.Create(ctx, req.Question, answer)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, &store.StorageError{Op: "create", Err: errNoRecord}
	}

	p.logger.Info("question answered", zap.Int64("id", rec.ID))
	return rec, nil
}
