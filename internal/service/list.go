package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/katakuxiko/askqa/internal/model"
	"github.com/katakuxiko/askqa/internal/validate"
)

// Pager отдаёт окно записей и их общее число
type Pager interface {
	List(ctx context.Context, page, perPage int) ([]model.QARecord, int, error)
}

// ErrPageNotFound — запрошена страница за пределами данных
var ErrPageNotFound = errors.New("page not found")

// ListPipeline: валидация -> запрос окна -> ответ
type ListPipeline struct {
	store  Pager
	logger *zap.Logger
}

// NewListPipeline конструктор
func NewListPipeline(store Pager, logger *zap.Logger) *ListPipeline {
	return &ListPipeline{store: store, logger: logger}
}

// List валидирует page/per_page и возвращает страницу записей.
// Пустая первая страница — это не ошибка.
func (p *ListPipeline) List(ctx context.Context, query map[string]string) (*model.QuestionListResponse, error) {
	params, err := validate.Pagination(query)
	if err != nil {
		return nil, err
	}
	p.logger.Info("fetching questions", zap.Int("page", params.Page), zap.Int("per_page", params.PerPage))

	recs, total, err := p.store.List(ctx, params.Page, params.PerPage)
	if err != nil {
		return nil, err
	}

	totalPages := TotalPages(total, params.PerPage)
	if len(recs) == 0 && params.Page > 1 {
		return nil, fmt.Errorf("%w: page %d of %d", ErrPageNotFound, params.Page, totalPages)
	}
	if recs == nil {
		recs = []model.QARecord{}
	}

	p.logger.Info("returned questions", zap.Int("count", len(recs)), zap.Int("total", total))
	return &model.QuestionListResponse{
		Questions:  recs,
		Total:      total,
		Page:       params.Page,
		PerPage:    params.PerPage,
		TotalPages: totalPages,
	}, nil
}

// TotalPages = ceil(total / perPage)
func TotalPages(total, perPage int) int {
	if perPage <= 0 {
		return 0
	}
	return (total + perPage - 1) / perPage
}
