package model

import "time"

// QARecord — сохранённая пара вопрос/ответ
type QARecord struct {
	ID        int64     `json:"id"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	CreatedAt time.Time `json:"created_at"`
}

type QuestionRequest struct {
	Question string `json:"question"`
}

type PaginationParams struct {
	Page    int `json:"page"`
	PerPage int `json:"per_page"`
}

type QuestionListResponse struct {
	Questions  []QARecord `json:"questions"`
	Total      int        `json:"total"`
	Page       int        `json:"page"`
	PerPage    int        `json:"per_page"`
	TotalPages int        `json:"total_pages"`
}

// ErrorResponse — тело любого ответа с кодом не 2xx
type ErrorResponse struct {
	Error      string `json:"error"`
	Details    any    `json:"details"`
	StatusCode int    `json:"status_code"`
}
