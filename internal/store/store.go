package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"

	"github.com/katakuxiko/askqa/internal/model"
)

// StorageError оборачивает любую ошибку базы данных
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// Store хранит записи question_answer в Postgres или SQLite.
type Store struct {
	db *sql.DB
	d  dialect
}

// New открывает соединение и применяет схему. driver: "postgres" или "sqlite3".
func New(ctx context.Context, driver, dsn string) (*Store, error) {
	d, ok := dialects[driver]
	if !ok {
		return nil, fmt.Errorf("unsupported driver %q", driver)
	}
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, err
	}
	if driver == "sqlite3" {
		// один коннект: SQLite пишет последовательно, а :memory: живёт в рамках соединения
		db.SetMaxOpenConns(1)
	}
	if err := ensureSchema(ctx, db, d); err != nil {
		db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	return &Store{db: db, d: d}, nil
}

// Close закрывает соединение с БД
func (s *Store) Close() error {
	return s.db.Close()
}

// Ping проверяет соединение с БД
func (s *Store) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return &StorageError{Op: "ping", Err: err}
	}
	return nil
}

// Create сохраняет пару вопрос/ответ одной транзакцией и возвращает запись
// с id и created_at, выставленными базой.
func (s *Store) Create(ctx context.Context, question, answer string) (*model.QARecord, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, &StorageError{Op: "create", Err: err}
	}
	defer tx.Rollback()

	var id int64
	if err := tx.QueryRowContext(ctx, s.d.insert, question, answer).Scan(&id); err != nil {
		return nil, &StorageError{Op: "create", Err: err}
	}

	var rec model.QARecord
	if err := tx.QueryRowContext(ctx, s.d.byID, id).Scan(&rec.ID, &rec.Question, &rec.Answer, &rec.CreatedAt); err != nil {
		return nil, &StorageError{Op: "create", Err: err}
	}

	if err := tx.Commit(); err != nil {
		return nil, &StorageError{Op: "create", Err: err}
	}
	return &rec, nil
}

// List возвращает окно записей по возрастанию id и общее число записей.
// Окно за пределами данных даёт пустой срез, а не ошибку.
func (s *Store) List(ctx context.Context, page, perPage int) ([]model.QARecord, int, error) {
	var total int
	if err := s.db.QueryRowContext(ctx, s.d.count).Scan(&total); err != nil {
		return nil, 0, &StorageError{Op: "count", Err: err}
	}

	// страница целиком за концом данных: окно не запрашиваем, (page-1)*perPage может переполниться
	if perPage < 1 || page < 1 || page-1 >= (total+perPage-1)/perPage {
		return []model.QARecord{}, total, nil
	}

	offset := (page - 1) * perPage
	rows, err := s.db.QueryContext(ctx, s.d.page, perPage, offset)
	if err != nil {
		return nil, 0, &StorageError{Op: "list", Err: err}
	}
	defer rows.Close()

	res := make([]model.QARecord, 0, perPage)
	for rows.Next() {
		var r model.QARecord
		if err := rows.Scan(&r.ID, &r.Question, &r.Answer, &r.CreatedAt); err != nil {
			return nil, 0, &StorageError{Op: "list", Err: err}
		}
		res = append(res, r)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, &StorageError{Op: "list", Err: err}
	}
	return res, total, nil
}
