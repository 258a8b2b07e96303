package store

import (
	"context"
	"database/sql"
)

// dialect хранит SQL, который отличается между Postgres и SQLite
type dialect struct {
	schema []string
	insert string
	byID   string
	count  string
	page   string
}

var dialects = map[string]dialect{
	"postgres": {
		schema: []string{
			`CREATE TABLE IF NOT EXISTS question_answer (
				id SERIAL PRIMARY KEY,
				question TEXT NOT NULL,
				answer TEXT NOT NULL,
				created_at TIMESTAMPTZ DEFAULT now()
			)`,
		},
		insert: `INSERT INTO question_answer (question, answer) VALUES ($1, $2) RETURNING id`,
		byID:   `SELECT id, question, answer, created_at FROM question_answer WHERE id = $1`,
		count:  `SELECT COUNT(*) FROM question_answer`,
		page:   `SELECT id, question, answer, created_at FROM question_answer ORDER BY id ASC LIMIT $1 OFFSET $2`,
	},
	"sqlite3": {
		schema: []string{
			`CREATE TABLE IF NOT EXISTS question_answer (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				question TEXT NOT NULL,
				answer TEXT NOT NULL,
				created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
			)`,
		},
		insert: `INSERT INTO question_answer (question, answer) VALUES (?, ?) RETURNING id`,
		byID:   `SELECT id, question, answer, created_at FROM question_answer WHERE id = ?`,
		count:  `SELECT COUNT(*) FROM question_answer`,
		page:   `SELECT id, question, answer, created_at FROM question_answer ORDER BY id ASC LIMIT ? OFFSET ?`,
	},
}

// ensureSchema создаёт таблицу question_answer, если её ещё нет
func ensureSchema(ctx context.Context, db *sql.DB, d dialect) error {
	for _, s := range d.schema {
		if _, err := db.ExecContext(ctx, s); err != nil {
			return err
		}
	}
	return nil
}
