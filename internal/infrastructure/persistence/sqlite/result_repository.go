package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"mailtriage/internal/domain/email"
	_ "modernc.org/sqlite"
)

// ResultRepository journals processing results so repeated runs can be
// inspected and already-handled emails detected.
type ResultRepository struct {
	db *sql.DB
}

func NewResultRepository(dbPath string) (*ResultRepository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.Exec("PRAGMA journal_mode=WAL;")
	db.Exec("PRAGMA busy_timeout = 5000;")

	schema := `
CREATE TABLE IF NOT EXISTS results (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    email_id TEXT UNIQUE NOT NULL,
    success INTEGER NOT NULL,
    classification TEXT,
    response_sent TEXT,
    created_at INTEGER
);
`
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &ResultRepository{db: db}, nil
}

func (r *ResultRepository) Save(ctx context.Context, res email.ProcessingResult) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO results
         (email_id, success, classification, response_sent, created_at)
         VALUES (?, ?, ?, ?, ?)`,
		res.EmailID, res.Success,
		string(res.Classification), res.ResponseSent, time.Now().Unix(),
	)

	if err != nil {
		return fmt.Errorf("save result: %w", err)
	}

	return nil
}

func (r *ResultRepository) GetByEmailID(ctx context.Context, emailID string) (email.ProcessingResult, error) {
	var res email.ProcessingResult
	var classification string

	err := r.db.QueryRowContext(ctx,
		`SELECT email_id, success, classification, response_sent
		 FROM results WHERE email_id = ?`,
		emailID,
	).Scan(&res.EmailID, &res.Success, &classification, &res.ResponseSent)

	if err == sql.ErrNoRows {
		return email.ProcessingResult{}, fmt.Errorf("result not found: %s", emailID)
	}
	if err != nil {
		return email.ProcessingResult{}, fmt.Errorf("query result: %w", err)
	}

	res.Classification = email.Category(classification)

	return res, nil
}

func (r *ResultRepository) AlreadyProcessed(ctx context.Context, emailID string) (bool, error) {
	var exists int
	err := r.db.QueryRowContext(ctx,
		`SELECT 1 FROM results WHERE email_id = ? LIMIT 1`,
		emailID,
	).Scan(&exists)

	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("check processed: %w", err)
	}

	return true, nil
}

func (r *ResultRepository) Close() error {
	return r.db.Close()
}
