package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

type documentRepo struct {
	db *sql.DB
}

func (r *documentRepo) Get(ctx context.Context, key string) ([]byte, error) {
	var body string
	err := r.db.QueryRowContext(ctx, `SELECT body FROM documents WHERE key = ?`, key).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get document %q: %w", key, err)
	}
	return []byte(body), nil
}

func (r *documentRepo) Put(ctx context.Context, key string, body []byte) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO documents (key, body, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET body = excluded.body, updated_at = excluded.updated_at`,
		key, string(body), time.Now().UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("put document %q: %w", key, err)
	}
	return nil
}

func (r *documentRepo) Delete(ctx context.Context, key string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM documents WHERE key = ?`, key); err != nil {
		return fmt.Errorf("delete document %q: %w", key, err)
	}
	return nil
}
