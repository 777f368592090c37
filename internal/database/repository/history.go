package repository

import (
	"context"
	"database/sql"
)

// querier is the subset of *sql.DB and *sql.Tx the repo needs.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// HistoryRepo handles tape entries.
type HistoryRepo struct {
	db querier
}

func NewHistoryRepo(db *sql.DB) *HistoryRepo { return &HistoryRepo{db: db} }

// WithTx returns a repo bound to tx.
func (r *HistoryRepo) WithTx(tx *sql.Tx) *HistoryRepo { return &HistoryRepo{db: tx} }

func (r *HistoryRepo) Insert(ctx context.Context, e Entry) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO tape(id, operator, left_text, right_text, result, chained, created_at)
	VALUES (?, ?, ?, ?, ?, ?, ?);
	`, e.ID, e.Operator, e.Left, e.Right, e.Result, e.Chained, e.CreatedAt)
	return err
}

// Recent returns up to limit entries, newest first. A limit <= 0 returns all.
func (r *HistoryRepo) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, operator, left_text, right_text, result, chained, created_at
	FROM tape
	ORDER BY created_at DESC, rowid DESC
	LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.Operator, &e.Left, &e.Right, &e.Result, &e.Chained, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *HistoryRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM tape`).Scan(&n)
	return n, err
}

// Clear deletes every entry and reports how many were removed.
func (r *HistoryRepo) Clear(ctx context.Context) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tape`)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// Trim keeps the newest keep entries and deletes the rest.
func (r *HistoryRepo) Trim(ctx context.Context, keep int) (int64, error) {
	if keep <= 0 {
		return 0, nil
	}
	res, err := r.db.ExecContext(ctx, `
	DELETE FROM tape WHERE id NOT IN (
		SELECT id FROM tape ORDER BY created_at DESC, rowid DESC LIMIT ?
	)`, keep)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
