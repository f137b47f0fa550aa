package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// SQLiteDraftRepo implements DraftRepo using a SQLite database.
type SQLiteDraftRepo struct {
	db *sql.DB
}

// NewSQLiteDraftRepo creates a new SQLiteDraftRepo.
func NewSQLiteDraftRepo(db *sql.DB) *SQLiteDraftRepo {
	return &SQLiteDraftRepo{db: db}
}

func (r *SQLiteDraftRepo) Create(ctx context.Context, d *DraftRecord) error {
	query := `INSERT INTO drafts (id, title, content, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		d.ID,
		d.Title,
		string(d.Content),
		d.CreatedAt.UTC().Format(time.RFC3339),
		d.UpdatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting draft: %w", err)
	}
	return nil
}

func (r *SQLiteDraftRepo) Update(ctx context.Context, id, title string, content []byte) error {
	query := `UPDATE drafts SET title = ?, content = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, title, string(content), time.Now().UTC().Format(time.RFC3339), id)
	if err != nil {
		return fmt.Errorf("updating draft: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating draft: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("draft %q: %w", id, ErrNotFound)
	}
	return nil
}

func (r *SQLiteDraftRepo) Get(ctx context.Context, id string) (*DraftRecord, error) {
	query := `SELECT id, title, content, created_at, updated_at FROM drafts WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	var d DraftRecord
	var content, createdAt, updatedAt string
	if err := row.Scan(&d.ID, &d.Title, &content, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("draft %q: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning draft: %w", err)
	}
	d.Content = []byte(content)
	var err error
	if d.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return nil, fmt.Errorf("parsing draft created_at: %w", err)
	}
	if d.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt); err != nil {
		return nil, fmt.Errorf("parsing draft updated_at: %w", err)
	}
	return &d, nil
}

func (r *SQLiteDraftRepo) List(ctx context.Context) ([]*DraftRecord, error) {
	query := `SELECT id, title, content, created_at, updated_at FROM drafts ORDER BY updated_at DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing drafts: %w", err)
	}
	defer rows.Close()

	var drafts []*DraftRecord
	for rows.Next() {
		var d DraftRecord
		var content, createdAt, updatedAt string
		if err := rows.Scan(&d.ID, &d.Title, &content, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("scanning draft: %w", err)
		}
		d.Content = []byte(content)
		if d.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
			return nil, fmt.Errorf("parsing draft created_at: %w", err)
		}
		if d.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt); err != nil {
			return nil, fmt.Errorf("parsing draft updated_at: %w", err)
		}
		drafts = append(drafts, &d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating drafts: %w", err)
	}
	return drafts, nil
}

func (r *SQLiteDraftRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM drafts WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting draft: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting draft: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("draft %q: %w", id, ErrNotFound)
	}
	return nil
}
