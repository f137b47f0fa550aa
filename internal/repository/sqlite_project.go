package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// SQLiteProjectRepo implements ProjectRepo using a SQLite database.
type SQLiteProjectRepo struct {
	db *sql.DB
}

// NewSQLiteProjectRepo creates a new SQLiteProjectRepo.
func NewSQLiteProjectRepo(db *sql.DB) *SQLiteProjectRepo {
	return &SQLiteProjectRepo{db: db}
}

func (r *SQLiteProjectRepo) Create(ctx context.Context, p *ProjectRecord) error {
	query := `INSERT INTO projects (id, name, state, content, submitted_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		p.ID,
		p.Name,
		p.State,
		string(p.Content),
		p.SubmittedAt.UTC().Format(time.RFC3339),
		p.UpdatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting project: %w", err)
	}
	return nil
}

func (r *SQLiteProjectRepo) Get(ctx context.Context, id string) (*ProjectRecord, error) {
	query := `SELECT id, name, state, content, submitted_at, updated_at FROM projects WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	var p ProjectRecord
	var content, submittedAt, updatedAt string
	if err := row.Scan(&p.ID, &p.Name, &p.State, &content, &submittedAt, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("project %q: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning project: %w", err)
	}
	p.Content = []byte(content)
	var err error
	if p.SubmittedAt, err = time.Parse(time.RFC3339, submittedAt); err != nil {
		return nil, fmt.Errorf("parsing project submitted_at: %w", err)
	}
	if p.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt); err != nil {
		return nil, fmt.Errorf("parsing project updated_at: %w", err)
	}
	return &p, nil
}

func (r *SQLiteProjectRepo) UpdateState(ctx context.Context, id, state string) error {
	query := `UPDATE projects SET state = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, state, time.Now().UTC().Format(time.RFC3339), id)
	if err != nil {
		return fmt.Errorf("updating project state: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating project state: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("project %q: %w", id, ErrNotFound)
	}
	return nil
}

func (r *SQLiteProjectRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting project: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting project: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("project %q: %w", id, ErrNotFound)
	}
	return nil
}

func (r *SQLiteProjectRepo) SaveSnapshot(ctx context.Context, s *SnapshotRecord) error {
	// One snapshot per project, written once at approval time.
	query := `INSERT INTO snapshots (project_id, approved_at, content) VALUES (?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.ProjectID,
		s.ApprovedAt.UTC().Format(time.RFC3339),
		string(s.Content),
	)
	if err != nil {
		return fmt.Errorf("inserting snapshot: %w", err)
	}
	return nil
}

func (r *SQLiteProjectRepo) GetSnapshot(ctx context.Context, projectID string) (*SnapshotRecord, error) {
	query := `SELECT project_id, approved_at, content FROM snapshots WHERE project_id = ?`
	row := r.db.QueryRowContext(ctx, query, projectID)

	var s SnapshotRecord
	var approvedAt, content string
	if err := row.Scan(&s.ProjectID, &approvedAt, &content); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("snapshot for project %q: %w", projectID, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning snapshot: %w", err)
	}
	s.Content = []byte(content)
	var err error
	if s.ApprovedAt, err = time.Parse(time.RFC3339, approvedAt); err != nil {
		return nil, fmt.Errorf("parsing snapshot approved_at: %w", err)
	}
	return &s, nil
}
