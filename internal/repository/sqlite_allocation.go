package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/vasco-fernandes21/starsoftflow/internal/allocation"
	"github.com/vasco-fernandes21/starsoftflow/internal/domain"
)

// SQLiteAllocationRepo implements AllocationRepo over the two feed tables.
type SQLiteAllocationRepo struct {
	db *sql.DB
}

// NewSQLiteAllocationRepo creates a new SQLiteAllocationRepo.
func NewSQLiteAllocationRepo(db *sql.DB) *SQLiteAllocationRepo {
	return &SQLiteAllocationRepo{db: db}
}

func (r *SQLiteAllocationRepo) ListReal(ctx context.Context, userID string, year int) ([]allocation.Record, error) {
	return r.list(ctx, "real_allocations", userID, year)
}

func (r *SQLiteAllocationRepo) ListSubmitted(ctx context.Context, userID string, year int) ([]allocation.Record, error) {
	return r.list(ctx, "submitted_allocations", userID, year)
}

func (r *SQLiteAllocationRepo) list(ctx context.Context, table, userID string, year int) ([]allocation.Record, error) {
	query := fmt.Sprintf(`SELECT workpackage_id, workpackage_name, project_id, project_name, project_state, month, year, occupancy
		FROM %s WHERE user_id = ?`, table)
	args := []any{userID}
	if year != 0 {
		query += ` AND year = ?`
		args = append(args, year)
	}
	query += ` ORDER BY project_id, workpackage_id, year, month`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", table, err)
	}
	defer rows.Close()

	var records []allocation.Record
	for rows.Next() {
		var rec allocation.Record
		var state, occupancy string
		if err := rows.Scan(
			&rec.WorkPackage.ID, &rec.WorkPackage.Name,
			&rec.Project.ID, &rec.Project.Name, &state,
			&rec.Month, &rec.Year, &occupancy,
		); err != nil {
			return nil, fmt.Errorf("scanning %s row: %w", table, err)
		}
		rec.Project.State = domain.ProjectState(state)
		if rec.Occupancy, err = decimal.NewFromString(occupancy); err != nil {
			return nil, fmt.Errorf("parsing occupancy %q: %w", occupancy, err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating %s: %w", table, err)
	}
	return records, nil
}

func (r *SQLiteAllocationRepo) ReplaceReal(ctx context.Context, userID string, records []allocation.Record) error {
	return r.replace(ctx, "real_allocations", userID, records)
}

func (r *SQLiteAllocationRepo) ReplaceSubmitted(ctx context.Context, userID string, records []allocation.Record) error {
	return r.replace(ctx, "submitted_allocations", userID, records)
}

func (r *SQLiteAllocationRepo) replace(ctx context.Context, table, userID string, records []allocation.Record) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting allocation save: %w", err)
	}
	defer tx.Rollback()

	query := fmt.Sprintf(`INSERT INTO %s
		(user_id, workpackage_id, workpackage_name, project_id, project_name, project_state, month, year, occupancy)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (user_id, workpackage_id, month, year)
		DO UPDATE SET occupancy = excluded.occupancy,
			workpackage_name = excluded.workpackage_name,
			project_name = excluded.project_name,
			project_state = excluded.project_state`, table)

	for _, rec := range records {
		if _, err := tx.ExecContext(ctx, query,
			userID,
			rec.WorkPackage.ID, rec.WorkPackage.Name,
			rec.Project.ID, rec.Project.Name, string(rec.Project.State),
			rec.Month, rec.Year, rec.Occupancy.String(),
		); err != nil {
			return fmt.Errorf("upserting allocation %s %d/%d: %w", rec.WorkPackage.ID, rec.Month, rec.Year, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing allocation save: %w", err)
	}
	return nil
}

func (r *SQLiteAllocationRepo) AvailableYears(ctx context.Context, userID string) ([]int, error) {
	query := `SELECT DISTINCT year FROM real_allocations WHERE user_id = ?
		UNION SELECT DISTINCT year FROM submitted_allocations WHERE user_id = ?
		ORDER BY year`
	rows, err := r.db.QueryContext(ctx, query, userID, userID)
	if err != nil {
		return nil, fmt.Errorf("listing allocation years: %w", err)
	}
	defer rows.Close()

	var years []int
	for rows.Next() {
		var y int
		if err := rows.Scan(&y); err != nil {
			return nil, fmt.Errorf("scanning allocation year: %w", err)
		}
		years = append(years, y)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating allocation years: %w", err)
	}
	return years, nil
}
