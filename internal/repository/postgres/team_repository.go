package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"talenttrack/internal/common"
	"talenttrack/internal/domain/team"
)

type TeamRepository struct {
	db *sql.DB
}

func NewTeamRepository(db *sql.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) Create(ctx context.Context, t team.Team) (*team.Team, error) {
	now := time.Now().UTC()
	t.CreatedAt = now
	t.UpdatedAt = now
	err := r.db.QueryRowContext(ctx, `INSERT INTO teams (name, is_archived, created_at, updated_at)
		VALUES ($1, $2, $3, $4) RETURNING id`,
		t.Name, t.IsArchived, t.CreatedAt, t.UpdatedAt).Scan(&t.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, common.NewError(common.CodeConflict, "team with name '"+t.Name+"' already exists", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to create team", err)
	}
	return &t, nil
}

func (r *TeamRepository) GetByID(ctx context.Context, id int64) (*team.Team, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, name, is_archived, created_at, updated_at FROM teams WHERE id = $1`, id)
	var t team.Team
	if err := row.Scan(&t.ID, &t.Name, &t.IsArchived, &t.CreatedAt, &t.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "team not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load team", err)
	}
	return &t, nil
}

func (r *TeamRepository) FindByName(ctx context.Context, name string) (*team.Team, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, name, is_archived, created_at, updated_at FROM teams WHERE lower(name) = lower($1)`, name)
	var t team.Team
	if err := row.Scan(&t.ID, &t.Name, &t.IsArchived, &t.CreatedAt, &t.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "team not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load team", err)
	}
	return &t, nil
}

func (r *TeamRepository) ListActive(ctx context.Context) ([]team.Team, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, is_archived, created_at, updated_at FROM teams WHERE is_archived = FALSE ORDER BY name`)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list teams", err)
	}
	defer rows.Close()
	var items []team.Team
	for rows.Next() {
		var t team.Team
		if err := rows.Scan(&t.ID, &t.Name, &t.IsArchived, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, common.NewError(common.CodeInternal, "failed to scan team", err)
		}
		items = append(items, t)
	}
	return items, nil
}

func (r *TeamRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM teams WHERE id = $1`, id)
	if err != nil {
		return common.NewError(common.CodeInternal, "failed to delete team", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return common.NewError(common.CodeInternal, "failed to delete team", err)
	}
	if affected == 0 {
		return common.NewError(common.CodeNotFound, "team not found", nil)
	}
	return nil
}
