package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"talenttrack/internal/common"
	"talenttrack/internal/domain/position"
)

type PositionRepository struct {
	db *sql.DB
}

func NewPositionRepository(db *sql.DB) *PositionRepository {
	return &PositionRepository{db: db}
}

func (r *PositionRepository) Create(ctx context.Context, p position.Position) (*position.Position, error) {
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	err := r.db.QueryRowContext(ctx, `INSERT INTO positions (title, requirements, status, team_id, hiring_manager_id, is_archived, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`,
		p.Title, p.Requirements, p.Status, p.TeamID, p.HiringManagerID, p.IsArchived, p.CreatedAt, p.UpdatedAt).Scan(&p.ID)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to create position", err)
	}
	return &p, nil
}

func (r *PositionRepository) GetByID(ctx context.Context, id int64) (*position.Position, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, title, requirements, status, team_id, hiring_manager_id, is_archived, created_at, updated_at
		FROM positions WHERE id = $1`, id)
	var p position.Position
	if err := row.Scan(&p.ID, &p.Title, &p.Requirements, &p.Status, &p.TeamID, &p.HiringManagerID, &p.IsArchived, &p.CreatedAt, &p.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "position not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load position", err)
	}
	return &p, nil
}

func (r *PositionRepository) Update(ctx context.Context, p position.Position) (*position.Position, error) {
	p.UpdatedAt = time.Now().UTC()
	_, err := r.db.ExecContext(ctx, `UPDATE positions SET title = $1, requirements = $2, status = $3, team_id = $4, hiring_manager_id = $5, updated_at = $6
		WHERE id = $7`,
		p.Title, p.Requirements, p.Status, p.TeamID, p.HiringManagerID, p.UpdatedAt, p.ID)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to update position", err)
	}
	return r.GetByID(ctx, p.ID)
}

func (r *PositionRepository) Archive(ctx context.Context, id int64) (*position.Position, error) {
	_, err := r.db.ExecContext(ctx, `UPDATE positions SET is_archived = TRUE, updated_at = $1 WHERE id = $2`,
		time.Now().UTC(), id)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to archive position", err)
	}
	return r.GetByID(ctx, id)
}

func (r *PositionRepository) List(ctx context.Context, filter position.ListFilter) ([]position.ListItem, int64, error) {
	where := []string{"p.is_archived = FALSE"}
	args := []any{}
	if filter.Status != "" {
		args = append(args, filter.Status)
		where = append(where, fmt.Sprintf("p.status = $%d", len(args)))
	}
	if filter.TeamID != 0 {
		args = append(args, filter.TeamID)
		where = append(where, fmt.Sprintf("p.team_id = $%d", len(args)))
	}
	cond := strings.Join(where, " AND ")

	var total int64
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM positions p WHERE "+cond, args...).Scan(&total); err != nil {
		return nil, 0, common.NewError(common.CodeInternal, "failed to count positions", err)
	}

	args = append(args, filter.Limit, filter.Offset)
	query := fmt.Sprintf(`SELECT p.id, p.title, t.name, u.full_name, p.status, COUNT(cp.id)
		FROM positions p
		JOIN teams t ON t.id = p.team_id
		JOIN users u ON u.id = p.hiring_manager_id
		LEFT JOIN candidate_positions cp ON cp.position_id = p.id
		WHERE %s
		GROUP BY p.id, t.name, u.full_name
		ORDER BY p.created_at DESC LIMIT $%d OFFSET $%d`, cond, len(args)-1, len(args))
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, common.NewError(common.CodeInternal, "failed to list positions", err)
	}
	defer rows.Close()

	var items []position.ListItem
	for rows.Next() {
		var item position.ListItem
		if err := rows.Scan(&item.ID, &item.Title, &item.TeamName, &item.HiringManagerName, &item.Status, &item.CandidateCount); err != nil {
			return nil, 0, common.NewError(common.CodeInternal, "failed to scan position", err)
		}
		items = append(items, item)
	}
	return items, total, nil
}

func (r *PositionRepository) ExistsForTeam(ctx context.Context, teamID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM positions WHERE team_id = $1)`, teamID).Scan(&exists)
	if err != nil {
		return false, common.NewError(common.CodeInternal, "failed to check team positions", err)
	}
	return exists, nil
}
