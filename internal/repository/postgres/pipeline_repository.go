package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"talenttrack/internal/common"
	"talenttrack/internal/domain/pipeline"
)

type PipelineRepository struct {
	db *sql.DB
}

func NewPipelineRepository(db *sql.DB) *PipelineRepository {
	return &PipelineRepository{db: db}
}

func (r *PipelineRepository) Create(ctx context.Context, a pipeline.Association) (*pipeline.Association, error) {
	now := time.Now().UTC()
	a.CreatedAt = now
	a.UpdatedAt = now
	err := r.db.QueryRowContext(ctx, `INSERT INTO candidate_positions (candidate_id, position_id, stage, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		a.CandidateID, a.PositionID, a.Stage, a.CreatedAt, a.UpdatedAt).Scan(&a.ID)
	if err != nil {
		// Two creators can both pass the service pre-check; the constraint
		// decides, and its violation is surfaced as the same conflict.
		if isUniqueViolation(err) {
			return nil, common.NewError(common.CodeConflict, "candidate is already associated with this position", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to create association", err)
	}
	return &a, nil
}

func (r *PipelineRepository) Find(ctx context.Context, candidateID, positionID int64) (*pipeline.Association, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, candidate_id, position_id, stage, created_at, updated_at
		FROM candidate_positions WHERE candidate_id = $1 AND position_id = $2`, candidateID, positionID)
	var a pipeline.Association
	if err := row.Scan(&a.ID, &a.CandidateID, &a.PositionID, &a.Stage, &a.CreatedAt, &a.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "association not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load association", err)
	}
	return &a, nil
}

func (r *PipelineRepository) UpdateStage(ctx context.Context, id int64, stage pipeline.Stage) (*pipeline.Association, error) {
	updatedAt := time.Now().UTC()
	row := r.db.QueryRowContext(ctx, `UPDATE candidate_positions SET stage = $1, updated_at = $2 WHERE id = $3
		RETURNING id, candidate_id, position_id, stage, created_at, updated_at`, stage, updatedAt, id)
	var a pipeline.Association
	if err := row.Scan(&a.ID, &a.CandidateID, &a.PositionID, &a.Stage, &a.CreatedAt, &a.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "association not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to update association", err)
	}
	return &a, nil
}

func (r *PipelineRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM candidate_positions WHERE id = $1`, id)
	if err != nil {
		return common.NewError(common.CodeInternal, "failed to delete association", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return common.NewError(common.CodeInternal, "failed to delete association", err)
	}
	if affected == 0 {
		return common.NewError(common.CodeNotFound, "association not found", nil)
	}
	return nil
}

func (r *PipelineRepository) ListByCandidate(ctx context.Context, candidateID int64) ([]pipeline.CandidateStage, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT cp.position_id, p.title, cp.stage
		FROM candidate_positions cp
		JOIN positions p ON p.id = cp.position_id
		WHERE cp.candidate_id = $1`, candidateID)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list candidate positions", err)
	}
	defer rows.Close()
	items := []pipeline.CandidateStage{}
	for rows.Next() {
		var cs pipeline.CandidateStage
		if err := rows.Scan(&cs.PositionID, &cs.PositionTitle, &cs.Stage); err != nil {
			return nil, common.NewError(common.CodeInternal, "failed to scan candidate position", err)
		}
		items = append(items, cs)
	}
	return items, nil
}

func (r *PipelineRepository) ListByPosition(ctx context.Context, positionID int64) ([]pipeline.PositionCandidate, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT cp.candidate_id, c.full_name, c.email, cp.stage
		FROM candidate_positions cp
		JOIN candidates c ON c.id = cp.candidate_id
		WHERE cp.position_id = $1`, positionID)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list position candidates", err)
	}
	defer rows.Close()
	items := []pipeline.PositionCandidate{}
	for rows.Next() {
		var pc pipeline.PositionCandidate
		if err := rows.Scan(&pc.CandidateID, &pc.CandidateName, &pc.CandidateEmail, &pc.Stage); err != nil {
			return nil, common.NewError(common.CodeInternal, "failed to scan position candidate", err)
		}
		items = append(items, pc)
	}
	return items, nil
}
