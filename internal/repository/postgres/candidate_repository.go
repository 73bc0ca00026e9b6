package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"talenttrack/internal/common"
	"talenttrack/internal/domain/candidate"
	"talenttrack/internal/domain/pipeline"
)

type CandidateRepository struct {
	db *sql.DB
}

func NewCandidateRepository(db *sql.DB) *CandidateRepository {
	return &CandidateRepository{db: db}
}

func (r *CandidateRepository) Create(ctx context.Context, c candidate.Candidate) (*candidate.Candidate, error) {
	now := time.Now().UTC()
	c.CreatedAt = now
	c.UpdatedAt = now
	err := r.db.QueryRowContext(ctx, `INSERT INTO candidates (full_name, email, is_archived, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		c.FullName, c.Email, c.IsArchived, c.CreatedAt, c.UpdatedAt).Scan(&c.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, common.NewError(common.CodeConflict, "a candidate with this email already exists", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to create candidate", err)
	}
	return &c, nil
}

func (r *CandidateRepository) GetByID(ctx context.Context, id int64) (*candidate.Candidate, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, full_name, email, is_archived, created_at, updated_at FROM candidates WHERE id = $1`, id)
	var c candidate.Candidate
	if err := row.Scan(&c.ID, &c.FullName, &c.Email, &c.IsArchived, &c.CreatedAt, &c.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "candidate not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load candidate", err)
	}
	return &c, nil
}

func (r *CandidateRepository) FindByEmail(ctx context.Context, email string, excludeID int64) (*candidate.Candidate, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, full_name, email, is_archived, created_at, updated_at
		FROM candidates WHERE lower(email) = lower($1) AND id <> $2`, email, excludeID)
	var c candidate.Candidate
	if err := row.Scan(&c.ID, &c.FullName, &c.Email, &c.IsArchived, &c.CreatedAt, &c.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "candidate not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load candidate", err)
	}
	return &c, nil
}

func (r *CandidateRepository) Update(ctx context.Context, c candidate.Candidate) (*candidate.Candidate, error) {
	c.UpdatedAt = time.Now().UTC()
	_, err := r.db.ExecContext(ctx, `UPDATE candidates SET full_name = $1, email = $2, updated_at = $3 WHERE id = $4`,
		c.FullName, c.Email, c.UpdatedAt, c.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, common.NewError(common.CodeConflict, "a candidate with this email already exists", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to update candidate", err)
	}
	return r.GetByID(ctx, c.ID)
}

func (r *CandidateRepository) Archive(ctx context.Context, id int64) (*candidate.Candidate, error) {
	_, err := r.db.ExecContext(ctx, `UPDATE candidates SET is_archived = TRUE, updated_at = $1 WHERE id = $2`,
		time.Now().UTC(), id)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to archive candidate", err)
	}
	return r.GetByID(ctx, id)
}

var candidateSortColumns = map[string]string{
	"full_name":  "c.full_name",
	"email":      "c.email",
	"updated_at": "c.updated_at",
}

func (r *CandidateRepository) List(ctx context.Context, filter candidate.ListFilter) ([]candidate.ListItem, int64, error) {
	where := []string{"c.is_archived = FALSE"}
	args := []any{}
	join := ""

	if filter.Stage != "" || filter.PositionID != 0 {
		join = " JOIN candidate_positions cp ON cp.candidate_id = c.id"
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		n := len(args)
		where = append(where, fmt.Sprintf("(c.full_name ILIKE $%d OR c.email ILIKE $%d)", n, n))
	}
	if filter.Stage != "" {
		args = append(args, filter.Stage)
		where = append(where, fmt.Sprintf("cp.stage = $%d", len(args)))
	}
	if filter.PositionID != 0 {
		args = append(args, filter.PositionID)
		where = append(where, fmt.Sprintf("cp.position_id = $%d", len(args)))
	}
	cond := strings.Join(where, " AND ")

	var total int64
	countQuery := "SELECT COUNT(DISTINCT c.id) FROM candidates c" + join + " WHERE " + cond
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, common.NewError(common.CodeInternal, "failed to count candidates", err)
	}

	sortColumn, ok := candidateSortColumns[filter.SortBy]
	if !ok {
		sortColumn = "c.updated_at"
	}
	direction := "DESC"
	if filter.SortOrder == "asc" {
		direction = "ASC"
	}

	args = append(args, filter.Limit, filter.Offset)
	query := fmt.Sprintf(`SELECT DISTINCT c.id, c.full_name, c.email, c.updated_at FROM candidates c%s WHERE %s
		ORDER BY %s %s LIMIT $%d OFFSET $%d`, join, cond, sortColumn, direction, len(args)-1, len(args))
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, common.NewError(common.CodeInternal, "failed to list candidates", err)
	}
	defer rows.Close()

	var items []candidate.ListItem
	var ids []int64
	for rows.Next() {
		var item candidate.ListItem
		if err := rows.Scan(&item.ID, &item.FullName, &item.Email, &item.UpdatedAt); err != nil {
			return nil, 0, common.NewError(common.CodeInternal, "failed to scan candidate", err)
		}
		item.Positions = []pipeline.CandidateStage{}
		items = append(items, item)
		ids = append(ids, item.ID)
	}
	if len(items) == 0 {
		return items, total, nil
	}

	stages, err := r.stagesForCandidates(ctx, ids)
	if err != nil {
		return nil, 0, err
	}
	for i := range items {
		if positions, ok := stages[items[i].ID]; ok {
			items[i].Positions = positions
		}
	}
	return items, total, nil
}

func (r *CandidateRepository) stagesForCandidates(ctx context.Context, ids []int64) (map[int64][]pipeline.CandidateStage, error) {
	placeholders := make([]string, len(ids))
	args := make([]any, len(ids))
	for i, id := range ids {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = id
	}
	query := `SELECT cp.candidate_id, cp.position_id, p.title, cp.stage
		FROM candidate_positions cp
		JOIN positions p ON p.id = cp.position_id
		WHERE cp.candidate_id IN (` + strings.Join(placeholders, ", ") + `)`
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list candidate stages", err)
	}
	defer rows.Close()

	out := make(map[int64][]pipeline.CandidateStage)
	for rows.Next() {
		var candidateID int64
		var cs pipeline.CandidateStage
		if err := rows.Scan(&candidateID, &cs.PositionID, &cs.PositionTitle, &cs.Stage); err != nil {
			return nil, common.NewError(common.CodeInternal, "failed to scan candidate stage", err)
		}
		out[candidateID] = append(out[candidateID], cs)
	}
	return out, nil
}
