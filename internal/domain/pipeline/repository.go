package pipeline

import "context"

type Repository interface {
	// Create inserts a new association. A unique-constraint violation on
	// (candidate_id, position_id) must surface as a conflict error.
	Create(ctx context.Context, a Association) (*Association, error)
	Find(ctx context.Context, candidateID, positionID int64) (*Association, error)
	UpdateStage(ctx context.Context, id int64, stage Stage) (*Association, error)
	Delete(ctx context.Context, id int64) error
	ListByCandidate(ctx context.Context, candidateID int64) ([]CandidateStage, error)
	ListByPosition(ctx context.Context, positionID int64) ([]PositionCandidate, error)
}
