package app

import (
	"context"
	"fmt"

	"talenttrack/internal/common"
	"talenttrack/internal/domain/candidate"
	"talenttrack/internal/domain/pipeline"
	"talenttrack/internal/domain/position"
)

// PipelineService owns the candidate/position association invariants: one
// association per pair, live parents on attach, and the stage-transition
// policy on every stage change.
type PipelineService struct {
	repo       pipeline.Repository
	candidates candidate.Repository
	positions  position.Repository
}

func NewPipelineService(repo pipeline.Repository, candidates candidate.Repository, positions position.Repository) *PipelineService {
	return &PipelineService{repo: repo, candidates: candidates, positions: positions}
}

func (s *PipelineService) Attach(ctx context.Context, candidateID, positionID int64) (*pipeline.Association, error) {
	cand, err := s.candidates.GetByID(ctx, candidateID)
	if err != nil {
		return nil, err
	}
	if cand.IsArchived {
		return nil, common.NewError(common.CodeNotFound, "candidate not found", nil)
	}
	pos, err := s.positions.GetByID(ctx, positionID)
	if err != nil {
		return nil, err
	}
	if pos.IsArchived {
		return nil, common.NewError(common.CodeNotFound, "position not found", nil)
	}
	// Pre-check for a friendlier error; the unique constraint on
	// (candidate_id, position_id) remains the authority under races.
	if _, err := s.repo.Find(ctx, candidateID, positionID); err == nil {
		return nil, common.NewError(common.CodeConflict, "candidate is already associated with this position", nil)
	} else if !common.Is(err, common.CodeNotFound) {
		return nil, err
	}
	return s.repo.Create(ctx, pipeline.Association{
		CandidateID: candidateID,
		PositionID:  positionID,
		Stage:       pipeline.StageNew,
	})
}

// Detach removes the association regardless of parent archival state.
func (s *PipelineService) Detach(ctx context.Context, candidateID, positionID int64) error {
	assoc, err := s.repo.Find(ctx, candidateID, positionID)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, assoc.ID)
}

// UpdateStage checks, in order: the association exists, the requested value
// is a known stage, and the transition is permitted. The order is load-bearing:
// a missing association reports not_found even for a malformed stage value.
func (s *PipelineService) UpdateStage(ctx context.Context, candidateID, positionID int64, requested string) (*pipeline.Association, error) {
	assoc, err := s.repo.Find(ctx, candidateID, positionID)
	if err != nil {
		return nil, err
	}
	stage, ok := pipeline.ParseStage(requested)
	if !ok {
		return nil, common.NewError(common.CodeValidation, "invalid stage", nil)
	}
	if !pipeline.CanTransition(assoc.Stage, stage) {
		return nil, common.NewError(common.CodeInvalidTransition,
			fmt.Sprintf("invalid stage transition from %s to %s", assoc.Stage, stage), nil)
	}
	return s.repo.UpdateStage(ctx, assoc.ID, stage)
}

// AllowedNextStages exposes the transition policy for one stage.
func (s *PipelineService) AllowedNextStages(stage pipeline.Stage) []pipeline.Stage {
	return pipeline.AllowedNext(stage)
}
