package app

import (
	"context"
	"fmt"
	"strings"

	"talenttrack/internal/common"
	"talenttrack/internal/domain/position"
	"talenttrack/internal/domain/team"
)

type TeamService struct {
	repo      team.Repository
	positions position.Repository
}

func NewTeamService(repo team.Repository, positions position.Repository) *TeamService {
	return &TeamService{repo: repo, positions: positions}
}

func (s *TeamService) List(ctx context.Context) ([]team.Team, error) {
	return s.repo.ListActive(ctx)
}

// Create enforces case-insensitive name uniqueness while storing the name
// exactly as submitted.
func (s *TeamService) Create(ctx context.Context, name string) (*team.Team, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, common.NewError(common.CodeValidation, "name is required", nil)
	}
	if _, err := s.repo.FindByName(ctx, name); err == nil {
		return nil, common.NewError(common.CodeConflict, fmt.Sprintf("team with name '%s' already exists", name), nil)
	} else if !common.Is(err, common.CodeNotFound) {
		return nil, err
	}
	return s.repo.Create(ctx, team.Team{Name: name})
}

// Delete refuses while any position references the team. Archived positions
// count: a soft-deleted position still uses its team.
func (s *TeamService) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	inUse, err := s.positions.ExistsForTeam(ctx, id)
	if err != nil {
		return err
	}
	if inUse {
		return common.NewError(common.CodeConflict, fmt.Sprintf("team with id %d is in use by positions", id), nil)
	}
	return s.repo.Delete(ctx, id)
}
