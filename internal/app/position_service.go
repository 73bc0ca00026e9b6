package app

import (
	"context"
	"strings"

	"talenttrack/internal/common"
	"talenttrack/internal/domain/pipeline"
	"talenttrack/internal/domain/position"
	"talenttrack/internal/domain/team"
	"talenttrack/internal/domain/user"
)

type PositionService struct {
	repo     position.Repository
	teams    team.Repository
	users    user.Repository
	pipeline pipeline.Repository
}

func NewPositionService(repo position.Repository, teams team.Repository, users user.Repository, pipeline pipeline.Repository) *PositionService {
	return &PositionService{repo: repo, teams: teams, users: users, pipeline: pipeline}
}

func (s *PositionService) List(ctx context.Context, filter position.ListFilter) (*position.Page, error) {
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Limit > 100 {
		filter.Limit = 100
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	items, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []position.ListItem{}
	}
	return &position.Page{Items: items, Total: total, Offset: filter.Offset, Limit: filter.Limit}, nil
}

func (s *PositionService) Create(ctx context.Context, title string, teamID, hiringManagerID int64, requirements *string) (*position.Position, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, common.NewError(common.CodeValidation, "title is required", nil)
	}
	if _, err := s.teams.GetByID(ctx, teamID); err != nil {
		return nil, err
	}
	if _, err := s.users.GetByID(ctx, hiringManagerID); err != nil {
		if common.Is(err, common.CodeNotFound) {
			return nil, common.NewError(common.CodeNotFound, "hiring manager not found", err)
		}
		return nil, err
	}
	return s.repo.Create(ctx, position.Position{
		Title:           title,
		Requirements:    requirements,
		Status:          position.StatusOpen,
		TeamID:          teamID,
		HiringManagerID: hiringManagerID,
	})
}

func (s *PositionService) Get(ctx context.Context, id int64) (*position.Detail, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.IsArchived {
		return nil, common.NewError(common.CodeNotFound, "position not found", nil)
	}
	t, err := s.teams.GetByID(ctx, p.TeamID)
	if err != nil {
		return nil, err
	}
	manager, err := s.users.GetByID(ctx, p.HiringManagerID)
	if err != nil {
		return nil, err
	}
	candidates, err := s.pipeline.ListByPosition(ctx, id)
	if err != nil {
		return nil, err
	}
	return &position.Detail{
		Position:          *p,
		TeamName:          t.Name,
		HiringManagerName: manager.FullName,
		Candidates:        candidates,
	}, nil
}

func (s *PositionService) Update(ctx context.Context, id int64, changes position.Update) (*position.Position, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.IsArchived {
		return nil, common.NewError(common.CodeNotFound, "position not found", nil)
	}
	if changes.TeamID != nil {
		if _, err := s.teams.GetByID(ctx, *changes.TeamID); err != nil {
			return nil, err
		}
		p.TeamID = *changes.TeamID
	}
	if changes.HiringManagerID != nil {
		if _, err := s.users.GetByID(ctx, *changes.HiringManagerID); err != nil {
			if common.Is(err, common.CodeNotFound) {
				return nil, common.NewError(common.CodeNotFound, "hiring manager not found", err)
			}
			return nil, err
		}
		p.HiringManagerID = *changes.HiringManagerID
	}
	if changes.Status != nil {
		next := position.Status(*changes.Status)
		if !position.ValidStatus(next) {
			return nil, common.NewError(common.CodeValidation, "invalid status: "+*changes.Status, nil)
		}
		p.Status = next
	}
	if changes.Title != nil {
		title := strings.TrimSpace(*changes.Title)
		if title == "" {
			return nil, common.NewError(common.CodeValidation, "title is required", nil)
		}
		p.Title = title
	}
	if changes.Requirements != nil {
		p.Requirements = changes.Requirements
	}
	return s.repo.Update(ctx, *p)
}

func (s *PositionService) Archive(ctx context.Context, id int64) (*position.Position, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.IsArchived {
		return nil, common.NewError(common.CodeNotFound, "position not found", nil)
	}
	return s.repo.Archive(ctx, id)
}
