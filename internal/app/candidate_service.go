package app

import (
	"context"
	"net/mail"
	"strings"

	"talenttrack/internal/common"
	"talenttrack/internal/domain/candidate"
	"talenttrack/internal/domain/pipeline"
)

type CandidateService struct {
	repo     candidate.Repository
	pipeline pipeline.Repository
}

func NewCandidateService(repo candidate.Repository, pipeline pipeline.Repository) *CandidateService {
	return &CandidateService{repo: repo, pipeline: pipeline}
}

func (s *CandidateService) List(ctx context.Context, filter candidate.ListFilter) (*candidate.Page, error) {
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
		items = []candidate.ListItem{}
	}
	return &candidate.Page{Items: items, Total: total, Offset: filter.Offset, Limit: filter.Limit}, nil
}

// Create guards email uniqueness case-insensitively; the stored email keeps
// the submitted casing.
func (s *CandidateService) Create(ctx context.Context, fullName, email string) (*candidate.Candidate, error) {
	fullName = strings.TrimSpace(fullName)
	email = strings.TrimSpace(email)
	if fullName == "" {
		return nil, common.NewError(common.CodeValidation, "full_name is required", nil)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, common.NewError(common.CodeValidation, "invalid email", nil)
	}
	if _, err := s.repo.FindByEmail(ctx, email, 0); err == nil {
		return nil, common.NewError(common.CodeConflict, "a candidate with this email already exists", nil)
	} else if !common.Is(err, common.CodeNotFound) {
		return nil, err
	}
	return s.repo.Create(ctx, candidate.Candidate{FullName: fullName, Email: email})
}

func (s *CandidateService) Get(ctx context.Context, id int64) (*candidate.Detail, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c.IsArchived {
		return nil, common.NewError(common.CodeNotFound, "candidate not found", nil)
	}
	positions, err := s.pipeline.ListByCandidate(ctx, id)
	if err != nil {
		return nil, err
	}
	return &candidate.Detail{Candidate: *c, Positions: positions}, nil
}

// Update applies partial changes. The email conflict check excludes the
// candidate's own record so resubmitting the same address is a no-op.
func (s *CandidateService) Update(ctx context.Context, id int64, fullName, email *string) (*candidate.Candidate, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c.IsArchived {
		return nil, common.NewError(common.CodeNotFound, "candidate not found", nil)
	}
	if email != nil {
		next := strings.TrimSpace(*email)
		if _, err := mail.ParseAddress(next); err != nil {
			return nil, common.NewError(common.CodeValidation, "invalid email", nil)
		}
		if _, err := s.repo.FindByEmail(ctx, next, id); err == nil {
			return nil, common.NewError(common.CodeConflict, "a candidate with this email already exists", nil)
		} else if !common.Is(err, common.CodeNotFound) {
			return nil, err
		}
		c.Email = next
	}
	if fullName != nil {
		next := strings.TrimSpace(*fullName)
		if next == "" {
			return nil, common.NewError(common.CodeValidation, "full_name is required", nil)
		}
		c.FullName = next
	}
	return s.repo.Update(ctx, *c)
}

func (s *CandidateService) Archive(ctx context.Context, id int64) (*candidate.Candidate, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c.IsArchived {
		return nil, common.NewError(common.CodeNotFound, "candidate not found", nil)
	}
	return s.repo.Archive(ctx, id)
}
