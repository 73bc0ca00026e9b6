package app

import (
	"context"
	"strings"
	"sync"
	"time"

	"talenttrack/internal/common"
	"talenttrack/internal/domain/candidate"
	"talenttrack/internal/domain/pipeline"
	"talenttrack/internal/domain/position"
	"talenttrack/internal/domain/team"
	"talenttrack/internal/domain/user"
)

type fakeTeamRepo struct {
	mu     sync.Mutex
	nextID int64
	teams  map[int64]*team.Team
}

func newFakeTeamRepo() *fakeTeamRepo {
	return &fakeTeamRepo{teams: make(map[int64]*team.Team)}
}

func (r *fakeTeamRepo) Create(ctx context.Context, t team.Team) (*team.Team, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.teams {
		if strings.EqualFold(existing.Name, t.Name) {
			return nil, common.NewError(common.CodeConflict, "team with name '"+t.Name+"' already exists", nil)
		}
	}
	r.nextID++
	t.ID = r.nextID
	now := time.Now().UTC()
	t.CreatedAt = now
	t.UpdatedAt = now
	stored := t
	r.teams[t.ID] = &stored
	return &t, nil
}

func (r *fakeTeamRepo) GetByID(ctx context.Context, id int64) (*team.Team, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.teams[id]
	if !ok {
		return nil, common.NewError(common.CodeNotFound, "team not found", nil)
	}
	copied := *t
	return &copied, nil
}

func (r *fakeTeamRepo) FindByName(ctx context.Context, name string) (*team.Team, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range r.teams {
		if strings.EqualFold(t.Name, name) {
			copied := *t
			return &copied, nil
		}
	}
	return nil, common.NewError(common.CodeNotFound, "team not found", nil)
}

func (r *fakeTeamRepo) ListActive(ctx context.Context) ([]team.Team, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var items []team.Team
	for _, t := range r.teams {
		if !t.IsArchived {
			items = append(items, *t)
		}
	}
	return items, nil
}

func (r *fakeTeamRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.teams[id]; !ok {
		return common.NewError(common.CodeNotFound, "team not found", nil)
	}
	delete(r.teams, id)
	return nil
}

type fakeUserRepo struct {
	mu     sync.Mutex
	nextID int64
	users  map[int64]*user.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]*user.User)}
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id int64) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, common.NewError(common.CodeNotFound, "user not found", nil)
	}
	copied := *u
	return &copied, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			copied := *u
			return &copied, nil
		}
	}
	return nil, common.NewError(common.CodeNotFound, "user not found", nil)
}

func (r *fakeUserRepo) Create(ctx context.Context, u user.User) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	u.ID = r.nextID
	now := time.Now().UTC()
	u.CreatedAt = now
	u.UpdatedAt = now
	stored := u
	r.users[u.ID] = &stored
	return &u, nil
}

func (r *fakeUserRepo) Update(ctx context.Context, u user.User) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.users[u.ID]
	if !ok {
		return nil, common.NewError(common.CodeNotFound, "user not found", nil)
	}
	existing.FullName = u.FullName
	existing.AvatarURL = u.AvatarURL
	existing.UpdatedAt = time.Now().UTC()
	copied := *existing
	return &copied, nil
}

func (r *fakeUserRepo) List(ctx context.Context) ([]user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var items []user.User
	for _, u := range r.users {
		items = append(items, *u)
	}
	return items, nil
}

type fakeCandidateRepo struct {
	mu         sync.Mutex
	nextID     int64
	candidates map[int64]*candidate.Candidate
}

func newFakeCandidateRepo() *fakeCandidateRepo {
	return &fakeCandidateRepo{candidates: make(map[int64]*candidate.Candidate)}
}

func (r *fakeCandidateRepo) Create(ctx context.Context, c candidate.Candidate) (*candidate.Candidate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.candidates {
		if strings.EqualFold(existing.Email, c.Email) {
			return nil, common.NewError(common.CodeConflict, "a candidate with this email already exists", nil)
		}
	}
	r.nextID++
	c.ID = r.nextID
	now := time.Now().UTC()
	c.CreatedAt = now
	c.UpdatedAt = now
	stored := c
	r.candidates[c.ID] = &stored
	return &c, nil
}

func (r *fakeCandidateRepo) GetByID(ctx context.Context, id int64) (*candidate.Candidate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.candidates[id]
	if !ok {
		return nil, common.NewError(common.CodeNotFound, "candidate not found", nil)
	}
	copied := *c
	return &copied, nil
}

func (r *fakeCandidateRepo) FindByEmail(ctx context.Context, email string, excludeID int64) (*candidate.Candidate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.candidates {
		if c.ID != excludeID && strings.EqualFold(c.Email, email) {
			copied := *c
			return &copied, nil
		}
	}
	return nil, common.NewError(common.CodeNotFound, "candidate not found", nil)
}

func (r *fakeCandidateRepo) Update(ctx context.Context, c candidate.Candidate) (*candidate.Candidate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.candidates[c.ID]
	if !ok {
		return nil, common.NewError(common.CodeNotFound, "candidate not found", nil)
	}
	existing.FullName = c.FullName
	existing.Email = c.Email
	existing.UpdatedAt = time.Now().UTC()
	copied := *existing
	return &copied, nil
}

func (r *fakeCandidateRepo) Archive(ctx context.Context, id int64) (*candidate.Candidate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.candidates[id]
	if !ok {
		return nil, common.NewError(common.CodeNotFound, "candidate not found", nil)
	}
	existing.IsArchived = true
	existing.UpdatedAt = time.Now().UTC()
	copied := *existing
	return &copied, nil
}

func (r *fakeCandidateRepo) List(ctx context.Context, filter candidate.ListFilter) ([]candidate.ListItem, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var items []candidate.ListItem
	for _, c := range r.candidates {
		if c.IsArchived {
			continue
		}
		items = append(items, candidate.ListItem{
			ID:        c.ID,
			FullName:  c.FullName,
			Email:     c.Email,
			Positions: []pipeline.CandidateStage{},
			UpdatedAt: c.UpdatedAt,
		})
	}
	return items, int64(len(items)), nil
}

type fakePositionRepo struct {
	mu        sync.Mutex
	nextID    int64
	positions map[int64]*position.Position
}

func newFakePositionRepo() *fakePositionRepo {
	return &fakePositionRepo{positions: make(map[int64]*position.Position)}
}

func (r *fakePositionRepo) Create(ctx context.Context, p position.Position) (*position.Position, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	p.ID = r.nextID
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	stored := p
	r.positions[p.ID] = &stored
	return &p, nil
}

func (r *fakePositionRepo) GetByID(ctx context.Context, id int64) (*position.Position, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.positions[id]
	if !ok {
		return nil, common.NewError(common.CodeNotFound, "position not found", nil)
	}
	copied := *p
	return &copied, nil
}

func (r *fakePositionRepo) Update(ctx context.Context, p position.Position) (*position.Position, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.positions[p.ID]
	if !ok {
		return nil, common.NewError(common.CodeNotFound, "position not found", nil)
	}
	p.UpdatedAt = time.Now().UTC()
	p.CreatedAt = existing.CreatedAt
	stored := p
	r.positions[p.ID] = &stored
	return &p, nil
}

func (r *fakePositionRepo) Archive(ctx context.Context, id int64) (*position.Position, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.positions[id]
	if !ok {
		return nil, common.NewError(common.CodeNotFound, "position not found", nil)
	}
	existing.IsArchived = true
	existing.UpdatedAt = time.Now().UTC()
	copied := *existing
	return &copied, nil
}

func (r *fakePositionRepo) List(ctx context.Context, filter position.ListFilter) ([]position.ListItem, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var items []position.ListItem
	for _, p := range r.positions {
		if p.IsArchived {
			continue
		}
		items = append(items, position.ListItem{ID: p.ID, Title: p.Title, Status: p.Status})
	}
	return items, int64(len(items)), nil
}

func (r *fakePositionRepo) ExistsForTeam(ctx context.Context, teamID int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.positions {
		if p.TeamID == teamID {
			return true, nil
		}
	}
	return false, nil
}

type pairKey struct {
	candidateID int64
	positionID  int64
}

type fakePipelineRepo struct {
	mu           sync.Mutex
	nextID       int64
	associations map[pairKey]*pipeline.Association
}

func newFakePipelineRepo() *fakePipelineRepo {
	return &fakePipelineRepo{associations: make(map[pairKey]*pipeline.Association)}
}

func (r *fakePipelineRepo) Create(ctx context.Context, a pipeline.Association) (*pipeline.Association, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := pairKey{a.CandidateID, a.PositionID}
	// Mirrors the unique constraint: the map is the authority.
	if _, exists := r.associations[key]; exists {
		return nil, common.NewError(common.CodeConflict, "candidate is already associated with this position", nil)
	}
	r.nextID++
	a.ID = r.nextID
	now := time.Now().UTC()
	a.CreatedAt = now
	a.UpdatedAt = now
	stored := a
	r.associations[key] = &stored
	return &a, nil
}

func (r *fakePipelineRepo) Find(ctx context.Context, candidateID, positionID int64) (*pipeline.Association, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.associations[pairKey{candidateID, positionID}]
	if !ok {
		return nil, common.NewError(common.CodeNotFound, "association not found", nil)
	}
	copied := *a
	return &copied, nil
}

func (r *fakePipelineRepo) UpdateStage(ctx context.Context, id int64, stage pipeline.Stage) (*pipeline.Association, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.associations {
		if a.ID == id {
			a.Stage = stage
			a.UpdatedAt = time.Now().UTC()
			copied := *a
			return &copied, nil
		}
	}
	return nil, common.NewError(common.CodeNotFound, "association not found", nil)
}

func (r *fakePipelineRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for key, a := range r.associations {
		if a.ID == id {
			delete(r.associations, key)
			return nil
		}
	}
	return common.NewError(common.CodeNotFound, "association not found", nil)
}

func (r *fakePipelineRepo) ListByCandidate(ctx context.Context, candidateID int64) ([]pipeline.CandidateStage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	items := []pipeline.CandidateStage{}
	for _, a := range r.associations {
		if a.CandidateID == candidateID {
			items = append(items, pipeline.CandidateStage{PositionID: a.PositionID, Stage: a.Stage})
		}
	}
	return items, nil
}

func (r *fakePipelineRepo) ListByPosition(ctx context.Context, positionID int64) ([]pipeline.PositionCandidate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	items := []pipeline.PositionCandidate{}
	for _, a := range r.associations {
		if a.PositionID == positionID {
			items = append(items, pipeline.PositionCandidate{CandidateID: a.CandidateID, Stage: a.Stage})
		}
	}
	return items, nil
}
