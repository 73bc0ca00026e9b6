package app

import (
	"context"
	"testing"

	"talenttrack/internal/common"
	"talenttrack/internal/domain/candidate"
)

func newCandidateService() (*CandidateService, *fakeCandidateRepo) {
	repo := newFakeCandidateRepo()
	return NewCandidateService(repo, newFakePipelineRepo()), repo
}

func TestCandidateCreateKeepsSubmittedEmailCase(t *testing.T) {
	service, _ := newCandidateService()

	created, err := service.Create(context.Background(), "Grace Hopper", "Grace.Hopper@Example.COM")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Email != "Grace.Hopper@Example.COM" {
		t.Errorf("email = %q, want submitted casing preserved", created.Email)
	}
}

func TestCandidateCreateEmailConflictIsCaseInsensitive(t *testing.T) {
	service, _ := newCandidateService()
	ctx := context.Background()

	if _, err := service.Create(ctx, "Grace Hopper", "grace@example.com"); err != nil {
		t.Fatalf("create: %v", err)
	}
	for _, email := range []string{"grace@example.com", "Grace@Example.com", "GRACE@EXAMPLE.COM"} {
		if _, err := service.Create(ctx, "Another Grace", email); !common.Is(err, common.CodeConflict) {
			t.Errorf("create %q error = %v, want conflict", email, err)
		}
	}
}

func TestCandidateCreateValidation(t *testing.T) {
	service, _ := newCandidateService()
	ctx := context.Background()

	if _, err := service.Create(ctx, "", "ok@example.com"); !common.Is(err, common.CodeValidation) {
		t.Errorf("blank name error = %v, want validation", err)
	}
	if _, err := service.Create(ctx, "Grace Hopper", "not-an-email"); !common.Is(err, common.CodeValidation) {
		t.Errorf("bad email error = %v, want validation", err)
	}
}

func TestCandidateUpdateOwnEmailIsNotAConflict(t *testing.T) {
	service, _ := newCandidateService()
	ctx := context.Background()

	created, err := service.Create(ctx, "Grace Hopper", "grace@example.com")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	same := "Grace@Example.com"
	updated, err := service.Update(ctx, created.ID, nil, &same)
	if err != nil {
		t.Fatalf("update with own email: %v", err)
	}
	if updated.Email != same {
		t.Errorf("email = %q, want %q", updated.Email, same)
	}
}

func TestCandidateUpdateEmailConflictsWithOther(t *testing.T) {
	service, _ := newCandidateService()
	ctx := context.Background()

	if _, err := service.Create(ctx, "Grace Hopper", "grace@example.com"); err != nil {
		t.Fatalf("create first: %v", err)
	}
	second, err := service.Create(ctx, "Ada Lovelace", "ada@example.com")
	if err != nil {
		t.Fatalf("create second: %v", err)
	}
	taken := "GRACE@example.com"
	if _, err := service.Update(ctx, second.ID, nil, &taken); !common.Is(err, common.CodeConflict) {
		t.Fatalf("update error = %v, want conflict", err)
	}
}

func TestCandidateArchiveHidesRecord(t *testing.T) {
	service, _ := newCandidateService()
	ctx := context.Background()

	created, err := service.Create(ctx, "Grace Hopper", "grace@example.com")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := service.Archive(ctx, created.ID); err != nil {
		t.Fatalf("archive: %v", err)
	}
	if _, err := service.Get(ctx, created.ID); !common.Is(err, common.CodeNotFound) {
		t.Errorf("get archived = %v, want not_found", err)
	}
	if _, err := service.Archive(ctx, created.ID); !common.Is(err, common.CodeNotFound) {
		t.Errorf("second archive = %v, want not_found", err)
	}
	page, err := service.List(ctx, candidate.ListFilter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(page.Items) != 0 {
		t.Errorf("archived candidate still listed: %+v", page.Items)
	}
}

func TestCandidateListClampsLimit(t *testing.T) {
	service, _ := newCandidateService()

	page, err := service.List(context.Background(), candidate.ListFilter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if page.Limit != 20 {
		t.Errorf("default limit = %d, want 20", page.Limit)
	}

	filter := candidate.ListFilter{Limit: 500}
	page, err = service.List(context.Background(), filter)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if page.Limit != 100 {
		t.Errorf("clamped limit = %d, want 100", page.Limit)
	}
}
