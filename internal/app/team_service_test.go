package app

import (
	"context"
	"testing"

	"talenttrack/internal/common"
	"talenttrack/internal/domain/position"
)

func TestTeamCreateKeepsSubmittedCase(t *testing.T) {
	teams := newFakeTeamRepo()
	service := NewTeamService(teams, newFakePositionRepo())

	created, err := service.Create(context.Background(), "Platform Engineering")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Name != "Platform Engineering" {
		t.Errorf("name = %q, want submitted casing preserved", created.Name)
	}
}

func TestTeamCreateNameConflictIsCaseInsensitive(t *testing.T) {
	teams := newFakeTeamRepo()
	service := NewTeamService(teams, newFakePositionRepo())
	ctx := context.Background()

	if _, err := service.Create(ctx, "Platform Engineering"); err != nil {
		t.Fatalf("create: %v", err)
	}
	for _, name := range []string{"Platform Engineering", "platform engineering", "PLATFORM ENGINEERING"} {
		if _, err := service.Create(ctx, name); !common.Is(err, common.CodeConflict) {
			t.Errorf("create %q error = %v, want conflict", name, err)
		}
	}
}

func TestTeamCreateRejectsBlankName(t *testing.T) {
	service := NewTeamService(newFakeTeamRepo(), newFakePositionRepo())

	for _, name := range []string{"", "   "} {
		if _, err := service.Create(context.Background(), name); !common.Is(err, common.CodeValidation) {
			t.Errorf("create %q error = %v, want validation", name, err)
		}
	}
}

func TestTeamDeleteBlockedByArchivedPosition(t *testing.T) {
	teams := newFakeTeamRepo()
	positions := newFakePositionRepo()
	service := NewTeamService(teams, positions)
	ctx := context.Background()

	created, err := service.Create(ctx, "Data")
	if err != nil {
		t.Fatalf("create team: %v", err)
	}
	pos, err := positions.Create(ctx, position.Position{Title: "Analyst", Status: position.StatusOpen, TeamID: created.ID})
	if err != nil {
		t.Fatalf("create position: %v", err)
	}
	if _, err := positions.Archive(ctx, pos.ID); err != nil {
		t.Fatalf("archive position: %v", err)
	}

	if err := service.Delete(ctx, created.ID); !common.Is(err, common.CodeConflict) {
		t.Fatalf("delete error = %v, want conflict", err)
	}
}

func TestTeamDeleteWithoutPositions(t *testing.T) {
	teams := newFakeTeamRepo()
	service := NewTeamService(teams, newFakePositionRepo())
	ctx := context.Background()

	created, err := service.Create(ctx, "Data")
	if err != nil {
		t.Fatalf("create team: %v", err)
	}
	if err := service.Delete(ctx, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := teams.GetByID(ctx, created.ID); !common.Is(err, common.CodeNotFound) {
		t.Errorf("get after delete = %v, want not_found", err)
	}
}

func TestTeamDeleteMissingNotFound(t *testing.T) {
	service := NewTeamService(newFakeTeamRepo(), newFakePositionRepo())

	if err := service.Delete(context.Background(), 42); !common.Is(err, common.CodeNotFound) {
		t.Fatalf("delete error = %v, want not_found", err)
	}
}
