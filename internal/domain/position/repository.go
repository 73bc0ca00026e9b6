package position

import "context"

type Repository interface {
	Create(ctx context.Context, p Position) (*Position, error)
	GetByID(ctx context.Context, id int64) (*Position, error)
	Update(ctx context.Context, p Position) (*Position, error)
	Archive(ctx context.Context, id int64) (*Position, error)
	List(ctx context.Context, filter ListFilter) ([]ListItem, int64, error)
	// ExistsForTeam counts archived positions too: a soft-deleted position
	// still pins its team.
	ExistsForTeam(ctx context.Context, teamID int64) (bool, error)
}
