package team

import "context"

type Repository interface {
	Create(ctx context.Context, t Team) (*Team, error)
	GetByID(ctx context.Context, id int64) (*Team, error)
	// FindByName matches case-insensitively against any team, archived included.
	FindByName(ctx context.Context, name string) (*Team, error)
	ListActive(ctx context.Context) ([]Team, error)
	Delete(ctx context.Context, id int64) error
}
