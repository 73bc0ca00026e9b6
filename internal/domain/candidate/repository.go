package candidate

import "context"

type Repository interface {
	Create(ctx context.Context, c Candidate) (*Candidate, error)
	GetByID(ctx context.Context, id int64) (*Candidate, error)
	// FindByEmail matches case-insensitively. excludeID skips one record so an
	// update does not conflict with itself; pass 0 to match all.
	FindByEmail(ctx context.Context, email string, excludeID int64) (*Candidate, error)
	Update(ctx context.Context, c Candidate) (*Candidate, error)
	Archive(ctx context.Context, id int64) (*Candidate, error)
	List(ctx context.Context, filter ListFilter) ([]ListItem, int64, error)
}
