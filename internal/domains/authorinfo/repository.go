package authorinfo

import (
	"context"
)

// Repository defines data access for the info_autores table. Same
// contract as the author repository: one statement per call, one
// transaction per mutation, FindByID returns (nil, nil) on no row.
type Repository interface {
	Create(ctx context.Context, i *AuthorInfo) (*AuthorInfo, error)
	Update(ctx context.Context, i *AuthorInfo) (*AuthorInfo, error)
	Delete(ctx context.Context, id int64) error
	FindByID(ctx context.Context, id int64) (*AuthorInfo, error)
	ListAll(ctx context.Context) ([]AuthorInfo, error)

	// FindByTerm matches the role column against '%term%'.
	FindByTerm(ctx context.Context, term string) ([]AuthorInfo, error)

	Count(ctx context.Context) (int64, error)
}
