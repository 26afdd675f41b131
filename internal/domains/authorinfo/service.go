package authorinfo

import (
	"context"
)

// Service mirrors the repository; see the author domain for the shared
// not-found and update policies.
type Service interface {
	Create(ctx context.Context, req *CreateAuthorInfoRequest) (*AuthorInfo, error)
	Update(ctx context.Context, req *UpdateAuthorInfoRequest) (*AuthorInfo, error)
	Delete(ctx context.Context, id int64) error
	FindByID(ctx context.Context, id int64) (*AuthorInfo, error)
	ListAll(ctx context.Context) ([]AuthorInfo, error)
	FindByTerm(ctx context.Context, term string) ([]AuthorInfo, error)
	Count(ctx context.Context) (int64, error)
}
