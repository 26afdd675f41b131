package author

import (
	"context"
)

// Service defines the business operations for the Author domain. The
// logic is a thin pass-through to the repository; the interface exists
// so handlers can be tested against a fake and so any future rule has
// a home outside the data layer.
type Service interface {
	Create(ctx context.Context, req *CreateAuthorRequest) (*Author, error)

	// Update applies a full-record update. Policy: an unknown id is
	// rejected with ErrAuthorNotFound, never silently inserted.
	Update(ctx context.Context, req *UpdateAuthorRequest) (*Author, error)

	// Delete performs an existence-checked delete; deleting an unknown
	// or already-deleted id returns ErrAuthorNotFound.
	Delete(ctx context.Context, id int64) error

	// FindByID returns (nil, nil) when the id matches no record.
	FindByID(ctx context.Context, id int64) (*Author, error)

	ListAll(ctx context.Context) ([]Author, error)

	// FindByTerm matches name OR surname against '%term%'; the empty
	// term returns the same set as ListAll.
	FindByTerm(ctx context.Context, term string) ([]Author, error)

	Count(ctx context.Context) (int64, error)
}
