package author

import (
	"context"
)

// Repository defines data access for the autores table. Each method
// issues exactly one SQL statement; mutations run in their own
// transaction.
type Repository interface {
	// Create inserts the record and returns it with the assigned id.
	// Errors: ErrConstraintViolation on unique/not-null violations.
	Create(ctx context.Context, a *Author) (*Author, error)

	// Update overwrites every field of the row matching a.ID.
	// Errors: ErrAuthorNotFound if no row matches - a missing id never
	// results in an insert.
	Update(ctx context.Context, a *Author) (*Author, error)

	// Delete removes the row matching id.
	// Errors: ErrAuthorNotFound if no row exists, so a second delete of
	// the same id reports not-found rather than succeeding silently.
	Delete(ctx context.Context, id int64) error

	// FindByID returns the matching record, or (nil, nil) when no row
	// exists. A missing id is a well-defined empty result, not an error.
	FindByID(ctx context.Context, id int64) (*Author, error)

	// ListAll returns every row, ordered by id.
	ListAll(ctx context.Context) ([]Author, error)

	// FindByTerm returns every row whose name or surname contains term
	// as a case-respecting substring (LIKE '%term%'). An empty term
	// matches every row.
	FindByTerm(ctx context.Context, term string) ([]Author, error)

	// Count returns the total number of rows.
	Count(ctx context.Context) (int64, error)
}
