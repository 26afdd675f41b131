package author

import "errors"

var (
	// ErrAuthorNotFound covers lookups, updates and deletes that hit
	// no row. Updates never insert on a missing id.
	ErrAuthorNotFound = errors.New("author not found")

	// ErrConstraintViolation maps unique/not-null violations reported
	// by the storage engine.
	ErrConstraintViolation = errors.New("author violates a storage constraint")
)

// ToErrorCode converts a domain error to the API error code.
func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrAuthorNotFound):
		return "AUTHOR_NOT_FOUND"
	case errors.Is(err, ErrConstraintViolation):
		return "CONSTRAINT_VIOLATION"
	default:
		return "INTERNAL_ERROR"
	}
}

// ToHTTPStatus converts a domain error to an HTTP status code.
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrAuthorNotFound):
		return 404
	case errors.Is(err, ErrConstraintViolation):
		return 409
	default:
		return 500
	}
}
