package authorinfo

import "errors"

var (
	ErrAuthorInfoNotFound  = errors.New("author info not found")
	ErrConstraintViolation = errors.New("author info violates a storage constraint")
)

func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrAuthorInfoNotFound):
		return "AUTHOR_INFO_NOT_FOUND"
	case errors.Is(err, ErrConstraintViolation):
		return "CONSTRAINT_VIOLATION"
	default:
		return "INTERNAL_ERROR"
	}
}

func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrAuthorInfoNotFound):
		return 404
	case errors.Is(err, ErrConstraintViolation):
		return 409
	default:
		return 500
	}
}
