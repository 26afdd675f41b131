package authorinfo

const (
	MaxRoleLength = 45
	MaxBioLength  = 255
)

// AuthorInfo represents one row of the info_autores table. There is no
// relation to the autores table; the two entities are independent.
type AuthorInfo struct {
	ID   int64   `json:"id" db:"id"`
	Role string  `json:"role" db:"role"`
	Bio  *string `json:"bio" db:"bio"`
}
