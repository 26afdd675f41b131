package author

// Storage constraints for the autores table. The database enforces
// NOT NULL and length limits; the DTO validators mirror them so most
// violations are rejected before reaching the storage boundary.
const (
	MaxNameLength    = 45
	MaxSurnameLength = 45
)

// Author represents one row of the autores table. The id is assigned
// by the database on insert and never changes afterwards; identity is
// by id once assigned.
type Author struct {
	ID      int64  `json:"id" db:"id"`
	Name    string `json:"name" db:"name"`
	Surname string `json:"surname" db:"surname"`
}
