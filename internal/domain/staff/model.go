package staff

import (
	"time"

	"github.com/google/uuid"
)

// Member maps to the staff table.
type Member struct {
	ID        uuid.UUID `db:"id" json:"id"`
	BranchID  int64     `db:"branch_id" json:"branch_id"`
	Name      string    `db:"name" json:"name"`
	Role      string    `db:"role" json:"role"`
	Email     *string   `db:"email" json:"email,omitempty"`
	Phone     *string   `db:"phone" json:"phone,omitempty"`
	Active    bool      `db:"active" json:"active"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
