package treatment

import (
	"time"

	"github.com/google/uuid"
)

// Treatment maps to the treatments table.
type Treatment struct {
	ID              uuid.UUID `db:"id" json:"id"`
	Name            string    `db:"name" json:"name"`
	Description     *string   `db:"description" json:"description,omitempty"`
	DurationMinutes int       `db:"duration_minutes" json:"duration_minutes"`
	Active          bool      `db:"active" json:"active"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time `db:"updated_at" json:"updated_at"`
}

// BranchPrice maps to the branch_treatments table: the price a specific
// branch charges for a treatment. A missing or inactive row means the
// branch does not offer the treatment; a price of zero is a real price.
type BranchPrice struct {
	BranchID    int64     `db:"branch_id" json:"branch_id"`
	TreatmentID uuid.UUID `db:"treatment_id" json:"treatment_id"`
	PriceCents  int64     `db:"price_cents" json:"price_cents"`
	Active      bool      `db:"active" json:"active"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}
