package prescription

import (
	"time"

	"github.com/google/uuid"
)

// Prescription maps to the prescriptions table.
type Prescription struct {
	ID          uuid.UUID `db:"id" json:"id"`
	BranchID    int64     `db:"branch_id" json:"branch_id"`
	PatientName string    `db:"patient_name" json:"patient_name"`
	StaffID     uuid.UUID `db:"staff_id" json:"staff_id"`
	IssuedAt    time.Time `db:"issued_at" json:"issued_at"`
	Notes       *string   `db:"notes" json:"notes,omitempty"`
	Items       []*Item   `db:"-" json:"items,omitempty"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// Item maps to the prescription_items table.
type Item struct {
	ID             uuid.UUID `db:"id" json:"id"`
	PrescriptionID uuid.UUID `db:"prescription_id" json:"prescription_id"`
	DrugName       string    `db:"drug_name" json:"drug_name"`
	Dosage         string    `db:"dosage" json:"dosage"`
	Frequency      string    `db:"frequency" json:"frequency"`
	DurationDays   int       `db:"duration_days" json:"duration_days"`
	Instructions   *string   `db:"instructions" json:"instructions,omitempty"`
}
