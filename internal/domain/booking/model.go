package booking

import (
	"time"

	"github.com/google/uuid"

	"github.com/clinicdesk/clinicdesk/pkg/clock"
)

// Booking statuses. Cancelled and rejected bookings release their slot;
// every other status occupies the calendar.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
	StatusRejected  = "rejected"
	StatusNoShow    = "no_show"
)

var validStatuses = map[string]bool{
	StatusPending: true, StatusConfirmed: true, StatusCompleted: true,
	StatusCancelled: true, StatusRejected: true, StatusNoShow: true,
}

var excludedStatuses = map[string]bool{
	StatusCancelled: true,
	StatusRejected:  true,
}

// Booking maps to the bookings table. End times are always persisted
// explicitly, never derived from a duration at read time.
type Booking struct {
	ID          uuid.UUID     `db:"id" json:"id"`
	BranchID    int64         `db:"branch_id" json:"branch_id"`
	PatientName string        `db:"patient_name" json:"patient_name"`
	TreatmentID *uuid.UUID    `db:"treatment_id" json:"treatment_id,omitempty"`
	Date        time.Time     `db:"date" json:"date"`
	StartTime   clock.Minutes `db:"start_time" json:"start_time"`
	EndTime     clock.Minutes `db:"end_time" json:"end_time"`
	Status      string        `db:"status" json:"status"`
	Notes       *string       `db:"notes" json:"notes,omitempty"`
	CreatedAt   time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time     `db:"updated_at" json:"updated_at"`
}

// Occupies reports whether the booking counts against the calendar.
func (b *Booking) Occupies() bool {
	return !excludedStatuses[b.Status]
}

// Interval returns the booking's half-open time range.
func (b *Booking) Interval() clock.Interval {
	return clock.Interval{Start: b.StartTime, End: b.EndTime}
}

// TimeBlock maps to the time_blocks table: an administrative reservation
// that always occupies the calendar. Time blocks have no status and cannot
// be cancelled, only deleted.
type TimeBlock struct {
	ID        uuid.UUID     `db:"id" json:"id"`
	BranchID  int64         `db:"branch_id" json:"branch_id"`
	Date      time.Time     `db:"date" json:"date"`
	StartTime clock.Minutes `db:"start_time" json:"start_time"`
	EndTime   clock.Minutes `db:"end_time" json:"end_time"`
	Reason    *string       `db:"reason" json:"reason,omitempty"`
	CreatedAt time.Time     `db:"created_at" json:"created_at"`
}

// Interval returns the block's half-open time range.
func (t *TimeBlock) Interval() clock.Interval {
	return clock.Interval{Start: t.StartTime, End: t.EndTime}
}
