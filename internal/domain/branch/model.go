package branch

import (
	"fmt"
	"time"

	"github.com/clinicdesk/clinicdesk/pkg/clock"
)

// Branch maps to the branches table.
type Branch struct {
	ID        int64     `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Address   *string   `db:"address" json:"address,omitempty"`
	Phone     *string   `db:"phone" json:"phone,omitempty"`
	Active    bool      `db:"active" json:"active"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// DaySchedule maps to the branch_schedules table: one row per
// (branch, weekday) holding that day's operating template. Weekday uses
// Sunday=0 through Saturday=6, matching time.Weekday.
type DaySchedule struct {
	ID         int64          `db:"id" json:"id"`
	BranchID   int64          `db:"branch_id" json:"branch_id"`
	Weekday    int            `db:"weekday" json:"weekday"`
	OpenTime   clock.Minutes  `db:"open_time" json:"open_time"`
	CloseTime  clock.Minutes  `db:"close_time" json:"close_time"`
	BreakStart *clock.Minutes `db:"break_start" json:"break_start,omitempty"`
	BreakEnd   *clock.Minutes `db:"break_end" json:"break_end,omitempty"`
	IsOpen     bool           `db:"is_open" json:"is_open"`
	CreatedAt  time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time      `db:"updated_at" json:"updated_at"`
}

// Validate checks the operating-template invariants. A break window needs
// both edges and must sit inside the open hours.
func (d *DaySchedule) Validate() error {
	if d.Weekday < 0 || d.Weekday > 6 {
		return fmt.Errorf("weekday must be 0 (Sunday) through 6 (Saturday), got %d", d.Weekday)
	}
	if !d.OpenTime.Valid() {
		return fmt.Errorf("open_time out of range: %s", d.OpenTime)
	}
	if !d.CloseTime.Valid() {
		return fmt.Errorf("close_time out of range: %s", d.CloseTime)
	}
	if d.OpenTime >= d.CloseTime {
		return fmt.Errorf("open_time %s must be before close_time %s", d.OpenTime, d.CloseTime)
	}
	if (d.BreakStart == nil) != (d.BreakEnd == nil) {
		return fmt.Errorf("break_start and break_end must both be set or both be empty")
	}
	if d.BreakStart != nil {
		if *d.BreakStart >= *d.BreakEnd {
			return fmt.Errorf("break_start %s must be before break_end %s", *d.BreakStart, *d.BreakEnd)
		}
		if *d.BreakStart < d.OpenTime || *d.BreakEnd > d.CloseTime {
			return fmt.Errorf("break window %s-%s must fall within open hours %s-%s",
				*d.BreakStart, *d.BreakEnd, d.OpenTime, d.CloseTime)
		}
	}
	return nil
}

// HasBreak reports whether the day carries a break window.
func (d *DaySchedule) HasBreak() bool {
	return d.BreakStart != nil && d.BreakEnd != nil
}
