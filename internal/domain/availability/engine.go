package availability

import (
	"github.com/clinicdesk/clinicdesk/internal/domain/branch"
	"github.com/clinicdesk/clinicdesk/pkg/clock"
)

// Status classifies an availability result. Unscheduled and closed days
// yield an empty partition and are normal outcomes, never errors.
type Status string

const (
	StatusOK          Status = "ok"
	StatusUnscheduled Status = "unscheduled"
	StatusClosed      Status = "closed"
)

// Result partitions the candidate-slot catalog for one (branch, date,
// duration) query. Available and Blocked preserve catalog order, are
// disjoint, and together cover the whole catalog whenever Status is ok.
type Result struct {
	Status    Status          `json:"status"`
	Message   string          `json:"message,omitempty"`
	Available []clock.Minutes `json:"available_slots"`
	Blocked   []clock.Minutes `json:"blocked_slots"`
}

// Compute partitions the catalog against one day's schedule and the busy
// intervals already on the calendar. It is a pure function: no clock reads,
// no storage, no side effects.
//
// A slot is blocked when it falls outside the branch's operating hours
// (starts before opening or would run past closing), when it overlaps the
// break window, or when it overlaps any busy interval. Out-of-hours slots
// are reported blocked, never dropped from the partition. All checks use
// the same half-open overlap semantics, so a slot that merely touches a
// boundary is not blocked.
func Compute(sched *branch.DaySchedule, catalog []clock.Minutes, durationMinutes int, busy []clock.Interval) Result {
	if sched == nil {
		return Result{
			Status:    StatusUnscheduled,
			Message:   "no operating hours configured for this day",
			Available: []clock.Minutes{},
			Blocked:   []clock.Minutes{},
		}
	}
	if !sched.IsOpen {
		return Result{
			Status:    StatusClosed,
			Message:   "branch is closed on this day",
			Available: []clock.Minutes{},
			Blocked:   []clock.Minutes{},
		}
	}

	res := Result{
		Status:    StatusOK,
		Available: make([]clock.Minutes, 0, len(catalog)),
		Blocked:   make([]clock.Minutes, 0, len(catalog)),
	}
	for _, s := range catalog {
		candidate := clock.Interval{Start: s, End: s + clock.Minutes(durationMinutes)}
		if slotBlocked(sched, candidate, busy) {
			res.Blocked = append(res.Blocked, s)
		} else {
			res.Available = append(res.Available, s)
		}
	}
	return res
}

func slotBlocked(sched *branch.DaySchedule, candidate clock.Interval, busy []clock.Interval) bool {
	if candidate.Start < sched.OpenTime || candidate.End > sched.CloseTime {
		return true
	}
	if sched.HasBreak() {
		brk := clock.Interval{Start: *sched.BreakStart, End: *sched.BreakEnd}
		if candidate.Overlaps(brk) {
			return true
		}
	}
	for _, b := range busy {
		if candidate.Overlaps(b) {
			return true
		}
	}
	return false
}
