package availability

import (
	"context"
	"fmt"
	"time"

	"github.com/clinicdesk/clinicdesk/internal/domain/branch"
	"github.com/clinicdesk/clinicdesk/pkg/clock"
)

// LedgerReader supplies the busy intervals already committed on a branch's
// calendar for one date: non-cancelled bookings plus administrative time
// blocks, observed at a single snapshot.
type LedgerReader interface {
	BusyIntervalsFor(ctx context.Context, branchID int64, date time.Time) ([]clock.Interval, error)
}

type Service struct {
	schedules branch.ScheduleReader
	ledger    LedgerReader
	catalog   []clock.Minutes
}

func NewService(schedules branch.ScheduleReader, ledger LedgerReader, catalog []clock.Minutes) *Service {
	return &Service{schedules: schedules, ledger: ledger, catalog: catalog}
}

// Catalog returns the deployment-wide candidate-slot list.
func (s *Service) Catalog() []clock.Minutes { return s.catalog }

// ComputeAvailability resolves the day's schedule and busy intervals, then
// runs the pure engine over the slot catalog. Storage failures surface as
// errors; they are never folded into an all-free or all-blocked answer.
func (s *Service) ComputeAvailability(ctx context.Context, branchID int64, date time.Time, durationMinutes int) (*Result, error) {
	if branchID <= 0 {
		return nil, fmt.Errorf("branch id must be positive")
	}
	if durationMinutes <= 0 {
		return nil, fmt.Errorf("duration must be positive, got %d", durationMinutes)
	}

	sched, err := s.schedules.ScheduleFor(ctx, branchID, date)
	if err != nil {
		return nil, fmt.Errorf("read schedule: %w", err)
	}

	// Unscheduled and closed days short-circuit before the ledger read.
	if sched == nil || !sched.IsOpen {
		res := Compute(sched, s.catalog, durationMinutes, nil)
		return &res, nil
	}

	busy, err := s.ledger.BusyIntervalsFor(ctx, branchID, date)
	if err != nil {
		return nil, fmt.Errorf("read booking ledger: %w", err)
	}

	res := Compute(sched, s.catalog, durationMinutes, busy)
	return &res, nil
}
