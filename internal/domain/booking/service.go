package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ErrConflict is returned when a booking's interval overlaps an existing
// commitment on the same branch and date.
var ErrConflict = errors.New("time slot conflicts with an existing commitment")

// TxRunner executes fn inside a transaction carried through the context.
// The production runner wraps db.InTx over the pool; tests pass fn through.
type TxRunner func(ctx context.Context, fn func(ctx context.Context) error) error

// Allowed status transitions. Terminal statuses have no entry.
var statusTransitions = map[string][]string{
	StatusPending:   {StatusConfirmed, StatusCancelled, StatusRejected},
	StatusConfirmed: {StatusCompleted, StatusCancelled, StatusNoShow},
}

type Service struct {
	bookings Repository
	blocks   TimeBlockRepository
	inTx     TxRunner
}

func NewService(bookings Repository, blocks TimeBlockRepository, inTx TxRunner) *Service {
	return &Service{bookings: bookings, blocks: blocks, inTx: inTx}
}

func (s *Service) validateBooking(b *Booking) error {
	if b.BranchID <= 0 {
		return fmt.Errorf("branch_id is required")
	}
	if b.PatientName == "" {
		return fmt.Errorf("patient_name is required")
	}
	if b.Date.IsZero() {
		return fmt.Errorf("date is required")
	}
	if !b.StartTime.Valid() || !b.EndTime.Valid() {
		return fmt.Errorf("start_time and end_time must fall within one day")
	}
	if b.StartTime >= b.EndTime {
		return fmt.Errorf("start_time %s must be before end_time %s", b.StartTime, b.EndTime)
	}
	return nil
}

// checkConflicts re-reads the day's commitments and rejects the candidate
// interval if it overlaps any of them. Run inside the same transaction as
// the write: an availability result the caller read earlier may already be
// stale.
func (s *Service) checkConflicts(ctx context.Context, candidate *Booking) error {
	existing, err := s.bookings.ListActiveByBranchDate(ctx, candidate.BranchID, candidate.Date)
	if err != nil {
		return fmt.Errorf("list bookings: %w", err)
	}
	for _, b := range existing {
		if b.ID == candidate.ID {
			continue
		}
		if b.Interval().Overlaps(candidate.Interval()) {
			return ErrConflict
		}
	}
	blocks, err := s.blocks.ListByBranchDate(ctx, candidate.BranchID, candidate.Date)
	if err != nil {
		return fmt.Errorf("list time blocks: %w", err)
	}
	for _, t := range blocks {
		if t.Interval().Overlaps(candidate.Interval()) {
			return ErrConflict
		}
	}
	return nil
}

func (s *Service) CreateBooking(ctx context.Context, b *Booking) error {
	if err := s.validateBooking(b); err != nil {
		return err
	}
	if b.Status == "" {
		b.Status = StatusPending
	}
	if b.Status != StatusPending && b.Status != StatusConfirmed {
		return fmt.Errorf("new booking status must be pending or confirmed, got %s", b.Status)
	}
	return s.inTx(ctx, func(ctx context.Context) error {
		if err := s.checkConflicts(ctx, b); err != nil {
			return err
		}
		return s.bookings.Create(ctx, b)
	})
}

func (s *Service) GetBooking(ctx context.Context, id uuid.UUID) (*Booking, error) {
	return s.bookings.GetByID(ctx, id)
}

// Reschedule moves a booking to a new date and interval, re-validating
// occupancy inside the update transaction.
func (s *Service) Reschedule(ctx context.Context, id uuid.UUID, date time.Time, b *Booking) (*Booking, error) {
	current, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !current.Occupies() {
		return nil, fmt.Errorf("cannot reschedule a %s booking", current.Status)
	}
	current.Date = date
	current.StartTime = b.StartTime
	current.EndTime = b.EndTime
	if err := s.validateBooking(current); err != nil {
		return nil, err
	}
	err = s.inTx(ctx, func(ctx context.Context) error {
		if err := s.checkConflicts(ctx, current); err != nil {
			return err
		}
		return s.bookings.Update(ctx, current)
	})
	if err != nil {
		return nil, err
	}
	return current, nil
}

// UpdateStatus applies a status transition. Completed, cancelled, rejected
// and no-show are terminal.
func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, newStatus string) (*Booking, error) {
	if !validStatuses[newStatus] {
		return nil, fmt.Errorf("invalid booking status: %s", newStatus)
	}
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	allowed := false
	for _, next := range statusTransitions[b.Status] {
		if next == newStatus {
			allowed = true
			break
		}
	}
	if !allowed {
		return nil, fmt.Errorf("cannot transition booking from %s to %s", b.Status, newStatus)
	}
	b.Status = newStatus
	if err := s.bookings.Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *Service) ListBookings(ctx context.Context, branchID int64, limit, offset int) ([]*Booking, int, error) {
	return s.bookings.ListByBranch(ctx, branchID, limit, offset)
}

func (s *Service) ListBookingsForDate(ctx context.Context, branchID int64, date time.Time) ([]*Booking, error) {
	return s.bookings.ListByBranchDate(ctx, branchID, date)
}

// -- Time blocks --

func (s *Service) CreateTimeBlock(ctx context.Context, t *TimeBlock) error {
	if t.BranchID <= 0 {
		return fmt.Errorf("branch_id is required")
	}
	if t.Date.IsZero() {
		return fmt.Errorf("date is required")
	}
	if !t.StartTime.Valid() || !t.EndTime.Valid() {
		return fmt.Errorf("start_time and end_time must fall within one day")
	}
	if t.StartTime >= t.EndTime {
		return fmt.Errorf("start_time %s must be before end_time %s", t.StartTime, t.EndTime)
	}
	return s.blocks.Create(ctx, t)
}

func (s *Service) GetTimeBlock(ctx context.Context, id uuid.UUID) (*TimeBlock, error) {
	return s.blocks.GetByID(ctx, id)
}

func (s *Service) DeleteTimeBlock(ctx context.Context, id uuid.UUID) error {
	return s.blocks.Delete(ctx, id)
}

func (s *Service) ListTimeBlocks(ctx context.Context, branchID int64, date time.Time) ([]*TimeBlock, error) {
	return s.blocks.ListByBranchDate(ctx, branchID, date)
}
