package branch

import (
	"context"
	"fmt"
	"time"
)

type Service struct {
	branches  Repository
	schedules ScheduleRepository
}

func NewService(branches Repository, schedules ScheduleRepository) *Service {
	return &Service{branches: branches, schedules: schedules}
}

// -- Branch --

func (s *Service) CreateBranch(ctx context.Context, b *Branch) error {
	if b.Name == "" {
		return fmt.Errorf("name is required")
	}
	b.Active = true
	return s.branches.Create(ctx, b)
}

func (s *Service) GetBranch(ctx context.Context, id int64) (*Branch, error) {
	return s.branches.GetByID(ctx, id)
}

func (s *Service) UpdateBranch(ctx context.Context, b *Branch) error {
	if b.Name == "" {
		return fmt.Errorf("name is required")
	}
	return s.branches.Update(ctx, b)
}

func (s *Service) DeactivateBranch(ctx context.Context, id int64) error {
	return s.branches.Delete(ctx, id)
}

func (s *Service) ListBranches(ctx context.Context, limit, offset int) ([]*Branch, int, error) {
	return s.branches.List(ctx, limit, offset)
}

// -- Weekly schedule --

func (s *Service) UpsertSchedule(ctx context.Context, d *DaySchedule) error {
	if d.BranchID <= 0 {
		return fmt.Errorf("branch_id is required")
	}
	if err := d.Validate(); err != nil {
		return err
	}
	return s.schedules.Upsert(ctx, d)
}

func (s *Service) WeeklySchedule(ctx context.Context, branchID int64) ([]*DaySchedule, error) {
	return s.schedules.ListByBranch(ctx, branchID)
}

func (s *Service) DeleteSchedule(ctx context.Context, branchID int64, weekday int) error {
	if weekday < 0 || weekday > 6 {
		return fmt.Errorf("weekday must be 0 through 6, got %d", weekday)
	}
	return s.schedules.Delete(ctx, branchID, weekday)
}

// ScheduleFor resolves the operating template covering the given date.
// The weekday is derived with Go's Sunday=0 numbering, the same numbering
// the stored templates use. A nil schedule with a nil error means no
// template row exists for that day.
func (s *Service) ScheduleFor(ctx context.Context, branchID int64, date time.Time) (*DaySchedule, error) {
	return s.schedules.GetByBranchDay(ctx, branchID, int(date.Weekday()))
}
