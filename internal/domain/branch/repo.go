package branch

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, b *Branch) error
	GetByID(ctx context.Context, id int64) (*Branch, error)
	Update(ctx context.Context, b *Branch) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, limit, offset int) ([]*Branch, int, error)
}

// ScheduleRepository stores the weekly operating template. GetByBranchDay
// returns (nil, nil) when no row exists for the pair, so callers can tell
// "unscheduled" apart from a storage failure.
type ScheduleRepository interface {
	Upsert(ctx context.Context, d *DaySchedule) error
	GetByBranchDay(ctx context.Context, branchID int64, weekday int) (*DaySchedule, error)
	ListByBranch(ctx context.Context, branchID int64) ([]*DaySchedule, error)
	Delete(ctx context.Context, branchID int64, weekday int) error
}

// ScheduleReader is the read-only view the availability engine consumes.
type ScheduleReader interface {
	ScheduleFor(ctx context.Context, branchID int64, date time.Time) (*DaySchedule, error)
}
