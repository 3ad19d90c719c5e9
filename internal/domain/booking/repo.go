package booking

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned by GetByID when no row exists for the given id.
var ErrNotFound = errors.New("booking not found")

type Repository interface {
	Create(ctx context.Context, b *Booking) error
	GetByID(ctx context.Context, id uuid.UUID) (*Booking, error)
	Update(ctx context.Context, b *Booking) error
	ListByBranchDate(ctx context.Context, branchID int64, date time.Time) ([]*Booking, error)
	// ListActiveByBranchDate excludes cancelled and rejected bookings.
	ListActiveByBranchDate(ctx context.Context, branchID int64, date time.Time) ([]*Booking, error)
	ListByBranch(ctx context.Context, branchID int64, limit, offset int) ([]*Booking, int, error)
}

type TimeBlockRepository interface {
	Create(ctx context.Context, t *TimeBlock) error
	GetByID(ctx context.Context, id uuid.UUID) (*TimeBlock, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ListByBranchDate(ctx context.Context, branchID int64, date time.Time) ([]*TimeBlock, error)
}
