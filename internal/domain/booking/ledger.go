package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/clinicdesk/clinicdesk/internal/platform/db"
	"github.com/clinicdesk/clinicdesk/pkg/clock"
)

// Ledger is the read-only view the availability engine consumes. Both reads
// run inside one read-only REPEATABLE READ transaction, so the booking set
// and the time-block set come from the same snapshot; a write landing
// between the two queries cannot show up in one set but not the other.
type Ledger struct {
	pool     *pgxpool.Pool
	bookings Repository
	blocks   TimeBlockRepository
}

func NewLedger(pool *pgxpool.Pool, bookings Repository, blocks TimeBlockRepository) *Ledger {
	return &Ledger{pool: pool, bookings: bookings, blocks: blocks}
}

// BusyIntervalsFor returns every committed interval on the branch's calendar
// for the date: bookings in a non-excluded status plus all time blocks.
func (l *Ledger) BusyIntervalsFor(ctx context.Context, branchID int64, date time.Time) ([]clock.Interval, error) {
	var busy []clock.Interval
	err := db.InSnapshot(ctx, l.pool, func(ctx context.Context) error {
		bookings, err := l.bookings.ListActiveByBranchDate(ctx, branchID, date)
		if err != nil {
			return fmt.Errorf("list bookings: %w", err)
		}
		blocks, err := l.blocks.ListByBranchDate(ctx, branchID, date)
		if err != nil {
			return fmt.Errorf("list time blocks: %w", err)
		}
		busy = make([]clock.Interval, 0, len(bookings)+len(blocks))
		for _, b := range bookings {
			busy = append(busy, b.Interval())
		}
		for _, t := range blocks {
			busy = append(busy, t.Interval())
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return busy, nil
}
