package booking

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/clinicdesk/clinicdesk/internal/platform/db"
	"github.com/clinicdesk/clinicdesk/pkg/clock"
)

type queryable interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
}

// =========== Booking Repository ===========

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

func (r *repoPG) conn(ctx context.Context) queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.pool
}

const bookingCols = `id, branch_id, patient_name, treatment_id, date, start_time, end_time, status, notes, created_at, updated_at`

func (r *repoPG) scanBooking(row pgx.Row) (*Booking, error) {
	var b Booking
	var start, end int
	err := row.Scan(&b.ID, &b.BranchID, &b.PatientName, &b.TreatmentID, &b.Date,
		&start, &end, &b.Status, &b.Notes, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}
	b.StartTime = clock.Minutes(start)
	b.EndTime = clock.Minutes(end)
	return &b, nil
}

func (r *repoPG) Create(ctx context.Context, b *Booking) error {
	b.ID = uuid.New()
	return r.conn(ctx).QueryRow(ctx, `
		INSERT INTO bookings (id, branch_id, patient_name, treatment_id, date, start_time, end_time, status, notes)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		RETURNING created_at, updated_at`,
		b.ID, b.BranchID, b.PatientName, b.TreatmentID, b.Date,
		int(b.StartTime), int(b.EndTime), b.Status, b.Notes).
		Scan(&b.CreatedAt, &b.UpdatedAt)
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Booking, error) {
	b, err := r.scanBooking(r.conn(ctx).QueryRow(ctx, `SELECT `+bookingCols+` FROM bookings WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return b, err
}

func (r *repoPG) Update(ctx context.Context, b *Booking) error {
	_, err := r.conn(ctx).Exec(ctx, `
		UPDATE bookings SET patient_name=$2, treatment_id=$3, date=$4, start_time=$5,
			end_time=$6, status=$7, notes=$8, updated_at=NOW()
		WHERE id = $1`,
		b.ID, b.PatientName, b.TreatmentID, b.Date, int(b.StartTime), int(b.EndTime), b.Status, b.Notes)
	return err
}

func (r *repoPG) listByBranchDate(ctx context.Context, query string, branchID int64, date time.Time) ([]*Booking, error) {
	rows, err := r.conn(ctx).Query(ctx, query, branchID, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*Booking
	for rows.Next() {
		b, err := r.scanBooking(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, b)
	}
	return items, nil
}

func (r *repoPG) ListByBranchDate(ctx context.Context, branchID int64, date time.Time) ([]*Booking, error) {
	return r.listByBranchDate(ctx,
		`SELECT `+bookingCols+` FROM bookings WHERE branch_id = $1 AND date = $2 ORDER BY start_time`,
		branchID, date)
}

func (r *repoPG) ListActiveByBranchDate(ctx context.Context, branchID int64, date time.Time) ([]*Booking, error) {
	return r.listByBranchDate(ctx,
		`SELECT `+bookingCols+` FROM bookings
		 WHERE branch_id = $1 AND date = $2 AND status NOT IN ('cancelled', 'rejected')
		 ORDER BY start_time`,
		branchID, date)
}

func (r *repoPG) ListByBranch(ctx context.Context, branchID int64, limit, offset int) ([]*Booking, int, error) {
	var total int
	if err := r.conn(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM bookings WHERE branch_id = $1`, branchID).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT `+bookingCols+` FROM bookings WHERE branch_id = $1
		ORDER BY date DESC, start_time LIMIT $2 OFFSET $3`,
		branchID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*Booking
	for rows.Next() {
		b, err := r.scanBooking(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, b)
	}
	return items, total, nil
}

// =========== TimeBlock Repository ===========

type timeBlockRepoPG struct{ pool *pgxpool.Pool }

func NewTimeBlockRepoPG(pool *pgxpool.Pool) TimeBlockRepository { return &timeBlockRepoPG{pool: pool} }

func (r *timeBlockRepoPG) conn(ctx context.Context) queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.pool
}

const blockCols = `id, branch_id, date, start_time, end_time, reason, created_at`

func (r *timeBlockRepoPG) scanBlock(row pgx.Row) (*TimeBlock, error) {
	var t TimeBlock
	var start, end int
	err := row.Scan(&t.ID, &t.BranchID, &t.Date, &start, &end, &t.Reason, &t.CreatedAt)
	if err != nil {
		return nil, err
	}
	t.StartTime = clock.Minutes(start)
	t.EndTime = clock.Minutes(end)
	return &t, nil
}

func (r *timeBlockRepoPG) Create(ctx context.Context, t *TimeBlock) error {
	t.ID = uuid.New()
	return r.conn(ctx).QueryRow(ctx, `
		INSERT INTO time_blocks (id, branch_id, date, start_time, end_time, reason)
		VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING created_at`,
		t.ID, t.BranchID, t.Date, int(t.StartTime), int(t.EndTime), t.Reason).
		Scan(&t.CreatedAt)
}

func (r *timeBlockRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*TimeBlock, error) {
	t, err := r.scanBlock(r.conn(ctx).QueryRow(ctx, `SELECT `+blockCols+` FROM time_blocks WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return t, err
}

func (r *timeBlockRepoPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.conn(ctx).Exec(ctx, `DELETE FROM time_blocks WHERE id = $1`, id)
	return err
}

func (r *timeBlockRepoPG) ListByBranchDate(ctx context.Context, branchID int64, date time.Time) ([]*TimeBlock, error) {
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+blockCols+` FROM time_blocks WHERE branch_id = $1 AND date = $2 ORDER BY start_time`,
		branchID, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*TimeBlock
	for rows.Next() {
		t, err := r.scanBlock(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, t)
	}
	return items, nil
}
