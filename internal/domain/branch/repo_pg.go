package branch

import (
	"context"
	"errors"

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

// =========== Branch Repository ===========

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

func (r *repoPG) conn(ctx context.Context) queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.pool
}

const branchCols = `id, name, address, phone, active, created_at, updated_at`

func (r *repoPG) scanBranch(row pgx.Row) (*Branch, error) {
	var b Branch
	err := row.Scan(&b.ID, &b.Name, &b.Address, &b.Phone, &b.Active, &b.CreatedAt, &b.UpdatedAt)
	return &b, err
}

func (r *repoPG) Create(ctx context.Context, b *Branch) error {
	return r.conn(ctx).QueryRow(ctx, `
		INSERT INTO branches (name, address, phone, active)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at`,
		b.Name, b.Address, b.Phone, b.Active).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
}

func (r *repoPG) GetByID(ctx context.Context, id int64) (*Branch, error) {
	return r.scanBranch(r.conn(ctx).QueryRow(ctx, `SELECT `+branchCols+` FROM branches WHERE id = $1`, id))
}

func (r *repoPG) Update(ctx context.Context, b *Branch) error {
	_, err := r.conn(ctx).Exec(ctx, `
		UPDATE branches SET name=$2, address=$3, phone=$4, active=$5, updated_at=NOW()
		WHERE id = $1`,
		b.ID, b.Name, b.Address, b.Phone, b.Active)
	return err
}

func (r *repoPG) Delete(ctx context.Context, id int64) error {
	_, err := r.conn(ctx).Exec(ctx, `UPDATE branches SET active = FALSE, updated_at = NOW() WHERE id = $1`, id)
	return err
}

func (r *repoPG) List(ctx context.Context, limit, offset int) ([]*Branch, int, error) {
	var total int
	if err := r.conn(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM branches`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.conn(ctx).Query(ctx, `SELECT `+branchCols+` FROM branches ORDER BY id LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*Branch
	for rows.Next() {
		b, err := r.scanBranch(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, b)
	}
	return items, total, nil
}

// =========== Schedule Repository ===========

type scheduleRepoPG struct{ pool *pgxpool.Pool }

func NewScheduleRepoPG(pool *pgxpool.Pool) ScheduleRepository { return &scheduleRepoPG{pool: pool} }

func (r *scheduleRepoPG) conn(ctx context.Context) queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.pool
}

const schedCols = `id, branch_id, weekday, open_time, close_time, break_start, break_end, is_open, created_at, updated_at`

func (r *scheduleRepoPG) scanSchedule(row pgx.Row) (*DaySchedule, error) {
	var d DaySchedule
	var open, closeAt int
	var bs, be *int
	err := row.Scan(&d.ID, &d.BranchID, &d.Weekday, &open, &closeAt, &bs, &be, &d.IsOpen, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return nil, err
	}
	d.OpenTime = clock.Minutes(open)
	d.CloseTime = clock.Minutes(closeAt)
	d.BreakStart = minutesPtr(bs)
	d.BreakEnd = minutesPtr(be)
	return &d, nil
}

func minutesPtr(v *int) *clock.Minutes {
	if v == nil {
		return nil
	}
	m := clock.Minutes(*v)
	return &m
}

func intPtr(m *clock.Minutes) *int {
	if m == nil {
		return nil
	}
	v := int(*m)
	return &v
}

func (r *scheduleRepoPG) Upsert(ctx context.Context, d *DaySchedule) error {
	return r.conn(ctx).QueryRow(ctx, `
		INSERT INTO branch_schedules (branch_id, weekday, open_time, close_time, break_start, break_end, is_open)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (branch_id, weekday) DO UPDATE SET
			open_time = EXCLUDED.open_time,
			close_time = EXCLUDED.close_time,
			break_start = EXCLUDED.break_start,
			break_end = EXCLUDED.break_end,
			is_open = EXCLUDED.is_open,
			updated_at = NOW()
		RETURNING id, created_at, updated_at`,
		d.BranchID, d.Weekday, int(d.OpenTime), int(d.CloseTime),
		intPtr(d.BreakStart), intPtr(d.BreakEnd), d.IsOpen).
		Scan(&d.ID, &d.CreatedAt, &d.UpdatedAt)
}

func (r *scheduleRepoPG) GetByBranchDay(ctx context.Context, branchID int64, weekday int) (*DaySchedule, error) {
	d, err := r.scanSchedule(r.conn(ctx).QueryRow(ctx,
		`SELECT `+schedCols+` FROM branch_schedules WHERE branch_id = $1 AND weekday = $2`,
		branchID, weekday))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return d, err
}

func (r *scheduleRepoPG) ListByBranch(ctx context.Context, branchID int64) ([]*DaySchedule, error) {
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+schedCols+` FROM branch_schedules WHERE branch_id = $1 ORDER BY weekday`, branchID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*DaySchedule
	for rows.Next() {
		d, err := r.scanSchedule(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, d)
	}
	return items, nil
}

func (r *scheduleRepoPG) Delete(ctx context.Context, branchID int64, weekday int) error {
	_, err := r.conn(ctx).Exec(ctx,
		`DELETE FROM branch_schedules WHERE branch_id = $1 AND weekday = $2`, branchID, weekday)
	return err
}
