package treatment

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/clinicdesk/clinicdesk/internal/platform/db"
)

type queryable interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
}

// =========== Treatment Repository ===========

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

func (r *repoPG) conn(ctx context.Context) queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.pool
}

const treatmentCols = `id, name, description, duration_minutes, active, created_at, updated_at`

func (r *repoPG) scanTreatment(row pgx.Row) (*Treatment, error) {
	var t Treatment
	err := row.Scan(&t.ID, &t.Name, &t.Description, &t.DurationMinutes, &t.Active, &t.CreatedAt, &t.UpdatedAt)
	return &t, err
}

func (r *repoPG) Create(ctx context.Context, t *Treatment) error {
	t.ID = uuid.New()
	return r.conn(ctx).QueryRow(ctx, `
		INSERT INTO treatments (id, name, description, duration_minutes, active)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING created_at, updated_at`,
		t.ID, t.Name, t.Description, t.DurationMinutes, t.Active).
		Scan(&t.CreatedAt, &t.UpdatedAt)
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Treatment, error) {
	return r.scanTreatment(r.conn(ctx).QueryRow(ctx, `SELECT `+treatmentCols+` FROM treatments WHERE id = $1`, id))
}

func (r *repoPG) Update(ctx context.Context, t *Treatment) error {
	_, err := r.conn(ctx).Exec(ctx, `
		UPDATE treatments SET name=$2, description=$3, duration_minutes=$4, active=$5, updated_at=NOW()
		WHERE id = $1`,
		t.ID, t.Name, t.Description, t.DurationMinutes, t.Active)
	return err
}

func (r *repoPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.conn(ctx).Exec(ctx, `UPDATE treatments SET active = FALSE, updated_at = NOW() WHERE id = $1`, id)
	return err
}

func (r *repoPG) List(ctx context.Context, limit, offset int) ([]*Treatment, int, error) {
	var total int
	if err := r.conn(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM treatments`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.conn(ctx).Query(ctx, `SELECT `+treatmentCols+` FROM treatments ORDER BY name LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*Treatment
	for rows.Next() {
		t, err := r.scanTreatment(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, t)
	}
	return items, total, nil
}

// =========== Price Repository ===========

type priceRepoPG struct{ pool *pgxpool.Pool }

func NewPriceRepoPG(pool *pgxpool.Pool) PriceRepository { return &priceRepoPG{pool: pool} }

func (r *priceRepoPG) conn(ctx context.Context) queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.pool
}

const priceCols = `branch_id, treatment_id, price_cents, active, created_at, updated_at`

func (r *priceRepoPG) scanPrice(row pgx.Row) (*BranchPrice, error) {
	var p BranchPrice
	err := row.Scan(&p.BranchID, &p.TreatmentID, &p.PriceCents, &p.Active, &p.CreatedAt, &p.UpdatedAt)
	return &p, err
}

func (r *priceRepoPG) Upsert(ctx context.Context, p *BranchPrice) error {
	return r.conn(ctx).QueryRow(ctx, `
		INSERT INTO branch_treatments (branch_id, treatment_id, price_cents, active)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (branch_id, treatment_id) DO UPDATE SET
			price_cents = EXCLUDED.price_cents,
			active = EXCLUDED.active,
			updated_at = NOW()
		RETURNING created_at, updated_at`,
		p.BranchID, p.TreatmentID, p.PriceCents, p.Active).
		Scan(&p.CreatedAt, &p.UpdatedAt)
}

func (r *priceRepoPG) GetByBranchTreatment(ctx context.Context, branchID int64, treatmentID uuid.UUID) (*BranchPrice, error) {
	p, err := r.scanPrice(r.conn(ctx).QueryRow(ctx,
		`SELECT `+priceCols+` FROM branch_treatments WHERE branch_id = $1 AND treatment_id = $2`,
		branchID, treatmentID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return p, err
}

func (r *priceRepoPG) ListByBranch(ctx context.Context, branchID int64) ([]*BranchPrice, error) {
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+priceCols+` FROM branch_treatments WHERE branch_id = $1 ORDER BY treatment_id`, branchID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*BranchPrice
	for rows.Next() {
		p, err := r.scanPrice(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	return items, nil
}

func (r *priceRepoPG) Delete(ctx context.Context, branchID int64, treatmentID uuid.UUID) error {
	_, err := r.conn(ctx).Exec(ctx,
		`DELETE FROM branch_treatments WHERE branch_id = $1 AND treatment_id = $2`, branchID, treatmentID)
	return err
}
