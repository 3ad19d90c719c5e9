package staff

import (
	"context"

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

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

func (r *repoPG) conn(ctx context.Context) queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.pool
}

const staffCols = `id, branch_id, name, role, email, phone, active, created_at, updated_at`

func (r *repoPG) scanMember(row pgx.Row) (*Member, error) {
	var m Member
	err := row.Scan(&m.ID, &m.BranchID, &m.Name, &m.Role, &m.Email, &m.Phone, &m.Active, &m.CreatedAt, &m.UpdatedAt)
	return &m, err
}

func (r *repoPG) Create(ctx context.Context, m *Member) error {
	m.ID = uuid.New()
	return r.conn(ctx).QueryRow(ctx, `
		INSERT INTO staff (id, branch_id, name, role, email, phone, active)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		RETURNING created_at, updated_at`,
		m.ID, m.BranchID, m.Name, m.Role, m.Email, m.Phone, m.Active).
		Scan(&m.CreatedAt, &m.UpdatedAt)
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Member, error) {
	return r.scanMember(r.conn(ctx).QueryRow(ctx, `SELECT `+staffCols+` FROM staff WHERE id = $1`, id))
}

func (r *repoPG) Update(ctx context.Context, m *Member) error {
	_, err := r.conn(ctx).Exec(ctx, `
		UPDATE staff SET branch_id=$2, name=$3, role=$4, email=$5, phone=$6, active=$7, updated_at=NOW()
		WHERE id = $1`,
		m.ID, m.BranchID, m.Name, m.Role, m.Email, m.Phone, m.Active)
	return err
}

func (r *repoPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.conn(ctx).Exec(ctx, `UPDATE staff SET active = FALSE, updated_at = NOW() WHERE id = $1`, id)
	return err
}

func (r *repoPG) ListByBranch(ctx context.Context, branchID int64, limit, offset int) ([]*Member, int, error) {
	var total int
	if err := r.conn(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM staff WHERE branch_id = $1`, branchID).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+staffCols+` FROM staff WHERE branch_id = $1 ORDER BY name LIMIT $2 OFFSET $3`,
		branchID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*Member
	for rows.Next() {
		m, err := r.scanMember(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, m)
	}
	return items, total, nil
}
