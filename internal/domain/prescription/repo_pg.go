package prescription

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

const rxCols = `id, branch_id, patient_name, staff_id, issued_at, notes, created_at`

func (r *repoPG) scanPrescription(row pgx.Row) (*Prescription, error) {
	var p Prescription
	err := row.Scan(&p.ID, &p.BranchID, &p.PatientName, &p.StaffID, &p.IssuedAt, &p.Notes, &p.CreatedAt)
	return &p, err
}

func (r *repoPG) Create(ctx context.Context, p *Prescription) error {
	p.ID = uuid.New()
	return r.conn(ctx).QueryRow(ctx, `
		INSERT INTO prescriptions (id, branch_id, patient_name, staff_id, issued_at, notes)
		VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING created_at`,
		p.ID, p.BranchID, p.PatientName, p.StaffID, p.IssuedAt, p.Notes).
		Scan(&p.CreatedAt)
}

func (r *repoPG) AddItem(ctx context.Context, it *Item) error {
	it.ID = uuid.New()
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO prescription_items (id, prescription_id, drug_name, dosage, frequency, duration_days, instructions)
		VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		it.ID, it.PrescriptionID, it.DrugName, it.Dosage, it.Frequency, it.DurationDays, it.Instructions)
	return err
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Prescription, error) {
	return r.scanPrescription(r.conn(ctx).QueryRow(ctx, `SELECT `+rxCols+` FROM prescriptions WHERE id = $1`, id))
}

func (r *repoPG) GetItems(ctx context.Context, prescriptionID uuid.UUID) ([]*Item, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT id, prescription_id, drug_name, dosage, frequency, duration_days, instructions
		FROM prescription_items WHERE prescription_id = $1 ORDER BY drug_name`,
		prescriptionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*Item
	for rows.Next() {
		var it Item
		if err := rows.Scan(&it.ID, &it.PrescriptionID, &it.DrugName, &it.Dosage,
			&it.Frequency, &it.DurationDays, &it.Instructions); err != nil {
			return nil, err
		}
		items = append(items, &it)
	}
	return items, nil
}

func (r *repoPG) ListByBranch(ctx context.Context, branchID int64, limit, offset int) ([]*Prescription, int, error) {
	var total int
	if err := r.conn(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM prescriptions WHERE branch_id = $1`, branchID).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+rxCols+` FROM prescriptions WHERE branch_id = $1 ORDER BY issued_at DESC LIMIT $2 OFFSET $3`,
		branchID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*Prescription
	for rows.Next() {
		p, err := r.scanPrescription(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, p)
	}
	return items, total, nil
}

func (r *repoPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.conn(ctx).Exec(ctx, `DELETE FROM prescriptions WHERE id = $1`, id)
	return err
}
