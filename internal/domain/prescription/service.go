package prescription

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// TxRunner executes fn inside a transaction carried through the context.
type TxRunner func(ctx context.Context, fn func(ctx context.Context) error) error

type Service struct {
	prescriptions Repository
	inTx          TxRunner
}

func NewService(prescriptions Repository, inTx TxRunner) *Service {
	return &Service{prescriptions: prescriptions, inTx: inTx}
}

// CreatePrescription writes the prescription and all its items in one
// transaction; a failed item insert leaves nothing behind.
func (s *Service) CreatePrescription(ctx context.Context, p *Prescription) error {
	if p.BranchID <= 0 {
		return fmt.Errorf("branch_id is required")
	}
	if p.PatientName == "" {
		return fmt.Errorf("patient_name is required")
	}
	if p.StaffID == uuid.Nil {
		return fmt.Errorf("staff_id is required")
	}
	if len(p.Items) == 0 {
		return fmt.Errorf("at least one item is required")
	}
	for i, it := range p.Items {
		if it.DrugName == "" {
			return fmt.Errorf("item %d: drug_name is required", i)
		}
		if it.Dosage == "" {
			return fmt.Errorf("item %d: dosage is required", i)
		}
		if it.DurationDays < 0 {
			return fmt.Errorf("item %d: duration_days must not be negative", i)
		}
	}
	if p.IssuedAt.IsZero() {
		p.IssuedAt = time.Now()
	}
	return s.inTx(ctx, func(ctx context.Context) error {
		if err := s.prescriptions.Create(ctx, p); err != nil {
			return fmt.Errorf("create prescription: %w", err)
		}
		for _, it := range p.Items {
			it.PrescriptionID = p.ID
			if err := s.prescriptions.AddItem(ctx, it); err != nil {
				return fmt.Errorf("add item %s: %w", it.DrugName, err)
			}
		}
		return nil
	})
}

func (s *Service) GetPrescription(ctx context.Context, id uuid.UUID) (*Prescription, error) {
	p, err := s.prescriptions.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	items, err := s.prescriptions.GetItems(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load items: %w", err)
	}
	p.Items = items
	return p, nil
}

func (s *Service) ListPrescriptions(ctx context.Context, branchID int64, limit, offset int) ([]*Prescription, int, error) {
	return s.prescriptions.ListByBranch(ctx, branchID, limit, offset)
}

func (s *Service) DeletePrescription(ctx context.Context, id uuid.UUID) error {
	return s.prescriptions.Delete(ctx, id)
}
