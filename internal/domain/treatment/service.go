package treatment

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrNotOffered is returned by PriceFor when the branch has no active price
// row for the treatment. Callers can distinguish it from a zero price.
var ErrNotOffered = errors.New("treatment not offered at this branch")

type Service struct {
	treatments Repository
	prices     PriceRepository
}

func NewService(treatments Repository, prices PriceRepository) *Service {
	return &Service{treatments: treatments, prices: prices}
}

func (s *Service) CreateTreatment(ctx context.Context, t *Treatment) error {
	if t.Name == "" {
		return fmt.Errorf("name is required")
	}
	if t.DurationMinutes <= 0 {
		return fmt.Errorf("duration_minutes must be positive, got %d", t.DurationMinutes)
	}
	t.Active = true
	return s.treatments.Create(ctx, t)
}

func (s *Service) GetTreatment(ctx context.Context, id uuid.UUID) (*Treatment, error) {
	return s.treatments.GetByID(ctx, id)
}

func (s *Service) UpdateTreatment(ctx context.Context, t *Treatment) error {
	if t.Name == "" {
		return fmt.Errorf("name is required")
	}
	if t.DurationMinutes <= 0 {
		return fmt.Errorf("duration_minutes must be positive, got %d", t.DurationMinutes)
	}
	return s.treatments.Update(ctx, t)
}

func (s *Service) DeactivateTreatment(ctx context.Context, id uuid.UUID) error {
	return s.treatments.Delete(ctx, id)
}

func (s *Service) ListTreatments(ctx context.Context, limit, offset int) ([]*Treatment, int, error) {
	return s.treatments.List(ctx, limit, offset)
}

// -- Pricing --

func (s *Service) SetPrice(ctx context.Context, p *BranchPrice) error {
	if p.BranchID <= 0 {
		return fmt.Errorf("branch_id is required")
	}
	if p.TreatmentID == uuid.Nil {
		return fmt.Errorf("treatment_id is required")
	}
	if p.PriceCents < 0 {
		return fmt.Errorf("price_cents must not be negative, got %d", p.PriceCents)
	}
	return s.prices.Upsert(ctx, p)
}

// PriceFor resolves the branch's price for a treatment. A missing or
// inactive row yields ErrNotOffered; a stored zero price is returned as a
// valid price.
func (s *Service) PriceFor(ctx context.Context, branchID int64, treatmentID uuid.UUID) (*BranchPrice, error) {
	if branchID <= 0 {
		return nil, fmt.Errorf("branch id must be positive")
	}
	p, err := s.prices.GetByBranchTreatment(ctx, branchID, treatmentID)
	if err != nil {
		return nil, fmt.Errorf("read branch price: %w", err)
	}
	if p == nil || !p.Active {
		return nil, ErrNotOffered
	}
	return p, nil
}

func (s *Service) ListPrices(ctx context.Context, branchID int64) ([]*BranchPrice, error) {
	return s.prices.ListByBranch(ctx, branchID)
}

func (s *Service) RemovePrice(ctx context.Context, branchID int64, treatmentID uuid.UUID) error {
	return s.prices.Delete(ctx, branchID, treatmentID)
}
