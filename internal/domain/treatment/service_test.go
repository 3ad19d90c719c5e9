package treatment

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
)

// -- Mock Repositories --

type mockTreatmentRepo struct {
	treatments map[uuid.UUID]*Treatment
}

func newMockTreatmentRepo() *mockTreatmentRepo {
	return &mockTreatmentRepo{treatments: make(map[uuid.UUID]*Treatment)}
}

func (m *mockTreatmentRepo) Create(_ context.Context, t *Treatment) error {
	t.ID = uuid.New()
	t.CreatedAt = time.Now()
	t.UpdatedAt = time.Now()
	m.treatments[t.ID] = t
	return nil
}

func (m *mockTreatmentRepo) GetByID(_ context.Context, id uuid.UUID) (*Treatment, error) {
	t, ok := m.treatments[id]
	if !ok {
		return nil, fmt.Errorf("not found")
	}
	return t, nil
}

func (m *mockTreatmentRepo) Update(_ context.Context, t *Treatment) error {
	m.treatments[t.ID] = t
	return nil
}

func (m *mockTreatmentRepo) Delete(_ context.Context, id uuid.UUID) error {
	if t, ok := m.treatments[id]; ok {
		t.Active = false
	}
	return nil
}

func (m *mockTreatmentRepo) List(_ context.Context, limit, offset int) ([]*Treatment, int, error) {
	var result []*Treatment
	for _, t := range m.treatments {
		result = append(result, t)
	}
	return result, len(result), nil
}

type priceKey struct {
	branchID    int64
	treatmentID uuid.UUID
}

type mockPriceRepo struct {
	prices map[priceKey]*BranchPrice
	err    error
}

func newMockPriceRepo() *mockPriceRepo {
	return &mockPriceRepo{prices: make(map[priceKey]*BranchPrice)}
}

func (m *mockPriceRepo) Upsert(_ context.Context, p *BranchPrice) error {
	p.UpdatedAt = time.Now()
	m.prices[priceKey{p.BranchID, p.TreatmentID}] = p
	return nil
}

func (m *mockPriceRepo) GetByBranchTreatment(_ context.Context, branchID int64, treatmentID uuid.UUID) (*BranchPrice, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.prices[priceKey{branchID, treatmentID}], nil
}

func (m *mockPriceRepo) ListByBranch(_ context.Context, branchID int64) ([]*BranchPrice, error) {
	var result []*BranchPrice
	for _, p := range m.prices {
		if p.BranchID == branchID {
			result = append(result, p)
		}
	}
	return result, nil
}

func (m *mockPriceRepo) Delete(_ context.Context, branchID int64, treatmentID uuid.UUID) error {
	delete(m.prices, priceKey{branchID, treatmentID})
	return nil
}

func newTestService() (*Service, *mockPriceRepo) {
	prices := newMockPriceRepo()
	return NewService(newMockTreatmentRepo(), prices), prices
}

// -- Treatment tests --

func TestCreateTreatment(t *testing.T) {
	svc, _ := newTestService()
	tr := &Treatment{Name: "Dental cleaning", DurationMinutes: 60}
	if err := svc.CreateTreatment(context.Background(), tr); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tr.ID == uuid.Nil {
		t.Error("expected assigned id")
	}
	if !tr.Active {
		t.Error("expected new treatment to be active")
	}
}

func TestCreateTreatment_Validation(t *testing.T) {
	svc, _ := newTestService()
	if err := svc.CreateTreatment(context.Background(), &Treatment{DurationMinutes: 60}); err == nil {
		t.Error("expected error for missing name")
	}
	if err := svc.CreateTreatment(context.Background(), &Treatment{Name: "X-ray", DurationMinutes: 0}); err == nil {
		t.Error("expected error for non-positive duration")
	}
}

// -- Pricing tests --

func TestPriceFor(t *testing.T) {
	svc, _ := newTestService()
	treatmentID := uuid.New()
	p := &BranchPrice{BranchID: 1, TreatmentID: treatmentID, PriceCents: 15000, Active: true}
	if err := svc.SetPrice(context.Background(), p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := svc.PriceFor(context.Background(), 1, treatmentID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.PriceCents != 15000 {
		t.Errorf("expected price 15000, got %d", got.PriceCents)
	}
}

func TestPriceFor_NotOffered(t *testing.T) {
	svc, _ := newTestService()
	_, err := svc.PriceFor(context.Background(), 1, uuid.New())
	if !errors.Is(err, ErrNotOffered) {
		t.Errorf("expected ErrNotOffered, got %v", err)
	}
}

func TestPriceFor_InactiveRowNotOffered(t *testing.T) {
	svc, _ := newTestService()
	treatmentID := uuid.New()
	p := &BranchPrice{BranchID: 1, TreatmentID: treatmentID, PriceCents: 15000, Active: false}
	if err := svc.SetPrice(context.Background(), p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err := svc.PriceFor(context.Background(), 1, treatmentID)
	if !errors.Is(err, ErrNotOffered) {
		t.Errorf("expected ErrNotOffered for inactive row, got %v", err)
	}
}

func TestPriceFor_ZeroIsValidPrice(t *testing.T) {
	svc, _ := newTestService()
	treatmentID := uuid.New()
	p := &BranchPrice{BranchID: 1, TreatmentID: treatmentID, PriceCents: 0, Active: true}
	if err := svc.SetPrice(context.Background(), p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := svc.PriceFor(context.Background(), 1, treatmentID)
	if err != nil {
		t.Fatalf("expected zero price to resolve, got %v", err)
	}
	if got.PriceCents != 0 {
		t.Errorf("expected price 0, got %d", got.PriceCents)
	}
}

func TestPriceFor_StorageFailureIsNotNotOffered(t *testing.T) {
	svc, prices := newTestService()
	prices.err = fmt.Errorf("connection refused")

	_, err := svc.PriceFor(context.Background(), 1, uuid.New())
	if err == nil {
		t.Fatal("expected error")
	}
	if errors.Is(err, ErrNotOffered) {
		t.Error("storage failure must not be reported as not-offered")
	}
}

func TestSetPrice_Validation(t *testing.T) {
	svc, _ := newTestService()
	if err := svc.SetPrice(context.Background(), &BranchPrice{TreatmentID: uuid.New(), PriceCents: 100}); err == nil {
		t.Error("expected error for missing branch_id")
	}
	if err := svc.SetPrice(context.Background(), &BranchPrice{BranchID: 1, PriceCents: 100}); err == nil {
		t.Error("expected error for missing treatment_id")
	}
	if err := svc.SetPrice(context.Background(), &BranchPrice{BranchID: 1, TreatmentID: uuid.New(), PriceCents: -5}); err == nil {
		t.Error("expected error for negative price")
	}
}
