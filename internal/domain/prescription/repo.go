package prescription

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, p *Prescription) error
	AddItem(ctx context.Context, it *Item) error
	GetByID(ctx context.Context, id uuid.UUID) (*Prescription, error)
	GetItems(ctx context.Context, prescriptionID uuid.UUID) ([]*Item, error)
	ListByBranch(ctx context.Context, branchID int64, limit, offset int) ([]*Prescription, int, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
