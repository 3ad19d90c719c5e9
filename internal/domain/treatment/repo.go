package treatment

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, t *Treatment) error
	GetByID(ctx context.Context, id uuid.UUID) (*Treatment, error)
	Update(ctx context.Context, t *Treatment) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]*Treatment, int, error)
}

// PriceRepository stores per-branch pricing. GetByBranchTreatment returns
// (nil, nil) when no row exists, so the service can tell "not offered"
// apart from a storage failure.
type PriceRepository interface {
	Upsert(ctx context.Context, p *BranchPrice) error
	GetByBranchTreatment(ctx context.Context, branchID int64, treatmentID uuid.UUID) (*BranchPrice, error)
	ListByBranch(ctx context.Context, branchID int64) ([]*BranchPrice, error)
	Delete(ctx context.Context, branchID int64, treatmentID uuid.UUID) error
}
