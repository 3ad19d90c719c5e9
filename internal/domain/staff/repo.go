package staff

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, m *Member) error
	GetByID(ctx context.Context, id uuid.UUID) (*Member, error)
	Update(ctx context.Context, m *Member) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListByBranch(ctx context.Context, branchID int64, limit, offset int) ([]*Member, int, error)
}
