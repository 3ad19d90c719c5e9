package staff

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

var validRoles = map[string]bool{
	"admin": true, "doctor": true, "nurse": true, "receptionist": true,
}

type Service struct {
	staff Repository
}

func NewService(staff Repository) *Service {
	return &Service{staff: staff}
}

func (s *Service) validate(m *Member) error {
	if m.BranchID <= 0 {
		return fmt.Errorf("branch_id is required")
	}
	if m.Name == "" {
		return fmt.Errorf("name is required")
	}
	if !validRoles[m.Role] {
		return fmt.Errorf("invalid staff role: %s", m.Role)
	}
	return nil
}

func (s *Service) CreateMember(ctx context.Context, m *Member) error {
	if err := s.validate(m); err != nil {
		return err
	}
	m.Active = true
	return s.staff.Create(ctx, m)
}

func (s *Service) GetMember(ctx context.Context, id uuid.UUID) (*Member, error) {
	return s.staff.GetByID(ctx, id)
}

func (s *Service) UpdateMember(ctx context.Context, m *Member) error {
	if err := s.validate(m); err != nil {
		return err
	}
	return s.staff.Update(ctx, m)
}

func (s *Service) DeactivateMember(ctx context.Context, id uuid.UUID) error {
	return s.staff.Delete(ctx, id)
}

func (s *Service) ListMembers(ctx context.Context, branchID int64, limit, offset int) ([]*Member, int, error) {
	return s.staff.ListByBranch(ctx, branchID, limit, offset)
}
