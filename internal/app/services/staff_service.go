package services

import (
	"context"

	"github.com/learntech/courseplanner/internal/app/models"
	"github.com/learntech/courseplanner/internal/app/repositories"
)

// StaffStore is the persistence used by StaffService
type StaffStore interface {
	Create(ctx context.Context, member *models.StaffMember) error
	GetByID(ctx context.Context, id int64) (*models.StaffMember, error)
	List(ctx context.Context, opts repositories.ListOptions) ([]*models.StaffMember, int64, error)
	Update(ctx context.Context, member *models.StaffMember) error
	Delete(ctx context.Context, id int64) error
}

// StaffService manages one kind of staff: instructional designers or media leads
type StaffService interface {
	Kind() models.StaffKind
	ListStaff(ctx context.Context, opts repositories.ListOptions) ([]*models.StaffMember, int64, error)
	GetStaffByID(ctx context.Context, id int64) (*models.StaffMember, error)
	CreateStaff(ctx context.Context, member *models.StaffMember) error
	UpdateStaff(ctx context.Context, member *models.StaffMember) error
	DeleteStaff(ctx context.Context, id int64) error
}

type staffServiceImpl struct {
	kind  models.StaffKind
	staff StaffStore
}

// NewStaffService creates a staff service for the given kind
func NewStaffService(kind models.StaffKind, staff StaffStore) StaffService {
	return &staffServiceImpl{kind: kind, staff: staff}
}

func (s *staffServiceImpl) Kind() models.StaffKind {
	return s.kind
}

func (s *staffServiceImpl) ListStaff(ctx context.Context, opts repositories.ListOptions) ([]*models.StaffMember, int64, error) {
	return s.staff.List(ctx, opts)
}

func (s *staffServiceImpl) GetStaffByID(ctx context.Context, id int64) (*models.StaffMember, error) {
	return s.staff.GetByID(ctx, id)
}

func (s *staffServiceImpl) CreateStaff(ctx context.Context, member *models.StaffMember) error {
	if err := validateEmail(member.Email); err != nil {
		return err
	}
	return s.staff.Create(ctx, member)
}

func (s *staffServiceImpl) UpdateStaff(ctx context.Context, member *models.StaffMember) error {
	if err := validateEmail(member.Email); err != nil {
		return err
	}
	return s.staff.Update(ctx, member)
}

func (s *staffServiceImpl) DeleteStaff(ctx context.Context, id int64) error {
	return s.staff.Delete(ctx, id)
}
