package services

import (
	"context"
	"fmt"

	"github.com/learntech/courseplanner/internal/app/models"
	"github.com/learntech/courseplanner/internal/app/repositories"
)

// ProgramManagerStore is the persistence used by ProgramManagerService
type ProgramManagerStore interface {
	Create(ctx context.Context, pm *models.ProgramManager) error
	GetByID(ctx context.Context, id int64) (*models.ProgramManager, error)
	List(ctx context.Context, filter repositories.ProgramManagerFilter, opts repositories.ListOptions) ([]*models.ProgramManager, int64, error)
	Update(ctx context.Context, pm *models.ProgramManager) error
	Delete(ctx context.Context, id int64) error
}

// ExistenceChecker reports whether a row with a column value exists
type ExistenceChecker interface {
	Exists(ctx context.Context, table repositories.Table, column repositories.Column, value any) (bool, error)
}

// ProgramManagerService defines the interface for program manager assignments
type ProgramManagerService interface {
	ListProgramManagers(ctx context.Context, filter repositories.ProgramManagerFilter, opts repositories.ListOptions) ([]*models.ProgramManager, int64, error)
	GetProgramManagerByID(ctx context.Context, id int64) (*models.ProgramManager, error)
	CreateProgramManager(ctx context.Context, pm *models.ProgramManager) error
	UpdateProgramManager(ctx context.Context, pm *models.ProgramManager) error
	DeleteProgramManager(ctx context.Context, id int64) error
}

type programManagerServiceImpl struct {
	managers ProgramManagerStore
	exists   ExistenceChecker
}

// NewProgramManagerService creates a new program manager service instance
func NewProgramManagerService(managers ProgramManagerStore, exists ExistenceChecker) ProgramManagerService {
	return &programManagerServiceImpl{managers: managers, exists: exists}
}

// validateProgramManager checks the assignment and that the email belongs to
// a registered user
func (s *programManagerServiceImpl) validateProgramManager(ctx context.Context, pm *models.ProgramManager) error {
	if err := validateEmail(pm.Email); err != nil {
		return err
	}
	if err := validateID(pm.ProgramID, "programId"); err != nil {
		return err
	}

	found, err := s.exists.Exists(ctx, repositories.TableUsers, repositories.ColumnEmail, pm.Email)
	if err != nil {
		return fmt.Errorf("failed to check program manager user: %w", err)
	}
	if !found {
		return invalid("email", "no user is registered with email %s", pm.Email)
	}
	return nil
}

func (s *programManagerServiceImpl) ListProgramManagers(ctx context.Context, filter repositories.ProgramManagerFilter, opts repositories.ListOptions) ([]*models.ProgramManager, int64, error) {
	return s.managers.List(ctx, filter, opts)
}

func (s *programManagerServiceImpl) GetProgramManagerByID(ctx context.Context, id int64) (*models.ProgramManager, error) {
	return s.managers.GetByID(ctx, id)
}

func (s *programManagerServiceImpl) CreateProgramManager(ctx context.Context, pm *models.ProgramManager) error {
	if err := s.validateProgramManager(ctx, pm); err != nil {
		return err
	}
	return s.managers.Create(ctx, pm)
}

func (s *programManagerServiceImpl) UpdateProgramManager(ctx context.Context, pm *models.ProgramManager) error {
	if err := s.validateProgramManager(ctx, pm); err != nil {
		return err
	}
	return s.managers.Update(ctx, pm)
}

func (s *programManagerServiceImpl) DeleteProgramManager(ctx context.Context, id int64) error {
	return s.managers.Delete(ctx, id)
}
