package services

import (
	"context"

	"github.com/learntech/courseplanner/internal/app/models"
	"github.com/learntech/courseplanner/internal/app/repositories"
)

// CampusStore is the persistence used by CampusService
type CampusStore interface {
	Create(ctx context.Context, campus *models.Campus) error
	GetByID(ctx context.Context, id int64) (*models.Campus, error)
	GetByCode(ctx context.Context, code string) (*models.Campus, error)
	List(ctx context.Context, opts repositories.ListOptions) ([]*models.Campus, int64, error)
	Update(ctx context.Context, campus *models.Campus) error
	Delete(ctx context.Context, id int64) error
}

// CampusService defines the interface for campus operations
type CampusService interface {
	ListCampuses(ctx context.Context, opts repositories.ListOptions) ([]*models.Campus, int64, error)
	GetCampusByID(ctx context.Context, id int64) (*models.Campus, error)
	GetCampusByCode(ctx context.Context, code string) (*models.Campus, error)
	CreateCampus(ctx context.Context, campus *models.Campus) error
	UpdateCampus(ctx context.Context, campus *models.Campus) error
	DeleteCampus(ctx context.Context, id int64) error
}

type campusServiceImpl struct {
	campuses CampusStore
}

// NewCampusService creates a new campus service instance
func NewCampusService(campuses CampusStore) CampusService {
	return &campusServiceImpl{campuses: campuses}
}

func validateCampus(campus *models.Campus) error {
	if err := validateCode(campus.Code, "code"); err != nil {
		return err
	}
	return validateName(campus.Name, "name", true)
}

func (s *campusServiceImpl) ListCampuses(ctx context.Context, opts repositories.ListOptions) ([]*models.Campus, int64, error) {
	return s.campuses.List(ctx, opts)
}

func (s *campusServiceImpl) GetCampusByID(ctx context.Context, id int64) (*models.Campus, error) {
	return s.campuses.GetByID(ctx, id)
}

func (s *campusServiceImpl) GetCampusByCode(ctx context.Context, code string) (*models.Campus, error) {
	if err := requireText(code, "code"); err != nil {
		return nil, err
	}
	return s.campuses.GetByCode(ctx, code)
}

func (s *campusServiceImpl) CreateCampus(ctx context.Context, campus *models.Campus) error {
	if err := validateCampus(campus); err != nil {
		return err
	}
	return s.campuses.Create(ctx, campus)
}

func (s *campusServiceImpl) UpdateCampus(ctx context.Context, campus *models.Campus) error {
	if err := validateCampus(campus); err != nil {
		return err
	}
	return s.campuses.Update(ctx, campus)
}

func (s *campusServiceImpl) DeleteCampus(ctx context.Context, id int64) error {
	return s.campuses.Delete(ctx, id)
}
