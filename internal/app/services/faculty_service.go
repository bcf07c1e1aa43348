package services

import (
	"context"

	"github.com/learntech/courseplanner/internal/app/models"
	"github.com/learntech/courseplanner/internal/app/repositories"
)

// FacultyStore is the persistence used by FacultyService
type FacultyStore interface {
	Create(ctx context.Context, faculty *models.Faculty) error
	GetByID(ctx context.Context, id int64) (*models.Faculty, error)
	List(ctx context.Context, filter repositories.FacultyFilter, opts repositories.ListOptions) ([]*models.Faculty, int64, error)
	Update(ctx context.Context, faculty *models.Faculty) error
	Delete(ctx context.Context, id int64) error
}

// FacultyService defines the interface for faculty member operations
type FacultyService interface {
	ListFaculty(ctx context.Context, filter repositories.FacultyFilter, opts repositories.ListOptions) ([]*models.Faculty, int64, error)
	GetFacultyByID(ctx context.Context, id int64) (*models.Faculty, error)
	CreateFaculty(ctx context.Context, faculty *models.Faculty) error
	UpdateFaculty(ctx context.Context, faculty *models.Faculty) error
	DeleteFaculty(ctx context.Context, id int64) error
}

type facultyServiceImpl struct {
	faculty FacultyStore
}

// NewFacultyService creates a new faculty service instance
func NewFacultyService(faculty FacultyStore) FacultyService {
	return &facultyServiceImpl{faculty: faculty}
}

// validateFaculty validates faculty data before database operations
func validateFaculty(faculty *models.Faculty) error {
	if err := validateEmail(faculty.Email); err != nil {
		return err
	}
	if faculty.CampusID != nil {
		return validateID(*faculty.CampusID, "campusId")
	}
	return nil
}

func (s *facultyServiceImpl) ListFaculty(ctx context.Context, filter repositories.FacultyFilter, opts repositories.ListOptions) ([]*models.Faculty, int64, error) {
	return s.faculty.List(ctx, filter, opts)
}

func (s *facultyServiceImpl) GetFacultyByID(ctx context.Context, id int64) (*models.Faculty, error) {
	return s.faculty.GetByID(ctx, id)
}

func (s *facultyServiceImpl) CreateFaculty(ctx context.Context, faculty *models.Faculty) error {
	if err := validateFaculty(faculty); err != nil {
		return err
	}
	return s.faculty.Create(ctx, faculty)
}

func (s *facultyServiceImpl) UpdateFaculty(ctx context.Context, faculty *models.Faculty) error {
	if err := validateFaculty(faculty); err != nil {
		return err
	}
	return s.faculty.Update(ctx, faculty)
}

func (s *facultyServiceImpl) DeleteFaculty(ctx context.Context, id int64) error {
	return s.faculty.Delete(ctx, id)
}
