package services

import (
	"context"

	"github.com/learntech/courseplanner/internal/app/models"
	"github.com/learntech/courseplanner/internal/app/repositories"
)

// ProgramStore is the persistence used by ProgramService
type ProgramStore interface {
	Create(ctx context.Context, program *models.Program) error
	GetByID(ctx context.Context, id int64) (*models.Program, error)
	GetByCode(ctx context.Context, code string) (*models.Program, error)
	List(ctx context.Context, opts repositories.ListOptions) ([]*models.Program, int64, error)
	Update(ctx context.Context, program *models.Program) error
	Delete(ctx context.Context, id int64) error
}

// ProgramService defines the interface for program operations
type ProgramService interface {
	ListPrograms(ctx context.Context, opts repositories.ListOptions) ([]*models.Program, int64, error)
	GetProgramByID(ctx context.Context, id int64) (*models.Program, error)
	GetProgramByCode(ctx context.Context, code string) (*models.Program, error)
	ListProgramCourses(ctx context.Context, programID int64, opts repositories.ListOptions) ([]*models.Course, int64, error)
	CreateProgram(ctx context.Context, program *models.Program) error
	UpdateProgram(ctx context.Context, program *models.Program) error
	DeleteProgram(ctx context.Context, id int64) error
}

type programServiceImpl struct {
	programs ProgramStore
	courses  CourseStore
}

// NewProgramService creates a new program service instance
func NewProgramService(programs ProgramStore, courses CourseStore) ProgramService {
	return &programServiceImpl{programs: programs, courses: courses}
}

func validateProgram(program *models.Program) error {
	if err := validateCode(program.Code, "code"); err != nil {
		return err
	}
	return validateName(program.Name, "name", false)
}

func (s *programServiceImpl) ListPrograms(ctx context.Context, opts repositories.ListOptions) ([]*models.Program, int64, error) {
	return s.programs.List(ctx, opts)
}

func (s *programServiceImpl) GetProgramByID(ctx context.Context, id int64) (*models.Program, error) {
	return s.programs.GetByID(ctx, id)
}

func (s *programServiceImpl) GetProgramByCode(ctx context.Context, code string) (*models.Program, error) {
	if err := requireText(code, "code"); err != nil {
		return nil, err
	}
	return s.programs.GetByCode(ctx, code)
}

// ListProgramCourses lists the courses of an existing program
func (s *programServiceImpl) ListProgramCourses(ctx context.Context, programID int64, opts repositories.ListOptions) ([]*models.Course, int64, error) {
	if _, err := s.programs.GetByID(ctx, programID); err != nil {
		return nil, 0, err
	}
	return s.courses.List(ctx, repositories.CourseFilter{ProgramID: &programID}, opts)
}

func (s *programServiceImpl) CreateProgram(ctx context.Context, program *models.Program) error {
	if err := validateProgram(program); err != nil {
		return err
	}
	return s.programs.Create(ctx, program)
}

func (s *programServiceImpl) UpdateProgram(ctx context.Context, program *models.Program) error {
	if err := validateProgram(program); err != nil {
		return err
	}
	return s.programs.Update(ctx, program)
}

func (s *programServiceImpl) DeleteProgram(ctx context.Context, id int64) error {
	return s.programs.Delete(ctx, id)
}
