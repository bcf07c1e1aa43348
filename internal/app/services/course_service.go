package services

import (
	"context"

	"github.com/learntech/courseplanner/internal/app/models"
	"github.com/learntech/courseplanner/internal/app/repositories"
)

// CourseStore is the persistence used by CourseService
type CourseStore interface {
	Create(ctx context.Context, course *models.Course) error
	GetByID(ctx context.Context, id int64) (*models.Course, error)
	GetByCode(ctx context.Context, code string) (*models.Course, error)
	List(ctx context.Context, filter repositories.CourseFilter, opts repositories.ListOptions) ([]*models.Course, int64, error)
	Update(ctx context.Context, course *models.Course) error
	Delete(ctx context.Context, id int64) error
}

// CourseService defines the interface for course operations
type CourseService interface {
	ListCourses(ctx context.Context, filter repositories.CourseFilter, opts repositories.ListOptions) ([]*models.Course, int64, error)
	GetCourseByID(ctx context.Context, id int64) (*models.Course, error)
	GetCourseByCode(ctx context.Context, code string) (*models.Course, error)
	CreateCourse(ctx context.Context, course *models.Course) error
	UpdateCourse(ctx context.Context, course *models.Course) error
	DeleteCourse(ctx context.Context, id int64) error
}

type courseServiceImpl struct {
	courses CourseStore
}

// NewCourseService creates a new course service instance
func NewCourseService(courses CourseStore) CourseService {
	return &courseServiceImpl{courses: courses}
}

func validateCourse(course *models.Course) error {
	if err := validateCode(course.Code, "code"); err != nil {
		return err
	}
	if err := validateName(course.Name, "name", false); err != nil {
		return err
	}
	return validateID(course.ProgramID, "programId")
}

func (s *courseServiceImpl) ListCourses(ctx context.Context, filter repositories.CourseFilter, opts repositories.ListOptions) ([]*models.Course, int64, error) {
	return s.courses.List(ctx, filter, opts)
}

func (s *courseServiceImpl) GetCourseByID(ctx context.Context, id int64) (*models.Course, error) {
	return s.courses.GetByID(ctx, id)
}

func (s *courseServiceImpl) GetCourseByCode(ctx context.Context, code string) (*models.Course, error) {
	if err := requireText(code, "code"); err != nil {
		return nil, err
	}
	return s.courses.GetByCode(ctx, code)
}

func (s *courseServiceImpl) CreateCourse(ctx context.Context, course *models.Course) error {
	if err := validateCourse(course); err != nil {
		return err
	}
	return s.courses.Create(ctx, course)
}

func (s *courseServiceImpl) UpdateCourse(ctx context.Context, course *models.Course) error {
	if err := validateCourse(course); err != nil {
		return err
	}
	return s.courses.Update(ctx, course)
}

func (s *courseServiceImpl) DeleteCourse(ctx context.Context, id int64) error {
	return s.courses.Delete(ctx, id)
}
