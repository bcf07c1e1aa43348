package services

import (
	"context"
	"time"

	"github.com/learntech/courseplanner/internal/app/models"
	"github.com/learntech/courseplanner/internal/app/repositories"
)

// CourseMatrixStore is the persistence used by CourseMatrixService
type CourseMatrixStore interface {
	Create(ctx context.Context, cm *models.CourseMatrix) error
	GetByID(ctx context.Context, id int64) (*models.CourseMatrix, error)
	List(ctx context.Context, filter repositories.CourseMatrixFilter, opts repositories.ListOptions) ([]*models.CourseMatrix, int64, error)
	Update(ctx context.Context, cm *models.CourseMatrix) error
	Delete(ctx context.Context, id int64) error
}

// CourseMatrixService defines the interface for course matrix scheduling
type CourseMatrixService interface {
	ListCourseMatrix(ctx context.Context, filter repositories.CourseMatrixFilter, opts repositories.ListOptions) ([]*models.CourseMatrix, int64, error)
	GetCourseMatrixByID(ctx context.Context, id int64) (*models.CourseMatrix, error)
	ListByProgram(ctx context.Context, programID int64, opts repositories.ListOptions) ([]*models.CourseMatrix, int64, error)
	ListByCourse(ctx context.Context, courseID int64, opts repositories.ListOptions) ([]*models.CourseMatrix, int64, error)
	ListByFiscalYears(ctx context.Context, years []string, opts repositories.ListOptions) ([]*models.CourseMatrix, int64, error)
	ListByStartRange(ctx context.Context, from, to string, opts repositories.ListOptions) ([]*models.CourseMatrix, int64, error)
	ListByFiscalRange(ctx context.Context, from, to *int, opts repositories.ListOptions) ([]*models.CourseMatrix, int64, error)
	CreateCourseMatrix(ctx context.Context, cm *models.CourseMatrix) error
	UpdateCourseMatrix(ctx context.Context, cm *models.CourseMatrix) error
	DeleteCourseMatrix(ctx context.Context, id int64) error
}

type courseMatrixServiceImpl struct {
	matrix CourseMatrixStore
	now    func() time.Time
}

// NewCourseMatrixService creates a new course matrix service instance
func NewCourseMatrixService(matrix CourseMatrixStore) CourseMatrixService {
	return &courseMatrixServiceImpl{
		matrix: matrix,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func validateCourseMatrix(cm *models.CourseMatrix) error {
	if err := validateID(cm.ProgramID, "programId"); err != nil {
		return err
	}
	if err := validateID(cm.CourseID, "courseId"); err != nil {
		return err
	}
	if err := validateFiscalYear(cm.FiscalYear); err != nil {
		return err
	}
	if cm.Increment != models.FirstFiscalHalf && cm.Increment != models.SecondFiscalHalf {
		return invalid("increment", "increment must be 0 or 1")
	}
	if err := validateTermCode(cm.Start, "start", false); err != nil {
		return err
	}
	if err := validateTermCode(cm.Live, "live", false); err != nil {
		return err
	}

	optional := []struct {
		id    *int64
		field string
	}{
		{cm.FacultyID, "facultyId"},
		{cm.CampusID, "campusId"},
		{cm.DesignerID, "designerId"},
		{cm.MediaLeadID, "mediaLeadId"},
	}
	for _, ref := range optional {
		if ref.id != nil {
			if err := validateID(*ref.id, ref.field); err != nil {
				return err
			}
		}
	}
	return nil
}

// byStart orders range results by start term unless the caller chose a sort
func byStart(opts repositories.ListOptions) repositories.ListOptions {
	if opts.Sort == "" {
		opts.Sort = "start"
		if opts.Order == "" {
			opts.Order = "asc"
		}
	}
	return opts
}

func (s *courseMatrixServiceImpl) ListCourseMatrix(ctx context.Context, filter repositories.CourseMatrixFilter, opts repositories.ListOptions) ([]*models.CourseMatrix, int64, error) {
	for _, year := range filter.FiscalYears {
		if err := validateFiscalYear(year); err != nil {
			return nil, 0, err
		}
	}
	return s.matrix.List(ctx, filter, opts)
}

func (s *courseMatrixServiceImpl) GetCourseMatrixByID(ctx context.Context, id int64) (*models.CourseMatrix, error) {
	return s.matrix.GetByID(ctx, id)
}

func (s *courseMatrixServiceImpl) ListByProgram(ctx context.Context, programID int64, opts repositories.ListOptions) ([]*models.CourseMatrix, int64, error) {
	return s.matrix.List(ctx, repositories.CourseMatrixFilter{ProgramID: &programID}, opts)
}

func (s *courseMatrixServiceImpl) ListByCourse(ctx context.Context, courseID int64, opts repositories.ListOptions) ([]*models.CourseMatrix, int64, error) {
	return s.matrix.List(ctx, repositories.CourseMatrixFilter{CourseID: &courseID}, opts)
}

// ListByFiscalYears lists rows whose fiscal year is any of years
func (s *courseMatrixServiceImpl) ListByFiscalYears(ctx context.Context, years []string, opts repositories.ListOptions) ([]*models.CourseMatrix, int64, error) {
	if len(years) == 0 {
		return nil, 0, invalid("fiscalYear", "at least one fiscal year is required")
	}
	return s.ListCourseMatrix(ctx, repositories.CourseMatrixFilter{FiscalYears: years}, opts)
}

// ListByStartRange lists rows whose start term lies within [from, to].
// Either bound may be empty for an open range.
func (s *courseMatrixServiceImpl) ListByStartRange(ctx context.Context, from, to string, opts repositories.ListOptions) ([]*models.CourseMatrix, int64, error) {
	if from == "" && to == "" {
		return nil, 0, invalid("from", "a start range needs at least one bound")
	}
	if err := validateTermCode(from, "from", false); err != nil {
		return nil, 0, err
	}
	if err := validateTermCode(to, "to", false); err != nil {
		return nil, 0, err
	}
	if from != "" && to != "" && from > to {
		return nil, 0, invalid("from", "range start %s is after range end %s", from, to)
	}

	filter := repositories.CourseMatrixFilter{StartFrom: from, StartTo: to}
	return s.matrix.List(ctx, filter, byStart(opts))
}

// ListByFiscalRange lists rows from the first half of fiscal year from through
// the second half of fiscal year to. Either bound may be nil.
func (s *courseMatrixServiceImpl) ListByFiscalRange(ctx context.Context, from, to *int, opts repositories.ListOptions) ([]*models.CourseMatrix, int64, error) {
	if from == nil && to == nil {
		return nil, 0, invalid("year", "a fiscal range needs at least one bound")
	}
	if from != nil && to != nil && *from > *to {
		return nil, 0, invalid("year", "fiscal range start %d is after range end %d", *from, *to)
	}

	filter := repositories.CourseMatrixFilter{FiscalFrom: from, FiscalTo: to}
	if opts.Sort == "" {
		opts.Sort = "fiscalHalf"
	}
	return s.matrix.List(ctx, filter, opts)
}

func (s *courseMatrixServiceImpl) CreateCourseMatrix(ctx context.Context, cm *models.CourseMatrix) error {
	if err := validateCourseMatrix(cm); err != nil {
		return err
	}
	cm.UpdatedOn = s.now()
	return s.matrix.Create(ctx, cm)
}

func (s *courseMatrixServiceImpl) UpdateCourseMatrix(ctx context.Context, cm *models.CourseMatrix) error {
	if err := validateCourseMatrix(cm); err != nil {
		return err
	}
	cm.UpdatedOn = s.now()
	return s.matrix.Update(ctx, cm)
}

func (s *courseMatrixServiceImpl) DeleteCourseMatrix(ctx context.Context, id int64) error {
	return s.matrix.Delete(ctx, id)
}
