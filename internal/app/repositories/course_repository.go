package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/learntech/courseplanner/internal/app/models"
	"github.com/learntech/courseplanner/internal/db"
)

var courseSorts = sortColumns{
	fields: map[string]string{
		"id":      "c.id",
		"code":    "c.code",
		"name":    "c.name",
		"program": "p.code",
	},
	defaultColumn: "c.id",
}

// CourseFilter narrows the course list
type CourseFilter struct {
	ProgramID *int64
}

// CourseRepository handles database operations for courses
type CourseRepository struct {
	db db.Querier
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db db.Querier) *CourseRepository {
	return &CourseRepository{db: db}
}

func (r *CourseRepository) selectQuery() squirrel.SelectBuilder {
	return psql.Select("c.id", "c.code", "c.name", "c.program_id", "p.code").
		From("courses c").
		Join("programs p ON p.id = c.program_id")
}

func scanCourse(row pgx.Row) (*models.Course, error) {
	var course models.Course
	if err := row.Scan(&course.ID, &course.Code, &course.Name, &course.ProgramID, &course.ProgramCode); err != nil {
		return nil, err
	}
	return &course, nil
}

// Create inserts a course and sets its id
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	insert := psql.Insert("courses").
		Columns("code", "name", "program_id").
		Values(course.Code, course.Name, course.ProgramID)
	return insertReturning(ctx, r.db, insert, "id", &course.ID, "course")
}

// GetByID retrieves a course by id
func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	return selectOne(ctx, r.db, r.selectQuery().Where(squirrel.Eq{"c.id": id}), scanCourse, "course")
}

// GetByCode retrieves a course by code
func (r *CourseRepository) GetByCode(ctx context.Context, code string) (*models.Course, error) {
	return selectOne(ctx, r.db, r.selectQuery().Where(squirrel.Eq{"c.code": code}), scanCourse, "course")
}

// List retrieves courses
func (r *CourseRepository) List(ctx context.Context, filter CourseFilter, opts ListOptions) ([]*models.Course, int64, error) {
	query := r.selectQuery()
	count := psql.Select("count(*)").From("courses c")
	if filter.ProgramID != nil {
		query = query.Where(squirrel.Eq{"c.program_id": *filter.ProgramID})
		count = count.Where(squirrel.Eq{"c.program_id": *filter.ProgramID})
	}
	return selectList(ctx, r.db, query, count, courseSorts, opts, scanCourse, "course")
}

// Update updates a course
func (r *CourseRepository) Update(ctx context.Context, course *models.Course) error {
	update := psql.Update("courses").
		Set("code", course.Code).
		Set("name", course.Name).
		Set("program_id", course.ProgramID).
		Where(squirrel.Eq{"id": course.ID})
	return execUpdate(ctx, r.db, update, "course")
}

// Delete deletes a course
func (r *CourseRepository) Delete(ctx context.Context, id int64) error {
	return execDelete(ctx, r.db, "courses", "id", id, "course")
}
