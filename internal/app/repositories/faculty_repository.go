package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/learntech/courseplanner/internal/app/models"
	"github.com/learntech/courseplanner/internal/db"
)

var facultySorts = sortColumns{
	fields: map[string]string{
		"id":        "f.id",
		"email":     "f.email",
		"firstName": "f.first_name",
		"lastName":  "f.last_name",
		"campus":    "c.name",
	},
	defaultColumn: "f.id",
}

// FacultyFilter narrows the faculty list
type FacultyFilter struct {
	CampusID *int64
}

// FacultyRepository handles database operations for faculty members
type FacultyRepository struct {
	db db.Querier
}

// NewFacultyRepository creates a new faculty repository
func NewFacultyRepository(db db.Querier) *FacultyRepository {
	return &FacultyRepository{db: db}
}

func (r *FacultyRepository) selectQuery() squirrel.SelectBuilder {
	return psql.Select(
		"f.id", "f.email", "f.first_name", "f.last_name", "f.campus_id", "COALESCE(c.name, '')",
	).From("faculty f").
		LeftJoin("campuses c ON c.id = f.campus_id")
}

func scanFaculty(row pgx.Row) (*models.Faculty, error) {
	var faculty models.Faculty
	err := row.Scan(
		&faculty.ID, &faculty.Email, &faculty.FirstName, &faculty.LastName,
		&faculty.CampusID, &faculty.CampusName,
	)
	if err != nil {
		return nil, err
	}
	return &faculty, nil
}

// Create inserts a faculty member and sets its id
func (r *FacultyRepository) Create(ctx context.Context, faculty *models.Faculty) error {
	insert := psql.Insert("faculty").
		Columns("email", "first_name", "last_name", "campus_id").
		Values(faculty.Email, faculty.FirstName, faculty.LastName, faculty.CampusID)
	return insertReturning(ctx, r.db, insert, "id", &faculty.ID, "faculty member")
}

// GetByID retrieves a faculty member by id
func (r *FacultyRepository) GetByID(ctx context.Context, id int64) (*models.Faculty, error) {
	return selectOne(ctx, r.db, r.selectQuery().Where(squirrel.Eq{"f.id": id}), scanFaculty, "faculty member")
}

// List retrieves faculty members
func (r *FacultyRepository) List(ctx context.Context, filter FacultyFilter, opts ListOptions) ([]*models.Faculty, int64, error) {
	query := r.selectQuery()
	count := psql.Select("count(*)").From("faculty f")
	if filter.CampusID != nil {
		query = query.Where(squirrel.Eq{"f.campus_id": *filter.CampusID})
		count = count.Where(squirrel.Eq{"f.campus_id": *filter.CampusID})
	}
	return selectList(ctx, r.db, query, count, facultySorts, opts, scanFaculty, "faculty member")
}

// Update updates a faculty member
func (r *FacultyRepository) Update(ctx context.Context, faculty *models.Faculty) error {
	update := psql.Update("faculty").
		Set("email", faculty.Email).
		Set("first_name", faculty.FirstName).
		Set("last_name", faculty.LastName).
		Set("campus_id", faculty.CampusID).
		Where(squirrel.Eq{"id": faculty.ID})
	return execUpdate(ctx, r.db, update, "faculty member")
}

// Delete deletes a faculty member
func (r *FacultyRepository) Delete(ctx context.Context, id int64) error {
	return execDelete(ctx, r.db, "faculty", "id", id, "faculty member")
}
