package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/learntech/courseplanner/internal/app/models"
	"github.com/learntech/courseplanner/internal/db"
)

var courseMatrixSorts = sortColumns{
	fields: map[string]string{
		"id":         "cm.id",
		"program":    "p.code",
		"course":     "c.code",
		"status":     "cm.status",
		"start":      "cm.start",
		"live":       "cm.live",
		"fiscalYear": "cm.fiscal_year",
		"fiscalHalf": fiscalHalfExpr,
		"increment":  "cm.increment",
		"updatedOn":  "cm.updated_on",
	},
	defaultColumn: "cm.id",
}

// fiscalHalfExpr renders a row's position in fiscal-half order, e.g. "2024-2025:1"
const fiscalHalfExpr = "(cm.fiscal_year || ':' || cm.increment)"

// CourseMatrixFilter narrows course matrix queries. Zero values do not filter.
type CourseMatrixFilter struct {
	ProgramID   *int64
	CourseID    *int64
	CampusID    *int64
	FacultyID   *int64
	DesignerID  *int64
	MediaLeadID *int64
	Status      *string
	Live        *string
	// FiscalYears matches any of the listed "YYYY-YYYY" years
	FiscalYears []string
	// StartFrom and StartTo bound the start term code, inclusive
	StartFrom string
	StartTo   string
	// FiscalFrom and FiscalTo bound the fiscal half, inclusive: FiscalFrom
	// starts at the first half of that fiscal year, FiscalTo ends at the second.
	FiscalFrom *int
	FiscalTo   *int
}

// conditions renders the filter as a conjunction of WHERE terms
func (f CourseMatrixFilter) conditions() squirrel.And {
	where := squirrel.And{}

	eq := func(column string, value *int64) {
		if value != nil {
			where = append(where, squirrel.Eq{column: *value})
		}
	}
	eq("cm.program_id", f.ProgramID)
	eq("cm.course_id", f.CourseID)
	eq("cm.campus_id", f.CampusID)
	eq("cm.faculty_id", f.FacultyID)
	eq("cm.designer_id", f.DesignerID)
	eq("cm.media_lead_id", f.MediaLeadID)

	if f.Status != nil {
		where = append(where, squirrel.Eq{"cm.status": *f.Status})
	}
	if f.Live != nil {
		where = append(where, squirrel.Eq{"cm.live": *f.Live})
	}
	if len(f.FiscalYears) > 0 {
		where = append(where, squirrel.Eq{"cm.fiscal_year": f.FiscalYears})
	}

	switch {
	case f.StartFrom != "" && f.StartTo != "":
		where = append(where, squirrel.Expr("cm.start BETWEEN ? AND ?", f.StartFrom, f.StartTo))
	case f.StartFrom != "":
		where = append(where, squirrel.GtOrEq{"cm.start": f.StartFrom})
	case f.StartTo != "":
		where = append(where, squirrel.LtOrEq{"cm.start": f.StartTo})
	}

	if f.FiscalFrom != nil {
		where = append(where, squirrel.Expr(fiscalHalfExpr+" >= ?", models.FiscalHalf(*f.FiscalFrom, models.FirstFiscalHalf)))
	}
	if f.FiscalTo != nil {
		where = append(where, squirrel.Expr(fiscalHalfExpr+" <= ?", models.FiscalHalf(*f.FiscalTo, models.SecondFiscalHalf)))
	}

	return where
}

// CourseMatrixRepository handles database operations for the course matrix
type CourseMatrixRepository struct {
	db db.Querier
}

// NewCourseMatrixRepository creates a new course matrix repository
func NewCourseMatrixRepository(db db.Querier) *CourseMatrixRepository {
	return &CourseMatrixRepository{db: db}
}

func (r *CourseMatrixRepository) selectQuery() squirrel.SelectBuilder {
	return psql.Select(
		"cm.id", "cm.program_id", "p.code", "cm.course_id", "c.code", "c.name",
		"cm.status", "cm.start", "cm.live", "cm.fiscal_year", "cm.increment",
		"cm.faculty_id", "cm.campus_id", "cm.designer_id", "cm.media_lead_id", "cm.updated_on",
	).From("course_matrix cm").
		Join("programs p ON p.id = cm.program_id").
		Join("courses c ON c.id = cm.course_id")
}

func scanCourseMatrix(row pgx.Row) (*models.CourseMatrix, error) {
	var cm models.CourseMatrix
	err := row.Scan(
		&cm.ID, &cm.ProgramID, &cm.ProgramCode, &cm.CourseID, &cm.CourseCode, &cm.CourseName,
		&cm.Status, &cm.Start, &cm.Live, &cm.FiscalYear, &cm.Increment,
		&cm.FacultyID, &cm.CampusID, &cm.DesignerID, &cm.MediaLeadID, &cm.UpdatedOn,
	)
	if err != nil {
		return nil, err
	}
	return &cm, nil
}

// Create inserts a course matrix row and sets its id
func (r *CourseMatrixRepository) Create(ctx context.Context, cm *models.CourseMatrix) error {
	insert := psql.Insert("course_matrix").
		Columns(
			"program_id", "course_id", "status", "start", "live", "fiscal_year", "increment",
			"faculty_id", "campus_id", "designer_id", "media_lead_id", "updated_on",
		).
		Values(
			cm.ProgramID, cm.CourseID, cm.Status, cm.Start, cm.Live, cm.FiscalYear, cm.Increment,
			cm.FacultyID, cm.CampusID, cm.DesignerID, cm.MediaLeadID, cm.UpdatedOn,
		)
	return insertReturning(ctx, r.db, insert, "id", &cm.ID, "course matrix entry")
}

// GetByID retrieves a course matrix row by id
func (r *CourseMatrixRepository) GetByID(ctx context.Context, id int64) (*models.CourseMatrix, error) {
	return selectOne(ctx, r.db, r.selectQuery().Where(squirrel.Eq{"cm.id": id}), scanCourseMatrix, "course matrix entry")
}

// List retrieves course matrix rows matching the filter
func (r *CourseMatrixRepository) List(ctx context.Context, filter CourseMatrixFilter, opts ListOptions) ([]*models.CourseMatrix, int64, error) {
	query := r.selectQuery()
	count := psql.Select("count(*)").From("course_matrix cm")
	if where := filter.conditions(); len(where) > 0 {
		query = query.Where(where)
		count = count.Where(where)
	}
	return selectList(ctx, r.db, query, count, courseMatrixSorts, opts, scanCourseMatrix, "course matrix entry")
}

// Update updates a course matrix row
func (r *CourseMatrixRepository) Update(ctx context.Context, cm *models.CourseMatrix) error {
	update := psql.Update("course_matrix").
		Set("program_id", cm.ProgramID).
		Set("course_id", cm.CourseID).
		Set("status", cm.Status).
		Set("start", cm.Start).
		Set("live", cm.Live).
		Set("fiscal_year", cm.FiscalYear).
		Set("increment", cm.Increment).
		Set("faculty_id", cm.FacultyID).
		Set("campus_id", cm.CampusID).
		Set("designer_id", cm.DesignerID).
		Set("media_lead_id", cm.MediaLeadID).
		Set("updated_on", cm.UpdatedOn).
		Where(squirrel.Eq{"id": cm.ID})
	return execUpdate(ctx, r.db, update, "course matrix entry")
}

// Delete deletes a course matrix row
func (r *CourseMatrixRepository) Delete(ctx context.Context, id int64) error {
	return execDelete(ctx, r.db, "course_matrix", "id", id, "course matrix entry")
}
