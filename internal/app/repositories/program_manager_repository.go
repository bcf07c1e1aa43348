package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/learntech/courseplanner/internal/app/models"
	"github.com/learntech/courseplanner/internal/db"
)

var programManagerSorts = sortColumns{
	fields: map[string]string{
		"id":       "pm.id",
		"email":    "pm.email",
		"program":  "p.code",
		"lastName": "u.last_name",
	},
	defaultColumn: "pm.id",
}

// ProgramManagerFilter narrows the program manager list
type ProgramManagerFilter struct {
	ProgramID *int64
	Email     *string
}

// ProgramManagerRepository handles database operations for program managers
type ProgramManagerRepository struct {
	db db.Querier
}

// NewProgramManagerRepository creates a new program manager repository
func NewProgramManagerRepository(db db.Querier) *ProgramManagerRepository {
	return &ProgramManagerRepository{db: db}
}

// selectQuery joins the program code and, when the user exists, their name
func (r *ProgramManagerRepository) selectQuery() squirrel.SelectBuilder {
	return psql.Select(
		"pm.id", "pm.email", "pm.program_id", "p.code",
		"COALESCE(u.first_name, '')", "COALESCE(u.last_name, '')",
	).From("program_managers pm").
		Join("programs p ON p.id = pm.program_id").
		LeftJoin("users u ON u.email = pm.email")
}

func scanProgramManager(row pgx.Row) (*models.ProgramManager, error) {
	var pm models.ProgramManager
	err := row.Scan(&pm.ID, &pm.Email, &pm.ProgramID, &pm.ProgramCode, &pm.FirstName, &pm.LastName)
	if err != nil {
		return nil, err
	}
	return &pm, nil
}

func (f ProgramManagerFilter) apply(query, count squirrel.SelectBuilder) (squirrel.SelectBuilder, squirrel.SelectBuilder) {
	if f.ProgramID != nil {
		query = query.Where(squirrel.Eq{"pm.program_id": *f.ProgramID})
		count = count.Where(squirrel.Eq{"pm.program_id": *f.ProgramID})
	}
	if f.Email != nil {
		query = query.Where(squirrel.Eq{"pm.email": *f.Email})
		count = count.Where(squirrel.Eq{"pm.email": *f.Email})
	}
	return query, count
}

// Create inserts a program manager and sets its id
func (r *ProgramManagerRepository) Create(ctx context.Context, pm *models.ProgramManager) error {
	insert := psql.Insert("program_managers").
		Columns("email", "program_id").
		Values(pm.Email, pm.ProgramID)
	return insertReturning(ctx, r.db, insert, "id", &pm.ID, "program manager")
}

// GetByID retrieves a program manager by id
func (r *ProgramManagerRepository) GetByID(ctx context.Context, id int64) (*models.ProgramManager, error) {
	return selectOne(ctx, r.db, r.selectQuery().Where(squirrel.Eq{"pm.id": id}), scanProgramManager, "program manager")
}

// List retrieves program managers
func (r *ProgramManagerRepository) List(ctx context.Context, filter ProgramManagerFilter, opts ListOptions) ([]*models.ProgramManager, int64, error) {
	query, count := filter.apply(r.selectQuery(), psql.Select("count(*)").From("program_managers pm"))
	return selectList(ctx, r.db, query, count, programManagerSorts, opts, scanProgramManager, "program manager")
}

// Update updates a program manager assignment
func (r *ProgramManagerRepository) Update(ctx context.Context, pm *models.ProgramManager) error {
	update := psql.Update("program_managers").
		Set("email", pm.Email).
		Set("program_id", pm.ProgramID).
		Where(squirrel.Eq{"id": pm.ID})
	return execUpdate(ctx, r.db, update, "program manager")
}

// Delete deletes a program manager assignment
func (r *ProgramManagerRepository) Delete(ctx context.Context, id int64) error {
	return execDelete(ctx, r.db, "program_managers", "id", id, "program manager")
}
