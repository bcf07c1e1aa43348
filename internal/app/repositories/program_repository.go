package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/learntech/courseplanner/internal/app/models"
	"github.com/learntech/courseplanner/internal/db"
)

var programSorts = sortColumns{
	fields: map[string]string{
		"id":   "id",
		"code": "code",
		"name": "name",
	},
	defaultColumn: "id",
}

// ProgramRepository handles database operations for programs
type ProgramRepository struct {
	db db.Querier
}

// NewProgramRepository creates a new program repository
func NewProgramRepository(db db.Querier) *ProgramRepository {
	return &ProgramRepository{db: db}
}

func (r *ProgramRepository) selectQuery() squirrel.SelectBuilder {
	return psql.Select("id", "code", "name").From("programs")
}

func scanProgram(row pgx.Row) (*models.Program, error) {
	var program models.Program
	if err := row.Scan(&program.ID, &program.Code, &program.Name); err != nil {
		return nil, err
	}
	return &program, nil
}

// Create inserts a program and sets its id
func (r *ProgramRepository) Create(ctx context.Context, program *models.Program) error {
	insert := psql.Insert("programs").
		Columns("code", "name").
		Values(program.Code, program.Name)
	return insertReturning(ctx, r.db, insert, "id", &program.ID, "program")
}

// GetByID retrieves a program by id
func (r *ProgramRepository) GetByID(ctx context.Context, id int64) (*models.Program, error) {
	return selectOne(ctx, r.db, r.selectQuery().Where(squirrel.Eq{"id": id}), scanProgram, "program")
}

// GetByCode retrieves a program by code
func (r *ProgramRepository) GetByCode(ctx context.Context, code string) (*models.Program, error) {
	return selectOne(ctx, r.db, r.selectQuery().Where(squirrel.Eq{"code": code}), scanProgram, "program")
}

// List retrieves programs
func (r *ProgramRepository) List(ctx context.Context, opts ListOptions) ([]*models.Program, int64, error) {
	count := psql.Select("count(*)").From("programs")
	return selectList(ctx, r.db, r.selectQuery(), count, programSorts, opts, scanProgram, "program")
}

// Update updates a program
func (r *ProgramRepository) Update(ctx context.Context, program *models.Program) error {
	update := psql.Update("programs").
		Set("code", program.Code).
		Set("name", program.Name).
		Where(squirrel.Eq{"id": program.ID})
	return execUpdate(ctx, r.db, update, "program")
}

// Delete deletes a program
func (r *ProgramRepository) Delete(ctx context.Context, id int64) error {
	return execDelete(ctx, r.db, "programs", "id", id, "program")
}
