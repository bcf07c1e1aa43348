package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/learntech/courseplanner/internal/app/models"
	"github.com/learntech/courseplanner/internal/db"
)

var staffSorts = sortColumns{
	fields: map[string]string{
		"id":        "id",
		"email":     "email",
		"firstName": "first_name",
		"lastName":  "last_name",
	},
	defaultColumn: "id",
}

var staffTables = map[models.StaffKind]Table{
	models.StaffInstructionalDesigner: TableInstructionalDesigners,
	models.StaffMediaLead:             TableMediaLeads,
}

// StaffRepository handles database operations for one staff table.
// Instructional designers and media leads share the same shape.
type StaffRepository struct {
	db     db.Querier
	table  string
	entity string
}

// NewStaffRepository creates a repository for the given staff kind
func NewStaffRepository(db db.Querier, kind models.StaffKind) *StaffRepository {
	table, ok := staffTables[kind]
	if !ok {
		panic(fmt.Sprintf("unknown staff kind %q", kind))
	}
	return &StaffRepository{db: db, table: string(table), entity: string(kind)}
}

func (r *StaffRepository) selectQuery() squirrel.SelectBuilder {
	return psql.Select("id", "email", "first_name", "last_name").From(r.table)
}

func scanStaff(row pgx.Row) (*models.StaffMember, error) {
	var member models.StaffMember
	if err := row.Scan(&member.ID, &member.Email, &member.FirstName, &member.LastName); err != nil {
		return nil, err
	}
	return &member, nil
}

// Create inserts a staff member and sets its id
func (r *StaffRepository) Create(ctx context.Context, member *models.StaffMember) error {
	insert := psql.Insert(r.table).
		Columns("email", "first_name", "last_name").
		Values(member.Email, member.FirstName, member.LastName)
	return insertReturning(ctx, r.db, insert, "id", &member.ID, r.entity)
}

// GetByID retrieves a staff member by id
func (r *StaffRepository) GetByID(ctx context.Context, id int64) (*models.StaffMember, error) {
	return selectOne(ctx, r.db, r.selectQuery().Where(squirrel.Eq{"id": id}), scanStaff, r.entity)
}

// List retrieves staff members
func (r *StaffRepository) List(ctx context.Context, opts ListOptions) ([]*models.StaffMember, int64, error) {
	count := psql.Select("count(*)").From(r.table)
	return selectList(ctx, r.db, r.selectQuery(), count, staffSorts, opts, scanStaff, r.entity)
}

// Update updates a staff member
func (r *StaffRepository) Update(ctx context.Context, member *models.StaffMember) error {
	update := psql.Update(r.table).
		Set("email", member.Email).
		Set("first_name", member.FirstName).
		Set("last_name", member.LastName).
		Where(squirrel.Eq{"id": member.ID})
	return execUpdate(ctx, r.db, update, r.entity)
}

// Delete deletes a staff member
func (r *StaffRepository) Delete(ctx context.Context, id int64) error {
	return execDelete(ctx, r.db, r.table, "id", id, r.entity)
}
