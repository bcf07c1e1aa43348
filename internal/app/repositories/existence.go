package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/learntech/courseplanner/internal/db"
	"github.com/learntech/courseplanner/internal/pkg/apperrors"
	"github.com/learntech/courseplanner/internal/pkg/logger"
)

// Table names a table the existence check may query
type Table string

// Column names a column the existence check may compare
type Column string

const (
	TableUsers                  Table = "users"
	TableRoles                  Table = "roles"
	TableCampuses               Table = "campuses"
	TableFaculty                Table = "faculty"
	TableInstructionalDesigners Table = "instructional_designers"
	TableMediaLeads             Table = "media_leads"
	TablePrograms               Table = "programs"
	TableCourses                Table = "courses"
	TableProgramManagers        Table = "program_managers"
	TableCourseMatrix           Table = "course_matrix"
)

const (
	ColumnID    Column = "id"
	ColumnUID   Column = "uid"
	ColumnEmail Column = "email"
	ColumnCode  Column = "code"
	ColumnName  Column = "name"
)

// existenceColumns whitelists the (table, column) pairs that can be checked.
// Identifiers never come from request input.
var existenceColumns = map[Table]map[Column]bool{
	TableUsers:                  {ColumnUID: true, ColumnEmail: true},
	TableRoles:                  {ColumnID: true, ColumnName: true},
	TableCampuses:               {ColumnID: true, ColumnCode: true, ColumnName: true},
	TableFaculty:                {ColumnID: true, ColumnEmail: true},
	TableInstructionalDesigners: {ColumnID: true, ColumnEmail: true},
	TableMediaLeads:             {ColumnID: true, ColumnEmail: true},
	TablePrograms:               {ColumnID: true, ColumnCode: true},
	TableCourses:                {ColumnID: true, ColumnCode: true},
	TableProgramManagers:        {ColumnID: true, ColumnEmail: true},
	TableCourseMatrix:           {ColumnID: true},
}

// ExistenceChecker reports whether a row with a given column value exists
type ExistenceChecker struct {
	db db.Querier
}

// NewExistenceChecker creates a new existence checker
func NewExistenceChecker(db db.Querier) *ExistenceChecker {
	return &ExistenceChecker{db: db}
}

// existsQuery builds the existence query for a whitelisted pair
func existsQuery(table Table, column Column, value any) (string, []any, error) {
	if !existenceColumns[table][column] {
		return "", nil, fmt.Errorf("%w: %s.%s", apperrors.ErrUnknownIdentifier, table, column)
	}

	return psql.Select("1").
		Prefix("SELECT EXISTS (").
		From(string(table)).
		Where(squirrel.Eq{string(column): value}).
		Suffix(")").
		ToSql()
}

// Exists runs SELECT EXISTS on table.column = value
func (c *ExistenceChecker) Exists(ctx context.Context, table Table, column Column, value any) (bool, error) {
	sqlStr, args, err := existsQuery(table, column, value)
	if err != nil {
		return false, err
	}

	var exists bool
	if err := c.db.QueryRow(ctx, sqlStr, args...).Scan(&exists); err != nil {
		logger.Ctx(ctx).Error().Err(err).Str("table", string(table)).Str("column", string(column)).Msg("Error executing existence query")
		return false, fmt.Errorf("error checking %s.%s: %w", table, column, err)
	}
	return exists, nil
}
