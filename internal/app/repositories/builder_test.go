package repositories

import (
	"context"
	"testing"

	"github.com/learntech/courseplanner/internal/pkg/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }

func TestCourseMatrixFilterSQL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		filter    CourseMatrixFilter
		wantWhere string
		wantArgs  []any
	}{
		{
			name:      "no filter",
			filter:    CourseMatrixFilter{},
			wantWhere: "",
			wantArgs:  nil,
		},
		{
			name:      "closed start range",
			filter:    CourseMatrixFilter{StartFrom: "2022-0", StartTo: "2023-2"},
			wantWhere: " WHERE (cm.start BETWEEN $1 AND $2)",
			wantArgs:  []any{"2022-0", "2023-2"},
		},
		{
			name:      "open start range from",
			filter:    CourseMatrixFilter{StartFrom: "2022-0"},
			wantWhere: " WHERE (cm.start >= $1)",
			wantArgs:  []any{"2022-0"},
		},
		{
			name:      "open start range to",
			filter:    CourseMatrixFilter{StartTo: "2023-2"},
			wantWhere: " WHERE (cm.start <= $1)",
			wantArgs:  []any{"2023-2"},
		},
		{
			name:      "fiscal year list",
			filter:    CourseMatrixFilter{FiscalYears: []string{"2023-2024", "2024-2025"}},
			wantWhere: " WHERE (cm.fiscal_year IN ($1,$2))",
			wantArgs:  []any{"2023-2024", "2024-2025"},
		},
		{
			name:      "fiscal half from",
			filter:    CourseMatrixFilter{FiscalFrom: intPtr(2024)},
			wantWhere: " WHERE ((cm.fiscal_year || ':' || cm.increment) >= $1)",
			wantArgs:  []any{"2024-2025:0"},
		},
		{
			name:      "fiscal half to",
			filter:    CourseMatrixFilter{FiscalTo: intPtr(2024)},
			wantWhere: " WHERE ((cm.fiscal_year || ':' || cm.increment) <= $1)",
			wantArgs:  []any{"2024-2025:1"},
		},
		{
			name:      "combined",
			filter:    CourseMatrixFilter{ProgramID: int64Ptr(3), Status: strPtr("Live"), FiscalYears: []string{"2024-2025"}},
			wantWhere: " WHERE (cm.program_id = $1 AND cm.status = $2 AND cm.fiscal_year IN ($3))",
			wantArgs:  []any{int64(3), "Live", "2024-2025"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			query := psql.Select("cm.id").From("course_matrix cm")
			if where := tt.filter.conditions(); len(where) > 0 {
				query = query.Where(where)
			}
			sqlStr, args, err := query.ToSql()
			require.NoError(t, err)
			assert.Equal(t, "SELECT cm.id FROM course_matrix cm"+tt.wantWhere, sqlStr)
			if tt.wantArgs == nil {
				assert.Empty(t, args)
			} else {
				assert.Equal(t, tt.wantArgs, args)
			}
		})
	}
}

func TestSortColumns(t *testing.T) {
	t.Parallel()

	orderBy, err := courseMatrixSorts.orderBy("", "")
	require.NoError(t, err)
	assert.Equal(t, "cm.id ASC", orderBy)

	orderBy, err = courseMatrixSorts.orderBy("start", "DESC")
	require.NoError(t, err)
	assert.Equal(t, "cm.start DESC", orderBy)

	orderBy, err = courseMatrixSorts.orderBy("fiscalHalf", "desc")
	require.NoError(t, err)
	assert.Equal(t, "(cm.fiscal_year || ':' || cm.increment) DESC", orderBy)

	_, err = courseMatrixSorts.orderBy("cm.start", "")
	assert.ErrorIs(t, err, apperrors.ErrUnknownSortField)
}

func TestExistsQuery(t *testing.T) {
	t.Parallel()

	sqlStr, args, err := existsQuery(TableUsers, ColumnEmail, "pm@example.edu")
	require.NoError(t, err)
	assert.Equal(t, "SELECT EXISTS ( SELECT 1 FROM users WHERE email = $1 )", sqlStr)
	assert.Equal(t, []any{"pm@example.edu"}, args)

	_, _, err = existsQuery(TableUsers, ColumnCode, "x")
	assert.ErrorIs(t, err, apperrors.ErrUnknownIdentifier)

	_, _, err = existsQuery(Table("pg_shadow"), ColumnID, 1)
	assert.ErrorIs(t, err, apperrors.ErrUnknownIdentifier)
}

func TestExistenceChecker(t *testing.T) {
	t.Parallel()
	mock := newMock(t)
	checker := NewExistenceChecker(mock)

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("pm@example.edu").
		WillReturnRows(mock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := checker.Exists(context.Background(), TableUsers, ColumnEmail, "pm@example.edu")
	require.NoError(t, err)
	assert.True(t, exists)

	_, err = checker.Exists(context.Background(), Table("users; --"), ColumnEmail, "x")
	assert.ErrorIs(t, err, apperrors.ErrUnknownIdentifier)
}
