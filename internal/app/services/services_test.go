package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/learntech/courseplanner/internal/app/models"
	"github.com/learntech/courseplanner/internal/app/repositories"
	"github.com/learntech/courseplanner/internal/pkg/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCampusStore struct {
	created []*models.Campus
	updated []*models.Campus
}

func (f *fakeCampusStore) Create(_ context.Context, campus *models.Campus) error {
	campus.ID = int64(len(f.created) + 1)
	f.created = append(f.created, campus)
	return nil
}

func (f *fakeCampusStore) GetByID(_ context.Context, id int64) (*models.Campus, error) {
	return nil, apperrors.NewResourceNotFoundError("campus not found")
}

func (f *fakeCampusStore) GetByCode(_ context.Context, code string) (*models.Campus, error) {
	return &models.Campus{ID: 1, Code: code}, nil
}

func (f *fakeCampusStore) List(context.Context, repositories.ListOptions) ([]*models.Campus, int64, error) {
	return f.created, int64(len(f.created)), nil
}

func (f *fakeCampusStore) Update(_ context.Context, campus *models.Campus) error {
	f.updated = append(f.updated, campus)
	return nil
}

func (f *fakeCampusStore) Delete(context.Context, int64) error { return nil }

func TestCampusServiceValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		campus models.Campus
		field  string
	}{
		{"blank code", models.Campus{Code: "  ", Name: "Melbourne"}, "code"},
		{"code with spaces", models.Campus{Code: "MEL CITY", Name: "Melbourne"}, "code"},
		{"blank name", models.Campus{Code: "MEL", Name: " "}, "name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			store := &fakeCampusStore{}
			svc := NewCampusService(store)

			campus := tt.campus
			err := svc.CreateCampus(context.Background(), &campus)
			require.ErrorIs(t, err, apperrors.ErrValidationFailed)

			var ce *apperrors.CustomError
			require.True(t, errors.As(err, &ce))
			assert.Equal(t, tt.field, ce.Field)
			assert.Empty(t, store.created, "invalid campus must not reach the store")
		})
	}
}

func TestCampusServiceCreate(t *testing.T) {
	t.Parallel()

	store := &fakeCampusStore{}
	svc := NewCampusService(store)

	campus := &models.Campus{Code: "MEL", Name: "Melbourne"}
	require.NoError(t, svc.CreateCampus(context.Background(), campus))
	assert.Equal(t, int64(1), campus.ID)

	_, err := svc.GetCampusByCode(context.Background(), " ")
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

type fakeExistence struct {
	emails map[string]bool
	err    error
}

func (f fakeExistence) Exists(_ context.Context, table repositories.Table, column repositories.Column, value any) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	if table != repositories.TableUsers || column != repositories.ColumnEmail {
		return false, apperrors.ErrUnknownIdentifier
	}
	return f.emails[value.(string)], nil
}

type fakeProgramManagerStore struct {
	created int
}

func (f *fakeProgramManagerStore) Create(_ context.Context, pm *models.ProgramManager) error {
	f.created++
	pm.ID = int64(f.created)
	return nil
}

func (f *fakeProgramManagerStore) GetByID(context.Context, int64) (*models.ProgramManager, error) {
	return nil, apperrors.NewResourceNotFoundError("program manager not found")
}

func (f *fakeProgramManagerStore) List(context.Context, repositories.ProgramManagerFilter, repositories.ListOptions) ([]*models.ProgramManager, int64, error) {
	return nil, 0, nil
}

func (f *fakeProgramManagerStore) Update(context.Context, *models.ProgramManager) error { return nil }

func (f *fakeProgramManagerStore) Delete(context.Context, int64) error { return nil }

func TestProgramManagerRequiresRegisteredUser(t *testing.T) {
	t.Parallel()

	store := &fakeProgramManagerStore{}
	svc := NewProgramManagerService(store, fakeExistence{emails: map[string]bool{"pm@example.edu": true}})

	err := svc.CreateProgramManager(context.Background(), &models.ProgramManager{Email: "stranger@example.edu", ProgramID: 1})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.Zero(t, store.created)

	pm := &models.ProgramManager{Email: "pm@example.edu", ProgramID: 1}
	require.NoError(t, svc.CreateProgramManager(context.Background(), pm))
	assert.Equal(t, int64(1), pm.ID)

	failing := NewProgramManagerService(store, fakeExistence{err: errors.New("db down")})
	err = failing.CreateProgramManager(context.Background(), &models.ProgramManager{Email: "pm@example.edu", ProgramID: 1})
	require.Error(t, err)
	assert.False(t, errors.Is(err, apperrors.ErrValidationFailed))
}

type fakeMatrixStore struct {
	lastFilter repositories.CourseMatrixFilter
	lastOpts   repositories.ListOptions
	created    *models.CourseMatrix
	lists      int
}

func (f *fakeMatrixStore) Create(_ context.Context, cm *models.CourseMatrix) error {
	f.created = cm
	return nil
}

func (f *fakeMatrixStore) GetByID(context.Context, int64) (*models.CourseMatrix, error) {
	return nil, apperrors.NewResourceNotFoundError("course matrix entry not found")
}

func (f *fakeMatrixStore) List(_ context.Context, filter repositories.CourseMatrixFilter, opts repositories.ListOptions) ([]*models.CourseMatrix, int64, error) {
	f.lists++
	f.lastFilter = filter
	f.lastOpts = opts
	return []*models.CourseMatrix{}, 0, nil
}

func (f *fakeMatrixStore) Update(context.Context, *models.CourseMatrix) error { return nil }

func (f *fakeMatrixStore) Delete(context.Context, int64) error { return nil }

func TestCourseMatrixStartRange(t *testing.T) {
	t.Parallel()

	store := &fakeMatrixStore{}
	svc := NewCourseMatrixService(store)

	_, _, err := svc.ListByStartRange(context.Background(), "2022-0", "2023-2", repositories.ListOptions{})
	require.NoError(t, err)
	assert.Equal(t, "2022-0", store.lastFilter.StartFrom)
	assert.Equal(t, "2023-2", store.lastFilter.StartTo)
	assert.Equal(t, "start", store.lastOpts.Sort)
	assert.Equal(t, "asc", store.lastOpts.Order)

	_, _, err = svc.ListByStartRange(context.Background(), "2022-0", "", repositories.ListOptions{Sort: "status"})
	require.NoError(t, err)
	assert.Equal(t, "status", store.lastOpts.Sort)

	lists := store.lists
	for _, bounds := range [][2]string{
		{"2023-2", "2022-0"},
		{"2022", "2023-2"},
		{"2022-0", "soon"},
		{"", ""},
	} {
		_, _, err = svc.ListByStartRange(context.Background(), bounds[0], bounds[1], repositories.ListOptions{})
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed, bounds)
	}
	assert.Equal(t, lists, store.lists, "invalid ranges must not query")
}

func TestCourseMatrixFiscalQueries(t *testing.T) {
	t.Parallel()

	store := &fakeMatrixStore{}
	svc := NewCourseMatrixService(store)

	from := 2024
	_, _, err := svc.ListByFiscalRange(context.Background(), &from, nil, repositories.ListOptions{})
	require.NoError(t, err)
	assert.Equal(t, &from, store.lastFilter.FiscalFrom)
	assert.Nil(t, store.lastFilter.FiscalTo)
	assert.Equal(t, "fiscalHalf", store.lastOpts.Sort)

	to := 2023
	_, _, err = svc.ListByFiscalRange(context.Background(), &from, &to, repositories.ListOptions{})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, _, err = svc.ListByFiscalYears(context.Background(), []string{"2023-2024", "2024-2025"}, repositories.ListOptions{})
	require.NoError(t, err)
	assert.Equal(t, []string{"2023-2024", "2024-2025"}, store.lastFilter.FiscalYears)

	_, _, err = svc.ListByFiscalYears(context.Background(), []string{"2024-2026"}, repositories.ListOptions{})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, _, err = svc.ListByFiscalYears(context.Background(), nil, repositories.ListOptions{})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestCourseMatrixCreateStampsUpdatedOn(t *testing.T) {
	t.Parallel()

	store := &fakeMatrixStore{}
	svc := NewCourseMatrixService(store).(*courseMatrixServiceImpl)
	fixed := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	cm := &models.CourseMatrix{ProgramID: 1, CourseID: 2, FiscalYear: "2024-2025", Start: "2024-1", Increment: 1}
	require.NoError(t, svc.CreateCourseMatrix(context.Background(), cm))
	assert.Equal(t, fixed, store.created.UpdatedOn)

	invalidRows := []models.CourseMatrix{
		{ProgramID: 0, CourseID: 2, FiscalYear: "2024-2025"},
		{ProgramID: 1, CourseID: 2, FiscalYear: "2024"},
		{ProgramID: 1, CourseID: 2, FiscalYear: "2024-2025", Increment: 2},
		{ProgramID: 1, CourseID: 2, FiscalYear: "2024-2025", Start: "Spring 2024"},
		{ProgramID: 1, CourseID: 2, FiscalYear: "2024-2025", FacultyID: new(int64)},
	}
	for i := range invalidRows {
		assert.ErrorIs(t, svc.CreateCourseMatrix(context.Background(), &invalidRows[i]), apperrors.ErrValidationFailed)
	}
}
