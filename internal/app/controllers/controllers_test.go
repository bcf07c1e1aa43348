package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/learntech/courseplanner/internal/app/auth"
	"github.com/learntech/courseplanner/internal/app/models"
	"github.com/learntech/courseplanner/internal/app/models/dto"
	"github.com/learntech/courseplanner/internal/app/repositories"
	"github.com/learntech/courseplanner/internal/middleware"
	"github.com/learntech/courseplanner/internal/pkg/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
	middleware.RegisterValidators()
}

type envelope struct {
	Success    bool                `json:"success"`
	Message    string              `json:"message"`
	Data       json.RawMessage     `json:"data"`
	Pagination *dto.PaginationInfo `json:"pagination"`
	Error      *dto.ErrorDetail    `json:"error"`
}

func do(t *testing.T, r http.Handler, method, target, body string) (int, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return w.Code, env
}

type fakeCampusService struct {
	campuses map[int64]*models.Campus
	lastOpts repositories.ListOptions
	deleted  []int64
}

func newFakeCampusService() *fakeCampusService {
	return &fakeCampusService{campuses: map[int64]*models.Campus{}}
}

func (f *fakeCampusService) ListCampuses(_ context.Context, opts repositories.ListOptions) ([]*models.Campus, int64, error) {
	f.lastOpts = opts
	out := make([]*models.Campus, 0, len(f.campuses))
	for _, c := range f.campuses {
		out = append(out, c)
	}
	return out, int64(len(out)), nil
}

func (f *fakeCampusService) GetCampusByID(_ context.Context, id int64) (*models.Campus, error) {
	if c, ok := f.campuses[id]; ok {
		return c, nil
	}
	return nil, apperrors.NewResourceNotFoundError("campus not found")
}

func (f *fakeCampusService) GetCampusByCode(_ context.Context, code string) (*models.Campus, error) {
	for _, c := range f.campuses {
		if c.Code == code {
			return c, nil
		}
	}
	return nil, apperrors.NewResourceNotFoundError("campus not found")
}

func (f *fakeCampusService) CreateCampus(_ context.Context, campus *models.Campus) error {
	for _, c := range f.campuses {
		if c.Code == campus.Code {
			return apperrors.NewAlreadyExistsError("campus with this code already exists")
		}
	}
	campus.ID = int64(len(f.campuses) + 1)
	f.campuses[campus.ID] = campus
	return nil
}

func (f *fakeCampusService) UpdateCampus(_ context.Context, campus *models.Campus) error {
	if _, ok := f.campuses[campus.ID]; !ok {
		return apperrors.NewResourceNotFoundError("campus not found")
	}
	f.campuses[campus.ID] = campus
	return nil
}

func (f *fakeCampusService) DeleteCampus(_ context.Context, id int64) error {
	f.deleted = append(f.deleted, id)
	delete(f.campuses, id)
	return nil
}

func campusRouter(svc *fakeCampusService) *gin.Engine {
	ctrl := NewCampusController(svc)
	r := gin.New()
	r.GET("/campuses", ctrl.ListCampuses)
	r.GET("/campuses/code/:code", ctrl.GetCampusByCode)
	r.GET("/campuses/:id", ctrl.GetCampusByID)
	r.POST("/campuses", ctrl.CreateCampus)
	r.POST("/campuses/:id", ctrl.UpdateCampus)
	r.DELETE("/campuses/:id", ctrl.DeleteCampus)
	return r
}

func TestCampusControllerRoundTrip(t *testing.T) {
	t.Parallel()
	svc := newFakeCampusService()
	r := campusRouter(svc)

	status, env := do(t, r, http.MethodPost, "/campuses", `{"code":" MEL ","name":"Melbourne"}`)
	require.Equal(t, http.StatusOK, status)
	var created models.Campus
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, models.Campus{ID: 1, Code: "MEL", Name: "Melbourne"}, created)

	status, env = do(t, r, http.MethodGet, "/campuses/1", "")
	require.Equal(t, http.StatusOK, status)
	var fetched models.Campus
	require.NoError(t, json.Unmarshal(env.Data, &fetched))
	assert.Equal(t, created, fetched)

	status, _ = do(t, r, http.MethodGet, "/campuses/code/MEL", "")
	assert.Equal(t, http.StatusOK, status)

	status, env = do(t, r, http.MethodPost, "/campuses", `{"code":"MEL","name":"Again"}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, dto.ErrorCodeResourceAlreadyExists, env.Error.Code)
	assert.Len(t, svc.campuses, 1)

	status, _ = do(t, r, http.MethodPost, "/campuses/1", `{"code":"MEL","name":"Melbourne City"}`)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Melbourne City", svc.campuses[1].Name)
}

func TestCampusControllerErrors(t *testing.T) {
	t.Parallel()
	r := campusRouter(newFakeCampusService())

	status, env := do(t, r, http.MethodGet, "/campuses/999", "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.NotEmpty(t, env.Message)
	assert.False(t, env.Success)

	status, env = do(t, r, http.MethodGet, "/campuses/abc", "")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "id", env.Error.Field)

	status, env = do(t, r, http.MethodPost, "/campuses", `{"name":"Nowhere"}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, dto.ErrorCodeValidationFailed, env.Error.Code)
	assert.Equal(t, "code", env.Error.Field)

	status, env = do(t, r, http.MethodGet, "/campuses?order=sideways", "")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "order", env.Error.Field)
}

func TestCampusControllerDeleteAlwaysSucceeds(t *testing.T) {
	t.Parallel()
	svc := newFakeCampusService()
	r := campusRouter(svc)

	status, env := do(t, r, http.MethodDelete, "/campuses/42", "")
	assert.Equal(t, http.StatusOK, status)
	assert.True(t, env.Success)
	assert.Equal(t, dto.DeleteSuccessMessage, env.Message)
	assert.Equal(t, []int64{42}, svc.deleted)
}

func TestListPagination(t *testing.T) {
	t.Parallel()
	svc := newFakeCampusService()
	r := campusRouter(svc)
	for _, code := range []string{"MEL", "SYD", "BNE"} {
		status, _ := do(t, r, http.MethodPost, "/campuses", `{"code":"`+code+`","name":"`+code+`"}`)
		require.Equal(t, http.StatusOK, status)
	}

	status, env := do(t, r, http.MethodGet, "/campuses?sort=name&order=desc", "")
	require.Equal(t, http.StatusOK, status)
	assert.Nil(t, env.Pagination)
	assert.Equal(t, repositories.ListOptions{Sort: "name", Order: "desc"}, svc.lastOpts)

	status, env = do(t, r, http.MethodGet, "/campuses?page=1&size=2", "")
	require.Equal(t, http.StatusOK, status)
	require.NotNil(t, env.Pagination)
	assert.Equal(t, 1, env.Pagination.CurrentPage)
	assert.Equal(t, 2, env.Pagination.TotalPages)
	assert.Equal(t, int64(3), env.Pagination.TotalItems)
	assert.Equal(t, 2, svc.lastOpts.Size)
}

type fakeMatrixService struct {
	calls    []string
	years    []string
	from, to string
	fyFrom   *int
	fyTo     *int
	filter   repositories.CourseMatrixFilter
	created  *models.CourseMatrix
}

func (f *fakeMatrixService) ListCourseMatrix(_ context.Context, filter repositories.CourseMatrixFilter, _ repositories.ListOptions) ([]*models.CourseMatrix, int64, error) {
	f.calls = append(f.calls, "list")
	f.filter = filter
	return []*models.CourseMatrix{}, 0, nil
}

func (f *fakeMatrixService) GetCourseMatrixByID(context.Context, int64) (*models.CourseMatrix, error) {
	return nil, apperrors.NewResourceNotFoundError("course matrix entry not found")
}

func (f *fakeMatrixService) ListByProgram(_ context.Context, programID int64, _ repositories.ListOptions) ([]*models.CourseMatrix, int64, error) {
	f.calls = append(f.calls, "program")
	return []*models.CourseMatrix{{ID: 1, ProgramID: programID}}, 1, nil
}

func (f *fakeMatrixService) ListByCourse(_ context.Context, courseID int64, _ repositories.ListOptions) ([]*models.CourseMatrix, int64, error) {
	f.calls = append(f.calls, "course")
	return []*models.CourseMatrix{{ID: 1, CourseID: courseID}}, 1, nil
}

func (f *fakeMatrixService) ListByFiscalYears(_ context.Context, years []string, _ repositories.ListOptions) ([]*models.CourseMatrix, int64, error) {
	f.calls = append(f.calls, "fiscal-years")
	f.years = years
	return []*models.CourseMatrix{}, 0, nil
}

func (f *fakeMatrixService) ListByStartRange(_ context.Context, from, to string, _ repositories.ListOptions) ([]*models.CourseMatrix, int64, error) {
	f.calls = append(f.calls, "range")
	f.from, f.to = from, to
	if from != "" && to != "" && from > to {
		return nil, 0, apperrors.NewValidationError("reversed range")
	}
	return []*models.CourseMatrix{}, 0, nil
}

func (f *fakeMatrixService) ListByFiscalRange(_ context.Context, from, to *int, _ repositories.ListOptions) ([]*models.CourseMatrix, int64, error) {
	f.calls = append(f.calls, "fiscal")
	f.fyFrom, f.fyTo = from, to
	return []*models.CourseMatrix{}, 0, nil
}

func (f *fakeMatrixService) CreateCourseMatrix(_ context.Context, cm *models.CourseMatrix) error {
	cm.ID = 7
	f.created = cm
	return nil
}

func (f *fakeMatrixService) UpdateCourseMatrix(context.Context, *models.CourseMatrix) error {
	return nil
}

func (f *fakeMatrixService) DeleteCourseMatrix(context.Context, int64) error { return nil }

func matrixRouter(svc *fakeMatrixService) *gin.Engine {
	ctrl := NewCourseMatrixController(svc)
	r := gin.New()
	r.GET("/course-matrix", ctrl.ListCourseMatrix)
	r.GET("/course-matrix/:id", ctrl.GetCourseMatrixByID)
	r.GET("/course-matrix/program/:programId", ctrl.ListByProgram)
	r.GET("/course-matrix/course/:courseId", ctrl.ListByCourse)
	r.GET("/course-matrix/fiscal-years/:years", ctrl.ListByFiscalYears)
	r.GET("/course-matrix/range/from/:from/to/:to", ctrl.ListByStartRange)
	r.GET("/course-matrix/range/from/:from", ctrl.ListByStartRange)
	r.GET("/course-matrix/range/to/:to", ctrl.ListByStartRange)
	r.GET("/course-matrix/fiscal/from/:year", ctrl.ListFromFiscalYear)
	r.GET("/course-matrix/fiscal/to/:year", ctrl.ListToFiscalYear)
	r.POST("/course-matrix", ctrl.CreateCourseMatrix)
	return r
}

func TestCourseMatrixRoutes(t *testing.T) {
	t.Parallel()
	svc := &fakeMatrixService{}
	r := matrixRouter(svc)

	status, _ := do(t, r, http.MethodGet, "/course-matrix/range/from/2022-0/to/2023-2", "")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "2022-0", svc.from)
	assert.Equal(t, "2023-2", svc.to)

	status, _ = do(t, r, http.MethodGet, "/course-matrix/range/to/2023-2", "")
	assert.Equal(t, http.StatusOK, status)
	assert.Empty(t, svc.from)
	assert.Equal(t, "2023-2", svc.to)

	status, env := do(t, r, http.MethodGet, "/course-matrix/range/from/2023-2/to/2022-0", "")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, dto.ErrorCodeValidationFailed, env.Error.Code)

	status, _ = do(t, r, http.MethodGet, "/course-matrix/fiscal-years/2023-2024,2024-2025", "")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, []string{"2023-2024", "2024-2025"}, svc.years)

	status, _ = do(t, r, http.MethodGet, "/course-matrix/fiscal/from/2024", "")
	assert.Equal(t, http.StatusOK, status)
	require.NotNil(t, svc.fyFrom)
	assert.Equal(t, 2024, *svc.fyFrom)
	assert.Nil(t, svc.fyTo)

	status, env = do(t, r, http.MethodGet, "/course-matrix/fiscal/to/soon", "")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "year", env.Error.Field)

	status, _ = do(t, r, http.MethodGet, "/course-matrix?fiscalYear=2023-2024,2024-2025&fiscalYear=2025-2026&programId=3", "")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, []string{"2023-2024", "2024-2025", "2025-2026"}, svc.filter.FiscalYears)
	require.NotNil(t, svc.filter.ProgramID)
	assert.Equal(t, int64(3), *svc.filter.ProgramID)

	status, env = do(t, r, http.MethodGet, "/course-matrix/program/5", "")
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `[{"id":1,"programId":5,"courseId":0,"status":"","start":"","live":"","fiscalYear":"","increment":0,"facultyId":null,"campusId":null,"designerId":null,"mediaLeadId":null,"updatedOn":"0001-01-01T00:00:00Z"}]`, string(env.Data))

	status, _ = do(t, r, http.MethodGet, "/course-matrix/12", "")
	assert.Equal(t, http.StatusNotFound, status)
}

func TestCourseMatrixCreateBinding(t *testing.T) {
	t.Parallel()
	svc := &fakeMatrixService{}
	r := matrixRouter(svc)

	status, env := do(t, r, http.MethodPost, "/course-matrix", `{"programId":1,"courseId":2,"fiscalYear":"2024-2025","start":"2024-1","increment":1}`)
	require.Equal(t, http.StatusOK, status)
	require.NotNil(t, svc.created)
	assert.Equal(t, "2024-1", svc.created.Start)
	var created models.CourseMatrix
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, int64(7), created.ID)

	status, env = do(t, r, http.MethodPost, "/course-matrix", `{"programId":1,"courseId":2,"fiscalYear":"2024-2025","start":"Spring"}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "start", env.Error.Field)

	status, env = do(t, r, http.MethodPost, "/course-matrix", `{"programId":1,"courseId":2,"fiscalYear":"2024-2025","increment":3}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "increment", env.Error.Field)
}

type fakeResolver struct {
	identity *auth.Identity
	err      error
	token    string
}

func (f *fakeResolver) Resolve(_ context.Context, token string) (*auth.Identity, error) {
	f.token = token
	return f.identity, f.err
}

func TestGetCurrentUser(t *testing.T) {
	t.Parallel()

	resolver := &fakeResolver{identity: &auth.Identity{
		User:  &models.User{UID: "u1", Email: "pm@example.edu", RoleID: 3, RoleName: models.RoleProgramManager},
		Level: models.LevelProgramManager,
	}}
	ctrl := NewUserController(nil, nil, resolver)
	r := gin.New()
	r.GET("/users/me", ctrl.GetCurrentUser)

	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	req.Header.Set(middleware.TokenHeader, "tok")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "tok", resolver.token)
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	var me dto.CurrentUserResponse
	require.NoError(t, json.Unmarshal(env.Data, &me))
	assert.Equal(t, "u1", me.UID)
	assert.Equal(t, models.RoleProgramManager, me.Role)
	assert.Equal(t, int(models.LevelProgramManager), me.Level)

	resolver.err = apperrors.ErrTokenMissing
	resolver.identity = nil
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/users/me", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
