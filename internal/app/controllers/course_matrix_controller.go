package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/learntech/courseplanner/internal/app/models"
	"github.com/learntech/courseplanner/internal/app/models/dto"
	"github.com/learntech/courseplanner/internal/app/repositories"
	"github.com/learntech/courseplanner/internal/app/services"
	"github.com/learntech/courseplanner/internal/middleware"
)

// CourseMatrixController handles course matrix scheduling
type CourseMatrixController struct {
	matrixService services.CourseMatrixService
}

// NewCourseMatrixController creates a new CourseMatrixController
func NewCourseMatrixController(matrixService services.CourseMatrixService) *CourseMatrixController {
	return &CourseMatrixController{
		matrixService: matrixService,
	}
}

type matrixLister func(opts repositories.ListOptions) ([]*models.CourseMatrix, int64, error)

// list binds the sort and page parameters and writes the rows returned by fn
func (c *CourseMatrixController) list(ctx *gin.Context, fn matrixLister) {
	var q dto.ListQuery
	if !bindQuery(ctx, &q) {
		return
	}
	opts := listOptions(ctx, q)

	rows, total, err := fn(opts)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondList(ctx, rows, total, opts)
}

// parseYear reads the starting calendar year of a fiscal year
func parseYear(ctx *gin.Context) (int, bool) {
	year, err := strconv.Atoi(ctx.Param("year"))
	if err != nil || year < 1000 || year > 9999 {
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid year").
			WithField("year").
			WithDetails("year must be a four digit calendar year")
		ctx.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return 0, false
	}
	return year, true
}

// ListCourseMatrix lists course matrix rows
// @Summary List course matrix
// @Description Lists course matrix rows; fiscalYear may repeat or be comma-separated
// @Tags course-matrix
// @Produce json
// @Param programId query int false "Filter by program"
// @Param courseId query int false "Filter by course"
// @Param campusId query int false "Filter by campus"
// @Param facultyId query int false "Filter by faculty member"
// @Param designerId query int false "Filter by instructional designer"
// @Param mediaLeadId query int false "Filter by media lead"
// @Param status query string false "Filter by status"
// @Param live query string false "Filter by live term"
// @Param fiscalYear query []string false "Fiscal years, e.g. 2024-2025" collectionFormat(multi)
// @Param sort query string false "Sort field" Enums(id, program, course, status, start, live, fiscalYear, increment, updatedOn)
// @Param order query string false "Sort order" Enums(asc, desc)
// @Success 200 {object} dto.APIResponse{data=[]models.CourseMatrix} "Course matrix retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid query"
// @Router /course-matrix [get]
func (c *CourseMatrixController) ListCourseMatrix(ctx *gin.Context) {
	var q dto.CourseMatrixQuery
	if !bindQuery(ctx, &q) {
		return
	}
	opts := listOptions(ctx, q.ListQuery)

	filter := repositories.CourseMatrixFilter{
		ProgramID:   q.ProgramID,
		CourseID:    q.CourseID,
		CampusID:    q.CampusID,
		FacultyID:   q.FacultyID,
		DesignerID:  q.DesignerID,
		MediaLeadID: q.MediaLeadID,
		Status:      q.Status,
		Live:        q.Live,
		FiscalYears: q.FiscalYears(),
	}
	rows, total, err := c.matrixService.ListCourseMatrix(ctx, filter, opts)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondList(ctx, rows, total, opts)
}

// GetCourseMatrixByID retrieves a course matrix row
// @Summary Get course matrix row
// @Tags course-matrix
// @Produce json
// @Param id path int true "Course matrix ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=models.CourseMatrix} "Course matrix row retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Course matrix row not found"
// @Router /course-matrix/{id} [get]
func (c *CourseMatrixController) GetCourseMatrixByID(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	row, err := c.matrixService.GetCourseMatrixByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondData(ctx, row)
}

// ListByProgram lists the course matrix of a program
// @Summary List course matrix by program
// @Tags course-matrix
// @Produce json
// @Param programId path int true "Program ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=[]models.CourseMatrix} "Course matrix retrieved successfully"
// @Router /course-matrix/program/{programId} [get]
func (c *CourseMatrixController) ListByProgram(ctx *gin.Context) {
	programID, ok := parseID(ctx, "programId")
	if !ok {
		return
	}
	c.list(ctx, func(opts repositories.ListOptions) ([]*models.CourseMatrix, int64, error) {
		return c.matrixService.ListByProgram(ctx, programID, opts)
	})
}

// ListByCourse lists the course matrix of a course
// @Summary List course matrix by course
// @Tags course-matrix
// @Produce json
// @Param courseId path int true "Course ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=[]models.CourseMatrix} "Course matrix retrieved successfully"
// @Router /course-matrix/course/{courseId} [get]
func (c *CourseMatrixController) ListByCourse(ctx *gin.Context) {
	courseID, ok := parseID(ctx, "courseId")
	if !ok {
		return
	}
	c.list(ctx, func(opts repositories.ListOptions) ([]*models.CourseMatrix, int64, error) {
		return c.matrixService.ListByCourse(ctx, courseID, opts)
	})
}

// ListByFiscalYears lists rows in any of a comma-separated list of fiscal years
// @Summary List course matrix by fiscal years
// @Tags course-matrix
// @Produce json
// @Param years path string true "Comma-separated fiscal years, e.g. 2023-2024,2024-2025"
// @Success 200 {object} dto.APIResponse{data=[]models.CourseMatrix} "Course matrix retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid fiscal year"
// @Router /course-matrix/fiscal-years/{years} [get]
func (c *CourseMatrixController) ListByFiscalYears(ctx *gin.Context) {
	years := dto.SplitList(ctx.Param("years"))
	c.list(ctx, func(opts repositories.ListOptions) ([]*models.CourseMatrix, int64, error) {
		return c.matrixService.ListByFiscalYears(ctx, years, opts)
	})
}

// ListByStartRange lists rows whose start term lies in [from, to]
// @Summary List course matrix by start term range
// @Description Inclusive on both ends and ordered by start term unless sort is given
// @Tags course-matrix
// @Produce json
// @Param from path string true "First start term, e.g. 2022-0"
// @Param to path string true "Last start term, e.g. 2023-2"
// @Success 200 {object} dto.APIResponse{data=[]models.CourseMatrix} "Course matrix retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid term code or reversed range"
// @Router /course-matrix/range/from/{from}/to/{to} [get]
// @Router /course-matrix/range/from/{from} [get]
// @Router /course-matrix/range/to/{to} [get]
func (c *CourseMatrixController) ListByStartRange(ctx *gin.Context) {
	from, to := ctx.Param("from"), ctx.Param("to")
	c.list(ctx, func(opts repositories.ListOptions) ([]*models.CourseMatrix, int64, error) {
		return c.matrixService.ListByStartRange(ctx, from, to, opts)
	})
}

// ListFromFiscalYear lists rows from the first half of a fiscal year onwards
// @Summary List course matrix from a fiscal year
// @Tags course-matrix
// @Produce json
// @Param year path int true "Starting calendar year of the fiscal year"
// @Success 200 {object} dto.APIResponse{data=[]models.CourseMatrix} "Course matrix retrieved successfully"
// @Router /course-matrix/fiscal/from/{year} [get]
func (c *CourseMatrixController) ListFromFiscalYear(ctx *gin.Context) {
	year, ok := parseYear(ctx)
	if !ok {
		return
	}
	c.list(ctx, func(opts repositories.ListOptions) ([]*models.CourseMatrix, int64, error) {
		return c.matrixService.ListByFiscalRange(ctx, &year, nil, opts)
	})
}

// ListToFiscalYear lists rows up to the second half of a fiscal year
// @Summary List course matrix up to a fiscal year
// @Tags course-matrix
// @Produce json
// @Param year path int true "Starting calendar year of the fiscal year"
// @Success 200 {object} dto.APIResponse{data=[]models.CourseMatrix} "Course matrix retrieved successfully"
// @Router /course-matrix/fiscal/to/{year} [get]
func (c *CourseMatrixController) ListToFiscalYear(ctx *gin.Context) {
	year, ok := parseYear(ctx)
	if !ok {
		return
	}
	c.list(ctx, func(opts repositories.ListOptions) ([]*models.CourseMatrix, int64, error) {
		return c.matrixService.ListByFiscalRange(ctx, nil, &year, opts)
	})
}

// CreateCourseMatrix schedules a course offering
// @Summary Create course matrix row
// @Tags course-matrix
// @Accept json
// @Produce json
// @Security TokenAuth
// @Param request body dto.CourseMatrixRequest true "Course matrix row"
// @Success 200 {object} dto.APIResponse{data=models.CourseMatrix} "Course matrix row created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data, unknown reference or duplicate offering"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /course-matrix [post]
func (c *CourseMatrixController) CreateCourseMatrix(ctx *gin.Context) {
	var req dto.CourseMatrixRequest
	if !bindJSON(ctx, &req) {
		return
	}

	row := req.ToModel()
	if err := c.matrixService.CreateCourseMatrix(ctx, row); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondData(ctx, row)
}

// UpdateCourseMatrix updates a course matrix row
// @Summary Update course matrix row
// @Tags course-matrix
// @Accept json
// @Produce json
// @Security TokenAuth
// @Param id path int true "Course matrix ID" Format(int64) minimum(1)
// @Param request body dto.CourseMatrixRequest true "Course matrix row"
// @Success 200 {object} dto.APIResponse{data=models.CourseMatrix} "Course matrix row updated successfully"
// @Failure 404 {object} dto.ErrorResponse "Course matrix row not found"
// @Router /course-matrix/{id} [post]
func (c *CourseMatrixController) UpdateCourseMatrix(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	var req dto.CourseMatrixRequest
	if !bindJSON(ctx, &req) {
		return
	}

	row := req.ToModel()
	row.ID = id
	if err := c.matrixService.UpdateCourseMatrix(ctx, row); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondData(ctx, row)
}

// DeleteCourseMatrix deletes a course matrix row
// @Summary Delete course matrix row
// @Tags course-matrix
// @Produce json
// @Security TokenAuth
// @Param id path int true "Course matrix ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse "Delete success"
// @Router /course-matrix/{id} [delete]
func (c *CourseMatrixController) DeleteCourseMatrix(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	if err := c.matrixService.DeleteCourseMatrix(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondDeleted(ctx)
}
