package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/learntech/courseplanner/internal/app/models/dto"
	"github.com/learntech/courseplanner/internal/app/repositories"
	"github.com/learntech/courseplanner/internal/app/services"
	"github.com/learntech/courseplanner/internal/middleware"
)

// FacultyController handles faculty member operations
type FacultyController struct {
	facultyService services.FacultyService
}

// NewFacultyController creates a new FacultyController
func NewFacultyController(facultyService services.FacultyService) *FacultyController {
	return &FacultyController{
		facultyService: facultyService,
	}
}

// ListFaculty lists faculty members
// @Summary List faculty
// @Tags faculty
// @Produce json
// @Param campusId query int false "Filter by campus"
// @Param sort query string false "Sort field" Enums(id, email, firstName, lastName, campus)
// @Param order query string false "Sort order" Enums(asc, desc)
// @Success 200 {object} dto.APIResponse{data=[]models.Faculty} "Faculty retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid query"
// @Router /faculty [get]
func (c *FacultyController) ListFaculty(ctx *gin.Context) {
	var q dto.FacultyQuery
	if !bindQuery(ctx, &q) {
		return
	}
	opts := listOptions(ctx, q.ListQuery)

	faculty, total, err := c.facultyService.ListFaculty(ctx, repositories.FacultyFilter{CampusID: q.CampusID}, opts)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondList(ctx, faculty, total, opts)
}

// GetFacultyByID retrieves a faculty member
// @Summary Get faculty member
// @Tags faculty
// @Produce json
// @Param id path int true "Faculty ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=models.Faculty} "Faculty member retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Faculty member not found"
// @Router /faculty/{id} [get]
func (c *FacultyController) GetFacultyByID(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	faculty, err := c.facultyService.GetFacultyByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondData(ctx, faculty)
}

// CreateFaculty creates a faculty member
// @Summary Create faculty member
// @Tags faculty
// @Accept json
// @Produce json
// @Security TokenAuth
// @Param request body dto.FacultyRequest true "Faculty information"
// @Success 200 {object} dto.APIResponse{data=models.Faculty} "Faculty member created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data or faculty member already exists"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /faculty [post]
func (c *FacultyController) CreateFaculty(ctx *gin.Context) {
	var req dto.FacultyRequest
	if !bindJSON(ctx, &req) {
		return
	}

	faculty := req.ToModel()
	if err := c.facultyService.CreateFaculty(ctx, faculty); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondData(ctx, faculty)
}

// UpdateFaculty updates a faculty member
// @Summary Update faculty member
// @Tags faculty
// @Accept json
// @Produce json
// @Security TokenAuth
// @Param id path int true "Faculty ID" Format(int64) minimum(1)
// @Param request body dto.FacultyRequest true "Faculty information"
// @Success 200 {object} dto.APIResponse{data=models.Faculty} "Faculty member updated successfully"
// @Failure 404 {object} dto.ErrorResponse "Faculty member not found"
// @Router /faculty/{id} [post]
func (c *FacultyController) UpdateFaculty(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	var req dto.FacultyRequest
	if !bindJSON(ctx, &req) {
		return
	}

	faculty := req.ToModel()
	faculty.ID = id
	if err := c.facultyService.UpdateFaculty(ctx, faculty); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondData(ctx, faculty)
}

// DeleteFaculty deletes a faculty member
// @Summary Delete faculty member
// @Tags faculty
// @Produce json
// @Security TokenAuth
// @Param id path int true "Faculty ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse "Delete success"
// @Failure 400 {object} dto.ErrorResponse "Faculty member is still referenced"
// @Router /faculty/{id} [delete]
func (c *FacultyController) DeleteFaculty(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	if err := c.facultyService.DeleteFaculty(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondDeleted(ctx)
}
