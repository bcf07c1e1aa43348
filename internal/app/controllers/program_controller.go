package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/learntech/courseplanner/internal/app/models/dto"
	"github.com/learntech/courseplanner/internal/app/services"
	"github.com/learntech/courseplanner/internal/middleware"
)

// ProgramController handles program operations
type ProgramController struct {
	programService services.ProgramService
}

// NewProgramController creates a new ProgramController
func NewProgramController(programService services.ProgramService) *ProgramController {
	return &ProgramController{
		programService: programService,
	}
}

// ListPrograms lists programs
// @Summary List programs
// @Tags programs
// @Produce json
// @Param sort query string false "Sort field" Enums(id, code, name)
// @Param order query string false "Sort order" Enums(asc, desc)
// @Success 200 {object} dto.APIResponse{data=[]models.Program} "Programs retrieved successfully"
// @Router /programs [get]
func (c *ProgramController) ListPrograms(ctx *gin.Context) {
	var q dto.ListQuery
	if !bindQuery(ctx, &q) {
		return
	}
	opts := listOptions(ctx, q)

	programs, total, err := c.programService.ListPrograms(ctx, opts)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondList(ctx, programs, total, opts)
}

// GetProgramByID retrieves a program
// @Summary Get program
// @Tags programs
// @Produce json
// @Param id path int true "Program ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=models.Program} "Program retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Program not found"
// @Router /programs/{id} [get]
func (c *ProgramController) GetProgramByID(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	program, err := c.programService.GetProgramByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondData(ctx, program)
}

// GetProgramByCode retrieves a program by code
// @Summary Get program by code
// @Tags programs
// @Produce json
// @Param code path string true "Program code"
// @Success 200 {object} dto.APIResponse{data=models.Program} "Program retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Program not found"
// @Router /programs/code/{code} [get]
func (c *ProgramController) GetProgramByCode(ctx *gin.Context) {
	program, err := c.programService.GetProgramByCode(ctx, ctx.Param("code"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondData(ctx, program)
}

// ListProgramCourses lists the courses of a program
// @Summary List program courses
// @Tags programs
// @Produce json
// @Param id path int true "Program ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=[]models.Course} "Courses retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Program not found"
// @Router /programs/{id}/courses [get]
func (c *ProgramController) ListProgramCourses(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	var q dto.ListQuery
	if !bindQuery(ctx, &q) {
		return
	}
	opts := listOptions(ctx, q)

	courses, total, err := c.programService.ListProgramCourses(ctx, id, opts)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondList(ctx, courses, total, opts)
}

// CreateProgram creates a program
// @Summary Create program
// @Tags programs
// @Accept json
// @Produce json
// @Security TokenAuth
// @Param request body dto.ProgramRequest true "Program information"
// @Success 200 {object} dto.APIResponse{data=models.Program} "Program created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data or program already exists"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /programs [post]
func (c *ProgramController) CreateProgram(ctx *gin.Context) {
	var req dto.ProgramRequest
	if !bindJSON(ctx, &req) {
		return
	}

	program := req.ToModel()
	if err := c.programService.CreateProgram(ctx, program); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondData(ctx, program)
}

// UpdateProgram updates a program
// @Summary Update program
// @Tags programs
// @Accept json
// @Produce json
// @Security TokenAuth
// @Param id path int true "Program ID" Format(int64) minimum(1)
// @Param request body dto.ProgramRequest true "Program information"
// @Success 200 {object} dto.APIResponse{data=models.Program} "Program updated successfully"
// @Router /programs/{id} [post]
func (c *ProgramController) UpdateProgram(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	var req dto.ProgramRequest
	if !bindJSON(ctx, &req) {
		return
	}

	program := req.ToModel()
	program.ID = id
	if err := c.programService.UpdateProgram(ctx, program); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondData(ctx, program)
}

// DeleteProgram deletes a program
// @Summary Delete program
// @Tags programs
// @Produce json
// @Security TokenAuth
// @Param id path int true "Program ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse "Delete success"
// @Failure 400 {object} dto.ErrorResponse "Program still has courses"
// @Router /programs/{id} [delete]
func (c *ProgramController) DeleteProgram(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	if err := c.programService.DeleteProgram(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondDeleted(ctx)
}
