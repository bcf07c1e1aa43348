package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/learntech/courseplanner/internal/app/models/dto"
	"github.com/learntech/courseplanner/internal/app/repositories"
	"github.com/learntech/courseplanner/internal/app/services"
	"github.com/learntech/courseplanner/internal/middleware"
)

// ProgramManagerController handles program manager assignments
type ProgramManagerController struct {
	managerService services.ProgramManagerService
}

// NewProgramManagerController creates a new ProgramManagerController
func NewProgramManagerController(managerService services.ProgramManagerService) *ProgramManagerController {
	return &ProgramManagerController{
		managerService: managerService,
	}
}

// ListProgramManagers lists program manager assignments
// @Summary List program managers
// @Tags program-managers
// @Produce json
// @Param programId query int false "Filter by program"
// @Param email query string false "Filter by manager email"
// @Success 200 {object} dto.APIResponse{data=[]models.ProgramManager} "Program managers retrieved successfully"
// @Router /program-managers [get]
func (c *ProgramManagerController) ListProgramManagers(ctx *gin.Context) {
	var q dto.ProgramManagerQuery
	if !bindQuery(ctx, &q) {
		return
	}
	opts := listOptions(ctx, q.ListQuery)

	filter := repositories.ProgramManagerFilter{ProgramID: q.ProgramID, Email: q.Email}
	managers, total, err := c.managerService.ListProgramManagers(ctx, filter, opts)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondList(ctx, managers, total, opts)
}

// GetProgramManagerByID retrieves a program manager assignment
// @Summary Get program manager
// @Tags program-managers
// @Produce json
// @Param id path int true "Program manager ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=models.ProgramManager} "Program manager retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Program manager not found"
// @Router /program-managers/{id} [get]
func (c *ProgramManagerController) GetProgramManagerByID(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	pm, err := c.managerService.GetProgramManagerByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondData(ctx, pm)
}

// CreateProgramManager assigns a registered user to a program
// @Summary Create program manager
// @Tags program-managers
// @Accept json
// @Produce json
// @Security TokenAuth
// @Param request body dto.ProgramManagerRequest true "Assignment"
// @Success 200 {object} dto.APIResponse{data=models.ProgramManager} "Program manager created successfully"
// @Failure 400 {object} dto.ErrorResponse "Unknown user email, unknown program or duplicate assignment"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /program-managers [post]
func (c *ProgramManagerController) CreateProgramManager(ctx *gin.Context) {
	var req dto.ProgramManagerRequest
	if !bindJSON(ctx, &req) {
		return
	}

	pm := req.ToModel()
	if err := c.managerService.CreateProgramManager(ctx, pm); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondData(ctx, pm)
}

// UpdateProgramManager updates a program manager assignment
// @Summary Update program manager
// @Tags program-managers
// @Accept json
// @Produce json
// @Security TokenAuth
// @Param id path int true "Program manager ID" Format(int64) minimum(1)
// @Param request body dto.ProgramManagerRequest true "Assignment"
// @Success 200 {object} dto.APIResponse{data=models.ProgramManager} "Program manager updated successfully"
// @Router /program-managers/{id} [post]
func (c *ProgramManagerController) UpdateProgramManager(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	var req dto.ProgramManagerRequest
	if !bindJSON(ctx, &req) {
		return
	}

	pm := req.ToModel()
	pm.ID = id
	if err := c.managerService.UpdateProgramManager(ctx, pm); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondData(ctx, pm)
}

// DeleteProgramManager removes a program manager assignment
// @Summary Delete program manager
// @Tags program-managers
// @Produce json
// @Security TokenAuth
// @Param id path int true "Program manager ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse "Delete success"
// @Router /program-managers/{id} [delete]
func (c *ProgramManagerController) DeleteProgramManager(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	if err := c.managerService.DeleteProgramManager(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondDeleted(ctx)
}
