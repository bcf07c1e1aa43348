package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/learntech/courseplanner/internal/app/models/dto"
	"github.com/learntech/courseplanner/internal/app/services"
	"github.com/learntech/courseplanner/internal/middleware"
)

// StaffController serves instructional designers and media leads. One
// controller is mounted per staff kind.
type StaffController struct {
	staffService services.StaffService
}

// NewStaffController creates a new StaffController
func NewStaffController(staffService services.StaffService) *StaffController {
	return &StaffController{
		staffService: staffService,
	}
}

// ListStaff lists staff members of the controller's kind
// @Summary List instructional designers or media leads
// @Tags staff
// @Produce json
// @Param sort query string false "Sort field" Enums(id, email, firstName, lastName)
// @Param order query string false "Sort order" Enums(asc, desc)
// @Success 200 {object} dto.APIResponse{data=[]models.StaffMember} "Staff retrieved successfully"
// @Router /instructional-designers [get]
// @Router /media-leads [get]
func (c *StaffController) ListStaff(ctx *gin.Context) {
	var q dto.ListQuery
	if !bindQuery(ctx, &q) {
		return
	}
	opts := listOptions(ctx, q)

	staff, total, err := c.staffService.ListStaff(ctx, opts)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondList(ctx, staff, total, opts)
}

// GetStaffByID retrieves a staff member
// @Summary Get instructional designer or media lead
// @Tags staff
// @Produce json
// @Param id path int true "Staff ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=models.StaffMember} "Staff member retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Staff member not found"
// @Router /instructional-designers/{id} [get]
// @Router /media-leads/{id} [get]
func (c *StaffController) GetStaffByID(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	member, err := c.staffService.GetStaffByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondData(ctx, member)
}

// CreateStaff creates a staff member
// @Summary Create instructional designer or media lead
// @Tags staff
// @Accept json
// @Produce json
// @Security TokenAuth
// @Param request body dto.StaffRequest true "Staff information"
// @Success 200 {object} dto.APIResponse{data=models.StaffMember} "Staff member created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data or staff member already exists"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /instructional-designers [post]
// @Router /media-leads [post]
func (c *StaffController) CreateStaff(ctx *gin.Context) {
	var req dto.StaffRequest
	if !bindJSON(ctx, &req) {
		return
	}

	member := req.ToModel()
	if err := c.staffService.CreateStaff(ctx, member); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondData(ctx, member)
}

// UpdateStaff updates a staff member
// @Summary Update instructional designer or media lead
// @Tags staff
// @Accept json
// @Produce json
// @Security TokenAuth
// @Param id path int true "Staff ID" Format(int64) minimum(1)
// @Param request body dto.StaffRequest true "Staff information"
// @Success 200 {object} dto.APIResponse{data=models.StaffMember} "Staff member updated successfully"
// @Router /instructional-designers/{id} [post]
// @Router /media-leads/{id} [post]
func (c *StaffController) UpdateStaff(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	var req dto.StaffRequest
	if !bindJSON(ctx, &req) {
		return
	}

	member := req.ToModel()
	member.ID = id
	if err := c.staffService.UpdateStaff(ctx, member); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondData(ctx, member)
}

// DeleteStaff deletes a staff member
// @Summary Delete instructional designer or media lead
// @Tags staff
// @Produce json
// @Security TokenAuth
// @Param id path int true "Staff ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse "Delete success"
// @Router /instructional-designers/{id} [delete]
// @Router /media-leads/{id} [delete]
func (c *StaffController) DeleteStaff(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	if err := c.staffService.DeleteStaff(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondDeleted(ctx)
}
