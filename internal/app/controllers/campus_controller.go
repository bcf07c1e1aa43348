package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/learntech/courseplanner/internal/app/models/dto"
	"github.com/learntech/courseplanner/internal/app/services"
	"github.com/learntech/courseplanner/internal/middleware"
)

// CampusController handles campus operations
type CampusController struct {
	campusService services.CampusService
}

// NewCampusController creates a new CampusController
func NewCampusController(campusService services.CampusService) *CampusController {
	return &CampusController{
		campusService: campusService,
	}
}

// ListCampuses lists campuses
// @Summary List campuses
// @Description Lists campuses, optionally sorted and paged
// @Tags campuses
// @Produce json
// @Param sort query string false "Sort field" Enums(id, code, name)
// @Param order query string false "Sort order" Enums(asc, desc)
// @Param page query int false "Page number (1-based); omit for all rows"
// @Param size query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=[]models.Campus} "Campuses retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid query"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /campuses [get]
func (c *CampusController) ListCampuses(ctx *gin.Context) {
	var q dto.ListQuery
	if !bindQuery(ctx, &q) {
		return
	}
	opts := listOptions(ctx, q)

	campuses, total, err := c.campusService.ListCampuses(ctx, opts)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondList(ctx, campuses, total, opts)
}

// GetCampusByID retrieves a campus by id
// @Summary Get campus
// @Tags campuses
// @Produce json
// @Param id path int true "Campus ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=models.Campus} "Campus retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid campus ID"
// @Failure 404 {object} dto.ErrorResponse "Campus not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /campuses/{id} [get]
func (c *CampusController) GetCampusByID(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	campus, err := c.campusService.GetCampusByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondData(ctx, campus)
}

// GetCampusByCode retrieves a campus by its code
// @Summary Get campus by code
// @Tags campuses
// @Produce json
// @Param code path string true "Campus code"
// @Success 200 {object} dto.APIResponse{data=models.Campus} "Campus retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Campus not found"
// @Router /campuses/code/{code} [get]
func (c *CampusController) GetCampusByCode(ctx *gin.Context) {
	campus, err := c.campusService.GetCampusByCode(ctx, ctx.Param("code"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondData(ctx, campus)
}

// CreateCampus creates a campus
// @Summary Create campus
// @Tags campuses
// @Accept json
// @Produce json
// @Security TokenAuth
// @Param request body dto.CampusRequest true "Campus information"
// @Success 200 {object} dto.APIResponse{data=models.Campus} "Campus created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data or campus already exists"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /campuses [post]
func (c *CampusController) CreateCampus(ctx *gin.Context) {
	var req dto.CampusRequest
	if !bindJSON(ctx, &req) {
		return
	}

	campus := req.ToModel()
	if err := c.campusService.CreateCampus(ctx, campus); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondData(ctx, campus)
}

// UpdateCampus updates a campus
// @Summary Update campus
// @Tags campuses
// @Accept json
// @Produce json
// @Security TokenAuth
// @Param id path int true "Campus ID" Format(int64) minimum(1)
// @Param request body dto.CampusRequest true "Campus information"
// @Success 200 {object} dto.APIResponse{data=models.Campus} "Campus updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Campus not found"
// @Router /campuses/{id} [post]
func (c *CampusController) UpdateCampus(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	var req dto.CampusRequest
	if !bindJSON(ctx, &req) {
		return
	}

	campus := req.ToModel()
	campus.ID = id
	if err := c.campusService.UpdateCampus(ctx, campus); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondData(ctx, campus)
}

// DeleteCampus deletes a campus
// @Summary Delete campus
// @Tags campuses
// @Produce json
// @Security TokenAuth
// @Param id path int true "Campus ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse "Delete success"
// @Failure 400 {object} dto.ErrorResponse "Campus is still referenced"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /campuses/{id} [delete]
func (c *CampusController) DeleteCampus(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	if err := c.campusService.DeleteCampus(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondDeleted(ctx)
}
