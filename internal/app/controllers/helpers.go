package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/learntech/courseplanner/internal/app/models/dto"
	"github.com/learntech/courseplanner/internal/app/repositories"
	"github.com/learntech/courseplanner/internal/middleware"
	"github.com/learntech/courseplanner/internal/pkg/helpers"
)

// parseID reads a positive integer path parameter, responding 400 when it is not one
func parseID(ctx *gin.Context, param string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(param), 10, 64)
	if err != nil || id < 1 {
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid "+param).
			WithField(param).
			WithDetails(param + " must be a positive integer")
		ctx.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return 0, false
	}
	return id, true
}

// bindJSON binds the request body, responding 400 on failure
func bindJSON(ctx *gin.Context, dst any) bool {
	if err := ctx.ShouldBindJSON(dst); err != nil {
		middleware.HandleBindingError(ctx, err)
		return false
	}
	return true
}

// bindQuery binds query parameters, responding 400 on failure
func bindQuery(ctx *gin.Context, dst any) bool {
	if err := ctx.ShouldBindQuery(dst); err != nil {
		middleware.HandleBindingError(ctx, err)
		return false
	}
	return true
}

// listOptions combines the sort query with the optional page parameters
func listOptions(ctx *gin.Context, q dto.ListQuery) repositories.ListOptions {
	page, size := helpers.ParsePaginationParams(ctx)
	return repositories.ListOptions{
		Sort:  q.Sort,
		Order: q.Order,
		Page:  page,
		Size:  size,
	}
}

// respondList writes a list envelope; paged requests also get pagination metadata
func respondList(ctx *gin.Context, items any, total int64, opts repositories.ListOptions) {
	var pagination *dto.PaginationInfo
	if opts.Paged() {
		pagination = helpers.NewPaginationInfo(total, opts.Page, opts.Size)
	}
	ctx.JSON(http.StatusOK, dto.NewListResponse(items, pagination))
}

func respondData(ctx *gin.Context, data any) {
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(data))
}

func respondDeleted(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewMessageResponse(dto.DeleteSuccessMessage))
}
