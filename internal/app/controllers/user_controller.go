package controllers

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/learntech/courseplanner/internal/app/auth"
	"github.com/learntech/courseplanner/internal/app/models/dto"
	"github.com/learntech/courseplanner/internal/app/repositories"
	"github.com/learntech/courseplanner/internal/app/services"
	"github.com/learntech/courseplanner/internal/middleware"
)

// IdentityResolver resolves a token to the calling user
type IdentityResolver interface {
	Resolve(ctx context.Context, token string) (*auth.Identity, error)
}

// UserController handles user and role operations
type UserController struct {
	userService services.UserService
	roleService services.RoleService
	identities  IdentityResolver
}

// NewUserController creates a new user controller
func NewUserController(userService services.UserService, roleService services.RoleService, identities IdentityResolver) *UserController {
	return &UserController{
		userService: userService,
		roleService: roleService,
		identities:  identities,
	}
}

// ListUsers lists users with their roles
// @Summary List users
// @Tags users
// @Produce json
// @Security TokenAuth
// @Param roleId query int false "Filter by role"
// @Param sort query string false "Sort field" Enums(uid, email, displayName, lastName, role)
// @Param order query string false "Sort order" Enums(asc, desc)
// @Success 200 {object} dto.APIResponse{data=[]models.User} "Users retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /users [get]
func (c *UserController) ListUsers(ctx *gin.Context) {
	var q dto.UserQuery
	if !bindQuery(ctx, &q) {
		return
	}
	opts := listOptions(ctx, q.ListQuery)

	users, total, err := c.userService.ListUsers(ctx, repositories.UserFilter{RoleID: q.RoleID}, opts)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondList(ctx, users, total, opts)
}

// GetCurrentUser describes the caller
// @Summary Get current user
// @Description Resolves the caller's token to their stored user and privilege level
// @Tags users
// @Produce json
// @Security TokenAuth
// @Success 200 {object} dto.APIResponse{data=dto.CurrentUserResponse} "Current user"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /users/me [get]
func (c *UserController) GetCurrentUser(ctx *gin.Context) {
	id, err := c.identities.Resolve(ctx, middleware.TokenFromRequest(ctx))
	if err != nil {
		middleware.RespondUnauthorized(ctx)
		return
	}
	respondData(ctx, dto.NewCurrentUserResponse(id.User, id.Level))
}

// GetUserByUID retrieves a user
// @Summary Get user
// @Tags users
// @Produce json
// @Security TokenAuth
// @Param uid path string true "User UID"
// @Success 200 {object} dto.APIResponse{data=models.User} "User retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /users/{uid} [get]
func (c *UserController) GetUserByUID(ctx *gin.Context) {
	user, err := c.userService.GetUserByUID(ctx, ctx.Param("uid"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondData(ctx, user)
}

// CreateUser registers a user for an identity-provider principal
// @Summary Create user
// @Tags users
// @Accept json
// @Produce json
// @Security TokenAuth
// @Param request body dto.CreateUserRequest true "User information"
// @Success 200 {object} dto.APIResponse{data=models.User} "User created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data or user already exists"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /users [post]
func (c *UserController) CreateUser(ctx *gin.Context) {
	var req dto.CreateUserRequest
	if !bindJSON(ctx, &req) {
		return
	}

	user := req.ToModel()
	if err := c.userService.CreateUser(ctx, user); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondData(ctx, user)
}

// UpdateUser updates a user
// @Summary Update user
// @Tags users
// @Accept json
// @Produce json
// @Security TokenAuth
// @Param uid path string true "User UID"
// @Param request body dto.UpdateUserRequest true "User information"
// @Success 200 {object} dto.APIResponse{data=models.User} "User updated successfully"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /users/{uid} [post]
func (c *UserController) UpdateUser(ctx *gin.Context) {
	var req dto.UpdateUserRequest
	if !bindJSON(ctx, &req) {
		return
	}

	user := req.ToModel(strings.TrimSpace(ctx.Param("uid")))
	if err := c.userService.UpdateUser(ctx, user); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondData(ctx, user)
}

// DeleteUser deletes a user
// @Summary Delete user
// @Tags users
// @Produce json
// @Security TokenAuth
// @Param uid path string true "User UID"
// @Success 200 {object} dto.APIResponse "Delete success"
// @Router /users/{uid} [delete]
func (c *UserController) DeleteUser(ctx *gin.Context) {
	if err := c.userService.DeleteUser(ctx, ctx.Param("uid")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondDeleted(ctx)
}

// ListRoles lists roles
// @Summary List roles
// @Tags roles
// @Produce json
// @Security TokenAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Role} "Roles retrieved successfully"
// @Router /roles [get]
func (c *UserController) ListRoles(ctx *gin.Context) {
	var q dto.ListQuery
	if !bindQuery(ctx, &q) {
		return
	}
	opts := listOptions(ctx, q)

	roles, total, err := c.roleService.ListRoles(ctx, opts)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondList(ctx, roles, total, opts)
}

// GetRoleByID retrieves a role
// @Summary Get role
// @Tags roles
// @Produce json
// @Security TokenAuth
// @Param id path int true "Role ID"
// @Success 200 {object} dto.APIResponse{data=models.Role} "Role retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Role not found"
// @Router /roles/{id} [get]
func (c *UserController) GetRoleByID(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	role, err := c.roleService.GetRoleByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondData(ctx, role)
}
