package dto

import (
	"strings"

	"github.com/learntech/courseplanner/internal/app/models"
)

// CreateUserRequest represents user creation data. UID is the identity
// provider's principal id.
type CreateUserRequest struct {
	UID         string `json:"uid" binding:"required,max=128" example:"Qm9oG1f4dXb2"`
	DisplayName string `json:"displayName" binding:"max=255" example:"Jane Doe"`
	Email       string `json:"email" binding:"required,email" example:"jane.doe@example.edu"`
	FirstName   string `json:"firstName" binding:"max=100" example:"Jane"`
	LastName    string `json:"lastName" binding:"max=100" example:"Doe"`
	RoleID      int64  `json:"roleId" binding:"required,min=1" example:"4"`
}

// UpdateUserRequest represents user update data
type UpdateUserRequest struct {
	DisplayName string `json:"displayName" binding:"max=255"`
	Email       string `json:"email" binding:"required,email"`
	FirstName   string `json:"firstName" binding:"max=100"`
	LastName    string `json:"lastName" binding:"max=100"`
	RoleID      int64  `json:"roleId" binding:"required,min=1"`
}

// ToModel converts the request into a user
func (r CreateUserRequest) ToModel() *models.User {
	return &models.User{
		UID:         strings.TrimSpace(r.UID),
		DisplayName: strings.TrimSpace(r.DisplayName),
		Email:       strings.TrimSpace(r.Email),
		FirstName:   strings.TrimSpace(r.FirstName),
		LastName:    strings.TrimSpace(r.LastName),
		RoleID:      r.RoleID,
	}
}

// ToModel converts the request into the user identified by uid
func (r UpdateUserRequest) ToModel(uid string) *models.User {
	return &models.User{
		UID:         uid,
		DisplayName: strings.TrimSpace(r.DisplayName),
		Email:       strings.TrimSpace(r.Email),
		FirstName:   strings.TrimSpace(r.FirstName),
		LastName:    strings.TrimSpace(r.LastName),
		RoleID:      r.RoleID,
	}
}

// CurrentUserResponse describes the caller of /users/me
type CurrentUserResponse struct {
	UID         string `json:"uid"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	RoleID      int64  `json:"roleId"`
	Role        string `json:"role"`
	Level       int    `json:"level"`
}

// UserQuery filters the user list
type UserQuery struct {
	ListQuery
	RoleID *int64 `form:"roleId" binding:"omitempty,min=1"`
}

// NewCurrentUserResponse describes a resolved caller
func NewCurrentUserResponse(user *models.User, level models.PrivilegeLevel) CurrentUserResponse {
	return CurrentUserResponse{
		UID:         user.UID,
		Email:       user.Email,
		DisplayName: user.DisplayName,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		RoleID:      user.RoleID,
		Role:        user.RoleName,
		Level:       int(level),
	}
}
