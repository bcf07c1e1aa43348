package dto

import (
	"strings"

	"github.com/learntech/courseplanner/internal/app/models"
)

// ProgramRequest represents program create and update data
type ProgramRequest struct {
	Code string `json:"code" binding:"required,max=32" example:"MBA"`
	Name string `json:"name" binding:"max=255" example:"Master of Business Administration"`
}

// ToModel converts the request into a program
func (r ProgramRequest) ToModel() *models.Program {
	return &models.Program{
		Code: strings.TrimSpace(r.Code),
		Name: strings.TrimSpace(r.Name),
	}
}

// CourseRequest represents course create and update data
type CourseRequest struct {
	Code      string `json:"code" binding:"required,max=32" example:"MBA501"`
	Name      string `json:"name" binding:"max=255" example:"Strategic Management"`
	ProgramID int64  `json:"programId" binding:"required,min=1" example:"1"`
}

// ToModel converts the request into a course
func (r CourseRequest) ToModel() *models.Course {
	return &models.Course{
		Code:      strings.TrimSpace(r.Code),
		Name:      strings.TrimSpace(r.Name),
		ProgramID: r.ProgramID,
	}
}

// CourseQuery filters the course list
type CourseQuery struct {
	ListQuery
	ProgramID *int64 `form:"programId" binding:"omitempty,min=1"`
}

// ProgramManagerRequest assigns a user, by email, to a program
type ProgramManagerRequest struct {
	Email     string `json:"email" binding:"required,email" example:"manager@example.edu"`
	ProgramID int64  `json:"programId" binding:"required,min=1" example:"1"`
}

// ToModel converts the request into a program manager
func (r ProgramManagerRequest) ToModel() *models.ProgramManager {
	return &models.ProgramManager{
		Email:     strings.TrimSpace(r.Email),
		ProgramID: r.ProgramID,
	}
}

// ProgramManagerQuery filters the program manager list
type ProgramManagerQuery struct {
	ListQuery
	ProgramID *int64  `form:"programId" binding:"omitempty,min=1"`
	Email     *string `form:"email" binding:"omitempty,email"`
}
