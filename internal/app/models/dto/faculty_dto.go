package dto

import (
	"strings"

	"github.com/learntech/courseplanner/internal/app/models"
)

// FacultyRequest represents faculty create and update data
type FacultyRequest struct {
	Email     string `json:"email" binding:"required,email" example:"lecturer@example.edu"`
	FirstName string `json:"firstName" binding:"max=100" example:"Sam"`
	LastName  string `json:"lastName" binding:"max=100" example:"Lee"`
	CampusID  *int64 `json:"campusId" binding:"omitempty,min=1" example:"1"`
}

// ToModel converts the request into a faculty member
func (r FacultyRequest) ToModel() *models.Faculty {
	return &models.Faculty{
		Email:     strings.TrimSpace(r.Email),
		FirstName: strings.TrimSpace(r.FirstName),
		LastName:  strings.TrimSpace(r.LastName),
		CampusID:  r.CampusID,
	}
}

// FacultyQuery filters the faculty list
type FacultyQuery struct {
	ListQuery
	CampusID *int64 `form:"campusId" binding:"omitempty,min=1"`
}

// StaffRequest represents instructional designer and media lead data
type StaffRequest struct {
	Email     string `json:"email" binding:"required,email" example:"designer@example.edu"`
	FirstName string `json:"firstName" binding:"max=100" example:"Alex"`
	LastName  string `json:"lastName" binding:"max=100" example:"Kim"`
}

// ToModel converts the request into a staff member
func (r StaffRequest) ToModel() *models.StaffMember {
	return &models.StaffMember{
		Email:     strings.TrimSpace(r.Email),
		FirstName: strings.TrimSpace(r.FirstName),
		LastName:  strings.TrimSpace(r.LastName),
	}
}
