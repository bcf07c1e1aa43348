package dto

import (
	"strings"

	"github.com/learntech/courseplanner/internal/app/models"
)

// CourseMatrixRequest represents course matrix create and update data
type CourseMatrixRequest struct {
	ProgramID   int64  `json:"programId" binding:"required,min=1" example:"1"`
	CourseID    int64  `json:"courseId" binding:"required,min=1" example:"12"`
	Status      string `json:"status" binding:"max=64" example:"In development"`
	Start       string `json:"start" binding:"omitempty,termcode" example:"2024-1"`
	Live        string `json:"live" binding:"omitempty,termcode" example:"2024-2"`
	FiscalYear  string `json:"fiscalYear" binding:"required,fiscalyear" example:"2024-2025"`
	Increment   int    `json:"increment" binding:"min=0,max=1" example:"0"`
	FacultyID   *int64 `json:"facultyId" binding:"omitempty,min=1"`
	CampusID    *int64 `json:"campusId" binding:"omitempty,min=1"`
	DesignerID  *int64 `json:"designerId" binding:"omitempty,min=1"`
	MediaLeadID *int64 `json:"mediaLeadId" binding:"omitempty,min=1"`
}

// ToModel converts the request into a course matrix row
func (r CourseMatrixRequest) ToModel() *models.CourseMatrix {
	return &models.CourseMatrix{
		ProgramID:   r.ProgramID,
		CourseID:    r.CourseID,
		Status:      strings.TrimSpace(r.Status),
		Start:       strings.TrimSpace(r.Start),
		Live:        strings.TrimSpace(r.Live),
		FiscalYear:  strings.TrimSpace(r.FiscalYear),
		Increment:   r.Increment,
		FacultyID:   r.FacultyID,
		CampusID:    r.CampusID,
		DesignerID:  r.DesignerID,
		MediaLeadID: r.MediaLeadID,
	}
}

// CourseMatrixQuery filters the course matrix list. FiscalYear may repeat
// or hold a comma-separated list.
type CourseMatrixQuery struct {
	ListQuery
	ProgramID   *int64   `form:"programId" binding:"omitempty,min=1"`
	CourseID    *int64   `form:"courseId" binding:"omitempty,min=1"`
	CampusID    *int64   `form:"campusId" binding:"omitempty,min=1"`
	FacultyID   *int64   `form:"facultyId" binding:"omitempty,min=1"`
	DesignerID  *int64   `form:"designerId" binding:"omitempty,min=1"`
	MediaLeadID *int64   `form:"mediaLeadId" binding:"omitempty,min=1"`
	Status      *string  `form:"status"`
	Live        *string  `form:"live"`
	FiscalYear  []string `form:"fiscalYear"`
}

// FiscalYears flattens repeated and comma-separated fiscalYear values
func (q CourseMatrixQuery) FiscalYears() []string {
	return SplitList(q.FiscalYear...)
}

// SplitList splits comma-separated values, dropping blanks
func SplitList(values ...string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
