package models

import (
	"strconv"
	"time"
)

// Fiscal halves stored in CourseMatrix.Increment
const (
	FirstFiscalHalf  = 0
	SecondFiscalHalf = 1
)

// CourseMatrix schedules a course offering of a program in a fiscal year and
// records who is staffing it.
type CourseMatrix struct {
	ID          int64     `json:"id"`
	ProgramID   int64     `json:"programId"`
	ProgramCode string    `json:"programCode,omitempty"`
	CourseID    int64     `json:"courseId"`
	CourseCode  string    `json:"courseCode,omitempty"`
	CourseName  string    `json:"courseName,omitempty"`
	Status      string    `json:"status"`
	Start       string    `json:"start"`
	Live        string    `json:"live"`
	FiscalYear  string    `json:"fiscalYear"`
	Increment   int       `json:"increment"`
	FacultyID   *int64    `json:"facultyId"`
	CampusID    *int64    `json:"campusId"`
	DesignerID  *int64    `json:"designerId"`
	MediaLeadID *int64    `json:"mediaLeadId"`
	UpdatedOn   time.Time `json:"updatedOn"`
}

// FiscalYearLabel renders the fiscal year that starts in year, e.g. 2024 -> "2024-2025"
func FiscalYearLabel(year int) string {
	return strconv.Itoa(year) + "-" + strconv.Itoa(year+1)
}

// FiscalHalf renders the sortable key of one half of a fiscal year,
// e.g. FiscalHalf(2024, 0) -> "2024-2025:0". It compares against
// fiscal_year || ':' || increment.
func FiscalHalf(year, half int) string {
	return FiscalYearLabel(year) + ":" + strconv.Itoa(half)
}
