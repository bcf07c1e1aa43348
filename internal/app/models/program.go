package models

// Program is an academic program grouping courses
type Program struct {
	ID   int64  `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}

// Course belongs to a program
type Course struct {
	ID          int64  `json:"id"`
	Code        string `json:"code"`
	Name        string `json:"name"`
	ProgramID   int64  `json:"programId"`
	ProgramCode string `json:"programCode,omitempty"`
}

// ProgramManager links a user (by email) to a program they manage
type ProgramManager struct {
	ID          int64  `json:"id"`
	Email       string `json:"email"`
	ProgramID   int64  `json:"programId"`
	ProgramCode string `json:"programCode,omitempty"`
	FirstName   string `json:"firstName,omitempty"`
	LastName    string `json:"lastName,omitempty"`
}
