package repositories

import (
	"github.com/learntech/courseplanner/internal/app/models"
	"github.com/learntech/courseplanner/internal/db"
)

// Repositories holds all the repository instances
type Repositories struct {
	CampusRepository                *CampusRepository
	UserRepository                  *UserRepository
	RoleRepository                  *RoleRepository
	FacultyRepository               *FacultyRepository
	InstructionalDesignerRepository *StaffRepository
	MediaLeadRepository             *StaffRepository
	ProgramRepository               *ProgramRepository
	CourseRepository                *CourseRepository
	ProgramManagerRepository        *ProgramManagerRepository
	CourseMatrixRepository          *CourseMatrixRepository
	ExistenceChecker                *ExistenceChecker
}

// NewRepositories initializes all repositories on a shared querier
func NewRepositories(db db.Querier) *Repositories {
	return &Repositories{
		CampusRepository:                NewCampusRepository(db),
		UserRepository:                  NewUserRepository(db),
		RoleRepository:                  NewRoleRepository(db),
		FacultyRepository:               NewFacultyRepository(db),
		InstructionalDesignerRepository: NewStaffRepository(db, models.StaffInstructionalDesigner),
		MediaLeadRepository:             NewStaffRepository(db, models.StaffMediaLead),
		ProgramRepository:               NewProgramRepository(db),
		CourseRepository:                NewCourseRepository(db),
		ProgramManagerRepository:        NewProgramManagerRepository(db),
		CourseMatrixRepository:          NewCourseMatrixRepository(db),
		ExistenceChecker:                NewExistenceChecker(db),
	}
}
