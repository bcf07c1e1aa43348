package services

import (
	"github.com/learntech/courseplanner/internal/app/models"
	"github.com/learntech/courseplanner/internal/app/repositories"
)

// Services holds all the service instances
type Services struct {
	CampusService                CampusService
	UserService                  UserService
	RoleService                  RoleService
	FacultyService               FacultyService
	InstructionalDesignerService StaffService
	MediaLeadService             StaffService
	ProgramService               ProgramService
	CourseService                CourseService
	ProgramManagerService        ProgramManagerService
	CourseMatrixService          CourseMatrixService
}

// NewServices initializes all services over the repositories
func NewServices(repos *repositories.Repositories) *Services {
	return &Services{
		CampusService:                NewCampusService(repos.CampusRepository),
		UserService:                  NewUserService(repos.UserRepository),
		RoleService:                  NewRoleService(repos.RoleRepository),
		FacultyService:               NewFacultyService(repos.FacultyRepository),
		InstructionalDesignerService: NewStaffService(models.StaffInstructionalDesigner, repos.InstructionalDesignerRepository),
		MediaLeadService:             NewStaffService(models.StaffMediaLead, repos.MediaLeadRepository),
		ProgramService:               NewProgramService(repos.ProgramRepository, repos.CourseRepository),
		CourseService:                NewCourseService(repos.CourseRepository),
		ProgramManagerService:        NewProgramManagerService(repos.ProgramManagerRepository, repos.ExistenceChecker),
		CourseMatrixService:          NewCourseMatrixService(repos.CourseMatrixRepository),
	}
}
