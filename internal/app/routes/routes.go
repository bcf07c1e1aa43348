package routes

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/learntech/courseplanner/internal/app/controllers"
	"github.com/learntech/courseplanner/internal/app/models"
	"github.com/learntech/courseplanner/internal/app/models/dto"
	"github.com/learntech/courseplanner/internal/middleware"
	"github.com/learntech/courseplanner/internal/pkg/logger"
)

// BasePath prefixes every API route
const BasePath = "/api/course-planner/v1"

// Controllers groups the handlers mounted by SetupRouter
type Controllers struct {
	Campus                *controllers.CampusController
	User                  *controllers.UserController
	Faculty               *controllers.FacultyController
	InstructionalDesigner *controllers.StaffController
	MediaLead             *controllers.StaffController
	Program               *controllers.ProgramController
	Course                *controllers.CourseController
	ProgramManager        *controllers.ProgramManagerController
	CourseMatrix          *controllers.CourseMatrixController
}

// Pinger reports whether the database is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, ctrl Controllers, authMiddleware *middleware.AuthMiddleware, db Pinger) {
	v1 := router.Group(BasePath)

	requireAdmin := authMiddleware.RequireLevel(models.LevelAdmin)
	requireSupportAdmin := authMiddleware.RequireLevel(models.LevelSupportAdmin)
	requireProgramManager := authMiddleware.RequireLevel(models.LevelProgramManager)
	requireSubscriber := authMiddleware.RequireLevel(models.LevelSubscriber)

	v1.GET("/health", healthHandler(db))

	campuses := v1.Group("/campuses")
	{
		campuses.GET("", ctrl.Campus.ListCampuses)
		campuses.GET("/code/:code", ctrl.Campus.GetCampusByCode)
		campuses.GET("/:id", ctrl.Campus.GetCampusByID)
		campuses.POST("", requireSupportAdmin, ctrl.Campus.CreateCampus)
		campuses.POST("/:id", requireSupportAdmin, ctrl.Campus.UpdateCampus)
		campuses.DELETE("/:id", requireSupportAdmin, ctrl.Campus.DeleteCampus)
	}

	users := v1.Group("/users")
	{
		users.GET("/me", requireSubscriber, ctrl.User.GetCurrentUser)
		users.GET("", requireAdmin, ctrl.User.ListUsers)
		users.GET("/:uid", requireAdmin, ctrl.User.GetUserByUID)
		users.POST("", requireAdmin, ctrl.User.CreateUser)
		users.POST("/:uid", requireAdmin, ctrl.User.UpdateUser)
		users.DELETE("/:uid", requireAdmin, ctrl.User.DeleteUser)
	}

	roles := v1.Group("/roles", requireSubscriber)
	{
		roles.GET("", ctrl.User.ListRoles)
		roles.GET("/:id", ctrl.User.GetRoleByID)
	}

	faculty := v1.Group("/faculty")
	{
		faculty.GET("", ctrl.Faculty.ListFaculty)
		faculty.GET("/:id", ctrl.Faculty.GetFacultyByID)
		faculty.POST("", requireProgramManager, ctrl.Faculty.CreateFaculty)
		faculty.POST("/:id", requireProgramManager, ctrl.Faculty.UpdateFaculty)
		faculty.DELETE("/:id", requireProgramManager, ctrl.Faculty.DeleteFaculty)
	}

	mountStaff(v1.Group("/instructional-designers"), ctrl.InstructionalDesigner, requireProgramManager)
	mountStaff(v1.Group("/media-leads"), ctrl.MediaLead, requireAdmin)

	programs := v1.Group("/programs")
	{
		programs.GET("", ctrl.Program.ListPrograms)
		programs.GET("/code/:code", ctrl.Program.GetProgramByCode)
		programs.GET("/:id", ctrl.Program.GetProgramByID)
		programs.GET("/:id/courses", ctrl.Program.ListProgramCourses)
		programs.POST("", requireProgramManager, ctrl.Program.CreateProgram)
		programs.POST("/:id", requireProgramManager, ctrl.Program.UpdateProgram)
		programs.DELETE("/:id", requireProgramManager, ctrl.Program.DeleteProgram)
	}

	courses := v1.Group("/courses")
	{
		courses.GET("", ctrl.Course.ListCourses)
		courses.GET("/code/:code", ctrl.Course.GetCourseByCode)
		courses.GET("/:id", ctrl.Course.GetCourseByID)
		courses.POST("", requireProgramManager, ctrl.Course.CreateCourse)
		courses.POST("/:id", requireProgramManager, ctrl.Course.UpdateCourse)
		courses.DELETE("/:id", requireProgramManager, ctrl.Course.DeleteCourse)
	}

	managers := v1.Group("/program-managers")
	{
		managers.GET("", ctrl.ProgramManager.ListProgramManagers)
		managers.GET("/:id", ctrl.ProgramManager.GetProgramManagerByID)
		managers.POST("", requireSupportAdmin, ctrl.ProgramManager.CreateProgramManager)
		managers.POST("/:id", requireSupportAdmin, ctrl.ProgramManager.UpdateProgramManager)
		managers.DELETE("/:id", requireSupportAdmin, ctrl.ProgramManager.DeleteProgramManager)
	}

	matrix := v1.Group("/course-matrix")
	{
		matrix.GET("", ctrl.CourseMatrix.ListCourseMatrix)
		matrix.GET("/:id", ctrl.CourseMatrix.GetCourseMatrixByID)
		matrix.GET("/program/:programId", ctrl.CourseMatrix.ListByProgram)
		matrix.GET("/course/:courseId", ctrl.CourseMatrix.ListByCourse)
		matrix.GET("/fiscal-years/:years", ctrl.CourseMatrix.ListByFiscalYears)
		matrix.GET("/range/from/:from/to/:to", ctrl.CourseMatrix.ListByStartRange)
		matrix.GET("/range/from/:from", ctrl.CourseMatrix.ListByStartRange)
		matrix.GET("/range/to/:to", ctrl.CourseMatrix.ListByStartRange)
		matrix.GET("/fiscal/from/:year", ctrl.CourseMatrix.ListFromFiscalYear)
		matrix.GET("/fiscal/to/:year", ctrl.CourseMatrix.ListToFiscalYear)
		matrix.POST("", requireProgramManager, ctrl.CourseMatrix.CreateCourseMatrix)
		matrix.POST("/:id", requireProgramManager, ctrl.CourseMatrix.UpdateCourseMatrix)
		matrix.DELETE("/:id", requireProgramManager, ctrl.CourseMatrix.DeleteCourseMatrix)
	}
}

// mountStaff registers the staff routes; writes need at least the given level
func mountStaff(group *gin.RouterGroup, ctrl *controllers.StaffController, writeLevel gin.HandlerFunc) {
	group.GET("", ctrl.ListStaff)
	group.GET("/:id", ctrl.GetStaffByID)
	group.POST("", writeLevel, ctrl.CreateStaff)
	group.POST("/:id", writeLevel, ctrl.UpdateStaff)
	group.DELETE("/:id", writeLevel, ctrl.DeleteStaff)
}

func healthHandler(db Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := db.Ping(ctx); err != nil {
			logger.Ctx(ctx).Warn().Err(err).Msg("Health check failed")
			c.JSON(http.StatusServiceUnavailable, dto.NewErrorResponse(
				dto.NewErrorDetail(dto.ErrorCodeInternalServer, "database unavailable"),
			))
			return
		}
		c.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{"status": "ok"}))
	}
}
