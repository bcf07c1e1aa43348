package bootstrap

import (
	"context"
	"fmt"
	"strings"

	"github.com/gin-contrib/gzip"
	"github.com/gin-contrib/secure"
	"github.com/gin-gonic/gin"
	appAuth "github.com/learntech/courseplanner/internal/app/auth"
	appControllers "github.com/learntech/courseplanner/internal/app/controllers"
	"github.com/learntech/courseplanner/internal/app/pages"
	appRepos "github.com/learntech/courseplanner/internal/app/repositories"
	appRoutes "github.com/learntech/courseplanner/internal/app/routes"
	appServices "github.com/learntech/courseplanner/internal/app/services"
	"github.com/learntech/courseplanner/internal/config"
	"github.com/learntech/courseplanner/internal/db"
	appMiddleware "github.com/learntech/courseplanner/internal/middleware"
	pkgAuth "github.com/learntech/courseplanner/internal/pkg/auth"
	"github.com/learntech/courseplanner/internal/pkg/logger"
	"github.com/learntech/courseplanner/internal/server"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos          *appRepos.Repositories
	Services       *appServices.Services
	AuthzService   *appAuth.AuthorizationService
	AuthMiddleware *appMiddleware.AuthMiddleware
	Controllers    appRoutes.Controllers
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger(configPath string) (*config.Config, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: strings.ToLower(cfg.Logging.Format) == "text",
	})

	logger.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, nil
}

// NewVerifier builds the identity verifier selected by identity.mode
func NewVerifier(ctx context.Context, cfg *config.Config) (pkgAuth.Verifier, error) {
	switch cfg.Identity.Mode {
	case config.IdentityModeFirebase:
		projectID := cfg.Identity.ProjectID
		if projectID == "" {
			var err error
			projectID, err = pkgAuth.ProjectIDFromCredentials(cfg.Identity.CredentialsFile)
			if err != nil {
				return nil, err
			}
		}
		logger.Info().Str("project", projectID).Msg("Verifying Firebase ID tokens")
		return pkgAuth.NewFirebaseVerifier(ctx, projectID)
	case config.IdentityModeOIDC:
		logger.Info().Str("issuer", cfg.Identity.IssuerURL).Msg("Verifying OIDC ID tokens")
		return pkgAuth.NewOIDCVerifier(ctx, cfg.Identity.IssuerURL, cfg.Identity.Audience)
	case config.IdentityModeHS256:
		logger.Warn().Msg("Verifying HS256 tokens signed with a shared secret; use only for development")
		return NewHS256Verifier(cfg)
	default:
		return nil, fmt.Errorf("unknown identity mode %q", cfg.Identity.Mode)
	}
}

// NewHS256Verifier builds the shared-secret verifier used by hs256 mode and the token command
func NewHS256Verifier(cfg *config.Config) (*pkgAuth.HS256Verifier, error) {
	return pkgAuth.NewHS256Verifier(pkgAuth.HS256Config{Secret: cfg.Identity.Secret})
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(database db.Querier, verifier pkgAuth.Verifier) *Dependencies {
	deps := &Dependencies{}

	deps.Repos = appRepos.NewRepositories(database)
	deps.Services = appServices.NewServices(deps.Repos)
	deps.AuthzService = appAuth.NewAuthorizationService(verifier, deps.Repos.UserRepository)
	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.AuthzService)

	svc := deps.Services
	deps.Controllers = appRoutes.Controllers{
		Campus:                appControllers.NewCampusController(svc.CampusService),
		User:                  appControllers.NewUserController(svc.UserService, svc.RoleService, deps.AuthzService),
		Faculty:               appControllers.NewFacultyController(svc.FacultyService),
		InstructionalDesigner: appControllers.NewStaffController(svc.InstructionalDesignerService),
		MediaLead:             appControllers.NewStaffController(svc.MediaLeadService),
		Program:               appControllers.NewProgramController(svc.ProgramService),
		Course:                appControllers.NewCourseController(svc.CourseService),
		ProgramManager:        appControllers.NewProgramManagerController(svc.ProgramManagerService),
		CourseMatrix:          appControllers.NewCourseMatrixController(svc.CourseMatrixService),
	}

	return deps
}

// SetupRouter configures the Gin engine with middleware and routes. The rate
// limiter's cleanup stops when ctx is done.
func SetupRouter(ctx context.Context, cfg *config.Config, deps *Dependencies, health appRoutes.Pinger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}
	appMiddleware.RegisterValidators()

	router := gin.New()
	// Handlers pass *gin.Context to services; fall back to the request context
	// so its deadline and request id reach the database layer.
	router.ContextWithFallback = true

	router.Use(
		appMiddleware.RequestID(),
		appMiddleware.Recovery(),
		appMiddleware.RequestLogger(),
		secure.New(secure.Config{
			FrameDeny:             true,
			ContentTypeNosniff:    true,
			BrowserXssFilter:      true,
			IENoOpen:              true,
			ReferrerPolicy:        "strict-origin-when-cross-origin",
			ContentSecurityPolicy: "default-src 'self'; style-src 'self' 'unsafe-inline'; img-src 'self' data:",
			STSSeconds:            31536000,
			STSIncludeSubdomains:  true,
			IsDevelopment:         !cfg.IsProduction(),
		}),
		gzip.Gzip(gzip.DefaultCompression),
	)

	if cfg.RateLimit.Enabled {
		limiter := appMiddleware.NewRateLimiter(ctx, cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
		router.Use(limiter.Middleware())
	}
	router.Use(appMiddleware.RequestTimeout(cfg.Database.QueryTimeout))

	router.GET("/", pages.LandingHandler)
	appRoutes.SetupRouter(router, deps.Controllers, deps.AuthMiddleware, health)
	router.NoRoute(server.StaticFallback(cfg.Server.PublicDir, cfg.Server.AppDir))

	return router
}
