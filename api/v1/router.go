package v1

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/workforce-hub/dto"
	"github.com/workforce-hub/middleware"
	"github.com/workforce-hub/models"
	"github.com/workforce-hub/repositories"
	"github.com/workforce-hub/services"
	"gorm.io/gorm"
)

// RouterOptions configures NewRouter
type RouterOptions struct {
	JWTSecret      string
	TokenTTL       time.Duration
	Clock          services.Clock
	AllowedOrigins []string
	SecureCookies  bool
}

// NewRouter builds the HTTP engine with every v1 route mounted under /api/v1.
// Callers that want payloads with server-owned fields such as progress
// rejected must set binding.EnableDecoderDisallowUnknownFields first.
func NewRouter(db *gorm.DB, opts RouterOptions) *gin.Engine {
	if opts.Clock == nil {
		opts.Clock = services.SystemClock{Location: time.Local}
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(cors.New(corsConfig(opts.AllowedOrigins)))

	router.GET("/", HealthCheck(db))
	RegisterRoutes(router.Group("/api/v1"), db, opts)

	return router
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	cfg.AllowCredentials = true
	return cfg
}

// RegisterRoutes registers all v1 API routes
func RegisterRoutes(router *gin.RouterGroup, db *gorm.DB, opts RouterOptions) {
	// Repositories
	userRepo := repositories.NewUserRepository(db)
	projectRepo := repositories.NewProjectRepository(db)
	attendanceRepo := repositories.NewAttendanceRepository(db)
	teamRepo := repositories.NewResourceRepository[models.TeamMember](db, "name ASC")
	noteRepo := repositories.NewResourceRepository[models.Note](db, "pinned DESC, updated_at DESC")
	documentRepo := repositories.NewResourceRepository[models.Document](db, "created_at DESC")
	benefitRepo := repositories.NewResourceRepository[models.Benefit](db, "name ASC")
	timeOffRepo := repositories.NewResourceRepository[models.TimeOffRequest](db, "created_at DESC")
	eventRepo := repositories.NewResourceRepository[models.Event](db, "start_time ASC")
	employeeRepo := repositories.NewResourceRepository[models.Employee](db, "name ASC")

	// Services
	authService := services.NewAuthService(userRepo, opts.JWTSecret, opts.TokenTTL)
	projectService := services.NewProjectService(projectRepo, opts.Clock)
	taskService := services.NewTaskService(projectRepo)
	rosterService := services.NewRosterService(projectRepo, teamRepo)
	attendanceService := services.NewAttendanceService(attendanceRepo, opts.Clock)
	timeOffService := services.NewTimeOffService(timeOffRepo, opts.Clock)
	employeeService := services.NewEmployeeService(employeeRepo)
	teamService := services.NewResourceService(teamRepo, "team member")
	noteService := services.NewResourceService(noteRepo, "note")
	documentService := services.NewResourceService(documentRepo, "document")
	benefitService := services.NewResourceService(benefitRepo, "benefit")
	eventService := services.NewEventService(eventRepo)

	authMiddleware := middleware.AuthMiddleware(authService)
	adminOnly := middleware.AdminMiddleware()

	// Health check endpoint
	router.GET("/health", HealthCheck(db))

	// Auth endpoints
	authController := NewAuthController(authService, opts.SecureCookies)
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/register", authController.Register)
		authGroup.POST("/login", authController.Login)
		authGroup.POST("/logout", authController.Logout)
		authGroup.GET("/me", authMiddleware, authController.GetCurrentUser)
	}

	protected := router.Group("")
	protected.Use(authMiddleware)

	protected.GET("/users/:id", authController.GetUser)

	NewProjectController(projectService, taskService, rosterService).RegisterRoutes(protected)
	NewAttendanceController(attendanceService).RegisterRoutes(protected)

	NewResourceController[models.Note, dto.CreateNoteRequest](
		noteService, "note", PatchUpdate[models.Note, dto.UpdateNoteRequest](noteService),
	).RegisterRoutes(protected, "/notes")

	NewResourceController[models.Document, dto.CreateDocumentRequest](
		documentService, "document", PatchUpdate[models.Document, dto.UpdateDocumentRequest](documentService),
	).RegisterRoutes(protected, "/documents")

	NewResourceController[models.Benefit, dto.CreateBenefitRequest](
		benefitService, "benefit", PatchUpdate[models.Benefit, dto.UpdateBenefitRequest](benefitService),
	).RegisterRoutes(protected, "/benefits")

	NewResourceController[models.TeamMember, dto.CreateTeamMemberRequest](
		teamService, "team member", PatchUpdate[models.TeamMember, dto.UpdateTeamMemberRequest](teamService),
	).RegisterRoutes(protected, "/team")

	NewResourceController[models.Event, dto.CreateEventRequest](
		eventService.ResourceService, "event", UpdateFunc[models.Event, dto.UpdateEventRequest](eventService.Update),
	).RegisterRoutes(protected, "/events")

	timeOffGroup := NewResourceController[models.TimeOffRequest, dto.CreateTimeOffRequest](
		timeOffService.ResourceService, "time-off request", UpdateFunc[models.TimeOffRequest, dto.UpdateTimeOffRequest](timeOffService.Update),
	).RegisterRoutes(protected, "/time-off")
	timeOffGroup.PATCH("/:id/review", adminOnly, NewTimeOffController(timeOffService).Review)

	// Employee records are readable by everyone; changes need an admin
	NewResourceController[models.Employee, dto.CreateEmployeeRequest](
		employeeService.ResourceService, "employee",
		func(id, _ string, req dto.UpdateEmployeeRequest) (models.Employee, error) {
			return employeeService.Update(id, req)
		},
	).RegisterRoutes(protected, "/employees", adminOnly)
}
