// file: internals/route/routes.go
package routes

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	databases "gymku_backend/internals/databases"
	authMw "gymku_backend/internals/middlewares/auth"

	planController "gymku_backend/internals/features/membership/plans/controller"
	planRepo "gymku_backend/internals/features/membership/plans/repository"
	planRoute "gymku_backend/internals/features/membership/plans/route"
	planService "gymku_backend/internals/features/membership/plans/service"

	commitmentController "gymku_backend/internals/features/schedule/commitments/controller"
	commitmentRepo "gymku_backend/internals/features/schedule/commitments/repository"
	commitmentRoute "gymku_backend/internals/features/schedule/commitments/route"
	commitmentService "gymku_backend/internals/features/schedule/commitments/service"

	seriesController "gymku_backend/internals/features/schedule/series/controller"
	seriesRepo "gymku_backend/internals/features/schedule/series/repository"
	seriesRoute "gymku_backend/internals/features/schedule/series/route"

	sessionController "gymku_backend/internals/features/schedule/sessions/controller"
	sessionRepo "gymku_backend/internals/features/schedule/sessions/repository"
	sessionRoute "gymku_backend/internals/features/schedule/sessions/route"
	sessionService "gymku_backend/internals/features/schedule/sessions/service"

	studentRepo "gymku_backend/internals/features/users/students/repository"
	trainerRepo "gymku_backend/internals/features/users/trainers/repository"
)

var startTime = time.Now()

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	BaseRoutes(app, db)

	/* =========================
	   Wiring repos & services
	   ========================= */

	series := seriesRepo.NewSeriesRepository(db)
	sessions := sessionRepo.NewSessionRepository(db)
	commitments := commitmentRepo.NewCommitmentRepository(db)
	plans := planRepo.NewPlanRepository(db)
	trainers := trainerRepo.NewTrainerRepository(db)
	students := studentRepo.NewStudentRepository(db)

	commitmentSvc := &commitmentService.CommitmentService{
		Commitments: commitments,
		Tx:          commitments,
		Series:      series,
		Plans:       plans,
	}

	occurrenceSvc := &sessionService.OccurrenceService{
		Series:       series,
		Sessions:     sessions,
		Participants: sessions,
		Trainers:     trainers,
		Attendance:   commitmentSvc,
	}

	assignmentSvc := &planService.AssignmentService{
		Assignments: plans,
		Plans:       plans,
		Students:    students,
		Quota:       commitmentSvc,
		Invoices:    planService.MidtransInvoicer{},
	}

	seriesCtl := &seriesController.SeriesController{Repo: series}
	sessionCtl := sessionController.NewSessionController(occurrenceSvc)
	commitmentCtl := commitmentController.NewCommitmentController(commitmentSvc)
	planCtl := planController.NewPlanController(plans, assignmentSvc)

	/* =========================
	   Mount
	   ========================= */

	api := app.Group("/api", authMw.AuthMiddleware())

	// Member & trainer
	u := api.Group("/u")
	seriesRoute.SeriesUserRoutes(u, seriesCtl)
	sessionRoute.SessionUserRoutes(u, sessionCtl)
	commitmentRoute.CommitmentUserRoutes(u, commitmentCtl)
	planRoute.PlanUserRoutes(u, planCtl)

	// Admin (trainer boleh kelola session miliknya)
	a := api.Group("/a", authMw.OnlyRoles(authMw.RoleAdmin, authMw.RoleTrainer))
	seriesRoute.SeriesAdminRoutes(a, seriesCtl)
	sessionRoute.SessionAdminRoutes(a, sessionCtl)

	// Admin only
	adm := api.Group("/a", authMw.OnlyRoles(authMw.RoleAdmin))
	commitmentRoute.CommitmentAdminRoutes(adm, commitmentCtl)
	planRoute.PlanAdminRoutes(adm, planCtl)
}

func BaseRoutes(app *fiber.App, db *gorm.DB) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Fiber & PostgreSQL connected successfully 🚀")
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		sqlDB, err := databases.DB.DB()
		dbStatus := "Connected"
		serverStatus := "OK"
		httpStatus := fiber.StatusOK

		if err != nil || sqlDB.Ping() != nil {
			dbStatus = "Database connection error"
			serverStatus = "DOWN"
			httpStatus = fiber.StatusServiceUnavailable
		}

		uptime := time.Since(startTime).Seconds()

		return c.Status(httpStatus).JSON(fiber.Map{
			"status":         serverStatus,
			"database":       dbStatus,
			"server_time":    time.Now().Format(time.RFC3339),
			"uptime_seconds": int(uptime),
			"environment":    os.Getenv("RAILWAY_ENVIRONMENT"),
		})
	})
}
