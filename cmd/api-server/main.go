package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/campuskit/acadsched-api/api/swagger"
	"github.com/campuskit/acadsched-api/internal/handler"
	internalmiddleware "github.com/campuskit/acadsched-api/internal/middleware"
	"github.com/campuskit/acadsched-api/internal/models"
	"github.com/campuskit/acadsched-api/internal/repository"
	"github.com/campuskit/acadsched-api/internal/service"
	"github.com/campuskit/acadsched-api/pkg/cache"
	"github.com/campuskit/acadsched-api/pkg/config"
	"github.com/campuskit/acadsched-api/pkg/database"
	"github.com/campuskit/acadsched-api/pkg/export"
	"github.com/campuskit/acadsched-api/pkg/logger"
	corsmiddleware "github.com/campuskit/acadsched-api/pkg/middleware/cors"
	reqidmiddleware "github.com/campuskit/acadsched-api/pkg/middleware/requestid"
)

// @title AcadSched API
// @version 1.0.0
// @description Academic scheduling administration API
// @BasePath /api/v1
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck
	sugar := logr.Sugar()

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		sugar.Fatalw("failed to connect to database", "error", err)
	}
	defer db.Close()

	redisClient, err := cache.NewRedis(cfg.Redis)
	if err != nil {
		sugar.Warnw("redis unavailable, report caching disabled", "error", err)
		redisClient = nil
	}

	validate := validator.New()
	metricsSvc := service.NewMetricsService()

	cacheRepo := repository.NewCacheRepository(redisClient, logr)
	cacheSvc := service.NewCacheService(cacheRepo, metricsSvc, cfg.Reports.CacheTTL, logr, cfg.Reports.CacheEnabled && redisClient != nil)

	termRepo := repository.NewTermRepository(db)
	departmentRepo := repository.NewDepartmentRepository(db)
	subjectRepo := repository.NewSubjectRepository(db)
	sectionRepo := repository.NewSectionRepository(db)
	roomRepo := repository.NewRoomRepository(db)
	facultyRepo := repository.NewFacultyRepository(db)
	timeBlockRepo := repository.NewTimeBlockRepository(db)
	classRepo := repository.NewClassRepository(db)
	meetingRepo := repository.NewMeetingRepository(db)
	versionRepo := repository.NewVersionRepository(db)
	policyRepo := repository.NewPolicyRepository(db)
	changeRequestRepo := repository.NewChangeRequestRepository(db)
	userRepo := repository.NewUserRepository(db)
	reportSource := repository.NewReportSource(subjectRepo, sectionRepo, roomRepo, facultyRepo, timeBlockRepo)

	reportSvc := service.NewReportService(versionRepo, classRepo, meetingRepo, reportSource, cacheSvc, metricsSvc, logr)
	exportSvc := service.NewExportService(reportSvc, cfg.Reports.ExportTitle, logr, export.NewCSVExporter(), export.NewPDFExporter())
	authSvc := service.NewAuthService(userRepo, validate, logr, service.AuthConfig{
		Secret:     cfg.JWT.Secret,
		Expiration: cfg.JWT.Expiration,
	})
	termSvc := service.NewTermService(termRepo, validate, logr)
	departmentSvc := service.NewDepartmentService(departmentRepo, logr)
	subjectSvc := service.NewSubjectService(subjectRepo, validate, logr)
	sectionSvc := service.NewSectionService(sectionRepo, validate, logr)
	roomSvc := service.NewRoomService(roomRepo, validate, logr)
	facultySvc := service.NewFacultyService(facultyRepo, validate, logr)
	timeBlockSvc := service.NewTimeBlockService(timeBlockRepo, validate, logr)
	versionSvc := service.NewVersionService(versionRepo, reportSvc, logr)
	classSvc := service.NewClassService(classRepo, meetingRepo, versionRepo, reportSvc, validate, logr)
	policySvc := service.NewPolicyService(policyRepo, validate, cfg.Policies.GlobalTermID, logr)
	changeRequestSvc := service.NewChangeRequestService(changeRequestRepo, validate, logr)

	authHandler := handler.NewAuthHandler(authSvc)
	termHandler := handler.NewTermHandler(termSvc)
	departmentHandler := handler.NewDepartmentHandler(departmentSvc)
	subjectHandler := handler.NewSubjectHandler(subjectSvc)
	sectionHandler := handler.NewSectionHandler(sectionSvc)
	roomHandler := handler.NewRoomHandler(roomSvc)
	facultyHandler := handler.NewFacultyHandler(facultySvc)
	timeBlockHandler := handler.NewTimeBlockHandler(timeBlockSvc)
	versionHandler := handler.NewVersionHandler(versionSvc)
	classHandler := handler.NewClassHandler(classSvc)
	reportHandler := handler.NewReportHandler(reportSvc, exportSvc)
	policyHandler := handler.NewPolicyHandler(policySvc)
	changeRequestHandler := handler.NewChangeRequestHandler(changeRequestSvc)
	healthHandler := handler.NewHealthHandler(db, redisClient, metricsSvc)

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(internalmiddleware.Metrics(metricsSvc))

	r.GET("/health", healthHandler.Health)
	r.GET("/ready", healthHandler.Ready)
	r.GET("/metrics", gin.WrapH(metricsSvc.Handler()))

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	api.POST("/auth/login", authHandler.Login)

	secured := api.Group("")
	secured.Use(internalmiddleware.JWT(authSvc))

	scheduler := internalmiddleware.RequireRoles(models.UserRoleAdmin, models.UserRoleDean, models.UserRoleChair)
	admin := internalmiddleware.RequireRoles(models.UserRoleAdmin, models.UserRoleDean)

	secured.GET("/auth/me", authHandler.Me)
	secured.GET("/system/stats", healthHandler.Stats)

	secured.GET("/terms", termHandler.List)
	secured.GET("/terms/active", termHandler.GetActive)
	secured.GET("/terms/:id", termHandler.Get)
	secured.POST("/terms", admin, termHandler.Create)
	secured.POST("/terms/:id/activate", admin, termHandler.Activate)

	secured.GET("/departments", departmentHandler.List)
	secured.GET("/departments/:id", departmentHandler.Get)
	secured.POST("/departments", admin, departmentHandler.Create)
	secured.GET("/departments/:id/programs", departmentHandler.ListPrograms)
	secured.POST("/departments/:id/programs", admin, departmentHandler.CreateProgram)

	secured.GET("/subjects", subjectHandler.List)
	secured.GET("/subjects/:id", subjectHandler.Get)
	secured.POST("/subjects", scheduler, subjectHandler.Create)

	secured.GET("/sections", sectionHandler.List)
	secured.GET("/sections/:id", sectionHandler.Get)
	secured.POST("/sections", scheduler, sectionHandler.Create)

	secured.GET("/rooms", roomHandler.List)
	secured.GET("/rooms/:id", roomHandler.Get)
	secured.POST("/rooms", scheduler, roomHandler.Create)

	secured.GET("/faculty", facultyHandler.List)
	secured.GET("/faculty/:id", facultyHandler.Get)
	secured.PUT("/faculty/:id/profile", scheduler, facultyHandler.UpsertProfile)

	secured.GET("/time-blocks", timeBlockHandler.ListByTerm)
	secured.POST("/time-blocks", scheduler, timeBlockHandler.Create)
	secured.PATCH("/time-blocks/:id/active", scheduler, timeBlockHandler.SetActive)

	secured.GET("/versions", versionHandler.List)
	secured.GET("/versions/:id", versionHandler.Get)
	secured.POST("/versions", scheduler, versionHandler.Create)
	secured.POST("/versions/:id/activate", scheduler, versionHandler.Activate)
	secured.POST("/versions/:id/lock", admin, versionHandler.Lock)
	secured.POST("/versions/:id/archive", admin, versionHandler.Archive)

	secured.GET("/classes", classHandler.List)
	secured.GET("/classes/:id", classHandler.Get)
	secured.POST("/classes", scheduler, classHandler.Create)
	secured.PATCH("/classes/:id", scheduler, classHandler.Update)
	secured.DELETE("/classes/:id", scheduler, classHandler.Delete)

	secured.POST("/meetings", scheduler, classHandler.CreateMeeting)
	secured.PATCH("/meetings/:id", scheduler, classHandler.UpdateMeeting)
	secured.DELETE("/meetings/:id", scheduler, classHandler.DeleteMeeting)

	secured.GET("/reports/faculty-load", reportHandler.FacultyLoad)
	secured.GET("/reports/room-utilization", reportHandler.RoomUtilization)
	secured.GET("/reports/conflicts", reportHandler.Conflicts)
	secured.GET("/reports/schedule", reportHandler.Schedule)
	secured.GET("/reports/:report/export", reportHandler.Export)

	secured.GET("/policies", policyHandler.ListByTerm)
	secured.GET("/policies/:key", policyHandler.Resolve)
	secured.PUT("/policies", admin, policyHandler.Upsert)

	secured.GET("/change-requests", changeRequestHandler.List)
	secured.GET("/change-requests/:id", changeRequestHandler.Get)
	secured.POST("/change-requests", changeRequestHandler.Create)
	secured.POST("/change-requests/:id/review", scheduler, changeRequestHandler.Review)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		sugar.Infow("server starting", "addr", srv.Addr, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			sugar.Fatalw("server failed", "error", err)
		}
	}()

	<-ctx.Done()
	sugar.Infow("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		sugar.Errorw("graceful shutdown failed", "error", err)
	}
	if err := cacheRepo.Close(); err != nil {
		sugar.Warnw("closing redis failed", "error", err)
	}
}
