package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/shiftdesk/shiftdesk-api/api/swagger"
	"github.com/shiftdesk/shiftdesk-api/internal/handler"
	"github.com/shiftdesk/shiftdesk-api/internal/middleware"
	"github.com/shiftdesk/shiftdesk-api/internal/repository"
	"github.com/shiftdesk/shiftdesk-api/internal/service"
	"github.com/shiftdesk/shiftdesk-api/pkg/cache"
	"github.com/shiftdesk/shiftdesk-api/pkg/config"
	"github.com/shiftdesk/shiftdesk-api/pkg/database"
	"github.com/shiftdesk/shiftdesk-api/pkg/logger"
	corsmiddleware "github.com/shiftdesk/shiftdesk-api/pkg/middleware/cors"
	reqidmiddleware "github.com/shiftdesk/shiftdesk-api/pkg/middleware/requestid"
)

// @title ShiftDesk API
// @version 1.0.0
// @description Team shift scheduling and availability API
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

	location, err := time.LoadLocation(cfg.Schedule.Timezone)
	if err != nil {
		logr.Sugar().Fatalw("invalid schedule timezone", "timezone", cfg.Schedule.Timezone, "error", err)
	}

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to postgres", "error", err)
	}
	defer db.Close()

	redisClient, err := cache.NewRedis(cfg.Redis)
	if err != nil {
		logr.Sugar().Warnw("redis unavailable, caching disabled", "error", err)
		redisClient = nil
	}

	validate := validator.New()

	userRepo := repository.NewUserRepository(db)
	templateRepo := repository.NewShiftTemplateRepository(db)
	assignmentRepo := repository.NewShiftAssignmentRepository(db)
	scheduledTaskRepo := repository.NewScheduledTaskRepository(db)
	routineTaskRepo := repository.NewRoutineTaskRepository(db)
	eventRepo := repository.NewPersonalEventRepository(db)
	cacheRepo := repository.NewCacheRepository(redisClient, logr)

	metricsSvc := service.NewMetricsService()
	cacheSvc := service.NewCacheService(cacheRepo, metricsSvc, cfg.Schedule.CacheTTL, logr, redisClient != nil)
	tokenSvc := service.NewTokenService(service.TokenConfig{
		Secret:   cfg.JWT.Secret,
		Issuer:   cfg.JWT.Issuer,
		Audience: cfg.JWT.Audience,
	}, logr)

	assignmentSvc := service.NewAssignmentService(templateRepo, assignmentRepo, cacheSvc, validate, logr, cfg.Schedule.AtomicBatch)
	scheduleSvc := service.NewScheduleService(userRepo, assignmentRepo, eventRepo, templateRepo, cacheSvc, location, cfg.Schedule.CacheTTL, logr)
	availabilitySvc := service.NewAvailabilityService(userRepo, assignmentRepo, eventRepo)
	taskSvc := service.NewTaskService(scheduledTaskRepo, routineTaskRepo, validate, location, logr)
	eventSvc := service.NewPersonalEventService(eventRepo, cacheSvc, validate, logr)
	templateSvc := service.NewShiftTemplateService(templateRepo, validate, logr)

	scheduleHandler := handler.NewScheduleHandler(scheduleSvc, availabilitySvc)
	shiftHandler := handler.NewShiftHandler(assignmentSvc)
	templateHandler := handler.NewShiftTemplateHandler(templateSvc)
	taskHandler := handler.NewTaskHandler(taskSvc)
	eventHandler := handler.NewEventHandler(eventSvc)
	metricsHandler := handler.NewMetricsHandler(metricsSvc)

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", func(c *gin.Context) {
		if err := db.PingContext(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	r.GET("/metrics", metricsHandler.Prometheus)
	r.GET("/metrics/snapshot", metricsHandler.Snapshot)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	api.Use(middleware.JWT(tokenSvc))
	{
		schedule := api.Group("/schedule")
		{
			schedule.GET("/week", scheduleHandler.Week)
			schedule.GET("/currently-working", scheduleHandler.CurrentlyWorking)
			schedule.GET("/export", scheduleHandler.Export)
			schedule.GET("/availability", scheduleHandler.Availability)
		}

		shifts := api.Group("/shifts", middleware.AdminOnly())
		{
			shifts.POST("/assign", shiftHandler.Assign)
			shifts.DELETE("", shiftHandler.Remove)
			shifts.POST("/bulk", shiftHandler.BulkAssign)
			shifts.POST("/copy", shiftHandler.Copy)
		}

		templates := api.Group("/shift-templates")
		{
			templates.GET("", templateHandler.List)
			templates.GET("/:id", templateHandler.Get)
			templates.POST("", middleware.AdminOnly(), templateHandler.Create)
			templates.PUT("/:id", middleware.AdminOnly(), templateHandler.Update)
			templates.DELETE("/:id", middleware.AdminOnly(), templateHandler.Delete)
		}

		tasks := api.Group("/tasks")
		{
			tasks.GET("/scheduled", taskHandler.ListScheduled)
			tasks.POST("/scheduled", taskHandler.CreateScheduled)
			tasks.PUT("/scheduled/:id", taskHandler.UpdateScheduled)
			tasks.DELETE("/scheduled/:id", taskHandler.DeleteScheduled)
			tasks.GET("/agenda", taskHandler.Agenda)
			tasks.GET("/routines", taskHandler.ListRoutines)
			tasks.POST("/routines", taskHandler.CreateRoutine)
			tasks.PUT("/routines/:id", taskHandler.UpdateRoutine)
			tasks.DELETE("/routines/:id", taskHandler.DeactivateRoutine)
		}

		events := api.Group("/events")
		{
			events.GET("", eventHandler.List)
			events.POST("", eventHandler.Create)
			events.PUT("/:id", eventHandler.Update)
			events.DELETE("/:id", eventHandler.Delete)
		}
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env, "timezone", cfg.Schedule.Timezone)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
