package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	_ "github.com/itech-net/student-portal-api/api/swagger"
	"github.com/itech-net/student-portal-api/internal/handler"
	"github.com/itech-net/student-portal-api/internal/repository"
	"github.com/itech-net/student-portal-api/internal/router"
	"github.com/itech-net/student-portal-api/internal/service"
	"github.com/itech-net/student-portal-api/pkg/cache"
	"github.com/itech-net/student-portal-api/pkg/config"
	"github.com/itech-net/student-portal-api/pkg/database"
	"github.com/itech-net/student-portal-api/pkg/logger"
	"github.com/itech-net/student-portal-api/pkg/response"
)

// @title Student Portal API
// @version 1.0.0
// @description Read-mostly API over the institute's student records.
// @BasePath /api/v1/routes
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

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

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}
	response.ExposeDetails(cfg.Errors.ExposeDetails)

	db, err := database.New(cfg.Database)
	if err != nil {
		logr.Fatal("database unavailable", zap.String("driver", cfg.Database.Driver), zap.Error(err))
	}
	defer db.Close()

	var metrics *service.MetricsService
	if cfg.Metrics.Enabled {
		metrics = service.NewMetricsService()
	}

	var cacheRepo service.CacheRepository
	if cfg.Catalog.CacheEnabled {
		client, err := cache.NewRedis(context.Background(), cfg.Redis)
		if err != nil {
			logr.Warn("catalog cache disabled", zap.String("addr", cache.Addr(cfg.Redis)), zap.Error(err))
		} else {
			redisRepo := repository.NewCacheRepository(client)
			defer redisRepo.Close() //nolint:errcheck
			cacheRepo = redisRepo
		}
	}
	cacheSvc := service.NewCacheService(cacheRepo, metrics, cfg.Catalog.CacheTTL, logr, cacheRepo != nil)

	validate := validator.New()

	enrollmentRepo := repository.NewEnrollmentRepository(db)
	subjectRepo := repository.NewSubjectRepository(db)
	studentRepo := repository.NewStudentRepository(db)
	attendanceRepo := repository.NewAttendanceRepository(db)
	feeRepo := repository.NewFeeRepository(db)

	catalogSvc := service.NewCatalogService(subjectRepo, cacheSvc, metrics, cfg.Catalog.CacheTTL, logr)
	if cacheSvc.Enabled() {
		// a deploy may ship a changed curriculum; drop catalogs cached by the previous release
		if err := catalogSvc.Invalidate(context.Background()); err != nil {
			logr.Warn("catalog cache reset failed", zap.Error(err))
		}
	}
	statusSvc := service.NewStatusService(enrollmentRepo, catalogSvc, metrics, logr)
	authSvc := service.NewAuthService(studentRepo, validate, logr, service.AuthConfig{
		AccessTokenSecret: cfg.JWT.Secret,
		AccessTokenExpiry: cfg.JWT.Expiration,
		Issuer:            cfg.JWT.Issuer,
	})
	timetableSvc := service.NewTimetableService(enrollmentRepo, attendanceRepo, metrics, logr)
	attendanceSvc := service.NewAttendanceService(attendanceRepo, validate, metrics, logr)
	feeSvc := service.NewFeeService(feeRepo, nil, nil, metrics, logr)
	courseSvc := service.NewCourseService(subjectRepo, studentRepo, enrollmentRepo, metrics, logr)
	profileSvc := service.NewProfileService(studentRepo, logr, cfg.Auth.HashPasswords)

	engine := router.New(router.Handlers{
		Auth:       handler.NewAuthHandler(authSvc),
		Status:     handler.NewStatusHandler(statusSvc),
		Timetable:  handler.NewTimetableHandler(timetableSvc),
		Attendance: handler.NewAttendanceHandler(attendanceSvc),
		Fee:        handler.NewFeeHandler(feeSvc),
		Course:     handler.NewCourseHandler(courseSvc),
		Profile:    handler.NewProfileHandler(profileSvc),
		Metrics:    handler.NewMetricsHandler(metrics, db),
	}, authSvc, metrics, logr, router.Options{
		APIPrefix:      cfg.APIPrefix,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		AuthRequired:   cfg.Auth.Required,
		RequestTimeout: cfg.Database.QueryTimeout,
		EnableDocs:     cfg.Env != config.EnvProduction,
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  90 * time.Second,
	}

	go func() {
		logr.Sugar().Infow("server starting", "addr", srv.Addr, "env", cfg.Env, "prefix", cfg.APIPrefix)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Sugar().Fatalw("server failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logr.Warn("graceful shutdown failed", zap.Error(err))
	}
	logr.Info("server stopped")
}
