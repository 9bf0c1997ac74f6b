package router

import (
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/itech-net/student-portal-api/internal/handler"
	"github.com/itech-net/student-portal-api/internal/middleware"
	"github.com/itech-net/student-portal-api/internal/service"
	"github.com/itech-net/student-portal-api/pkg/logger"
	corsmiddleware "github.com/itech-net/student-portal-api/pkg/middleware/cors"
	reqidmiddleware "github.com/itech-net/student-portal-api/pkg/middleware/requestid"
)

// Options tune the engine built by New.
type Options struct {
	APIPrefix      string
	AllowedOrigins []string
	AuthRequired   bool
	RequestTimeout time.Duration
	EnableDocs     bool
}

// Handlers groups every HTTP handler the portal mounts.
type Handlers struct {
	Auth       *handler.AuthHandler
	Status     *handler.StatusHandler
	Timetable  *handler.TimetableHandler
	Attendance *handler.AttendanceHandler
	Fee        *handler.FeeHandler
	Course     *handler.CourseHandler
	Profile    *handler.ProfileHandler
	Metrics    *handler.MetricsHandler
}

// New builds the gin engine with the ops endpoints at the root and portal
// routes under opts.APIPrefix.
func New(h Handlers, tokens middleware.TokenValidator, metrics *service.MetricsService, log *zap.Logger, opts Options) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(log))
	r.Use(corsmiddleware.New(opts.AllowedOrigins))
	r.Use(middleware.Metrics(metrics))

	r.GET("/health", h.Metrics.Health)
	r.GET("/ready", h.Metrics.Ready)
	r.GET("/metrics", h.Metrics.Prometheus)
	if opts.EnableDocs {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(opts.APIPrefix)
	if opts.RequestTimeout > 0 {
		api.Use(middleware.Timeout(opts.RequestTimeout))
	}

	api.POST("/login", h.Auth.Login)
	api.POST("/logout", h.Auth.Logout)

	portal := api.Group("")
	portal.Use(middleware.Auth(tokens, opts.AuthRequired), middleware.StudentScope())
	{
		portal.GET("/get-batch", h.Status.GetBatch)
		portal.GET("/batch-timetable", h.Timetable.Timetable)
		portal.GET("/batch-timings", h.Timetable.BatchTimings)
		portal.GET("/attendance", h.Attendance.List)
		portal.GET("/fee-details", h.Fee.List)
		portal.GET("/fee-details/export", h.Fee.Export)
		portal.GET("/course-details", h.Course.Overview)
		portal.GET("/marks", h.Course.Marks)
		portal.PUT("/update-profile", h.Profile.Update)
		portal.POST("/update-profile", h.Profile.Update)
	}

	return r
}
