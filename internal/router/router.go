package router

import (
	"regexp"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/time/rate"

	"github.com/dragenda/agenda-api/internal/handler"
	"github.com/dragenda/agenda-api/internal/middleware"
)

type Handler interface {
	RegisterRoutes(*gin.RouterGroup)
}

var timeOfDayPattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]:[0-5][0-9]$`)

// registerValidations installs request-binding validations shared by the
// handlers. "timeofday" accepts the "HH:MM:SS" format used by doctor
// availability windows.
func registerValidations() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("timeofday", func(fl validator.FieldLevel) bool {
			return timeOfDayPattern.MatchString(fl.Field().String())
		})
	}
}

type Router struct {
	engine       *gin.Engine
	auth         *middleware.AuthMiddleware
	clinicH      Handler
	doctorH      Handler
	patientH     Handler
	appointmentH Handler
	h            *handler.Handler
	metrics      *routerMetrics
}

type routerMetrics struct {
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
}

type Config struct {
	RateLimit  rate.Limit
	RateBurst  int
	CORSConfig middleware.CORSConfig
}

func NewRouter(
	auth *middleware.AuthMiddleware,
	clinicH Handler,
	doctorH Handler,
	patientH Handler,
	appointmentH Handler,
	h *handler.Handler,
	config Config,
) *Router {
	gin.SetMode(gin.ReleaseMode)
	registerValidations()
	engine := gin.New()

	r := &Router{
		engine:       engine,
		auth:         auth,
		clinicH:      clinicH,
		doctorH:      doctorH,
		patientH:     patientH,
		appointmentH: appointmentH,
		h:            h,
		metrics:      initRouterMetrics(),
	}

	engine.Use(
		middleware.RequestID(),
		middleware.Logger(),
		middleware.Recovery(),
		r.metricsMiddleware(),
	)
	engine.Use(middleware.CORS(config.CORSConfig))

	rateLimiter := middleware.NewRateLimiter(middleware.RateLimiterConfig{
		Rate:  config.RateLimit,
		Burst: config.RateBurst,
	})
	engine.Use(rateLimiter.RateLimit())

	return r
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}

func (r *Router) Setup() {
	api := r.engine.Group("/api/v1")

	// Health and metrics stay outside the session gate.
	r.engine.GET("/healthz", r.h.LivenessCheck)
	r.engine.GET("/readyz", r.h.ReadinessCheck)
	r.engine.GET("/metrics", r.h.MetricsHandler)

	// Every domain route requires a resolvable session.
	api.Use(r.auth.Authenticate())

	r.clinicH.RegisterRoutes(api)
	r.doctorH.RegisterRoutes(api)
	r.patientH.RegisterRoutes(api)
	r.appointmentH.RegisterRoutes(api)
}

func initRouterMetrics() *routerMetrics {
	m := &routerMetrics{
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency distribution",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),
		requestTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total HTTP requests processed",
			},
			[]string{"method", "path", "status"},
		),
	}
	prometheus.MustRegister(m.requestDuration, m.requestTotal)
	return m
}

func (r *Router) metricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())

		r.metrics.requestDuration.WithLabelValues(c.Request.Method, path, status).
			Observe(time.Since(start).Seconds())
		r.metrics.requestTotal.WithLabelValues(c.Request.Method, path, status).Inc()
	}
}
