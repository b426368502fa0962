package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/autofixpro/workshop-system/internal/api/handler"
	"github.com/autofixpro/workshop-system/internal/api/middleware"
	"github.com/autofixpro/workshop-system/internal/core/domain"
	"github.com/autofixpro/workshop-system/internal/core/ports"
)

// Deps carries everything the router wires together.
type Deps struct {
	Sync      ports.SyncService
	Auth      ports.AuthService
	Advice    ports.AdviceService
	Remote    ports.RemoteStore
	Redis     *redis.Client // nil unless the redis mirror backend is in use
	JWTSecret string
	Logger    zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("workshop"))

	// --- Dependencies ---
	authHandler := handler.NewAuthHandler(d.Auth, d.Sync)
	stateHandler := handler.NewStateHandler(d.Sync)
	customerHandler := handler.NewCustomerHandler(d.Sync)
	vehicleHandler := handler.NewVehicleHandler(d.Sync)
	transactionHandler := handler.NewTransactionHandler(d.Sync)
	adviceHandler := handler.NewAdviceHandler(d.Advice, d.Sync)
	authMiddleware := middleware.Auth(d.JWTSecret)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Auth routes ---
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout, authMiddleware)

	// --- Authenticated API ---
	v1 := e.Group("/v1", authMiddleware)

	v1.GET("/state", stateHandler.Get)
	v1.POST("/state/reload", stateHandler.Reload)
	v1.GET("/stats", stateHandler.Stats)
	v1.GET("/backup", stateHandler.Backup)
	v1.POST("/reset", stateHandler.Reset, adminOnly)

	v1.POST("/customers", customerHandler.Save)
	v1.GET("/customers/:id", customerHandler.Get)
	v1.DELETE("/customers/:id", customerHandler.Delete, adminOnly)

	v1.POST("/vehicles", vehicleHandler.Save)
	v1.DELETE("/vehicles/:id", vehicleHandler.Delete, adminOnly)

	v1.POST("/transactions", transactionHandler.Add)

	v1.GET("/advice/maintenance/:id", adviceHandler.Maintenance)
	v1.GET("/advice/business", adviceHandler.Business)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(d.Remote, d.Redis)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – is the mirror backend up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
