package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/VarshaKulal/CODECRAFT-FS-02/internal/api/handler"
	"github.com/VarshaKulal/CODECRAFT-FS-02/internal/api/middleware"
	"github.com/VarshaKulal/CODECRAFT-FS-02/internal/core/domain"
	"github.com/VarshaKulal/CODECRAFT-FS-02/internal/core/service"
	"github.com/VarshaKulal/CODECRAFT-FS-02/internal/infrastructure/config"
	mongodb "github.com/VarshaKulal/CODECRAFT-FS-02/internal/infrastructure/db/mongo"
	redisdb "github.com/VarshaKulal/CODECRAFT-FS-02/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// All stores and services are constructed here and injected into the
// handlers; nothing is ambient.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("employee_api"))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     cfg.CORSOrigins,
		AllowCredentials: true,
	}))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	employeeRepo := mongodb.NewEmployeeRepository(db)
	sessionStore := redisdb.NewSessionStore(rdb)

	authService := service.NewAuthService(userRepo, sessionStore, cfg.Auth.BcryptCost, cfg.Session.TTL, log)
	employeeService := service.NewEmployeeService(employeeRepo, log)

	authHandler := handler.NewAuthHandler(authService, cfg.Session.CookieSecure)
	employeeHandler := handler.NewEmployeeHandler(employeeService)

	// The access gate: authentication first, then the role check.
	authenticated := middleware.Session(sessionStore)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Auth routes ---
	e.POST("/api/register", authHandler.Register)
	e.POST("/api/login", authHandler.Login)
	e.POST("/api/logout", authHandler.Logout)
	e.GET("/api/me", authHandler.Me, authenticated)

	// --- Employee routes (session + admin role) ---
	employees := e.Group("/api/employees", authenticated, adminOnly)
	employees.POST("", employeeHandler.Create)
	employees.GET("", employeeHandler.List)
	employees.GET("/:id", employeeHandler.Get)
	employees.PUT("/:id", employeeHandler.Update)
	employees.DELETE("/:id", employeeHandler.Delete)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
