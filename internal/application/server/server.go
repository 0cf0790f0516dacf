package server

import (
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"todo-api/internal/application/controller"
	"todo-api/internal/application/middleware"
	"todo-api/internal/domain/usecase/health"
	"todo-api/internal/domain/usecase/ratelimit"
	"todo-api/internal/domain/usecase/todo"
	"todo-api/pkg/resource"
)

// Config holds the HTTP settings of the API
type Config struct {
	ContextPath    string
	BodyLimit      string
	TrustProxy     bool
	AllowedOrigins []string
	APIKeys        []string
	RequireAPIKey  bool
	// Hardened hides the details of unexpected failures from clients
	Hardened bool
}

// ConfigFromProperties reads the HTTP settings from the application properties
func ConfigFromProperties(hardened bool) Config {
	return Config{
		ContextPath:    resource.GetString("app.server.context-path"),
		BodyLimit:      resource.GetString("app.server.body-limit"),
		TrustProxy:     resource.GetBool("app.server.trust-proxy"),
		AllowedOrigins: resource.GetCommaSeparated("app.security.allowed-origins"),
		APIKeys: []string{
			resource.GetString("app.security.api-key"),
			resource.GetString("app.security.mcp-api-key"),
		},
		RequireAPIKey: resource.GetBool("app.security.require-api-key"),
		Hardened:      hardened,
	}
}

// UseCases are the domain operations exposed over HTTP
type UseCases struct {
	Todo      todo.UseCase
	Health    health.UseCase
	RateLimit ratelimit.UseCase
}

// New builds the echo instance with every middleware and route registered.
// Middlewares run in registration order, the error handler wraps all of them.
func New(config Config, useCases UseCases) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = middleware.ErrorHandler(config.Hardened)
	if !config.TrustProxy {
		e.IPExtractor = echo.ExtractIPDirect()
	} else {
		e.IPExtractor = echo.ExtractIPFromXFFHeader()
	}

	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLogger())
	e.Use(middleware.Recover())
	e.Use(middleware.SecurityHeaders())
	e.Use(middleware.BodyLimit(config.BodyLimit))
	e.Use(middleware.RateLimiter(useCases.RateLimit))
	e.Use(middleware.Sanitizer())
	e.Use(middleware.CORS(config.AllowedOrigins))

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group(config.ContextPath)
	auth := middleware.NewAuthenticator(config.APIKeys...)

	controller.NewHealthController(api, useCases.Health).InitHealthRoutes()
	controller.NewTodoController(api, useCases.Todo, auth, config.RequireAPIKey).InitTodoRoutes()

	return e
}
