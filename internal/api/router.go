package api

import (
	"fmt"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/voluntariados/backend/docs"
	"github.com/voluntariados/backend/internal/api/handler"
	"github.com/voluntariados/backend/internal/api/middleware"
	"github.com/voluntariados/backend/internal/core/domain"
	"github.com/voluntariados/backend/internal/core/ports"
)

const metricsNamespace = "voluntariados"

// Deps carries everything the HTTP routers need. Registerer and Gatherer
// default to the global Prometheus registry when nil.
type Deps struct {
	Usuarios      ports.RecordService[domain.Usuario]
	Voluntariados ports.RecordService[domain.Voluntariado]
	Pingers       map[string]ports.Pinger
	Logger        zerolog.Logger
	Registerer    prometheus.Registerer
	Gatherer      prometheus.Gatherer
}

func (d Deps) registerer() prometheus.Registerer {
	if d.Registerer == nil {
		return prometheus.DefaultRegisterer
	}
	return d.Registerer
}

func (d Deps) gatherer() prometheus.Gatherer {
	if d.Gatherer == nil {
		return prometheus.DefaultGatherer
	}
	return d.Gatherer
}

// NewEcho returns an Echo instance with the middleware and error handling
// shared by the REST and GraphQL servers. subsystem labels its HTTP metrics.
func NewEcho(deps Deps, subsystem string) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	prom, err := echoprometheus.MiddlewareConfig{
		Namespace:  metricsNamespace,
		Subsystem:  subsystem,
		Registerer: deps.registerer(),
	}.ToMiddleware()
	if err != nil {
		return nil, fmt.Errorf("api: prometheus middleware: %w", err)
	}

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.RequestLogger(deps.Logger))
	e.Use(prom)

	return e, nil
}

// NewRouter builds the REST server with all routes registered.
func NewRouter(deps Deps) (*echo.Echo, error) {
	e, err := NewEcho(deps, "rest")
	if err != nil {
		return nil, err
	}

	usuarios := handler.NewUsuarioHandler(deps.Usuarios)
	voluntariados := handler.NewVoluntariadoHandler(deps.Voluntariados)

	// --- Usuarios ---
	e.GET("/usuarios", usuarios.List)
	e.GET("/usuarios/:email", usuarios.Get)
	e.POST("/usuarios", usuarios.Create)
	e.DELETE("/usuarios/:email", usuarios.Delete)

	// --- Voluntariados ---
	e.GET("/voluntariados", voluntariados.List)
	e.GET("/voluntariados/:id", voluntariados.Get)
	e.POST("/voluntariados", voluntariados.Create)
	e.DELETE("/voluntariados/:id", voluntariados.Delete)

	// --- Health probes ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.Pingers, deps.Logger)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)

	// --- Operations ---
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
		Gatherer: deps.gatherer(),
	}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e, nil
}
