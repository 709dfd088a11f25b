package server

import (
	"net/http"
	"solidusers/cmd/internal/http/handler"
	"solidusers/cmd/internal/http/middleware"
	"solidusers/cmd/internal/utils/uid"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus"
)

type ServerConfig struct {
	BodyLimit string
	MachineID int64
	Registry  *prometheus.Registry
}

// NewServer builds the echo instance with every route and middleware mounted.
func NewServer(cfg *ServerConfig, userRoutes *handler.DefaultUserRoute) (*echo.Echo, error) {
	uid.Init(cfg.MachineID)

	registry := cfg.Registry
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	metrics, err := middleware.NewMetrics(registry)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(echomw.Recover())
	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{Generator: uid.RequestID}))
	e.Use(echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			log.Infof("[%s] %s %s -> %d (%s)", v.RequestID, v.Method, v.URI, v.Status, v.Latency)
			return nil
		},
	}))
	e.Use(metrics.Middleware())
	e.Use(echomw.CORS())
	if cfg.BodyLimit != "" {
		e.Use(echomw.BodyLimit(cfg.BodyLimit))
	}

	userRoutes.Register(e)

	// Docker Compose healthcheck
	e.GET("/health", healthCheckRoute)
	e.GET("/metrics", metrics.Handler())

	return e, nil
}

func healthCheckRoute(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}
