package main

import (
	"log/slog"
	"net/http"

	"school-erp/internal/handlers"
	"school-erp/internal/middleware"
	"school-erp/internal/services"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

type routerDeps struct {
	db               *gorm.DB
	accounts         services.AccountServiceInterface
	transfers        services.TransferServiceInterface
	ledger           services.LedgerServiceInterface
	limiter          *middleware.IPRateLimiter
	gatherer         prometheus.Gatherer
	corsAllowOrigins []string
	logger           *slog.Logger
}

// newRouter builds the echo instance with middleware and every route registered
func newRouter(deps routerDeps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: deps.corsAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAccept, middleware.TraceIDHeader},
	}))
	e.Use(requestLogger(deps.logger))

	health := handlers.NewHealthCheckHandler(deps.db)
	e.GET("/health", health.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(deps.gatherer, promhttp.HandlerOpts{})))

	api := e.Group("/api")
	if deps.limiter != nil {
		api.Use(deps.limiter.Middleware())
	}
	handlers.NewAccountHandler(deps.accounts).RegisterRoutes(api)
	handlers.NewLedgerHandler(deps.ledger).RegisterRoutes(api)
	handlers.NewTransferHandler(deps.transfers).RegisterRoutes(api)

	return e
}

func requestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRemoteIP:  true,
		LogRequestID: false,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			level := slog.LevelInfo
			switch {
			case v.Status >= http.StatusInternalServerError:
				level = slog.LevelError
			case v.Status >= http.StatusBadRequest:
				level = slog.LevelWarn
			}

			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
				slog.String("remote_ip", v.RemoteIP),
				slog.String("trace_id", middleware.GetTraceID(c)),
			}
			if v.Error != nil {
				attrs = append(attrs, slog.String("error", v.Error.Error()))
			}

			logger.LogAttrs(c.Request().Context(), level, "request", attrs...)
			return nil
		},
	})
}
