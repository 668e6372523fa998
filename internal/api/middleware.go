package api

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/ougirez/riskmap/internal/pkg/logger"
)

// RequestContextMiddleware puts a request-scoped logger into the request context.
// It must run after the RequestID middleware.
func (svc *APIService) RequestContextMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		rid := c.Response().Header().Get(echo.HeaderXRequestID)
		req := c.Request()
		c.SetRequest(req.WithContext(logger.WithFields(req.Context(), "request_id", rid)))
		return next(c)
	}
}

func (svc *APIService) MetricsMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)

		status := c.Response().Status
		if err != nil {
			status = errorCode(err)
		}
		route := c.Path()
		if route == "" {
			route = "unmatched"
		}

		svc.metrics.RequestsTotal.WithLabelValues(c.Request().Method, route, strconv.Itoa(status)).Inc()
		svc.metrics.RequestDuration.WithLabelValues(c.Request().Method, route).Observe(time.Since(start).Seconds())
		return err
	}
}

func accessLogMiddleware() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogRemoteIP:  true,
		LogError:     true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			l := logger.FromContext(c.Request().Context())
			status := v.Status
			if v.Error != nil {
				status = errorCode(v.Error)
			}
			l.Infow("http_access",
				"method", v.Method,
				"uri", v.URI,
				"status", status,
				"latency_ms", v.Latency.Milliseconds(),
				"remote_ip", v.RemoteIP,
			)
			return nil
		},
	})
}
