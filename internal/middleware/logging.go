package middleware

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// NewRequestID returns a request ID for echo's RequestID middleware.
func NewRequestID() string {
	return uuid.NewString()
}

// RequestLogger logs one line per request with slog.
func RequestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()
			attrs := []any{
				"method", req.Method,
				"path", req.URL.Path,
				"status", res.Status,
				"duration", time.Since(start),
				"ip", c.RealIP(),
				"request_id", res.Header().Get(echo.HeaderXRequestID),
			}
			if req.Header.Get("HX-Request") == "true" {
				attrs = append(attrs, "htmx", true)
			}

			switch {
			case res.Status >= 500:
				slog.Error("request handled", append(attrs, "error", err)...)
			case res.Status >= 400:
				slog.Warn("request handled", attrs...)
			default:
				slog.Info("request handled", attrs...)
			}

			return nil
		}
	}
}
