package middleware

import (
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel/trace"
)

// AccessLog writes one line per request: method, path, status, latency and
// a request id. When the request carries an OpenTelemetry span context
// (e.g. injected by an upstream proxy), its trace id is preferred over the
// generated one so log lines can be joined with traces.
func AccessLog() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now().UTC()

			reqID := uuid.NewString()
			if sc := trace.SpanContextFromContext(c.Request().Context()); sc.IsValid() {
				reqID = sc.TraceID().String()
			}
			c.Response().Header().Set(echo.HeaderXRequestID, reqID)

			err := next(c)

			log.Printf("type: access, method: %s, url: %s, status: %d, requestID: %s, latency: %s",
				c.Request().Method,
				c.Request().URL.Path,
				c.Response().Status,
				reqID,
				time.Since(start),
			)
			return err
		}
	}
}
