package middleware

import (
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/callmeAyanda/digital-healthcare-management-system/internal/platform/auth"
)

// Audit returns middleware that emits a structured access-log entry for every
// request under /api/v1. Patient and provider data is health information, so
// who read or changed what is recorded with the caller's identity.
func Audit(logger zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			path := req.URL.Path

			if !strings.HasPrefix(path, "/api/v1") {
				return next(c)
			}

			// Execute the handler first so we capture the response status
			err := next(c)

			ctx := req.Context()
			rid, _ := c.Get("request_id").(string)

			logger.Info().
				Str("type", "access_audit").
				Str("request_id", rid).
				Str("user_id", auth.UserIDFromContext(ctx)).
				Str("user_role", auth.RoleFromContext(ctx)).
				Str("action", methodToAction(req.Method)).
				Str("method", req.Method).
				Str("path", path).
				Str("remote_ip", c.RealIP()).
				Int("status", c.Response().Status).
				Time("timestamp", time.Now().UTC()).
				Msg("audit")

			return err
		}
	}
}

func methodToAction(method string) string {
	switch method {
	case "GET":
		return "read"
	case "POST":
		return "create"
	case "PUT", "PATCH":
		return "update"
	case "DELETE":
		return "delete"
	default:
		return "other"
	}
}
