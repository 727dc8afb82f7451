package middleware

import (
	"encoding/json"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/arturoeanton/realty-admin-backend/internal/domain"
)

// AnonymousActor is recorded for requests without an authenticated account.
const AnonymousActor = "anonymous"

// AuditWriter defines how audit records are persisted.
type AuditWriter interface {
	WriteAudit(adminID, action, resource, resourceID, details, ip, userAgent string) error
}

// AuditMiddleware logs every request for compliance purposes.
func AuditMiddleware(writer AuditWriter) fiber.Handler {
	return func(c fiber.Ctx) error {
		start := time.Now()

		// Capture request data BEFORE handler execution (Fiber reuses context objects)
		method := c.Method()
		path := c.Path()
		ip := c.IP()
		userAgent := c.Get("User-Agent")

		err := c.Next()

		details := map[string]interface{}{
			"method":      method,
			"path":        path,
			"status":      c.Response().StatusCode(),
			"duration_ms": time.Since(start).Milliseconds(),
		}
		write(writer, actorID(c), domain.AuditActionRequest, "api", path, details, ip, userAgent)

		return err
	}
}

// RecordAudit writes a domain event such as a login or role change. Values
// are captured from c before the write goes to the background.
func RecordAudit(writer AuditWriter, c fiber.Ctx, actor, action, resource, resourceID string, details map[string]interface{}) {
	if writer == nil {
		return
	}
	if actor == "" {
		actor = actorID(c)
	}
	write(writer, actor, action, resource, resourceID, details, c.IP(), c.Get("User-Agent"))
}

func actorID(c fiber.Ctx) string {
	if ac := GetAdminContext(c); ac != nil {
		return ac.AdminID
	}
	return AnonymousActor
}

func write(writer AuditWriter, actor, action, resource, resourceID string, details map[string]interface{}, ip, userAgent string) {
	detailsJSON, _ := json.Marshal(details)

	// Strings are copied out of the Fiber context, so the goroutine may outlive the request.
	ip = string([]byte(ip))
	userAgent = string([]byte(userAgent))
	resourceID = string([]byte(resourceID))

	go func() {
		if writeErr := writer.WriteAudit(actor, action, resource, resourceID, string(detailsJSON), ip, userAgent); writeErr != nil {
			slog.Error("failed to write audit log", "error", writeErr, "action", action)
		}
	}()
}
