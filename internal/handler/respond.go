package handler

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"github.com/arturoeanton/realty-admin-backend/internal/port"
)

// fail writes the error envelope for err.
func fail(c fiber.Ctx, err error) error {
	status, body := errorResponse(err)
	if status >= fiber.StatusInternalServerError {
		slog.Error("request failed", "method", c.Method(), "path", c.Path(), "error", err)
	}
	return c.Status(status).JSON(body)
}

func errorResponse(err error) (int, fiber.Map) {
	var (
		pageErr     *port.PageRangeError
		validation  *port.ValidationError
		upstreamErr *port.UpstreamError
		apiErr      *port.Error
	)

	switch {
	case errors.As(err, &pageErr):
		return fiber.StatusBadRequest, fiber.Map{
			"success":     false,
			"message":     pageErr.Error(),
			"total_pages": pageErr.TotalPages,
			"total":       pageErr.Total,
		}
	case errors.As(err, &validation):
		return fiber.StatusBadRequest, fiber.Map{"success": false, "message": validation.Message}
	case errors.As(err, &upstreamErr):
		body := fiber.Map{
			"success": false,
			"message": "Failed to fetch data from partner API",
		}
		if upstreamErr.StatusCode != 0 {
			body["upstream_status"] = upstreamErr.StatusCode
			body["error"] = upstreamErr.Body
		} else {
			body["error"] = upstreamErr.Error()
		}
		return fiber.StatusInternalServerError, body
	}

	status := statusFor(err)
	msg := defaultMessage(status)
	if errors.As(err, &apiErr) {
		msg = apiErr.Message
	}
	body := fiber.Map{"success": false, "message": msg}
	if status == fiber.StatusInternalServerError {
		body["error"] = err.Error()
	}
	return status, body
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, port.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, port.ErrConflict):
		return fiber.StatusBadRequest
	case errors.Is(err, port.ErrUnauthorized),
		errors.Is(err, port.ErrInactive),
		errors.Is(err, port.ErrTokenExpired),
		errors.Is(err, port.ErrTokenInvalid):
		return fiber.StatusUnauthorized
	case errors.Is(err, port.ErrForbidden):
		return fiber.StatusForbidden
	}
	return fiber.StatusInternalServerError
}

func defaultMessage(status int) string {
	switch status {
	case fiber.StatusNotFound:
		return "Not found"
	case fiber.StatusBadRequest:
		return "Already exists"
	case fiber.StatusUnauthorized:
		return "Not authorized"
	case fiber.StatusForbidden:
		return "Forbidden"
	}
	return "Server error"
}

// ok writes {success: true, message?, data}.
func ok(c fiber.Ctx, status int, message string, data interface{}) error {
	body := fiber.Map{"success": true, "data": data}
	if message != "" {
		body["message"] = message
	}
	return c.Status(status).JSON(body)
}

func badRequest(c fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": message})
}
