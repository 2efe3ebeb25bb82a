// Package response writes the wire-format bodies consumed by the
// dashboard frontend: records and arrays are serialized raw, deletions
// acknowledge with {"success": true}, and errors carry a single message
// under the "error" key.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// JSON writes data as-is with the given status code.
func JSON(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, data)
}

// Deleted acknowledges a successful deletion.
func Deleted(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}

// Error writes an error body {"error": message}.
func Error(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, map[string]string{"error": message})
}

// BadRequest writes a 400 error body.
func BadRequest(c echo.Context, message string) error {
	return Error(c, http.StatusBadRequest, message)
}
