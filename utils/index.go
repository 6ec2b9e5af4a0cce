package utils

import (
	"fmt"
	"jetsetgo/model"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// ErrorResponse writes {"message", "error"}; the raw error text is passed
// through to the client.
func ErrorResponse(c *fiber.Ctx, status int, message string, err error) error {
	var errMsg interface{}
	if err != nil {
		errMsg = err.Error()
	} else {
		errMsg = nil
	}
	return c.Status(status).JSON(fiber.Map{
		"message": message,
		"error":   errMsg,
	})
}

// CreatedResponse answers an insert with the new id and a confirmation.
func CreatedResponse(c *fiber.Ctx, id string, entity string) error {
	return c.Status(fiber.StatusCreated).JSON(model.CreatedResponse{
		ID:      id,
		Message: fmt.Sprintf("%s added successfully", entity),
	})
}

// GetFirstValue returns the first value for key, or "".
func GetFirstValue(values map[string][]string, key string) string {
	if v, ok := values[key]; ok && len(v) > 0 {
		return strings.TrimSpace(v[0])
	}
	return ""
}

// GetInt64Value parses an optional numeric form value; "" is zero.
func GetInt64Value(values map[string][]string, key string) (int64, error) {
	raw := GetFirstValue(values, key)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number", key)
	}
	return n, nil
}
