package middleware

import (
	"errors"
	"jetsetgo/constants"
	"jetsetgo/utils"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

// ErrorHandler renders errors that escape a handler in the same shape as
// utils.ErrorResponse.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := constants.ERROR_INTERNAL_ERROR

	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
		message = e.Message
	}
	return utils.ErrorResponse(c, code, message, err)
}

// WebsocketUpgrade only lets websocket handshakes through.
func WebsocketUpgrade() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	}
}
