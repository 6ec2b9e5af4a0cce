package handler

import (
	"errors"
	"jetsetgo/constants"
	"jetsetgo/helper"
	"jetsetgo/model"
	"jetsetgo/utils"

	"github.com/gofiber/fiber/v2"
)

// Login checks the credentials against users, then hotels. No session is
// created; clients send credentials again when they need to.
func (h *Handler) Login(c *fiber.Ctx) error {
	input, ok := inputFrom[model.LoginInput](c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.MISSING_LOGIN_INPUT, errors.New("email and password are required"))
	}

	result, err := helper.Authenticate(h.DB, input.Email, input.Password)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if result == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_CREDENTIALS, errors.New("no account matches these credentials"))
	}
	return c.JSON(result)
}
