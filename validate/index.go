package validate

import (
	"jetsetgo/constants"
	"jetsetgo/helper"
	"jetsetgo/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// Body parses the JSON payload into T, checks its `validate` tags and stores
// it in Locals for the handler.
func Body[T any]() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input T
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		c.Locals(constants.LOCALS_INPUT, input)
		return c.Next()
	}
}

// ID rejects a malformed identifier in route param key with 400.
func ID(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := helper.ParseID(c.Params(key))
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_IDENTIFIER, err)
		}

		c.Locals(constants.LOCALS_INPUT_ID, id)
		return c.Next()
	}
}
