package handler

import (
	"jetsetgo/constants"
	"jetsetgo/helper"
	"jetsetgo/model"
	"jetsetgo/utils"

	"github.com/gofiber/fiber/v2"
)

func (h *Handler) CreateAdmin(c *fiber.Ctx) error {
	return insert(h, c, "admin", func(a *model.Admin, in model.CreateAdminInput) error {
		hash, err := helper.HashPassword(in.AdminPassword)
		a.AdminPassword = hash
		return err
	})
}

func (h *Handler) CreateUser(c *fiber.Ctx) error {
	return insert(h, c, "user", func(u *model.User, in model.CreateUserInput) error {
		hash, err := helper.HashPassword(in.UserPassword)
		u.UserPassword = hash
		return err
	})
}

func (h *Handler) CreateGuide(c *fiber.Ctx) error {
	return insert(h, c, "guide", func(g *model.Guide, in model.CreateGuideInput) error {
		hash, err := helper.HashPassword(in.GuidePassword)
		g.GuidePassword = hash
		return err
	})
}

// GetUserDetails returns the user with its place, district and state names.
func (h *Handler) GetUserDetails(c *fiber.Ctx) error {
	user, err := findByID[model.User](h, idFrom(c))
	if err != nil {
		return findError(c, err)
	}

	location, err := helper.ResolveLocation(h.DB, user.PlaceID)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return c.JSON(model.UserDetails{User: *user, Location: location})
}

// UpdatePassword overwrites the stored hash; like every update it reports
// how many documents matched instead of failing on zero.
func (h *Handler) UpdatePassword(c *fiber.Ctx) error {
	input, ok := inputFrom[model.UpdatePasswordInput](c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	hash, err := helper.HashPassword(input.UserPassword)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.CAN_NOT_HASH_PASSWORD, err)
	}

	result := h.DB.Model(&model.User{}).Where("id = ?", idFrom(c)).Update("user_password", hash)
	if result.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, result.Error)
	}
	return c.JSON(model.UpdatedResponse{Message: "password updated successfully", Matched: result.RowsAffected})
}
