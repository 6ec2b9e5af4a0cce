package handler

import (
	"jetsetgo/constants"
	"jetsetgo/helper"
	"jetsetgo/model"
	"jetsetgo/utils"

	"github.com/gofiber/fiber/v2"
)

func (h *Handler) CreateBooking(c *fiber.Ctx) error {
	return insert[model.CreateBookingInput, model.Booking](h, c, "booking", nil)
}

func (h *Handler) GetBookingById(c *fiber.Ctx) error {
	booking, err := findByID[model.Booking](h, idFrom(c))
	if err != nil {
		return findError(c, err)
	}
	return c.JSON(booking)
}

// GetBookingQR renders the booking reference as a PNG QR code.
func (h *Handler) GetBookingQR(c *fiber.Ctx) error {
	booking, err := findByID[model.Booking](h, idFrom(c))
	if err != nil {
		return findError(c, err)
	}

	png, err := helper.BookingQRCode(*booking)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	c.Type("png")
	return c.Send(png)
}

func (h *Handler) CreateUserInfo(c *fiber.Ctx) error {
	return insert[model.CreateUserInfoInput, model.UserInfo](h, c, "userinfo", nil)
}

// AddCotraveller attaches a co-traveller to user :uid.
func (h *Handler) AddCotraveller(c *fiber.Ctx) error {
	userID := idFrom(c)
	return insert(h, c, "cotraveller", func(ct *model.Cotraveller, _ model.CreateCotravellerInput) error {
		ct.UserID = userID
		return nil
	})
}

func (h *Handler) GetCotravellers(c *fiber.Ctx) error {
	return list[model.Cotraveller](h, c, &model.Cotraveller{UserID: idFrom(c)})
}

func (h *Handler) DeleteCotraveller(c *fiber.Ctx) error {
	return deleteByID[model.Cotraveller](h, c, "cotraveller")
}
