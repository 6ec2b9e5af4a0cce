package handler

import (
	"context"
	"errors"
	"jetsetgo/constants"
	"jetsetgo/helper"
	"jetsetgo/model"
	"jetsetgo/notify"
	"jetsetgo/utils"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

func (h *Handler) CreateHotel(c *fiber.Ctx) error {
	return insert(h, c, "hotel", func(hotel *model.Hotel, in model.CreateHotelInput) error {
		if hotel.HotelStatus == "" {
			hotel.HotelStatus = constants.HOTEL_STATUS_PENDING
		}
		hash, err := helper.HashPassword(in.HotelPassword)
		hotel.HotelPassword = hash
		return err
	})
}

// RegisterHotel stores the photo and proof files, then creates the hotel in
// the pending state.
func (h *Handler) RegisterHotel(c *fiber.Ctx) error {
	input, ok := inputFrom[model.RegisterHotelInput](c)
	files, okFiles := filesFrom(c)
	if !ok || !okFiles {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	var err error
	if input.HotelPhoto, err = h.saveFile(c, files["hotel_photo"]); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPLOAD, err)
	}
	if input.HotelProof, err = h.saveFile(c, files["hotel_proof"]); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPLOAD, err)
	}

	hash, err := helper.HashPassword(input.HotelPassword)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.CAN_NOT_HASH_PASSWORD, err)
	}
	hotel := model.Hotel{
		HotelName:      input.HotelName,
		HotelEmail:     input.HotelEmail,
		HotelAddress:   input.HotelAddress,
		HotelPhoneNo:   input.HotelPhoneNo,
		PlaceID:        input.PlaceID,
		HotelProof:     input.HotelProof,
		HotelPhoto:     input.HotelPhoto,
		HotelStatus:    constants.HOTEL_STATUS_PENDING,
		HotelRoomCount: input.HotelRoomCount,
		HotelPassword:  hash,
	}
	if err := h.DB.Create(&hotel).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":          hotel.ID,
		"message":     "hotel registered successfully",
		"hotel_photo": hotel.HotelPhoto,
		"hotel_proof": hotel.HotelProof,
	})
}

func (h *Handler) GetPendingHotels(c *fiber.Ctx) error {
	return list[model.Hotel](h, c, &model.Hotel{HotelStatus: constants.HOTEL_STATUS_PENDING})
}

// UpdateHotelStatus writes :action verbatim as the hotel status.
func (h *Handler) UpdateHotelStatus(c *fiber.Ctx) error {
	hotelID := idFrom(c)
	status := strings.Clone(c.Params("action"))

	result := h.DB.Model(&model.Hotel{}).Where("id = ?", hotelID).Update("hotel_status", status)
	if result.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, result.Error)
	}
	if result.RowsAffected > 0 {
		h.announceStatus(hotelID, status)
	}
	return c.JSON(model.UpdatedResponse{Message: "hotel status updated successfully", Matched: result.RowsAffected})
}

// announceStatus is best effort: failures are logged, never returned.
func (h *Handler) announceStatus(hotelID, status string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	event := notify.StatusEvent{HotelID: hotelID, Status: status, ChangedAt: time.Now()}
	if err := h.Bus.Publish(ctx, event); err != nil {
		log.Printf("failed to publish status of hotel %s: %v", hotelID, err)
	}

	hotel, err := findByID[model.Hotel](h, hotelID)
	if err != nil {
		log.Printf("failed to load hotel %s for status email: %v", hotelID, err)
		return
	}
	utils.SendHotelStatusEmail(hotel.HotelEmail, utils.HotelStatusData{HotelName: hotel.HotelName, Status: status})
}

func (h *Handler) GetHotelDetails(c *fiber.Ctx) error {
	hotel, err := findByID[model.Hotel](h, idFrom(c))
	if err != nil {
		return findError(c, err)
	}

	location, err := helper.ResolveLocation(h.DB, hotel.PlaceID)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return c.JSON(model.HotelDetails{Hotel: *hotel, Location: location})
}

// UpdateHotel overwrites only the fields present in the payload.
func (h *Handler) UpdateHotel(c *fiber.Ctx) error {
	input, ok := inputFrom[model.UpdateHotelInput](c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}
	cols := input.Columns()
	if len(cols) == 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, errors.New("no fields to update"))
	}

	result := h.DB.Model(&model.Hotel{}).Where("id = ?", idFrom(c)).Updates(cols)
	if result.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, result.Error)
	}
	return c.JSON(model.UpdatedResponse{Message: "hotel updated successfully", Matched: result.RowsAffected})
}
