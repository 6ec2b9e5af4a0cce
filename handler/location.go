package handler

import (
	"jetsetgo/model"

	"github.com/gofiber/fiber/v2"
)

func (h *Handler) CreateState(c *fiber.Ctx) error {
	return insert[model.CreateStateInput, model.State](h, c, "state", nil)
}

func (h *Handler) GetStates(c *fiber.Ctx) error {
	return list[model.State](h, c, nil)
}

func (h *Handler) CreateDistrict(c *fiber.Ctx) error {
	return insert[model.CreateDistrictInput, model.District](h, c, "district", nil)
}

func (h *Handler) GetDistricts(c *fiber.Ctx) error {
	return list[model.District](h, c, nil)
}

// GetDistrictsByState lists the districts of the state in :state_id.
func (h *Handler) GetDistrictsByState(c *fiber.Ctx) error {
	return list[model.District](h, c, &model.District{StateID: idFrom(c)})
}

func (h *Handler) CreatePlace(c *fiber.Ctx) error {
	return insert[model.CreatePlaceInput, model.Place](h, c, "place", nil)
}

func (h *Handler) GetPlaces(c *fiber.Ctx) error {
	return list[model.Place](h, c, nil)
}

func (h *Handler) GetPlacesByDistrict(c *fiber.Ctx) error {
	return list[model.Place](h, c, &model.Place{DistrictID: idFrom(c)})
}
