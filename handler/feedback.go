package handler

import (
	"jetsetgo/constants"
	"jetsetgo/model"

	"github.com/gofiber/fiber/v2"
)

func (h *Handler) CreateRating(c *fiber.Ctx) error {
	return insert[model.CreateRatingInput, model.Rating](h, c, "rating", nil)
}

func (h *Handler) CreateComplaint(c *fiber.Ctx) error {
	return insert(h, c, "complaint", func(cp *model.Complaint, _ model.CreateComplaintInput) error {
		if cp.ComplaintStatus == "" {
			cp.ComplaintStatus = constants.COMPLAINT_STATUS_PENDING
		}
		return nil
	})
}
