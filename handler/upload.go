package handler

import (
	"errors"
	"jetsetgo/constants"
	"jetsetgo/model"
	"jetsetgo/utils"
	"jetsetgo/validate"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"
)

// saveFile stores an uploaded file under its original name.
func (h *Handler) saveFile(c *fiber.Ctx, fh *multipart.FileHeader) (string, error) {
	f, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()
	return h.Blobs.Save(c.UserContext(), fh.Filename, f)
}

func filesFrom(c *fiber.Ctx) (validate.Files, bool) {
	files, ok := c.Locals(constants.LOCALS_FILES).(validate.Files)
	return files, ok
}

// FileUpload stores the "photo" file and records its URL in photoUpload.
func (h *Handler) FileUpload(c *fiber.Ctx) error {
	files, ok := filesFrom(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	fileURL, err := h.saveFile(c, files["photo"])
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPLOAD, err)
	}

	upload := model.PhotoUpload{Photo: fileURL}
	if err := h.DB.Create(&upload).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}
	return c.Status(fiber.StatusCreated).JSON(model.FileUploadResponse{
		ID:       upload.ID,
		Message:  "file uploaded successfully",
		FilePath: fileURL,
	})
}
