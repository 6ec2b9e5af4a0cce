package validate

import (
	"errors"
	"fmt"
	"jetsetgo/constants"
	"jetsetgo/model"
	"jetsetgo/utils"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"
)

// Files maps a form field to its uploaded file.
type Files map[string]*multipart.FileHeader

func requireFiles(form *multipart.Form, fields ...string) (Files, error) {
	files := Files{}
	for _, field := range fields {
		headers := form.File[field]
		if len(headers) == 0 {
			return nil, fmt.Errorf("%s: %w", field, errMissingFile)
		}
		files[field] = headers[0]
	}
	return files, nil
}

var errMissingFile = errors.New("file is required")

// FileUpload requires one file in field.
func FileUpload(field string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		form, err := c.MultipartForm()
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		files, err := requireFiles(form, field)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.MISSING_FILE, err)
		}

		c.Locals(constants.LOCALS_FILES, files)
		return c.Next()
	}
}

func RegisterHotel() fiber.Handler {
	return func(c *fiber.Ctx) error {
		form, err := c.MultipartForm()
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		input := model.RegisterHotelInput{
			HotelName:     utils.GetFirstValue(form.Value, "hotel_name"),
			HotelEmail:    utils.GetFirstValue(form.Value, "hotel_email"),
			HotelAddress:  utils.GetFirstValue(form.Value, "hotel_address"),
			PlaceID:       utils.GetFirstValue(form.Value, "place_id"),
			HotelPassword: utils.GetFirstValue(form.Value, "hotel_password"),
		}
		if input.HotelPhoneNo, err = utils.GetInt64Value(form.Value, "hotel_phone_no"); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if input.HotelRoomCount, err = utils.GetInt64Value(form.Value, "hotel_room_count"); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		files, err := requireFiles(form, "hotel_photo", "hotel_proof")
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.MISSING_FILE, err)
		}

		c.Locals(constants.LOCALS_INPUT, input)
		c.Locals(constants.LOCALS_FILES, files)
		return c.Next()
	}
}

// AddPackage reads the /packageadd form; the hotel id comes from the route.
func AddPackage() fiber.Handler {
	return func(c *fiber.Ctx) error {
		form, err := c.MultipartForm()
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		input := model.AddPackageInput{
			PackageName:        utils.GetFirstValue(form.Value, "package_name"),
			PackageDescription: utils.GetFirstValue(form.Value, "package_description"),
			PackageDuration:    utils.GetFirstValue(form.Value, "package_duration"),
		}
		if utils.GetFirstValue(form.Value, "package_price") == "" {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, errors.New("package_price is required"))
		}
		if input.PackagePrice, err = utils.GetInt64Value(form.Value, "package_price"); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		files, err := requireFiles(form, "package_image")
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.MISSING_FILE, err)
		}

		c.Locals(constants.LOCALS_INPUT, input)
		c.Locals(constants.LOCALS_FILES, files)
		return c.Next()
	}
}
