package handler

import (
	"errors"
	"jetsetgo/constants"
	"jetsetgo/model"
	"jetsetgo/utils"

	"github.com/gofiber/fiber/v2"
)

func (h *Handler) CreatePackageHead(c *fiber.Ctx) error {
	return insert[model.CreatePackageHeadInput, model.PackageHead](h, c, "packagehead", nil)
}

func (h *Handler) CreatePackageBody(c *fiber.Ctx) error {
	return insert[model.CreatePackageBodyInput, model.PackageBody](h, c, "packagebody", nil)
}

func (h *Handler) CreateGallery(c *fiber.Ctx) error {
	return insert[model.CreateGalleryInput, model.Gallery](h, c, "gallery", nil)
}

// AddPackage stores the package image and creates a package for hotel :hid.
func (h *Handler) AddPackage(c *fiber.Ctx) error {
	input, ok := inputFrom[model.AddPackageInput](c)
	files, okFiles := filesFrom(c)
	if !ok || !okFiles {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	imageURL, err := h.saveFile(c, files["package_image"])
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPLOAD, err)
	}

	pkg := model.Package{
		PackageName:        input.PackageName,
		PackageDescription: input.PackageDescription,
		PackageDuration:    input.PackageDuration,
		PackagePrice:       input.PackagePrice,
		PackageImage:       imageURL,
		HotelID:            idFrom(c),
	}
	if err := h.DB.Create(&pkg).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":            pkg.ID,
		"message":       "package added successfully",
		"package_image": imageURL,
	})
}

func (h *Handler) GetPackagesByHotel(c *fiber.Ctx) error {
	return list[model.Package](h, c, &model.Package{HotelID: idFrom(c)})
}

func (h *Handler) GetPackageById(c *fiber.Ctx) error {
	pkg, err := findByID[model.Package](h, idFrom(c))
	if err != nil {
		return findError(c, err)
	}
	return c.JSON(pkg)
}

func (h *Handler) DeletePackage(c *fiber.Ctx) error {
	return deleteByID[model.Package](h, c, "package")
}

// GetPackageList lists every package with the name of its hotel attached.
func (h *Handler) GetPackageList(c *fiber.Ctx) error {
	var packages []model.Package
	if err := h.DB.Order("created_at").Find(&packages).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if len(packages) == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, nil)
	}

	hotelIDs := make([]string, 0, len(packages))
	for _, p := range packages {
		hotelIDs = append(hotelIDs, p.HotelID)
	}
	var hotels []model.Hotel
	if err := h.DB.Select("id", "hotel_name").Where("id IN ?", hotelIDs).Find(&hotels).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	names := make(map[string]string, len(hotels))
	for _, hotel := range hotels {
		names[hotel.ID] = hotel.HotelName
	}

	items := make([]model.PackageListItem, 0, len(packages))
	for _, p := range packages {
		items = append(items, model.PackageListItem{Package: p, HotelName: names[p.HotelID]})
	}
	return c.JSON(items)
}
