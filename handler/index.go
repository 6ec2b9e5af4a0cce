package handler

import (
	"errors"
	"jetsetgo/constants"
	"jetsetgo/notify"
	"jetsetgo/storage"
	"jetsetgo/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

// Handler carries the collaborators every route needs. It is built once in
// main and shared by all requests.
type Handler struct {
	DB    *gorm.DB
	Blobs storage.BlobStore
	Bus   notify.Bus
}

func New(db *gorm.DB, blobs storage.BlobStore, bus notify.Bus) *Handler {
	if bus == nil {
		bus = notify.NopBus{}
	}
	return &Handler{DB: db, Blobs: blobs, Bus: bus}
}

type document interface {
	GetID() string
}

func inputFrom[I any](c *fiber.Ctx) (I, bool) {
	input, ok := c.Locals(constants.LOCALS_INPUT).(I)
	return input, ok
}

func idFrom(c *fiber.Ctx) string {
	id, _ := c.Locals(constants.LOCALS_INPUT_ID).(string)
	return id
}

// insert copies the validated input I into a new D, lets prepare adjust it,
// and stores it.
func insert[I any, D any, PD interface {
	*D
	document
}](h *Handler, c *fiber.Ctx, entity string, prepare func(PD, I) error) error {
	input, ok := inputFrom[I](c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	doc := PD(new(D))
	if err := copier.Copy(doc, &input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}
	if prepare != nil {
		if err := prepare(doc, input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
		}
	}

	if err := h.DB.Create(doc).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}
	return utils.CreatedResponse(c, doc.GetID(), entity)
}

// list answers with every D matching query (all of them when query is nil),
// or 404 when there are none.
func list[D any](h *Handler, c *fiber.Ctx, query any, args ...any) error {
	var docs []D
	db := h.DB
	if query != nil {
		db = db.Where(query, args...)
	}
	if err := db.Order("created_at").Find(&docs).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if len(docs) == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, nil)
	}
	return c.JSON(docs)
}

func findByID[D any](h *Handler, id string) (*D, error) {
	var doc D
	if err := h.DB.Where("id = ?", id).First(&doc).Error; err != nil {
		return nil, err
	}
	return &doc, nil
}

func findError(c *fiber.Ctx, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
	}
	return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
}

// deleteByID removes one D; no match is a 404.
func deleteByID[D any](h *Handler, c *fiber.Ctx, entity string) error {
	result := h.DB.Where("id = ?", idFrom(c)).Delete(new(D))
	if result.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, result.Error)
	}
	if result.RowsAffected == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, nil)
	}
	return c.JSON(fiber.Map{"message": entity + " deleted successfully"})
}
