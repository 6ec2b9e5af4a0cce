package router

import (
	"jetsetgo/constants"
	"jetsetgo/handler"
	"jetsetgo/middleware"
	"jetsetgo/model"
	"jetsetgo/validate"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

// NewApp builds the fiber app. Request bodies are streamed so multipart
// uploads are parsed from the connection and large files spill to disk
// instead of being held in memory.
func NewApp(bodyLimit int) *fiber.App {
	return fiber.New(fiber.Config{
		BodyLimit:         bodyLimit,
		StreamRequestBody: true,
		ErrorHandler:      middleware.ErrorHandler,
	})
}

// SetupRoutes registers the whole API on app. uploadDir is served under
// /uploads when it is not empty.
func SetupRoutes(app *fiber.App, h *handler.Handler, uploadDir string) {
	if uploadDir != "" {
		app.Static(constants.UPLOAD_PREFIX, uploadDir)
	}

	var api fiber.Router = app

	api.Post("/admin", validate.Body[model.CreateAdminInput](), h.CreateAdmin)

	api.Post("/state", validate.Body[model.CreateStateInput](), h.CreateState)
	api.Get("/state", h.GetStates)

	api.Post("/district", validate.Body[model.CreateDistrictInput](), h.CreateDistrict)
	api.Get("/district", h.GetDistricts)
	api.Get("/district/:state_id", validate.ID("state_id"), h.GetDistrictsByState)

	api.Post("/place", validate.Body[model.CreatePlaceInput](), h.CreatePlace)
	api.Get("/place", h.GetPlaces)
	api.Get("/place/:district_id", validate.ID("district_id"), h.GetPlacesByDistrict)

	api.Post("/hotel", validate.Body[model.CreateHotelInput](), h.CreateHotel)
	api.Post("/hotelreg", validate.RegisterHotel(), h.RegisterHotel)
	api.Get("/pending", h.GetPendingHotels)
	api.Post("/status/:action/:hotel_id", validate.ID("hotel_id"), h.UpdateHotelStatus)
	api.Get("/hoteldetails/:hid", validate.ID("hid"), h.GetHotelDetails)
	api.Post("/updatehotel/:hid", validate.ID("hid"), validate.Body[model.UpdateHotelInput](), h.UpdateHotel)

	api.Post("/user", validate.Body[model.CreateUserInput](), h.CreateUser)
	api.Get("/userdetails/:uid", validate.ID("uid"), h.GetUserDetails)
	api.Post("/updatepassword/:uid", validate.ID("uid"), validate.Body[model.UpdatePasswordInput](), h.UpdatePassword)
	api.Post("/login", validate.Body[model.LoginInput](), h.Login)

	api.Post("/guide", validate.Body[model.CreateGuideInput](), h.CreateGuide)

	api.Post("/packagehead", validate.Body[model.CreatePackageHeadInput](), h.CreatePackageHead)
	api.Post("/packagebody", validate.Body[model.CreatePackageBodyInput](), h.CreatePackageBody)
	api.Post("/gallery", validate.Body[model.CreateGalleryInput](), h.CreateGallery)
	api.Post("/packageadd/:hid", validate.ID("hid"), validate.AddPackage(), h.AddPackage)
	api.Get("/packages/:hid", validate.ID("hid"), h.GetPackagesByHotel)
	api.Get("/package/:id", validate.ID("id"), h.GetPackageById)
	api.Delete("/deletepkg/:id", validate.ID("id"), h.DeletePackage)
	api.Get("/packagelist", h.GetPackageList)

	api.Post("/booking", validate.Body[model.CreateBookingInput](), h.CreateBooking)
	api.Get("/booking/:id", validate.ID("id"), h.GetBookingById)
	api.Get("/booking/:id/qr", validate.ID("id"), h.GetBookingQR)
	api.Post("/userinfo", validate.Body[model.CreateUserInfoInput](), h.CreateUserInfo)

	api.Post("/cotravellers/:uid", validate.ID("uid"), validate.Body[model.CreateCotravellerInput](), h.AddCotraveller)
	api.Get("/cotravellerslist/:uid", validate.ID("uid"), h.GetCotravellers)
	api.Delete("/cotravellersdelete/:id", validate.ID("id"), h.DeleteCotraveller)

	api.Post("/rating", validate.Body[model.CreateRatingInput](), h.CreateRating)
	api.Post("/complaint", validate.Body[model.CreateComplaintInput](), h.CreateComplaint)

	api.Post("/fileUp", validate.FileUpload("photo"), h.FileUpload)

	ws := app.Group("/ws", middleware.WebsocketUpgrade())
	ws.Get("/hotel/:hid", validate.ID("hid"), websocket.New(h.HotelStatusSocket))
}
