package model

type Hotel struct {
	DTO
	HotelName      string `json:"hotel_name"`
	HotelEmail     string `gorm:"index" json:"hotel_email"`
	HotelAddress   string `json:"hotel_address"`
	HotelPhoneNo   int64  `json:"hotel_phone_no"`
	PlaceID        string `json:"place_id"`
	HotelProof     string `json:"hotel_proof"`
	HotelPhoto     string `json:"hotel_photo"`
	HotelStatus    string `gorm:"index" json:"hotel_status"`
	HotelRoomCount int64  `json:"hotel_room_count"`
	HotelPassword  string `json:"-"`
}

func (Hotel) TableName() string { return "tbl_hotel" }

type CreateHotelInput struct {
	HotelName      string `validate:"required" json:"hotel_name"`
	HotelEmail     string `validate:"required" json:"hotel_email"`
	HotelAddress   string `validate:"required" json:"hotel_address"`
	HotelPhoneNo   *int64 `json:"hotel_phone_no"`
	PlaceID        string `validate:"required" json:"place_id"`
	HotelProof     string `json:"hotel_proof"`
	HotelPhoto     string `json:"hotel_photo"`
	HotelStatus    string `json:"hotel_status"`
	HotelRoomCount *int64 `json:"hotel_room_count"`
	HotelPassword  string `validate:"required" json:"hotel_password"`
}

// RegisterHotelInput is read from the multipart form of /hotelreg; the photo
// and proof URLs are filled in after the files are stored.
type RegisterHotelInput struct {
	HotelName      string `validate:"required"`
	HotelEmail     string `validate:"required"`
	HotelAddress   string `validate:"required"`
	HotelPhoneNo   int64
	PlaceID        string `validate:"required"`
	HotelRoomCount int64
	HotelPassword  string `validate:"required"`
	HotelPhoto     string
	HotelProof     string
}

type UpdateHotelInput struct {
	HotelName      *string `json:"hotel_name"`
	HotelEmail     *string `json:"hotel_email"`
	HotelAddress   *string `json:"hotel_address"`
	HotelPhoneNo   *int64  `json:"hotel_phone_no"`
	PlaceID        *string `json:"place_id"`
	HotelRoomCount *int64  `json:"hotel_room_count"`
}

// Columns returns only the supplied fields keyed by column name.
func (in UpdateHotelInput) Columns() map[string]any {
	cols := map[string]any{}
	if in.HotelName != nil {
		cols["hotel_name"] = *in.HotelName
	}
	if in.HotelEmail != nil {
		cols["hotel_email"] = *in.HotelEmail
	}
	if in.HotelAddress != nil {
		cols["hotel_address"] = *in.HotelAddress
	}
	if in.HotelPhoneNo != nil {
		cols["hotel_phone_no"] = *in.HotelPhoneNo
	}
	if in.PlaceID != nil {
		cols["place_id"] = *in.PlaceID
	}
	if in.HotelRoomCount != nil {
		cols["hotel_room_count"] = *in.HotelRoomCount
	}
	return cols
}

type HotelDetails struct {
	Hotel
	Location
}
