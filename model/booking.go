package model

type Booking struct {
	DTO
	BookingDate    string `json:"booking_date"`
	BookingForDate string `json:"booking_for_date"`
	BookingToDate  string `json:"booking_to_date"`
	BookingStatus  string `json:"booking_status"`
	PackageheadID  string `json:"packagehead_id"`
	UserID         string `gorm:"index" json:"user_id"`
	GuideID        string `json:"guide_id"`
	BookingAmount  int64  `json:"booking_amount"`
}

func (Booking) TableName() string { return "tbl_booking" }

type UserInfo struct {
	DTO
	UserinfoName   string `json:"userinfo_name"`
	UserinfoNumber int64  `json:"userinfo_number"`
	BookingID      string `gorm:"index" json:"booking_id"`
}

func (UserInfo) TableName() string { return "tbl_userinfo" }

type Cotraveller struct {
	DTO
	CotravellerName   string `json:"cotraveller_name"`
	CotravellerNumber int64  `json:"cotraveller_number"`
	UserID            string `gorm:"index" json:"user_id"`
}

func (Cotraveller) TableName() string { return "tbl_cotraveller" }

type CreateBookingInput struct {
	BookingDate    string `validate:"required" json:"booking_date"`
	BookingForDate string `json:"booking_for_date"`
	BookingToDate  string `json:"booking_to_date"`
	BookingStatus  string `json:"booking_status"`
	PackageheadID  string `validate:"required" json:"packagehead_id"`
	UserID         string `validate:"required" json:"user_id"`
	GuideID        string `json:"guide_id"`
	BookingAmount  *int64 `validate:"required" json:"booking_amount"`
}

type CreateUserInfoInput struct {
	UserinfoName   string `validate:"required" json:"userinfo_name"`
	UserinfoNumber *int64 `validate:"required" json:"userinfo_number"`
	BookingID      string `validate:"required" json:"booking_id"`
}

type CreateCotravellerInput struct {
	CotravellerName   string `validate:"required" json:"cotraveller_name"`
	CotravellerNumber *int64 `validate:"required" json:"cotraveller_number"`
}
