package model

type Admin struct {
	DTO
	AdminName     string `json:"admin_name"`
	AdminPhoto    string `json:"admin_photo"`
	AdminEmail    string `gorm:"index" json:"admin_email"`
	AdminPassword string `json:"-"`
}

func (Admin) TableName() string { return "tbl_admin" }

type User struct {
	DTO
	UserName        string `json:"user_name"`
	UserEmail       string `gorm:"index" json:"user_email"`
	UserPhoneNumber int64  `json:"user_phone_number"`
	PlaceID         string `json:"place_id"`
	UserIdproof     string `json:"user_idproof"`
	UserPhoto       string `json:"user_photo"`
	UserPassword    string `json:"-"`
	UserAddress     string `json:"user_address"`
}

func (User) TableName() string { return "tbl_user" }

type Guide struct {
	DTO
	GuideName        string `json:"guide_name"`
	GuideEmail       string `gorm:"index" json:"guide_email"`
	GuidePhoneNumber int64  `json:"guide_phone_number"`
	GuideProof       string `json:"guide_proof"`
	GuidePhoto       string `json:"guide_photo"`
	GuideStatus      string `json:"guide_status"`
	GuidePassword    string `json:"-"`
	HotelID          string `gorm:"index" json:"hotel_id"`
}

func (Guide) TableName() string { return "tbl_guide" }

type CreateAdminInput struct {
	AdminName     string `validate:"required" json:"admin_name"`
	AdminPhoto    string `validate:"required" json:"admin_photo"`
	AdminEmail    string `validate:"required" json:"admin_email"`
	AdminPassword string `validate:"required" json:"admin_password"`
}

type CreateUserInput struct {
	UserName        string `validate:"required" json:"user_name"`
	UserEmail       string `validate:"required" json:"user_email"`
	UserPhoneNumber *int64 `validate:"required" json:"user_phone_number"`
	PlaceID         string `validate:"required" json:"place_id"`
	UserIdproof     string `json:"user_idproof"`
	UserPhoto       string `json:"user_photo"`
	UserPassword    string `validate:"required" json:"user_password"`
	UserAddress     string `json:"user_address"`
}

type CreateGuideInput struct {
	GuideName        string `validate:"required" json:"guide_name"`
	GuideEmail       string `validate:"required" json:"guide_email"`
	GuidePhoneNumber *int64 `validate:"required" json:"guide_phone_number"`
	GuideProof       string `json:"guide_proof"`
	GuidePhoto       string `json:"guide_photo"`
	GuideStatus      string `json:"guide_status"`
	GuidePassword    string `validate:"required" json:"guide_password"`
	HotelID          string `validate:"required" json:"hotel_id"`
}

type LoginInput struct {
	Email    string `validate:"required" json:"email"`
	Password string `validate:"required" json:"password"`
}

type UpdatePasswordInput struct {
	UserPassword string `validate:"required" json:"user_password"`
}

// UserDetails is a user joined with the names of its place, district and state.
type UserDetails struct {
	User
	Location
}
