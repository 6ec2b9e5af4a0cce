package model

type Rating struct {
	DTO
	UserID        string `gorm:"index" json:"user_id"`
	GuideID       string `json:"guide_id"`
	HotelID       string `json:"hotel_id"`
	RatingContact int64  `json:"rating_contact"`
	RatingCount   int64  `json:"rating_count"`
}

func (Rating) TableName() string { return "tbl_rating" }

type Complaint struct {
	DTO
	ComplaintTitle   string `json:"complaint_title"`
	ComplaintContact string `json:"complaint_contact"`
	ComplaintReply   string `json:"complaint_reply"`
	ComplaintStatus  string `json:"complaint_status"`
	UserID           string `gorm:"index" json:"user_id"`
}

func (Complaint) TableName() string { return "tbl_complaint" }

type CreateRatingInput struct {
	UserID        string `validate:"required" json:"user_id"`
	GuideID       string `json:"guide_id"`
	HotelID       string `json:"hotel_id"`
	RatingContact *int64 `json:"rating_contact"`
	RatingCount   *int64 `validate:"required" json:"rating_count"`
}

type CreateComplaintInput struct {
	ComplaintTitle   string `validate:"required" json:"complaint_title"`
	ComplaintContact string `validate:"required" json:"complaint_contact"`
	ComplaintReply   string `json:"complaint_reply"`
	ComplaintStatus  string `json:"complaint_status"`
	UserID           string `validate:"required" json:"user_id"`
}
