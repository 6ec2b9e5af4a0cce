package model

type State struct {
	DTO
	StateName string `gorm:"not null" json:"state_name"`
}

func (State) TableName() string { return "state" }

type District struct {
	DTO
	DistrictName string `gorm:"not null" json:"district_name"`
	StateID      string `gorm:"index" json:"state_id"`
}

func (District) TableName() string { return "district" }

type Place struct {
	DTO
	PlaceName  string `gorm:"not null" json:"place_name"`
	DistrictID string `gorm:"index" json:"district_id"`
}

func (Place) TableName() string { return "tbl_place" }

type CreateStateInput struct {
	StateName string `validate:"required" json:"state_name"`
}

type CreateDistrictInput struct {
	DistrictName string `validate:"required" json:"district_name"`
	StateID      string `validate:"required" json:"state_id"`
}

type CreatePlaceInput struct {
	PlaceName  string `validate:"required" json:"place_name"`
	DistrictID string `validate:"required" json:"district_id"`
}

// Location holds the denormalized Place -> District -> State names attached
// to user and hotel detail responses.
type Location struct {
	PlaceName    string `json:"place_name"`
	DistrictID   string `json:"district_id"`
	DistrictName string `json:"district_name"`
	StateID      string `json:"state_id"`
	StateName    string `json:"state_name"`
}
