package model

type PackageHead struct {
	DTO
	PackageheadDays      string `json:"packagehead_days"`
	PackageheadPrice     int64  `json:"packagehead_price"`
	PackageheadDetails   string `json:"packagehead_details"`
	PackageheadStatus    string `json:"packagehead_status"`
	PackageheadCount     string `json:"packagehead_count"`
	PackageheadRoomCount string `json:"packagehead_room_count"`
}

func (PackageHead) TableName() string { return "tbl_packagehead" }

type PackageBody struct {
	DTO
	PackagebodyDetails string `json:"packagebody_details"`
	PlaceID            string `json:"place_id"`
	PackageheadID      string `gorm:"index" json:"packagehead_id"`
}

func (PackageBody) TableName() string { return "tbl_packagebody" }

type Gallery struct {
	DTO
	PackagebodyID      string `gorm:"index" json:"packagebody_id"`
	GalleryFile        string `json:"gallery_file"`
	GalleryDescription string `json:"gallery_description"`
}

func (Gallery) TableName() string { return "tbl_gallery" }

// Package is a hotel-owned offer created through /packageadd.
type Package struct {
	DTO
	PackageName        string `json:"package_name"`
	PackageDescription string `json:"package_description"`
	PackageDuration    string `json:"package_duration"`
	PackagePrice       int64  `json:"package_price"`
	PackageImage       string `json:"package_image"`
	HotelID            string `gorm:"index" json:"hotel_id"`
}

func (Package) TableName() string { return "tbl_package" }

type PackageListItem struct {
	Package
	HotelName string `json:"hotel_name"`
}

type CreatePackageHeadInput struct {
	PackageheadDays      string `validate:"required" json:"packagehead_days"`
	PackageheadPrice     *int64 `validate:"required" json:"packagehead_price"`
	PackageheadDetails   string `validate:"required" json:"packagehead_details"`
	PackageheadStatus    string `json:"packagehead_status"`
	PackageheadCount     string `json:"packagehead_count"`
	PackageheadRoomCount string `json:"packagehead_room_count"`
}

type CreatePackageBodyInput struct {
	PackagebodyDetails string `validate:"required" json:"packagebody_details"`
	PlaceID            string `validate:"required" json:"place_id"`
	PackageheadID      string `validate:"required" json:"packagehead_id"`
}

type CreateGalleryInput struct {
	PackagebodyID      string `validate:"required" json:"packagebody_id"`
	GalleryFile        string `validate:"required" json:"gallery_file"`
	GalleryDescription string `json:"gallery_description"`
}

// AddPackageInput is read from the multipart form of /packageadd/:hid.
type AddPackageInput struct {
	PackageName        string `validate:"required"`
	PackageDescription string
	PackageDuration    string `validate:"required"`
	PackagePrice       int64  `validate:"gte=0"`
	PackageImage       string
	HotelID            string
}
