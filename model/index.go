package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DTO is embedded by every document. The identifier is generated on insert
// and is opaque to clients.
type DTO struct {
	ID        string    `gorm:"primaryKey;size:36" json:"_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (d *DTO) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	return nil
}

func (d DTO) GetID() string {
	return d.ID
}

type CreatedResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

type UpdatedResponse struct {
	Message string `json:"message"`
	Matched int64  `json:"matched"`
}

// All lists every document type for migration.
func All() []any {
	return []any{
		&Admin{},
		&State{},
		&District{},
		&Place{},
		&Hotel{},
		&User{},
		&Guide{},
		&PackageHead{},
		&PackageBody{},
		&Gallery{},
		&Package{},
		&Booking{},
		&UserInfo{},
		&Rating{},
		&Complaint{},
		&Cotraveller{},
		&PhotoUpload{},
	}
}
