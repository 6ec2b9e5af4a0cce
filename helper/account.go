package helper

import (
	"jetsetgo/constants"
	"jetsetgo/model"

	"gorm.io/gorm"
)

// LoginResult is what a successful credential probe yields.
type LoginResult struct {
	ID     string `json:"id"`
	Email  string `json:"email"`
	Login  string `json:"login"`
	Status string `json:"status,omitempty"`
}

// Authenticate probes users first, then hotels. Emails are not unique, so
// every document with the email is checked against the password.
// It returns nil, nil when nothing matches.
func Authenticate(db *gorm.DB, email, password string) (*LoginResult, error) {
	var users []model.User
	if err := db.Where(&model.User{UserEmail: email}).Find(&users).Error; err != nil {
		return nil, err
	}
	for _, u := range users {
		if CheckPasswordHash(password, u.UserPassword) {
			return &LoginResult{ID: u.ID, Email: u.UserEmail, Login: constants.LOGIN_USER}, nil
		}
	}

	var hotels []model.Hotel
	if err := db.Where(&model.Hotel{HotelEmail: email}).Find(&hotels).Error; err != nil {
		return nil, err
	}
	for _, h := range hotels {
		if CheckPasswordHash(password, h.HotelPassword) {
			return &LoginResult{ID: h.ID, Email: h.HotelEmail, Login: constants.LOGIN_HOTEL, Status: h.HotelStatus}, nil
		}
	}
	return nil, nil
}
