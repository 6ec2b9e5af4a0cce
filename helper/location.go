package helper

import (
	"errors"
	"jetsetgo/model"

	"gorm.io/gorm"
)

// ResolveLocation walks Place -> District -> State. Missing links stop the
// walk and leave the remaining names empty; only store failures are errors.
func ResolveLocation(db *gorm.DB, placeID string) (model.Location, error) {
	var loc model.Location
	if placeID == "" {
		return loc, nil
	}

	var place model.Place
	if err := db.Where("id = ?", placeID).First(&place).Error; err != nil {
		return loc, ignoreNotFound(err)
	}
	loc.PlaceName = place.PlaceName
	loc.DistrictID = place.DistrictID

	var district model.District
	if err := db.Where("id = ?", place.DistrictID).First(&district).Error; err != nil {
		return loc, ignoreNotFound(err)
	}
	loc.DistrictName = district.DistrictName
	loc.StateID = district.StateID

	var state model.State
	if err := db.Where("id = ?", district.StateID).First(&state).Error; err != nil {
		return loc, ignoreNotFound(err)
	}
	loc.StateName = state.StateName
	return loc, nil
}

func ignoreNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	return err
}
