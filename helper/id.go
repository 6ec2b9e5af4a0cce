package helper

import (
	"errors"

	"github.com/google/uuid"
)

var ErrInvalidID = errors.New("identifier is not a valid id")

// ParseID checks that raw is a well-formed document identifier and returns
// it in canonical form.
func ParseID(raw string) (string, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return "", ErrInvalidID
	}
	return id.String(), nil
}
