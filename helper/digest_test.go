package helper

import (
	"errors"
	"jetsetgo/constants"
	"jetsetgo/model"
	"jetsetgo/utils"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sentDigest struct {
	to     string
	hotels []utils.PendingHotel
}

func newRecordingDigest(t *testing.T, to string) (*PendingDigest, *[]sentDigest) {
	t.Helper()
	var sent []sentDigest
	d := NewPendingDigest(newTestDB(t), to)
	d.send = func(to string, hotels []utils.PendingHotel) error {
		sent = append(sent, sentDigest{to: to, hotels: hotels})
		return nil
	}
	return d, &sent
}

func TestPendingDigestRun(t *testing.T) {
	t.Setenv("SMTP_HOST", "smtp.example.com")
	d, sent := newRecordingDigest(t, "admin@example.com")

	assert.Equal(t, 0, d.Run())
	assert.Empty(t, *sent)

	require.NoError(t, d.db.Create(&model.Hotel{HotelName: "Hill View", HotelEmail: "hv@example.com", HotelStatus: constants.HOTEL_STATUS_PENDING}).Error)
	require.NoError(t, d.db.Create(&model.Hotel{HotelName: "Lake Side", HotelEmail: "ls@example.com", HotelStatus: "approved"}).Error)

	assert.Equal(t, 1, d.Run())
	require.Len(t, *sent, 1)
	assert.Equal(t, "admin@example.com", (*sent)[0].to)
	assert.Equal(t, []utils.PendingHotel{{HotelName: "Hill View", HotelEmail: "hv@example.com"}}, (*sent)[0].hotels)
}

func TestPendingDigestWithoutMail(t *testing.T) {
	t.Setenv("SMTP_HOST", "")
	d, sent := newRecordingDigest(t, "admin@example.com")
	require.NoError(t, d.db.Create(&model.Hotel{HotelName: "Hill View", HotelStatus: constants.HOTEL_STATUS_PENDING}).Error)

	assert.Equal(t, 1, d.Run())
	assert.Empty(t, *sent)
}

func TestPendingDigestSendFailure(t *testing.T) {
	t.Setenv("SMTP_HOST", "smtp.example.com")
	d, _ := newRecordingDigest(t, "admin@example.com")
	d.send = func(string, []utils.PendingHotel) error { return errors.New("smtp down") }
	require.NoError(t, d.db.Create(&model.Hotel{HotelName: "Hill View", HotelStatus: constants.HOTEL_STATUS_PENDING}).Error)

	assert.Equal(t, 1, d.Run())
}

func TestPendingDigestStartStop(t *testing.T) {
	d, _ := newRecordingDigest(t, "")
	require.NoError(t, d.Start(8))
	d.Stop()
	(&PendingDigest{}).Stop()
}
