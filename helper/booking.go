package helper

import (
	"fmt"
	"jetsetgo/model"

	"github.com/skip2/go-qrcode"
)

const qrSize = 256

func BookingReference(b model.Booking) string {
	return fmt.Sprintf("JETSETGO-BOOKING:%s;USER:%s;DATE:%s;STATUS:%s", b.ID, b.UserID, b.BookingForDate, b.BookingStatus)
}

// BookingQRCode renders the booking reference as a PNG QR code.
func BookingQRCode(b model.Booking) ([]byte, error) {
	return qrcode.Encode(BookingReference(b), qrcode.Medium, qrSize)
}
