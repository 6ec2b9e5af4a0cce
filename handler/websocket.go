package handler

import (
	"context"
	"errors"
	"jetsetgo/model"
	"jetsetgo/notify"
	"log"
	"time"

	"github.com/gofiber/contrib/websocket"
	"gorm.io/gorm"
)

// CloseHotelNotFound is the close code sent when :hid names no hotel.
const CloseHotelNotFound = 4404

// HotelStatusSocket sends the current status of hotel :hid, then every
// change published on the bus until the client disconnects.
func (h *Handler) HotelStatusSocket(c *websocket.Conn) {
	hotelID := c.Params("hid")
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	defer c.Close()

	hotel, err := findByID[model.Hotel](h, hotelID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		msg := websocket.FormatCloseMessage(CloseHotelNotFound, "hotel not found")
		c.WriteControl(websocket.CloseMessage, msg, time.Now().Add(time.Second))
		return
	}
	if err != nil {
		log.Printf("failed to load hotel %s: %v", hotelID, err)
		return
	}
	current := notify.StatusEvent{HotelID: hotel.ID, Status: hotel.HotelStatus, ChangedAt: hotel.UpdatedAt}
	if err := c.WriteJSON(current); err != nil {
		return
	}

	events, err := h.Bus.Subscribe(ctx, hotelID)
	if err != nil {
		log.Printf("failed to subscribe to hotel %s: %v", hotelID, err)
		return
	}

	// The client never sends anything; a read error means it went away.
	go func() {
		defer cancel()
		for {
			if _, _, err := c.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for payload := range events {
		if err := c.WriteMessage(websocket.TextMessage, payload); err != nil {
			return
		}
	}
}
