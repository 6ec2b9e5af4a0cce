// Package notify fans hotel status changes out to interested listeners.
package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

type StatusEvent struct {
	HotelID   string    `json:"hotel_id"`
	Status    string    `json:"hotel_status"`
	ChangedAt time.Time `json:"changed_at"`
}

type Bus interface {
	Publish(ctx context.Context, event StatusEvent) error
	// Subscribe streams raw event payloads for one hotel until ctx is done.
	Subscribe(ctx context.Context, hotelID string) (<-chan []byte, error)
	Close() error
}

func Channel(hotelID string) string {
	return fmt.Sprintf("hotel:%s:status", hotelID)
}

func Encode(event StatusEvent) ([]byte, error) {
	return json.Marshal(event)
}

// NopBus drops events; used when no broker is configured.
type NopBus struct{}

func (NopBus) Publish(context.Context, StatusEvent) error { return nil }

func (NopBus) Subscribe(ctx context.Context, _ string) (<-chan []byte, error) {
	ch := make(chan []byte)
	go func() {
		<-ctx.Done()
		close(ch)
	}()
	return ch, nil
}

func (NopBus) Close() error { return nil }
