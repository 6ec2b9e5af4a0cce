package notify

import (
	"context"

	"github.com/redis/go-redis/v9"
)

type RedisBus struct {
	client *redis.Client
}

func NewRedisBus(addr string) *RedisBus {
	return &RedisBus{client: redis.NewClient(&redis.Options{Addr: addr})}
}

func (b *RedisBus) Ping(ctx context.Context) error {
	return b.client.Ping(ctx).Err()
}

func (b *RedisBus) Publish(ctx context.Context, event StatusEvent) error {
	payload, err := Encode(event)
	if err != nil {
		return err
	}
	return b.client.Publish(ctx, Channel(event.HotelID), payload).Err()
}

func (b *RedisBus) Subscribe(ctx context.Context, hotelID string) (<-chan []byte, error) {
	pubsub := b.client.Subscribe(ctx, Channel(hotelID))
	// Wait for the subscription confirmation so errors surface here.
	if _, err := pubsub.Receive(ctx); err != nil {
		pubsub.Close()
		return nil, err
	}

	out := make(chan []byte)
	go func() {
		defer close(out)
		defer pubsub.Close()
		msgs := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					return
				}
				select {
				case out <- []byte(msg.Payload):
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out, nil
}

func (b *RedisBus) Close() error {
	return b.client.Close()
}
