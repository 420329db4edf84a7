package broker

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"sitesnap/internal/domain/entity"
)

type Publisher struct {
	client  *Client
	timeout time.Duration
}

func NewPublisher(client *Client, cfg PublisherConfig) *Publisher {
	return &Publisher{
		client:  client,
		timeout: time.Duration(cfg.Timeout) * time.Millisecond,
	}
}

// Publish appends a stored-image event to the stream for downstream
// processors. Delivery is best-effort; callers decide how to handle failure.
func (p *Publisher) Publish(ctx context.Context, event entity.ImageStored) error {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	return p.client.redis.XAdd(ctx, &redis.XAddArgs{
		Stream: p.client.stream,
		Values: map[string]any{
			"key":      event.Key,
			"site":     event.Site,
			"filename": event.Filename,
		},
	}).Err()
}
