package hub

import (
	"context"
	"encoding/json"
	"log"

	"github.com/redis/go-redis/v9"

	"github.com/roci-emry/sports-betting/internal/store"
	"github.com/roci-emry/sports-betting/pkg/models"
)

// SnapshotConsumer subscribes to snapshot publications and feeds them into
// the hub. It is the cross-process bridge: the scheduled job stores a
// snapshot in Redis, the store announces it, and this consumer pushes it to
// every connected client of the API process.
type SnapshotConsumer struct {
	redis *redis.Client
	hub   *Hub
}

// NewSnapshotConsumer creates a consumer feeding the given hub
func NewSnapshotConsumer(redisClient *redis.Client, h *Hub) *SnapshotConsumer {
	return &SnapshotConsumer{
		redis: redisClient,
		hub:   h,
	}
}

// Start consumes publications until the context is cancelled
func (c *SnapshotConsumer) Start(ctx context.Context) {
	sub := c.redis.Subscribe(ctx, store.SnapshotChannel)
	defer sub.Close()

	log.Printf("snapshot consumer subscribed to %s", store.SnapshotChannel)

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return

		case msg, ok := <-ch:
			if !ok {
				return
			}
			c.deliver([]byte(msg.Payload))
		}
	}
}

func (c *SnapshotConsumer) deliver(data []byte) {
	var snapshot models.Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		log.Printf("dropping malformed snapshot publication: %v", err)
		return
	}

	c.hub.Broadcast(&snapshot)
}
