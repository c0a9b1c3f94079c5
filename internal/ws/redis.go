package ws

import (
	"context"
	"encoding/json"
	"log"

	"github.com/redis/go-redis/v9"
)

// ShotEventsChannel carries planning results from whichever process planned
// them (API or planshot CLI) to every connected viewer.
const ShotEventsChannel = "shot_events"

var rdbClient *redis.Client

func SetRedisClient(r *redis.Client) {
	rdbClient = r
}

// StartShotEventSubscriber subscribes to the shot_events channel and
// rebroadcasts incoming events to the feed hub.
func StartShotEventSubscriber(ctx context.Context) {
	if rdbClient == nil {
		log.Println("[WS] Redis client not set; shot event subscriber not started")
		return
	}

	pubsub := rdbClient.Subscribe(ctx, ShotEventsChannel)
	ch := pubsub.Channel()
	go func() {
		log.Println("[WS] shot_events subscriber started")
		for msg := range ch {
			var payload map[string]interface{}
			if err := json.Unmarshal([]byte(msg.Payload), &payload); err != nil {
				log.Printf("[WS] invalid shot event payload: %v", err)
				continue
			}
			FeedHub.Broadcast(payload)
		}
	}()
}

// PublishShotEvent pushes a planning result onto the shot_events channel.
func PublishShotEvent(ctx context.Context, rdb *redis.Client, event interface{}) {
	data, err := json.Marshal(event)
	if err != nil {
		log.Printf("[WS] error marshaling shot event: %v", err)
		return
	}
	if err := rdb.Publish(ctx, ShotEventsChannel, data).Err(); err != nil {
		log.Printf("[WS] publish shot event failed: %v", err)
	}
}
