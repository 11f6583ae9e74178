package events

import (
	"context"
	"encoding/json"
	"go_trustedbot_backend/models"
	"go_trustedbot_backend/pkg/logging"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	ChatEventChannel = "chat:events"
)

type EventPublisher struct {
	redisClient *redis.Client
}

func NewEventPublisher(redisClient *redis.Client) *EventPublisher {
	return &EventPublisher{redisClient: redisClient}
}

func (p *EventPublisher) PublishChatEvent(event *models.ChatEvent) error {
	event.Timestamp = time.Now()

	data, err := json.Marshal(event)
	if err != nil {
		logging.Logger.Error("fail PublishChatEvent", "error", err)
		return err
	}
	ctx := context.Background()
	if err := p.redisClient.Publish(ctx, ChatEventChannel, string(data)).Err(); err != nil {
		logging.Logger.Error("fail PublishChatEvent", "error", err)
		return err
	}
	logging.Logger.Info("PublishChatEvent", "type", event.Type, "sessionID", event.SessionID)
	return nil
}

func (p *EventPublisher) SubscribeChatEvents(ctx context.Context) (<-chan *models.ChatEvent, error) {
	pubsub := p.redisClient.Subscribe(ctx, ChatEventChannel)
	if _, err := pubsub.Receive(ctx); err != nil {
		logging.Logger.Error("fail SubscribeChatEvents", "error", err)
		return nil, err
	}
	ch := make(chan *models.ChatEvent, 100)

	// goroutine to listen
	go func() {
		defer close(ch)
		defer func(pubsub *redis.PubSub) {
			err := pubsub.Close()
			if err != nil {
				logging.Logger.Error("fail SubscribeChatEvents", "error", err)
			}
		}(pubsub)

		for {
			select {
			case <-ctx.Done():
				return
			case msg := <-pubsub.Channel():
				var event models.ChatEvent
				if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
					logging.Logger.Error("Failed to unmarshal event", "error", err)
					continue
				}

				select {
				case ch <- &event:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return ch, nil
}
