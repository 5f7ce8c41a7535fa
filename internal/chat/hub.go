package chat

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"

	"github.com/go-redis/redis/v8"

	"github.com/justconnect/justconnect-api/internal/models"
)

// Hub fans chat messages out to connected stream subscribers through Redis
// pub/sub, one channel per booking conversation. Messages survive in
// Postgres; the hub only handles live delivery.
type Hub struct {
	rdb *redis.Client

	mu            sync.RWMutex
	subscriptions map[string]*redis.PubSub
	subscribers   map[string]map[chan models.Message]struct{}

	ctx    context.Context
	cancel context.CancelFunc
}

func NewHub(rdb *redis.Client) *Hub {
	ctx, cancel := context.WithCancel(context.Background())
	return &Hub{
		rdb:           rdb,
		subscriptions: make(map[string]*redis.PubSub),
		subscribers:   make(map[string]map[chan models.Message]struct{}),
		ctx:           ctx,
		cancel:        cancel,
	}
}

func channelFor(bookingID uint) string {
	return fmt.Sprintf("chat:booking:%d", bookingID)
}

// Publish sends a message to every live subscriber of the booking's
// conversation, across all API instances.
func (h *Hub) Publish(ctx context.Context, bookingID uint, msg models.Message) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	if err := h.rdb.Publish(ctx, channelFor(bookingID), data).Err(); err != nil {
		return fmt.Errorf("publish message: %w", err)
	}
	return nil
}

// Subscribe returns a channel of live messages for one booking. The
// subscription is released when ctx is cancelled.
func (h *Hub) Subscribe(ctx context.Context, bookingID uint) (<-chan models.Message, error) {
	channel := channelFor(bookingID)

	h.mu.Lock()
	if _, exists := h.subscriptions[channel]; !exists {
		pubsub := h.rdb.Subscribe(h.ctx, channel)
		h.subscriptions[channel] = pubsub
		go h.receive(channel, pubsub)
	}

	if h.subscribers[channel] == nil {
		h.subscribers[channel] = make(map[chan models.Message]struct{})
	}

	msgChan := make(chan models.Message, 32)
	h.subscribers[channel][msgChan] = struct{}{}
	h.mu.Unlock()

	go func() {
		<-ctx.Done()
		h.removeSubscriber(channel, msgChan)
	}()

	return msgChan, nil
}

func (h *Hub) receive(channel string, pubsub *redis.PubSub) {
	defer h.cleanupChannel(channel)

	ch := pubsub.Channel()
	for {
		select {
		case <-h.ctx.Done():
			return
		case raw, ok := <-ch:
			if !ok {
				return
			}

			var msg models.Message
			if err := json.Unmarshal([]byte(raw.Payload), &msg); err != nil {
				log.Printf("chat: bad payload on %s: %v", channel, err)
				continue
			}

			h.mu.RLock()
			for sub := range h.subscribers[channel] {
				select {
				case sub <- msg:
				default:
					// slow consumer, skip this message
				}
			}
			h.mu.RUnlock()
		}
	}
}

func (h *Hub) removeSubscriber(channel string, msgChan chan models.Message) {
	h.mu.Lock()
	defer h.mu.Unlock()

	subs, exists := h.subscribers[channel]
	if !exists {
		return
	}
	if _, ok := subs[msgChan]; !ok {
		return
	}

	delete(subs, msgChan)
	close(msgChan)

	if len(subs) == 0 {
		delete(h.subscribers, channel)
		if pubsub, ok := h.subscriptions[channel]; ok {
			_ = pubsub.Close()
			delete(h.subscriptions, channel)
		}
	}
}

func (h *Hub) cleanupChannel(channel string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for sub := range h.subscribers[channel] {
		close(sub)
	}
	delete(h.subscribers, channel)

	if pubsub, ok := h.subscriptions[channel]; ok {
		_ = pubsub.Close()
		delete(h.subscriptions, channel)
	}
}

// Close shuts down every subscription.
func (h *Hub) Close() error {
	h.cancel()

	h.mu.RLock()
	channels := make([]string, 0, len(h.subscriptions))
	for channel := range h.subscriptions {
		channels = append(channels, channel)
	}
	h.mu.RUnlock()

	for _, channel := range channels {
		h.cleanupChannel(channel)
	}
	return nil
}
