// Package realtime relays negotiation updates to WebSocket subscribers, one
// room per negotiation id.
package realtime

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"blind_negotiation/internal/domain/entities"
	"blind_negotiation/internal/infrastructure/metrics"
	"blind_negotiation/internal/usecase/interfaces"
)

const defaultSendBuffer = 16

// Hub fans published updates out to the subscribers of a negotiation room.
// Delivery is best effort: a subscriber whose buffer is full is dropped and
// must reconnect, which gives it a fresh snapshot.
type Hub struct {
	mu         sync.RWMutex
	rooms      map[string]map[*Subscriber]struct{}
	sendBuffer int
}

var _ interfaces.IRealtimePublisher = (*Hub)(nil)

func NewHub() *Hub {
	return &Hub{
		rooms:      make(map[string]map[*Subscriber]struct{}),
		sendBuffer: defaultSendBuffer,
	}
}

// Subscriber is one connection's membership in a room.
type Subscriber struct {
	room     string
	viewerID string
	send     chan []byte
	once     sync.Once
}

// C yields encoded updates. It is closed when the subscriber leaves the room.
func (s *Subscriber) C() <-chan []byte { return s.send }

func (s *Subscriber) Room() string { return s.room }

func (h *Hub) Subscribe(negotiationID, viewerID string) *Subscriber {
	sub := &Subscriber{
		room:     negotiationID,
		viewerID: viewerID,
		send:     make(chan []byte, h.sendBuffer),
	}

	h.mu.Lock()
	room, ok := h.rooms[negotiationID]
	if !ok {
		room = make(map[*Subscriber]struct{})
		h.rooms[negotiationID] = room
	}
	room[sub] = struct{}{}
	size := len(room)
	h.mu.Unlock()

	metrics.RealtimeSubscribers.Inc()
	slog.Debug("[realtime][hub] subscribed", "negotiation_id", negotiationID, "viewer_id", viewerID, "room_size", size)
	return sub
}

// Unsubscribe removes sub and closes its channel. Safe to call repeatedly.
func (h *Hub) Unsubscribe(sub *Subscriber) {
	sub.once.Do(func() {
		h.mu.Lock()
		if room, ok := h.rooms[sub.room]; ok {
			delete(room, sub)
			if len(room) == 0 {
				delete(h.rooms, sub.room)
			}
		}
		close(sub.send)
		h.mu.Unlock()

		metrics.RealtimeSubscribers.Dec()
		slog.Debug("[realtime][hub] unsubscribed", "negotiation_id", sub.room, "viewer_id", sub.viewerID)
	})
}

// Publish encodes update once and queues it for every subscriber of the room.
func (h *Hub) Publish(ctx context.Context, negotiationID string, update entities.NegotiationUpdate) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	b, err := json.Marshal(update)
	if err != nil {
		return fmt.Errorf("encode update for %s: %w", negotiationID, err)
	}

	var slow []*Subscriber
	h.mu.RLock()
	for sub := range h.rooms[negotiationID] {
		select {
		case sub.send <- b:
		default:
			slow = append(slow, sub)
		}
	}
	h.mu.RUnlock()

	for _, sub := range slow {
		slog.Warn("[realtime][hub] dropping slow subscriber", "negotiation_id", negotiationID, "viewer_id", sub.viewerID)
		h.Unsubscribe(sub)
	}
	return nil
}

// RoomSize returns the number of subscribers of negotiationID.
func (h *Hub) RoomSize(negotiationID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[negotiationID])
}
