package realtime

import (
	"encoding/json"
	"log/slog"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10

	EventSnapshot = "negotiation-snapshot"
)

// Snapshot is the first frame of every connection.
type Snapshot struct {
	Type        string `json:"type"`
	Negotiation any    `json:"negotiation"`
}

// Serve writes snapshot and then every update queued for sub until either
// side closes. Incoming frames are read only to observe pongs and closes.
func Serve(conn *websocket.Conn, h *Hub, sub *Subscriber, snapshot any) {
	defer conn.Close()

	go func() {
		defer h.Unsubscribe(sub)
		conn.SetReadLimit(4096)
		_ = conn.SetReadDeadline(time.Now().Add(pongWait))
		conn.SetPongHandler(func(string) error {
			return conn.SetReadDeadline(time.Now().Add(pongWait))
		})
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					slog.Warn("[realtime][conn] read failed", "negotiation_id", sub.room, "viewer_id", sub.viewerID, "err", err)
				}
				return
			}
		}
	}()

	first, err := json.Marshal(Snapshot{Type: EventSnapshot, Negotiation: snapshot})
	if err != nil {
		slog.Error("[realtime][conn] snapshot encode failed", "negotiation_id", sub.room, "err", err)
		h.Unsubscribe(sub)
		return
	}
	if err := write(conn, websocket.TextMessage, first); err != nil {
		h.Unsubscribe(sub)
		return
	}

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()
	for {
		select {
		case msg, ok := <-sub.C():
			if !ok {
				_ = write(conn, websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}
			if err := write(conn, websocket.TextMessage, msg); err != nil {
				h.Unsubscribe(sub)
				return
			}
		case <-ticker.C:
			if err := write(conn, websocket.PingMessage, nil); err != nil {
				h.Unsubscribe(sub)
				return
			}
		}
	}
}

func write(conn *websocket.Conn, messageType int, data []byte) error {
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteMessage(messageType, data)
}
