package handlers

import (
	"log/slog"
	"net/http"

	"blind_negotiation/internal/adapter/http/dto/response"
	"blind_negotiation/internal/adapter/realtime"
	"blind_negotiation/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// RealtimeHandler upgrades participants to a websocket bound to one
// negotiation room.
type RealtimeHandler struct {
	hub          *realtime.Hub
	negotiations usecase.INegotiationUseCase
	upgrader     websocket.Upgrader
}

func NewRealtimeHandler(hub *realtime.Hub, negotiations usecase.INegotiationUseCase) *RealtimeHandler {
	return &RealtimeHandler{
		hub:          hub,
		negotiations: negotiations,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// ServeWS checks the viewer is a participant before joining the room, then
// subscribes before reading the snapshot so no update saved in between is
// lost. Clients drop updates whose version is not newer than the snapshot.
//
// @Summary      Negotiation realtime updates
// @Tags         negotiations
// @Param        negotiation_id path  string true "Negotiation ID"
// @Param        viewer_id      query string true "Viewing participant"
// @Success      101
// @Router       /negotiations/{negotiation_id}/ws [get]
func (h *RealtimeHandler) ServeWS(c *gin.Context) {
	negotiationID := c.Param("negotiation_id")
	viewerID := c.Query("viewer_id")
	ctx := c.Request.Context()

	if _, err := h.negotiations.Get(ctx, negotiationID, viewerID); err != nil {
		writeError(c, err)
		return
	}

	sub := h.hub.Subscribe(negotiationID, viewerID)
	view, err := h.negotiations.Get(ctx, negotiationID, viewerID)
	if err != nil {
		h.hub.Unsubscribe(sub)
		writeError(c, err)
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.hub.Unsubscribe(sub)
		slog.Warn("[realtime][handler] upgrade failed", "negotiation_id", negotiationID, "err", err)
		return
	}
	slog.Info("[realtime][handler] subscribed", "negotiation_id", negotiationID, "room_size", h.hub.RoomSize(negotiationID))

	realtime.Serve(conn, h.hub, sub, response.FromNegotiationView(view))
}
