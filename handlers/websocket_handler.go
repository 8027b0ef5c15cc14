package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/pprado/futsal-league/brackets"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Origin filtering is handled by the CORS middleware in front of
	// the router.
	CheckOrigin: func(r *http.Request) bool { return true },
}

type WebsocketHandler struct {
	hub    *brackets.Hub
	logger *slog.Logger
}

func NewWebsocketHandler(hub *brackets.Hub, logger *slog.Logger) *WebsocketHandler {
	return &WebsocketHandler{hub: hub, logger: logger}
}

// Subscribe upgrades the connection and joins the tournament's event room.
// The socket is one-way: fixture and match events are pushed, inbound
// messages are discarded.
func (h *WebsocketHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := getIDFromURL(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error("ws upgrade failed", slog.Any("error", err))
		return
	}

	client := &brackets.Client{
		Hub:  h.hub,
		Conn: conn,
		Send: make(chan []byte, 256),
		Room: fmt.Sprintf("tournament_%d", tournamentID),
	}
	h.hub.Register <- client

	go client.WritePump()
	go client.ReadPump()
}
