package ws

import (
	"net/http"
	"portfolio/internal/providers"

	"github.com/gorilla/websocket"
)

type Handler struct {
	hub    *Hub
	logger providers.Logger
}

func NewHandler(hub *Hub, logger providers.Logger) *Handler {
	return &Handler{hub: hub, logger: logger}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

func (h *Handler) HandleContentWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warnf(providers.TypeRead, "WS upgrade error | error=%v", err)
		return
	}

	client := NewClient(h.hub, conn)
	h.hub.Register(client)
	go client.WritePump()
	go client.ReadPump()
}
