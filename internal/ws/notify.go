package ws

import (
	"portfolio/internal/providers"
	"time"

	json "github.com/goccy/go-json"
)

const EventContentUpdated = "content_updated"

type ContentUpdatedEvent struct {
	Type      string `json:"type"`
	Category  string `json:"category"`
	Timestamp string `json:"timestamp"`
}

// NotifyContentUpdated tells connected clients that category changed.
// Its signature matches services.ChangeListener.
func (h *Hub) NotifyContentUpdated(category string) {
	evt := ContentUpdatedEvent{
		Type:      EventContentUpdated,
		Category:  category,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		h.logger.Errorf(providers.TypeApp, "Unable to encode ws event: %s", err)
		return
	}
	h.Broadcast(b)
}
