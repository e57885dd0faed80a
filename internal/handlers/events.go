package handlers

import (
	"github.com/dimitrije/genenft-api/internal/sse"
	"github.com/google/uuid"
	"github.com/m1z23r/drift/pkg/drift"
)

type EventsHandler struct {
	hub HubInterface
}

func NewEventsHandler(hub HubInterface) *EventsHandler {
	return &EventsHandler{hub: hub}
}

// Connect streams market activity (mints, listings, sales,
// cancellations) to the client over SSE until it disconnects.
func (h *EventsHandler) Connect(c *drift.Context) {
	sseCtx := c.SSE()

	client := &sse.Client{
		ID:   uuid.New().String(),
		Send: make(chan []byte, 256),
	}
	h.hub.Register(client)
	defer h.hub.Unregister(client)

	if err := sseCtx.SendJSON(map[string]string{
		"type":      "connected",
		"client_id": client.ID,
	}, "system", ""); err != nil {
		return
	}

	done := make(chan struct{})
	go func() {
		<-c.Request.Context().Done()
		close(done)
	}()

	for {
		select {
		case msg, ok := <-client.Send:
			if !ok {
				return
			}
			if err := sseCtx.Send(string(msg), "message", ""); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}
