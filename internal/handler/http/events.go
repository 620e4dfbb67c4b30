package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/facetrack/attendance-backend-go/internal/pkg/sse"
)

type EventsHandler interface {
	Stream(w http.ResponseWriter, r *http.Request)
}

type eventsHandlerImpl struct {
	hub *sse.Hub
}

func NewEventsHandler(hub *sse.Hub) EventsHandler {
	return &eventsHandlerImpl{hub: hub}
}

// Stream pushes attendance events to the client as server-sent events
// until the client disconnects.
func (h *eventsHandlerImpl) Stream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	ch, cleanup := h.hub.Subscribe()
	defer cleanup()

	for {
		select {
		case <-r.Context().Done():
			return
		case event, ok := <-ch:
			if !ok {
				return
			}
			payload, err := json.Marshal(event.Data)
			if err != nil {
				continue
			}
			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Event, payload)
			flusher.Flush()
		}
	}
}
