package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/bnema/fetchbot/internal/domain"
	"github.com/bnema/fetchbot/internal/port"
)

const keepAliveInterval = 15 * time.Second

type SSEHandler struct {
	events    EventSource
	history   port.JobHistory
	keepAlive time.Duration
}

func NewSSEHandler(events EventSource, history port.JobHistory) *SSEHandler {
	return &SSEHandler{
		events:    events,
		history:   history,
		keepAlive: keepAliveInterval,
	}
}

// sseWrite writes an SSE event, handling multi-line data correctly.
func sseWrite(w http.ResponseWriter, eventName string, data string) {
	_, _ = fmt.Fprintf(w, "event: %s\n", eventName)
	for _, line := range strings.Split(data, "\n") {
		_, _ = fmt.Fprintf(w, "data: %s\n", line)
	}
	_, _ = fmt.Fprint(w, "\n")
	if f, ok := w.(http.Flusher); ok {
		f.Flush()
	}
}

func sseWriteJSON(w http.ResponseWriter, eventName string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	sseWrite(w, eventName, string(data))
	return nil
}

// sendKeepAlive writes an SSE comment to keep the connection active.
func sendKeepAlive(w http.ResponseWriter) {
	_, _ = fmt.Fprint(w, ": keep-alive\n\n")
	if f, ok := w.(http.Flusher); ok {
		f.Flush()
	}
}

// Events streams the state transitions of one request. A finished request
// yields a single "done" event carrying its history record.
func (h *SSEHandler) Events() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		if id == "" {
			http.Error(w, "Missing request ID", http.StatusBadRequest)
			return
		}

		// Subscribe before reading the current state so no transition is lost.
		ch := h.events.Subscribe(id)
		defer h.events.Unsubscribe(id, ch)

		current, inFlight := h.events.Last(id)
		var finished *domain.JobRecord
		if !inFlight {
			rec, err := h.history.Get(r.Context(), id)
			if err != nil {
				if errors.Is(err, domain.ErrNotFound) {
					http.Error(w, "Request not found", http.StatusNotFound)
					return
				}
				http.Error(w, "Failed to load request", http.StatusInternalServerError)
				return
			}
			finished = rec
		}

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")
		w.Header().Set("X-Accel-Buffering", "no")

		if finished != nil {
			_ = sseWriteJSON(w, "done", finished)
			return
		}
		_ = sseWriteJSON(w, "state", toEventView(current))

		ctx := r.Context()
		keepAlive := time.NewTicker(h.keepAlive)
		defer keepAlive.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-keepAlive.C:
				sendKeepAlive(w)
			case event, ok := <-ch:
				if !ok {
					return
				}
				name := "state"
				if event.Final {
					name = "done"
				}
				_ = sseWriteJSON(w, name, toEventView(event))
				if event.Final {
					return
				}
			}
		}
	}
}
