package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/bnema/fetchbot/internal/domain"
	"github.com/bnema/fetchbot/internal/infrastructure/logger"
	"github.com/bnema/fetchbot/internal/port"
	"github.com/bnema/fetchbot/internal/service"
)

const maxListLimit = 500

// Capacity reports the admission state.
type Capacity interface {
	Active() int
	Capacity() int
}

// EventSource is the read side of the request state bus.
type EventSource interface {
	Subscribe(requestID string) chan service.Event
	Unsubscribe(requestID string, ch chan service.Event)
	Last(requestID string) (service.Event, bool)
	InFlight() []service.Event
}

type Handlers struct {
	capacity Capacity
	history  port.JobHistory
	events   EventSource
}

func NewHandlers(capacity Capacity, history port.JobHistory, events EventSource) *Handlers {
	return &Handlers{
		capacity: capacity,
		history:  history,
		events:   events,
	}
}

type eventView struct {
	RequestID string       `json:"request_id"`
	State     domain.State `json:"state"`
	Message   string       `json:"message,omitempty"`
	At        time.Time    `json:"at"`
	Final     bool         `json:"final"`
}

func toEventView(ev service.Event) eventView {
	return eventView{
		RequestID: ev.RequestID,
		State:     ev.State,
		Message:   ev.Message,
		At:        ev.At,
		Final:     ev.Final,
	}
}

type healthView struct {
	Status   string `json:"status"`
	Active   int    `json:"active"`
	Capacity int    `json:"capacity"`
}

type jobsView struct {
	InFlight []eventView        `json:"in_flight"`
	Recent   []domain.JobRecord `json:"recent"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error.Printf("encode response: %v", err)
	}
}

func (h *Handlers) Health() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, healthView{
			Status:   "ok",
			Active:   h.capacity.Active(),
			Capacity: h.capacity.Capacity(),
		})
	}
}

func (h *Handlers) Jobs() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := 0
		if raw := r.URL.Query().Get("limit"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n < 1 || n > maxListLimit {
				http.Error(w, "Invalid limit", http.StatusBadRequest)
				return
			}
			limit = n
		}

		recent, err := h.history.ListRecent(r.Context(), limit)
		if err != nil {
			logger.Error.Printf("list jobs: %v", err)
			http.Error(w, "Failed to list jobs", http.StatusInternalServerError)
			return
		}
		if recent == nil {
			recent = []domain.JobRecord{}
		}

		inFlight := h.events.InFlight()
		sort.Slice(inFlight, func(i, j int) bool { return inFlight[i].At.Before(inFlight[j].At) })
		views := make([]eventView, 0, len(inFlight))
		for _, ev := range inFlight {
			views = append(views, toEventView(ev))
		}

		writeJSON(w, http.StatusOK, jobsView{InFlight: views, Recent: recent})
	}
}

// Job returns the finished record of a request, or its latest event while it
// is still in flight.
func (h *Handlers) Job() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")

		if ev, ok := h.events.Last(id); ok {
			writeJSON(w, http.StatusOK, toEventView(ev))
			return
		}

		rec, err := h.history.Get(r.Context(), id)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				http.Error(w, "Job not found", http.StatusNotFound)
				return
			}
			logger.Error.Printf("get job %s: %v", logger.SanitizeForLog(id), err)
			http.Error(w, "Failed to load job", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, rec)
	}
}
