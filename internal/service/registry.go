package service

import (
	"sync"

	"github.com/bnema/fetchbot/internal/domain"
	"github.com/bnema/fetchbot/internal/infrastructure/logger"
)

// Registry tracks the most recently started download process so it can be
// stopped from chat. It holds a single handle for the whole bot: starting a
// second job replaces the first one, which then can no longer be stopped.
type Registry struct {
	mu     sync.Mutex
	handle *domain.JobHandle
}

func NewRegistry() *Registry {
	return &Registry{}
}

func (r *Registry) Set(h *domain.JobHandle) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.handle != nil && h != nil && r.handle.ID != h.ID {
		logger.Debug.Printf("registry: job %s replaces job %s", h.ID, r.handle.ID)
	}
	r.handle = h
}

func (r *Registry) Get() (*domain.JobHandle, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.handle, r.handle != nil
}

func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handle = nil
}

// ClearIf empties the registry only when it still holds h.
func (r *Registry) ClearIf(h *domain.JobHandle) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.handle == nil || r.handle != h {
		return false
	}
	r.handle = nil
	return true
}

// Terminate signals the tracked process and empties the registry. It returns
// false when no job is tracked.
func (r *Registry) Terminate() bool {
	r.mu.Lock()
	h := r.handle
	r.handle = nil
	r.mu.Unlock()

	if h == nil {
		return false
	}

	logger.Info.Printf("terminating job %s (pid %d)", h.ID, h.PID)
	if h.Process != nil {
		if err := h.Process.Terminate(); err != nil {
			logger.Warn.Printf("terminate job %s: %v", h.ID, err)
		}
	}
	return true
}
