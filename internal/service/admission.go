package service

import (
	"sync"

	"github.com/bnema/fetchbot/internal/infrastructure/logger"
	"github.com/bnema/fetchbot/internal/port"
)

// DefaultCapacity is the number of downloads allowed to run at once.
const DefaultCapacity = 5

// Admission bounds the number of concurrently running downloads. A request
// that finds every slot taken is rejected immediately; there is no waiting.
type Admission struct {
	mu       sync.Mutex
	active   int
	capacity int
	metrics  port.Metrics
}

func NewAdmission(capacity int, metrics port.Metrics) *Admission {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	if metrics != nil {
		metrics.SetCapacity(capacity)
		metrics.SetActive(0)
	}
	return &Admission{
		capacity: capacity,
		metrics:  metrics,
	}
}

// TryAdmit takes a slot when one is free. Every true result must be paired
// with exactly one Release.
func (a *Admission) TryAdmit() bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.active >= a.capacity {
		return false
	}
	a.active++
	a.publish()
	return true
}

func (a *Admission) Release() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.active == 0 {
		logger.Error.Printf("admission release without a held slot")
		return
	}
	a.active--
	a.publish()
}

func (a *Admission) Active() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.active
}

func (a *Admission) Capacity() int {
	return a.capacity
}

func (a *Admission) publish() {
	if a.metrics != nil {
		a.metrics.SetActive(a.active)
	}
}
