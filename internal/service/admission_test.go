package service

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/fetchbot/internal/port/mocks"
)

func TestAdmission_DefaultCapacity(t *testing.T) {
	a := NewAdmission(0, nil)
	assert.Equal(t, DefaultCapacity, a.Capacity())
	assert.Equal(t, 0, a.Active())
}

func TestAdmission_AdmitUntilFull(t *testing.T) {
	a := NewAdmission(2, nil)

	assert.True(t, a.TryAdmit())
	assert.True(t, a.TryAdmit())
	assert.False(t, a.TryAdmit())
	assert.Equal(t, 2, a.Active())

	a.Release()
	assert.Equal(t, 1, a.Active())
	assert.True(t, a.TryAdmit())
}

func TestAdmission_ReleaseNeverGoesNegative(t *testing.T) {
	a := NewAdmission(1, nil)
	a.Release()
	assert.Equal(t, 0, a.Active())
	assert.True(t, a.TryAdmit())
}

func TestAdmission_ConcurrentAdmitsNeverExceedCapacity(t *testing.T) {
	const capacity = 5
	a := NewAdmission(capacity, nil)

	var admitted atomic.Int32
	var wg sync.WaitGroup
	start := make(chan struct{})
	for i := 0; i < capacity+1; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			if a.TryAdmit() {
				admitted.Add(1)
			}
		}()
	}
	close(start)
	wg.Wait()

	assert.Equal(t, int32(capacity), admitted.Load())
	assert.Equal(t, capacity, a.Active())
}

func TestAdmission_ConcurrentChurn(t *testing.T) {
	a := NewAdmission(3, nil)

	var wg sync.WaitGroup
	var peak atomic.Int32
	for i := 0; i < 200; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if !a.TryAdmit() {
				return
			}
			if n := int32(a.Active()); n > peak.Load() {
				peak.Store(n)
			}
			a.Release()
		}()
	}
	wg.Wait()

	assert.LessOrEqual(t, peak.Load(), int32(3))
	assert.Equal(t, 0, a.Active())
}

func TestAdmission_PublishesGauge(t *testing.T) {
	m := mocks.NewMetricsMock(t)
	m.EXPECT().SetCapacity(2).Return().Once()
	m.EXPECT().SetActive(0).Return().Twice()
	m.EXPECT().SetActive(1).Return().Once()

	a := NewAdmission(2, m)
	assert.True(t, a.TryAdmit())
	a.Release()

	m.AssertNumberOfCalls(t, "SetActive", 3)
}
