// Package resilience holds small client-side protection primitives: a
// consecutive-failure circuit breaker and a single-flight call deduplicator.
package resilience

import (
	"errors"
	"sync"
	"time"
)

var ErrCircuitOpen = errors.New("circuit breaker is open")

type CircuitState string

const (
	CircuitStateClosed   CircuitState = "closed"
	CircuitStateOpen     CircuitState = "open"
	CircuitStateHalfOpen CircuitState = "half_open"
)

// CircuitBreaker trips open after a run of consecutive failures and probes
// the dependency with a bounded number of half-open requests once the open
// window elapses.
type CircuitBreaker struct {
	mu sync.Mutex

	failLimit   int
	reopenAfter time.Duration
	probeLimit  int

	state      CircuitState
	failStreak int
	openedAt   time.Time
	probesOut  int
	probesOK   int
	now        func() time.Time
}

func NewCircuitBreaker(failureThreshold int, openTimeout time.Duration, halfOpenMaxReq int) *CircuitBreaker {
	if failureThreshold < 1 {
		failureThreshold = 1
	}
	if openTimeout <= 0 {
		openTimeout = 15 * time.Second
	}
	if halfOpenMaxReq < 1 {
		halfOpenMaxReq = 1
	}

	return &CircuitBreaker{
		failLimit:   failureThreshold,
		reopenAfter: openTimeout,
		probeLimit:  halfOpenMaxReq,
		state:       CircuitStateClosed,
		now:         time.Now,
	}
}

// Allow reports whether a request may proceed. In the half-open state it
// also reserves one probe slot.
func (b *CircuitBreaker) Allow() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state == CircuitStateOpen {
		if b.now().Sub(b.openedAt) < b.reopenAfter {
			return ErrCircuitOpen
		}
		b.enterHalfOpen()
	}

	if b.state == CircuitStateHalfOpen {
		if b.probesOut >= b.probeLimit {
			return ErrCircuitOpen
		}
		b.probesOut++
	}

	return nil
}

func (b *CircuitBreaker) RecordSuccess() {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case CircuitStateClosed:
		b.failStreak = 0
	case CircuitStateHalfOpen:
		if b.probesOut > 0 {
			b.probesOut--
		}
		b.probesOK++
		if b.probesOK >= b.probeLimit && b.probesOut == 0 {
			b.state = CircuitStateClosed
			b.failStreak = 0
			b.probesOut = 0
			b.probesOK = 0
			b.openedAt = time.Time{}
		}
	}
}

func (b *CircuitBreaker) RecordFailure() {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case CircuitStateClosed:
		b.failStreak++
		if b.failStreak >= b.failLimit {
			b.trip()
		}
	case CircuitStateHalfOpen:
		// One failed probe re-opens immediately.
		if b.probesOut > 0 {
			b.probesOut--
		}
		b.trip()
	case CircuitStateOpen:
		b.openedAt = b.now()
	}
}

// State reports the effective state: an expired open window already counts
// as half-open even before the next Allow call.
func (b *CircuitBreaker) State() CircuitState {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state == CircuitStateOpen && b.now().Sub(b.openedAt) >= b.reopenAfter {
		return CircuitStateHalfOpen
	}

	return b.state
}

func (b *CircuitBreaker) trip() {
	b.state = CircuitStateOpen
	b.openedAt = b.now()
	b.probesOut = 0
	b.probesOK = 0
}

func (b *CircuitBreaker) enterHalfOpen() {
	b.state = CircuitStateHalfOpen
	b.probesOut = 0
	b.probesOK = 0
}
