package clients

import (
	"sync"
	"time"
)

// State represents the current state of the circuit breaker.
type State int

const (
	// StateClosed lets requests through.
	StateClosed State = iota

	// StateOpen blocks requests until the timeout passes.
	StateOpen

	// StateHalfOpen lets a limited number of probes through.
	StateHalfOpen
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpen:
		return "open"
	case StateHalfOpen:
		return "half-open"
	default:
		return "unknown"
	}
}

// CircuitBreakerConfig configures the circuit breaker behavior.
type CircuitBreakerConfig struct {
	// MaxFailures is the number of consecutive failures before the circuit opens.
	MaxFailures int

	// Timeout is how long the circuit stays open before probing.
	Timeout time.Duration

	// HalfOpenLimit is both the number of concurrent probes allowed and the
	// number of consecutive successes needed to close the circuit.
	HalfOpenLimit int
}

// CircuitBreaker stops calling a provider that keeps failing so the aggregator
// moves on to the next one without waiting on timeouts.
//
// State transitions:
//   - Closed → Open: after MaxFailures consecutive failures
//   - Open → HalfOpen: after Timeout has passed
//   - HalfOpen → Closed: after HalfOpenLimit consecutive successes
//   - HalfOpen → Open: on any failure
type CircuitBreaker struct {
	mu               sync.Mutex
	state            State
	failures         int
	successes        int
	halfOpenRequests int
	lastFailure      time.Time
	cfg              CircuitBreakerConfig

	onStateChange func(from, to State)

	now func() time.Time
}

// NewCircuitBreaker creates a closed circuit breaker.
func NewCircuitBreaker(cfg CircuitBreakerConfig) *CircuitBreaker {
	if cfg.MaxFailures < 1 {
		cfg.MaxFailures = 1
	}

	if cfg.HalfOpenLimit < 1 {
		cfg.HalfOpenLimit = 1
	}

	return &CircuitBreaker{
		state: StateClosed,
		cfg:   cfg,
		now:   time.Now,
	}
}

// OnStateChange sets a callback invoked after every state change.
// The callback runs on the caller's goroutine after the lock is released.
func (cb *CircuitBreaker) OnStateChange(fn func(from, to State)) {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	cb.onStateChange = fn
}

// Allow reports whether a request may proceed.
// It may move an open circuit to half-open once the timeout has passed.
func (cb *CircuitBreaker) Allow() bool {
	cb.mu.Lock()

	var (
		allowed bool
		change  func()
	)

	switch cb.state {
	case StateClosed:
		allowed = true
	case StateOpen:
		if cb.now().Sub(cb.lastFailure) >= cb.cfg.Timeout {
			change = cb.transitionTo(StateHalfOpen)
			cb.halfOpenRequests = 1
			allowed = true
		}
	case StateHalfOpen:
		if cb.halfOpenRequests < cb.cfg.HalfOpenLimit {
			cb.halfOpenRequests++
			allowed = true
		}
	}

	cb.mu.Unlock()
	notify(change)

	return allowed
}

// RecordSuccess records a successful request.
func (cb *CircuitBreaker) RecordSuccess() {
	cb.mu.Lock()

	var change func()

	switch cb.state {
	case StateClosed:
		cb.failures = 0
	case StateHalfOpen:
		cb.halfOpenRequests--
		cb.successes++

		if cb.successes >= cb.cfg.HalfOpenLimit {
			change = cb.transitionTo(StateClosed)
		}
	case StateOpen:
	}

	cb.mu.Unlock()
	notify(change)
}

// RecordFailure records a failed request.
func (cb *CircuitBreaker) RecordFailure() {
	cb.mu.Lock()

	var change func()

	cb.lastFailure = cb.now()

	switch cb.state {
	case StateClosed:
		cb.failures++
		if cb.failures >= cb.cfg.MaxFailures {
			change = cb.transitionTo(StateOpen)
		}
	case StateHalfOpen:
		cb.halfOpenRequests--
		change = cb.transitionTo(StateOpen)
	case StateOpen:
	}

	cb.mu.Unlock()
	notify(change)
}

// State returns the current state of the circuit breaker.
func (cb *CircuitBreaker) State() State {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	return cb.state
}

// transitionTo changes state and returns the pending notification, if any.
// Must be called with the lock held.
func (cb *CircuitBreaker) transitionTo(newState State) func() {
	if cb.state == newState {
		return nil
	}

	oldState := cb.state
	cb.state = newState
	cb.failures = 0
	cb.successes = 0

	if newState != StateHalfOpen {
		cb.halfOpenRequests = 0
	}

	if fn := cb.onStateChange; fn != nil {
		return func() { fn(oldState, newState) }
	}

	return nil
}

func notify(change func()) {
	if change != nil {
		change()
	}
}
