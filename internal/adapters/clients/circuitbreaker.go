package clients

import (
	"sync"
	"time"
)

// State is the position of a circuit breaker.
type State int

const (
	// StateClosed lets every request through.
	StateClosed State = iota

	// StateOpen rejects requests until the cooldown has elapsed.
	StateOpen

	// StateHalfOpen lets a limited number of probes through.
	StateHalfOpen
)

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

// BreakerSettings configures a Breaker.
type BreakerSettings struct {
	// MaxFailures consecutive failures open the circuit.
	MaxFailures int

	// Cooldown is how long the circuit stays open before probing.
	Cooldown time.Duration

	// HalfOpenLimit bounds in-flight probes and is also the number of
	// consecutive probe successes that close the circuit again.
	HalfOpenLimit int
}

// BreakerSnapshot is a point-in-time view of a Breaker for health reporting.
type BreakerSnapshot struct {
	State    State
	Streak   int
	OpenedAt time.Time
}

// Breaker guards one downstream service.
//
//	closed    -> open       after MaxFailures consecutive failures
//	open      -> half-open  once Cooldown has elapsed
//	half-open -> closed     after HalfOpenLimit consecutive successes
//	half-open -> open       on any failure
type Breaker struct {
	mu        sync.Mutex
	settings  BreakerSettings
	state     State
	streak    int
	probes    int
	openedAt  time.Time
	listeners []func(from, to State)
	watchers  []func(to State)
	clock     func() time.Time
}

// NewBreaker returns a closed breaker. Non-positive settings fall back to 1
// failure, 30s and 1 probe.
func NewBreaker(s BreakerSettings) *Breaker {
	if s.MaxFailures < 1 {
		s.MaxFailures = 1
	}

	if s.Cooldown <= 0 {
		s.Cooldown = 30 * time.Second
	}

	if s.HalfOpenLimit < 1 {
		s.HalfOpenLimit = 1
	}

	return &Breaker{settings: s, clock: time.Now}
}

// Notify registers fn to be called after every state change. fn runs on its
// own goroutine.
func (b *Breaker) Notify(fn func(from, to State)) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.listeners = append(b.listeners, fn)
}

// Watch registers fn to be called synchronously, in order, after every state
// change and once immediately with the current state. fn runs with the
// breaker locked, so it must be quick and must not call back into b.
func (b *Breaker) Watch(fn func(to State)) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.watchers = append(b.watchers, fn)
	fn(b.state)
}

// Admit reports whether a request may proceed. A nil return must be
// followed by exactly one Report.
func (b *Breaker) Admit() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state == StateOpen {
		if b.clock().Sub(b.openedAt) < b.settings.Cooldown {
			return ErrCircuitOpen
		}

		b.moveTo(StateHalfOpen)
	}

	if b.state == StateHalfOpen {
		if b.probes >= b.settings.HalfOpenLimit {
			return ErrCircuitOpen
		}

		b.probes++
	}

	return nil
}

// Report records the outcome of an admitted request.
func (b *Breaker) Report(success bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state == StateHalfOpen && b.probes > 0 {
		b.probes--
	}

	switch {
	case success && b.state == StateClosed:
		b.streak = 0
	case success:
		b.streak++
		if b.state == StateHalfOpen && b.streak >= b.settings.HalfOpenLimit {
			b.moveTo(StateClosed)
		}
	case b.state == StateHalfOpen:
		b.moveTo(StateOpen)
	default:
		b.streak++
		if b.state == StateClosed && b.streak >= b.settings.MaxFailures {
			b.moveTo(StateOpen)
		}
	}
}

// State returns the current state without advancing it.
func (b *Breaker) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.state
}

// Snapshot returns the current state, streak and the time the circuit last opened.
func (b *Breaker) Snapshot() BreakerSnapshot {
	b.mu.Lock()
	defer b.mu.Unlock()

	return BreakerSnapshot{State: b.state, Streak: b.streak, OpenedAt: b.openedAt}
}

// moveTo must be called with mu held.
func (b *Breaker) moveTo(next State) {
	if b.state == next {
		return
	}

	prev := b.state
	b.state = next
	b.streak = 0
	b.probes = 0

	if next == StateOpen {
		b.openedAt = b.clock()
	}

	for _, fn := range b.watchers {
		fn(next)
	}

	for _, fn := range b.listeners {
		go fn(prev, next)
	}
}
