// Package bridge binds one physical Pro Controller to one virtual Xbox 360
// controller: it drives the vendor handshake, polls and translates input
// reports, and correlates rumble/LED feedback back to the owning session.
package bridge

import (
	"log/slog"
	"sync"

	"github.com/openpad/proconx/xusb"
)

// Handle identifies a registered session. Handles are opaque, never reused
// within a registry, and make removal independent of session identity.
type Handle uint64

// feedbackQueueSize bounds the feedback event queue. The bus side drops
// events rather than block when the queue is full.
const feedbackQueueSize = 64

// entry pairs a session with a snapshot of its target identity taken at
// registration time. The identity is fixed once the target is plugged in, so
// the feedback scan matches against the snapshot and never reads the live
// Target, which Close mutates during unplug.
type entry struct {
	identity xusb.Target
	session  *Session
}

// Registry is the explicitly-owned collection of live sessions. It owns the
// feedback queue: events pushed by the virtual-controller subsystem are
// drained by a single goroutine and applied to the session whose target
// identity matches in full. The mutex is held only for the scan or
// mutation, never across device I/O.
type Registry struct {
	logger *slog.Logger

	mu       sync.Mutex
	sessions map[Handle]entry
	next     Handle

	events chan xusb.Feedback
	done   chan struct{}
	wg     sync.WaitGroup
}

// NewRegistry creates a registry and starts its feedback consumer.
func NewRegistry(logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	r := &Registry{
		logger:   logger,
		sessions: make(map[Handle]entry),
		events:   make(chan xusb.Feedback, feedbackQueueSize),
		done:     make(chan struct{}),
	}
	r.wg.Add(1)
	go r.consume()
	return r
}

// Events returns the queue the virtual-controller subsystem delivers
// feedback on.
func (r *Registry) Events() chan<- xusb.Feedback {
	return r.events
}

// Len returns the number of registered sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// Close stops the feedback consumer. Registered sessions are untouched;
// close them first.
func (r *Registry) Close() {
	close(r.done)
	r.wg.Wait()
}

func (r *Registry) register(s *Session) Handle {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.next++
	h := r.next
	r.sessions[h] = entry{identity: *s.target, session: s}
	return h
}

func (r *Registry) deregister(h Handle) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, h)
}

func (r *Registry) consume() {
	defer r.wg.Done()
	for {
		select {
		case ev := <-r.events:
			r.apply(ev)
		case <-r.done:
			return
		}
	}
}

// apply matches one feedback event to its session by full target identity
// and updates that session's feedback state. The scan compares against the
// identity snapshot taken at registration, not the live Target. No match is
// not an error: the physical controller may have disconnected between the
// driver's bookkeeping and delivery.
func (r *Registry) apply(ev xusb.Feedback) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.sessions {
		if ev.Target.IdentityEquals(e.identity) {
			e.session.setFeedback(ev.LargeMotor, ev.SmallMotor, ev.LEDNumber)
			return
		}
	}
	r.logger.Debug("feedback for unknown target discarded",
		"serial", ev.Target.SerialNo, "state", ev.Target.State)
}
