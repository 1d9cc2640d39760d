package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/somosintegros/diagnostico/internal/lead"
)

// Submitter posts a completed lead to the ingestion endpoint.
type Submitter interface {
	Submit(ctx context.Context, s lead.Submission) error
}

// Runner owns one machine state and applies events on a single goroutine,
// executing the effects Apply requests. Timers come back through the same
// event channel, so there is no shared mutable state beyond the snapshot
// lock.
type Runner struct {
	machine   Machine
	submitter Submitter
	logger    *slog.Logger

	events chan Event
	done   chan struct{}

	mu    sync.Mutex
	state State
}

// NewRunner creates a stopped runner at a fresh intro state.
func NewRunner(m Machine, submitter Submitter, logger *slog.Logger) *Runner {
	return &Runner{
		machine:   m,
		submitter: submitter,
		logger:    logger,
		events:    make(chan Event, 16),
		done:      make(chan struct{}),
		state:     NewState(),
	}
}

// Start begins the event loop. It returns once the loop goroutine is
// running; Stop or context cancellation ends it.
func (r *Runner) Start(ctx context.Context) {
	go r.loop(ctx)
}

// Stop ends the event loop.
func (r *Runner) Stop() {
	close(r.done)
}

// Dispatch feeds an event into the loop. Events dispatched after Stop are
// dropped.
func (r *Runner) Dispatch(ev Event) {
	select {
	case r.events <- ev:
	case <-r.done:
	}
}

// State returns a snapshot of the current state.
func (r *Runner) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

func (r *Runner) loop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-r.done:
			return
		case ev := <-r.events:
			r.mu.Lock()
			next, effects := r.machine.Apply(r.state, ev)
			r.state = next
			r.mu.Unlock()
			for _, eff := range effects {
				r.run(ctx, eff)
			}
		}
	}
}

func (r *Runner) run(ctx context.Context, eff Effect) {
	switch eff := eff.(type) {
	case Schedule:
		ev := eff.Event
		time.AfterFunc(eff.After, func() { r.Dispatch(ev) })
	case SubmitLead:
		// Fire and forget: failure is logged and the flow proceeds to the
		// result either way.
		go func(sub lead.Submission) {
			if r.submitter != nil {
				if err := r.submitter.Submit(ctx, sub); err != nil {
					r.logger.Warn("lead submission failed", "error", err)
				}
			}
			r.Dispatch(SubmitFinished{})
		}(eff.Submission)
	}
}
