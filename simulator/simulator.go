// Package simulator plays a scripted, time-paced log for a tool without
// executing anything.
//
// At most one run is active. Starting a run while another is in flight
// cancels the old one at its next suspension point and replaces the shared
// session; the old run's event channel is closed without a final event.
package simulator

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/e-ogugua/devflow-cli/model"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
)

// Event is emitted for every visible change to the session log.
type Event struct {
	Session model.RunSession
	// Line is the newest line only. The first event of a run appends the
	// command echo and "Initializing..." together; use Added to see both.
	Line  string
	Final bool
}

// Added returns the lines this event appended to the log.
func (e Event) Added() []string {
	if e.Session.Step == 0 {
		return e.Session.Lines()
	}
	return []string{e.Line}
}

type Option func(*Simulator)

func WithDelay(d time.Duration) Option {
	return func(s *Simulator) {
		if d > 0 {
			s.delay = d
		}
	}
}

// WithClock replaces the real clock, mostly so tests can use a fake one.
func WithClock(c clockwork.Clock) Option {
	return func(s *Simulator) { s.clock = c }
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Simulator) { s.logger = l }
}

// WithIDs replaces the session id generator.
func WithIDs(next func() string) Option {
	return func(s *Simulator) { s.newID = next }
}

type Simulator struct {
	delay  time.Duration
	clock  clockwork.Clock
	logger *slog.Logger
	newID  func() string

	mu      sync.Mutex
	current model.RunSession
	cancel  context.CancelFunc
}

func New(opts ...Option) *Simulator {
	s := &Simulator{
		delay:  DefaultDelay,
		clock:  clockwork.NewRealClock(),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Delay returns the pause used before each step.
func (s *Simulator) Delay() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.delay
}

// SetDelay changes the pacing of runs started after the call.
func (s *Simulator) SetDelay(d time.Duration) {
	if d <= 0 {
		return
	}
	s.mu.Lock()
	s.delay = d
	s.mu.Unlock()
}

// Start begins a run of tool and returns its event stream. The first event
// is delivered immediately and carries the command echo and the
// initializing line. The channel is closed after the final event, or early
// if the run is stopped, superseded or ctx is done.
func (s *Simulator) Start(ctx context.Context, tool model.Tool) <-chan Event {
	runCtx, cancel := context.WithCancel(ctx)

	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	if s.current.Running() {
		s.logger.Info("run superseded", "run", s.current.ID, "tool", s.current.Tool.ID, "step", s.current.Step)
	}
	sess := model.Begin(s.newID(), tool, s.clock.Now())
	s.current = sess
	s.cancel = cancel
	steps := Script(tool, s.delay)
	s.mu.Unlock()

	s.logger.Info("run started", "run", sess.ID, "tool", tool.ID, "steps", len(steps))

	events := make(chan Event, len(steps)+1)
	events <- Event{Session: sess, Line: sess.Last()}
	go s.run(runCtx, cancel, sess.ID, steps, events)
	return events
}

func (s *Simulator) run(ctx context.Context, cancel context.CancelFunc, id string, steps []Step, events chan<- Event) {
	defer close(events)
	defer cancel()

	for i, step := range steps {
		select {
		case <-ctx.Done():
			s.abandon(id)
			return
		case <-s.clock.After(step.Delay):
		}
		if ctx.Err() != nil {
			s.abandon(id)
			return
		}

		final := i == len(steps)-1
		sess, ok := s.apply(id, step.Line, final)
		if !ok {
			return
		}
		events <- Event{Session: sess, Line: step.Line, Final: final}
	}
}

// apply appends line to the shared session if run id still owns it.
func (s *Simulator) apply(id, line string, final bool) (model.RunSession, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current.ID != id || !s.current.Running() {
		return model.RunSession{}, false
	}
	if final {
		s.current = s.current.Complete(line, s.clock.Now())
		s.cancel = nil
		s.logger.Info("run completed", "run", id, "tool", s.current.Tool.ID,
			"elapsed", s.current.FinishedAt.Sub(s.current.StartedAt))
	} else {
		s.current = s.current.Append(line)
		s.logger.Debug("run step", "run", id, "step", s.current.Step, "line", line)
	}
	return s.current, true
}

// abandon marks run id cancelled if it still owns the shared session.
func (s *Simulator) abandon(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current.ID != id || !s.current.Running() {
		return
	}
	s.current = s.current.Cancel(s.clock.Now())
	s.cancel = nil
	s.logger.Info("run cancelled", "run", id, "step", s.current.Step)
}

// Stop cancels the active run, if any.
func (s *Simulator) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	if s.current.Running() {
		s.current = s.current.Cancel(s.clock.Now())
		s.logger.Info("run stopped", "run", s.current.ID, "step", s.current.Step)
	}
}

// Snapshot returns the current session. The zero value means no run has
// started yet.
func (s *Simulator) Snapshot() model.RunSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

func (s *Simulator) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current.Running()
}
