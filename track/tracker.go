package track

import (
	stderrors "errors"
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/wippyai/os-handle/errors"
)

// Event types for handle lifecycle notifications.
type EventType uint8

const (
	EventAcquired EventType = iota
	EventReleased
	EventDetached
)

// Event represents a handle lifecycle event.
type Event struct {
	Raw      any
	Category string
	Type     EventType
}

// Observer receives notifications about handle lifecycle events.
type Observer interface {
	OnHandleEvent(Event)
}

// Stat is a point-in-time view of one category's accounting.
type Stat struct {
	Category string
	Live     int
	Total    uint64
	Released uint64
}

type stat struct {
	live     int
	total    uint64
	released uint64
}

// Tracker counts live handles per category and notifies observers of
// lifecycle events. It observes; it never owns or releases anything.
type Tracker struct {
	stats     map[string]*stat
	observers []Observer
	logger    *zap.Logger
	mu        sync.Mutex
	obsMu     sync.RWMutex
	closed    bool
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithLogger sets the tracker's logger. The package logger is used otherwise.
func WithLogger(l *zap.Logger) Option {
	return func(t *Tracker) {
		t.logger = l
	}
}

// WithObserver subscribes an observer at construction.
func WithObserver(o Observer) Option {
	return func(t *Tracker) {
		t.observers = append(t.observers, o)
	}
}

// New creates a tracker.
func New(opts ...Option) *Tracker {
	t := &Tracker{
		stats: make(map[string]*stat),
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.logger == nil {
		t.logger = Logger()
	}
	return t
}

// Acquired records that a handle of the given category came under ownership.
func (t *Tracker) Acquired(category string, raw any) {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return
	}
	s := t.stat(category)
	s.live++
	s.total++
	t.mu.Unlock()

	t.logger.Debug("handle acquired", zap.String("category", category))
	t.notify(Event{Type: EventAcquired, Category: category, Raw: raw})
}

// Released records that a handle of the given category was released.
func (t *Tracker) Released(category string, raw any) {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return
	}
	s := t.stat(category)
	s.live--
	s.released++
	t.mu.Unlock()

	t.logger.Debug("handle released", zap.String("category", category))
	t.notify(Event{Type: EventReleased, Category: category, Raw: raw})
}

// Detached records that ownership left the tracked scope without a release.
// The live count drops; the handle is now someone else's responsibility.
func (t *Tracker) Detached(category string, raw any) {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return
	}
	s := t.stat(category)
	s.live--
	t.mu.Unlock()

	t.notify(Event{Type: EventDetached, Category: category, Raw: raw})
}

// stat returns the category's record. Caller holds mu.
func (t *Tracker) stat(category string) *stat {
	s, ok := t.stats[category]
	if !ok {
		s = &stat{}
		t.stats[category] = s
	}
	return s
}

// Subscribe adds an observer for lifecycle events.
func (t *Tracker) Subscribe(o Observer) {
	t.obsMu.Lock()
	defer t.obsMu.Unlock()
	t.observers = append(t.observers, o)
}

// Unsubscribe removes an observer.
func (t *Tracker) Unsubscribe(o Observer) {
	t.obsMu.Lock()
	defer t.obsMu.Unlock()
	for i, obs := range t.observers {
		if obs == o {
			t.observers = append(t.observers[:i], t.observers[i+1:]...)
			return
		}
	}
}

// Stats returns a snapshot of all categories, sorted by category name.
func (t *Tracker) Stats() []Stat {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]Stat, 0, len(t.stats))
	for name, s := range t.stats {
		out = append(out, Stat{
			Category: name,
			Live:     s.live,
			Total:    s.total,
			Released: s.released,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Category < out[j].Category })
	return out
}

// Live returns the number of live handles across all categories.
func (t *Tracker) Live() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	n := 0
	for _, s := range t.stats {
		n += s.live
	}
	return n
}

// Leaks returns the categories with live handles remaining.
func (t *Tracker) Leaks() []Stat {
	var out []Stat
	for _, s := range t.Stats() {
		if s.Live > 0 {
			out = append(out, s)
		}
	}
	return out
}

// Close stops accepting events. If live handles remain, they are logged and
// reported as a leak error per category.
func (t *Tracker) Close() error {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return nil
	}
	t.closed = true

	var errs []error
	for name, s := range t.stats {
		if s.live > 0 {
			errs = append(errs, errors.Leak(name, s.live))
		}
	}
	t.mu.Unlock()

	for _, err := range errs {
		t.logger.Warn("handles leaked", zap.Error(err))
	}
	return stderrors.Join(errs...)
}

func (t *Tracker) notify(e Event) {
	t.obsMu.RLock()
	defer t.obsMu.RUnlock()
	for _, o := range t.observers {
		o.OnHandleEvent(e)
	}
}
