// Package session keeps the process-wide view of who is signed in.
//
// The Tracker mirrors the authentication provider: it is the single place
// gated operations read the current identity from, and it fans provider
// changes out to any number of listeners.
package session

import (
	"log/slog"
	"scrapbook/contract"
	"scrapbook/domain"
	"scrapbook/errors"
	"slices"
	"sync"

	"github.com/samber/lo"
)

// Tracker is safe for concurrent use. Listeners are called one at a time,
// in the order the provider reported the changes, and must not register
// other listeners from within the callback.
type Tracker struct {
	log *slog.Logger

	notifyMu  sync.Mutex
	mu        sync.RWMutex
	identity  *domain.Identity
	listeners map[int]func(domain.SessionEvent)
	nextID    int

	stop func()
}

var _ contract.ISessionTracker = (*Tracker)(nil)

// NewTracker starts observing the provider. The provider reports its current
// state on registration so the tracker is up to date when this returns.
func NewTracker(provider contract.IAuthProvider, log *slog.Logger) *Tracker {
	t := &Tracker{
		log:       log,
		listeners: make(map[int]func(domain.SessionEvent)),
	}
	t.stop = provider.ObserveState(t.onProviderEvent)
	return t
}

func (t *Tracker) Current() (domain.Identity, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.identity == nil {
		return domain.Identity{}, false
	}
	return *t.identity, true
}

// Require returns the signed-in identity or ErrUnauthenticated.
func (t *Tracker) Require() (domain.Identity, error) {
	identity, ok := t.Current()
	if !ok {
		return domain.Identity{}, errors.ErrUnauthenticated
	}
	return identity, nil
}

// OnChange registers listener and calls it immediately with the current state.
// The returned function unregisters it, calling it again is a no-op.
func (t *Tracker) OnChange(listener func(domain.SessionEvent)) func() {
	t.notifyMu.Lock()
	t.mu.Lock()
	id := t.nextID
	t.nextID++
	t.listeners[id] = listener
	event := t.event()
	t.mu.Unlock()
	listener(event)
	t.notifyMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			t.mu.Lock()
			defer t.mu.Unlock()
			delete(t.listeners, id)
		})
	}
}

// Close stops observing the provider and drops every listener.
func (t *Tracker) Close() {
	if t.stop != nil {
		t.stop()
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.listeners = make(map[int]func(domain.SessionEvent))
}

func (t *Tracker) onProviderEvent(event domain.SessionEvent) {
	t.notifyMu.Lock()
	defer t.notifyMu.Unlock()

	t.mu.Lock()
	if event.Err != nil || event.Identity == nil {
		t.identity = nil
	} else {
		t.identity = lo.ToPtr(*event.Identity)
	}
	ids := make([]int, 0, len(t.listeners))
	for id := range t.listeners {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	current := t.event()
	t.mu.Unlock()

	if event.Err != nil {
		t.log.Warn("Authentication provider reported an error", "error", event.Err)
		current.Err = event.Err
	} else if current.Identity != nil {
		t.log.Debug("Session changed", "uid", current.Identity.ID)
	} else {
		t.log.Debug("Session cleared")
	}

	for _, id := range ids {
		listener, ok := t.listener(id)
		if !ok {
			// Unregistered while earlier listeners were running.
			continue
		}
		e := current
		if e.Identity != nil {
			e.Identity = lo.ToPtr(*e.Identity)
		}
		listener(e)
	}
}

func (t *Tracker) listener(id int) (func(domain.SessionEvent), bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	listener, ok := t.listeners[id]
	return listener, ok
}

// event must be called with mu held.
func (t *Tracker) event() domain.SessionEvent {
	if t.identity == nil {
		return domain.SessionEvent{}
	}
	return domain.SessionEvent{Identity: lo.ToPtr(*t.identity)}
}
