package runtime

import (
	"log/slog"
	"scrapbook/contract"
	"scrapbook/domain"
	"sync"
)

type Set map[string]struct{}

// Registry routes committed changes to the live queries watching a collection.
// Publishing is best effort: listeners are expected to coalesce notifications
// and never block the writer.
type Registry struct {
	log       *slog.Logger
	mu        sync.RWMutex
	listeners map[string]contract.IChangeListener // map listener -> live query
	watchers  map[string]Set                      // map collection to listeners
}

var _ contract.IChangeRegistry = (*Registry)(nil)

func NewRegistry(log *slog.Logger) *Registry {
	return &Registry{
		log:       log,
		listeners: make(map[string]contract.IChangeListener),
		watchers:  make(map[string]Set),
	}
}

// ListenersFor returns the listeners currently watching a collection.
// Returns nil if nobody watches it.
func (r *Registry) ListenersFor(collection string) []contract.IChangeListener {
	r.mu.RLock()
	defer r.mu.RUnlock()

	members, ok := r.watchers[collection]
	if !ok {
		return nil
	}
	var active []contract.IChangeListener
	for listenerID := range members {
		if listener, exists := r.listeners[listenerID]; exists {
			active = append(active, listener)
		}
	}
	return active
}

// Subscribe registers a listener on a collection, the collection entry is created on the fly.
func (r *Registry) Subscribe(listenerID, collection string, listener contract.IChangeListener) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.listeners[listenerID] = listener

	if _, ok := r.watchers[collection]; !ok {
		r.watchers[collection] = make(Set)
	}
	r.watchers[collection][listenerID] = struct{}{}
}

// Unsubscribe is a no-op for unknown listeners. Empty collection sets are removed.
func (r *Registry) Unsubscribe(listenerID, collection string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.listeners, listenerID)

	if members, ok := r.watchers[collection]; ok {
		delete(members, listenerID)
		if len(members) == 0 {
			delete(r.watchers, collection)
		}
	}
}

// Publish notifies every listener of the changed collection.
// Listeners are called outside the lock so they may unsubscribe themselves.
func (r *Registry) Publish(change domain.Change) {
	listeners := r.ListenersFor(change.Collection)
	if len(listeners) == 0 {
		return
	}
	r.log.Debug("Publishing change",
		"collection", change.Collection,
		"document_id", change.DocumentID,
		"listeners", len(listeners))
	for _, listener := range listeners {
		listener.Notify(change)
	}
}

// CloseAll empties the registry and closes every listener it held.
func (r *Registry) CloseAll() {
	r.mu.Lock()
	listeners := make([]contract.IChangeListener, 0, len(r.listeners))
	for _, listener := range r.listeners {
		listeners = append(listeners, listener)
	}
	r.listeners = make(map[string]contract.IChangeListener)
	r.watchers = make(map[string]Set)
	r.mu.Unlock()

	for _, listener := range listeners {
		listener.Close()
	}
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.listeners)
}
