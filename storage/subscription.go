package storage

import (
	"context"
	"scrapbook/domain"
	"scrapbook/errors"
	"strconv"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// Subscription is a live query backed by the store's change registry.
//
// Notifications only wake the subscription, the result set is then read
// again from the database. Writes landing while a snapshot is being read or
// delivered are folded into the next snapshot, so a subscriber always sees
// states in commit order without ever blocking a writer.
type Subscription struct {
	id         string
	collection string
	documentID string
	query      domain.Query
	store      *DocumentStore

	out  chan domain.Snapshot
	wake chan struct{}
	done chan struct{}

	ctx    context.Context
	cancel context.CancelFunc
	once   sync.Once

	mu  sync.Mutex
	err error
}

func newSubscription(ctx context.Context, store *DocumentStore, collection, documentID string, query domain.Query, buffer int) *Subscription {
	ctx, cancel := context.WithCancel(ctx)
	return &Subscription{
		id:         uuid.NewString(),
		collection: collection,
		documentID: documentID,
		query:      query,
		store:      store,
		out:        make(chan domain.Snapshot, buffer),
		wake:       make(chan struct{}, 1),
		done:       make(chan struct{}),
		ctx:        ctx,
		cancel:     cancel,
	}
}

func (s *Subscription) C() <-chan domain.Snapshot { return s.out }

func (s *Subscription) Done() <-chan struct{} { return s.done }

// Cancel stops the subscription. Safe to call several times and from any goroutine.
func (s *Subscription) Cancel() {
	s.once.Do(func() {
		s.cancel()
		s.store.registry.Unsubscribe(s.id, s.collection)
	})
}

// Err is nil while the subscription runs. Afterwards it is the read error
// that ended it, or ErrSubscriptionClosed.
func (s *Subscription) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	if s.ctx.Err() != nil {
		return errors.ErrSubscriptionClosed
	}
	return nil
}

// Notify implements contract.IChangeListener. It never blocks.
func (s *Subscription) Notify(change domain.Change) {
	if s.documentID != "" && change.DocumentID != s.documentID {
		return
	}
	select {
	case s.wake <- struct{}{}:
	default:
	}
}

// Close implements contract.IChangeListener.
func (s *Subscription) Close() { s.Cancel() }

func (s *Subscription) run() {
	defer close(s.done)
	defer close(s.out)
	defer s.Cancel()

	var last string
	first := true
	for {
		docs, err := s.store.List(s.ctx, s.collection, s.query)
		if err != nil {
			if s.ctx.Err() == nil {
				s.store.log.Error("Subscription read failed", "collection", s.collection, "error", err)
				s.fail(err)
			}
			return
		}
		signature := fingerprint(docs)
		if first || signature != last {
			snapshot := domain.Snapshot{Documents: docs, At: s.store.clock.Now()}
			select {
			case s.out <- snapshot:
				s.store.log.Debug("Snapshot delivered",
					"collection", s.collection,
					"documents", len(docs))
			case <-s.ctx.Done():
				return
			}
			first = false
			last = signature
		}
		select {
		case <-s.wake:
		case <-s.ctx.Done():
			return
		}
	}
}

func (s *Subscription) fail(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

// fingerprint identifies a result set by its ordered ids and update times.
func fingerprint(docs []domain.Document) string {
	var b strings.Builder
	for _, d := range docs {
		b.WriteString(d.ID)
		b.WriteByte('@')
		b.WriteString(strconv.FormatInt(d.UpdatedAt.UnixNano(), 10))
		b.WriteByte(';')
	}
	return b.String()
}
