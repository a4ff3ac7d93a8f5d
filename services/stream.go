package services

import (
	"scrapbook/contract"
	"scrapbook/domain"
	"scrapbook/errors"
	"sync/atomic"

	"github.com/samber/lo"
)

// Stream is a live, typed view over a document subscription.
// It ends when cancelled, when the subscription fails, or as soon as the
// session no longer belongs to the owner it was opened for.
type Stream[T any] struct {
	sub        contract.ISubscription
	out        chan []T
	unregister func()
	revoked    atomic.Bool
}

func newStream[T any](session contract.ISessionTracker, ownerID string, sub contract.ISubscription, convert func(domain.Document) T) *Stream[T] {
	s := &Stream[T]{sub: sub, out: make(chan []T, 1)}
	s.unregister = session.OnChange(func(event domain.SessionEvent) {
		if event.Identity == nil || event.Identity.ID != ownerID {
			s.revoked.Store(true)
			s.sub.Cancel()
		}
	})
	go s.run(convert)
	return s
}

func (s *Stream[T]) C() <-chan []T { return s.out }

// Cancel is idempotent.
func (s *Stream[T]) Cancel() { s.sub.Cancel() }

func (s *Stream[T]) Done() <-chan struct{} { return s.sub.Done() }

// Err is ErrUnauthenticated when the session change ended the stream.
func (s *Stream[T]) Err() error {
	if s.revoked.Load() {
		return errors.ErrUnauthenticated
	}
	return s.sub.Err()
}

func (s *Stream[T]) run(convert func(domain.Document) T) {
	defer close(s.out)
	defer s.unregister()
	for snapshot := range s.sub.C() {
		items := lo.Map(snapshot.Documents, func(doc domain.Document, _ int) T { return convert(doc) })
		select {
		case s.out <- items:
		case <-s.sub.Done():
			return
		}
	}
}
