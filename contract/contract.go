//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"scrapbook/domain"
	"scrapbook/domain/mimetypes"
)

// IDocumentStore is the only way the services touch persisted data.
// Collections are slash separated paths such as "users/{uid}/friends".
type IDocumentStore interface {
	Create(ctx context.Context, collection string, fields domain.Fields) (string, error)
	CreateWithID(ctx context.Context, collection, id string, fields domain.Fields) error
	Set(ctx context.Context, collection, id string, fields domain.Fields) error
	Get(ctx context.Context, collection, id string) (domain.Document, error)
	List(ctx context.Context, collection string, query domain.Query) ([]domain.Document, error)
	Update(ctx context.Context, collection, id string, fields domain.Fields) error
	Delete(ctx context.Context, collection, id string) error
	Subscribe(ctx context.Context, collection string, query domain.Query) (ISubscription, error)
	SubscribeDocument(ctx context.Context, collection, id string) (ISubscription, error)
}

// ISubscription is a live query. The first snapshot is the current state,
// the following ones are only sent when the result set changed.
// C is closed once the subscription ends.
type ISubscription interface {
	C() <-chan domain.Snapshot
	Cancel()
	Done() <-chan struct{}
	Err() error
}

type IChangeListener interface {
	Notify(change domain.Change)
	Close()
}

type IChangeRegistry interface {
	Subscribe(listenerID, collection string, listener IChangeListener)
	Unsubscribe(listenerID, collection string)
	Publish(change domain.Change)
	CloseAll()
}

type IAuthProvider interface {
	SignUp(ctx context.Context, email, password string) (domain.Session, error)
	SignIn(ctx context.Context, email, password string) (domain.Session, error)
	SignOut(ctx context.Context) error
	Refresh(ctx context.Context) error
	Current() (domain.Session, bool)
	ObserveState(observer func(domain.SessionEvent)) func()
}

type ISessionTracker interface {
	Current() (domain.Identity, bool)
	Require() (domain.Identity, error)
	OnChange(listener func(domain.SessionEvent)) func()
}

// IAssetStorage stores binary objects and hands back an opaque reference.
type IAssetStorage interface {
	Upload(ctx context.Context, path string, data []byte, contentType mimetypes.MIME) (string, error)
	ResolveDownloadURL(ctx context.Context, ref string) (string, error)
	Delete(ctx context.Context, ref string) error
}

type IMessageIndex interface {
	Index(ctx context.Context, message domain.Message) error
	Search(ctx context.Context, recipientID, text string, limit int) ([]string, error)
	Close() error
}

// IModerator returns the censored content and the dictionary words it found.
type IModerator interface {
	Censor(content string) (string, []string)
}
