package storage

import (
	"context"
	"log/slog"
	"scrapbook/contract"
	"scrapbook/domain"
	"scrapbook/errors"
	"scrapbook/mocks"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newStore(t *testing.T, opts ...Option) *DocumentStore {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions("").WithInMemory(true).WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	store := NewDocumentStore(db, logs.GetLoggerFromLevel(slog.LevelDebug), opts...)
	t.Cleanup(func() {
		store.Close()
		_ = db.Close()
	})
	return store
}

func next(t *testing.T, sub contract.ISubscription) domain.Snapshot {
	t.Helper()
	select {
	case snapshot, ok := <-sub.C():
		require.True(t, ok, "subscription ended")
		return snapshot
	case <-time.After(2 * time.Second):
		require.FailNow(t, "no snapshot received")
	}
	return domain.Snapshot{}
}

func nothing(t *testing.T, sub contract.ISubscription) {
	t.Helper()
	select {
	case snapshot, ok := <-sub.C():
		if ok {
			require.FailNow(t, "unexpected snapshot", "%d documents", len(snapshot.Documents))
		}
	case <-time.After(150 * time.Millisecond):
	}
}

func TestDocumentStore_Create_And_Get_Round_Trip(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	store := newStore(t)
	at := time.Date(2026, 3, 1, 10, 0, 0, 123, time.UTC)

	// Given a document holding every supported kind of value
	id, err := store.Create(ctx, "messages", domain.Fields{
		"message":  "hello",
		"read":     false,
		"count":    3,
		"ratio":    0.5,
		"sentAt":   at,
		"tags":     []string{"a", "b"},
		"metadata": map[string]any{"client": "cli", "at": at},
		"missing":  nil,
	})
	req.NoError(err)
	req.NotEmpty(id)

	// When it is read back
	doc, err := store.Get(ctx, "messages", id)

	// Then values come back with their kind
	req.NoError(err)
	req.Equal(id, doc.ID)
	req.Equal("hello", doc.String("message"))
	req.Equal(false, doc.Fields["read"])
	req.Equal(int64(3), doc.Fields["count"])
	req.Equal(0.5, doc.Fields["ratio"])
	req.True(at.Equal(doc.Time("sentAt")))
	req.Equal([]any{"a", "b"}, doc.Fields["tags"])
	metadata, ok := doc.Fields["metadata"].(map[string]any)
	req.True(ok)
	req.Equal("cli", metadata["client"])
	req.True(at.Equal(metadata["at"].(time.Time)))
	req.Nil(doc.Fields["missing"])
	req.False(doc.CreatedAt.IsZero())
	req.Equal(doc.CreatedAt, doc.UpdatedAt)
}

func TestDocumentStore_Get_Missing_Document(t *testing.T) {
	req := require.New(t)
	store := newStore(t)

	_, err := store.Get(context.Background(), "users", "nobody")

	req.ErrorIs(err, errors.ErrNotFound)
}

func TestDocumentStore_CreateWithID_Refuses_Duplicates(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	store := newStore(t)

	req.NoError(store.CreateWithID(ctx, "credentials", "a@x.com", domain.Fields{"uid": "u1"}))
	err := store.CreateWithID(ctx, "credentials", "a@x.com", domain.Fields{"uid": "u2"})

	req.ErrorIs(err, errors.ErrAlreadyExists)
	doc, err := store.Get(ctx, "credentials", "a@x.com")
	req.NoError(err)
	req.Equal("u1", doc.String("uid"))
}

func TestDocumentStore_Set_Merges_And_Creates(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	store := newStore(t)

	// Given no profile yet, Set creates it
	req.NoError(store.Set(ctx, "users", "u1", domain.Fields{"email": "u1@x.com", "nickname": "one"}))
	created, err := store.Get(ctx, "users", "u1")
	req.NoError(err)

	// When only the nickname is set again
	req.NoError(store.Set(ctx, "users", "u1", domain.Fields{"nickname": "uno"}))

	// Then other fields and the creation time are kept
	merged, err := store.Get(ctx, "users", "u1")
	req.NoError(err)
	req.Equal("u1@x.com", merged.String("email"))
	req.Equal("uno", merged.String("nickname"))
	req.Equal(created.CreatedAt, merged.CreatedAt)
	req.True(merged.UpdatedAt.After(created.UpdatedAt))
}

func TestDocumentStore_Update(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	store := newStore(t)

	err := store.Update(ctx, "users/u1/friends", "u2", domain.Fields{"favorite": true})
	req.ErrorIs(err, errors.ErrNotFound)

	req.NoError(store.CreateWithID(ctx, "users/u1/friends", "u2", domain.Fields{"email": "u2@x.com", "favorite": false}))
	req.NoError(store.Update(ctx, "users/u1/friends", "u2", domain.Fields{"favorite": true}))

	doc, err := store.Get(ctx, "users/u1/friends", "u2")
	req.NoError(err)
	req.True(doc.Bool("favorite"))
	req.Equal("u2@x.com", doc.String("email"))
}

func TestDocumentStore_Delete(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	store := newStore(t)
	id, err := store.Create(ctx, "messages", domain.Fields{"message": "bye"})
	req.NoError(err)

	req.NoError(store.Delete(ctx, "messages", id))
	_, err = store.Get(ctx, "messages", id)
	req.ErrorIs(err, errors.ErrNotFound)

	// Deleting twice is fine
	req.NoError(store.Delete(ctx, "messages", id))
}

func TestDocumentStore_List_Evaluates_Query(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	store := newStore(t)
	for _, body := range []string{"first", "second", "third"} {
		_, err := store.Create(ctx, "messages", domain.Fields{"toUserId": "u1", "message": body})
		req.NoError(err)
	}
	_, err := store.Create(ctx, "messages", domain.Fields{"toUserId": "u2", "message": "other"})
	req.NoError(err)

	docs, err := store.List(ctx, "messages", domain.NewQuery().
		Where("toUserId", domain.OpEqual, "u1").
		OrderBy(domain.FieldCreatedAt, domain.Descending).
		Limit(2))

	req.NoError(err)
	req.Len(docs, 2)
	req.Equal("third", docs[0].String("message"))
	req.Equal("second", docs[1].String("message"))
}

func TestDocumentStore_List_Rejects_Invalid_Query(t *testing.T) {
	req := require.New(t)
	store := newStore(t)

	_, err := store.List(context.Background(), "messages", domain.NewQuery().
		Where("a", domain.OpGreaterThan, 1).
		OrderBy("b", domain.Ascending))

	req.ErrorIs(err, errors.ErrQuery)
}

func TestDocumentStore_Collections_Are_Isolated(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	store := newStore(t)
	req.NoError(store.Set(ctx, "users", "u1", domain.Fields{"email": "u1@x.com"}))
	req.NoError(store.Set(ctx, "users/u1/friends", "u2", domain.Fields{"email": "u2@x.com"}))

	users, err := store.List(ctx, "users", domain.NewQuery())
	req.NoError(err)
	friends, err := store.List(ctx, "users/u1/friends", domain.NewQuery())
	req.NoError(err)

	req.Len(users, 1)
	req.Equal("u1", users[0].ID)
	req.Len(friends, 1)
	req.Equal("u2", friends[0].ID)
}

func TestDocumentStore_Server_Timestamps_Are_Strictly_Increasing(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	frozen := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	store := newStore(t, WithClock(func() time.Time { return frozen }))

	// Given a wall clock that never moves
	for i := 0; i < 3; i++ {
		_, err := store.Create(ctx, "messages", domain.Fields{"toUserId": "u1", "n": i})
		req.NoError(err)
	}

	// Then creation order is still recoverable
	docs, err := store.List(ctx, "messages", domain.NewQuery().OrderBy(domain.FieldCreatedAt, domain.Ascending))
	req.NoError(err)
	req.Len(docs, 3)
	for i, d := range docs {
		req.Equal(int64(i), d.Fields["n"])
		if i > 0 {
			req.True(d.CreatedAt.After(docs[i-1].CreatedAt))
		}
	}
}

func TestDocumentStore_Rejects_Invalid_Writes(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)

	tests := []struct {
		name       string
		collection string
		id         string
		fields     domain.Fields
	}{
		{"reserved field", "users", "u1", domain.Fields{domain.FieldCreatedAt: time.Now()}},
		{"separator in collection", "users#x", "u1", domain.Fields{"a": 1}},
		{"empty collection", "", "u1", domain.Fields{"a": 1}},
		{"empty id", "users", " ", domain.Fields{"a": 1}},
		{"slash in id", "users", "u1/friends", domain.Fields{"a": 1}},
		{"unsupported value", "users", "u1", domain.Fields{"ch": make(chan int)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := store.Set(ctx, tt.collection, tt.id, tt.fields)
			require.ErrorIs(t, err, errors.ErrValidation)
		})
	}
}

func TestDocumentStore_Write_With_Cancelled_Context(t *testing.T) {
	req := require.New(t)
	store := newStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := store.Create(ctx, "messages", domain.Fields{"message": "late"})

	req.ErrorIs(err, errors.ErrWrite)
}

func TestDocumentStore_Publishes_Committed_Writes_Only(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	registry := mocks.NewMockIChangeRegistry(ctrl)
	ctx := context.Background()
	store := newStore(t, WithRegistry(registry))

	// Given the registry expects exactly one change, then the shutdown
	registry.EXPECT().
		Publish(gomock.Cond(func(change domain.Change) bool {
			return change.Collection == "users" && change.DocumentID == "u1"
		})).
		Times(1)
	registry.EXPECT().CloseAll().Times(1)

	// When one write commits and two are refused
	req.NoError(store.Set(ctx, "users", "u1", domain.Fields{"nickname": "one"}))
	req.ErrorIs(store.Update(ctx, "users", "u2", domain.Fields{"nickname": "two"}), errors.ErrNotFound)
	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err := store.Create(cancelled, "users", domain.Fields{"nickname": "three"})

	// Then only the committed one reached the registry
	req.ErrorIs(err, errors.ErrWrite)
}
