package auth

import (
	"context"
	"log/slog"
	"scrapbook/domain"
	"scrapbook/errors"
	"scrapbook/storage"
	"sync"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

const password = "Correct-Horse-42"

type recorder struct {
	mu     sync.Mutex
	events []domain.SessionEvent
}

func (r *recorder) observe(event domain.SessionEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

func (r *recorder) all() []domain.SessionEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.SessionEvent(nil), r.events...)
}

func newProvider(t *testing.T) (*Provider, *storage.DocumentStore) {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions("").WithInMemory(true).WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	store := storage.NewDocumentStore(db, log)
	t.Cleanup(func() {
		store.Close()
		_ = db.Close()
	})
	tokens := NewTokenIssuer("a-secret-long-enough-for-hs256", time.Hour)
	return NewProvider(store, tokens, log, WithPasswordParams(fastParams)), store
}

func TestProvider_SignUp_Creates_Account_And_Profile(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	provider, store := newProvider(t)

	// When a user signs up with a mixed case email
	session, err := provider.SignUp(ctx, " Alice@Example.com", password)

	// Then the user is signed in
	req.NoError(err)
	req.NotEmpty(session.Identity.ID)
	req.Equal("alice@example.com", session.Identity.Email)
	req.NotEmpty(session.Token)
	current, ok := provider.Current()
	req.True(ok)
	req.Equal(session, current)

	// And the profile can be looked up by email
	profiles, err := store.List(ctx, domain.CollectionUsers, domain.NewQuery().
		Where(domain.FieldEmail, domain.OpEqual, "alice@example.com"))
	req.NoError(err)
	req.Len(profiles, 1)
	req.Equal(session.Identity.ID, profiles[0].ID)
}

func TestProvider_SignUp_Twice_With_Same_Email(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	provider, _ := newProvider(t)
	_, err := provider.SignUp(ctx, "alice@example.com", password)
	req.NoError(err)

	_, err = provider.SignUp(ctx, "ALICE@example.com", "Another-Pass-99")

	req.ErrorIs(err, errors.ErrUserAlreadyExists)
}

func TestProvider_SignUp_Rejects_Weak_Password(t *testing.T) {
	req := require.New(t)
	provider, _ := newProvider(t)

	_, err := provider.SignUp(context.Background(), "alice@example.com", "weakpassword")

	req.ErrorIs(err, errors.ErrInvalidPassword)
	_, ok := provider.Current()
	req.False(ok)
}

func TestProvider_SignIn(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	provider, _ := newProvider(t)
	created, err := provider.SignUp(ctx, "alice@example.com", password)
	req.NoError(err)
	req.NoError(provider.SignOut(ctx))

	// Wrong password and unknown account look the same
	_, err = provider.SignIn(ctx, "alice@example.com", "Wrong-Password-1")
	req.ErrorIs(err, errors.ErrInvalidCredentials)
	_, err = provider.SignIn(ctx, "bob@example.com", password)
	req.ErrorIs(err, errors.ErrInvalidCredentials)

	session, err := provider.SignIn(ctx, "Alice@Example.com", password)
	req.NoError(err)
	req.Equal(created.Identity, session.Identity)
}

func TestProvider_ObserveState(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	provider, _ := newProvider(t)
	rec := &recorder{}

	// Given an observer registered while signed out
	stop := provider.ObserveState(rec.observe)

	// When the user signs up then out
	session, err := provider.SignUp(ctx, "alice@example.com", password)
	req.NoError(err)
	req.NoError(provider.SignOut(ctx))
	// Signing out twice changes nothing
	req.NoError(provider.SignOut(ctx))

	// Then the observer saw absent, present, absent
	events := rec.all()
	req.Len(events, 3)
	req.Nil(events[0].Identity)
	req.Equal(session.Identity, *events[1].Identity)
	req.Nil(events[2].Identity)

	// And nothing after it stopped observing
	stop()
	stop()
	_, err = provider.SignIn(ctx, "alice@example.com", password)
	req.NoError(err)
	req.Len(rec.all(), 3)
}

func TestProvider_Observer_Removed_During_Notification_Is_Skipped(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	provider, _ := newProvider(t)
	second := &recorder{}
	var stopSecond func()

	// Given a first observer that stops the second one on sign in
	provider.ObserveState(func(event domain.SessionEvent) {
		if event.Identity != nil {
			stopSecond()
		}
	})
	stopSecond = provider.ObserveState(second.observe)
	req.Len(second.all(), 1)

	// When alice signs up then out
	_, err := provider.SignUp(ctx, "alice@example.com", password)
	req.NoError(err)
	req.NoError(provider.SignOut(ctx))

	// Then the second observer only got the initial state
	events := second.all()
	req.Len(events, 1)
	req.Nil(events[0].Identity)
}

func TestProvider_Refresh_Only_Notifies_On_Identity_Change(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	provider, store := newProvider(t)
	session, err := provider.SignUp(ctx, "alice@example.com", password)
	req.NoError(err)
	rec := &recorder{}
	provider.ObserveState(rec.observe)

	// Refreshing an unchanged identity is silent
	req.NoError(provider.Refresh(ctx))
	req.Len(rec.all(), 1)

	// When the profile is renamed
	req.NoError(store.Set(ctx, domain.CollectionUsers, session.Identity.ID, domain.Fields{domain.FieldDisplayName: "Alice"}))
	req.NoError(provider.Refresh(ctx))

	// Then observers get the new identity
	events := rec.all()
	req.Len(events, 2)
	req.Equal("Alice", events[1].Identity.DisplayName)
	current, ok := provider.Current()
	req.True(ok)
	req.Equal("Alice", current.Identity.DisplayName)
}

func TestProvider_Refresh_With_Expired_Token_Ends_Session(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	provider, _ := newProvider(t)
	_, err := provider.SignUp(ctx, "alice@example.com", password)
	req.NoError(err)
	rec := &recorder{}
	provider.ObserveState(rec.observe)

	provider.tokens.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	err = provider.Refresh(ctx)

	req.ErrorIs(err, errors.ErrInvalidToken)
	_, ok := provider.Current()
	req.False(ok)
	events := rec.all()
	req.Len(events, 2)
	req.Nil(events[1].Identity)
	req.ErrorIs(events[1].Err, errors.ErrInvalidToken)
}

func TestProvider_Resume(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	provider, _ := newProvider(t)
	created, err := provider.SignUp(ctx, "alice@example.com", password)
	req.NoError(err)
	req.NoError(provider.SignOut(ctx))

	// A token kept from a previous run signs the user back in
	resumed, err := provider.Resume(ctx, created.Token)
	req.NoError(err)
	req.Equal(created.Identity, resumed.Identity)
	current, ok := provider.Current()
	req.True(ok)
	req.Equal(created.Identity.ID, current.Identity.ID)

	// A forged token does not
	req.NoError(provider.SignOut(ctx))
	_, err = provider.Resume(ctx, created.Token+"x")
	req.ErrorIs(err, errors.ErrInvalidToken)
	_, ok = provider.Current()
	req.False(ok)
}
