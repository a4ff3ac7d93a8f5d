package services

import (
	"context"
	"fmt"
	"log/slog"
	"scrapbook/domain"
	"scrapbook/errors"
	"scrapbook/mocks"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func signedIn(ctrl *gomock.Controller, uid string) *mocks.MockISessionTracker {
	session := mocks.NewMockISessionTracker(ctrl)
	session.EXPECT().Require().Return(domain.Identity{ID: uid, Email: uid + "@example.com"}, nil).AnyTimes()
	return session
}

func signedOut(ctrl *gomock.Controller) *mocks.MockISessionTracker {
	session := mocks.NewMockISessionTracker(ctrl)
	session.EXPECT().Require().Return(domain.Identity{}, errors.ErrUnauthenticated).AnyTimes()
	return session
}

func profileDoc(uid, email, displayName string) domain.Document {
	return domain.Document{ID: uid, Fields: domain.Fields{
		domain.FieldUID:         uid,
		domain.FieldEmail:       email,
		domain.FieldDisplayName: displayName,
	}}
}

func TestFriendService_Without_Identity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockIDocumentStore(ctrl)
	svc := NewFriendService(store, signedOut(ctrl), logs.GetLoggerFromLevel(slog.LevelDebug))
	ctx := context.Background()

	// Store should NEVER be called
	store.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	store.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	store.EXPECT().CreateWithID(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	store.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	store.EXPECT().Delete(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	store.EXPECT().Subscribe(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	t.Run("addFriend fails unauthenticated", func(t *testing.T) {
		_, err := svc.AddFriend(ctx, "u1", "bob@example.com")
		require.ErrorIs(t, err, errors.ErrUnauthenticated)
	})

	t.Run("toggleFavorite fails unauthenticated", func(t *testing.T) {
		_, err := svc.ToggleFavorite(ctx, "u1", "u2")
		require.ErrorIs(t, err, errors.ErrUnauthenticated)
	})

	t.Run("other operations fail unauthenticated", func(t *testing.T) {
		req := require.New(t)
		_, err := svc.FindUserByEmail(ctx, "bob@example.com")
		req.ErrorIs(err, errors.ErrUnauthenticated)
		_, err = svc.ListFriends(ctx, "u1", ListFriendsOptions{})
		req.ErrorIs(err, errors.ErrUnauthenticated)
		req.ErrorIs(svc.RemoveFriend(ctx, "u1", "u2"), errors.ErrUnauthenticated)
		_, err = svc.WatchFriends(ctx, "u1", ListFriendsOptions{})
		req.ErrorIs(err, errors.ErrUnauthenticated)
	})
}

func TestFriendService_Acting_For_Someone_Else(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockIDocumentStore(ctrl)
	svc := NewFriendService(store, signedIn(ctrl, "u1"), logs.GetLoggerFromLevel(slog.LevelDebug))
	store.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	store.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.AddFriend(context.Background(), "u2", "bob@example.com")

	require.ErrorIs(t, err, errors.ErrPermissionDenied)
}

func TestFriendService_AddFriend(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockIDocumentStore(ctrl)
	svc := NewFriendService(store, signedIn(ctrl, "u1"), logs.GetLoggerFromLevel(slog.LevelDebug))
	ctx := context.Background()
	friends := domain.FriendsCollection("u1")

	t.Run("should fail with NotFound when no profile has the email", func(t *testing.T) {
		req := require.New(t)
		store.EXPECT().List(ctx, domain.CollectionUsers, gomock.Any()).Return(nil, nil).Times(1)
		store.EXPECT().CreateWithID(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := svc.AddFriend(ctx, "u1", "ghost@example.com")

		req.ErrorIs(err, errors.ErrNotFound)
	})

	t.Run("should fail with AmbiguousResult when several profiles share the email", func(t *testing.T) {
		req := require.New(t)
		store.EXPECT().List(ctx, domain.CollectionUsers, gomock.Any()).Return([]domain.Document{
			profileDoc("u2", "bob@example.com", ""),
			profileDoc("u3", "bob@example.com", ""),
		}, nil).Times(1)

		_, err := svc.AddFriend(ctx, "u1", "bob@example.com")

		req.ErrorIs(err, errors.ErrAmbiguousResult)
	})

	t.Run("should refuse to befriend oneself", func(t *testing.T) {
		req := require.New(t)
		store.EXPECT().List(ctx, domain.CollectionUsers, gomock.Any()).
			Return([]domain.Document{profileDoc("u1", "u1@example.com", "")}, nil).Times(1)
		store.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := svc.AddFriend(ctx, "u1", "U1@example.com")

		req.ErrorIs(err, errors.ErrSelfReference)
	})

	t.Run("should create the edge with favorite false", func(t *testing.T) {
		req := require.New(t)
		stored := domain.Document{ID: "u2", Fields: domain.Fields{
			domain.FieldTargetID:    "u2",
			domain.FieldEmail:       "bob@example.com",
			domain.FieldDisplayName: "Bob",
			domain.FieldFavorite:    false,
		}}
		gomock.InOrder(
			store.EXPECT().List(ctx, domain.CollectionUsers, gomock.Any()).
				Return([]domain.Document{profileDoc("u2", "bob@example.com", "Bob")}, nil),
			store.EXPECT().Get(ctx, friends, "u2").Return(domain.Document{}, errors.ErrNotFound),
			store.EXPECT().CreateWithID(ctx, friends, "u2", domain.Fields{
				domain.FieldTargetID:    "u2",
				domain.FieldEmail:       "bob@example.com",
				domain.FieldDisplayName: "Bob",
				domain.FieldFavorite:    false,
			}).Return(nil),
			store.EXPECT().Get(ctx, friends, "u2").Return(stored, nil),
		)

		edge, err := svc.AddFriend(ctx, "u1", " Bob@Example.com ")

		req.NoError(err)
		req.Equal("u1", edge.OwnerID)
		req.Equal("u2", edge.TargetID)
		req.Equal("Bob", edge.Label())
		req.False(edge.Favorite)
	})

	t.Run("should propagate store failures", func(t *testing.T) {
		req := require.New(t)
		store.EXPECT().List(ctx, domain.CollectionUsers, gomock.Any()).
			Return(nil, fmt.Errorf("%w: backend down", errors.ErrQuery))

		_, err := svc.AddFriend(ctx, "u1", "bob@example.com")

		req.ErrorIs(err, errors.ErrQuery)
	})
}

func TestFriendService_ToggleFavorite(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockIDocumentStore(ctrl)
	svc := NewFriendService(store, signedIn(ctrl, "u1"), logs.GetLoggerFromLevel(slog.LevelDebug))
	ctx := context.Background()
	friends := domain.FriendsCollection("u1")

	t.Run("should return the stored value, not the requested one", func(t *testing.T) {
		req := require.New(t)
		// A concurrent toggle lands between the update and the read back
		gomock.InOrder(
			store.EXPECT().Get(ctx, friends, "u2").Return(domain.Document{ID: "u2", Fields: domain.Fields{domain.FieldFavorite: false}}, nil),
			store.EXPECT().Update(ctx, friends, "u2", domain.Fields{domain.FieldFavorite: true}).Return(nil),
			store.EXPECT().Get(ctx, friends, "u2").Return(domain.Document{ID: "u2", Fields: domain.Fields{domain.FieldFavorite: false}}, nil),
		)

		edge, err := svc.ToggleFavorite(ctx, "u1", "u2")

		req.NoError(err)
		req.False(edge.Favorite)
	})

	t.Run("should fail with NotFound on a missing edge", func(t *testing.T) {
		req := require.New(t)
		store.EXPECT().Get(ctx, friends, "u9").Return(domain.Document{}, errors.ErrNotFound)
		store.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := svc.ToggleFavorite(ctx, "u1", "u9")

		req.ErrorIs(err, errors.ErrNotFound)
	})

	t.Run("should validate the edge id", func(t *testing.T) {
		_, err := svc.ToggleFavorite(ctx, "u1", " ")
		require.ErrorIs(t, err, errors.ErrValidation)
	})
}

func TestFriendService_ListFriends_Favorites_Only(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockIDocumentStore(ctrl)
	svc := NewFriendService(store, signedIn(ctrl, "u1"), logs.GetLoggerFromLevel(slog.LevelDebug))
	ctx := context.Background()

	store.EXPECT().
		List(ctx, domain.FriendsCollection("u1"), domain.NewQuery().Where(domain.FieldFavorite, domain.OpEqual, true)).
		Return([]domain.Document{{ID: "u2", Fields: domain.Fields{domain.FieldEmail: "bob@example.com", domain.FieldFavorite: true}}}, nil)

	edges, err := svc.ListFriends(ctx, "u1", ListFriendsOptions{FavoritesOnly: true})

	req.NoError(err)
	req.Len(edges, 1)
	req.Equal("bob@example.com", edges[0].Label())
	req.True(edges[0].Favorite)
}
