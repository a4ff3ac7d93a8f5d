package services

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"scrapbook/contract"
	"scrapbook/domain"
	"scrapbook/errors"
	"strings"

	"github.com/samber/lo"
)

type ListFriendsOptions struct {
	FavoritesOnly bool
}

// FriendService manages the one-directional friend edges stored under
// "users/{owner}/friends/{target}". Every operation requires the signed-in
// identity to be the owner.
type FriendService struct {
	store   contract.IDocumentStore
	session contract.ISessionTracker
	log     *slog.Logger
}

func NewFriendService(store contract.IDocumentStore, session contract.ISessionTracker, log *slog.Logger) *FriendService {
	return &FriendService{store: store, session: session, log: log}
}

// FindUserByEmail is an exact match on the normalized email.
// More than one profile for an email is a data integrity error.
func (s *FriendService) FindUserByEmail(ctx context.Context, email string) (domain.Identity, error) {
	if _, err := s.session.Require(); err != nil {
		return domain.Identity{}, err
	}
	email = normalizeEmail(email)
	if email == "" {
		return domain.Identity{}, fmt.Errorf("%w: email is required", errors.ErrValidation)
	}
	docs, err := s.store.List(ctx, domain.CollectionUsers, domain.NewQuery().
		Where(domain.FieldEmail, domain.OpEqual, email).
		Limit(2))
	if err != nil {
		return domain.Identity{}, err
	}
	switch len(docs) {
	case 0:
		return domain.Identity{}, fmt.Errorf("%w: no user with email %s", errors.ErrNotFound, email)
	case 1:
		return domain.ProfileFromDocument(docs[0]).Identity(), nil
	default:
		s.log.Error("Several profiles share an email", "email", email, "ids", lo.Map(docs, func(d domain.Document, _ int) string { return d.ID }))
		return domain.Identity{}, fmt.Errorf("%w: several users with email %s", errors.ErrAmbiguousResult, email)
	}
}

// AddFriend upserts the edge keyed by the target id. Adding the same friend
// again refreshes the copied email and display name and keeps the favorite flag.
func (s *FriendService) AddFriend(ctx context.Context, ownerID, email string) (domain.FriendEdge, error) {
	if _, err := requireOwner(s.session, ownerID); err != nil {
		return domain.FriendEdge{}, err
	}
	target, err := s.FindUserByEmail(ctx, email)
	if err != nil {
		return domain.FriendEdge{}, err
	}
	if target.ID == ownerID {
		return domain.FriendEdge{}, errors.ErrSelfReference
	}

	collection := domain.FriendsCollection(ownerID)
	fields := domain.Fields{
		domain.FieldTargetID:    target.ID,
		domain.FieldEmail:       target.Email,
		domain.FieldDisplayName: target.DisplayName,
	}
	_, err = s.store.Get(ctx, collection, target.ID)
	switch {
	case stderrors.Is(err, errors.ErrNotFound):
		err = s.store.CreateWithID(ctx, collection, target.ID, lo.Assign(fields, domain.Fields{domain.FieldFavorite: false}))
		if stderrors.Is(err, errors.ErrAlreadyExists) {
			// Added concurrently, fall back to refreshing it
			err = s.store.Update(ctx, collection, target.ID, fields)
		}
	case err == nil:
		err = s.store.Update(ctx, collection, target.ID, fields)
	}
	if err != nil {
		return domain.FriendEdge{}, err
	}

	doc, err := s.store.Get(ctx, collection, target.ID)
	if err != nil {
		return domain.FriendEdge{}, err
	}
	s.log.Debug("Friend added", "owner", ownerID, "target", target.ID)
	return domain.FriendEdgeFromDocument(ownerID, doc), nil
}

func (s *FriendService) ListFriends(ctx context.Context, ownerID string, opts ListFriendsOptions) ([]domain.FriendEdge, error) {
	if _, err := requireOwner(s.session, ownerID); err != nil {
		return nil, err
	}
	docs, err := s.store.List(ctx, domain.FriendsCollection(ownerID), friendsQuery(opts))
	if err != nil {
		return nil, err
	}
	return lo.Map(docs, func(doc domain.Document, _ int) domain.FriendEdge {
		return domain.FriendEdgeFromDocument(ownerID, doc)
	}), nil
}

// ToggleFavorite flips the flag and returns the edge as stored afterwards.
// Concurrent toggles race at the store, the last write wins, so callers must
// use the returned value rather than assume the flip they asked for.
func (s *FriendService) ToggleFavorite(ctx context.Context, ownerID, edgeID string) (domain.FriendEdge, error) {
	if _, err := requireOwner(s.session, ownerID); err != nil {
		return domain.FriendEdge{}, err
	}
	if strings.TrimSpace(edgeID) == "" {
		return domain.FriendEdge{}, fmt.Errorf("%w: edge id is required", errors.ErrValidation)
	}
	collection := domain.FriendsCollection(ownerID)
	current, err := s.store.Get(ctx, collection, edgeID)
	if err != nil {
		return domain.FriendEdge{}, err
	}
	if err = s.store.Update(ctx, collection, edgeID, domain.Fields{domain.FieldFavorite: !current.Bool(domain.FieldFavorite)}); err != nil {
		return domain.FriendEdge{}, err
	}
	updated, err := s.store.Get(ctx, collection, edgeID)
	if err != nil {
		return domain.FriendEdge{}, err
	}
	return domain.FriendEdgeFromDocument(ownerID, updated), nil
}

// RemoveFriend deletes the edge. Removing an absent friend succeeds.
func (s *FriendService) RemoveFriend(ctx context.Context, ownerID, edgeID string) error {
	if _, err := requireOwner(s.session, ownerID); err != nil {
		return err
	}
	if strings.TrimSpace(edgeID) == "" {
		return fmt.Errorf("%w: edge id is required", errors.ErrValidation)
	}
	return s.store.Delete(ctx, domain.FriendsCollection(ownerID), edgeID)
}

// WatchFriends streams the friend list every time it changes.
func (s *FriendService) WatchFriends(ctx context.Context, ownerID string, opts ListFriendsOptions) (*Stream[domain.FriendEdge], error) {
	if _, err := requireOwner(s.session, ownerID); err != nil {
		return nil, err
	}
	sub, err := s.store.Subscribe(ctx, domain.FriendsCollection(ownerID), friendsQuery(opts))
	if err != nil {
		return nil, err
	}
	return newStream(s.session, ownerID, sub, func(doc domain.Document) domain.FriendEdge {
		return domain.FriendEdgeFromDocument(ownerID, doc)
	}), nil
}

func friendsQuery(opts ListFriendsOptions) domain.Query {
	query := domain.NewQuery()
	if opts.FavoritesOnly {
		query = query.Where(domain.FieldFavorite, domain.OpEqual, true)
	}
	return query
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
