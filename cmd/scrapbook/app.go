package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"scrapbook/auth"
	"scrapbook/contract"
	"scrapbook/domain"
	"scrapbook/errors"
	"scrapbook/internal"
	"scrapbook/moderation"
	"scrapbook/search"
	"scrapbook/services"
	"scrapbook/session"
	"scrapbook/storage"
	"scrapbook/storage/assets"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/samber/lo"
)

// application holds every component of one CLI run.
type application struct {
	config    internal.Config
	log       *slog.Logger
	db        *badger.DB
	store     *storage.DocumentStore
	provider  *auth.Provider
	tracker   *session.Tracker
	blobs     *assets.BlobStore
	blacklist *moderation.Blacklist
	friends   *services.FriendService
	messages  *services.MessageService
	profiles  *services.ProfileService

	closers []func() error
}

func newApplication(ctx context.Context, config internal.Config, log *slog.Logger) (_ *application, err error) {
	a := &application{config: config, log: log}
	defer func() {
		if err != nil {
			a.Close()
		}
	}()

	opts := badger.DefaultOptions(config.BadgerFilepath).WithLoggingLevel(badger.WARNING)
	if config.BadgerInMemory {
		opts = badger.DefaultOptions("").WithInMemory(true).WithLoggingLevel(badger.WARNING)
	}
	if a.db, err = badger.Open(opts); err != nil {
		return nil, fmt.Errorf("database opening failed: %w", err)
	}
	a.closers = append(a.closers, a.db.Close)
	a.store = storage.NewDocumentStore(a.db, log)
	a.closers = append(a.closers, func() error { a.store.Close(); return nil })

	tokens := auth.NewTokenIssuer(config.JWTSecret, config.AuthTokenDuration)
	a.provider = auth.NewProvider(a.store, tokens, log)
	a.tracker = session.NewTracker(a.provider, log)
	a.closers = append(a.closers, func() error { a.tracker.Close(); return nil })

	assetStorage, err := a.openAssets(ctx)
	if err != nil {
		return nil, err
	}

	a.blacklist = moderation.NewBlacklist(a.db)
	stored, err := a.blacklist.Words()
	if err != nil {
		return nil, fmt.Errorf("blacklist loading failed: %w", err)
	}
	char, err := internal.CharacterRune(config.CharReplacement)
	if err != nil {
		return nil, err
	}
	moderator, err := moderation.NewModerator(lo.Uniq(append(config.Words(), stored...)), char, log)
	if err != nil {
		return nil, fmt.Errorf("moderator failed: %w", err)
	}
	messageOpts := []services.MessageOption{services.WithModerator(moderator)}

	// Without a file the index would only hold this run's messages
	if config.BlugeFilepath != "" {
		index, err := search.OpenMessageIndex(config.BlugeFilepath, log)
		if err != nil {
			return nil, fmt.Errorf("search index opening failed: %w", err)
		}
		a.closers = append(a.closers, index.Close)
		messageOpts = append(messageOpts, services.WithIndex(index, config.SearchResultLimit))
	}

	a.friends = services.NewFriendService(a.store, a.tracker, log)
	a.messages = services.NewMessageService(a.store, a.tracker, log, messageOpts...)
	a.profiles = services.NewProfileService(a.store, a.tracker, assetStorage, log)
	return a, nil
}

func (a *application) openAssets(ctx context.Context) (contract.IAssetStorage, error) {
	if a.config.AssetBackend == internal.AssetBackendGCS {
		client, err := assets.NewGCSClient(ctx, a.config.GCSCredentialsFile)
		if err != nil {
			return nil, fmt.Errorf("GCS client failed: %w", err)
		}
		gcs := assets.NewGCSStore(client, a.config.GCSBucket, a.log)
		a.closers = append(a.closers, gcs.Close)
		return gcs, nil
	}
	a.blobs = assets.NewBlobStore(a.db, a.config.AssetBaseURL, a.log)
	return a.blobs, nil
}

// Close releases everything in reverse opening order.
func (a *application) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			a.log.Warn("Closing failed", "error", err)
		}
	}
	a.closers = nil
}

// resume signs back in with the token saved by a previous run, if any.
// A token that no longer validates is forgotten.
func (a *application) resume(ctx context.Context) error {
	raw, err := os.ReadFile(a.config.SessionFilepath)
	if stderrors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("session file unreadable: %w", err)
	}
	s, err := a.provider.Resume(ctx, strings.TrimSpace(string(raw)))
	if stderrors.Is(err, errors.ErrInvalidToken) || stderrors.Is(err, errors.ErrUnauthenticated) {
		a.log.Info("Saved session expired", "error", err)
		return a.forget()
	}
	if err != nil {
		return err
	}
	return a.remember(s)
}

func (a *application) remember(s domain.Session) error {
	if err := os.MkdirAll(filepath.Dir(a.config.SessionFilepath), 0o700); err != nil {
		return err
	}
	return os.WriteFile(a.config.SessionFilepath, []byte(s.Token), 0o600)
}

func (a *application) forget() error {
	if err := os.Remove(a.config.SessionFilepath); err != nil && !stderrors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// me is the signed-in identity every gated command acts for.
func (a *application) me() (domain.Identity, error) {
	identity, err := a.tracker.Require()
	if err != nil {
		return domain.Identity{}, fmt.Errorf("%w: run signin first", err)
	}
	return identity, nil
}
