package storage

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"maps"
	"scrapbook/contract"
	"scrapbook/domain"
	"scrapbook/errors"
	"scrapbook/runtime"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

const (
	documentPrefix = "doc:"

	// collectionSeparator can't appear in collection paths nor document ids,
	// it keeps "users" and "users/u1/friends" in disjoint key ranges.
	collectionSeparator = "#"

	maxConflictRetries    = 5
	defaultSnapshotBuffer = 1
)

type Option func(*DocumentStore)

// WithClock replaces the wall clock used for server timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *DocumentStore) { s.clock = NewClock(now) }
}

// WithRegistry replaces the in-process change registry committed writes are published to.
func WithRegistry(registry contract.IChangeRegistry) Option {
	return func(s *DocumentStore) { s.registry = registry }
}

// WithSnapshotBuffer sets how many snapshots a slow subscriber may lag behind.
func WithSnapshotBuffer(size int) Option {
	return func(s *DocumentStore) {
		if size >= 0 {
			s.snapshotBuffer = size
		}
	}
}

// DocumentStore is a schemaless document database on top of Badger.
// Documents live under "doc:{collection}#{id}" and are encoded as protobuf Structs.
// Every committed write is published to the registry so live queries re-evaluate.
type DocumentStore struct {
	db             *badger.DB
	log            *slog.Logger
	clock          *Clock
	registry       contract.IChangeRegistry
	snapshotBuffer int
}

func NewDocumentStore(db *badger.DB, log *slog.Logger, opts ...Option) *DocumentStore {
	s := &DocumentStore{
		db:             db,
		log:            log,
		clock:          NewClock(time.Now),
		registry:       runtime.NewRegistry(log),
		snapshotBuffer: defaultSnapshotBuffer,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ contract.IDocumentStore = (*DocumentStore)(nil)

// Create stores fields under a generated id.
func (s *DocumentStore) Create(ctx context.Context, collection string, fields domain.Fields) (string, error) {
	id := uuid.NewString()
	if err := s.CreateWithID(ctx, collection, id, fields); err != nil {
		return "", err
	}
	return id, nil
}

// CreateWithID fails with ErrAlreadyExists when the id is taken.
func (s *DocumentStore) CreateWithID(ctx context.Context, collection, id string, fields domain.Fields) error {
	key, err := documentKey(collection, id)
	if err != nil {
		return err
	}
	if err = checkFields(fields); err != nil {
		return err
	}
	return s.write(ctx, collection, id, func(txn *badger.Txn) error {
		if _, err := txn.Get(key); err == nil {
			return fmt.Errorf("%w: %s/%s", errors.ErrAlreadyExists, collection, id)
		} else if !stderrors.Is(err, badger.ErrKeyNotFound) {
			return err
		}
		now := s.clock.Now()
		return s.put(txn, key, domain.Document{ID: id, Fields: maps.Clone(fields), CreatedAt: now, UpdatedAt: now})
	})
}

// Set merges fields into the document, creating it when absent.
// Fields that are not named keep their stored value.
func (s *DocumentStore) Set(ctx context.Context, collection, id string, fields domain.Fields) error {
	key, err := documentKey(collection, id)
	if err != nil {
		return err
	}
	if err = checkFields(fields); err != nil {
		return err
	}
	return s.write(ctx, collection, id, func(txn *badger.Txn) error {
		existing, found, err := s.read(txn, key)
		if err != nil {
			return err
		}
		now := s.clock.Now()
		if !found {
			existing = domain.Document{ID: id, Fields: domain.Fields{}, CreatedAt: now}
		}
		maps.Copy(existing.Fields, fields)
		existing.UpdatedAt = now
		return s.put(txn, key, existing)
	})
}

// Update merges fields into an existing document, ErrNotFound otherwise.
func (s *DocumentStore) Update(ctx context.Context, collection, id string, fields domain.Fields) error {
	key, err := documentKey(collection, id)
	if err != nil {
		return err
	}
	if err = checkFields(fields); err != nil {
		return err
	}
	return s.write(ctx, collection, id, func(txn *badger.Txn) error {
		existing, found, err := s.read(txn, key)
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("%w: %s/%s", errors.ErrNotFound, collection, id)
		}
		maps.Copy(existing.Fields, fields)
		existing.UpdatedAt = s.clock.Now()
		return s.put(txn, key, existing)
	})
}

// Delete removes the document. Deleting a missing document is not an error.
func (s *DocumentStore) Delete(ctx context.Context, collection, id string) error {
	key, err := documentKey(collection, id)
	if err != nil {
		return err
	}
	return s.write(ctx, collection, id, func(txn *badger.Txn) error {
		return txn.Delete(key)
	})
}

func (s *DocumentStore) Get(ctx context.Context, collection, id string) (domain.Document, error) {
	key, err := documentKey(collection, id)
	if err != nil {
		return domain.Document{}, err
	}
	if err = ctx.Err(); err != nil {
		return domain.Document{}, fmt.Errorf("%w: %v", errors.ErrQuery, err)
	}
	var doc domain.Document
	var found bool
	err = s.db.View(func(txn *badger.Txn) error {
		doc, found, err = s.read(txn, key)
		return err
	})
	if err != nil {
		return domain.Document{}, fmt.Errorf("%w: get %s/%s: %v", errors.ErrQuery, collection, id, err)
	}
	if !found {
		return domain.Document{}, fmt.Errorf("%w: %s/%s", errors.ErrNotFound, collection, id)
	}
	return doc, nil
}

// List scans the collection range and evaluates the query in memory.
// An invalid query fails before touching the database.
func (s *DocumentStore) List(ctx context.Context, collection string, query domain.Query) ([]domain.Document, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	prefix, err := collectionPrefix(collection)
	if err != nil {
		return nil, err
	}
	if err = ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrQuery, err)
	}
	var docs []domain.Document
	err = s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(value []byte) error {
				doc, err := decodeDocument(value)
				if err != nil {
					return err
				}
				docs = append(docs, doc)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: list %s: %v", errors.ErrQuery, collection, err)
	}
	out, err := query.Apply(docs)
	if err != nil {
		return nil, err
	}
	s.log.Debug("Query evaluated",
		"collection", collection,
		"query", query.String(),
		"scanned", len(docs),
		"returned", len(out))
	return out, nil
}

// Subscribe opens a live query on the collection.
func (s *DocumentStore) Subscribe(ctx context.Context, collection string, query domain.Query) (contract.ISubscription, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if _, err := collectionPrefix(collection); err != nil {
		return nil, err
	}
	return s.subscribe(ctx, collection, "", query), nil
}

// SubscribeDocument follows a single document. Snapshots hold zero or one document.
func (s *DocumentStore) SubscribeDocument(ctx context.Context, collection, id string) (contract.ISubscription, error) {
	if _, err := documentKey(collection, id); err != nil {
		return nil, err
	}
	return s.subscribe(ctx, collection, id, domain.NewQuery().Where(domain.FieldID, domain.OpEqual, id)), nil
}

func (s *DocumentStore) subscribe(ctx context.Context, collection, documentID string, query domain.Query) *Subscription {
	sub := newSubscription(ctx, s, collection, documentID, query, s.snapshotBuffer)
	// Registered before the first read so no write can fall between the two.
	s.registry.Subscribe(sub.id, collection, sub)
	go sub.run()
	s.log.Debug("Subscription opened", "collection", collection, "document_id", documentID, "query", query.String())
	return sub
}

// Close ends every live subscription. The Badger handle is owned by the caller.
func (s *DocumentStore) Close() {
	s.registry.CloseAll()
	s.log.Info("Document store closed")
}

// write runs fn in a read-write transaction, retrying on Badger conflicts,
// then publishes the change. Domain errors raised by fn are returned as is,
// anything else is wrapped in ErrWrite.
func (s *DocumentStore) write(ctx context.Context, collection, id string, fn func(txn *badger.Txn) error) error {
	var err error
	for attempt := 0; attempt <= maxConflictRetries; attempt++ {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("%w: %v", errors.ErrWrite, ctxErr)
		}
		err = s.db.Update(fn)
		if !stderrors.Is(err, badger.ErrConflict) {
			break
		}
		s.log.Debug("Write conflict, retrying", "collection", collection, "document_id", id, "attempt", attempt+1)
	}
	switch {
	case err == nil:
	case stderrors.Is(err, errors.ErrNotFound),
		stderrors.Is(err, errors.ErrAlreadyExists),
		stderrors.Is(err, errors.ErrValidation):
		return err
	default:
		s.log.Error("Write failed", "collection", collection, "document_id", id, "error", err)
		return fmt.Errorf("%w: %s/%s: %v", errors.ErrWrite, collection, id, err)
	}
	s.registry.Publish(domain.Change{Collection: collection, DocumentID: id, At: s.clock.Now()})
	return nil
}

func (s *DocumentStore) read(txn *badger.Txn, key []byte) (domain.Document, bool, error) {
	item, err := txn.Get(key)
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return domain.Document{}, false, nil
	}
	if err != nil {
		return domain.Document{}, false, err
	}
	var doc domain.Document
	err = item.Value(func(value []byte) error {
		doc, err = decodeDocument(value)
		return err
	})
	return doc, err == nil, err
}

func (s *DocumentStore) put(txn *badger.Txn, key []byte, doc domain.Document) error {
	data, err := encodeDocument(doc)
	if err != nil {
		return err
	}
	return txn.Set(key, data)
}

func collectionPrefix(collection string) ([]byte, error) {
	if strings.TrimSpace(collection) == "" || strings.Contains(collection, collectionSeparator) {
		return nil, fmt.Errorf("%w: invalid collection %q", errors.ErrValidation, collection)
	}
	if strings.HasPrefix(collection, "/") || strings.HasSuffix(collection, "/") || strings.Contains(collection, "//") {
		return nil, fmt.Errorf("%w: invalid collection %q", errors.ErrValidation, collection)
	}
	return []byte(documentPrefix + collection + collectionSeparator), nil
}

func documentKey(collection, id string) ([]byte, error) {
	prefix, err := collectionPrefix(collection)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(id) == "" || strings.ContainsAny(id, collectionSeparator+"/") {
		return nil, fmt.Errorf("%w: invalid document id %q", errors.ErrValidation, id)
	}
	return append(prefix, id...), nil
}

// checkFields rejects metadata names, they are owned by the store.
func checkFields(fields domain.Fields) error {
	for name := range fields {
		switch name {
		case domain.FieldID, domain.FieldCreatedAt, domain.FieldUpdatedAt:
			return fmt.Errorf("%w: field %q is reserved", errors.ErrValidation, name)
		}
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("%w: empty field name", errors.ErrValidation)
		}
	}
	return nil
}
