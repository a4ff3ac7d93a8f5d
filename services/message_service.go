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

type InboxOptions struct {
	// Limit caps the number of messages, zero means no limit.
	Limit int
}

type MessageOption func(*MessageService)

// WithModerator censors bodies before they are stored.
func WithModerator(moderator contract.IModerator) MessageOption {
	return func(s *MessageService) { s.moderator = moderator }
}

// WithIndex makes delivered messages searchable.
func WithIndex(index contract.IMessageIndex, resultLimit int) MessageOption {
	return func(s *MessageService) {
		s.index = index
		s.searchLimit = resultLimit
	}
}

type MessageService struct {
	store       contract.IDocumentStore
	session     contract.ISessionTracker
	moderator   contract.IModerator
	index       contract.IMessageIndex
	searchLimit int
	log         *slog.Logger
}

func NewMessageService(store contract.IDocumentStore, session contract.ISessionTracker, log *slog.Logger, opts ...MessageOption) *MessageService {
	s := &MessageService{store: store, session: session, log: log, searchLimit: 20}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Send stores the trimmed body for an existing user. The creation time is stamped by the store,
// never by the sender, so every client agrees on the inbox order.
func (s *MessageService) Send(ctx context.Context, senderID, recipientID, body string) (domain.Message, error) {
	if _, err := requireOwner(s.session, senderID); err != nil {
		return domain.Message{}, err
	}
	body = strings.TrimSpace(body)
	if body == "" {
		return domain.Message{}, errors.ErrEmptyBody
	}
	if strings.TrimSpace(recipientID) == "" {
		return domain.Message{}, fmt.Errorf("%w: recipient is required", errors.ErrValidation)
	}
	if _, err := s.store.Get(ctx, domain.CollectionUsers, recipientID); err != nil {
		if stderrors.Is(err, errors.ErrNotFound) {
			return domain.Message{}, fmt.Errorf("%w: no user %s", errors.ErrNotFound, recipientID)
		}
		return domain.Message{}, err
	}
	if s.moderator != nil {
		var words []string
		if body, words = s.moderator.Censor(body); len(words) > 0 {
			s.log.Info("Message censored", "sender", senderID, "words", len(words))
		}
	}

	id, err := s.store.Create(ctx, domain.CollectionMessages, domain.Fields{
		domain.FieldFromUserID: senderID,
		domain.FieldToUserID:   recipientID,
		domain.FieldMessage:    body,
	})
	if err != nil {
		return domain.Message{}, err
	}
	doc, err := s.store.Get(ctx, domain.CollectionMessages, id)
	if err != nil {
		return domain.Message{}, err
	}
	message := domain.MessageFromDocument(doc)

	if s.index != nil {
		// The message is delivered, a missing index entry only hides it from search.
		if err = s.index.Index(ctx, message); err != nil {
			s.log.Warn("Message not indexed", "message_id", message.ID, "error", err)
		}
	}
	return message, nil
}

// Inbox returns the recipient's messages, newest first.
func (s *MessageService) Inbox(ctx context.Context, recipientID string, opts InboxOptions) ([]domain.Message, error) {
	if _, err := requireOwner(s.session, recipientID); err != nil {
		return nil, err
	}
	docs, err := s.store.List(ctx, domain.CollectionMessages, inboxQuery(recipientID, opts))
	if err != nil {
		return nil, err
	}
	return lo.Map(docs, func(doc domain.Document, _ int) domain.Message { return domain.MessageFromDocument(doc) }), nil
}

// WatchInbox streams the inbox every time a message arrives.
func (s *MessageService) WatchInbox(ctx context.Context, recipientID string, opts InboxOptions) (*Stream[domain.Message], error) {
	if _, err := requireOwner(s.session, recipientID); err != nil {
		return nil, err
	}
	sub, err := s.store.Subscribe(ctx, domain.CollectionMessages, inboxQuery(recipientID, opts))
	if err != nil {
		return nil, err
	}
	return newStream(s.session, recipientID, sub, domain.MessageFromDocument), nil
}

// Search runs a full-text search over the recipient's inbox, best match first.
func (s *MessageService) Search(ctx context.Context, recipientID, text string) ([]domain.Message, error) {
	if _, err := requireOwner(s.session, recipientID); err != nil {
		return nil, err
	}
	if s.index == nil {
		return nil, fmt.Errorf("%w: search is not enabled", errors.ErrQuery)
	}
	ids, err := s.index.Search(ctx, recipientID, text, s.searchLimit)
	if err != nil {
		return nil, err
	}
	messages := make([]domain.Message, 0, len(ids))
	for _, id := range ids {
		doc, err := s.store.Get(ctx, domain.CollectionMessages, id)
		if stderrors.Is(err, errors.ErrNotFound) {
			s.log.Debug("Indexed message no longer stored", "message_id", id)
			continue
		}
		if err != nil {
			return nil, err
		}
		messages = append(messages, domain.MessageFromDocument(doc))
	}
	return messages, nil
}

func inboxQuery(recipientID string, opts InboxOptions) domain.Query {
	query := domain.NewQuery().
		Where(domain.FieldToUserID, domain.OpEqual, recipientID).
		OrderBy(domain.FieldCreatedAt, domain.Descending)
	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	return query
}
