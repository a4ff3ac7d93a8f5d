// Package search indexes delivered messages for full-text inbox search.
package search

import (
	"context"
	"fmt"
	"log/slog"
	"scrapbook/contract"
	"scrapbook/domain"
	"scrapbook/errors"
	"strings"

	"github.com/blugelabs/bluge"
	"github.com/blugelabs/bluge/analysis/analyzer"
)

const (
	fieldMessageID = "message_id"
	fieldRecipient = "recipient"
	fieldSender    = "sender"
	fieldBody      = "body"
	fieldSentAt    = "sent_at"
)

// MessageIndex is a Bluge index of message bodies, scoped by recipient.
type MessageIndex struct {
	writer *bluge.Writer
	log    *slog.Logger
}

var _ contract.IMessageIndex = (*MessageIndex)(nil)

// OpenMessageIndex opens an on-disk index, or an in-memory one when path is empty.
func OpenMessageIndex(path string, log *slog.Logger) (*MessageIndex, error) {
	cfg := bluge.InMemoryOnlyConfig()
	if path != "" {
		cfg = bluge.DefaultConfig(path)
	}
	writer, err := bluge.OpenWriter(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open bluge writer: %w", err)
	}
	return &MessageIndex{writer: writer, log: log}, nil
}

// Index adds or replaces the message in the index.
func (m *MessageIndex) Index(ctx context.Context, message domain.Message) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrWrite, err)
	}
	doc := bluge.NewDocument(message.ID).
		AddField(bluge.NewKeywordField(fieldMessageID, message.ID).StoreValue()).
		AddField(bluge.NewKeywordField(fieldRecipient, message.RecipientID)).
		AddField(bluge.NewKeywordField(fieldSender, message.SenderID)).
		AddField(bluge.NewTextField(fieldBody, message.Body).WithAnalyzer(analyzer.NewStandardAnalyzer())).
		AddField(bluge.NewDateTimeField(fieldSentAt, message.CreatedAt))

	if err := m.writer.Update(doc.ID(), doc); err != nil {
		return fmt.Errorf("%w: index message %s: %v", errors.ErrWrite, message.ID, err)
	}
	return nil
}

// Search returns the ids of the recipient's messages matching text, best match first.
func (m *MessageIndex) Search(ctx context.Context, recipientID, text string, limit int) ([]string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}
	if limit <= 0 {
		return nil, fmt.Errorf("%w: limit must be positive, got %d", errors.ErrQuery, limit)
	}
	reader, err := m.writer.Reader()
	if err != nil {
		return nil, fmt.Errorf("%w: open reader: %v", errors.ErrQuery, err)
	}
	defer func() { _ = reader.Close() }()

	query := bluge.NewBooleanQuery().
		AddMust(bluge.NewTermQuery(recipientID).SetField(fieldRecipient)).
		AddMust(bluge.NewMatchQuery(text).SetField(fieldBody).SetAnalyzer(analyzer.NewStandardAnalyzer()))

	matches, err := reader.Search(ctx, bluge.NewTopNSearch(limit, query))
	if err != nil {
		return nil, fmt.Errorf("%w: search: %v", errors.ErrQuery, err)
	}

	var ids []string
	match, err := matches.Next()
	for err == nil && match != nil {
		err = match.VisitStoredFields(func(field string, value []byte) bool {
			if field == fieldMessageID {
				ids = append(ids, string(value))
				return false
			}
			return true
		})
		if err != nil {
			break
		}
		match, err = matches.Next()
	}
	if err != nil {
		return nil, fmt.Errorf("%w: read matches: %v", errors.ErrQuery, err)
	}
	m.log.Debug("Inbox searched", "recipient", recipientID, "matches", len(ids))
	return ids, nil
}

func (m *MessageIndex) Close() error {
	return m.writer.Close()
}
