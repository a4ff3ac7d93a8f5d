// Package domain contains the core concepts of the scrapbook.
// This file defines direct messages exchanged between friends.
// Messages are immutable once created.
package domain

import "time"

// Message is a direct message from one identity to another.
// CreatedAt is assigned by the document store so that ordering
// does not depend on the sender's clock.
type Message struct {
	ID          string
	SenderID    string
	RecipientID string
	Body        string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func MessageFromDocument(doc Document) Message {
	return Message{
		ID:          doc.ID,
		SenderID:    doc.String(FieldFromUserID),
		RecipientID: doc.String(FieldToUserID),
		Body:        doc.String(FieldMessage),
		CreatedAt:   doc.CreatedAt,
		UpdatedAt:   doc.UpdatedAt,
	}
}
