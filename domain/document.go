package domain

import (
	"maps"
	"time"
)

// Reserved field names resolving to document metadata.
const (
	FieldID        = "id"
	FieldCreatedAt = "createdAt"
	FieldUpdatedAt = "updatedAt"
)

// Fields is a schemaless document body.
// Supported values: nil, bool, string, any Go integer or float, time.Time,
// []any and map[string]any of those.
type Fields map[string]any

// Document is a record read back from the document store.
type Document struct {
	ID        string
	Fields    Fields
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Value resolves a field, reserved names included.
func (d Document) Value(field string) (any, bool) {
	switch field {
	case FieldID:
		return d.ID, true
	case FieldCreatedAt:
		return d.CreatedAt, !d.CreatedAt.IsZero()
	case FieldUpdatedAt:
		return d.UpdatedAt, !d.UpdatedAt.IsZero()
	}
	v, ok := d.Fields[field]
	return v, ok
}

func (d Document) String(field string) string {
	v, _ := d.Fields[field].(string)
	return v
}

func (d Document) Bool(field string) bool {
	v, _ := d.Fields[field].(bool)
	return v
}

func (d Document) Time(field string) time.Time {
	v, _ := d.Value(field)
	t, _ := v.(time.Time)
	return t
}

// Clone returns a copy whose Fields map can be modified freely.
func (d Document) Clone() Document {
	d.Fields = maps.Clone(d.Fields)
	return d
}

// Snapshot is the full result set delivered by a subscription.
// For single-document subscriptions it holds zero or one document.
type Snapshot struct {
	Documents []Document
	At        time.Time
}

// Change is published after a committed write to a collection.
type Change struct {
	Collection string
	DocumentID string
	Deleted    bool
	At         time.Time
}
