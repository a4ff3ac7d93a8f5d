package domain

import "time"

// FriendEdge is a one-directional relation stored under the owner's namespace.
// Email and DisplayName are snapshots taken when the friend was added:
// a later profile rename does not reach existing edges until AddFriend runs again.
type FriendEdge struct {
	ID          string // equals TargetID, one edge per (owner, target)
	OwnerID     string
	TargetID    string
	Email       string
	DisplayName string
	Favorite    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Label is what a presentation layer shows for the friend.
func (f FriendEdge) Label() string {
	if f.DisplayName != "" {
		return f.DisplayName
	}
	return f.Email
}

func FriendEdgeFromDocument(ownerID string, doc Document) FriendEdge {
	target := doc.String(FieldTargetID)
	if target == "" {
		target = doc.ID
	}
	return FriendEdge{
		ID:          doc.ID,
		OwnerID:     ownerID,
		TargetID:    target,
		Email:       doc.String(FieldEmail),
		DisplayName: doc.String(FieldDisplayName),
		Favorite:    doc.Bool(FieldFavorite),
		CreatedAt:   doc.CreatedAt,
		UpdatedAt:   doc.UpdatedAt,
	}
}
