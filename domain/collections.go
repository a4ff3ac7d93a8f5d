package domain

// Collection layout shared by every component writing to the document store.
const (
	CollectionUsers       = "users"
	CollectionCredentials = "credentials"
	CollectionMessages    = "messages"
)

// User profile fields
const (
	FieldUID         = "uid"
	FieldEmail       = "email"
	FieldDisplayName = "displayName"
	FieldNickname    = "nickname"
	FieldPhotoURL    = "photoURL"
)

// Friend edge fields
const (
	FieldTargetID = "targetId"
	FieldFavorite = "favorite"
)

// Message fields
const (
	FieldFromUserID = "fromUserId"
	FieldToUserID   = "toUserId"
	FieldMessage    = "message"
)

// Credential fields
const (
	FieldPasswordHash = "passwordHash"
)

// FriendsCollection is the owner scoped collection of friend edges.
func FriendsCollection(ownerID string) string {
	return CollectionUsers + "/" + ownerID + "/friends"
}
