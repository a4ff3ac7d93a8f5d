package domain

import "time"

// Identity is an authenticated user's stable record.
type Identity struct {
	ID          string
	Email       string
	DisplayName string
	Nickname    string
	PhotoURL    string
}

func (i Identity) IsZero() bool { return i.ID == "" }

// Session is what the authentication provider hands out on sign-in.
type Session struct {
	Identity  Identity
	Token     string
	ExpiresAt time.Time
}

// SessionEvent is delivered to session listeners. Identity is nil when
// nobody is signed in. Err is set when the provider reported a failure,
// in which case Identity is always nil.
type SessionEvent struct {
	Identity *Identity
	Err      error
}
