package moderation

import (
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"
)

func newBlacklist(t *testing.T) *Blacklist {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions("").WithInMemory(true).WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewBlacklist(db)
}

func TestBlacklist_Add_Remove_Words(t *testing.T) {
	req := require.New(t)
	blacklist := newBlacklist(t)

	// Given words added with odd casing, blanks and a duplicate
	req.NoError(blacklist.Add(" Badger", "snake", "", "badger"))

	// Then they are stored once, lowercased and sorted
	words, err := blacklist.Words()
	req.NoError(err)
	req.Equal([]string{"badger", "snake"}, words)

	// When a word is removed whatever its casing
	req.NoError(blacklist.Remove("SNAKE"))

	// Then it is gone
	words, err = blacklist.Words()
	req.NoError(err)
	req.Equal([]string{"badger"}, words)
}

func TestBlacklist_Feeds_The_Moderator(t *testing.T) {
	req := require.New(t)
	blacklist := newBlacklist(t)
	words, err := blacklist.Words()
	req.NoError(err)
	req.Empty(words)

	req.NoError(blacklist.Add("darn"))
	words, err = blacklist.Words()
	req.NoError(err)
	mod := newModerator(t, words...)

	content, found := mod.Censor("oh darn")
	req.Equal("oh ****", content)
	req.Equal([]string{"darn"}, found)
}
