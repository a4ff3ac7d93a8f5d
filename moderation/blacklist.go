package moderation

import (
	"strings"

	"github.com/dgraph-io/badger/v4"
)

const blacklistPrefix = "blacklist:"

// Blacklist persists the moderation dictionary in Badger, one key per word.
type Blacklist struct {
	db *badger.DB
}

func NewBlacklist(db *badger.DB) *Blacklist {
	return &Blacklist{db: db}
}

// Add stores the words lower cased, blanks are skipped.
func (b *Blacklist) Add(words ...string) error {
	wb := b.db.NewWriteBatch()
	defer wb.Cancel()
	for _, word := range words {
		word = strings.ToLower(strings.TrimSpace(word))
		if word == "" {
			continue
		}
		if err := wb.Set([]byte(blacklistPrefix+word), nil); err != nil {
			return err
		}
	}
	return wb.Flush()
}

func (b *Blacklist) Remove(word string) error {
	return b.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(blacklistPrefix + strings.ToLower(strings.TrimSpace(word))))
	})
}

// Words only walks the keys, values are empty.
func (b *Blacklist) Words() ([]string, error) {
	var words []string
	err := b.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(blacklistPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			words = append(words, string(it.Item().Key()[len(prefix):]))
		}
		return nil
	})
	return words, err
}
