package internal

import (
	"fmt"
	"strings"
	"time"
)

const (
	AssetBackendBadger = "badger"
	AssetBackendGCS    = "gcs"
)

type Config struct {
	BadgerFilepath string `env:"BADGER_FILEPATH,default=./data/badger"`
	BadgerInMemory bool   `env:"BADGER_IN_MEMORY,default=false"`
	BlugeFilepath  string `env:"BLUGE_FILEPATH"`
	LogLevel       string `env:"LOG_LEVEL,default=WARN"`

	AuthTokenDuration time.Duration `env:"AUTH_TOKEN_DURATION,default=24h"`
	JWTSecret         string        `env:"JWT_SECRET,required=true"`
	SessionFilepath   string        `env:"SESSION_FILEPATH,default=./data/session.jwt"`

	AssetBackend       string `env:"ASSET_BACKEND,default=badger"`
	AssetBaseURL       string `env:"ASSET_BASE_URL,default=http://localhost:8080/assets"`
	GCSBucket          string `env:"GCS_BUCKET"`
	GCSCredentialsFile string `env:"GCS_CREDENTIALS_FILE"`
	DebugServerPort    int    `env:"DEBUG_SERVER_PORT,default=8080"`

	CensoredWords   string `env:"CENSORED_WORDS"`
	CharReplacement string `env:"CHARACTER_REPLACEMENT,default=*"`

	InboxLimit        int `env:"INBOX_LIMIT,default=50"`
	SearchResultLimit int `env:"SEARCH_RESULT_LIMIT,default=20"`
}

// Validate checks the combinations env tags can't express.
func (c Config) Validate() error {
	switch c.AssetBackend {
	case AssetBackendBadger:
	case AssetBackendGCS:
		if c.GCSBucket == "" {
			return fmt.Errorf("GCS_BUCKET is required when ASSET_BACKEND is %q", AssetBackendGCS)
		}
	default:
		return fmt.Errorf("ASSET_BACKEND must be %q or %q, got %q", AssetBackendBadger, AssetBackendGCS, c.AssetBackend)
	}
	if len(c.JWTSecret) < 32 {
		return fmt.Errorf("JWT_SECRET must hold at least 32 characters")
	}
	if c.AuthTokenDuration <= 0 {
		return fmt.Errorf("AUTH_TOKEN_DURATION must be positive, got %s", c.AuthTokenDuration)
	}
	if c.SearchResultLimit <= 0 {
		return fmt.Errorf("SEARCH_RESULT_LIMIT must be positive, got %d", c.SearchResultLimit)
	}
	if c.InboxLimit < 0 {
		return fmt.Errorf("INBOX_LIMIT can't be negative, got %d", c.InboxLimit)
	}
	_, err := CharacterRune(c.CharReplacement)
	return err
}

// Words splits CENSORED_WORDS on commas, blanks are dropped.
func (c Config) Words() []string {
	var words []string
	for _, w := range strings.Split(c.CensoredWords, ",") {
		if w = strings.TrimSpace(w); w != "" {
			words = append(words, w)
		}
	}
	return words
}

func CharacterRune(str string) (rune, error) {
	r := []rune(str)
	if len(r) != 1 {
		return 0, fmt.Errorf(
			"CHARACTER_REPLACEMENT must be a single character, got %q",
			str,
		)
	}
	return r[0], nil
}
