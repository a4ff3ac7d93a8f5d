package internal

import (
	"testing"
	"time"

	"github.com/Netflix/go-env"
	"github.com/stretchr/testify/require"
)

const secret = "0123456789abcdef0123456789abcdef"

func TestConfig_Defaults(t *testing.T) {
	req := require.New(t)
	t.Setenv("JWT_SECRET", secret)
	t.Setenv("CENSORED_WORDS", " darn, ,heck ")

	var config Config
	_, err := env.UnmarshalFromEnviron(&config)

	req.NoError(err)
	req.NoError(config.Validate())
	req.Equal(AssetBackendBadger, config.AssetBackend)
	req.Equal(24*time.Hour, config.AuthTokenDuration)
	req.Equal(20, config.SearchResultLimit)
	req.Equal([]string{"darn", "heck"}, config.Words())
}

func TestConfig_Validate(t *testing.T) {
	valid := Config{
		JWTSecret:         secret,
		AuthTokenDuration: time.Hour,
		AssetBackend:      AssetBackendBadger,
		CharReplacement:   "#",
		SearchResultLimit: 10,
	}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		modify func(c *Config)
	}{
		{"short secret", func(c *Config) { c.JWTSecret = "short" }},
		{"unknown backend", func(c *Config) { c.AssetBackend = "s3" }},
		{"gcs without bucket", func(c *Config) { c.AssetBackend = AssetBackendGCS }},
		{"no token duration", func(c *Config) { c.AuthTokenDuration = 0 }},
		{"no search results", func(c *Config) { c.SearchResultLimit = 0 }},
		{"negative inbox limit", func(c *Config) { c.InboxLimit = -1 }},
		{"several replacement characters", func(c *Config) { c.CharReplacement = "**" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := valid
			tt.modify(&config)
			require.Error(t, config.Validate())
		})
	}
}

func TestCharacterRune(t *testing.T) {
	req := require.New(t)
	r, err := CharacterRune("€")
	req.NoError(err)
	req.Equal('€', r)
	_, err = CharacterRune("")
	req.Error(err)
}
