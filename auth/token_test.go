package auth

import (
	"scrapbook/domain"
	"scrapbook/errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestTokenIssuer_Generate_And_Validate(t *testing.T) {
	req := require.New(t)
	issuer := NewTokenIssuer("a-secret-long-enough-for-hs256", time.Hour)
	identity := domain.Identity{ID: "u1", Email: "u1@x.com"}

	token, expiresAt, err := issuer.Generate(identity)
	req.NoError(err)
	req.WithinDuration(time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := issuer.Validate(token)
	req.NoError(err)
	req.Equal("u1", claims.UserID)
	req.Equal("u1@x.com", claims.Email)
	req.Equal("u1", claims.Subject)
	req.NotEmpty(claims.ID)
}

func TestTokenIssuer_Rejects_Expired_Token(t *testing.T) {
	req := require.New(t)
	issuer := NewTokenIssuer("a-secret-long-enough-for-hs256", time.Minute)
	token, _, err := issuer.Generate(domain.Identity{ID: "u1"})
	req.NoError(err)

	// When the clock moves past the expiry
	issuer.now = func() time.Time { return time.Now().Add(2 * time.Minute) }

	_, err = issuer.Validate(token)
	req.ErrorIs(err, errors.ErrInvalidToken)
}

func TestTokenIssuer_Rejects_Foreign_Signature(t *testing.T) {
	req := require.New(t)
	token, _, err := NewTokenIssuer("first-secret-first-secret", time.Hour).Generate(domain.Identity{ID: "u1"})
	req.NoError(err)

	_, err = NewTokenIssuer("other-secret-other-secret", time.Hour).Validate(token)

	req.ErrorIs(err, errors.ErrInvalidToken)
}

func TestTokenIssuer_Rejects_None_Algorithm(t *testing.T) {
	req := require.New(t)
	claims := &Claims{UserID: "u1", RegisteredClaims: jwt.RegisteredClaims{
		Issuer:    issuer,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	req.NoError(err)

	_, err = NewTokenIssuer("a-secret-long-enough-for-hs256", time.Hour).Validate(unsigned)

	req.ErrorIs(err, errors.ErrInvalidToken)
}
