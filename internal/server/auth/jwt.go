// Package auth implements the access-token codec: stateless creation and
// validation of signed claims. Tokens are never stored server-side.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/mlebedev/authgate/internal/common"
	"github.com/mlebedev/authgate/internal/timex"
)

// Issuer tags access tokens. Validation rejects any token carrying a
// different issuer, so a token minted for another purpose can never pass
// as an access token.
const Issuer = "access"

// Claims carried by an access token: sub is the username, exp the expiry,
// iss the issuer tag.
type Claims struct {
	jwt.RegisteredClaims
}

// Codec signs and verifies access tokens with a server-held HMAC secret.
// It is a pure function of secret and clock: no side effects.
type Codec struct {
	secret   []byte
	validity time.Duration
	clock    timex.Clock
}

func NewCodec(secret []byte, validity time.Duration, clock timex.Clock) *Codec {
	return &Codec{secret: secret, validity: validity, clock: clock}
}

// Issue signs an access token for subject and returns it together with the
// Unix expiry timestamp.
func (c *Codec) Issue(subject string) (string, int64, error) {
	now := c.clock.Now()
	exp := now.Add(c.validity)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	})

	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", 0, fmt.Errorf("error signing token: %w", err)
	}
	return signed, exp.Unix(), nil
}

// Validate verifies signature, expiry and issuer tag, returning the claims.
// Errors: common.ErrTokenExpired, common.ErrWrongIssuer, and
// common.ErrInvalidToken for anything malformed.
func (c *Codec) Validate(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return c.secret, nil
	}, jwt.WithTimeFunc(c.clock.Now), jwt.WithIssuer(Issuer))

	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, common.ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenInvalidIssuer):
			return nil, common.ErrWrongIssuer
		default:
			return nil, fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
		}
	}

	if !token.Valid || claims.Subject == "" {
		return nil, common.ErrInvalidToken
	}

	return claims, nil
}
