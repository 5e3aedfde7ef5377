package helpers

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const unsubscribeAudience = "newsletter-unsubscribe"

var ErrInvalidUnsubscribeToken = errors.New("unsubscribe link is invalid")

// UnsubscribeTokens signs and checks the token carried by newsletter unsubscribe links.
// Tokens do not expire; old emails keep working.
type UnsubscribeTokens struct {
	secret []byte
	now    func() time.Time
}

// NewUnsubscribeTokens creates a signer over an HMAC secret
func NewUnsubscribeTokens(secret string) *UnsubscribeTokens {
	return &UnsubscribeTokens{secret: []byte(secret), now: time.Now}
}

// Sign returns a token bound to email
func (u *UnsubscribeTokens) Sign(email string) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:  normalizeTokenEmail(email),
		Audience: jwt.ClaimStrings{unsubscribeAudience},
		IssuedAt: jwt.NewNumericDate(u.now()),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(u.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign unsubscribe token: %w", err)
	}
	return signed, nil
}

// Verify checks that token was signed by us for email
func (u *UnsubscribeTokens) Verify(token, email string) error {
	if token == "" {
		return ErrInvalidUnsubscribeToken
	}
	_, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return u.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithAudience(unsubscribeAudience),
		jwt.WithSubject(normalizeTokenEmail(email)),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidUnsubscribeToken, err)
	}
	return nil
}

func normalizeTokenEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
