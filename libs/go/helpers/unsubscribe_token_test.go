package helpers

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnsubscribeTokens(t *testing.T) {
	tokens := NewUnsubscribeTokens("newsletter-secret")

	token, err := tokens.Sign(" Glow@Example.com ")
	require.NoError(t, err)

	tests := []struct {
		name    string
		signer  *UnsubscribeTokens
		token   string
		email   string
		wantErr bool
	}{
		{name: "same address", signer: tokens, token: token, email: "glow@example.com"},
		{name: "address case does not matter", signer: tokens, token: token, email: "GLOW@example.com"},
		{name: "other address", signer: tokens, token: token, email: "someone@example.com", wantErr: true},
		{name: "other secret", signer: NewUnsubscribeTokens("rotated"), token: token, email: "glow@example.com", wantErr: true},
		{name: "missing token", signer: tokens, token: "", email: "glow@example.com", wantErr: true},
		{name: "garbage token", signer: tokens, token: "not.a.token", email: "glow@example.com", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.signer.Verify(tt.token, tt.email)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidUnsubscribeToken)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestUnsubscribeTokens_RejectsOtherAudience(t *testing.T) {
	secret := "newsletter-secret"
	other, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:  "glow@example.com",
		Audience: jwt.ClaimStrings{"admin"},
	}).SignedString([]byte(secret))
	require.NoError(t, err)

	assert.ErrorIs(t, NewUnsubscribeTokens(secret).Verify(other, "glow@example.com"), ErrInvalidUnsubscribeToken)
}
