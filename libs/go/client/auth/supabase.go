package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/nedpals/supabase-go"
	"github.com/regime-co/regime-api/libs/go/types/business"
	"github.com/samber/lo"
)

var (
	// ErrInvalidToken is returned when the auth provider does not recognise the token
	ErrInvalidToken = errors.New("invalid token")
	// ErrNotAdmin is returned for valid users missing from the admin allow list
	ErrNotAdmin = errors.New("user is not an admin")
)

// userFetcher resolves an access token to the user it was issued for
type userFetcher func(ctx context.Context, token string) (id string, email string, err error)

// SupabaseValidator checks admin session tokens against Supabase Auth and an
// allow list of admin emails. An empty allow list admits nobody.
type SupabaseValidator struct {
	fetchUser   userFetcher
	adminEmails []string
}

// NewSupabaseValidator creates a validator backed by the Supabase project at baseURL
func NewSupabaseValidator(baseURL, serviceKey string, adminEmails []string) (*SupabaseValidator, error) {
	client := supabase.CreateClient(baseURL, serviceKey)
	if client == nil {
		return nil, fmt.Errorf("failed to create supabase client for %s", baseURL)
	}
	return newSupabaseValidator(func(ctx context.Context, token string) (string, string, error) {
		user, err := client.Auth.User(ctx, token)
		if err != nil {
			return "", "", err
		}
		return user.ID, user.Email, nil
	}, adminEmails), nil
}

func newSupabaseValidator(fetch userFetcher, adminEmails []string) *SupabaseValidator {
	return &SupabaseValidator{
		fetchUser: fetch,
		adminEmails: lo.Map(adminEmails, func(email string, _ int) string {
			return strings.ToLower(strings.TrimSpace(email))
		}),
	}
}

// ValidateToken returns the admin behind a bearer token
func (v *SupabaseValidator) ValidateToken(ctx context.Context, token string) (*business.AdminUser, error) {
	if token == "" {
		return nil, ErrInvalidToken
	}
	id, email, err := v.fetchUser(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !lo.Contains(v.adminEmails, strings.ToLower(email)) {
		return nil, ErrNotAdmin
	}
	return &business.AdminUser{ID: id, Email: email, Method: business.AuthMethodSupabase}, nil
}
