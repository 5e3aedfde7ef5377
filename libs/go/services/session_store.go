package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	goCache "github.com/patrickmn/go-cache"
	"github.com/regime-co/regime-api/libs/go/db"
	"github.com/regime-co/regime-api/libs/go/helpers"
	"go.uber.org/zap"
)

const (
	// DefaultSessionTTL is how long an untouched cart or questionnaire survives
	DefaultSessionTTL = 7 * 24 * time.Hour
	// DefaultSessionCleanupInterval is how often expired in-memory entries are purged
	DefaultSessionCleanupInterval = time.Hour
)

// SessionKey builds a store key from a prefix and its parts, e.g. regime-form:<session>:<regime>
func SessionKey(prefix string, parts ...string) string {
	return prefix + ":" + strings.Join(parts, ":")
}

// MemorySessionStore keeps session values in process memory. Values are stored as
// JSON so reads hand back an independent copy, the same as the Postgres store.
type MemorySessionStore struct {
	cache *goCache.Cache
	ttl   time.Duration
}

// NewMemorySessionStore creates an in-memory session store
func NewMemorySessionStore(ttl, cleanupInterval time.Duration) *MemorySessionStore {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	if cleanupInterval <= 0 {
		cleanupInterval = DefaultSessionCleanupInterval
	}
	return &MemorySessionStore{
		cache: goCache.New(ttl, cleanupInterval),
		ttl:   ttl,
	}
}

// Get decodes the value stored under key into dest
func (s *MemorySessionStore) Get(_ context.Context, key string, dest any) (bool, error) {
	raw, ok := s.cache.Get(key)
	if !ok {
		return false, nil
	}
	payload, ok := raw.([]byte)
	if !ok {
		return false, fmt.Errorf("session value %q has unexpected type %T", key, raw)
	}
	if err := json.Unmarshal(payload, dest); err != nil {
		return false, fmt.Errorf("failed to decode session value %q: %w", key, err)
	}
	return true, nil
}

// Put stores value under key, refreshing its expiry
func (s *MemorySessionStore) Put(_ context.Context, key string, value any) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode session value %q: %w", key, err)
	}
	s.cache.Set(key, payload, s.ttl)
	return nil
}

// Clear removes key
func (s *MemorySessionStore) Clear(_ context.Context, key string) error {
	s.cache.Delete(key)
	return nil
}

// PostgresSessionStore keeps session values in the form_sessions table so any
// API instance can serve any request
type PostgresSessionStore struct {
	queries db.Querier
	ttl     time.Duration
	logger  *zap.Logger
	now     func() time.Time
}

// NewPostgresSessionStore creates a database backed session store
func NewPostgresSessionStore(queries db.Querier, ttl time.Duration, logger *zap.Logger) *PostgresSessionStore {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &PostgresSessionStore{
		queries: queries,
		ttl:     ttl,
		logger:  logger,
		now:     time.Now,
	}
}

// Get decodes the value stored under key into dest. Expired rows read as missing.
func (s *PostgresSessionStore) Get(ctx context.Context, key string, dest any) (bool, error) {
	row, err := s.queries.GetFormSession(ctx, key)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("failed to load session value %q: %w", key, err)
	}
	if err := json.Unmarshal(row.Payload, dest); err != nil {
		return false, fmt.Errorf("failed to decode session value %q: %w", key, err)
	}
	return true, nil
}

// Put upserts value under key with a fresh expiry
func (s *PostgresSessionStore) Put(ctx context.Context, key string, value any) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode session value %q: %w", key, err)
	}
	err = s.queries.UpsertFormSession(ctx, db.UpsertFormSessionParams{
		Key:       key,
		Payload:   payload,
		ExpiresAt: helpers.TimeToNullableTimestamptz(s.now().Add(s.ttl)),
	})
	if err != nil {
		return fmt.Errorf("failed to save session value %q: %w", key, err)
	}
	return nil
}

// Clear deletes key
func (s *PostgresSessionStore) Clear(ctx context.Context, key string) error {
	if err := s.queries.DeleteFormSession(ctx, key); err != nil {
		return fmt.Errorf("failed to clear session value %q: %w", key, err)
	}
	return nil
}

// PurgeExpired removes expired rows and returns how many were deleted
func (s *PostgresSessionStore) PurgeExpired(ctx context.Context) (int64, error) {
	n, err := s.queries.DeleteExpiredFormSessions(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to purge expired sessions: %w", err)
	}
	if n > 0 {
		s.logger.Info("purged expired sessions", zap.Int64("count", n))
	}
	return n, nil
}
