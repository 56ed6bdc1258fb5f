// internal/service/prefs/prefs.go
package prefs

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	xerrors "hopegivers-web/internal/pkg/errors"
)

const retention = 30 * 24 * time.Hour

// Store keeps per-user cart and preference blobs in Redis. Logout clears a
// user's entries wholesale; the session manager's Destroy covers the
// client-side copies.
type Store struct {
	client *redis.Client
}

func NewStore(client *redis.Client) *Store {
	return &Store{client: client}
}

// GetCart returns the user's cart blob, or nil when none is stored.
func (s *Store) GetCart(ctx context.Context, userName string) (json.RawMessage, error) {
	return s.get(ctx, cartKey(userName))
}

// SetCart replaces the user's cart blob.
func (s *Store) SetCart(ctx context.Context, userName string, data json.RawMessage) error {
	return s.set(ctx, cartKey(userName), data)
}

// GetPreferences returns the user's preference blob, or nil when none is
// stored.
func (s *Store) GetPreferences(ctx context.Context, userName string) (json.RawMessage, error) {
	return s.get(ctx, prefsKey(userName))
}

// SetPreferences replaces the user's preference blob.
func (s *Store) SetPreferences(ctx context.Context, userName string, data json.RawMessage) error {
	return s.set(ctx, prefsKey(userName), data)
}

// ClearUser drops everything stored for a user. Called on logout.
func (s *Store) ClearUser(ctx context.Context, userName string) error {
	if err := s.client.Del(ctx, cartKey(userName), prefsKey(userName)).Err(); err != nil {
		return fmt.Errorf("failed to clear user entries: %w", err)
	}
	return nil
}

func (s *Store) get(ctx context.Context, key string) (json.RawMessage, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return data, nil
}

func (s *Store) set(ctx context.Context, key string, data json.RawMessage) error {
	if !json.Valid(data) {
		return xerrors.Wrap(xerrors.ErrInvalidInput, "refusing to store invalid JSON under "+key)
	}
	if err := s.client.Set(ctx, key, []byte(data), retention).Err(); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

func cartKey(userName string) string {
	return "cart:" + userName
}

func prefsKey(userName string) string {
	return "prefs:" + userName
}
