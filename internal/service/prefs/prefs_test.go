// internal/service/prefs/prefs_test.go
package prefs_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hopegivers-web/internal/service/prefs"
)

func newStore(t *testing.T) (*prefs.Store, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return prefs.NewStore(client), mr
}

func TestCartRoundTrip(t *testing.T) {
	store, _ := newStore(t)
	ctx := context.Background()

	cart := json.RawMessage(`{"items":[{"charityId":7,"amount":25}]}`)
	require.NoError(t, store.SetCart(ctx, "wanjiku", cart))

	got, err := store.GetCart(ctx, "wanjiku")
	require.NoError(t, err)
	assert.JSONEq(t, string(cart), string(got))
}

func TestMissingEntriesReturnNil(t *testing.T) {
	store, _ := newStore(t)
	ctx := context.Background()

	cart, err := store.GetCart(ctx, "nobody")
	require.NoError(t, err)
	assert.Nil(t, cart)

	p, err := store.GetPreferences(ctx, "nobody")
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestInvalidJSONRejected(t *testing.T) {
	store, _ := newStore(t)

	err := store.SetPreferences(context.Background(), "wanjiku", json.RawMessage(`{not json`))
	require.Error(t, err)
}

func TestClearUserDropsEverything(t *testing.T) {
	store, mr := newStore(t)
	ctx := context.Background()

	require.NoError(t, store.SetCart(ctx, "wanjiku", json.RawMessage(`{"items":[]}`)))
	require.NoError(t, store.SetPreferences(ctx, "wanjiku", json.RawMessage(`{"theme":"dark"}`)))
	require.NoError(t, store.SetCart(ctx, "otieno", json.RawMessage(`{"items":[1]}`)))

	require.NoError(t, store.ClearUser(ctx, "wanjiku"))

	cart, err := store.GetCart(ctx, "wanjiku")
	require.NoError(t, err)
	assert.Nil(t, cart)

	p, err := store.GetPreferences(ctx, "wanjiku")
	require.NoError(t, err)
	assert.Nil(t, p)

	// Other users are untouched.
	assert.True(t, mr.Exists("cart:otieno"))
}

func TestEntriesExpire(t *testing.T) {
	store, mr := newStore(t)
	ctx := context.Background()

	require.NoError(t, store.SetCart(ctx, "wanjiku", json.RawMessage(`{"items":[]}`)))

	mr.FastForward(31 * 24 * time.Hour)

	cart, err := store.GetCart(ctx, "wanjiku")
	require.NoError(t, err)
	assert.Nil(t, cart)
}
