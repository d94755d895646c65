package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T, ttl time.Duration) (*Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return New(client, ttl), mr
}

type page struct {
	Title string `json:"title"`
	Count int    `json:"count"`
}

func TestStoreRoundTrip(t *testing.T) {
	store, _ := newTestStore(t, time.Minute)
	ctx := context.Background()

	require.NoError(t, store.SetJSON(ctx, "k", page{Title: "施工実績", Count: 9}))

	var got page
	hit, err := store.GetJSON(ctx, "k", &got)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, page{Title: "施工実績", Count: 9}, got)
}

func TestStoreMissingKeyIsMissNotError(t *testing.T) {
	store, _ := newTestStore(t, time.Minute)

	var got page
	hit, err := store.GetJSON(context.Background(), "absent", &got)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestStoreEntriesExpire(t *testing.T) {
	store, mr := newTestStore(t, time.Minute)
	ctx := context.Background()

	require.NoError(t, store.SetJSON(ctx, "k", page{Count: 1}))
	mr.FastForward(2 * time.Minute)

	var got page
	hit, err := store.GetJSON(ctx, "k", &got)
	require.NoError(t, err)
	assert.False(t, hit, "entry should expire with the TTL")
}

func TestStoreCorruptEntryIsError(t *testing.T) {
	store, mr := newTestStore(t, time.Minute)
	require.NoError(t, mr.Set("k", "{broken"))

	var got page
	_, err := store.GetJSON(context.Background(), "k", &got)
	assert.Error(t, err)
}

func TestWarmerPrimesSourcesOnStart(t *testing.T) {
	store, _ := newTestStore(t, time.Minute)

	fetches := 0
	w := NewWarmer(store, "@every 1h", []Source{
		{Key: "warm:a", Fetch: func(ctx context.Context) (any, error) {
			fetches++
			return page{Title: "a", Count: fetches}, nil
		}},
		{Key: "warm:b", Fetch: func(ctx context.Context) (any, error) {
			return []string{"x", "y"}, nil
		}},
	})
	require.NoError(t, w.Start())
	defer w.Stop()

	assert.Equal(t, 1, fetches, "Start must prime each source once")

	var a page
	hit, err := store.GetJSON(context.Background(), "warm:a", &a)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, "a", a.Title)

	var b []string
	hit, err = store.GetJSON(context.Background(), "warm:b", &b)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, []string{"x", "y"}, b)
}

func TestWarmerSkipsFailingSource(t *testing.T) {
	store, _ := newTestStore(t, time.Minute)

	w := NewWarmer(store, "@every 1h", []Source{
		{Key: "warm:bad", Fetch: func(ctx context.Context) (any, error) {
			return nil, assert.AnError
		}},
		{Key: "warm:good", Fetch: func(ctx context.Context) (any, error) {
			return page{Count: 7}, nil
		}},
	})
	require.NoError(t, w.Start())
	defer w.Stop()

	var got page
	hit, err := store.GetJSON(context.Background(), "warm:good", &got)
	require.NoError(t, err)
	assert.True(t, hit, "a failing source must not block the others")

	hit, err = store.GetJSON(context.Background(), "warm:bad", &got)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestWarmerRejectsBadSpec(t *testing.T) {
	store, _ := newTestStore(t, time.Minute)

	w := NewWarmer(store, "not a cron spec", nil)
	assert.Error(t, w.Start())
}
