package redis

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/target/bookshelf-web/internal/domain/theme"
)

func TestPreferenceStore_GetDefaultsToSystem(t *testing.T) {
	store := NewPreferenceStore(PreferenceStoreOptions{Client: setupTestRedis(t)})

	got, ok, err := store.GetTheme(context.Background(), "user-1")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, theme.System, got)
}

func TestPreferenceStore_SetAndGet(t *testing.T) {
	client := setupTestRedis(t)
	store := NewPreferenceStore(PreferenceStoreOptions{Client: client})
	ctx := context.Background()

	require.NoError(t, store.SetTheme(ctx, "user-1", theme.Dark))

	got, ok, err := store.GetTheme(ctx, "user-1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, theme.Dark, got)
	assert.Equal(t, "dark", client.HGet(ctx, "prefs:user-1", "theme").Val())
}

func TestPreferenceStore_CorruptValueReadsAsSystem(t *testing.T) {
	client := setupTestRedis(t)
	store := NewPreferenceStore(PreferenceStoreOptions{Client: client, Prefix: "p:"})
	ctx := context.Background()

	require.NoError(t, client.HSet(ctx, "p:user-2", "theme", "sepia").Err())

	got, ok, err := store.GetTheme(ctx, "user-2")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, theme.System, got)
}

func TestPreferenceStore_RejectsInvalidInput(t *testing.T) {
	store := NewPreferenceStore(PreferenceStoreOptions{Client: setupTestRedis(t)})
	ctx := context.Background()

	assert.Error(t, store.SetTheme(ctx, "", theme.Dark))
	assert.Error(t, store.SetTheme(ctx, "user-1", theme.Theme("sepia")))
	_, _, err := store.GetTheme(ctx, "")
	assert.Error(t, err)
}

func TestPreferenceStore_WatchReceivesChanges(t *testing.T) {
	store := NewPreferenceStore(PreferenceStoreOptions{Client: setupTestRedis(t)})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes, err := store.WatchTheme(ctx, "user-3")
	require.NoError(t, err)

	require.NoError(t, store.SetTheme(context.Background(), "user-3", theme.Light))

	select {
	case got := <-changes:
		assert.Equal(t, theme.Light, got)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for theme change")
	}

	cancel()
	select {
	case _, ok := <-changes:
		assert.False(t, ok, "channel should close after cancel")
	case <-time.After(2 * time.Second):
		t.Fatal("watch channel was not closed")
	}
}
