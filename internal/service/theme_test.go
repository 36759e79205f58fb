package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/target/bookshelf-web/internal/domain/theme"
	apperrors "github.com/target/bookshelf-web/internal/errors"
	"github.com/target/bookshelf-web/internal/mocks"
	mockauth "github.com/target/bookshelf-web/internal/mocks/auth"
)

func TestThemeService_GetSetWatch(t *testing.T) {
	store := mockauth.NewMemoryPreferenceStore()
	svc := NewThemeService(ThemeServiceOptions{Preferences: store})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	assert.Equal(t, theme.System, svc.Get(ctx, "u1"))
	assert.Equal(t, theme.System, svc.Get(ctx, ""))

	changes, err := svc.Watch(ctx, "u1")
	require.NoError(t, err)

	got, err := svc.Set(ctx, "u1", "dark")
	require.NoError(t, err)
	assert.Equal(t, theme.Dark, got)
	assert.Equal(t, theme.Dark, svc.Get(ctx, "u1"))

	select {
	case c := <-changes:
		assert.Equal(t, theme.Dark, c)
	case <-time.After(time.Second):
		t.Fatal("no change delivered")
	}
}

func TestThemeService_SetRejectsUnknownTheme(t *testing.T) {
	svc := NewThemeService(ThemeServiceOptions{Preferences: mockauth.NewMemoryPreferenceStore()})

	_, err := svc.Set(context.Background(), "u1", "sepia")
	assert.True(t, apperrors.IsValidation(err))
	assert.Equal(t, "theme", apperrors.GetField(err))

	_, err = svc.Set(context.Background(), "", "dark")
	assert.True(t, apperrors.IsValidation(err))

	_, err = svc.Watch(context.Background(), "")
	assert.True(t, apperrors.IsValidation(err))
}

func TestThemeService_GetFallsBackOnStoreError(t *testing.T) {
	prefs := mocks.NewMockPreferenceStore(gomock.NewController(t))
	svc := NewThemeService(ThemeServiceOptions{Preferences: prefs})

	prefs.EXPECT().GetTheme(gomock.Any(), "u1").Return(theme.Theme(""), false, errors.New("redis down"))
	assert.Equal(t, theme.System, svc.Get(context.Background(), "u1"))
}
