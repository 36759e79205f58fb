package redis

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/target/bookshelf-web/internal/domain/theme"
)

const (
	// DefaultPreferencePrefix namespaces preference hashes: <prefix><owner>.
	DefaultPreferencePrefix = "prefs:"

	themeField = "theme"
)

// PreferenceStore keeps reader preferences in one Redis hash per owner and
// announces theme changes on the channel <prefix><owner>:theme.
type PreferenceStore struct {
	client redis.UniversalClient
	prefix string
	logger *slog.Logger
}

// PreferenceStoreOptions configures a PreferenceStore.
type PreferenceStoreOptions struct {
	Client redis.UniversalClient
	Prefix string
	Logger *slog.Logger
}

// NewPreferenceStore creates a new Redis-based preference store.
func NewPreferenceStore(opts PreferenceStoreOptions) *PreferenceStore {
	prefix := opts.Prefix
	if prefix == "" {
		prefix = DefaultPreferencePrefix
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &PreferenceStore{client: opts.Client, prefix: prefix, logger: logger}
}

func (p *PreferenceStore) key(owner string) string     { return p.prefix + owner }
func (p *PreferenceStore) channel(owner string) string { return p.prefix + owner + ":" + themeField }

// GetTheme returns the stored theme. A stored value that no longer parses reads as System.
func (p *PreferenceStore) GetTheme(ctx context.Context, owner string) (theme.Theme, bool, error) {
	if owner == "" {
		return theme.System, false, errors.New("preference owner cannot be empty")
	}
	raw, err := p.client.HGet(ctx, p.key(owner), themeField).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return theme.System, false, nil
		}
		return theme.System, false, fmt.Errorf("redis hget: %w", err)
	}
	return theme.Parse(raw), true, nil
}

// SetTheme stores t and publishes it to watchers.
func (p *PreferenceStore) SetTheme(ctx context.Context, owner string, t theme.Theme) error {
	if owner == "" {
		return errors.New("preference owner cannot be empty")
	}
	if !t.Valid() {
		return fmt.Errorf("invalid theme %q", t)
	}

	pipe := p.client.TxPipeline()
	pipe.HSet(ctx, p.key(owner), themeField, string(t))
	pipe.Publish(ctx, p.channel(owner), string(t))
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("redis set theme: %w", err)
	}
	return nil
}

// WatchTheme subscribes to theme changes for owner. The returned channel is
// closed when ctx is done or the subscription fails.
func (p *PreferenceStore) WatchTheme(ctx context.Context, owner string) (<-chan theme.Theme, error) {
	if owner == "" {
		return nil, errors.New("preference owner cannot be empty")
	}

	sub := p.client.Subscribe(ctx, p.channel(owner))
	// Wait for the subscription confirmation so no publish is missed after return.
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return nil, fmt.Errorf("redis subscribe: %w", err)
	}

	out := make(chan theme.Theme, 1)
	go func() {
		defer close(out)
		defer func() {
			if err := sub.Close(); err != nil {
				p.logger.Debug("close theme subscription", "owner", owner, "error", err)
			}
		}()

		msgs := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					return
				}
				select {
				case out <- theme.Parse(msg.Payload):
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out, nil
}
