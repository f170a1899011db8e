package live

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Prabheesh178/woxsen-league/internal/model"
)

type fakeSource struct {
	settings model.SystemSettings
	calls    int
}

func (f *fakeSource) Get(ctx context.Context) (model.SystemSettings, error) {
	f.calls++
	return f.settings, nil
}

func TestSettingsCacheReadThroughOnce(t *testing.T) {
	src := &fakeSource{settings: model.SystemSettings{GlobalLockdown: true, Version: 3}}
	c := NewSettingsCache(src, NewHub(nil))

	s, err := c.Get(context.Background())
	require.NoError(t, err)
	assert.True(t, s.GlobalLockdown)

	_, err = c.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, src.calls)
}

func TestSettingsCacheInvalidate(t *testing.T) {
	src := &fakeSource{settings: model.SystemSettings{Version: 1}}
	c := NewSettingsCache(src, NewHub(nil))

	_, err := c.Get(context.Background())
	require.NoError(t, err)

	src.settings.Version = 2
	c.Invalidate()

	s, err := c.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(2), s.Version)
	assert.Equal(t, 2, src.calls)
}

func TestHubLocalDispatchWithoutRedis(t *testing.T) {
	h := NewHub(nil)
	ch, cancel := h.SubscribeBookings()
	defer cancel()

	h.NotifyBookings(context.Background())
	select {
	case <-ch:
	default:
		t.Fatal("expected a pending bookings signal")
	}

	// Signals coalesce: two notifies, one pending signal.
	h.NotifyBookings(context.Background())
	h.NotifyBookings(context.Background())
	<-ch
	select {
	case <-ch:
		t.Fatal("signals should coalesce into one")
	default:
	}
}

func TestHubCancelStopsDelivery(t *testing.T) {
	h := NewHub(nil)
	ch, cancel := h.SubscribeSettings()
	cancel()

	h.NotifySettings(context.Background())
	select {
	case <-ch:
		t.Fatal("cancelled subscriber should not receive signals")
	default:
	}
}
