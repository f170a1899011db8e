// Package live fans data-change notifications out to in-process
// subscribers. Writers publish a marker on a Redis channel after every
// booking or settings write; the hub relays it to whoever is listening
// (the warden SSE feed, the settings cache). Subscribers receive
// coalesced "something changed" signals and re-read the full snapshot
// from the store, so redelivery and ordering do not matter.
package live

import (
	"context"
	"log"
	"sync"

	"github.com/redis/go-redis/v9"
)

// Redis channels carrying change markers. Going through Redis rather
// than an in-process bus keeps every replica of the server in sync.
const (
	ChannelBookings = "league.bookings"
	ChannelSettings = "league.settings"
)

// Hub relays Redis pub/sub markers to local subscriber channels. A nil
// Redis client degrades to a local-only hub: notifications still reach
// subscribers in this process, cross-replica fan-out is lost.
type Hub struct {
	rdb *redis.Client

	mu       sync.Mutex
	bookings map[chan struct{}]struct{}
	settings map[chan struct{}]struct{}
}

// NewHub builds a hub over the given Redis client (which may be nil).
func NewHub(rdb *redis.Client) *Hub {
	return &Hub{
		rdb:      rdb,
		bookings: make(map[chan struct{}]struct{}),
		settings: make(map[chan struct{}]struct{}),
	}
}

// Run consumes the Redis channels until ctx is cancelled. go-redis
// reconnects the subscription internally; the loop only exits with the
// context. Call in a goroutine from main.
func (h *Hub) Run(ctx context.Context) {
	if h.rdb == nil {
		<-ctx.Done()
		return
	}
	sub := h.rdb.Subscribe(ctx, ChannelBookings, ChannelSettings)
	defer func() { _ = sub.Close() }()

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			switch msg.Channel {
			case ChannelBookings:
				h.dispatch(h.bookings)
			case ChannelSettings:
				h.dispatch(h.settings)
			}
		}
	}
}

// NotifyBookings publishes a bookings-changed marker. Publish failures
// are logged and swallowed: the write that triggered the notification
// has already committed and must not be failed retroactively.
func (h *Hub) NotifyBookings(ctx context.Context) {
	h.notify(ctx, ChannelBookings, h.bookings)
}

// NotifySettings publishes a settings-changed marker.
func (h *Hub) NotifySettings(ctx context.Context) {
	h.notify(ctx, ChannelSettings, h.settings)
}

func (h *Hub) notify(ctx context.Context, channel string, local map[chan struct{}]struct{}) {
	if h.rdb != nil {
		if err := h.rdb.Publish(ctx, channel, "1").Err(); err != nil {
			log.Printf("live: publish %s failed: %v", channel, err)
		} else {
			// Run() will deliver to local subscribers when the marker
			// comes back around.
			return
		}
	}
	h.dispatch(local)
}

// SubscribeBookings registers a local listener for bookings changes.
// The returned channel has capacity one and drops signals while the
// subscriber is busy; a signal means "re-read now", not "one event".
// The cancel func must be called when done.
func (h *Hub) SubscribeBookings() (<-chan struct{}, func()) {
	return h.subscribe(h.bookings)
}

// SubscribeSettings registers a local listener for settings changes.
func (h *Hub) SubscribeSettings() (<-chan struct{}, func()) {
	return h.subscribe(h.settings)
}

func (h *Hub) subscribe(set map[chan struct{}]struct{}) (<-chan struct{}, func()) {
	ch := make(chan struct{}, 1)
	h.mu.Lock()
	set[ch] = struct{}{}
	h.mu.Unlock()
	cancel := func() {
		h.mu.Lock()
		delete(set, ch)
		h.mu.Unlock()
	}
	return ch, cancel
}

func (h *Hub) dispatch(set map[chan struct{}]struct{}) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range set {
		select {
		case ch <- struct{}{}:
		default: // subscriber already has a pending signal
		}
	}
}
