package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Prabheesh178/woxsen-league/internal/booking"
	"github.com/Prabheesh178/woxsen-league/internal/catalog"
	"github.com/Prabheesh178/woxsen-league/internal/config"
	"github.com/Prabheesh178/woxsen-league/internal/live"
	"github.com/Prabheesh178/woxsen-league/internal/model"
	"github.com/Prabheesh178/woxsen-league/internal/queue"
	"github.com/Prabheesh178/woxsen-league/internal/repository"
)

// settingsRetries bounds the compare-and-swap loop on settings writes.
// Two wardens toggling at once is rare; three attempts is plenty.
const settingsRetries = 3

// WardenHandler serves the warden dashboard: gate verification, the
// live feed, stats, and the settings toggles that gate student
// bookings.
type WardenHandler struct {
	Cfg      config.Config
	Bookings *repository.BookingRepo
	Store    *repository.SettingsRepo
	Settings *live.SettingsCache
	Hub      *live.Hub
	Events   *queue.Publisher
}

func NewWardenHandler(cfg config.Config, b *repository.BookingRepo, st *repository.SettingsRepo, sc *live.SettingsCache, hub *live.Hub, ev *queue.Publisher) *WardenHandler {
	return &WardenHandler{Cfg: cfg, Bookings: b, Store: st, Settings: sc, Hub: hub, Events: ev}
}

type verifyReq struct {
	TicketID string `json:"ticket_id"`
}

// Verify checks a presented ticket ID for gate admission. Tickets
// verify repeatedly; there is no single-use stamp. Override-token use
// is logged every time.
func (h *WardenHandler) Verify(c echo.Context) error {
	var req verifyReq
	if err := c.Bind(&req); err != nil || req.TicketID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "ticket_id required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	lookup := func(id string) (model.Booking, bool) {
		b, err := h.Bookings.GetByID(ctx, id)
		if err != nil {
			return model.Booking{}, false
		}
		return b, true
	}

	res := booking.Verify(lookup, req.TicketID, h.Cfg.VerifyOverride)
	if !res.Valid {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "TicketNotFound", "valid": false})
	}
	if res.Override {
		warden, _ := c.Get("email").(string)
		c.Logger().Warnf("override token used at gate by %s", warden)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"valid":    true,
		"override": res.Override,
		"booking":  res.Booking,
	})
}

// Feed returns today's bookings whose slots are still current: slots at
// or after the present hour, plus tonight's moonlight slots once the
// evening has started.
func (h *WardenHandler) Feed(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	list, err := h.currentFeed(ctx, time.Now())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load feed failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"bookings": list})
}

// FeedStream pushes the live feed over Server-Sent Events. An event
// fires immediately on connect and again whenever a booking anywhere in
// the system changes; a periodic refresh keeps the window filter
// honest as hours roll over.
func (h *WardenHandler) FeedStream(c echo.Context) error {
	w := c.Response()
	w.Header().Set(echo.HeaderContentType, "text/event-stream")
	w.Header().Set(echo.HeaderCacheControl, "no-cache")
	w.Header().Set(echo.HeaderConnection, "keep-alive")
	w.WriteHeader(http.StatusOK)

	updates, cancelSub := h.Hub.SubscribeBookings()
	defer cancelSub()

	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	ctx := c.Request().Context()
	for {
		if err := h.writeFeedEvent(ctx, w); err != nil {
			return nil // client went away
		}
		select {
		case <-ctx.Done():
			return nil
		case <-updates:
		case <-ticker.C:
		}
	}
}

func (h *WardenHandler) writeFeedEvent(ctx context.Context, w *echo.Response) error {
	qctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	list, err := h.currentFeed(qctx, time.Now())
	if err != nil {
		return err
	}
	payload, err := json.Marshal(echo.Map{"bookings": list})
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "event: feed\ndata: %s\n\n", payload); err != nil {
		return err
	}
	w.Flush()
	return nil
}

func (h *WardenHandler) currentFeed(ctx context.Context, now time.Time) ([]model.Booking, error) {
	list, err := h.Bookings.ListByDate(ctx, model.DateOf(now))
	if err != nil {
		return nil, err
	}
	return booking.FilterCurrent(list, now), nil
}

// ListBookings returns every booking in the system, newest first.
func (h *WardenHandler) ListBookings(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	list, err := h.Bookings.ListAll(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load bookings failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"bookings": list})
}

// Stats returns the dashboard totals.
func (h *WardenHandler) Stats(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	s, err := h.Bookings.Stats(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load stats failed"})
	}
	return c.JSON(http.StatusOK, s)
}

type lockdownReq struct {
	Enabled bool `json:"enabled"`
}

// SetLockdown flips the global lockdown switch.
func (h *WardenHandler) SetLockdown(c echo.Context) error {
	var req lockdownReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	return h.updateSettings(c, func(s *model.SystemSettings) {
		s.GlobalLockdown = req.Enabled
	})
}

type facilityToggleReq struct {
	Closed bool `json:"closed"`
}

// SetFacility opens or closes a single facility for booking.
func (h *WardenHandler) SetFacility(c echo.Context) error {
	fac, ok := catalog.ByName(c.Param("name"))
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "unknown facility"})
	}
	var req facilityToggleReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	return h.updateSettings(c, func(s *model.SystemSettings) {
		disabled := make([]string, 0, len(s.DisabledFacilities))
		for _, name := range s.DisabledFacilities {
			if name != fac.Name {
				disabled = append(disabled, name)
			}
		}
		if req.Closed {
			disabled = append(disabled, fac.Name)
		}
		s.DisabledFacilities = disabled
	})
}

// updateSettings applies mutate under a short compare-and-swap loop:
// read the current row, mutate, write conditioned on the version seen.
// A lost race re-reads and retries so concurrent toggles by two wardens
// both land.
func (h *WardenHandler) updateSettings(c echo.Context, mutate func(*model.SystemSettings)) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	var (
		updated model.SystemSettings
		err     error
	)
	for attempt := 0; attempt < settingsRetries; attempt++ {
		var s model.SystemSettings
		s, err = h.Store.Get(ctx)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load settings failed"})
		}
		mutate(&s)
		updated, err = h.Store.Put(ctx, s)
		if err == nil {
			break
		}
		if err != repository.ErrSettingsConflict {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "save settings failed"})
		}
	}
	if err == repository.ErrSettingsConflict {
		return c.JSON(http.StatusConflict, echo.Map{"error": "settings changed concurrently, retry"})
	}

	h.Settings.Invalidate()
	h.Hub.NotifySettings(ctx)
	return c.JSON(http.StatusOK, updated)
}

// CancelBooking removes any booking by ticket ID, regardless of owner.
func (h *WardenHandler) CancelBooking(c echo.Context) error {
	id := c.Param("id")

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	b, err := h.Bookings.GetByID(ctx, id)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "TicketNotFound"})
	}
	if err := h.Bookings.Delete(ctx, id); err != nil {
		if err == repository.ErrTicketNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "TicketNotFound"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "cancel failed"})
	}

	if h.Events != nil {
		ev := queue.BookingEvent{
			Type:       queue.EventBookingCancelled,
			TicketID:   b.ID,
			Facility:   b.Facility,
			Court:      b.Court,
			Slot:       b.Slot,
			Date:       string(b.Date),
			Price:      b.Price,
			Status:     b.Status,
			Student:    b.Student,
			OccurredAt: time.Now().UTC().Format(time.RFC3339),
		}
		pctx, pcancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer pcancel()
		if err := h.Events.Publish(pctx, ev); err != nil {
			c.Logger().Warnf("publish cancel event failed: %v", err)
		}
	}
	h.Hub.NotifyBookings(ctx)

	return c.NoContent(http.StatusNoContent)
}
