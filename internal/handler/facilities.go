package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Prabheesh178/woxsen-league/internal/booking"
	"github.com/Prabheesh178/woxsen-league/internal/catalog"
	"github.com/Prabheesh178/woxsen-league/internal/live"
	"github.com/Prabheesh178/woxsen-league/internal/model"
	"github.com/Prabheesh178/woxsen-league/internal/repository"
)

// FacilityHandler serves the facility catalog and per-date availability
// grids. The catalog itself is compiled in; only the closed flags and
// the booking state come from the store.
type FacilityHandler struct {
	Bookings *repository.BookingRepo
	Settings *live.SettingsCache
}

func NewFacilityHandler(b *repository.BookingRepo, s *live.SettingsCache) *FacilityHandler {
	return &FacilityHandler{Bookings: b, Settings: s}
}

type facilityItem struct {
	Name       string   `json:"name"`
	Type       string   `json:"type"`
	NightPrice uint32   `json:"night_price"`
	Courts     []string `json:"courts"`
	Slots      []string `json:"slots"`
	Closed     bool     `json:"closed"`
}

// List returns the catalog, optionally filtered with ?type=Indoor or
// ?type=Outdoor. Each entry carries its current closed flag so clients
// can grey out facilities a warden has shut.
func (h *FacilityHandler) List(c echo.Context) error {
	filter := c.QueryParam("type")
	fs := catalog.ByCategory(filter)
	if len(fs) == 0 && filter != "" {
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": "unknown facility type"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	settings, err := h.Settings.Get(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load settings failed"})
	}

	items := make([]facilityItem, 0, len(fs))
	for _, f := range fs {
		items = append(items, facilityItem{
			Name:       f.Name,
			Type:       string(f.Category),
			NightPrice: f.NightPrice,
			Courts:     f.Courts,
			Slots:      f.Slots,
			Closed:     settings.FacilityDisabled(f.Name),
		})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"global_lockdown": settings.GlobalLockdown,
		"facilities":      items,
	})
}

type slotCell struct {
	Slot      string `json:"slot"`
	Price     uint32 `json:"price"`
	Moonlight bool   `json:"moonlight"`
	Taken     bool   `json:"taken"`
	Mine      bool   `json:"mine"`
}

type courtRow struct {
	Court string     `json:"court"`
	Slots []slotCell `json:"slots"`
}

// Availability renders the full court-by-slot grid for one facility on
// one date, annotated with pricing and the caller's own bookings. The
// grid is advisory: the booking write path re-checks everything inside
// a transaction.
func (h *FacilityHandler) Availability(c echo.Context) error {
	fac, ok := catalog.ByName(c.Param("name"))
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "unknown facility"})
	}
	date, err := model.ParseDate(c.QueryParam("date"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "date must be YYYY-MM-DD"})
	}
	student, _ := c.Get("email").(string)

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	settings, err := h.Settings.Get(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load settings failed"})
	}
	existing, err := h.Bookings.ListByFacilityDate(ctx, fac.Name, date)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load bookings failed"})
	}

	rows := make([]courtRow, 0, len(fac.Courts))
	for _, court := range fac.Courts {
		cells := make([]slotCell, 0, len(fac.Slots))
		for _, slot := range fac.Slots {
			hour, err := booking.SlotHour(slot)
			if err != nil {
				continue // catalog slots are validated at init; unreachable
			}
			cell := slotCell{
				Slot:      slot,
				Price:     booking.SlotPrice(hour, fac.NightPrice),
				Moonlight: booking.IsMoonlight(hour),
			}
			for _, b := range existing {
				if b.Court == court && b.Slot == slot {
					cell.Taken = true
					cell.Mine = b.Student == student
					break
				}
			}
			cells = append(cells, cell)
		}
		rows = append(rows, courtRow{Court: court, Slots: cells})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"facility":            fac.Name,
		"date":                date,
		"closed":              !booking.CanBook(settings, fac.Name),
		"daily_limit_reached": booking.HasDailyBooking(existing, student, fac.Name, date),
		"courts":              rows,
	})
}
