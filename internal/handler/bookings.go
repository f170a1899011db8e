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
	"github.com/Prabheesh178/woxsen-league/internal/queue"
	"github.com/Prabheesh178/woxsen-league/internal/repository"
)

// BookingHandler owns the student booking lifecycle: create, list own,
// fetch a ticket, cancel. Events fan out to the broker for the audit
// log and to the live hub for connected dashboards.
type BookingHandler struct {
	Bookings *repository.BookingRepo
	Settings *live.SettingsCache
	Hub      *live.Hub
	Events   *queue.Publisher
}

func NewBookingHandler(b *repository.BookingRepo, s *live.SettingsCache, hub *live.Hub, ev *queue.Publisher) *BookingHandler {
	return &BookingHandler{Bookings: b, Settings: s, Hub: hub, Events: ev}
}

type createBookingReq struct {
	Facility string `json:"facility"`
	Court    string `json:"court"`
	Slot     string `json:"slot"`
	Date     string `json:"date"`
}

// Create books one slot for the authenticated student. The pipeline is
// validate -> gate -> price -> transactional write; the price is always
// computed server-side from the slot hour, never taken from the client.
func (h *BookingHandler) Create(c echo.Context) error {
	var req createBookingReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	fac, ok := catalog.ByName(req.Facility)
	if !ok {
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": "unknown facility"})
	}
	if !fac.HasCourt(req.Court) {
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": "unknown court for facility"})
	}
	if !fac.HasSlot(req.Slot) {
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": "unknown slot for facility"})
	}
	date, err := model.ParseDate(req.Date)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "date must be YYYY-MM-DD"})
	}
	// Date values compare lexicographically, which for YYYY-MM-DD is
	// chronological.
	if date < model.Today() {
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": "date is in the past"})
	}
	student, _ := c.Get("email").(string)
	if student == "" {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	// Gate on a fresh settings snapshot at confirmation time, not at
	// page load.
	settings, err := h.Settings.Get(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load settings failed"})
	}
	if !booking.CanBook(settings, fac.Name) {
		msg := "facility is closed"
		if settings.GlobalLockdown {
			msg = "bookings are locked down"
		}
		return c.JSON(http.StatusLocked, echo.Map{"error": "FacilityClosed", "message": msg})
	}

	hour, err := booking.SlotHour(req.Slot)
	if err != nil {
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": "invalid slot label"})
	}
	price := booking.SlotPrice(hour, fac.NightPrice)

	b := model.Booking{
		Facility: fac.Name,
		Court:    req.Court,
		Slot:     req.Slot,
		Date:     date,
		Price:    price,
		Status:   booking.StatusForPrice(price),
		Student:  student,
	}
	if err := h.Bookings.Create(ctx, &b); err != nil {
		switch err {
		case repository.ErrDailyLimit:
			return c.JSON(http.StatusConflict, echo.Map{
				"error":   string(booking.ReasonDailyLimit),
				"message": "you already booked this facility today",
			})
		case repository.ErrSlotTaken:
			return c.JSON(http.StatusConflict, echo.Map{
				"error":   string(booking.ReasonSlotTaken),
				"message": "slot was just taken",
			})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create booking failed"})
		}
	}

	h.emit(c, queue.EventBookingCreated, b)
	h.Hub.NotifyBookings(ctx)

	return c.JSON(http.StatusCreated, b)
}

// MyBookings lists the caller's bookings, newest first.
func (h *BookingHandler) MyBookings(c echo.Context) error {
	student, _ := c.Get("email").(string)

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	list, err := h.Bookings.ListByStudent(ctx, student)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load bookings failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"bookings": list})
}

// Get returns one of the caller's tickets by ID. Other students'
// tickets read as not found rather than forbidden so ticket IDs leak
// nothing.
func (h *BookingHandler) Get(c echo.Context) error {
	student, _ := c.Get("email").(string)

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	b, err := h.Bookings.GetByID(ctx, c.Param("id"))
	if err != nil || b.Student != student {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "TicketNotFound"})
	}
	return c.JSON(http.StatusOK, b)
}

// Cancel deletes one of the caller's bookings, freeing the slot.
func (h *BookingHandler) Cancel(c echo.Context) error {
	student, _ := c.Get("email").(string)
	id := c.Param("id")

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	b, err := h.Bookings.GetByID(ctx, id)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "TicketNotFound"})
	}
	if err := h.Bookings.DeleteOwned(ctx, id, student); err != nil {
		switch err {
		case repository.ErrTicketNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"error": "TicketNotFound"})
		case repository.ErrForbidden:
			// Same shape as not-found; see Get.
			return c.JSON(http.StatusNotFound, echo.Map{"error": "TicketNotFound"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "cancel failed"})
		}
	}

	h.emit(c, queue.EventBookingCancelled, b)
	h.Hub.NotifyBookings(ctx)

	return c.NoContent(http.StatusNoContent)
}

// emit publishes a booking event, best effort. A broker outage must
// never fail the request that already committed.
func (h *BookingHandler) emit(c echo.Context, typ string, b model.Booking) {
	if h.Events == nil {
		return
	}
	ev := queue.BookingEvent{
		Type:       typ,
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
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := h.Events.Publish(ctx, ev); err != nil {
		c.Logger().Warnf("publish %s event failed: %v", typ, err)
	}
}
