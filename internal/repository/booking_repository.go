package repository

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"

	"github.com/Prabheesh178/woxsen-league/internal/model"
)

// BookingRepo provides CRUD operations for the bookings table. Rows
// are append-only; cancellation removes the row. The table carries a
// unique key uq_slot (facility_name, court_name, slot_label, slot_date)
// so the availability check inside Create has a server-side backstop
// against the classic read-then-write double booking.
type BookingRepo struct {
	db *sql.DB
}

// NewBookingRepo returns a new BookingRepo bound to the given database.
func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{db: db} }

// DB exposes the underlying handle for callers that need to open their
// own transactions.
func (r *BookingRepo) DB() *sql.DB { return r.db }

const bookingColumns = "id, facility_name, court_name, slot_label, slot_date, price, status, student_email, created_at"

// NewTicketID returns a store-assigned opaque booking identifier: 20
// hex characters from crypto/rand. The ID is the QR payload printed on
// the ticket, so it must be unguessable, not merely unique.
func NewTicketID() (string, error) {
	buf := make([]byte, 10)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// Create inserts a booking after re-running both availability rules
// inside the transaction against locked rows. The caller supplies
// facility, court, slot, date, price, status and student; the ID and
// CreatedAt fields are populated on success. Returns ErrDailyLimit or
// ErrSlotTaken when a rule refuses the write.
func (r *BookingRepo) Create(ctx context.Context, b *model.Booking) error {
	id, err := NewTicketID()
	if err != nil {
		return err
	}
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	// Daily cap first: the student may hold at most one booking per
	// facility per calendar date. Locking the matching rows keeps a
	// concurrent create for the same student serialized behind us.
	var existing string
	err = tx.QueryRowContext(ctx,
		`SELECT id FROM bookings
		 WHERE student_email = ? AND facility_name = ? AND slot_date = ?
		 LIMIT 1 FOR UPDATE`,
		b.Student, b.Facility, string(b.Date)).Scan(&existing)
	if err == nil {
		return ErrDailyLimit
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return err
	}

	err = tx.QueryRowContext(ctx,
		`SELECT id FROM bookings
		 WHERE facility_name = ? AND court_name = ? AND slot_label = ? AND slot_date = ?
		 LIMIT 1 FOR UPDATE`,
		b.Facility, b.Court, b.Slot, string(b.Date)).Scan(&existing)
	if err == nil {
		return ErrSlotTaken
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return err
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO bookings (id, facility_name, court_name, slot_label, slot_date, price, status, student_email)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		id, b.Facility, b.Court, b.Slot, string(b.Date), b.Price, b.Status, b.Student)
	if err != nil {
		// The unique key catches the gap-lock miss when two inserts
		// for the same free tuple race past the SELECTs.
		if isDuplicateKey(err) {
			return ErrSlotTaken
		}
		return err
	}
	if err := tx.QueryRowContext(ctx,
		"SELECT created_at FROM bookings WHERE id = ?", id).Scan(&b.CreatedAt); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	b.ID = id
	return nil
}

// GetByID fetches a single booking by ticket identifier. Returns
// ErrTicketNotFound when no row matches.
func (r *BookingRepo) GetByID(ctx context.Context, id string) (model.Booking, error) {
	var b model.Booking
	var date string
	err := r.db.QueryRowContext(ctx,
		"SELECT "+bookingColumns+" FROM bookings WHERE id = ? LIMIT 1", id).
		Scan(&b.ID, &b.Facility, &b.Court, &b.Slot, &date, &b.Price, &b.Status, &b.Student, &b.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Booking{}, ErrTicketNotFound
	}
	if err != nil {
		return model.Booking{}, err
	}
	b.Date = model.Date(date)
	return b, nil
}

// Delete removes a booking by identifier. Deleting an identifier that
// is already absent returns ErrTicketNotFound; callers treating delete
// as idempotent may ignore that error, the booking set is unchanged
// either way.
func (r *BookingRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM bookings WHERE id = ?", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrTicketNotFound
	}
	return nil
}

// DeleteOwned removes a booking only when it belongs to the given
// student. Returns ErrTicketNotFound for unknown IDs and ErrForbidden
// when the booking belongs to someone else.
func (r *BookingRepo) DeleteOwned(ctx context.Context, id, student string) error {
	var owner string
	err := r.db.QueryRowContext(ctx,
		"SELECT student_email FROM bookings WHERE id = ? LIMIT 1", id).Scan(&owner)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrTicketNotFound
	}
	if err != nil {
		return err
	}
	if owner != student {
		return ErrForbidden
	}
	// Condition on the owner again so a concurrent rebooking of the
	// same ID (impossible with random IDs, but cheap) cannot be hit.
	res, err := r.db.ExecContext(ctx,
		"DELETE FROM bookings WHERE id = ? AND student_email = ?", id, student)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrTicketNotFound
	}
	return nil
}

// ListAll returns every booking, newest first. This is the full
// snapshot the warden dashboard and the live feed re-derive on each
// change notification.
func (r *BookingRepo) ListAll(ctx context.Context) ([]model.Booking, error) {
	return r.list(ctx,
		"SELECT "+bookingColumns+" FROM bookings ORDER BY created_at DESC")
}

// ListByStudent returns the student's bookings, newest first.
func (r *BookingRepo) ListByStudent(ctx context.Context, student string) ([]model.Booking, error) {
	return r.list(ctx,
		"SELECT "+bookingColumns+" FROM bookings WHERE student_email = ? ORDER BY created_at DESC",
		student)
}

// ListByFacilityDate returns all bookings for one facility on one
// date, the working set for the availability grid.
func (r *BookingRepo) ListByFacilityDate(ctx context.Context, facility string, date model.Date) ([]model.Booking, error) {
	return r.list(ctx,
		"SELECT "+bookingColumns+" FROM bookings WHERE facility_name = ? AND slot_date = ? ORDER BY slot_label, court_name",
		facility, string(date))
}

// ListByDate returns all bookings on one date across facilities,
// newest first.
func (r *BookingRepo) ListByDate(ctx context.Context, date model.Date) ([]model.Booking, error) {
	return r.list(ctx,
		"SELECT "+bookingColumns+" FROM bookings WHERE slot_date = ? ORDER BY created_at DESC",
		string(date))
}

func (r *BookingRepo) list(ctx context.Context, query string, args ...interface{}) ([]model.Booking, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.Booking, 0)
	for rows.Next() {
		var b model.Booking
		var date string
		if err := rows.Scan(&b.ID, &b.Facility, &b.Court, &b.Slot, &date, &b.Price, &b.Status, &b.Student, &b.CreatedAt); err != nil {
			return nil, err
		}
		b.Date = model.Date(date)
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// DashboardStats aggregates the numbers shown at the top of the warden
// dashboard.
type DashboardStats struct {
	TotalBookings    uint64 `json:"total_bookings"`
	ActiveStudents   uint64 `json:"active_students"`
	MoonlightRevenue uint64 `json:"moonlight_revenue"`
}

// Stats computes dashboard totals in a single query.
func (r *BookingRepo) Stats(ctx context.Context) (DashboardStats, error) {
	var s DashboardStats
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*), COUNT(DISTINCT student_email), COALESCE(SUM(price), 0) FROM bookings`).
		Scan(&s.TotalBookings, &s.ActiveStudents, &s.MoonlightRevenue)
	return s, err
}

func isDuplicateKey(err error) bool {
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		return me.Number == 1062
	}
	return strings.Contains(strings.ToLower(err.Error()), "1062")
}
