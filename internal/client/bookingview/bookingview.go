// Package bookingview keeps the state behind the "my bookings" screen:
// the fetched list, the active tab and calendar date, and edit/delete
// that only touch local state once the server has confirmed.
package bookingview

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"tridivya/internal/booking"
	"tridivya/internal/client/api"
	"tridivya/internal/models"
)

const (
	msgLoadFailed   = "Failed to load bookings"
	msgUpdateFailed = "Failed to update booking"
	msgDeleteFailed = "Failed to delete booking"
	msgUpdated      = "Booking updated"
	msgDeleted      = "Booking deleted"
)

var ErrUnknownBooking = errors.New("booking is not in the list")

type Tab int

const (
	TabUpcoming Tab = iota
	TabCompleted
	TabCancelled
)

var Tabs = []Tab{TabUpcoming, TabCompleted, TabCancelled}

func (t Tab) String() string {
	switch t {
	case TabCompleted:
		return "Completed"
	case TabCancelled:
		return "Cancelled"
	default:
		return "Upcoming"
	}
}

func (t Tab) status() models.BookingStatus {
	switch t {
	case TabCompleted:
		return models.BookingStatusCompleted
	case TabCancelled:
		return models.BookingStatusCancelled
	default:
		return models.BookingStatusUpcoming
	}
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=API
type API interface {
	ListBookings(ctx context.Context) ([]api.Booking, error)
	UpdateBooking(ctx context.Context, id string, form booking.Form) (*api.Booking, error)
	DeleteBooking(ctx context.Context, id string) error
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Notifier
type Notifier interface {
	Error(msg string)
	Success(msg string)
}

// Confirmer asks the user whether the booking with id should go.
type Confirmer func(id string) bool

type View struct {
	api      API
	notifier Notifier

	mu       sync.RWMutex
	loaded   bool
	bookings []api.Booking
	tab      Tab
	date     string
}

func New(client API, notifier Notifier) *View {
	return &View{api: client, notifier: notifier}
}

// Load fetches the list the first time it is called; later calls keep
// the local copy.
func (v *View) Load(ctx context.Context) error {
	const op = "bookingview.Load"

	v.mu.RLock()
	loaded := v.loaded
	v.mu.RUnlock()

	if loaded {
		return nil
	}

	list, err := v.api.ListBookings(ctx)
	if err != nil {
		v.notifier.Error(message(err, msgLoadFailed))
		return fmt.Errorf("%s: %w", op, err)
	}

	v.mu.Lock()
	v.bookings = append([]api.Booking(nil), list...)
	v.loaded = true
	v.mu.Unlock()

	return nil
}

// Bookings returns a copy of every booking held locally.
func (v *View) Bookings() []api.Booking {
	v.mu.RLock()
	defer v.mu.RUnlock()

	return append([]api.Booking(nil), v.bookings...)
}

func (v *View) Find(id string) (api.Booking, bool) {
	v.mu.RLock()
	defer v.mu.RUnlock()

	i := v.index(id)
	if i < 0 {
		return api.Booking{}, false
	}

	return v.bookings[i], true
}

func (v *View) SetTab(t Tab) {
	v.mu.Lock()
	v.tab = t
	v.mu.Unlock()
}

func (v *View) Tab() Tab {
	v.mu.RLock()
	defer v.mu.RUnlock()

	return v.tab
}

// SetDate narrows the list to one ISO date; "" clears the filter.
func (v *View) SetDate(date string) {
	v.mu.Lock()
	v.date = date
	v.mu.Unlock()
}

func (v *View) Date() string {
	v.mu.RLock()
	defer v.mu.RUnlock()

	return v.date
}

// Visible is the active tab's bookings, narrowed by the selected date.
func (v *View) Visible() []api.Booking {
	v.mu.RLock()
	defer v.mu.RUnlock()

	status := v.tab.status()
	out := make([]api.Booking, 0, len(v.bookings))
	for _, b := range v.bookings {
		if b.Status != status {
			continue
		}
		if v.date != "" && b.BookingDate != v.date {
			continue
		}
		out = append(out, b)
	}

	return out
}

// Counts reports how many bookings fall under each tab, ignoring the date.
func (v *View) Counts() map[Tab]int {
	v.mu.RLock()
	defer v.mu.RUnlock()

	counts := make(map[Tab]int, len(Tabs))
	for _, t := range Tabs {
		counts[t] = 0
	}
	for _, b := range v.bookings {
		for _, t := range Tabs {
			if b.Status == t.status() {
				counts[t]++
			}
		}
	}

	return counts
}

// Edit validates form and sends it as the full field set. The local copy
// is replaced only with what the server returns.
func (v *View) Edit(ctx context.Context, id string, form booking.Form) (*api.Booking, error) {
	const op = "bookingview.Edit"

	if res := booking.ValidateEdit(form); !res.OK() {
		first, _ := res.First()
		v.notifier.Error(first.Message)
		return nil, &booking.ValidationError{Result: res}
	}

	if _, ok := v.Find(id); !ok {
		v.notifier.Error(msgUpdateFailed)
		return nil, fmt.Errorf("%s: %w", op, ErrUnknownBooking)
	}

	updated, err := v.api.UpdateBooking(ctx, id, form)
	if err != nil {
		v.notifier.Error(message(err, msgUpdateFailed))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	v.mu.Lock()
	if i := v.index(id); i >= 0 {
		v.bookings[i] = *updated
	}
	v.mu.Unlock()

	v.notifier.Success(msgUpdated)

	return updated, nil
}

// Delete asks confirm, then deletes on the server and drops id locally.
// It reports false with a nil error when the user backs out.
func (v *View) Delete(ctx context.Context, id string, confirm Confirmer) (bool, error) {
	const op = "bookingview.Delete"

	if confirm != nil && !confirm(id) {
		return false, nil
	}

	if err := v.api.DeleteBooking(ctx, id); err != nil {
		v.notifier.Error(message(err, msgDeleteFailed))
		return false, fmt.Errorf("%s: %w", op, err)
	}

	v.mu.Lock()
	kept := v.bookings[:0:0]
	for _, b := range v.bookings {
		if b.ID != id {
			kept = append(kept, b)
		}
	}
	v.bookings = kept
	v.mu.Unlock()

	v.notifier.Success(msgDeleted)

	return true, nil
}

// index must be called with mu held.
func (v *View) index(id string) int {
	for i, b := range v.bookings {
		if b.ID == id {
			return i
		}
	}

	return -1
}

// Day is one cell of the month calendar.
type Day struct {
	Date     string
	Day      int
	InMonth  bool
	Bookings int
	Selected bool
}

// Month is a calendar grid of full weeks starting on Sunday.
type Month struct {
	Year  int
	Month time.Month
	Weeks [][]Day
}

// Calendar lays out month with the active tab's booking count per day.
func (v *View) Calendar(year int, month time.Month) Month {
	v.mu.RLock()
	defer v.mu.RUnlock()

	status := v.tab.status()
	perDay := make(map[string]int)
	for _, b := range v.bookings {
		if b.Status == status {
			perDay[b.BookingDate]++
		}
	}

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	start := first.AddDate(0, 0, -int(first.Weekday()))
	last := first.AddDate(0, 1, -1)

	m := Month{Year: year, Month: month}
	for day := start; !day.After(last) || day.Weekday() != time.Sunday; day = day.AddDate(0, 0, 1) {
		if day.Weekday() == time.Sunday {
			m.Weeks = append(m.Weeks, make([]Day, 0, 7))
		}

		date := booking.Today(day)
		w := len(m.Weeks) - 1
		m.Weeks[w] = append(m.Weeks[w], Day{
			Date:     date,
			Day:      day.Day(),
			InMonth:  day.Month() == month,
			Bookings: perDay[date],
			Selected: date == v.date,
		})
	}

	return m
}

func message(err error, fallback string) string {
	var apiErr *api.Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}

	return fallback
}
