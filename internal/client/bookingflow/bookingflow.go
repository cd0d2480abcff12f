// Package bookingflow drives a booking form submission through booking
// creation and payment initiation up to the gateway redirect.
package bookingflow

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"tridivya/internal/booking"
	"tridivya/internal/client/api"
	"tridivya/internal/client/redirect"
	"tridivya/internal/models"
	"tridivya/internal/payment/esewa"
)

type State int

const (
	StateIdle State = iota
	StateSubmitting
	StateBookingCreated
	StatePaymentRedirecting
	StateRedirected
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSubmitting:
		return "submitting"
	case StateBookingCreated:
		return "booking_created"
	case StatePaymentRedirecting:
		return "payment_redirecting"
	case StateRedirected:
		return "redirected"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

const (
	msgBookingFailed  = "Failed to create booking. Please try again."
	msgMissingID      = "Booking was created but no booking id was returned"
	msgPaymentFailed  = "Failed to start payment. Please try again."
	msgRedirectFailed = "Failed to redirect to payment gateway"
	msgBooked         = "Booking confirmed"
)

var (
	ErrBusy      = errors.New("a submission is already in progress")
	ErrMissingID = errors.New("created booking has no id")
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingAPI
type BookingAPI interface {
	CreateBooking(ctx context.Context, form booking.Form) (*api.Booking, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=PaymentAPI
type PaymentAPI interface {
	InitiatePayment(ctx context.Context, amount int, bookingID string) (esewa.Redirect, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Redirector
type Redirector interface {
	Redirect(ctx context.Context, req redirect.Request) error
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Notifier
type Notifier interface {
	Error(msg string)
	Success(msg string)
}

type Flow struct {
	bookings   BookingAPI
	payments   PaymentAPI
	redirector Redirector
	notifier   Notifier
	today      func() string

	mu           sync.Mutex
	state        State
	onTransition func(from, to State)
}

// New builds a flow. today returns the user's local ISO date and is
// consulted on each submit.
func New(bookings BookingAPI, payments PaymentAPI, redirector Redirector, notifier Notifier, today func() string) *Flow {
	return &Flow{
		bookings:   bookings,
		payments:   payments,
		redirector: redirector,
		notifier:   notifier,
		today:      today,
	}
}

// OnTransition registers fn to be called on every state change.
func (f *Flow) OnTransition(fn func(from, to State)) {
	f.mu.Lock()
	f.onTransition = fn
	f.mu.Unlock()
}

func (f *Flow) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.state
}

// Busy reports whether the form should be disabled.
func (f *Flow) Busy() bool {
	return f.State() != StateIdle
}

// Reset returns a finished flow to Idle so another booking can be made.
func (f *Flow) Reset() {
	f.mu.Lock()
	from := f.state
	f.mu.Unlock()

	if from == StateRedirected {
		f.moveTo(StateIdle)
	}
}

// Submit validates form, creates the booking and, for eSewa payments,
// hands the user over to the gateway. On any failure the notifier gets
// a message and the flow is back in Idle.
func (f *Flow) Submit(ctx context.Context, form booking.Form) (*api.Booking, error) {
	const op = "bookingflow.Submit"

	f.mu.Lock()
	if f.state != StateIdle {
		f.mu.Unlock()
		return nil, ErrBusy
	}

	res := booking.Validate(form, f.today())
	if !res.OK() {
		f.mu.Unlock()
		first, _ := res.First()
		f.notifier.Error(first.Message)
		return nil, &booking.ValidationError{Result: res}
	}

	// claimed under the same lock as the Idle check so a double submit
	// sees ErrBusy
	f.state = StateSubmitting
	hook := f.onTransition
	f.mu.Unlock()

	if hook != nil {
		hook(StateIdle, StateSubmitting)
	}

	created, err := f.bookings.CreateBooking(ctx, form)
	if err != nil {
		return nil, f.fail(fmt.Errorf("%s: %w", op, err), message(err, msgBookingFailed))
	}

	if created == nil || created.ID == "" {
		return nil, f.fail(fmt.Errorf("%s: %w", op, ErrMissingID), msgMissingID)
	}

	f.moveTo(StateBookingCreated)

	if form.PaymentMethod != "" && form.PaymentMethod != models.PaymentMethodEsewa {
		f.notifier.Success(msgBooked)
		f.moveTo(StateIdle)
		return created, nil
	}

	f.moveTo(StatePaymentRedirecting)

	pay, err := f.payments.InitiatePayment(ctx, booking.Amount(form.SessionMode), created.ID)
	if err != nil {
		return created, f.fail(fmt.Errorf("%s: %w", op, err), message(err, msgPaymentFailed))
	}

	if err = f.redirector.Redirect(ctx, redirect.Build(pay.URL, pay.FormData)); err != nil {
		return created, f.fail(fmt.Errorf("%s: %w", op, err), msgRedirectFailed)
	}

	f.moveTo(StateRedirected)

	return created, nil
}

func (f *Flow) fail(err error, msg string) error {
	f.notifier.Error(msg)
	f.moveTo(StateIdle)

	return err
}

func (f *Flow) moveTo(to State) {
	f.mu.Lock()
	from := f.state
	f.state = to
	hook := f.onTransition
	f.mu.Unlock()

	if hook != nil && from != to {
		hook(from, to)
	}
}

// message prefers what the server said over a generic fallback.
func message(err error, fallback string) string {
	var apiErr *api.Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}

	return fallback
}
