package booking

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"tridivya/internal/models"
)

const dateLayout = "2006-01-02"

var validate = validator.New()

// Form is the user entered part of a booking.
type Form struct {
	SessionType    string               `json:"session_type"`
	SessionMode    models.SessionMode   `json:"session_mode"`
	BookingDate    string               `json:"booking_date"`
	TimeSlot       string               `json:"time_slot"`
	FullName       string               `json:"full_name"`
	Email          string               `json:"email"`
	Phone          string               `json:"phone"`
	SpecialRequest string               `json:"special_request,omitempty"`
	PaymentMethod  models.PaymentMethod `json:"payment_method"`
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Result is the outcome of a form check. Errors keep check order, so the
// first one is what a UI should show.
type Result struct {
	Errors []FieldError `json:"errors,omitempty"`
}

func (r Result) OK() bool {
	return len(r.Errors) == 0
}

func (r Result) First() (FieldError, bool) {
	if len(r.Errors) == 0 {
		return FieldError{}, false
	}

	return r.Errors[0], true
}

func (r Result) Error() string {
	msgs := make([]string, 0, len(r.Errors))
	for _, e := range r.Errors {
		msgs = append(msgs, e.Message)
	}

	return strings.Join(msgs, ", ")
}

// ValidationError wraps a failed Result for callers that return errors.
type ValidationError struct {
	Result Result
}

func (e *ValidationError) Error() string {
	return e.Result.Error()
}

func (r *Result) add(field, msg string) {
	r.Errors = append(r.Errors, FieldError{Field: field, Message: msg})
}

// Today formats t in its own location as an ISO date; pass a local time.
func Today(t time.Time) string {
	return t.Format(dateLayout)
}

// Validate checks a new booking form. today is the caller's local ISO date.
func Validate(f Form, today string) Result {
	var res Result

	if !validSessionType(f.SessionType) {
		res.add("session_type", "Please select a session type")
	}

	if f.SessionMode != models.SessionModePrivate && f.SessionMode != models.SessionModeGroup {
		res.add("session_mode", "Please choose private or group session")
	}

	switch {
	case strings.TrimSpace(f.BookingDate) == "":
		res.add("booking_date", "Please select a date")
	case !validDate(f.BookingDate):
		res.add("booking_date", "Please select a valid date")
	case f.BookingDate < today:
		res.add("booking_date", "Please select today or a future date")
	}

	if !validTimeSlot(f.TimeSlot) {
		res.add("time_slot", "Please select a time slot")
	}

	checkContact(&res, f)

	if f.PaymentMethod != "" && !validPaymentMethod(f.PaymentMethod) {
		res.add("payment_method", "Please select a payment method")
	}

	return res
}

// ValidateEdit checks an edited booking. Past dates are accepted so old
// bookings stay editable; choices are checked after the text fields.
func ValidateEdit(f Form) Result {
	var res Result

	if strings.TrimSpace(f.BookingDate) == "" {
		res.add("booking_date", "Please select a date")
	} else if !validDate(f.BookingDate) {
		res.add("booking_date", "Please select a valid date")
	}

	checkContact(&res, f)

	if !validSessionType(f.SessionType) {
		res.add("session_type", "Please select a session type")
	}

	if f.SessionMode != models.SessionModePrivate && f.SessionMode != models.SessionModeGroup {
		res.add("session_mode", "Please choose private or group session")
	}

	if !validTimeSlot(f.TimeSlot) {
		res.add("time_slot", "Please select a time slot")
	}

	if f.PaymentMethod != "" && !validPaymentMethod(f.PaymentMethod) {
		res.add("payment_method", "Please select a payment method")
	}

	return res
}

// ApplyEdit copies an edited form onto b, re-deriving the price.
func ApplyEdit(b *models.Booking, f Form) {
	b.SessionType = f.SessionType
	b.SessionMode = f.SessionMode
	b.BookingDate = f.BookingDate
	b.TimeSlot = f.TimeSlot
	b.FullName = strings.TrimSpace(f.FullName)
	b.Email = strings.TrimSpace(f.Email)
	b.Phone = strings.TrimSpace(f.Phone)
	b.SpecialRequest = strings.TrimSpace(f.SpecialRequest)
	if f.PaymentMethod != "" {
		b.PaymentMethod = f.PaymentMethod
	}
	b.Amount = Amount(f.SessionMode)
	b.DurationMinutes = DurationMinutes
}

func checkContact(res *Result, f Form) {
	if strings.TrimSpace(f.FullName) == "" {
		res.add("full_name", "Please enter your full name")
	}

	switch {
	case strings.TrimSpace(f.Email) == "":
		res.add("email", "Please enter your email")
	case !validEmail(f.Email):
		res.add("email", "Please enter a valid email")
	}

	if strings.TrimSpace(f.Phone) == "" {
		res.add("phone", "Please enter your phone number")
	}
}

func validDate(s string) bool {
	_, err := time.Parse(dateLayout, s)
	return err == nil
}

func validEmail(s string) bool {
	return validate.Var(s, "required,email") == nil
}

// NewBooking builds the record for a validated form. Price and duration
// are always derived here, never taken from the caller.
func NewBooking(f Form) models.Booking {
	method := f.PaymentMethod
	if method == "" {
		method = models.PaymentMethodEsewa
	}

	return models.Booking{
		SessionType:     f.SessionType,
		SessionMode:     f.SessionMode,
		BookingDate:     f.BookingDate,
		TimeSlot:        f.TimeSlot,
		FullName:        strings.TrimSpace(f.FullName),
		Email:           strings.TrimSpace(f.Email),
		Phone:           strings.TrimSpace(f.Phone),
		SpecialRequest:  strings.TrimSpace(f.SpecialRequest),
		PaymentMethod:   method,
		Amount:          Amount(f.SessionMode),
		DurationMinutes: DurationMinutes,
		Status:          models.BookingStatusUpcoming,
		PaymentStatus:   models.PaymentStatusPending,
	}
}

// FormOf is the inverse of NewBooking, used to pre-fill edits.
func FormOf(b models.Booking) Form {
	return Form{
		SessionType:    b.SessionType,
		SessionMode:    b.SessionMode,
		BookingDate:    b.BookingDate,
		TimeSlot:       b.TimeSlot,
		FullName:       b.FullName,
		Email:          b.Email,
		Phone:          b.Phone,
		SpecialRequest: b.SpecialRequest,
		PaymentMethod:  b.PaymentMethod,
	}
}
