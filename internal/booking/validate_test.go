package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tridivya/internal/models"
)

func validForm() Form {
	return Form{
		SessionType:   "Yoga Practice",
		SessionMode:   models.SessionModePrivate,
		BookingDate:   "2025-06-01",
		TimeSlot:      "09:30 AM",
		FullName:      "Aarya Sharma",
		Email:         "aarya@example.com",
		Phone:         "+977 9800000000",
		PaymentMethod: models.PaymentMethodEsewa,
	}
}

func TestAmount(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1500, Amount(ModeOf(true)))
	assert.Equal(t, 1000, Amount(ModeOf(false)))
	assert.Equal(t, 1000, Amount(""))
}

func TestValidate(t *testing.T) {
	t.Parallel()

	const today = "2025-05-20"

	testCases := []struct {
		name      string
		mutate    func(f *Form)
		wantField string
		wantMsg   string
	}{
		{
			name:   "Valid form",
			mutate: func(f *Form) {},
		},
		{
			name:      "Missing date",
			mutate:    func(f *Form) { f.BookingDate = "" },
			wantField: "booking_date",
			wantMsg:   "Please select a date",
		},
		{
			name:      "Past date",
			mutate:    func(f *Form) { f.BookingDate = "2025-05-19" },
			wantField: "booking_date",
			wantMsg:   "Please select today or a future date",
		},
		{
			name:   "Today is allowed",
			mutate: func(f *Form) { f.BookingDate = today },
		},
		{
			name:      "Malformed date",
			mutate:    func(f *Form) { f.BookingDate = "01/06/2025" },
			wantField: "booking_date",
			wantMsg:   "Please select a valid date",
		},
		{
			name:      "Missing full name",
			mutate:    func(f *Form) { f.FullName = "  " },
			wantField: "full_name",
			wantMsg:   "Please enter your full name",
		},
		{
			name:      "Missing email",
			mutate:    func(f *Form) { f.Email = "" },
			wantField: "email",
			wantMsg:   "Please enter your email",
		},
		{
			name:      "Bad email",
			mutate:    func(f *Form) { f.Email = "not-an-email" },
			wantField: "email",
			wantMsg:   "Please enter a valid email",
		},
		{
			name:      "Missing phone",
			mutate:    func(f *Form) { f.Phone = "" },
			wantField: "phone",
			wantMsg:   "Please enter your phone number",
		},
		{
			name:      "Unknown session type",
			mutate:    func(f *Form) { f.SessionType = "Karaoke" },
			wantField: "session_type",
		},
		{
			name:      "Unknown slot",
			mutate:    func(f *Form) { f.TimeSlot = "11:11 PM" },
			wantField: "time_slot",
		},
		{
			name:      "Unknown payment method",
			mutate:    func(f *Form) { f.PaymentMethod = "bitcoin" },
			wantField: "payment_method",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			f := validForm()
			tc.mutate(&f)

			res := Validate(f, today)

			if tc.wantField == "" {
				assert.True(t, res.OK(), res.Error())
				return
			}

			first, ok := res.First()
			require.True(t, ok)
			assert.Equal(t, tc.wantField, first.Field)
			if tc.wantMsg != "" {
				assert.Equal(t, tc.wantMsg, first.Message)
			}
		})
	}
}

func TestValidateKeepsCheckOrder(t *testing.T) {
	t.Parallel()

	res := Validate(Form{SessionType: "Yoga Practice", SessionMode: models.SessionModeGroup, TimeSlot: "07:00 AM"}, "2025-01-01")

	require.Len(t, res.Errors, 4)
	assert.Equal(t, "booking_date", res.Errors[0].Field)
	assert.Equal(t, "full_name", res.Errors[1].Field)
	assert.Equal(t, "email", res.Errors[2].Field)
	assert.Equal(t, "phone", res.Errors[3].Field)
}

func TestValidateEdit(t *testing.T) {
	t.Parallel()

	for _, field := range []string{"booking_date", "full_name", "email", "phone"} {
		field := field
		t.Run(field, func(t *testing.T) {
			t.Parallel()

			f := validForm()
			switch field {
			case "booking_date":
				f.BookingDate = ""
			case "full_name":
				f.FullName = ""
			case "email":
				f.Email = ""
			case "phone":
				f.Phone = ""
			}

			res := ValidateEdit(f)
			first, ok := res.First()
			require.True(t, ok)
			assert.Equal(t, field, first.Field)
		})
	}

	// past dates are fine when editing an old booking
	f := validForm()
	f.BookingDate = "2020-01-01"
	assert.True(t, ValidateEdit(f).OK())
}

func TestNewBookingDerivesPrice(t *testing.T) {
	t.Parallel()

	f := validForm()
	b := NewBooking(f)

	assert.Equal(t, 1500, b.Amount)
	assert.Equal(t, 60, b.DurationMinutes)
	assert.Equal(t, models.BookingStatusUpcoming, b.Status)
	assert.Equal(t, models.PaymentStatusPending, b.PaymentStatus)

	f.SessionMode = models.SessionModeGroup
	f.PaymentMethod = ""
	b = NewBooking(f)

	assert.Equal(t, 1000, b.Amount)
	assert.Equal(t, models.PaymentMethodEsewa, b.PaymentMethod)
	assert.Equal(t, f, FormOf(b).withMethod(""))
}

func TestToday(t *testing.T) {
	t.Parallel()

	loc := time.FixedZone("NPT", 5*3600+45*60)
	// 20:00 UTC on May 31 is already June 1 in Kathmandu
	now := time.Date(2025, 5, 31, 20, 0, 0, 0, time.UTC).In(loc)

	assert.Equal(t, "2025-06-01", Today(now))
}

func (f Form) withMethod(m models.PaymentMethod) Form {
	f.PaymentMethod = m
	return f
}
