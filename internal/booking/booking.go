// Package booking holds the session booking rules shared by the API
// and the booking client: catalogue values, pricing and form checks.
package booking

import (
	"tridivya/internal/models"
)

const DurationMinutes = 60

const (
	PrivatePrice = 1500
	GroupPrice   = 1000
)

var SessionTypes = []string{
	"Yoga Practice",
	"Guided Meditation",
	"Mantra Chanting",
	"Breathwork",
	"Sound Healing",
	"Mindfulness Coaching",
	"Spiritual Counseling",
	"Wellness Consultation",
}

var TimeSlots = []string{
	"07:00 AM",
	"09:30 AM",
	"12:00 PM",
	"03:00 PM",
	"05:30 PM",
	"07:00 PM",
}

var PaymentMethods = []models.PaymentMethod{
	models.PaymentMethodEsewa,
	models.PaymentMethodKhalti,
	models.PaymentMethodCash,
}

var Statuses = []models.BookingStatus{
	models.BookingStatusUpcoming,
	models.BookingStatusCompleted,
	models.BookingStatusCancelled,
}

// ModeOf maps the private/group toggle to a session mode.
func ModeOf(isPrivate bool) models.SessionMode {
	if isPrivate {
		return models.SessionModePrivate
	}

	return models.SessionModeGroup
}

// Amount is the fixed price of a session in the given mode.
func Amount(mode models.SessionMode) int {
	if mode == models.SessionModePrivate {
		return PrivatePrice
	}

	return GroupPrice
}

func ValidStatus(s models.BookingStatus) bool {
	for _, v := range Statuses {
		if v == s {
			return true
		}
	}

	return false
}

func validSessionType(s string) bool {
	return contains(SessionTypes, s)
}

func validTimeSlot(s string) bool {
	return contains(TimeSlots, s)
}

func validPaymentMethod(m models.PaymentMethod) bool {
	for _, v := range PaymentMethods {
		if v == m {
			return true
		}
	}

	return false
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}

	return false
}
