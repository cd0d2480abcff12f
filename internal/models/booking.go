package models

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusUpcoming  BookingStatus = "upcoming"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

type SessionMode string

const (
	SessionModePrivate SessionMode = "private"
	SessionModeGroup   SessionMode = "group"
)

type PaymentMethod string

const (
	PaymentMethodEsewa  PaymentMethod = "esewa"
	PaymentMethodKhalti PaymentMethod = "khalti"
	PaymentMethodCash   PaymentMethod = "cash"
)

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusFailed  PaymentStatus = "failed"
)

type Booking struct {
	ID              uuid.UUID     `json:"id"`
	UserID          uuid.UUID     `json:"user_id"`
	SessionType     string        `json:"session_type"`
	SessionMode     SessionMode   `json:"session_mode"`
	BookingDate     string        `json:"booking_date"`
	TimeSlot        string        `json:"time_slot"`
	FullName        string        `json:"full_name"`
	Email           string        `json:"email"`
	Phone           string        `json:"phone"`
	SpecialRequest  string        `json:"special_request,omitempty"`
	PaymentMethod   PaymentMethod `json:"payment_method"`
	Amount          int           `json:"amount"`
	DurationMinutes int           `json:"duration_minutes"`
	Status          BookingStatus `json:"status"`
	PaymentStatus   PaymentStatus `json:"payment_status"`
	TransactionUUID string        `json:"transaction_uuid,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}
