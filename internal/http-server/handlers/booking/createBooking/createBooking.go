package createBooking

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus"

	"tridivya/internal/booking"
	"tridivya/internal/http-server/middleware/auth"
	"tridivya/internal/lib/api/response"
	"tridivya/internal/lib/logger/sl"
	"tridivya/internal/models"
)

type Request struct {
	SessionType    string               `json:"session_type" validate:"required"`
	SessionMode    models.SessionMode   `json:"session_mode" validate:"required,oneof=private group"`
	BookingDate    string               `json:"booking_date" validate:"required"`
	TimeSlot       string               `json:"time_slot" validate:"required"`
	FullName       string               `json:"full_name" validate:"required"`
	Email          string               `json:"email" validate:"required,email"`
	Phone          string               `json:"phone" validate:"required"`
	SpecialRequest string               `json:"special_request"`
	PaymentMethod  models.PaymentMethod `json:"payment_method" validate:"omitempty,oneof=esewa khalti cash"`
	// Amount and DurationMinutes are echoed by the web form; the server
	// derives both and only checks Amount when it is sent.
	Amount          int `json:"amount"`
	DurationMinutes int `json:"duration_minutes"`
}

type Response struct {
	response.Response
	Booking *models.Booking      `json:"booking,omitempty"`
	Fields  []booking.FieldError `json:"fields,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingCreator
type BookingCreator interface {
	CreateBooking(ctx context.Context, b *models.Booking) error
}

// New handles POST /bookings. today returns the service's local ISO date;
// created may be nil.
func New(log *slog.Logger, creator BookingCreator, today func() string, created *prometheus.CounterVec) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.createBooking.New"

		log := log.With(slog.String("op", op))

		claims, ok := auth.ClaimsFrom(r.Context())
		if !ok {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("authorization required"))
			return
		}

		var req Request

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		log.Info("request body decoded", slog.String("session_type", req.SessionType), slog.String("booking_date", req.BookingDate))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))
			return
		}

		form := booking.Form{
			SessionType:    req.SessionType,
			SessionMode:    req.SessionMode,
			BookingDate:    req.BookingDate,
			TimeSlot:       req.TimeSlot,
			FullName:       req.FullName,
			Email:          req.Email,
			Phone:          req.Phone,
			SpecialRequest: req.SpecialRequest,
			PaymentMethod:  req.PaymentMethod,
		}

		if res := booking.Validate(form, today()); !res.OK() {
			log.Info("booking form rejected", slog.String("reason", res.Error()))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, Response{Response: response.Error(res.Errors[0].Message), Fields: res.Errors})
			return
		}

		b := booking.NewBooking(form)
		b.UserID = claims.UserID

		if req.Amount != 0 && req.Amount != b.Amount {
			log.Info("amount mismatch", slog.Int("sent", req.Amount), slog.Int("price", b.Amount))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("amount does not match session price"))
			return
		}

		if err = creator.CreateBooking(r.Context(), &b); err != nil {
			log.Error("failed to create booking", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to create booking"))
			return
		}

		if created != nil {
			created.WithLabelValues(string(b.SessionMode)).Inc()
		}

		log.Info("booking created", slog.String("id", b.ID.String()))

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, Response{Response: response.OK(), Booking: &b})
	}
}
