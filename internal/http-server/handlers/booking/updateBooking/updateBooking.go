package updateBooking

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
	"github.com/google/uuid"

	"tridivya/internal/booking"
	"tridivya/internal/http-server/middleware/auth"
	"tridivya/internal/lib/api/params"
	"tridivya/internal/lib/api/response"
	"tridivya/internal/lib/logger/sl"
	"tridivya/internal/models"
	"tridivya/internal/storage"
)

type Response struct {
	response.Response
	Booking *models.Booking      `json:"booking,omitempty"`
	Fields  []booking.FieldError `json:"fields,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingUpdater
type BookingUpdater interface {
	GetBooking(ctx context.Context, id uuid.UUID) (*models.Booking, error)
	UpdateBooking(ctx context.Context, b *models.Booking) error
}

// New handles PUT /bookings/{id}. The body carries the full field set.
// Owners may edit while the booking is upcoming, admins any time.
func New(log *slog.Logger, updater BookingUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.updateBooking.New"

		log := log.With(slog.String("op", op))

		claims, ok := auth.ClaimsFrom(r.Context())
		if !ok {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("authorization required"))
			return
		}

		id, err := params.UUID(r, "id")
		if err != nil {
			log.Error("bad booking id", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			if errors.Is(err, params.ErrMissing) {
				render.JSON(w, r, response.Error("booking id is required"))
			} else {
				render.JSON(w, r, response.Error("invalid booking id format"))
			}
			return
		}

		log = log.With(slog.String("booking_id", id.String()))

		var form booking.Form

		if err = render.DecodeJSON(r.Body, &form); err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		if res := booking.ValidateEdit(form); !res.OK() {
			log.Info("booking edit rejected", slog.String("reason", res.Error()))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, Response{Response: response.Error(res.Errors[0].Message), Fields: res.Errors})
			return
		}

		current, err := updater.GetBooking(r.Context(), id)
		if err != nil {
			if errors.Is(err, storage.ErrBookingNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("booking not found"))
				return
			}
			log.Error("failed to get booking", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to update booking"))
			return
		}

		isAdmin := claims.Role == models.RoleAdmin

		if !isAdmin && current.UserID != claims.UserID {
			// not revealing other users' bookings
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("booking not found"))
			return
		}

		if !isAdmin && current.Status != models.BookingStatusUpcoming {
			render.Status(r, http.StatusConflict)
			render.JSON(w, r, response.Error("only upcoming bookings can be edited"))
			return
		}

		booking.ApplyEdit(current, form)

		if err = updater.UpdateBooking(r.Context(), current); err != nil {
			if errors.Is(err, storage.ErrBookingNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("booking not found"))
				return
			}
			log.Error("failed to update booking", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to update booking"))
			return
		}

		log.Info("booking updated")

		render.JSON(w, r, Response{Response: response.OK(), Booking: current})
	}
}
