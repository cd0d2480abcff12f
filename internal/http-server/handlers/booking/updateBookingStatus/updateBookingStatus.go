package updateBookingStatus

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"tridivya/internal/lib/api/params"
	"tridivya/internal/lib/api/response"
	"tridivya/internal/lib/logger/sl"
	"tridivya/internal/models"
	"tridivya/internal/storage"
)

type Request struct {
	Status models.BookingStatus `json:"status" validate:"required,oneof=upcoming completed cancelled"`
}

type Response struct {
	response.Response
	Booking *models.Booking `json:"booking,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingStatusUpdater
type BookingStatusUpdater interface {
	UpdateBookingStatus(ctx context.Context, id uuid.UUID, status models.BookingStatus) (*models.Booking, error)
}

// New handles the admin status select. Any valid status may follow any other.
func New(log *slog.Logger, updater BookingStatusUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.updateBookingStatus.New"

		log := log.With(slog.String("op", op))

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

		var req Request

		if err = render.DecodeJSON(r.Body, &req); err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))
			return
		}

		b, err := updater.UpdateBookingStatus(r.Context(), id, req.Status)
		if err != nil {
			if errors.Is(err, storage.ErrBookingNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("booking not found"))
				return
			}
			log.Error("failed to update booking status", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to update booking status"))
			return
		}

		log.Info("booking status updated", slog.String("booking_id", id.String()), slog.String("status", string(b.Status)))

		render.JSON(w, r, Response{Response: response.OK(), Booking: b})
	}
}
