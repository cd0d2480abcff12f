package deleteBooking

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
	"github.com/google/uuid"

	"tridivya/internal/http-server/middleware/auth"
	"tridivya/internal/lib/api/params"
	"tridivya/internal/lib/api/response"
	"tridivya/internal/lib/logger/sl"
	"tridivya/internal/models"
	"tridivya/internal/storage"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingDeleter
type BookingDeleter interface {
	GetBooking(ctx context.Context, id uuid.UUID) (*models.Booking, error)
	DeleteBooking(ctx context.Context, id uuid.UUID) error
}

func New(log *slog.Logger, deleter BookingDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.deleteBooking.New"

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

		if claims.Role != models.RoleAdmin {
			b, err := deleter.GetBooking(r.Context(), id)
			if err != nil && !errors.Is(err, storage.ErrBookingNotFound) {
				log.Error("failed to get booking", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to delete booking"))
				return
			}
			if err != nil || b.UserID != claims.UserID {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("booking not found"))
				return
			}
		}

		if err = deleter.DeleteBooking(r.Context(), id); err != nil {
			if errors.Is(err, storage.ErrBookingNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("booking not found"))
				return
			}
			log.Error("failed to delete booking", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to delete booking"))
			return
		}

		log.Info("booking deleted")

		render.JSON(w, r, response.OK())
	}
}
