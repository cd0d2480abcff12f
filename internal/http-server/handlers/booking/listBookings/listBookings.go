package listBookings

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
	"github.com/google/uuid"

	"tridivya/internal/http-server/middleware/auth"
	"tridivya/internal/lib/api/response"
	"tridivya/internal/lib/logger/sl"
	"tridivya/internal/models"
)

type Response struct {
	response.Response
	Bookings []models.Booking `json:"bookings"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingLister
type BookingLister interface {
	ListBookingsByUser(ctx context.Context, userID uuid.UUID) ([]models.Booking, error)
	ListAllBookings(ctx context.Context) ([]models.Booking, error)
}

// New lists the caller's bookings. With all set (admin routes) it lists everyone's.
func New(log *slog.Logger, lister BookingLister, all bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.listBookings.New"

		log := log.With(slog.String("op", op))

		claims, ok := auth.ClaimsFrom(r.Context())
		if !ok {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("authorization required"))
			return
		}

		var (
			bookings []models.Booking
			err      error
		)

		if all {
			bookings, err = lister.ListAllBookings(r.Context())
		} else {
			bookings, err = lister.ListBookingsByUser(r.Context(), claims.UserID)
		}
		if err != nil {
			log.Error("failed to list bookings", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get bookings"))
			return
		}

		log.Info("bookings retrieved successfully", slog.Int("count", len(bookings)))

		render.JSON(w, r, Response{
			Response: response.OK(),
			Bookings: bookings,
		})
	}
}
