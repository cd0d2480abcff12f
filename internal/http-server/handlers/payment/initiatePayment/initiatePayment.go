package initiatePayment

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"tridivya/internal/http-server/middleware/auth"
	"tridivya/internal/lib/api/response"
	"tridivya/internal/lib/logger/sl"
	"tridivya/internal/models"
	"tridivya/internal/payment/esewa"
	"tridivya/internal/storage"
)

type Request struct {
	BookingID string `json:"booking_id" validate:"required,uuid"`
	Amount    int    `json:"amount" validate:"required,min=1"`
}

type Response struct {
	response.Response
	esewa.Redirect
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=PaymentStore
type PaymentStore interface {
	GetBooking(ctx context.Context, id uuid.UUID) (*models.Booking, error)
	SetTransaction(ctx context.Context, id uuid.UUID, transactionUUID string) error
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Gateway
type Gateway interface {
	TransactionUUID(bookingID string) string
	Initiate(transactionUUID string, amount int) esewa.Redirect
}

// New handles POST /payments/esewa/initiate. payments may be nil.
func New(log *slog.Logger, store PaymentStore, gateway Gateway, payments *prometheus.CounterVec) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.payment.initiatePayment.New"

		log := log.With(slog.String("op", op))

		fail := func(status int, msg string) {
			if payments != nil {
				payments.WithLabelValues("initiate", "rejected").Inc()
			}
			render.Status(r, status)
			render.JSON(w, r, response.Error(msg))
		}

		claims, ok := auth.ClaimsFrom(r.Context())
		if !ok {
			fail(http.StatusUnauthorized, "authorization required")
			return
		}

		var req Request

		if err := render.DecodeJSON(r.Body, &req); err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			fail(http.StatusBadRequest, "failed to decode request")
			return
		}

		if err := validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))
			return
		}

		id := uuid.MustParse(req.BookingID)
		log = log.With(slog.String("booking_id", id.String()))

		b, err := store.GetBooking(r.Context(), id)
		if err != nil {
			if errors.Is(err, storage.ErrBookingNotFound) {
				fail(http.StatusNotFound, "booking not found")
				return
			}
			log.Error("failed to get booking", sl.Err(err))
			fail(http.StatusInternalServerError, "failed to initiate payment")
			return
		}

		if b.UserID != claims.UserID && claims.Role != models.RoleAdmin {
			fail(http.StatusNotFound, "booking not found")
			return
		}

		switch {
		case b.Status != models.BookingStatusUpcoming:
			fail(http.StatusConflict, "booking is not upcoming")
			return
		case b.PaymentStatus == models.PaymentStatusPaid:
			fail(http.StatusConflict, "booking is already paid")
			return
		case b.PaymentMethod != models.PaymentMethodEsewa:
			fail(http.StatusBadRequest, "booking is not an esewa payment")
			return
		case req.Amount != b.Amount:
			log.Info("amount mismatch", slog.Int("sent", req.Amount), slog.Int("amount", b.Amount))
			fail(http.StatusBadRequest, "amount does not match booking")
			return
		}

		txn := gateway.TransactionUUID(b.ID.String())

		if err = store.SetTransaction(r.Context(), b.ID, txn); err != nil {
			log.Error("failed to record transaction", sl.Err(err))
			fail(http.StatusInternalServerError, "failed to initiate payment")
			return
		}

		redirect := gateway.Initiate(txn, b.Amount)

		if payments != nil {
			payments.WithLabelValues("initiate", "ok").Inc()
		}

		log.Info("payment initiated", slog.String("transaction_uuid", txn))

		render.JSON(w, r, Response{Response: response.OK(), Redirect: redirect})
	}
}
