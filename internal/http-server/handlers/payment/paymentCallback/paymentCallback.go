package paymentCallback

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"net/http"
	"net/url"

	"github.com/prometheus/client_golang/prometheus"

	"tridivya/internal/lib/logger/sl"
	"tridivya/internal/models"
	"tridivya/internal/payment/esewa"
	"tridivya/internal/storage"
)

const (
	successPath = "/payment/success"
	failurePath = "/payment/failure"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=PaymentRecorder
type PaymentRecorder interface {
	GetBookingByTransaction(ctx context.Context, transactionUUID string) (*models.Booking, error)
	MarkPayment(ctx context.Context, transactionUUID string, status models.PaymentStatus) (*models.Booking, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Verifier
type Verifier interface {
	VerifyCallback(data string) (esewa.Callback, error)
}

// Success handles the gateway's success_url. The payload is only trusted
// after its signature checks out; anything else leaves the booking alone
// and sends the browser to the failure page.
func Success(log *slog.Logger, recorder PaymentRecorder, verifier Verifier, frontendURL string, payments *prometheus.CounterVec) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.payment.paymentCallback.Success"

		log := log.With(slog.String("op", op))

		result := func(res string) {
			if payments != nil {
				payments.WithLabelValues("callback", res).Inc()
			}
		}

		cb, err := verifier.VerifyCallback(r.URL.Query().Get("data"))
		if err != nil {
			log.Warn("rejected payment callback", sl.Err(err))
			result("invalid")
			redirect(w, r, frontendURL, failurePath, url.Values{"reason": {"verification_failed"}})
			return
		}

		log = log.With(slog.String("transaction_uuid", cb.TransactionUUID))

		b, err := recorder.GetBookingByTransaction(r.Context(), cb.TransactionUUID)
		if err != nil {
			log.Error("no booking for transaction", sl.Err(err))
			result("unknown")
			redirect(w, r, frontendURL, failurePath, url.Values{"reason": {"unknown_transaction"}})
			return
		}

		if b.Status != models.BookingStatusUpcoming || b.PaymentStatus == models.PaymentStatusPaid {
			log.Warn("callback for booking that is not payable",
				slog.String("status", string(b.Status)), slog.String("payment_status", string(b.PaymentStatus)))
			result("not_payable")
			redirect(w, r, frontendURL, failurePath, url.Values{"booking_id": {b.ID.String()}, "reason": {"booking_not_payable"}})
			return
		}

		status := models.PaymentStatusPaid
		reason := ""

		amount, err := cb.Amount()
		switch {
		case !cb.Complete():
			status, reason = models.PaymentStatusFailed, "incomplete"
		case err != nil || math.Abs(amount-float64(b.Amount)) > 0.01:
			log.Warn("callback amount mismatch", slog.String("total_amount", cb.TotalAmount), slog.Int("amount", b.Amount))
			status, reason = models.PaymentStatusFailed, "amount_mismatch"
		}

		if _, err = recorder.MarkPayment(r.Context(), cb.TransactionUUID, status); err != nil {
			if errors.Is(err, storage.ErrBookingNotFound) {
				log.Warn("booking stopped being payable before payment was recorded")
				result("not_payable")
				redirect(w, r, frontendURL, failurePath, url.Values{"booking_id": {b.ID.String()}, "reason": {"booking_not_payable"}})
				return
			}
			log.Error("failed to record payment", sl.Err(err))
			result("error")
			redirect(w, r, frontendURL, failurePath, url.Values{"reason": {"internal"}})
			return
		}

		q := url.Values{"booking_id": {b.ID.String()}}

		if status != models.PaymentStatusPaid {
			log.Info("payment failed", slog.String("reason", reason))
			result("failed")
			q.Set("reason", reason)
			redirect(w, r, frontendURL, failurePath, q)
			return
		}

		log.Info("payment completed", slog.String("transaction_code", cb.TransactionCode))
		result("paid")
		redirect(w, r, frontendURL, successPath, q)
	}
}

// Failure handles the gateway's failure_url. eSewa sends nothing signed
// here, so the booking is left for the unpaid sweeper.
func Failure(log *slog.Logger, frontendURL string, payments *prometheus.CounterVec) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.payment.paymentCallback.Failure"

		log.Info("payment cancelled at gateway", slog.String("op", op))

		if payments != nil {
			payments.WithLabelValues("callback", "cancelled").Inc()
		}

		redirect(w, r, frontendURL, failurePath, url.Values{"reason": {"cancelled"}})
	}
}

func redirect(w http.ResponseWriter, r *http.Request, base, path string, q url.Values) {
	target := base + path
	if len(q) > 0 {
		target += "?" + q.Encode()
	}

	http.Redirect(w, r, target, http.StatusSeeOther)
}
