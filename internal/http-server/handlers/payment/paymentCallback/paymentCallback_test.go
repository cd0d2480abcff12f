package paymentCallback

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"tridivya/internal/http-server/handlers/payment/paymentCallback/mocks"
	"tridivya/internal/lib/logger/handlers/slogdiscard"
	"tridivya/internal/models"
	"tridivya/internal/payment/esewa"
	"tridivya/internal/storage"
)

const frontend = "http://localhost:3000"

func TestSuccessHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	id := uuid.New()
	txn := id.String() + "-250601093000"
	b := &models.Booking{ID: id, Amount: 1500, Status: models.BookingStatusUpcoming, PaymentStatus: models.PaymentStatusPending}
	cancelled := &models.Booking{ID: id, Amount: 1500, Status: models.BookingStatusCancelled, PaymentStatus: models.PaymentStatusFailed}
	paid := &models.Booking{ID: id, Amount: 1500, Status: models.BookingStatusUpcoming, PaymentStatus: models.PaymentStatusPaid}

	complete := esewa.Callback{Status: esewa.StatusComplete, TotalAmount: "1,500.0", TransactionUUID: txn, TransactionCode: "000AXYZ"}

	testCases := []struct {
		name       string
		setup      func(rec *mocks.PaymentRecorder, v *mocks.Verifier)
		wantPath   string
		wantReason string
	}{
		{
			name: "Paid",
			setup: func(rec *mocks.PaymentRecorder, v *mocks.Verifier) {
				v.On("VerifyCallback", "payload").Return(complete, nil).Once()
				rec.On("GetBookingByTransaction", mock.Anything, txn).Return(b, nil).Once()
				rec.On("MarkPayment", mock.Anything, txn, models.PaymentStatusPaid).Return(b, nil).Once()
			},
			wantPath: successPath,
		},
		{
			name: "Bad signature leaves booking untouched",
			setup: func(rec *mocks.PaymentRecorder, v *mocks.Verifier) {
				v.On("VerifyCallback", "payload").Return(esewa.Callback{}, esewa.ErrBadSignature).Once()
			},
			wantPath:   failurePath,
			wantReason: "verification_failed",
		},
		{
			name: "Unknown transaction",
			setup: func(rec *mocks.PaymentRecorder, v *mocks.Verifier) {
				v.On("VerifyCallback", "payload").Return(complete, nil).Once()
				rec.On("GetBookingByTransaction", mock.Anything, txn).Return(nil, storage.ErrBookingNotFound).Once()
			},
			wantPath:   failurePath,
			wantReason: "unknown_transaction",
		},
		{
			name: "Amount mismatch marks failed",
			setup: func(rec *mocks.PaymentRecorder, v *mocks.Verifier) {
				cb := complete
				cb.TotalAmount = "10"
				v.On("VerifyCallback", "payload").Return(cb, nil).Once()
				rec.On("GetBookingByTransaction", mock.Anything, txn).Return(b, nil).Once()
				rec.On("MarkPayment", mock.Anything, txn, models.PaymentStatusFailed).Return(b, nil).Once()
			},
			wantPath:   failurePath,
			wantReason: "amount_mismatch",
		},
		{
			name: "Incomplete status marks failed",
			setup: func(rec *mocks.PaymentRecorder, v *mocks.Verifier) {
				cb := complete
				cb.Status = "PENDING"
				v.On("VerifyCallback", "payload").Return(cb, nil).Once()
				rec.On("GetBookingByTransaction", mock.Anything, txn).Return(b, nil).Once()
				rec.On("MarkPayment", mock.Anything, txn, models.PaymentStatusFailed).Return(b, nil).Once()
			},
			wantPath:   failurePath,
			wantReason: "incomplete",
		},
		{
			name: "Cancelled booking is not marked paid",
			setup: func(rec *mocks.PaymentRecorder, v *mocks.Verifier) {
				v.On("VerifyCallback", "payload").Return(complete, nil).Once()
				rec.On("GetBookingByTransaction", mock.Anything, txn).Return(cancelled, nil).Once()
			},
			wantPath:   failurePath,
			wantReason: "booking_not_payable",
		},
		{
			name: "Already paid booking is not marked again",
			setup: func(rec *mocks.PaymentRecorder, v *mocks.Verifier) {
				v.On("VerifyCallback", "payload").Return(complete, nil).Once()
				rec.On("GetBookingByTransaction", mock.Anything, txn).Return(paid, nil).Once()
			},
			wantPath:   failurePath,
			wantReason: "booking_not_payable",
		},
		{
			name: "Cancelled between lookup and update",
			setup: func(rec *mocks.PaymentRecorder, v *mocks.Verifier) {
				v.On("VerifyCallback", "payload").Return(complete, nil).Once()
				rec.On("GetBookingByTransaction", mock.Anything, txn).Return(b, nil).Once()
				rec.On("MarkPayment", mock.Anything, txn, models.PaymentStatusPaid).Return(nil, storage.ErrBookingNotFound).Once()
			},
			wantPath:   failurePath,
			wantReason: "booking_not_payable",
		},
		{
			name: "Storage error",
			setup: func(rec *mocks.PaymentRecorder, v *mocks.Verifier) {
				v.On("VerifyCallback", "payload").Return(complete, nil).Once()
				rec.On("GetBookingByTransaction", mock.Anything, txn).Return(b, nil).Once()
				rec.On("MarkPayment", mock.Anything, txn, models.PaymentStatusPaid).Return(nil, errors.New("database error")).Once()
			},
			wantPath:   failurePath,
			wantReason: "internal",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			rec := mocks.NewPaymentRecorder(t)
			verifier := mocks.NewVerifier(t)
			tc.setup(rec, verifier)

			req := httptest.NewRequest(http.MethodGet, "/payments/esewa/success?data=payload", nil)
			rr := httptest.NewRecorder()

			Success(logger, rec, verifier, frontend, nil).ServeHTTP(rr, req)

			require.Equal(t, http.StatusSeeOther, rr.Code)

			loc, err := url.Parse(rr.Header().Get("Location"))
			require.NoError(t, err)

			assert.Equal(t, "localhost:3000", loc.Host)
			assert.Equal(t, tc.wantPath, loc.Path)
			assert.Equal(t, tc.wantReason, loc.Query().Get("reason"))
		})
	}
}

func TestFailureHandler(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/payments/esewa/failure", nil)
	rr := httptest.NewRecorder()

	Failure(slogdiscard.NewDiscardLogger(), frontend, nil).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, frontend+failurePath+"?reason=cancelled", rr.Header().Get("Location"))
}
