package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tridivya/internal/booking"
	"tridivya/internal/models"
)

type tokenFunc func() string

func (f tokenFunc) Token() string { return f() }

type recorder struct {
	mu       sync.Mutex
	requests []recorded
}

type recorded struct {
	Method string
	Path   string
	Auth   string
	Body   map[string]any
}

func (rec *recorder) wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		var body map[string]any
		_ = json.Unmarshal(raw, &body)

		rec.mu.Lock()
		rec.requests = append(rec.requests, recorded{
			Method: r.Method,
			Path:   r.URL.Path,
			Auth:   r.Header.Get("Authorization"),
			Body:   body,
		})
		rec.mu.Unlock()

		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func newServer(t *testing.T) (*httptest.Server, *recorder) {
	t.Helper()

	rec := &recorder{}
	r := chi.NewRouter()
	r.Use(rec.wrap)

	r.Post("/api/bookings", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusCreated, map[string]any{
			"status":  "OK",
			"booking": map[string]any{"id": "B1", "status": "upcoming", "amount": 1500},
		})
	})
	r.Get("/api/bookings", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"status": "OK",
			"bookings": []map[string]any{
				{"id": "A", "status": "upcoming"},
				{"id": "B", "status": "completed"},
			},
		})
	})
	r.Put("/api/bookings/{id}", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"status":  "OK",
			"booking": map[string]any{"id": chi.URLParam(r, "id"), "full_name": "Edited"},
		})
	})
	r.Delete("/api/bookings/{id}", func(w http.ResponseWriter, r *http.Request) {
		if chi.URLParam(r, "id") != "X" {
			writeJSON(w, http.StatusNotFound, map[string]any{"status": "Error", "error": "booking not found"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"status": "OK"})
	})
	r.Post("/api/payments/esewa/initiate", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"status":   "OK",
			"esewaUrl": "https://pay.example/v2",
			"formData": map[string]string{"amt": "1500", "pid": "B1"},
		})
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	return srv, rec
}

func aaryaForm() booking.Form {
	return booking.Form{
		SessionType:   "Yoga Practice",
		SessionMode:   models.SessionModePrivate,
		BookingDate:   "2025-06-01",
		TimeSlot:      "09:30 AM",
		FullName:      "Aarya Sharma",
		Email:         "aarya@example.com",
		Phone:         "+977 9800000000",
		PaymentMethod: models.PaymentMethodEsewa,
	}
}

func TestClient_CreateBooking(t *testing.T) {
	t.Parallel()

	srv, rec := newServer(t)
	c := New(srv.URL+"/api", tokenFunc(func() string { return "tok" }), srv.Client())

	b, err := c.CreateBooking(context.Background(), aaryaForm())
	require.NoError(t, err)
	require.NotNil(t, b)
	assert.Equal(t, "B1", b.ID)

	require.Len(t, rec.requests, 1)
	got := rec.requests[0]
	assert.Equal(t, http.MethodPost, got.Method)
	assert.Equal(t, "Bearer tok", got.Auth)
	assert.EqualValues(t, 1500, got.Body["amount"])
	assert.EqualValues(t, 60, got.Body["duration_minutes"])
	assert.Equal(t, "Aarya Sharma", got.Body["full_name"])
	assert.Equal(t, "private", got.Body["session_mode"])
}

func TestClient_ReadsTokenPerCall(t *testing.T) {
	t.Parallel()

	srv, rec := newServer(t)

	token := "first"
	c := New(srv.URL+"/api", tokenFunc(func() string { return token }), srv.Client())

	_, err := c.ListBookings(context.Background())
	require.NoError(t, err)

	token = ""
	_, err = c.ListBookings(context.Background())
	require.NoError(t, err)

	token = "second"
	_, err = c.ListBookings(context.Background())
	require.NoError(t, err)

	require.Len(t, rec.requests, 3)
	assert.Equal(t, "Bearer first", rec.requests[0].Auth)
	assert.Empty(t, rec.requests[1].Auth)
	assert.Equal(t, "Bearer second", rec.requests[2].Auth)
}

func TestClient_ListBookings(t *testing.T) {
	t.Parallel()

	srv, _ := newServer(t)
	c := New(srv.URL+"/api", nil, srv.Client())

	list, err := c.ListBookings(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "A", list[0].ID)
	assert.Equal(t, models.BookingStatusCompleted, list[1].Status)
}

func TestClient_UpdateBooking(t *testing.T) {
	t.Parallel()

	srv, rec := newServer(t)
	c := New(srv.URL+"/api", nil, srv.Client())

	form := aaryaForm()
	form.FullName = "Edited"

	b, err := c.UpdateBooking(context.Background(), "A", form)
	require.NoError(t, err)
	assert.Equal(t, "A", b.ID)
	assert.Equal(t, "Edited", b.FullName)

	require.Len(t, rec.requests, 1)
	assert.Equal(t, http.MethodPut, rec.requests[0].Method)
	assert.Equal(t, "/api/bookings/A", rec.requests[0].Path)
	assert.Equal(t, "2025-06-01", rec.requests[0].Body["booking_date"])
	assert.Equal(t, "+977 9800000000", rec.requests[0].Body["phone"])
}

func TestClient_DeleteBooking(t *testing.T) {
	t.Parallel()

	srv, _ := newServer(t)
	c := New(srv.URL+"/api", nil, srv.Client())

	require.NoError(t, c.DeleteBooking(context.Background(), "X"))

	err := c.DeleteBooking(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, IsNotFound(err))

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "booking not found", apiErr.Message)
}

func TestClient_InitiatePayment(t *testing.T) {
	t.Parallel()

	srv, rec := newServer(t)
	c := New(srv.URL+"/api", tokenFunc(func() string { return "tok" }), srv.Client())

	redirect, err := c.InitiatePayment(context.Background(), 1500, "B1")
	require.NoError(t, err)
	assert.Equal(t, "https://pay.example/v2", redirect.URL)
	assert.Equal(t, map[string]string{"amt": "1500", "pid": "B1"}, redirect.FormData)

	require.Len(t, rec.requests, 1)
	got := rec.requests[0]
	assert.Equal(t, "/api/payments/esewa/initiate", got.Path)
	assert.Equal(t, "B1", got.Body["booking_id"])
	assert.EqualValues(t, 1500, got.Body["amount"])
	assert.Equal(t, "Bearer tok", got.Auth)
}

func TestError_Message(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "request failed with status 502", (&Error{StatusCode: 502}).Error())
	assert.Equal(t, "nope", (&Error{StatusCode: 400, Message: "nope"}).Error())
}
