// Package api is the client for the booking and payment endpoints.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"tridivya/internal/booking"
	"tridivya/internal/models"
	"tridivya/internal/payment/esewa"
)

const defaultTimeout = 15 * time.Second

// Booking is a booking as the API returns it. The id stays a string so a
// malformed response can be told apart from a decode error.
type Booking struct {
	ID              string               `json:"id"`
	UserID          string               `json:"user_id,omitempty"`
	SessionType     string               `json:"session_type"`
	SessionMode     models.SessionMode   `json:"session_mode"`
	BookingDate     string               `json:"booking_date"`
	TimeSlot        string               `json:"time_slot"`
	FullName        string               `json:"full_name"`
	Email           string               `json:"email"`
	Phone           string               `json:"phone"`
	SpecialRequest  string               `json:"special_request,omitempty"`
	PaymentMethod   models.PaymentMethod `json:"payment_method"`
	Amount          int                  `json:"amount"`
	DurationMinutes int                  `json:"duration_minutes"`
	Status          models.BookingStatus `json:"status"`
	PaymentStatus   models.PaymentStatus `json:"payment_status,omitempty"`
}

// Form returns the editable fields of b.
func (b Booking) Form() booking.Form {
	return booking.Form{
		SessionType:    b.SessionType,
		SessionMode:    b.SessionMode,
		BookingDate:    b.BookingDate,
		TimeSlot:       b.TimeSlot,
		FullName:       b.FullName,
		Email:          b.Email,
		Phone:          b.Phone,
		SpecialRequest: b.SpecialRequest,
		PaymentMethod:  b.PaymentMethod,
	}
}

// Error is a non-2xx answer from the API.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("request failed with status %d", e.StatusCode)
	}
	return e.Message
}

func IsNotFound(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

type TokenSource interface {
	Token() string
}

type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
}

// New builds a client for the API rooted at baseURL (".../api"). tokens
// is consulted on every request; httpClient may be nil.
func New(baseURL string, tokens TokenSource, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
		tokens:  tokens,
	}
}

type envelope struct {
	Status string `json:"status"`
	Error  string `json:"error"`
}

type createRequest struct {
	booking.Form
	Amount          int `json:"amount"`
	DurationMinutes int `json:"duration_minutes"`
}

// CreateBooking submits a new booking with its derived price and duration.
func (c *Client) CreateBooking(ctx context.Context, form booking.Form) (*Booking, error) {
	const op = "api.CreateBooking"

	body := createRequest{
		Form:            form,
		Amount:          booking.Amount(form.SessionMode),
		DurationMinutes: booking.DurationMinutes,
	}

	var resp struct {
		envelope
		Booking *Booking `json:"booking"`
	}

	if err := c.do(ctx, http.MethodPost, "/bookings", body, &resp); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return resp.Booking, nil
}

// UpdateBooking sends the full field set; the server does not patch.
func (c *Client) UpdateBooking(ctx context.Context, id string, form booking.Form) (*Booking, error) {
	const op = "api.UpdateBooking"

	var resp struct {
		envelope
		Booking *Booking `json:"booking"`
	}

	if err := c.do(ctx, http.MethodPut, "/bookings/"+id, form, &resp); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if resp.Booking == nil {
		return nil, fmt.Errorf("%s: response carried no booking", op)
	}

	return resp.Booking, nil
}

func (c *Client) DeleteBooking(ctx context.Context, id string) error {
	const op = "api.DeleteBooking"

	if err := c.do(ctx, http.MethodDelete, "/bookings/"+id, nil, nil); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (c *Client) ListBookings(ctx context.Context) ([]Booking, error) {
	const op = "api.ListBookings"

	var resp struct {
		envelope
		Bookings []Booking `json:"bookings"`
	}

	if err := c.do(ctx, http.MethodGet, "/bookings", nil, &resp); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return resp.Bookings, nil
}

// InitiatePayment asks the server for a signed eSewa redirect.
func (c *Client) InitiatePayment(ctx context.Context, amount int, bookingID string) (esewa.Redirect, error) {
	const op = "api.InitiatePayment"

	body := struct {
		BookingID string `json:"booking_id"`
		Amount    int    `json:"amount"`
	}{bookingID, amount}

	var resp struct {
		envelope
		esewa.Redirect
	}

	if err := c.do(ctx, http.MethodPost, "/payments/esewa/initiate", body, &resp); err != nil {
		return esewa.Redirect{}, fmt.Errorf("%s: %w", op, err)
	}

	if resp.URL == "" {
		return esewa.Redirect{}, fmt.Errorf("%s: response carried no gateway url", op)
	}

	return resp.Redirect, nil
}

// Login exchanges credentials for a token, for callers without a browser.
func (c *Client) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	const op = "api.Login"

	body := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{email, password}

	var resp struct {
		envelope
		Token string       `json:"token"`
		User  *models.User `json:"user"`
	}

	if err := c.do(ctx, http.MethodPost, "/auth/login", body, &resp); err != nil {
		return "", nil, fmt.Errorf("%s: %w", op, err)
	}

	return resp.Token, resp.User, nil
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}

	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var env envelope
		_ = json.Unmarshal(raw, &env)
		return &Error{StatusCode: resp.StatusCode, Message: env.Error}
	}

	if out == nil || len(raw) == 0 {
		return nil
	}

	if err = json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
