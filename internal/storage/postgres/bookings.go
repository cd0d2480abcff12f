package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"tridivya/internal/models"
	"tridivya/internal/storage"
)

const bookingColumns = `
	id, user_id, session_type, session_mode, booking_date::text, time_slot,
	full_name, email, phone, special_request, payment_method, amount,
	duration_minutes, status, payment_status, transaction_uuid,
	created_at, updated_at`

func scanBooking(row scanner) (*models.Booking, error) {
	var b models.Booking

	err := row.Scan(
		&b.ID,
		&b.UserID,
		&b.SessionType,
		&b.SessionMode,
		&b.BookingDate,
		&b.TimeSlot,
		&b.FullName,
		&b.Email,
		&b.Phone,
		&b.SpecialRequest,
		&b.PaymentMethod,
		&b.Amount,
		&b.DurationMinutes,
		&b.Status,
		&b.PaymentStatus,
		&b.TransactionUUID,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &b, nil
}

func (s *Storage) CreateBooking(ctx context.Context, b *models.Booking) error {
	const op = "storage.postgres.CreateBooking"

	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}

	query := `
		INSERT INTO bookings (
			id, user_id, session_type, session_mode, booking_date, time_slot,
			full_name, email, phone, special_request, payment_method, amount,
			duration_minutes, status, payment_status
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING created_at, updated_at`

	err := s.DB.QueryRowContext(ctx, query,
		b.ID,
		b.UserID,
		b.SessionType,
		b.SessionMode,
		b.BookingDate,
		b.TimeSlot,
		b.FullName,
		b.Email,
		b.Phone,
		b.SpecialRequest,
		b.PaymentMethod,
		b.Amount,
		b.DurationMinutes,
		b.Status,
		b.PaymentStatus,
	).Scan(&b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Storage) GetBooking(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	const op = "storage.postgres.GetBooking"

	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	b, err := scanBooking(s.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrBookingNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return b, nil
}

func (s *Storage) GetBookingByTransaction(ctx context.Context, transactionUUID string) (*models.Booking, error) {
	const op = "storage.postgres.GetBookingByTransaction"

	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE transaction_uuid = $1 AND transaction_uuid <> ''`

	b, err := scanBooking(s.DB.QueryRowContext(ctx, query, transactionUUID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrBookingNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return b, nil
}

func (s *Storage) ListBookingsByUser(ctx context.Context, userID uuid.UUID) ([]models.Booking, error) {
	const op = "storage.postgres.ListBookingsByUser"

	query := `SELECT ` + bookingColumns + `
		FROM bookings
		WHERE user_id = $1
		ORDER BY booking_date ASC, created_at ASC`

	bookings, err := s.queryBookings(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return bookings, nil
}

func (s *Storage) ListAllBookings(ctx context.Context) ([]models.Booking, error) {
	const op = "storage.postgres.ListAllBookings"

	query := `SELECT ` + bookingColumns + `
		FROM bookings
		ORDER BY booking_date ASC, created_at ASC`

	bookings, err := s.queryBookings(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return bookings, nil
}

func (s *Storage) queryBookings(ctx context.Context, query string, args ...any) ([]models.Booking, error) {
	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings := make([]models.Booking, 0)
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan booking: %w", err)
		}
		bookings = append(bookings, *b)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bookings: %w", err)
	}

	return bookings, nil
}

// UpdateBooking overwrites every user editable field. Last write wins.
func (s *Storage) UpdateBooking(ctx context.Context, b *models.Booking) error {
	const op = "storage.postgres.UpdateBooking"

	query := `
		UPDATE bookings
		SET session_type = $2,
			session_mode = $3,
			booking_date = $4,
			time_slot = $5,
			full_name = $6,
			email = $7,
			phone = $8,
			special_request = $9,
			payment_method = $10,
			amount = $11,
			duration_minutes = $12,
			updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	err := s.DB.QueryRowContext(ctx, query,
		b.ID,
		b.SessionType,
		b.SessionMode,
		b.BookingDate,
		b.TimeSlot,
		b.FullName,
		b.Email,
		b.Phone,
		b.SpecialRequest,
		b.PaymentMethod,
		b.Amount,
		b.DurationMinutes,
	).Scan(&b.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.ErrBookingNotFound
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Storage) UpdateBookingStatus(ctx context.Context, id uuid.UUID, status models.BookingStatus) (*models.Booking, error) {
	const op = "storage.postgres.UpdateBookingStatus"

	query := `
		UPDATE bookings
		SET status = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + bookingColumns

	b, err := scanBooking(s.DB.QueryRowContext(ctx, query, id, status))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrBookingNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return b, nil
}

func (s *Storage) DeleteBooking(ctx context.Context, id uuid.UUID) error {
	const op = "storage.postgres.DeleteBooking"

	res, err := s.DB.ExecContext(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if n == 0 {
		return storage.ErrBookingNotFound
	}

	return nil
}

// SetTransaction records the gateway transaction id a booking is being paid under.
func (s *Storage) SetTransaction(ctx context.Context, id uuid.UUID, transactionUUID string) error {
	const op = "storage.postgres.SetTransaction"

	res, err := s.DB.ExecContext(ctx, `
		UPDATE bookings
		SET transaction_uuid = $2, updated_at = NOW()
		WHERE id = $1`, id, transactionUUID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if n == 0 {
		return storage.ErrBookingNotFound
	}

	return nil
}

// MarkPayment sets the payment status of the booking paid under transactionUUID.
func (s *Storage) MarkPayment(ctx context.Context, transactionUUID string, status models.PaymentStatus) (*models.Booking, error) {
	const op = "storage.postgres.MarkPayment"

	query := `
		UPDATE bookings
		SET payment_status = $2, updated_at = NOW()
		WHERE transaction_uuid = $1 AND transaction_uuid <> ''
		AND status = 'upcoming' AND payment_status <> 'paid'
		RETURNING ` + bookingColumns

	b, err := scanBooking(s.DB.QueryRowContext(ctx, query, transactionUUID, status))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrBookingNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return b, nil
}

// CancelUnpaidBookings cancels bookings whose gateway payment was started
// but not completed within deadline. Bookings that never began a payment
// (cash, or methods without a gateway) are left for the user or an admin.
func (s *Storage) CancelUnpaidBookings(ctx context.Context, deadline time.Duration) (int64, error) {
	const op = "storage.postgres.CancelUnpaidBookings"

	query := `
		UPDATE bookings
		SET status = 'cancelled', payment_status = 'failed', updated_at = NOW()
		WHERE status = 'upcoming'
		AND payment_status = 'pending'
		AND payment_method = 'esewa'
		AND transaction_uuid <> ''
		AND created_at < NOW() - INTERVAL '1 second' * $1`

	res, err := s.DB.ExecContext(ctx, query, int64(deadline.Seconds()))
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return n, nil
}
