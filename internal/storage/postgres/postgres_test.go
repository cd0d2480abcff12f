package postgres

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

func newMock(t *testing.T) (*Storage, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	})

	return New(db), mock
}

func TestMigrate(t *testing.T) {
	t.Parallel()

	s, mock := newMock(t)

	for _, table := range []string{"users", "bookings", "content_items", "saved_content", "user_settings", "announcements"} {
		mock.ExpectExec("CREATE TABLE IF NOT EXISTS " + table).WillReturnResult(sqlmock.NewResult(0, 0))
	}

	require.NoError(t, s.Migrate(context.Background()))
}
