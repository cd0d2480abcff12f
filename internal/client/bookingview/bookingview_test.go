package bookingview

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"tridivya/internal/booking"
	"tridivya/internal/client/api"
	"tridivya/internal/client/bookingview/mocks"
	"tridivya/internal/models"
)

func fixture() []api.Booking {
	return []api.Booking{
		{ID: "A", Status: models.BookingStatusUpcoming, BookingDate: "2025-06-01", FullName: "Aarya Sharma", Email: "aarya@example.com", Phone: "1", SessionType: "Yoga Practice", SessionMode: models.SessionModePrivate, TimeSlot: "09:30 AM"},
		{ID: "X", Status: models.BookingStatusUpcoming, BookingDate: "2025-06-03", FullName: "Bina Rai", Email: "bina@example.com", Phone: "2", SessionType: "Breathwork", SessionMode: models.SessionModeGroup, TimeSlot: "07:00 AM"},
		{ID: "C", Status: models.BookingStatusCompleted, BookingDate: "2025-05-02"},
		{ID: "D", Status: models.BookingStatusCancelled, BookingDate: "2025-06-01"},
		{ID: "E", Status: models.BookingStatusUpcoming, BookingDate: "2025-06-01"},
	}
}

func loaded(t *testing.T) (*View, *mocks.API, *mocks.Notifier) {
	t.Helper()

	client := mocks.NewAPI(t)
	notifier := mocks.NewNotifier(t)

	client.On("ListBookings", mock.Anything).Return(fixture(), nil).Once()

	v := New(client, notifier)
	require.NoError(t, v.Load(context.Background()))

	return v, client, notifier
}

func ids(list []api.Booking) []string {
	out := make([]string, 0, len(list))
	for _, b := range list {
		out = append(out, b.ID)
	}
	return out
}

func TestView_LoadOnce(t *testing.T) {
	t.Parallel()

	v, client, _ := loaded(t)

	require.NoError(t, v.Load(context.Background()))
	client.AssertNumberOfCalls(t, "ListBookings", 1)
	assert.Len(t, v.Bookings(), 5)
}

func TestView_LoadError(t *testing.T) {
	t.Parallel()

	client := mocks.NewAPI(t)
	notifier := mocks.NewNotifier(t)

	client.On("ListBookings", mock.Anything).
		Return(nil, &api.Error{StatusCode: http.StatusUnauthorized, Message: "unauthorized"}).Once()
	notifier.On("Error", "unauthorized").Return().Once()

	v := New(client, notifier)
	require.Error(t, v.Load(context.Background()))
	assert.Empty(t, v.Bookings())
}

func TestView_TabsAndDate(t *testing.T) {
	t.Parallel()

	v, _, _ := loaded(t)

	assert.Equal(t, []string{"A", "X", "E"}, ids(v.Visible()))

	v.SetDate("2025-06-01")
	assert.Equal(t, []string{"A", "E"}, ids(v.Visible()))

	v.SetTab(TabCancelled)
	assert.Equal(t, []string{"D"}, ids(v.Visible()))

	v.SetTab(TabCompleted)
	assert.Empty(t, v.Visible())

	v.SetDate("")
	assert.Equal(t, []string{"C"}, ids(v.Visible()))

	assert.Equal(t, map[Tab]int{TabUpcoming: 3, TabCompleted: 1, TabCancelled: 1}, v.Counts())
}

func TestView_DeleteExisting(t *testing.T) {
	t.Parallel()

	v, client, notifier := loaded(t)

	client.On("DeleteBooking", mock.Anything, "X").Return(nil).Once()
	notifier.On("Success", msgDeleted).Return().Once()

	deleted, err := v.Delete(context.Background(), "X", func(id string) bool { return id == "X" })
	require.NoError(t, err)
	assert.True(t, deleted)

	want := fixture()
	want = append(want[:1], want[2:]...)
	assert.Equal(t, want, v.Bookings())
}

func TestView_DeleteUnknownKeepsState(t *testing.T) {
	t.Parallel()

	v, client, notifier := loaded(t)

	client.On("DeleteBooking", mock.Anything, "nope").
		Return(&api.Error{StatusCode: http.StatusNotFound, Message: "booking not found"}).Once()
	notifier.On("Error", "booking not found").Return().Once()

	deleted, err := v.Delete(context.Background(), "nope", func(string) bool { return true })
	require.Error(t, err)
	assert.True(t, api.IsNotFound(err))
	assert.False(t, deleted)
	assert.Equal(t, fixture(), v.Bookings())
}

func TestView_DeleteNotConfirmed(t *testing.T) {
	t.Parallel()

	v, client, _ := loaded(t)

	deleted, err := v.Delete(context.Background(), "X", func(string) bool { return false })
	require.NoError(t, err)
	assert.False(t, deleted)
	assert.Equal(t, fixture(), v.Bookings())
	client.AssertNotCalled(t, "DeleteBooking", mock.Anything, mock.Anything)
}

func TestView_EditValidationBlocksUpdate(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		mutate  func(f *booking.Form)
		message string
	}{
		{name: "Empty date", mutate: func(f *booking.Form) { f.BookingDate = "" }, message: "Please select a date"},
		{name: "Empty full name", mutate: func(f *booking.Form) { f.FullName = "" }, message: "Please enter your full name"},
		{name: "Empty email", mutate: func(f *booking.Form) { f.Email = "" }, message: "Please enter your email"},
		{name: "Empty phone", mutate: func(f *booking.Form) { f.Phone = "" }, message: "Please enter your phone number"},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			v, client, notifier := loaded(t)
			notifier.On("Error", tc.message).Return().Once()

			original, ok := v.Find("A")
			require.True(t, ok)

			form := original.Form()
			tc.mutate(&form)

			_, err := v.Edit(context.Background(), "A", form)
			require.Error(t, err)

			after, _ := v.Find("A")
			assert.Equal(t, original, after)
			client.AssertNotCalled(t, "UpdateBooking", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestView_EditReplacesAfterConfirm(t *testing.T) {
	t.Parallel()

	v, client, notifier := loaded(t)

	original, _ := v.Find("A")
	form := original.Form()
	form.FullName = "Aarya S."

	server := original
	server.FullName = "Aarya S."
	server.Amount = 1500

	client.On("UpdateBooking", mock.Anything, "A", form).Return(&server, nil).Once()
	notifier.On("Success", msgUpdated).Return().Once()

	updated, err := v.Edit(context.Background(), "A", form)
	require.NoError(t, err)
	assert.Equal(t, "Aarya S.", updated.FullName)

	got, _ := v.Find("A")
	assert.Equal(t, server, got)

	others, _ := v.Find("X")
	assert.Equal(t, fixture()[1], others)
}

func TestView_EditServerErrorKeepsState(t *testing.T) {
	t.Parallel()

	v, client, notifier := loaded(t)

	original, _ := v.Find("A")
	form := original.Form()
	form.Phone = "999"

	client.On("UpdateBooking", mock.Anything, "A", form).
		Return(nil, &api.Error{StatusCode: http.StatusConflict, Message: "only upcoming bookings can be edited"}).Once()
	notifier.On("Error", "only upcoming bookings can be edited").Return().Once()

	_, err := v.Edit(context.Background(), "A", form)
	require.Error(t, err)

	got, _ := v.Find("A")
	assert.Equal(t, original, got)
}

func TestView_Calendar(t *testing.T) {
	t.Parallel()

	v, _, _ := loaded(t)
	v.SetDate("2025-06-03")

	m := v.Calendar(2025, time.June)
	require.Len(t, m.Weeks, 5)

	for _, w := range m.Weeks {
		assert.Len(t, w, 7)
	}

	first := m.Weeks[0][0]
	assert.Equal(t, "2025-06-01", first.Date)
	assert.True(t, first.InMonth)
	assert.Equal(t, 2, first.Bookings)

	third := m.Weeks[0][2]
	assert.Equal(t, "2025-06-03", third.Date)
	assert.True(t, third.Selected)
	assert.Equal(t, 1, third.Bookings)

	tail := m.Weeks[4][6]
	assert.Equal(t, "2025-07-05", tail.Date)
	assert.False(t, tail.InMonth)
}
