package seed

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"tridivya/internal/lib/logger/handlers/slogdiscard"
	"tridivya/internal/models"
	"tridivya/internal/seed/mocks"
)

const file = `[
	{"kind": "yoga", "title": "Sun Salutation", "difficulty": "beginner", "duration_seconds": 900, "is_featured": true},
	{"kind": "mantra", "title": "Gayatri Mantra", "meaning": "A prayer to the light", "lyrics": "Om bhur bhuvah svah"},
	{"kind": "library", "title": "Breath and Mind", "author_name": "R. K.", "library_type": "article", "read_minutes": 6}
]`

func TestLoad(t *testing.T) {
	t.Parallel()

	items, err := Load(strings.NewReader(file))
	require.NoError(t, err)
	require.Len(t, items, 3)

	yoga, ok := items[0].(*models.Yoga)
	require.True(t, ok)
	assert.Equal(t, models.KindYoga, yoga.Kind)
	assert.True(t, yoga.IsActive)
	assert.True(t, yoga.IsFeatured)
	assert.Equal(t, 900, yoga.DurationSeconds)

	mantra, ok := items[1].(*models.Mantra)
	require.True(t, ok)
	assert.Equal(t, "A prayer to the light", mantra.Meaning)

	lib, ok := items[2].(*models.Library)
	require.True(t, ok)
	assert.Equal(t, 6, lib.ReadMinutes)
}

func TestLoad_Rejects(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		body string
	}{
		{name: "Not an array", body: `{"kind": "yoga"}`},
		{name: "Unknown kind", body: `[{"kind": "pilates", "title": "x"}]`},
		{name: "Field of another kind", body: `[{"kind": "yoga", "title": "x", "lyrics": "la"}]`},
		{name: "Missing title", body: `[{"kind": "meditation"}]`},
		{name: "Bad difficulty", body: `[{"kind": "yoga", "title": "x", "difficulty": "extreme"}]`},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := Load(strings.NewReader(tc.body))
			assert.Error(t, err)
		})
	}
}

func TestRun(t *testing.T) {
	t.Parallel()

	items, err := Load(strings.NewReader(file))
	require.NoError(t, err)

	store := mocks.NewContentUpserter(t)
	store.On("UpsertContentByTitle", mock.Anything, items[0]).Return(true, nil).Once()
	store.On("UpsertContentByTitle", mock.Anything, items[1]).Return(false, errors.New("connection reset")).Once()
	store.On("UpsertContentByTitle", mock.Anything, items[2]).Return(false, nil).Once()

	sum, err := Run(context.Background(), slogdiscard.NewDiscardLogger(), store, items)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Gayatri Mantra")
	assert.Equal(t, Summary{Inserted: 1, Updated: 1}, sum)
}
