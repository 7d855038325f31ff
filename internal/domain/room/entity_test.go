//go:build unit

package room_test

import (
	"strings"
	"testing"

	"roombook/internal/domain/room"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRoom(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		desc := "Projector and whiteboard"
		actual, err := room.NewRoom("  Boardroom A  ", " 3rd Floor ", 12, &desc, []string{"projector"}, nil)
		require.NoError(t, err)

		assert.Equal(t, "Boardroom A", actual.Name())
		assert.Equal(t, "3rd Floor", actual.Location())
		assert.Equal(t, 12, actual.Capacity())
	})

	cases := []struct {
		name     string
		roomName string
		location string
		capacity int
		errIs    error
	}{
		{"empty name", "", "Floor 1", 4, room.ErrEmptyName},
		{"whitespace name", "   ", "Floor 1", 4, room.ErrEmptyName},
		{"name too long", strings.Repeat("a", room.MaxNameLength+1), "Floor 1", 4, room.ErrNameTooLong},
		{"empty location", "Huddle", "", 4, room.ErrEmptyLocation},
		{"zero capacity", "Huddle", "Floor 1", 0, room.ErrInvalidCapacity},
		{"negative capacity", "Huddle", "Floor 1", -2, room.ErrInvalidCapacity},
		{"capacity over limit", "Huddle", "Floor 1", room.MaxCapacity + 1, room.ErrInvalidCapacity},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := room.NewRoom(c.roomName, c.location, c.capacity, nil, nil, nil)
			assert.ErrorIs(t, err, c.errIs)
		})
	}
}
