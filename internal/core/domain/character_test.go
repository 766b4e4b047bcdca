package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCharacter_SnapshotsPerson(t *testing.T) {
	p, err := NewPerson("Jane", 30, "green", "black")
	require.NoError(t, err)
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	c := NewCharacter("id-1", p, now)

	assert.Equal(t, "id-1", c.ID)
	assert.Equal(t, "Jane", c.Name)
	assert.Equal(t, 30, c.Age)
	assert.Equal(t, KindAdult, c.Kind)
	assert.Equal(t, "green", c.EyeColor)
	assert.Equal(t, "black", c.HairColor)
	assert.Equal(t, now, c.CreatedAt)
}

func TestCharacter_Person_RoundTrip(t *testing.T) {
	original, err := NewPerson("Tom", 10, "blue", "red")
	require.NoError(t, err)

	restored, err := NewCharacter("id-2", original, time.Now()).Person()

	require.NoError(t, err)
	assert.Equal(t, original, restored)
}

func TestCharacter_Person_KindMismatch(t *testing.T) {
	c := Character{Name: "Tom", Age: 10, Kind: KindAdult, EyeColor: "blue", HairColor: "red"}

	_, err := c.Person()

	assert.True(t, errors.Is(err, ErrInvalidInput))
}

func TestCharacter_Person_InvalidStoredColour(t *testing.T) {
	c := Character{Name: "Tom", Age: 10, EyeColor: "purple", HairColor: "red"}

	_, err := c.Person()

	assert.True(t, errors.Is(err, ErrInvalidInput))
}
