package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColorSets_HaveSixMembers(t *testing.T) {
	assert.Equal(t, 6, EyeColors.Len())
	assert.Equal(t, 6, HairColors.Len())
}

func TestColorSet_Contains(t *testing.T) {
	tests := []struct {
		name     string
		set      ColorSet
		value    string
		expected bool
	}{
		{"eye blue", EyeColors, "blue", true},
		{"eye amber", EyeColors, "amber", true},
		{"eye black is hair only", EyeColors, "black", false},
		{"hair blonde", HairColors, "blonde", true},
		{"hair hazel is eye only", HairColors, "hazel", false},
		{"gray in both", HairColors, "gray", true},
		{"not normalised", EyeColors, "Blue", false},
		{"empty", EyeColors, "", false},
		{"purple", EyeColors, "purple", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.set.Contains(tt.value))
		})
	}
}

func TestColorSet_Members_ReturnsCopy(t *testing.T) {
	members := EyeColors.Members()
	members[0] = "purple"

	assert.Equal(t, "blue", EyeColors.Members()[0])
	assert.False(t, EyeColors.Contains("purple"))
}

func TestColorSet_String(t *testing.T) {
	assert.Equal(t, "blue, brown, green, hazel, gray, amber", EyeColors.String())
	assert.Equal(t, "black, brown, blonde, red, gray, white", HairColors.String())
}

func TestColorSet_Label(t *testing.T) {
	assert.Equal(t, "eye", EyeColors.Label())
	assert.Equal(t, "hair", HairColors.Label())
}

func TestNormalizeColor(t *testing.T) {
	assert.Equal(t, "blue", NormalizeColor("  Blue  "))
	assert.Equal(t, "green", NormalizeColor("GREEN"))
	assert.Equal(t, "", NormalizeColor("   "))
}

func TestCapitalize(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"green", "Green"},
		{"bLACK", "Black"},
		{"a", "A"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Capitalize(tt.in))
		})
	}
}

func TestColorSet_Parse(t *testing.T) {
	value, ok := EyeColors.Parse("  Blue  ")
	assert.True(t, ok)
	assert.Equal(t, "blue", value)

	value, ok = HairColors.Parse("BLACK")
	assert.True(t, ok)
	assert.Equal(t, "black", value)

	_, ok = EyeColors.Parse("purple")
	assert.False(t, ok)
}
