package form

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/charforge/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/charforge/internal/core/ports/driving"
)

// answer types value into the current field and presses enter.
func answer(v *View, value string) tea.Cmd {
	v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(value)})
	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return cmd
}

func TestNewView(t *testing.T) {
	v := NewView(nil)

	require.NotNil(t, v)
	assert.NotNil(t, v.styles)
	assert.Equal(t, messages.FieldName, v.Current())
	assert.False(t, v.Done())
	assert.Empty(t, v.Err())
}

func TestView_Init(t *testing.T) {
	assert.NotNil(t, NewView(nil).Init())
}

func TestView_CompletesDraft(t *testing.T) {
	v := NewView(nil)

	assert.Nil(t, answer(v, "Jane"))
	assert.Equal(t, messages.FieldAge, v.Current())
	assert.Nil(t, answer(v, "30"))
	assert.Nil(t, answer(v, "  Green "))
	cmd := answer(v, "BLACK")

	require.NotNil(t, cmd)
	assert.True(t, v.Done())
	msg, ok := cmd().(messages.DraftCompleted)
	require.True(t, ok)
	want := driving.Draft{Name: "Jane", Age: 30, EyeColor: "green", HairColor: "black"}
	assert.Equal(t, want, msg.Draft)
	assert.Equal(t, want, v.Draft())
}

func TestView_RejectsAndStaysOnField(t *testing.T) {
	tests := []struct {
		name    string
		setup   []string
		bad     string
		field   messages.Field
		wantErr string
	}{
		{"name with space", nil, "Jane Doe", messages.FieldName, "Invalid input. Please enter only letters."},
		{"name with digit", nil, "R2D2", messages.FieldName, "Invalid input. Please enter only letters."},
		{"negative age", []string{"Jane"}, "-5", messages.FieldAge, "Invalid input: age cannot be negative"},
		{"text age", []string{"Jane"}, "abc", messages.FieldAge, "Invalid input: age must be a whole number"},
		{"purple eyes", []string{"Jane", "30"}, "purple", messages.FieldEyeColor,
			"Invalid input: Please enter one of the following: blue, brown, green, hazel, gray, amber."},
		{"hazel hair", []string{"Jane", "30", "blue"}, "hazel", messages.FieldHairColor,
			"Invalid input: Please enter one of the following: black, brown, blonde, red, gray, white."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewView(nil)
			for _, a := range tt.setup {
				answer(v, a)
			}

			cmd := answer(v, tt.bad)

			assert.Nil(t, cmd)
			assert.Equal(t, tt.field, v.Current())
			assert.Equal(t, tt.wantErr, v.Err())
			assert.Contains(t, v.View(), tt.wantErr)
		})
	}
}

func TestView_ErrorClearsOnValidAnswer(t *testing.T) {
	v := NewView(nil)
	answer(v, "123")
	require.NotEmpty(t, v.Err())

	answer(v, "Ann")

	assert.Empty(t, v.Err())
	assert.Equal(t, messages.FieldAge, v.Current())
}

func TestView_AcceptsZeroAge(t *testing.T) {
	v := NewView(nil)
	answer(v, "Ann")

	answer(v, "0")

	assert.Equal(t, messages.FieldEyeColor, v.Current())
	assert.Equal(t, 0, v.Draft().Age)
}

func TestView_ShowsAnsweredFields(t *testing.T) {
	v := NewView(nil)
	answer(v, "Jane")
	answer(v, "30")

	out := v.View()

	assert.Contains(t, out, "Name: Jane")
	assert.Contains(t, out, "Age: 30")
	assert.Contains(t, out, "Eye Color")
	assert.Contains(t, out, "blue, brown, green, hazel, gray, amber")
}

func TestView_IgnoresInputWhenDone(t *testing.T) {
	v := NewView(nil)
	for _, a := range []string{"Jane", "30", "green", "black"} {
		answer(v, a)
	}

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	assert.Equal(t, messages.Field(-1), v.Current())
}
