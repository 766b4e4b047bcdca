package console

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/charforge/internal/core/domain"
)

func newTestMenu(t *testing.T, input string, onFinalize FinalizeFunc) (*Menu, *bytes.Buffer) {
	t.Helper()
	person, err := domain.NewPerson("Jane", 30, "green", "black")
	require.NoError(t, err)
	out := new(bytes.Buffer)
	prompter := NewPrompter(strings.NewReader(input), out)
	return NewMenu(person, prompter, out, onFinalize), out
}

func TestMenuState_String(t *testing.T) {
	assert.Equal(t, "running", StateRunning.String())
	assert.Equal(t, "viewing_info", StateViewingInfo.String())
	assert.Equal(t, "finalized", StateFinalized.String())
	assert.Equal(t, "exited", StateExited.String())
	assert.Equal(t, "unknown", MenuState(99).String())
}

func TestMenuState_IsTerminal(t *testing.T) {
	assert.False(t, StateRunning.IsTerminal())
	assert.False(t, StateViewingInfo.IsTerminal())
	assert.True(t, StateFinalized.IsTerminal())
	assert.True(t, StateExited.IsTerminal())
}

func TestNewMenu_StartsRunning(t *testing.T) {
	menu, _ := newTestMenu(t, "", nil)

	assert.Equal(t, StateRunning, menu.State())
}

func TestMenu_Step_View(t *testing.T) {
	menu, out := newTestMenu(t, "", nil)

	state := menu.Step(context.Background(), ChoiceView)

	assert.Equal(t, StateRunning, state)
	assert.Contains(t, out.String(), "Name: Jane")
	assert.Contains(t, out.String(), "Jane is Old enough to Drive.")
}

func TestMenu_Step_View_Idempotent(t *testing.T) {
	menu, out := newTestMenu(t, "", nil)
	ctx := context.Background()

	menu.Step(ctx, ChoiceView)
	first := out.String()
	out.Reset()

	for i := 0; i < 3; i++ {
		assert.Equal(t, StateRunning, menu.Step(ctx, ChoiceView))
		assert.Equal(t, first, out.String())
		out.Reset()
	}
}

func TestMenu_Step_Finalize(t *testing.T) {
	var finalized domain.Person
	menu, out := newTestMenu(t, "", func(_ context.Context, p domain.Person) error {
		finalized = p
		return nil
	})

	state := menu.Step(context.Background(), ChoiceFinalize)

	assert.Equal(t, StateFinalized, state)
	require.NotNil(t, finalized)
	assert.Equal(t, "Jane", finalized.Profile().Name)
	output := out.String()
	assert.Contains(t, output, "--- Character Finalized ---")
	assert.Contains(t, output, "Jane is Old enough to Drive.")
	assert.Contains(t, output, "Thank you for creating your character!")
	assert.Less(t, strings.Index(output, "Finalized"), strings.Index(output, "Thank you"))
}

func TestMenu_Step_Finalize_HookError(t *testing.T) {
	menu, out := newTestMenu(t, "", func(context.Context, domain.Person) error {
		return errors.New("disk full")
	})

	state := menu.Step(context.Background(), ChoiceFinalize)

	assert.Equal(t, StateRunning, state)
	assert.Contains(t, out.String(), "Could not finalize character: disk full")
	assert.NotContains(t, out.String(), "--- Character Finalized ---")
	assert.NotContains(t, out.String(), "Old enough to Drive")
	assert.NotContains(t, out.String(), "Thank you")
}

func TestMenu_Step_Finalize_RetryAfterHookError(t *testing.T) {
	calls := 0
	menu, out := newTestMenu(t, "", func(context.Context, domain.Person) error {
		calls++
		if calls == 1 {
			return errors.New("disk full")
		}
		return nil
	})
	ctx := context.Background()

	require.Equal(t, StateRunning, menu.Step(ctx, ChoiceFinalize))
	require.Equal(t, StateFinalized, menu.Step(ctx, ChoiceFinalize))

	output := out.String()
	assert.Equal(t, 2, calls)
	assert.Equal(t, 1, strings.Count(output, "--- Character Finalized ---"))
	assert.Less(t, strings.Index(output, "Could not finalize"), strings.Index(output, "--- Character Finalized ---"))
}

func TestMenu_Step_Exit(t *testing.T) {
	menu, out := newTestMenu(t, "", nil)

	state := menu.Step(context.Background(), ChoiceExit)

	assert.Equal(t, StateExited, state)
	assert.Contains(t, out.String(), "Exiting character creation. Goodbye!")
	assert.NotContains(t, out.String(), "Drive")
}

func TestMenu_Step_Invalid(t *testing.T) {
	for _, choice := range []string{"", "0", "4", "one", "1 "} {
		t.Run(choice, func(t *testing.T) {
			menu, out := newTestMenu(t, "", nil)

			state := menu.Step(context.Background(), choice)

			assert.Equal(t, StateRunning, state)
			assert.Contains(t, out.String(), "Invalid choice. Please select a valid option (1-3).")
		})
	}
}

func TestMenu_Step_TerminalAbsorbs(t *testing.T) {
	menu, out := newTestMenu(t, "", nil)
	ctx := context.Background()
	menu.Step(ctx, ChoiceExit)
	out.Reset()

	assert.Equal(t, StateExited, menu.Step(ctx, ChoiceView))
	assert.Empty(t, out.String())
}

func TestMenu_Run_UntilExit(t *testing.T) {
	menu, out := newTestMenu(t, "1\nx\n1\n3\n", nil)

	state, err := menu.Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, StateExited, state)
	assert.Equal(t, 4, strings.Count(out.String(), "--- Character Creation Menu ---"))
	assert.Equal(t, 2, strings.Count(out.String(), "--- Character Information ---"))
	assert.Equal(t, 1, strings.Count(out.String(), "Invalid choice"))
}

func TestMenu_Run_UntilFinalize(t *testing.T) {
	calls := 0
	menu, _ := newTestMenu(t, "2\n1\n", func(context.Context, domain.Person) error {
		calls++
		return nil
	})

	state, err := menu.Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, StateFinalized, state)
	assert.Equal(t, 1, calls)
}

func TestMenu_Run_InputClosed(t *testing.T) {
	menu, _ := newTestMenu(t, "1\n", nil)

	state, err := menu.Run(context.Background())

	assert.ErrorIs(t, err, domain.ErrInputClosed)
	assert.Equal(t, StateRunning, state)
}

func TestMenu_Run_ContextCancelled(t *testing.T) {
	menu, out := newTestMenu(t, "1\n", nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := menu.Run(ctx)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, out.String())
}
