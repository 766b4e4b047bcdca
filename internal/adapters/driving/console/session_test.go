package console

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/charforge/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/charforge/internal/core/domain"
	"github.com/custodia-labs/charforge/internal/core/services"
)

func newTestSession(input string) (*Session, *memory.CharacterStore, *bytes.Buffer) {
	store := memory.NewCharacterStore()
	service := services.NewCharacterService(store, services.WithIDGenerator(func() string { return "char-1" }))
	out := new(bytes.Buffer)
	return NewSession(service, strings.NewReader(input), out), store, out
}

func TestSession_Run_AdultFinalized(t *testing.T) {
	session, store, out := newTestSession("Jane\n30\nGreen\nBlack\n2\n")

	outcome, err := session.Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, StateFinalized, outcome.State)
	assert.Equal(t, domain.KindAdult, outcome.Person.Kind())
	require.NotNil(t, outcome.Character)
	assert.Equal(t, "char-1", outcome.Character.ID)

	output := out.String()
	assert.Contains(t, output, "<-------- Character Creation -------->")
	assert.Contains(t, output, "Name: Jane")
	assert.Contains(t, output, "Age: 30")
	assert.Contains(t, output, "Eye Color: Green")
	assert.Contains(t, output, "Hair Color: Black")
	assert.Contains(t, output, "Jane is Old enough to Drive.")
	assert.Contains(t, output, "--- Character Finalized ---")
	assert.Contains(t, output, "Thank you for creating your character!")
	assert.Contains(t, output, "Character ID: char-1")
	assert.Less(t, strings.Index(output, "Thank you"), strings.Index(output, "Character ID"))

	saved, err := store.Get(context.Background(), "char-1")
	require.NoError(t, err)
	assert.Equal(t, "Jane", saved.Name)
	assert.Equal(t, "green", saved.EyeColor)
}

func TestSession_Run_ChildExitsWithoutDisplay(t *testing.T) {
	session, store, out := newTestSession("Tom\n10\nblue\nred\n3\n")

	outcome, err := session.Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, StateExited, outcome.State)
	assert.Equal(t, domain.KindChild, outcome.Person.Kind())
	assert.Nil(t, outcome.Character)

	output := out.String()
	assert.Contains(t, output, "Exiting character creation. Goodbye!")
	assert.NotContains(t, output, "Drive")
	assert.NotContains(t, output, "--- Character Information ---")

	all, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestSession_Run_RetriesEveryField(t *testing.T) {
	input := strings.Join([]string{
		"Jane Doe", "Jane", // name
		"abc", "-5", "17", // age
		"purple", "  Amber ", // eye
		"hazel", "WHITE", // hair
		"9", "1", "2", // menu
	}, "\n") + "\n"
	session, _, out := newTestSession(input)

	outcome, err := session.Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, StateFinalized, outcome.State)
	assert.Equal(t, domain.Profile{Name: "Jane", Age: 17, EyeColor: "amber", HairColor: "white"},
		outcome.Person.Profile())

	output := out.String()
	assert.Contains(t, output, "Jane is too Young to Drive.")
	assert.Contains(t, output, "Invalid choice")
	assert.Equal(t, 2, strings.Count(output, "Jane is too Young to Drive."))
}

func TestSession_Run_InputClosedDuringCollect(t *testing.T) {
	session, _, _ := newTestSession("Jane\n30\n")

	outcome, err := session.Run(context.Background())

	assert.Nil(t, outcome)
	assert.ErrorIs(t, err, domain.ErrInputClosed)
	assert.Contains(t, err.Error(), "reading eye color")
}

func TestSession_Run_InputClosedInMenu(t *testing.T) {
	session, _, _ := newTestSession("Jane\n30\ngreen\nblack\n1\n")

	outcome, err := session.Run(context.Background())

	assert.ErrorIs(t, err, domain.ErrInputClosed)
	require.NotNil(t, outcome)
	assert.Equal(t, StateRunning, outcome.State)
}

func TestSession_SetEcho(t *testing.T) {
	session, _, out := newTestSession("Tom\n10\nblue\nred\n3\n")
	session.SetEcho(true)

	_, err := session.Run(context.Background())

	require.NoError(t, err)
	assert.Contains(t, out.String(), "Please input your name: Tom\n")
}

func TestSession_Collect(t *testing.T) {
	session, _, _ := newTestSession("Ann\n0\nGRAY\ngray\n")

	draft, err := session.Collect()

	require.NoError(t, err)
	assert.Equal(t, "Ann", draft.Name)
	assert.Equal(t, 0, draft.Age)
	assert.Equal(t, "gray", draft.EyeColor)
	assert.Equal(t, "gray", draft.HairColor)
}
