package console

import (
	"context"
	"fmt"
	"io"

	"github.com/custodia-labs/charforge/internal/core/domain"
	"github.com/custodia-labs/charforge/internal/core/ports/driving"
	"github.com/custodia-labs/charforge/internal/logger"
)

// Banner opens the creation flow.
const Banner = "\n<-------- Character Creation -------->"

// Outcome is the result of a completed session.
type Outcome struct {
	// State is the terminal menu state (Finalized or Exited).
	State MenuState

	// Person is the created person.
	Person domain.Person

	// Character is the saved record. Nil unless State is StateFinalized.
	Character *domain.Character
}

// Session runs the whole console flow: collect answers, create the person,
// then run the menu.
type Session struct {
	service  driving.CharacterService
	prompter *Prompter
	out      io.Writer
}

// NewSession creates a session reading answers from in and writing to out.
func NewSession(service driving.CharacterService, in io.Reader, out io.Writer) *Session {
	return &Session{
		service:  service,
		prompter: NewPrompter(in, out),
		out:      out,
	}
}

// SetEcho echoes each answer back to the output. See Prompter.SetEcho.
func (s *Session) SetEcho(echo bool) {
	s.prompter.SetEcho(echo)
}

// Collect asks for the four fields in order.
func (s *Session) Collect() (driving.Draft, error) {
	var draft driving.Draft
	var err error

	if draft.Name, err = s.prompter.Name(NamePrompt); err != nil {
		return draft, fmt.Errorf("reading name: %w", err)
	}
	if draft.Age, err = s.prompter.Age(); err != nil {
		return draft, fmt.Errorf("reading age: %w", err)
	}
	if draft.EyeColor, err = s.prompter.Color(EyeColorPrompt, domain.EyeColors); err != nil {
		return draft, fmt.Errorf("reading eye color: %w", err)
	}
	if draft.HairColor, err = s.prompter.Color(HairColorPrompt, domain.HairColors); err != nil {
		return draft, fmt.Errorf("reading hair color: %w", err)
	}
	return draft, nil
}

// Run executes the flow and returns once the menu reaches a terminal state.
func (s *Session) Run(ctx context.Context) (*Outcome, error) {
	fmt.Fprintln(s.out, Banner)

	logger.Section("Character Creation")
	draft, err := s.Collect()
	if err != nil {
		return nil, err
	}

	person, err := s.service.Create(ctx, draft)
	if err != nil {
		return nil, err
	}

	outcome := &Outcome{Person: person}
	finalize := func(ctx context.Context, p domain.Person) error {
		character, err := s.service.Finalize(ctx, p)
		if err != nil {
			return err
		}
		outcome.Character = character
		return nil
	}

	state, err := NewMenu(person, s.prompter, s.out, finalize).Run(ctx)
	outcome.State = state
	if err != nil {
		return outcome, fmt.Errorf("menu: %w", err)
	}
	if outcome.Character != nil {
		fmt.Fprintf(s.out, "Character ID: %s\n", outcome.Character.ID)
	}
	return outcome, nil
}
