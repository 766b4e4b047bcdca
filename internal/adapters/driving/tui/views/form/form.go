// Package form provides the four-question character form for the TUI.
package form

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/charforge/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/charforge/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/charforge/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/charforge/internal/core/domain"
	"github.com/custodia-labs/charforge/internal/core/ports/driving"
)

// View asks each field in turn. An invalid answer keeps the same field
// and shows a diagnostic; there is no limit on attempts.
type View struct {
	styles  *styles.Styles
	input   *input.FieldInput
	fields  []messages.Field
	current int
	draft   driving.Draft
	answers []string
	errMsg  string
}

// NewView creates a form positioned on the first field.
func NewView(s *styles.Styles) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	fields := messages.Fields()
	return &View{
		styles: s,
		input:  input.NewFieldInput(s, fields[0].Label(), placeholder(fields[0])),
		fields: fields,
	}
}

// Init initialises the form.
func (v *View) Init() tea.Cmd {
	return v.input.Init()
}

// Update handles messages for the form.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	if v.Done() {
		return v, nil
	}

	if key, ok := msg.(tea.KeyMsg); ok && key.Type == tea.KeyEnter {
		return v, v.submit()
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// submit validates the current answer and advances on success.
func (v *View) submit() tea.Cmd {
	field := v.fields[v.current]
	raw := v.input.Value()

	accepted, errMsg := v.accept(field, raw)
	if errMsg != "" {
		v.errMsg = errMsg
		v.input.SetValue("")
		return nil
	}

	v.errMsg = ""
	v.answers = append(v.answers, accepted)
	v.current++

	if v.Done() {
		draft := v.draft
		return func() tea.Msg {
			return messages.DraftCompleted{Draft: draft}
		}
	}

	next := v.fields[v.current]
	v.input.Reconfigure(next.Label(), placeholder(next))
	return nil
}

// accept records a valid answer and returns its display form, or returns
// the diagnostic for an invalid one.
func (v *View) accept(field messages.Field, raw string) (string, string) {
	switch field {
	case messages.FieldName:
		name, ok := domain.ParseName(raw)
		if !ok {
			return "", "Invalid input. Please enter only letters."
		}
		v.draft.Name = name
		return name, ""

	case messages.FieldAge:
		age, err := domain.ParseAge(raw)
		if err != nil {
			return "", fmt.Sprintf("Invalid input: %v", err)
		}
		v.draft.Age = age
		return fmt.Sprintf("%d", age), ""

	case messages.FieldEyeColor:
		color, ok := domain.EyeColors.Parse(raw)
		if !ok {
			return "", colorError(domain.EyeColors)
		}
		v.draft.EyeColor = color
		return domain.Capitalize(color), ""

	case messages.FieldHairColor:
		color, ok := domain.HairColors.Parse(raw)
		if !ok {
			return "", colorError(domain.HairColors)
		}
		v.draft.HairColor = color
		return domain.Capitalize(color), ""
	}
	return "", "Invalid input."
}

// View renders answered fields, the active input and any diagnostic.
func (v *View) View() string {
	var b strings.Builder

	for i, answer := range v.answers {
		b.WriteString(v.styles.Muted.Render(fmt.Sprintf("%s: %s", v.fields[i].Label(), answer)))
		b.WriteString("\n")
	}

	if !v.Done() {
		b.WriteString(v.input.View())
		b.WriteString("\n")
		if hint := hint(v.fields[v.current]); hint != "" {
			b.WriteString(v.styles.Help.Render(hint))
			b.WriteString("\n")
		}
	}

	if v.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(v.styles.Error.Render(v.errMsg))
		b.WriteString("\n")
	}

	return b.String()
}

// Current returns the field being asked, or -1 once the form is complete.
func (v *View) Current() messages.Field {
	if v.Done() {
		return -1
	}
	return v.fields[v.current]
}

// Done reports whether every field has a valid answer.
func (v *View) Done() bool {
	return v.current >= len(v.fields)
}

// Draft returns the answers collected so far.
func (v *View) Draft() driving.Draft {
	return v.draft
}

// Err returns the last diagnostic, or an empty string.
func (v *View) Err() string {
	return v.errMsg
}

func colorError(set domain.ColorSet) string {
	return fmt.Sprintf("Invalid input: Please enter one of the following: %s.", set)
}

func placeholder(field messages.Field) string {
	switch field {
	case messages.FieldName:
		return "letters only"
	case messages.FieldAge:
		return "whole number"
	default:
		return ""
	}
}

func hint(field messages.Field) string {
	switch field {
	case messages.FieldEyeColor:
		return domain.EyeColors.String()
	case messages.FieldHairColor:
		return domain.HairColors.String()
	default:
		return ""
	}
}
