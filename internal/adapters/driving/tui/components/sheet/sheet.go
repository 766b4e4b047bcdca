// Package sheet renders the character sheet for the TUI.
package sheet

import (
	"fmt"
	"strings"

	"github.com/custodia-labs/charforge/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/charforge/internal/core/domain"
)

// Render returns the bordered sheet for person. The driving line comes from
// the variant itself.
func Render(s *styles.Styles, person domain.Person) string {
	if s == nil {
		s = styles.DefaultStyles()
	}
	profile := person.Profile()

	var b strings.Builder
	b.WriteString(s.Title.Render("Character Information"))
	b.WriteString("\n\n")
	row(&b, s, "Name", profile.Name)
	row(&b, s, "Age", fmt.Sprintf("%d", profile.Age))
	row(&b, s, "Eye Color", domain.Capitalize(profile.EyeColor))
	row(&b, s, "Hair Color", domain.Capitalize(profile.HairColor))
	b.WriteString("\n")

	driving := s.Warning
	if person.CanDrive() {
		driving = s.Success
	}
	b.WriteString(driving.Render(person.DrivingMessage()))

	return s.Sheet.Render(b.String())
}

func row(b *strings.Builder, s *styles.Styles, label, value string) {
	b.WriteString(s.Label.Render(label + ": "))
	b.WriteString(s.Normal.Render(value))
	b.WriteString("\n")
}
