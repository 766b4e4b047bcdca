package console

import (
	"fmt"
	"io"

	"github.com/custodia-labs/charforge/internal/core/domain"
)

// DisplayInfo prints the character sheet followed by the variant's
// driving eligibility line.
func DisplayInfo(w io.Writer, person domain.Person) {
	profile := person.Profile()

	fmt.Fprintln(w, "\n--- Character Information ---")
	fmt.Fprintf(w, "Name: %s\n", profile.Name)
	fmt.Fprintf(w, "Age: %d\n", profile.Age)
	fmt.Fprintf(w, "Eye Color: %s\n", domain.Capitalize(profile.EyeColor))
	fmt.Fprintf(w, "Hair Color: %s\n", domain.Capitalize(profile.HairColor))
	fmt.Fprintf(w, "\n%s\n", person.DrivingMessage())
	fmt.Fprintln(w, "-----------------------------")
}

// DisplayMenu prints the menu options.
func DisplayMenu(w io.Writer) {
	fmt.Fprintln(w, "\n--- Character Creation Menu ---")
	fmt.Fprintln(w, "1. View Character Information")
	fmt.Fprintln(w, "2. Confirm and Finalize Character")
	fmt.Fprintln(w, "3. Exit")
	fmt.Fprintln(w, "-------------------------------")
}
