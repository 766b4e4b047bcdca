// Package tui provides an interactive terminal user interface for charforge.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/charforge/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the TUI.
type Ports struct {
	// Character creates and finalizes characters.
	Character driving.CharacterService
}

// Validate checks that required ports are provided.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.Character == nil {
		return ErrMissingCharacterService
	}
	return nil
}
