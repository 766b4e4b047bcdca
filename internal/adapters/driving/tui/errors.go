package tui

import "errors"

// ErrMissingCharacterService is returned when the character service is not provided.
var ErrMissingCharacterService = errors.New("tui: character service is required")

// ErrInvalidPorts is returned when ports validation fails.
var ErrInvalidPorts = errors.New("tui: invalid ports configuration")
