package driven

import (
	"context"

	"github.com/custodia-labs/charforge/internal/core/domain"
)

// CharacterStore persists finalized characters.
type CharacterStore interface {
	// Save stores or updates a character.
	Save(ctx context.Context, character domain.Character) error

	// Get retrieves a character by ID.
	// Returns domain.ErrNotFound if the character does not exist.
	Get(ctx context.Context, id string) (*domain.Character, error)

	// Delete removes a character. Deleting a missing ID is not an error.
	Delete(ctx context.Context, id string) error

	// List returns all stored characters, newest first.
	List(ctx context.Context) ([]domain.Character, error)
}
