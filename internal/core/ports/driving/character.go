package driving

import (
	"context"

	"github.com/custodia-labs/charforge/internal/core/domain"
)

// Draft carries the validated answers collected by a front end.
type Draft struct {
	Name      string
	Age       int
	EyeColor  string
	HairColor string
}

// CharacterService creates, finalizes and retrieves characters.
type CharacterService interface {
	// Create builds the Person variant for the draft.
	Create(ctx context.Context, draft Draft) (domain.Person, error)

	// Finalize stores the person and returns the saved record.
	Finalize(ctx context.Context, person domain.Person) (*domain.Character, error)

	// Get retrieves a finalized character by ID.
	Get(ctx context.Context, id string) (*domain.Character, error)

	// List returns all finalized characters, newest first.
	List(ctx context.Context) ([]domain.Character, error)

	// Delete removes a finalized character.
	Delete(ctx context.Context, id string) error
}
