package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/charforge/internal/core/domain"
	"github.com/custodia-labs/charforge/internal/core/ports/driven"
	"github.com/custodia-labs/charforge/internal/core/ports/driving"
	"github.com/custodia-labs/charforge/internal/logger"
)

// Ensure CharacterService implements the interface.
var _ driving.CharacterService = (*CharacterService)(nil)

// CharacterService creates Person variants and stores finalized characters.
type CharacterService struct {
	store driven.CharacterStore
	newID func() string
	now   func() time.Time
}

// CharacterOption configures a CharacterService.
type CharacterOption func(*CharacterService)

// WithIDGenerator overrides the ID allocator. Defaults to random UUIDs.
func WithIDGenerator(fn func() string) CharacterOption {
	return func(s *CharacterService) {
		s.newID = fn
	}
}

// WithClock overrides the time source used for CreatedAt.
func WithClock(fn func() time.Time) CharacterOption {
	return func(s *CharacterService) {
		s.now = fn
	}
}

// NewCharacterService creates a new character service.
func NewCharacterService(store driven.CharacterStore, opts ...CharacterOption) *CharacterService {
	s := &CharacterService{
		store: store,
		newID: func() string { return uuid.New().String() },
		now:   func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create builds the Person variant for the draft.
func (s *CharacterService) Create(_ context.Context, draft driving.Draft) (domain.Person, error) {
	person, err := domain.NewPerson(draft.Name, draft.Age, draft.EyeColor, draft.HairColor)
	if err != nil {
		return nil, fmt.Errorf("create character: %w", err)
	}
	logger.Debug("classified %s (age %d) as %s", draft.Name, draft.Age, person.Kind())
	return person, nil
}

// Finalize stores the person under a fresh ID.
func (s *CharacterService) Finalize(ctx context.Context, person domain.Person) (*domain.Character, error) {
	if person == nil {
		return nil, fmt.Errorf("finalize character: %w", domain.ErrInvalidInput)
	}
	if s.store == nil {
		return nil, errors.New("finalize character: no character store configured")
	}

	character := domain.NewCharacter(s.newID(), person, s.now())
	if err := s.store.Save(ctx, character); err != nil {
		return nil, fmt.Errorf("save character: %w", err)
	}
	logger.Info("finalized character %s (%s)", character.ID, character.Name)
	return &character, nil
}

// Get retrieves a finalized character by ID.
func (s *CharacterService) Get(ctx context.Context, id string) (*domain.Character, error) {
	if id == "" {
		return nil, fmt.Errorf("get character: %w", domain.ErrInvalidInput)
	}
	return s.store.Get(ctx, id)
}

// List returns all finalized characters, newest first.
func (s *CharacterService) List(ctx context.Context) ([]domain.Character, error) {
	characters, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list characters: %w", err)
	}
	sort.SliceStable(characters, func(i, j int) bool {
		return characters[i].CreatedAt.After(characters[j].CreatedAt)
	})
	return characters, nil
}

// Delete removes a finalized character.
// Returns domain.ErrNotFound if no character has the ID.
func (s *CharacterService) Delete(ctx context.Context, id string) error {
	if _, err := s.store.Get(ctx, id); err != nil {
		return err
	}
	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete character: %w", err)
	}
	logger.Info("deleted character %s", id)
	return nil
}
