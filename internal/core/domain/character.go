package domain

import "time"

// Character is the stored snapshot of a finalized Person.
type Character struct {
	// ID is a unique identifier (UUID).
	ID string `json:"id"`

	// Name of the character.
	Name string `json:"name"`

	// Age in years at creation time.
	Age int `json:"age"`

	// Kind is the variant chosen at creation.
	Kind Kind `json:"kind"`

	// EyeColor is the normalised eye colour.
	EyeColor string `json:"eye_color"`

	// HairColor is the normalised hair colour.
	HairColor string `json:"hair_color"`

	// CreatedAt is when the character was finalized.
	CreatedAt time.Time `json:"created_at"`
}

// NewCharacter snapshots a Person under the given ID.
func NewCharacter(id string, p Person, createdAt time.Time) Character {
	profile := p.Profile()
	return Character{
		ID:        id,
		Name:      profile.Name,
		Age:       profile.Age,
		Kind:      p.Kind(),
		EyeColor:  profile.EyeColor,
		HairColor: profile.HairColor,
		CreatedAt: createdAt,
	}
}

// Person rebuilds the variant from the stored attributes.
// The variant is recomputed from Age, so a stored Kind that disagrees is
// reported as invalid input.
func (c Character) Person() (Person, error) {
	p, err := NewPerson(c.Name, c.Age, c.EyeColor, c.HairColor)
	if err != nil {
		return nil, err
	}
	if c.Kind != "" && p.Kind() != c.Kind {
		return nil, ErrInvalidInput
	}
	return p, nil
}
