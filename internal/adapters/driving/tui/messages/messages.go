// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/charforge/internal/core/domain"
	"github.com/custodia-labs/charforge/internal/core/ports/driving"
)

// Field identifies one of the questions asked by the form.
type Field int

const (
	// FieldName asks for the character's name.
	FieldName Field = iota
	// FieldAge asks for the character's age.
	FieldAge
	// FieldEyeColor asks for the eye colour.
	FieldEyeColor
	// FieldHairColor asks for the hair colour.
	FieldHairColor
)

// Fields returns the questions in the order they are asked.
func Fields() []Field {
	return []Field{FieldName, FieldAge, FieldEyeColor, FieldHairColor}
}

// String returns the string representation of the field.
func (f Field) String() string {
	switch f {
	case FieldName:
		return "name"
	case FieldAge:
		return "age"
	case FieldEyeColor:
		return "eye_color"
	case FieldHairColor:
		return "hair_color"
	default:
		return "unknown"
	}
}

// Label returns the prompt label for the field.
func (f Field) Label() string {
	switch f {
	case FieldName:
		return "Name"
	case FieldAge:
		return "Age"
	case FieldEyeColor:
		return "Eye Color"
	case FieldHairColor:
		return "Hair Color"
	default:
		return ""
	}
}

// DraftCompleted is sent when every field has a valid answer.
type DraftCompleted struct {
	Draft driving.Draft
}

// MenuSelected is sent when a menu option is chosen.
type MenuSelected struct {
	Choice string
}

// FinalizeCompleted carries the result of storing the character.
type FinalizeCompleted struct {
	Character *domain.Character
	Err       error
}
