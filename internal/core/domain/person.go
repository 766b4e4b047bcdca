package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// DrivingAge is the minimum age at which a person is classified as an Adult.
const DrivingAge = 18

// Kind identifies which variant a Person is.
type Kind string

// Person variants.
const (
	// KindAdult is a person at or above DrivingAge.
	KindAdult Kind = "adult"

	// KindChild is a person below DrivingAge.
	KindChild Kind = "child"
)

// IsValid returns true if the kind is recognised.
func (k Kind) IsValid() bool {
	return k == KindAdult || k == KindChild
}

// String returns the string representation.
func (k Kind) String() string {
	return string(k)
}

// Profile holds the attributes shared by every Person variant.
type Profile struct {
	Name      string
	Age       int
	EyeColor  string
	HairColor string
}

// Person is a created character. The set of implementations is closed:
// only Adult and Child satisfy it.
type Person interface {
	// Profile returns the shared attributes.
	Profile() Profile

	// Kind returns the variant.
	Kind() Kind

	// CanDrive reports the variant's driving eligibility.
	CanDrive() bool

	// DrivingMessage describes the driving eligibility for display.
	DrivingMessage() string

	sealed()
}

// Adult is a Person old enough to drive.
type Adult struct {
	profile Profile
}

var _ Person = Adult{}

// Profile returns the shared attributes.
func (a Adult) Profile() Profile { return a.profile }

// Kind returns KindAdult.
func (a Adult) Kind() Kind { return KindAdult }

// CanDrive always returns true.
func (a Adult) CanDrive() bool { return true }

// DrivingMessage returns the eligibility line for an adult.
func (a Adult) DrivingMessage() string {
	return fmt.Sprintf("%s is Old enough to Drive.", a.profile.Name)
}

func (Adult) sealed() {}

// Child is a Person too young to drive.
type Child struct {
	profile Profile
}

var _ Person = Child{}

// Profile returns the shared attributes.
func (c Child) Profile() Profile { return c.profile }

// Kind returns KindChild.
func (c Child) Kind() Kind { return KindChild }

// CanDrive always returns false.
func (c Child) CanDrive() bool { return false }

// DrivingMessage returns the eligibility line for a child.
func (c Child) DrivingMessage() string {
	return fmt.Sprintf("%s is too Young to Drive.", c.profile.Name)
}

func (Child) sealed() {}

// NewPerson validates the attributes and returns the variant chosen by age.
// Colours are normalised before the allow-list check.
func NewPerson(name string, age int, eyeColor, hairColor string) (Person, error) {
	if !IsValidName(name) {
		return nil, fmt.Errorf("%w: name %q must contain only letters", ErrInvalidInput, name)
	}
	if age < 0 {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, ErrAgeNegative)
	}

	eye := NormalizeColor(eyeColor)
	if !EyeColors.Contains(eye) {
		return nil, fmt.Errorf("%w: eye color %q is not one of: %s", ErrInvalidInput, eyeColor, EyeColors)
	}
	hair := NormalizeColor(hairColor)
	if !HairColors.Contains(hair) {
		return nil, fmt.Errorf("%w: hair color %q is not one of: %s", ErrInvalidInput, hairColor, HairColors)
	}

	p := Profile{Name: name, Age: age, EyeColor: eye, HairColor: hair}
	if age >= DrivingAge {
		return Adult{profile: p}, nil
	}
	return Child{profile: p}, nil
}

// IsValidName reports whether name is non-empty and made only of letters.
func IsValidName(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// Age parse failures. Each is reported to the user verbatim.
var (
	// ErrAgeNotNumber indicates the age was not a whole number.
	ErrAgeNotNumber = errors.New("age must be a whole number")

	// ErrAgeNegative indicates the age was below zero.
	ErrAgeNegative = errors.New("age cannot be negative")

	// ErrAgeTooLarge indicates a whole number outside the int range.
	ErrAgeTooLarge = errors.New("age is too large")
)

// ParseAge parses a non-negative integer age. Surrounding whitespace is ignored.
func ParseAge(raw string) (int, error) {
	trimmed := strings.TrimSpace(raw)
	age, err := strconv.Atoi(trimmed)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			if strings.HasPrefix(trimmed, "-") {
				return 0, ErrAgeNegative
			}
			return 0, ErrAgeTooLarge
		}
		return 0, ErrAgeNotNumber
	}
	if age < 0 {
		return 0, ErrAgeNegative
	}
	return age, nil
}

// ParseName trims the value and reports whether it is a valid name.
func ParseName(raw string) (string, bool) {
	name := strings.TrimSpace(raw)
	return name, IsValidName(name)
}
