// Package book implements the in-memory contact directory: validating
// field types, contact records, and the upcoming-birthday query.
package book

import (
	"fmt"
	"time"
)

// BirthdayLayout is the only accepted format for birthday input and output.
const BirthdayLayout = "02.01.2006"

// phoneLength is the required number of digits in a phone number.
const phoneLength = 10

// ValidationError reports a raw input rejected by a field constructor.
type ValidationError struct {
	Kind  string // "name", "phone", or "birthday"
	Input string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s format: %q", e.Kind, e.Input)
}

// Name is a contact's display name. It doubles as the Book key, so the
// only constraint is that it is non-empty.
type Name string

// NewName validates raw as a usable contact name.
func NewName(raw string) (Name, error) {
	if raw == "" {
		return "", &ValidationError{Kind: "name", Input: raw}
	}
	return Name(raw), nil
}

func (n Name) String() string { return string(n) }

// Phone is a validated phone number: exactly ten ASCII decimal digits.
type Phone string

// NewPhone validates raw against the phone format. The stored value is the
// raw string unchanged, so valid input round-trips exactly.
func NewPhone(raw string) (Phone, error) {
	if len(raw) != phoneLength {
		return "", &ValidationError{Kind: "phone", Input: raw}
	}
	for i := 0; i < len(raw); i++ {
		if raw[i] < '0' || raw[i] > '9' {
			return "", &ValidationError{Kind: "phone", Input: raw}
		}
	}
	return Phone(raw), nil
}

func (p Phone) String() string { return string(p) }

// Birthday is a validated calendar date with no time-of-day component.
type Birthday struct {
	date time.Time
}

// NewBirthday parses raw as a full DD.MM.YYYY date. Partial parses,
// other separators, and impossible calendar dates are all rejected.
func NewBirthday(raw string) (Birthday, error) {
	t, err := time.Parse(BirthdayLayout, raw)
	if err != nil {
		return Birthday{}, &ValidationError{Kind: "birthday", Input: raw}
	}
	return Birthday{date: t}, nil
}

// String formats the birthday back in the input layout.
func (b Birthday) String() string { return b.date.Format(BirthdayLayout) }

// Month returns the birthday's calendar month.
func (b Birthday) Month() time.Month { return b.date.Month() }

// Day returns the birthday's day of month.
func (b Birthday) Day() int { return b.date.Day() }

// Year returns the birth year.
func (b Birthday) Year() int { return b.date.Year() }
