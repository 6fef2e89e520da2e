package model

import "regexp"

// NameConstraints is shown whenever a name fails validation.
const NameConstraints = "Names should only contain alphanumeric characters and spaces, and it should not be blank"

// The first character must not be a whitespace, otherwise " " (a blank string)
// becomes a valid input.
var nameRegexp = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9 ]*$`)

// Name is the full name of a person. It is also the lookup key of a person
// within the address book. The zero value is not a valid name.
type Name struct {
	value string
}

// NewName validates s and returns it as a Name.
func NewName(s string) (Name, error) {
	if !IsValidName(s) {
		return Name{}, &ConstraintError{Field: "name", Message: NameConstraints}
	}
	return Name{value: s}, nil
}

// IsValidName returns true if s is a valid name.
func IsValidName(s string) bool {
	return nameRegexp.MatchString(s)
}

func (n Name) String() string { return n.value }
