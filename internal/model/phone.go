package model

import "regexp"

// PhoneConstraints is shown whenever a phone number fails validation.
const PhoneConstraints = "Phone numbers should only contain numbers, and it should be at least 3 digits long"

var phoneRegexp = regexp.MustCompile(`^[0-9]{3,}$`)

// Phone is a person's phone number.
type Phone struct {
	value string
}

// NewPhone validates s and returns it as a Phone.
func NewPhone(s string) (Phone, error) {
	if !IsValidPhone(s) {
		return Phone{}, &ConstraintError{Field: "phone", Message: PhoneConstraints}
	}
	return Phone{value: s}, nil
}

// IsValidPhone returns true if s is a valid phone number.
func IsValidPhone(s string) bool {
	return phoneRegexp.MatchString(s)
}

func (p Phone) String() string { return p.value }
