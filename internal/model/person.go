package model

import (
	"fmt"
	"slices"
)

// Person is an entry of the address book. All fields are values, so copying a
// Person copies the whole record except for the bookings, which must be treated
// as read-only.
type Person struct {
	Name     Name
	Phone    Phone
	Email    Email
	Tags     TagSet
	Bookings []Booking
}

// IsSamePerson returns true if both persons have the same identity. This is a
// weaker notion of equality than Equal and is used to keep the address book free
// of duplicates.
func (p Person) IsSamePerson(other Person) bool {
	return p.Name == other.Name
}

// Equal returns true if both persons have the same identity and data fields.
func (p Person) Equal(other Person) bool {
	return p.Name == other.Name &&
		p.Phone == other.Phone &&
		p.Email == other.Email &&
		p.Tags.Equal(other.Tags) &&
		slices.Equal(p.Bookings, other.Bookings)
}

// String formats the person for user feedback.
func (p Person) String() string {
	return fmt.Sprintf("%s; Phone: %s; Email: %s; Tags: %s", p.Name, p.Phone, p.Email, p.Tags)
}
