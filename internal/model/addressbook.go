package model

import (
	"errors"
	"fmt"
	"slices"
)

// ErrDuplicatePerson is returned when a change would make two persons share an
// identity.
var ErrDuplicatePerson = errors.New("duplicate person")

// ErrPersonNotFound is returned when the person to replace is not in the book.
var ErrPersonNotFound = errors.New("person not found")

// Predicate selects the persons shown in the filtered view.
type Predicate func(Person) bool

// ShowAllPersons is the predicate that shows every person.
func ShowAllPersons(Person) bool { return true }

// AddressBook is the in-memory list of persons. No two persons in the book are
// IsSamePerson. It is not safe for concurrent use.
type AddressBook struct {
	persons []Person
	filter  Predicate
}

// NewAddressBook returns a book holding the given persons in order.
func NewAddressBook(persons ...Person) (*AddressBook, error) {
	book := &AddressBook{filter: ShowAllPersons}
	for _, p := range persons {
		if err := book.AddPerson(p); err != nil {
			return nil, err
		}
	}
	return book, nil
}

// AddPerson appends p to the book.
func (b *AddressBook) AddPerson(p Person) error {
	if b.HasPerson(p) {
		return fmt.Errorf("add %s: %w", p.Name, ErrDuplicatePerson)
	}
	b.persons = append(b.persons, p)
	return nil
}

// HasPerson returns true if a person with the same identity as p is in the book.
func (b *AddressBook) HasPerson(p Person) bool {
	return slices.ContainsFunc(b.persons, p.IsSamePerson)
}

// SetPerson replaces target with edited. The identity of edited must not be the
// same as another person in the book.
func (b *AddressBook) SetPerson(target, edited Person) error {
	i := slices.IndexFunc(b.persons, func(p Person) bool { return p.Equal(target) })
	if i < 0 {
		return fmt.Errorf("replace %s: %w", target.Name, ErrPersonNotFound)
	}
	if !target.IsSamePerson(edited) && b.HasPerson(edited) {
		return fmt.Errorf("replace %s with %s: %w", target.Name, edited.Name, ErrDuplicatePerson)
	}
	b.persons[i] = edited
	return nil
}

// Persons returns every person in the book in insertion order.
func (b *AddressBook) Persons() []Person {
	return slices.Clone(b.persons)
}

// FilteredPersons returns the persons accepted by the current filter.
func (b *AddressBook) FilteredPersons() []Person {
	var shown []Person
	for _, p := range b.persons {
		if b.filter(p) {
			shown = append(shown, p)
		}
	}
	return shown
}

// UpdateFilter replaces the predicate of the filtered view.
func (b *AddressBook) UpdateFilter(pred Predicate) {
	if pred == nil {
		pred = ShowAllPersons
	}
	b.filter = pred
}

// ShowAll resets the filtered view to show every person.
func (b *AddressBook) ShowAll() {
	b.filter = ShowAllPersons
}
