// Package command holds the commands that act on the address book.
package command

import "gitlab.com/dirk.krummacker/addressbook/internal/model"

// Model is the view of the address book a command works on.
type Model interface {
	FilteredPersons() []model.Person
	HasPerson(p model.Person) bool
	SetPerson(target, edited model.Person) error
	ShowAll()
}

// Result is the outcome of a successful command.
type Result struct {
	Feedback string
}

// Command is a parsed user command ready to run.
type Command interface {
	Execute(m Model) (Result, error)
}

// Usage describes how to invoke a command.
type Usage struct {
	Word        string
	Description string
	Parameters  string
	Example     string
}

func (u Usage) String() string {
	return u.Word + ": " + u.Description + "\nParameters: " + u.Parameters + "\nExample: " + u.Example
}
