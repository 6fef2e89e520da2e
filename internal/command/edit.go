package command

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"gitlab.com/dirk.krummacker/addressbook/internal/model"
)

// EditWord is the command word of the edit command.
const EditWord = "edit"

// EditUsage is shown when the edit command is malformed.
var EditUsage = Usage{
	Word: EditWord,
	Description: "Edits the details of the person identified by their name. " +
		"Existing values will be overwritten by the input values.",
	Parameters: "n/OLD_NAME [n/NEW_NAME] [p/PHONE] [e/EMAIL] [t/TAG]...",
	Example:    EditWord + " n/John Doe n/Jane Doe p/91234567 e/janedoe@example.com",
}

// Messages of the edit command.
const (
	MessageEditPersonSuccess = "Edited Person: %s"
	MessageNotEdited         = "At least one field to edit must be provided."
	MessageDuplicatePerson   = "This person already exists in the address book."
	MessagePersonNotFound    = "Person with name '%s' not found in the address book."
)

// EditPersonDescriptor holds the fields to change on a person. Unset fields keep
// their current value. Tags set to the empty TagSet clear all tags.
//
// A descriptor is a value: the With methods return a modified copy and every
// field is immutable, so a descriptor can be shared freely.
type EditPersonDescriptor struct {
	Name  Field[model.Name]
	Phone Field[model.Phone]
	Email Field[model.Email]
	Tags  Field[model.TagSet]
}

func (d EditPersonDescriptor) WithName(n model.Name) EditPersonDescriptor {
	d.Name = Set(n)
	return d
}

func (d EditPersonDescriptor) WithPhone(p model.Phone) EditPersonDescriptor {
	d.Phone = Set(p)
	return d
}

func (d EditPersonDescriptor) WithEmail(e model.Email) EditPersonDescriptor {
	d.Email = Set(e)
	return d
}

func (d EditPersonDescriptor) WithTags(tags model.TagSet) EditPersonDescriptor {
	d.Tags = Set(tags)
	return d
}

// IsAnyFieldEdited returns true if at least one field is set.
func (d EditPersonDescriptor) IsAnyFieldEdited() bool {
	return d.Name.IsSet() || d.Phone.IsSet() || d.Email.IsSet() || d.Tags.IsSet()
}

// Apply returns p with every set field of the descriptor replaced. Bookings are
// always kept.
func (d EditPersonDescriptor) Apply(p model.Person) model.Person {
	return model.Person{
		Name:     d.Name.Or(p.Name),
		Phone:    d.Phone.Or(p.Phone),
		Email:    d.Email.Or(p.Email),
		Tags:     d.Tags.Or(p.Tags),
		Bookings: p.Bookings,
	}
}

func (d EditPersonDescriptor) String() string {
	return fmt.Sprintf("{name=%s, phone=%s, email=%s, tags=%s}", d.Name, d.Phone, d.Email, d.Tags)
}

// EditCommand edits the details of the person with name OldName.
type EditCommand struct {
	OldName    model.Name
	Descriptor EditPersonDescriptor
}

// NewEditCommand returns the command that applies d to the person named oldName.
func NewEditCommand(oldName model.Name, d EditPersonDescriptor) EditCommand {
	return EditCommand{OldName: oldName, Descriptor: d}
}

// Execute looks the person up in the filtered list, applies the descriptor and
// stores the result. The filter is reset to show all persons on success.
func (c EditCommand) Execute(m Model) (Result, error) {
	log := slog.Default().With("command", EditWord)
	log.Info("executing edit", "person", c.OldName.String())

	shown := m.FilteredPersons()
	i := slices.IndexFunc(shown, func(p model.Person) bool { return p.Name == c.OldName })
	if i < 0 {
		log.Warn("person not found", "person", c.OldName.String())
		return Result{}, NewError(ErrPersonNotFound, fmt.Sprintf(MessagePersonNotFound, c.OldName))
	}
	target := shown[i]
	edited := c.Descriptor.Apply(target)

	if !target.IsSamePerson(edited) && m.HasPerson(edited) {
		log.Warn("edit would duplicate a person", "person", target.Name.String(), "edited", edited.Name.String())
		return Result{}, NewError(ErrDuplicatePerson, MessageDuplicatePerson)
	}

	if err := m.SetPerson(target, edited); err != nil {
		if errors.Is(err, model.ErrDuplicatePerson) {
			return Result{}, NewError(ErrDuplicatePerson, MessageDuplicatePerson)
		}
		return Result{}, fmt.Errorf("edit %s: %w", c.OldName, err)
	}
	m.ShowAll()

	log.Info("edited person", "person", edited.Name.String())
	return Result{Feedback: fmt.Sprintf(MessageEditPersonSuccess, edited)}, nil
}

func (c EditCommand) String() string {
	var b strings.Builder
	b.WriteString("EditCommand{oldName=")
	b.WriteString(c.OldName.String())
	b.WriteString(", editPersonDescriptor=")
	b.WriteString(c.Descriptor.String())
	b.WriteString("}")
	return b.String()
}
