package parser

import (
	"strings"

	"gitlab.com/dirk.krummacker/addressbook/internal/command"
	"gitlab.com/dirk.krummacker/addressbook/internal/model"
)

// MessageDuplicateFields starts the error listing repeated single-valued prefixes.
const MessageDuplicateFields = "Multiple values specified for the following single-valued field(s): "

// InvalidFormat returns the error for malformed input to the command described by u.
func InvalidFormat(u command.Usage) error {
	return command.NewError(command.ErrInvalidFormat, "Invalid command format! \n"+u.String())
}

// DuplicatePrefixes returns the error naming every repeated prefix.
func DuplicatePrefixes(prefixes ...Prefix) error {
	names := make([]string, 0, len(prefixes))
	for _, p := range prefixes {
		names = append(names, p.String())
	}
	return command.NewError(command.ErrDuplicatePrefix, MessageDuplicateFields+strings.Join(names, " "))
}

// editPrefixLimits caps how often each single-valued prefix may appear. The
// name prefix carries the old name and optionally the new one.
var editPrefixLimits = []struct {
	prefix Prefix
	max    int
}{
	{PrefixName, 2},
	{PrefixPhone, 1},
	{PrefixEmail, 1},
}

// EditParser parses the arguments of the edit command.
type EditParser struct{}

// Parse reads "n/OLD_NAME [n/NEW_NAME] [p/PHONE] [e/EMAIL] [t/TAG]..." into an
// EditCommand. Values are validated left to right and the first invalid one is
// reported.
func (EditParser) Parse(args string) (command.EditCommand, error) {
	m := Tokenize(args, PrefixName, PrefixPhone, PrefixEmail, PrefixTag)

	if m.Preamble() != "" || !m.Has(PrefixName) {
		return command.EditCommand{}, InvalidFormat(command.EditUsage)
	}

	var repeated []Prefix
	for _, l := range editPrefixLimits {
		if m.Count(l.prefix) > l.max {
			repeated = append(repeated, l.prefix)
		}
	}
	if len(repeated) > 0 {
		return command.EditCommand{}, DuplicatePrefixes(repeated...)
	}

	var (
		oldName   model.Name
		names     int
		d         command.EditPersonDescriptor
		tags      []model.Tag
		tagTokens = m.Count(PrefixTag)
	)
	for _, a := range m.Arguments() {
		switch a.Prefix {
		case PrefixName:
			n, err := model.NewName(a.Value)
			if err != nil {
				return command.EditCommand{}, err
			}
			if names == 0 {
				oldName = n
			} else {
				d = d.WithName(n)
			}
			names++
		case PrefixPhone:
			p, err := model.NewPhone(a.Value)
			if err != nil {
				return command.EditCommand{}, err
			}
			d = d.WithPhone(p)
		case PrefixEmail:
			e, err := model.NewEmail(a.Value)
			if err != nil {
				return command.EditCommand{}, err
			}
			d = d.WithEmail(e)
		case PrefixTag:
			// A lone empty tag clears all tags.
			if a.Value == "" && tagTokens == 1 {
				continue
			}
			t, err := model.NewTag(a.Value)
			if err != nil {
				return command.EditCommand{}, err
			}
			tags = append(tags, t)
		}
	}
	if tagTokens > 0 {
		d = d.WithTags(model.NewTagSet(tags...))
	}

	if !d.IsAnyFieldEdited() {
		return command.EditCommand{}, command.NewError(command.ErrNotEdited, command.MessageNotEdited)
	}
	return command.NewEditCommand(oldName, d), nil
}
