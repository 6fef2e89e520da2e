package parser

import (
	"sort"
	"strings"

	"gitlab.com/dirk.krummacker/addressbook/internal/command"
)

// MessageUnknownCommand is returned for an unrecognised command word.
const MessageUnknownCommand = "Unknown command"

// AddressBookParser splits the command word off user input and hands the
// arguments to the parser registered for that word.
type AddressBookParser struct {
	parsers map[string]func(args string) (command.Command, error)
	usages  map[string]command.Usage
}

// NewAddressBookParser returns a parser that knows every supported command.
func NewAddressBookParser() *AddressBookParser {
	p := &AddressBookParser{
		parsers: map[string]func(string) (command.Command, error){},
		usages:  map[string]command.Usage{},
	}
	p.register(command.EditUsage, func(args string) (command.Command, error) {
		cmd, err := EditParser{}.Parse(args)
		if err != nil {
			return nil, err
		}
		return cmd, nil
	})
	return p
}

func (p *AddressBookParser) register(u command.Usage, parse func(string) (command.Command, error)) {
	p.parsers[u.Word] = parse
	p.usages[u.Word] = u
}

// Words returns the known command words in sorted order.
func (p *AddressBookParser) Words() []string {
	words := make([]string, 0, len(p.parsers))
	for w := range p.parsers {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

// Usage returns the usage of a command word.
func (p *AddressBookParser) Usage(word string) (command.Usage, bool) {
	u, ok := p.usages[word]
	return u, ok
}

// ParseCommand parses a full line of user input.
func (p *AddressBookParser) ParseCommand(input string) (command.Command, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, command.NewError(command.ErrInvalidFormat,
			"Invalid command format! \nKnown commands: "+strings.Join(p.Words(), ", "))
	}
	word, args, _ := strings.Cut(input, " ")
	parse, ok := p.parsers[word]
	if !ok {
		return nil, command.NewError(command.ErrUnknownCommand, MessageUnknownCommand)
	}
	return parse(args)
}

// CommandWord returns the first word of input.
func CommandWord(input string) string {
	word, _, _ := strings.Cut(strings.TrimSpace(input), " ")
	return word
}
