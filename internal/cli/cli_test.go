package cli

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/dirk.krummacker/addressbook/internal/command"
	"gitlab.com/dirk.krummacker/addressbook/internal/model"
	"gitlab.com/dirk.krummacker/addressbook/internal/service"
)

// useSampleService makes the CLI run against an in-memory book with the sample persons.
func useSampleService(t *testing.T) {
	t.Helper()
	original := newService
	t.Cleanup(func() { newService = original })
	newService = func(context.Context, *cobra.Command) (*service.Service, func(), error) {
		book, err := model.NewAddressBook(model.SamplePersons()...)
		if err != nil {
			return nil, nil, err
		}
		return service.New(book, nil, slog.New(slog.NewTextHandler(io.Discard, nil))), func() {}, nil
	}
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestExec(t *testing.T) {
	useSampleService(t)

	out, err := run(t, "", "exec", "edit", "n/Bernice", "Yu", "e/bernice@example.com")
	require.NoError(t, err)
	assert.Equal(t,
		"Edited Person: Bernice Yu; Phone: 99272758; Email: bernice@example.com; Tags: [colleagues][friends]\n", out)
}

func TestExecFailure(t *testing.T) {
	useSampleService(t)

	_, err := run(t, "", "exec", "edit n/Bernice Yu")
	require.Error(t, err)
	assert.Equal(t, command.MessageNotEdited, err.Error())

	_, err = run(t, "", "exec")
	assert.Error(t, err)
}

// TestRepl expects every line to be executed against the same book until "exit".
func TestRepl(t *testing.T) {
	useSampleService(t)

	stdin := strings.Join([]string{
		"edit n/David Li n/David Lim",
		"",
		"edit n/David Li p/123",
		"edit n/David Lim p/12",
		"exit",
		"edit n/David Lim p/999",
	}, "\n")
	out, err := run(t, stdin, "repl")
	require.NoError(t, err)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "> Edited Person: David Lim; Phone: 91031282; Email: lidavid@example.com; Tags: [family]", lines[0])
	assert.Equal(t, "> > Person with name 'David Li' not found in the address book.", lines[1])
	assert.Equal(t, "> "+model.PhoneConstraints, lines[2])
	assert.Equal(t, "> ", lines[3])
}

func TestReplEOF(t *testing.T) {
	useSampleService(t)

	out, err := run(t, "edit n/Roy Balakrishnan t/", "repl")
	require.NoError(t, err)
	assert.Equal(t, "> Edited Person: Roy Balakrishnan; Phone: 92624417; Email: royb@example.com; Tags: \n> ", out)
}

func TestVersion(t *testing.T) {
	out, err := run(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "addressbook dev (commit: unknown)\n", out)
}

func TestFeedback(t *testing.T) {
	assert.Equal(t, "Unknown command", feedback(command.NewError(command.ErrUnknownCommand, "Unknown command")))
	assert.Equal(t, "Could not execute command: boom", feedback(errors.New("boom")))
}
