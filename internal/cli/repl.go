package cli

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"gitlab.com/dirk.krummacker/addressbook/internal/command"
	"gitlab.com/dirk.krummacker/addressbook/internal/model"
)

const prompt = "> "

func newReplCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Read commands from standard input until EOF or \"exit\"",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, release, err := newService(cmd.Context(), cmd)
			if err != nil {
				return err
			}
			defer release()

			out := cmd.OutOrStdout()
			scanner := bufio.NewScanner(cmd.InOrStdin())
			fmt.Fprint(out, prompt)
			for scanner.Scan() {
				line := strings.TrimSpace(scanner.Text())
				switch line {
				case "exit":
					return nil
				case "":
				default:
					result, err := svc.Execute(cmd.Context(), line)
					if err != nil {
						fmt.Fprintln(out, feedback(err))
					} else {
						fmt.Fprintln(out, result.Feedback)
					}
				}
				fmt.Fprint(out, prompt)
			}
			return scanner.Err()
		},
	}
}

func newExecCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "exec COMMAND...",
		Short: "Run a single command and print its result",
		Example: `  addressbook exec edit n/Alex Yeoh p/91234567
  addressbook exec "edit n/Alex Yeoh t/"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, release, err := newService(cmd.Context(), cmd)
			if err != nil {
				return err
			}
			defer release()

			result, err := svc.Execute(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return errors.New(feedback(err))
			}
			fmt.Fprintln(cmd.OutOrStdout(), result.Feedback)
			return nil
		},
	}
}

// feedback returns the text shown to the user for a failed command. Failures
// outside the user's control are not described in detail.
func feedback(err error) string {
	var cmdErr *command.Error
	if errors.As(err, &cmdErr) || errors.Is(err, model.ErrConstraint) {
		return err.Error()
	}
	return "Could not execute command: " + err.Error()
}
