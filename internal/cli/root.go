// Package cli implements the addressbook command line.
package cli

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"gitlab.com/dirk.krummacker/addressbook/internal/config"
	"gitlab.com/dirk.krummacker/addressbook/internal/service"
)

// newService builds the service for a CLI run. It is a variable so tests can
// swap in an in-memory book.
var newService = func(ctx context.Context, cmd *cobra.Command) (*service.Service, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	logger := cfg.NewLogger(cmd.ErrOrStderr())
	slog.SetDefault(logger)
	return service.Bootstrap(ctx, cfg, logger)
}

// NewRootCmd returns the addressbook command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "addressbook",
		Short:         "Manage contacts from the command line",
		Long:          "addressbook keeps a list of contacts and edits them with commands like\n\n  edit n/OLD_NAME [n/NEW_NAME] [p/PHONE] [e/EMAIL] [t/TAG]...",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newReplCmd())
	root.AddCommand(newExecCmd())
	root.AddCommand(newVersionCmd())
	return root
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}
