package cli

import (
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/Makepad-fr/tada/internal/logging"
	"github.com/Makepad-fr/tada/internal/ui"
)

// NewTUICommand creates the tui command.
func NewTUICommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive todo screen (default)",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, opts)
		},
	}
}

func runTUI(cmd *cobra.Command, opts *RootOptions) error {
	// The screen owns the terminal: without a log file, logs are dropped.
	log, closeLog, err := logging.Open(opts.Config.Log, opts.Verbose, io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	st := opts.newStore(opts.Config, log)
	if err := ui.Run(ctx, st, ui.Options{
		BannerTemplate: opts.Config.UI.BannerTemplate,
		Logger:         log,
	}); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}

func noArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("%w: %s takes no arguments", ErrUsage, cmd.Name())
	}
	return nil
}
