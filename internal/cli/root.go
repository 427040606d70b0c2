package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/Makepad-fr/tada/internal/config"
	"github.com/Makepad-fr/tada/internal/store"
	"github.com/Makepad-fr/tada/internal/store/tasks"
)

// ErrUsage marks errors caused by bad arguments or flags.
var ErrUsage = errors.New("usage")

// RootOptions holds global flags for all commands.
type RootOptions struct {
	ConfigPath string
	Verbose    bool

	// Config is loaded before any subcommand runs.
	Config config.Config

	newStore func(cfg config.Config, log *slog.Logger) *store.Store
}

// NewRootCommand creates the root command for the tada CLI.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&RootOptions{newStore: defaultStore})
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tada",
		Short: "tada - a todo list with a dark mode",
		Long: `A single-screen todo list with a dark-mode toggle and an
informational banner. State lives in memory for the life of the process.`,
		Args:          noArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.ConfigPath)
			if err != nil {
				return err
			}
			opts.Config = cfg
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, opts)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "config file (default $HOME/.config/tada/config.toml)")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "debug logging")

	cmd.AddCommand(NewTUICommand(opts))
	cmd.AddCommand(NewReplayCommand(opts))
	cmd.AddCommand(NewIntentsCommand(opts))

	cmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	})
	return cmd
}

// defaultStore builds a store from configuration: initial theme and the
// locale used for item timestamps.
func defaultStore(cfg config.Config, log *slog.Logger) *store.Store {
	return store.New(
		store.WithLogger(log),
		store.WithDarkMode(cfg.UI.DarkMode),
		store.WithReducer(tasks.NewReducer(
			tasks.WithFormatter(tasks.LocaleFormatter(cfg.UI.Locale, time.Local)),
		)),
	)
}

// Execute runs the CLI with args and returns the process exit code
// (0 ok, 1 error, 2 usage).
func Execute(args []string, stdout, stderr io.Writer) int {
	cmd := NewRootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	if err := cmd.Execute(); err != nil {
		Fail(stderr, err.Error())
		return ExitCode(err)
	}
	return 0
}

// ExitCode maps an error returned by the root command to an exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, ErrUsage):
		return 2
	default:
		return 1
	}
}
