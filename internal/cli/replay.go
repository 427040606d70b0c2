package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/Makepad-fr/tada/internal/logging"
	"github.com/Makepad-fr/tada/internal/script"
	"github.com/Makepad-fr/tada/internal/store"
)

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// ReplayOptions holds flags for the replay command.
type ReplayOptions struct {
	*RootOptions
	Format string
	Group  bool // list grouped by pending/done
}

// ReplayResult is the json output of replay.
type ReplayResult struct {
	Steps    int         `json:"steps"`
	State    store.State `json:"state"`
	Active   int         `json:"active"`
	Finished int         `json:"finished"`
}

// NewReplayCommand creates the replay command.
func NewReplayCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ReplayOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "replay <script.yaml>",
		Short: "Apply a YAML script of intents to a fresh store and print the result",
		Long: `Apply a YAML script of intents to a fresh, empty store and print the
final state. Run "tada intents" for the accepted action names.

Examples:
  tada replay demo.yaml
  tada replay --group demo.yaml
  tada replay --format json demo.yaml`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("%w: replay takes exactly one script path", ErrUsage)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReplay(cmd, opts, args[0])
		},
	}

	cmd.Flags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.Flags().BoolVar(&opts.Group, "group", false, "group output by pending/done")
	return cmd
}

func runReplay(cmd *cobra.Command, opts *ReplayOptions, path string) error {
	if !slices.Contains(ValidFormats, opts.Format) {
		return fmt.Errorf("%w: invalid format %q: must be one of %v", ErrUsage, opts.Format, ValidFormats)
	}

	log, closeLog, err := logging.Open(opts.Config.Log, opts.Verbose, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer closeLog()

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open script: %w", err)
	}
	defer f.Close()

	sc, err := script.Parse(f)
	if err != nil {
		return err
	}

	st := opts.newStore(opts.Config, log)
	n, err := script.Run(st, sc)
	if err != nil {
		return err
	}
	log.Debug("replay finished", "script", path, "steps", n)

	snap := st.Snapshot()
	out := cmd.OutOrStdout()
	if opts.Format == "json" {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(ReplayResult{
			Steps:    n,
			State:    snap,
			Active:   len(snap.ActiveTasks()),
			Finished: len(snap.FinishedTasks()),
		})
	}
	return writeText(out, snap, opts.Group)
}
