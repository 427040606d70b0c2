package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Makepad-fr/tada/internal/store"
)

// NewIntentsCommand creates the intents command, which lists the action
// names replay scripts may use.
func NewIntentsCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "intents",
		Short: "List the actions accepted in replay scripts",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range store.IntentNames() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}
