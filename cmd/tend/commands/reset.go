// ABOUTME: Reset command: wipe all data back to the built-in seed content
// ABOUTME: Requires an explicit confirmation flag
package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetConfirmed bool

// NewResetCmd creates the reset command.
func NewResetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Erase everything and start over with the seed content",
		RunE:  runReset,
	}
	cmd.Flags().BoolVar(&resetConfirmed, "yes", false, "Confirm: this deletes all anchors, allies, journals, and logs")
	return cmd
}

func runReset(cmd *cobra.Command, args []string) error {
	if !resetConfirmed {
		return fmt.Errorf("refusing to reset without --yes")
	}

	st, client, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(st, client)

	if err := st.Reset(); err != nil {
		return err
	}
	if !quiet {
		fmt.Fprintln(cmd.OutOrStdout(), "✓ All data erased; seed content restored")
	}
	return nil
}
