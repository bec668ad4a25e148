// ABOUTME: Now command: show or switch the active time container
// ABOUTME: Lists the current container's anchors with completion state
package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/hollis/tend/internal/timeutil"
)

var nowSet string

// NewNowCmd creates the now command.
func NewNowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "now",
		Short: "Show the current container and its anchors",
		Long: `Show the active time container and the anchors filed under it.

The active container follows the clock unless explicitly switched.

Examples:
  tend now
  tend now --set evening`,
		RunE: runNow,
	}
	cmd.Flags().StringVar(&nowSet, "set", "", "Switch the active container (morning, afternoon, evening, late)")
	return cmd
}

func runNow(cmd *cobra.Command, args []string) error {
	st, client, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(st, client)

	if nowSet != "" {
		c, err := parseContainer(nowSet)
		if err != nil {
			return err
		}
		if err := st.SetActiveContainer(c); err != nil {
			return err
		}
	}

	active := st.ActiveContainer()
	fmt.Fprintf(cmd.OutOrStdout(), "%s · %s · clock says %s\n\n",
		timeutil.LongDate(time.Now()), active, timeutil.CurrentContainer())

	anchors := st.AnchorsIn(active)
	if len(anchors) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No anchors in this container.")
		return nil
	}
	for _, a := range anchors {
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s  (%s)\n", checkbox(st.IsCompleted(a.ID)), a.Title, a.ID)
	}
	return nil
}
