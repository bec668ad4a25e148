// ABOUTME: Pattern subcommands: note, list, and remove observations
// ABOUTME: Patterns are free-text, create/delete only
package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var patternCategory string

// NewPatternCmd creates the pattern command group.
func NewPatternCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pattern",
		Short: "Note and browse behavior patterns",
		Long: `Note observations about your own patterns.

Examples:
  tend pattern note "Evenings slide when dinner is late"
  tend pattern list
  tend pattern rm 20260828093001_a1b2c3d4`,
	}

	note := &cobra.Command{
		Use:   "note [text]",
		Short: "Record a pattern observation",
		Args:  cobra.ExactArgs(1),
		RunE:  runPatternNote,
	}
	note.Flags().StringVar(&patternCategory, "category", "", "Optional category label")

	list := &cobra.Command{
		Use:   "list",
		Short: "List pattern observations, newest first",
		RunE:  runPatternList,
	}

	rm := &cobra.Command{
		Use:   "rm [id]",
		Short: "Delete a pattern observation",
		Args:  cobra.ExactArgs(1),
		RunE:  runPatternRemove,
	}

	cmd.AddCommand(note, list, rm)
	return cmd
}

func runPatternNote(cmd *cobra.Command, args []string) error {
	text := args[0]
	if text == "" {
		return fmt.Errorf("pattern text must not be empty")
	}

	st, client, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(st, client)

	p, err := st.AddPattern(text, patternCategory)
	if err != nil {
		return err
	}
	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Noted pattern %s\n", p.ID)
	}
	return nil
}

func runPatternList(cmd *cobra.Command, args []string) error {
	st, client, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(st, client)

	patterns := st.Patterns()
	if len(patterns) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No patterns noted yet.")
		return nil
	}

	for _, p := range patterns {
		label := ""
		if p.Category != "" {
			label = " [" + p.Category + "]"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s%s  %s  (%s)\n", p.Date, label, truncate(p.Text, 70), p.ID)
	}
	return nil
}

func runPatternRemove(cmd *cobra.Command, args []string) error {
	st, client, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(st, client)

	if err := st.RemovePattern(args[0]); err != nil {
		return err
	}
	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Deleted pattern %s\n", args[0])
	}
	return nil
}
