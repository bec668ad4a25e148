// ABOUTME: Ally subcommands: list, add, edit, remove, and quick use logging
// ABOUTME: Allies keep a cached log of the moments that reference them
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hollis/tend/internal/models"
)

var (
	allyFace       string
	allyInvocation string
	allyFunction   string
	allyShadow     string
	allyRitual     string
	allyName       string
)

// NewAllyCmd creates the ally command group.
func NewAllyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ally",
		Short: "Manage substance companions",
		Long: `Manage allies: substance companion records with qualitative notes
and a log of the moments that reference them.

Examples:
  tend ally list
  tend ally add "Coffee" --face "The morning herald"
  tend ally use 20260828093001_a1b2c3d4
  tend ally rm 20260828093001_a1b2c3d4`,
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List allies",
		RunE:  runAllyList,
	}

	add := &cobra.Command{
		Use:   "add [name]",
		Short: "Add an ally",
		Args:  cobra.ExactArgs(1),
		RunE:  runAllyAdd,
	}
	addAllyFlags(add)

	edit := &cobra.Command{
		Use:   "edit [id]",
		Short: "Edit an ally, replacing the given fields",
		Args:  cobra.ExactArgs(1),
		RunE:  runAllyEdit,
	}
	edit.Flags().StringVar(&allyName, "name", "", "New name")
	addAllyFlags(edit)

	use := &cobra.Command{
		Use:   "use [id]",
		Short: "Log a quick 'used this ally' entry",
		Args:  cobra.ExactArgs(1),
		RunE:  runAllyUse,
	}

	rm := &cobra.Command{
		Use:   "rm [id]",
		Short: "Remove an ally (journal history stays)",
		Args:  cobra.ExactArgs(1),
		RunE:  runAllyRemove,
	}

	cmd.AddCommand(list, add, edit, use, rm)
	return cmd
}

func addAllyFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&allyFace, "face", "", "How this ally presents itself")
	cmd.Flags().StringVar(&allyInvocation, "invocation", "", "When it gets called on")
	cmd.Flags().StringVar(&allyFunction, "function", "", "What it does for you")
	cmd.Flags().StringVar(&allyShadow, "shadow", "", "What it costs")
	cmd.Flags().StringVar(&allyRitual, "ritual", "", "The intended way of using it")
}

func runAllyList(cmd *cobra.Command, args []string) error {
	st, client, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(st, client)

	allies := st.Allies()
	if len(allies) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No allies yet. Add one with 'tend ally add'.")
		return nil
	}

	for _, a := range allies {
		fmt.Fprintf(cmd.OutOrStdout(), "%-16s %s  (%s, %d logged moments)\n",
			truncate(a.Name, 16), truncate(a.Face, 40), a.ID, len(a.Log))
	}
	return nil
}

func runAllyAdd(cmd *cobra.Command, args []string) error {
	name := args[0]
	if name == "" {
		return fmt.Errorf("ally name must not be empty")
	}

	st, client, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(st, client)

	ally, err := st.AddAlly(models.Ally{
		Name:       name,
		Face:       allyFace,
		Invocation: allyInvocation,
		Function:   allyFunction,
		Shadow:     allyShadow,
		Ritual:     allyRitual,
	})
	if err != nil {
		return err
	}

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Added ally %s (%s)\n", ally.Name, ally.ID)
	}
	return nil
}

func runAllyEdit(cmd *cobra.Command, args []string) error {
	st, client, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(st, client)

	current, ok := st.Ally(args[0])
	if !ok {
		return fmt.Errorf("ally not found: %s", args[0])
	}

	if allyName != "" {
		current.Name = allyName
	}
	if allyFace != "" {
		current.Face = allyFace
	}
	if allyInvocation != "" {
		current.Invocation = allyInvocation
	}
	if allyFunction != "" {
		current.Function = allyFunction
	}
	if allyShadow != "" {
		current.Shadow = allyShadow
	}
	if allyRitual != "" {
		current.Ritual = allyRitual
	}

	if err := st.UpdateAlly(current); err != nil {
		return err
	}
	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Updated ally %s\n", current.ID)
	}
	return nil
}

func runAllyUse(cmd *cobra.Command, args []string) error {
	st, client, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(st, client)

	m, err := st.LogAllyUse(args[0])
	if err != nil {
		return err
	}
	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "✓ %s\n", m.Text)
	}
	return nil
}

func runAllyRemove(cmd *cobra.Command, args []string) error {
	st, client, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(st, client)

	if err := st.RemoveAlly(args[0]); err != nil {
		return err
	}
	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Removed ally %s (its journal history remains)\n", args[0])
	}
	return nil
}
