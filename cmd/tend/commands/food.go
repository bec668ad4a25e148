// ABOUTME: Food subcommands: log, list, and remove meal entries
// ABOUTME: Entries carry optional mood-before/after and energy notes
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hollis/tend/internal/models"
)

var (
	foodPortion    string
	foodNotes      string
	foodMoodBefore string
	foodMoodAfter  string
	foodEnergy     string
)

// NewFoodCmd creates the food command group.
func NewFoodCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "food",
		Short: "Log and browse food entries",
		Long: `Log meals and snacks, with optional mood and energy notes.

Examples:
  tend food log "Oatmeal" --portion "one bowl" --mood-before foggy
  tend food list
  tend food rm 20260828093001_a1b2c3d4`,
	}

	logCmd := &cobra.Command{
		Use:   "log [name]",
		Short: "Log a meal or snack",
		Args:  cobra.ExactArgs(1),
		RunE:  runFoodLog,
	}
	logCmd.Flags().StringVar(&foodPortion, "portion", "", "Portion description")
	logCmd.Flags().StringVar(&foodNotes, "notes", "", "Free-text notes")
	logCmd.Flags().StringVar(&foodMoodBefore, "mood-before", "", "Mood before eating")
	logCmd.Flags().StringVar(&foodMoodAfter, "mood-after", "", "Mood after eating")
	logCmd.Flags().StringVar(&foodEnergy, "energy", "", "Energy level afterwards")

	list := &cobra.Command{
		Use:   "list",
		Short: "List food entries, newest first",
		RunE:  runFoodList,
	}

	rm := &cobra.Command{
		Use:   "rm [id]",
		Short: "Delete a food entry",
		Args:  cobra.ExactArgs(1),
		RunE:  runFoodRemove,
	}

	cmd.AddCommand(logCmd, list, rm)
	return cmd
}

func runFoodLog(cmd *cobra.Command, args []string) error {
	name := args[0]
	if name == "" {
		return fmt.Errorf("food name must not be empty")
	}

	st, client, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(st, client)

	entry, err := st.AddFoodEntry(models.FoodEntry{
		Name:        name,
		Portion:     foodPortion,
		Notes:       foodNotes,
		MoodBefore:  foodMoodBefore,
		MoodAfter:   foodMoodAfter,
		EnergyLevel: foodEnergy,
	})
	if err != nil {
		return err
	}
	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Logged %s (%s)\n", entry.Name, entry.ID)
	}
	return nil
}

func runFoodList(cmd *cobra.Command, args []string) error {
	st, client, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(st, client)

	entries := st.FoodEntries()
	if len(entries) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No food entries yet.")
		return nil
	}

	for _, e := range entries {
		extra := ""
		if e.Portion != "" {
			extra = " · " + e.Portion
		}
		if e.EnergyLevel != "" {
			extra += " · energy: " + e.EnergyLevel
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s  %s%s  (%s)\n", e.Date, truncate(e.Name, 40), extra, e.ID)
	}
	return nil
}

func runFoodRemove(cmd *cobra.Command, args []string) error {
	st, client, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(st, client)

	if err := st.RemoveFoodEntry(args[0]); err != nil {
		return err
	}
	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Deleted food entry %s\n", args[0])
	}
	return nil
}
