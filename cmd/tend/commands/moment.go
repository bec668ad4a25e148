// ABOUTME: Moment subcommands: record, list, and remove journal check-ins
// ABOUTME: Supports both the general and the substance journal
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hollis/tend/internal/models"
)

var (
	momentSubstance  bool
	momentAllyID     string
	momentAnchorID   string
	momentTone       string
	momentFrequency  string
	momentPresence   string
	momentContext    string
	momentReflection string
	momentShift      string
	momentOffering   string
	momentLimit      int
)

// NewMomentCmd creates the moment command group.
func NewMomentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "moment",
		Short: "Record and browse journal moments",
		Long: `Record and browse moments: reflective check-ins, optionally tied to
an ally or an anchor.

Examples:
  tend moment add "Slow morning, took the long way to work"
  tend moment add "First cup outside" --ally 20260828_a1b2 --tone Lighter
  tend moment list
  tend moment list --substance`,
	}

	add := &cobra.Command{
		Use:   "add [text]",
		Short: "Record a moment",
		Args:  cobra.ExactArgs(1),
		RunE:  runMomentAdd,
	}
	add.Flags().BoolVar(&momentSubstance, "substance", false, "File into the substance journal")
	add.Flags().StringVar(&momentAllyID, "ally", "", "Ally this moment relates to")
	add.Flags().StringVar(&momentAnchorID, "anchor", "", "Anchor this moment relates to")
	add.Flags().StringVar(&momentTone, "tone", "", "Tone check-in (Lighter, Same, Spikier)")
	add.Flags().StringVar(&momentFrequency, "frequency", "", "Frequency check-in (Water, Light, Movement, Sound, Novelty, Social)")
	add.Flags().StringVar(&momentPresence, "presence", "", "Presence check-in (Focused, Scattered, Present, Distant)")
	add.Flags().StringVar(&momentContext, "context", "", "The setting before the moment")
	add.Flags().StringVar(&momentReflection, "reflection", "", "How the ritual felt")
	add.Flags().StringVar(&momentShift, "shift", "", "The most notable shift in state")
	add.Flags().StringVar(&momentOffering, "offering", "", "The lesson to carry forward")

	list := &cobra.Command{
		Use:   "list",
		Short: "List moments, newest first",
		RunE:  runMomentList,
	}
	list.Flags().BoolVar(&momentSubstance, "substance", false, "Show the substance journal")
	list.Flags().IntVar(&momentLimit, "limit", 20, "Maximum entries to show")

	rm := &cobra.Command{
		Use:   "rm [id]",
		Short: "Delete a moment",
		Args:  cobra.ExactArgs(1),
		RunE:  runMomentRemove,
	}
	rm.Flags().BoolVar(&momentSubstance, "substance", false, "Delete from the substance journal")

	cmd.AddCommand(add, list, rm)
	return cmd
}

func runMomentAdd(cmd *cobra.Command, args []string) error {
	text := args[0]
	if text == "" {
		return fmt.Errorf("moment text must not be empty")
	}

	st, client, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(st, client)

	m := models.Moment{
		Text:               text,
		AllyID:             momentAllyID,
		AnchorID:           momentAnchorID,
		Tone:               momentTone,
		Frequency:          momentFrequency,
		Presence:           momentPresence,
		Context:            momentContext,
		ActionReflection:   momentReflection,
		ResultShift:        momentShift,
		ConclusionOffering: momentOffering,
	}

	var saved models.Moment
	if momentSubstance {
		saved, err = st.AddSubstanceMoment(m)
	} else {
		saved, err = st.AddMoment(m)
	}
	if err != nil {
		return err
	}

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Recorded moment %s\n", saved.ID)
	}
	return nil
}

func runMomentList(cmd *cobra.Command, args []string) error {
	if momentLimit <= 0 {
		return fmt.Errorf("limit must be positive, got %d", momentLimit)
	}

	st, client, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(st, client)

	moments := st.Moments()
	if momentSubstance {
		moments = st.SubstanceMoments()
	}
	if len(moments) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No moments recorded yet.")
		return nil
	}
	if len(moments) > momentLimit {
		moments = moments[:momentLimit]
	}

	for _, m := range moments {
		link := ""
		if m.AllyName != "" {
			link = " · ally: " + m.AllyName
		}
		if m.AnchorTitle != "" {
			link += " · anchor: " + m.AnchorTitle
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s  %s%s\n    %s  (%s)\n",
			m.Date, formatTime(millisTime(m.Timestamp)), link, truncate(m.Text, 70), m.ID)
	}
	return nil
}

func runMomentRemove(cmd *cobra.Command, args []string) error {
	st, client, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(st, client)

	if momentSubstance {
		err = st.RemoveSubstanceMoment(args[0])
	} else {
		err = st.RemoveMoment(args[0])
	}
	if err != nil {
		return err
	}
	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Deleted moment %s\n", args[0])
	}
	return nil
}
