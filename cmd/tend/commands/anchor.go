// ABOUTME: Anchor subcommands: list, add, edit, remove, and toggle completion
// ABOUTME: The CLI validates input; the store only applies it
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hollis/tend/internal/models"
)

var (
	anchorContainer string
	anchorCategory  string
	anchorCue       string
	anchorMicro     string
	anchorDesire    string
	anchorTitle     string
)

// NewAnchorCmd creates the anchor command group.
func NewAnchorCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "anchor",
		Short: "Manage grounding anchors",
		Long: `Manage grounding anchors: small recurring prompts filed by time of day.

Examples:
  tend anchor list
  tend anchor list --container morning
  tend anchor add "Stretch" --container morning --category time
  tend anchor done 20260828093001_a1b2c3d4
  tend anchor rm 20260828093001_a1b2c3d4`,
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List anchors with today's completion state",
		RunE:  runAnchorList,
	}
	list.Flags().StringVar(&anchorContainer, "container", "", "Filter by container (morning, afternoon, evening, late)")

	add := &cobra.Command{
		Use:   "add [title]",
		Short: "Craft a new anchor",
		Args:  cobra.ExactArgs(1),
		RunE:  runAnchorAdd,
	}
	add.Flags().StringVar(&anchorContainer, "container", "", "Container to file under (defaults to the current one)")
	add.Flags().StringVar(&anchorCategory, "category", string(models.CategoryTime), "Category: time, situational, or uplift")
	add.Flags().StringVar(&anchorCue, "cue", "", "Body cue that signals this anchor")
	add.Flags().StringVar(&anchorMicro, "micro", "", "Smallest possible version of the action")
	add.Flags().StringVar(&anchorDesire, "desire", "", "What this anchor is in service of")

	edit := &cobra.Command{
		Use:   "edit [id]",
		Short: "Edit an anchor, replacing the given fields",
		Args:  cobra.ExactArgs(1),
		RunE:  runAnchorEdit,
	}
	edit.Flags().StringVar(&anchorTitle, "title", "", "New title")
	edit.Flags().StringVar(&anchorContainer, "container", "", "New container")
	edit.Flags().StringVar(&anchorCategory, "category", "", "New category")
	edit.Flags().StringVar(&anchorCue, "cue", "", "New body cue")
	edit.Flags().StringVar(&anchorMicro, "micro", "", "New micro action")
	edit.Flags().StringVar(&anchorDesire, "desire", "", "New desire")

	done := &cobra.Command{
		Use:   "done [id]",
		Short: "Toggle today's completion for an anchor",
		Args:  cobra.ExactArgs(1),
		RunE:  runAnchorDone,
	}

	rm := &cobra.Command{
		Use:   "rm [id]",
		Short: "Remove an anchor and its completion history",
		Args:  cobra.ExactArgs(1),
		RunE:  runAnchorRemove,
	}

	cmd.AddCommand(list, add, edit, done, rm)
	return cmd
}

func parseContainer(raw string) (models.Container, error) {
	c := models.Container(raw)
	if !c.Valid() {
		return "", fmt.Errorf("unknown container %q (expected morning, afternoon, evening, or late)", raw)
	}
	return c, nil
}

func parseCategory(raw string) (models.Category, error) {
	switch c := models.Category(raw); c {
	case models.CategoryTime, models.CategorySituational, models.CategoryUplift:
		return c, nil
	}
	return "", fmt.Errorf("unknown category %q (expected time, situational, or uplift)", raw)
}

func runAnchorList(cmd *cobra.Command, args []string) error {
	st, client, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(st, client)

	var anchors []models.Anchor
	if anchorContainer != "" {
		c, err := parseContainer(anchorContainer)
		if err != nil {
			return err
		}
		anchors = st.AnchorsIn(c)
	} else {
		anchors = st.Anchors()
	}

	if len(anchors) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No anchors yet. Craft one with 'tend anchor add'.")
		return nil
	}

	for _, a := range anchors {
		fmt.Fprintf(cmd.OutOrStdout(), "%s %-10s %-12s %s  (%s)\n",
			checkbox(st.IsCompleted(a.ID)), a.Container, a.Category, truncate(a.Title, 40), a.ID)
	}
	return nil
}

func runAnchorAdd(cmd *cobra.Command, args []string) error {
	title := args[0]
	if title == "" {
		return fmt.Errorf("anchor title must not be empty")
	}

	st, client, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(st, client)

	container := st.ActiveContainer()
	if anchorContainer != "" {
		container, err = parseContainer(anchorContainer)
		if err != nil {
			return err
		}
	}
	category, err := parseCategory(anchorCategory)
	if err != nil {
		return err
	}

	anchor, err := st.AddAnchor(models.Anchor{
		Title:     title,
		Container: container,
		Category:  category,
		BodyCue:   anchorCue,
		Micro:     anchorMicro,
		Desire:    anchorDesire,
	})
	if err != nil {
		return err
	}

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Crafted anchor %s in %s\n", anchor.ID, anchor.Container)
	}
	return nil
}

func runAnchorEdit(cmd *cobra.Command, args []string) error {
	st, client, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(st, client)

	var current models.Anchor
	found := false
	for _, a := range st.Anchors() {
		if a.ID == args[0] {
			current = a
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("anchor not found: %s", args[0])
	}

	if anchorTitle != "" {
		current.Title = anchorTitle
	}
	if anchorContainer != "" {
		if current.Container, err = parseContainer(anchorContainer); err != nil {
			return err
		}
	}
	if anchorCategory != "" {
		if current.Category, err = parseCategory(anchorCategory); err != nil {
			return err
		}
	}
	if anchorCue != "" {
		current.BodyCue = anchorCue
	}
	if anchorMicro != "" {
		current.Micro = anchorMicro
	}
	if anchorDesire != "" {
		current.Desire = anchorDesire
	}

	if err := st.UpdateAnchor(current); err != nil {
		return err
	}
	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Updated anchor %s\n", current.ID)
	}
	return nil
}

func runAnchorDone(cmd *cobra.Command, args []string) error {
	st, client, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(st, client)

	completed, err := st.ToggleCompletion(args[0])
	if err != nil {
		return err
	}
	if !quiet {
		if completed {
			fmt.Fprintln(cmd.OutOrStdout(), "✓ Marked done for today")
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), "○ Unmarked for today")
		}
	}
	return nil
}

func runAnchorRemove(cmd *cobra.Command, args []string) error {
	st, client, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(st, client)

	if err := st.RemoveAnchor(args[0]); err != nil {
		return err
	}
	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Removed anchor %s\n", args[0])
	}
	return nil
}
