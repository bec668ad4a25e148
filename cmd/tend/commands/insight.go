// ABOUTME: Insight command: today's generated observation over recent activity
// ABOUTME: One synthesis per calendar day, cached; soft fallback on API failure
package commands

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/hollis/tend/internal/config"
	"github.com/hollis/tend/internal/insight"
)

var insightHistory bool

// NewInsightCmd creates the insight command.
func NewInsightCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "insight",
		Short: "Show today's observation over your recent activity",
		Long: `Generate (or recall) today's observation: one short reflection over
recent completions and journal moments, produced by a language model.

Generation happens at most once per calendar day; later calls return the
cached text. Requires OPENAI_API_KEY.`,
		RunE: runInsight,
	}
	cmd.Flags().BoolVar(&insightHistory, "history", false, "Show past daily observations")
	return cmd
}

func runInsight(cmd *cobra.Command, args []string) error {
	// Load .env for API keys
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cfg.OpenAIKey == "" {
		return fmt.Errorf("OPENAI_API_KEY not set; insight generation needs an API key")
	}

	st, client, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(st, client)

	llm, err := insight.NewClient(insight.ClientConfig{
		APIKey:     cfg.OpenAIKey,
		BaseURL:    cfg.BaseURL,
		Model:      cfg.Model,
		Timeout:    cfg.Timeout,
		MaxRetries: cfg.MaxRetries,
		RetryDelay: cfg.RetryDelay,
	})
	if err != nil {
		return err
	}

	synth := insight.NewSynthesizer(client, llm, newLogger())

	if insightHistory {
		history := synth.History()
		if len(history) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No observations yet.")
			return nil
		}
		for _, s := range history {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n  %s\n\n", s.Date, s.Text)
		}
		return nil
	}

	today := synth.Today(cmd.Context(), st.Snapshot())
	fmt.Fprintln(cmd.OutOrStdout(), today.Text)
	return nil
}
