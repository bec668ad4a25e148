// ABOUTME: Root CLI command and global flags for tend
// ABOUTME: Wires subcommands and shared store/logger setup
package commands

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/hollis/tend/internal/config"
	"github.com/hollis/tend/internal/kv"
	"github.com/hollis/tend/internal/storage"
	"github.com/hollis/tend/internal/store"
)

var (
	verbose bool
	quiet   bool
)

// NewRootCmd creates the root command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tend",
		Short: "A quiet companion for grounding, journaling, and habit tending",
		Long: `tend: a quiet companion for grounding, journaling, and habit tending.

Anchors are small recurring prompts filed by time of day. Allies are
substance companions with their own journals. Moments are reflective
check-ins. Everything lives in one local store on this device.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-essential output")

	cmd.AddCommand(NewAnchorCmd())
	cmd.AddCommand(NewAllyCmd())
	cmd.AddCommand(NewMomentCmd())
	cmd.AddCommand(NewPatternCmd())
	cmd.AddCommand(NewFoodCmd())
	cmd.AddCommand(NewNowCmd())
	cmd.AddCommand(NewInsightCmd())
	cmd.AddCommand(NewResetCmd())
	cmd.AddCommand(NewMCPCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}

// newLogger builds the CLI logger honoring the global flags.
func newLogger() zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	if quiet {
		level = zerolog.ErrorLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// openStore opens the KV database and hydrates the state store. The caller
// owns the returned store and must Close it to flush pending writes.
func openStore() (*store.Store, *kv.Client, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	client, err := kv.Open(kv.Config{
		Host:     cfg.CharmHost,
		DBName:   cfg.DBName,
		AutoSync: cfg.AutoSync,
	})
	if err != nil {
		return nil, nil, err
	}

	st := store.New(
		storage.NewAdapter(client),
		store.WithDebounce(cfg.Debounce),
		store.WithLogger(newLogger()),
	)
	if err := st.Load(); err != nil {
		_ = client.Close()
		return nil, nil, err
	}
	return st, client, nil
}

// closeStore flushes and shuts everything down in order.
func closeStore(st *store.Store, client *kv.Client) {
	st.Close()
	_ = client.Close()
}
