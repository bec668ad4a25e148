// ABOUTME: MCP command: serve the store over the Model Context Protocol
// ABOUTME: Exposes anchors, journals, and insight as tools on stdio
package commands

import (
	"fmt"

	"github.com/joho/godotenv"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	"github.com/hollis/tend/internal/config"
	"github.com/hollis/tend/internal/insight"
	"github.com/hollis/tend/internal/mcp"
)

// NewMCPCmd creates the mcp command.
func NewMCPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Run as an MCP server on stdio",
		Long: `Run tend as a Model Context Protocol server over stdio.

Exposes anchors, journals, food and pattern logging, and the daily
insight as MCP tools for use from compatible clients.

The daily_insight tool needs OPENAI_API_KEY; without it the other tools
still work.`,
		RunE: runMCP,
	}
}

func runMCP(cmd *cobra.Command, args []string) error {
	// Load .env for API keys
	_ = godotenv.Load()

	log := newLogger()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	st, client, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(st, client)

	var synth *insight.Synthesizer
	if cfg.OpenAIKey != "" {
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
		synth = insight.NewSynthesizer(client, llm, log)
	} else {
		log.Warn().Msg("OPENAI_API_KEY not set; daily_insight tool disabled")
	}

	server := mcpserver.NewMCPServer("tend", versionInfo.Version)
	mcp.RegisterTools(server, st, synth)

	log.Info().Str("version", versionInfo.Version).Msg("starting MCP server on stdio")
	if err := mcpserver.ServeStdio(server); err != nil {
		return fmt.Errorf("MCP server error: %w", err)
	}
	return nil
}
