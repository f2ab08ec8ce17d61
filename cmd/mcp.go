package cmd

import (
	"os"

	"github.com/grovetools/wordpad/internal/mcp"
	"github.com/grovetools/wordpad/pkg/clipboard"
	"github.com/grovetools/wordpad/version"
	"github.com/spf13/cobra"
)

// NewMCPCmd creates the mcp command.
func NewMCPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve the text tools over the Model Context Protocol on stdio",
		Long: `Starts an MCP server on stdin and stdout with two tools:
transform_text applies text actions and returns the result with its
statistics, text_stats counts words and characters and estimates reading time.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			a.serveMetrics(cmd.Context(), nil)

			clip := clipboard.FromConfig(a.cfg.Clipboard.Backend, os.Stderr)
			a.logger.Debug("Serving MCP tools on stdio")
			return mcp.Run(mcp.NewHandlers(clip, a.cfg.Stats.WordsPerMinute), version.Version)
		},
	}
}
