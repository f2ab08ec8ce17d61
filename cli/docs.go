package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// CommandDoc is the structured documentation of one command.
type CommandDoc struct {
	Name        string       `json:"name"`
	Usage       string       `json:"usage"`
	Short       string       `json:"short"`
	Long        string       `json:"long,omitempty"`
	Flags       []FlagDoc    `json:"flags,omitempty"`
	Subcommands []CommandDoc `json:"subcommands,omitempty"`
}

// FlagDoc documents a single flag.
type FlagDoc struct {
	Name      string `json:"name"`
	Shorthand string `json:"shorthand,omitempty"`
	Usage     string `json:"usage"`
	Default   string `json:"default,omitempty"`
}

// NewDocsCommand creates a 'docs' command that prints the structured JSON
// documentation of the command tree it is attached to.
func NewDocsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "docs",
		Short: "Print the structured JSON documentation for this tool",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := json.MarshalIndent(Document(cmd.Root()), "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
}

// Document describes cmd and its available subcommands.
func Document(cmd *cobra.Command) CommandDoc {
	doc := CommandDoc{
		Name:  cmd.Name(),
		Usage: cmd.UseLine(),
		Short: cmd.Short,
		Long:  cmd.Long,
	}
	cmd.NonInheritedFlags().VisitAll(func(f *pflag.Flag) {
		if f.Hidden {
			return
		}
		doc.Flags = append(doc.Flags, FlagDoc{
			Name:      f.Name,
			Shorthand: f.Shorthand,
			Usage:     f.Usage,
			Default:   f.DefValue,
		})
	})
	for _, sub := range cmd.Commands() {
		if sub.IsAvailableCommand() {
			doc.Subcommands = append(doc.Subcommands, Document(sub))
		}
	}
	return doc
}
