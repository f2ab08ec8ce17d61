package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/grovetools/wordpad/cli"
	"github.com/grovetools/wordpad/config"
	"github.com/grovetools/wordpad/errors"
	"github.com/grovetools/wordpad/logging"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// NewConfigCmd creates the config command and its subcommands.
func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and validate wordpad configuration",
	}
	cmd.AddCommand(newConfigShowCmd())
	cmd.AddCommand(newConfigSchemaCmd())
	cmd.AddCommand(newConfigValidateCmd())
	return cmd
}

func newConfigShowCmd() *cobra.Command {
	var layers bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as YAML",
		Long: `Prints the configuration wordpad runs with. With --layers it shows how
the final configuration is built by merging layers:
1. Global config (~/.config/wordpad/wordpad.yml)
2. Project config (wordpad.yml)
3. Override files (wordpad.override.yml)`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if !layers {
				cfg, err := cli.LoadConfig(cli.GetOptions(cmd))
				if err != nil {
					return err
				}
				return printLayer(out, "", "", cfg)
			}

			cwd, err := os.Getwd()
			if err != nil {
				return errors.Wrap(err, errors.ErrCodeInternal, "failed to get current directory")
			}
			layered, err := config.LoadLayered(cwd)
			if err != nil {
				return err
			}

			if err := printLayer(out, "GLOBAL CONFIG", layered.FilePaths[config.SourceGlobal], layered.Global); err != nil {
				return err
			}
			if err := printLayer(out, "PROJECT CONFIG", layered.FilePaths[config.SourceProject], layered.Project); err != nil {
				return err
			}
			for _, override := range layered.Overrides {
				if err := printLayer(out, "OVERRIDE CONFIG", override.Path, override.Config); err != nil {
					return err
				}
			}
			return printLayer(out, "FINAL MERGED CONFIG", "", layered.Final)
		},
	}

	cmd.Flags().BoolVar(&layers, "layers", false, "Show every configuration layer before the merged result")
	return cmd
}

func printLayer(w io.Writer, title, path string, cfg *config.Config) error {
	if cfg == nil {
		return nil
	}
	if title != "" {
		fmt.Fprintf(w, "--- # %s\n", title)
	}
	if path != "" {
		fmt.Fprintf(w, "# Source: %s\n", path)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeInternal, "failed to encode configuration")
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func newConfigSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON schema of wordpad.yml",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := config.GenerateSchema()
			if err != nil {
				return errors.Wrap(err, errors.ErrCodeInternal, "failed to generate schema")
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
}

func newConfigValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file]",
		Short: "Check a configuration file against the schema and value rules",
		Long: `Validates the given file, or the configuration found from the current
directory when no file is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) > 0 {
				path = args[0]
			} else {
				cwd, err := os.Getwd()
				if err != nil {
					return errors.Wrap(err, errors.ErrCodeInternal, "failed to get current directory")
				}
				if path, err = config.FindConfigFile(cwd); err != nil {
					return err
				}
			}

			cfg, err := config.Load(path)
			if err != nil {
				return err
			}
			console := logging.NewPrettyLogger().WithWriter(cmd.OutOrStdout())
			console.Success(fmt.Sprintf("%s is valid", path))
			console.Field("theme", cfg.TUI.Theme)
			console.Field("mode", cfg.TUI.Mode)
			console.Field("clipboard", cfg.Clipboard.Backend)
			console.Field("words_per_minute", cfg.Stats.WordsPerMinute)
			return nil
		},
	}
}
