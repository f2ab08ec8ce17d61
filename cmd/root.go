package cmd

import (
	"github.com/grovetools/wordpad/cli"
	"github.com/grovetools/wordpad/pkg/profiling"
	"github.com/grovetools/wordpad/version"
	"github.com/spf13/cobra"
)

// NewRootCmd builds the wordpad command tree. Run without a subcommand it
// starts the interactive word counter.
func NewRootCmd() *cobra.Command {
	rootCmd := cli.NewStandardCommand(
		"wordpad [file]",
		"Count words, estimate reading time and transform text",
	)
	rootCmd.Long = `Wordpad is a word counter for the terminal. Type or load text to see its
word count, character count and reading time, and apply text actions:
uppercase, lowercase, clear, remove extra spaces and copy to clipboard.

Examples:
# start the word counter
wordpad
# open a file and follow changes to it
wordpad notes.md --follow
# count words of piped text
cat notes.md | wordpad stats --json
# squeeze whitespace and uppercase
echo "  hello   world " | wordpad transform collapse upper`
	rootCmd.Args = cobra.MaximumNArgs(1)
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true

	var tuiOpts tuiOptions
	rootCmd.Flags().BoolVarP(&tuiOpts.follow, "follow", "f", false, "Reload the text when the file changes")
	rootCmd.Flags().BoolVar(&tuiOpts.noClipboard, "no-clipboard", false, "Accept copies without touching the clipboard")
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runTUI(cmd, args, tuiOpts)
	}

	profiler := profiling.NewCobraProfiler()
	profiler.AddFlags(rootCmd)
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		cli.GetLogger(cmd)
		return profiler.Start()
	}
	rootCmd.PersistentPostRun = func(cmd *cobra.Command, args []string) {
		profiler.Stop(cmd.ErrOrStderr())
	}

	rootCmd.AddCommand(NewStatsCmd())
	rootCmd.AddCommand(NewTransformCmd())
	rootCmd.AddCommand(NewMCPCmd())
	rootCmd.AddCommand(NewConfigCmd())
	rootCmd.AddCommand(NewKeysCmd())
	rootCmd.AddCommand(cli.NewVersionCommand("wordpad"))
	rootCmd.AddCommand(cli.NewDocsCommand())

	cli.SetVersionTemplate(rootCmd, version.GetInfo())
	cli.ApplyStyledHelpRecursive(rootCmd)
	return rootCmd
}

// Execute runs the command tree and returns the process exit code.
func Execute() int {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		cli.NewErrorHandler(cli.GetOptions(rootCmd).Verbose).Handle(err)
		return 1
	}
	return 0
}
