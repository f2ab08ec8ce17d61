package cli

import (
	"github.com/grovetools/wordpad/config"
	"github.com/grovetools/wordpad/logging"
	"github.com/grovetools/wordpad/pkg/paths"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// CommandOptions holds the persistent options shared by every command.
type CommandOptions struct {
	ConfigFile  string
	Verbose     bool
	JSONOutput  bool
	MetricsAddr string
}

// NewStandardCommand creates a command with the standard wordpad flags.
func NewStandardCommand(use, short string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	cmd.PersistentFlags().StringP("config", "c", "", "Path to a wordpad.yml or wordpad.toml config file")
	cmd.PersistentFlags().String("metrics-addr", "", "Serve /metrics and /healthz on this address while running")

	SetStyledHelp(cmd)

	return cmd
}

// GetOptions extracts the persistent options from a command.
func GetOptions(cmd *cobra.Command) CommandOptions {
	configFile, _ := cmd.Flags().GetString("config")
	verbose, _ := cmd.Flags().GetBool("verbose")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	metricsAddr, _ := cmd.Flags().GetString("metrics-addr")

	return CommandOptions{
		ConfigFile:  configFile,
		Verbose:     verbose,
		JSONOutput:  jsonOutput,
		MetricsAddr: metricsAddr,
	}
}

// GetLogger returns the CLI logger, switched to debug level by --verbose.
func GetLogger(cmd *cobra.Command) *logrus.Entry {
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		logging.SetLevel(logrus.DebugLevel)
	}
	return logging.NewLogger("wordpad-cli")
}

// LoadConfig loads the file named by --config, or the layered configuration
// found from the working directory. A --metrics-addr flag overrides
// metrics.addr.
func LoadConfig(opts CommandOptions) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if opts.ConfigFile != "" {
		cfg, err = config.Load(paths.Expand(opts.ConfigFile))
	} else {
		cfg, err = config.LoadDefault()
	}
	if err != nil {
		return nil, err
	}

	if opts.MetricsAddr != "" {
		cfg.Metrics.Addr = opts.MetricsAddr
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}
