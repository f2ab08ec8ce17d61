package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/grovetools/wordpad/errors"
	"github.com/grovetools/wordpad/tui/components/table"
	"github.com/grovetools/wordpad/tui/keymap"
	"github.com/spf13/cobra"
)

// NewKeysCmd creates the keys command.
func NewKeysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keys",
		Short: "List the editor keybindings, including overrides from tui.keybindings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			sections := keymap.Export(keymap.Load(a.cfg))
			out := cmd.OutOrStdout()

			if a.opts.JSONOutput {
				data, err := json.MarshalIndent(sections, "", "  ")
				if err != nil {
					return errors.Wrap(err, errors.ErrCodeInternal, "failed to encode keybindings")
				}
				fmt.Fprintln(out, string(data))
				return nil
			}

			fmt.Fprintln(out, renderKeysTable(sections))
			return nil
		},
	}
}

func renderKeysTable(sections []keymap.SectionInfo) string {
	b := table.NewBuilder().
		WithHeaders("SECTION", "KEYS", "ACTION", "CONFIG KEY").
		WithAlternateRows(true)
	for _, section := range sections {
		for _, binding := range section.Bindings {
			if !binding.Enabled {
				continue
			}
			b.WithRows([]string{section.Name, strings.Join(binding.Keys, ", "), binding.Description, binding.ConfigKey})
		}
	}
	return b.String()
}
