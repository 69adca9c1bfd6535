package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"
)

// newSetCmd creates the command that updates one field.
func newSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <section>[.field] <value>",
		Short: "Set a field or a whole section",
		Long: `Set a field, or replace a whole section, and save the document.

The value is parsed as YAML, so plain scalars, flow sequences and flow
mappings all work. The resulting section must be complete and well-formed;
otherwise nothing is saved.

Examples:
  baseproject set window_state.fullscreen true
  baseproject set window_state.theme dark
  baseproject set window_state.main_panel_layout.vertical "[80, 20]"
  baseproject set project_config "{name: atlas, filepath: /srv/atlas, remarks: ''}"`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, path, err := splitFieldPath(args[0])
			if err != nil {
				return err
			}
			value, err := yaml.YAMLToJSON([]byte(args[1]))
			if err != nil {
				return fmt.Errorf("invalid value %q: %w", args[1], err)
			}

			a := openApplication(false)
			if err := a.SetField(key, path, value); err != nil {
				_ = a.Close(cmd.Context())
				return err
			}
			if err := a.Close(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated %s\n", args[0])
			return nil
		},
	}
}
