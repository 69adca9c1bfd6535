package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"

	"baseproject/internal/config"
	"baseproject/internal/formatting"
)

// newGetCmd creates the command that prints a stored value as is.
func newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <section>[.field]",
		Short: "Print the stored value of a section or field",
		Long: `Print a value exactly as stored, without validation or defaults.

Examples:
  baseproject get window_state
  baseproject get window_state.main_panel_layout.horizontal
  baseproject get window_config.title -o console`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter, err := newFormatter(cmd)
			if err != nil {
				return err
			}
			key, path, err := splitFieldPath(args[0])
			if err != nil {
				return err
			}

			a := openApplication(true)
			defer a.Close(cmd.Context())

			if err := a.OpenErr(); err != nil {
				return err
			}
			raw, ok := a.Services().Store.Get(string(key))
			if !ok {
				return &config.SectionMissingError{Key: key}
			}
			if path != "" {
				result := gjson.GetBytes(raw, path)
				if !result.Exists() {
					return fmt.Errorf("field %q not found in %s", path, key)
				}
				raw = json.RawMessage(result.Raw)
			}

			switch formatter.GetOptions().Format {
			case formatting.FormatJSON, formatting.FormatYAML:
				return formatter.FormatData(raw)
			}
			var pretty bytes.Buffer
			if err := json.Indent(&pretty, raw, "", "  "); err != nil {
				return formatter.FormatData(string(raw))
			}
			return formatter.FormatData(pretty.String())
		},
	}
}
