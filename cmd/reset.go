package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"baseproject/internal/config"
)

// newResetCmd creates the command that restores defaults.
func newResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "reset [section...]",
		Short:     "Restore sections to their defaults",
		Long:      `Restore the given sections, or all sections, to their defaults and save the document.`,
		ValidArgs: sectionNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			keys := make([]config.Key, 0, len(args))
			for _, arg := range args {
				key, err := parseSection(arg)
				if err != nil {
					return err
				}
				keys = append(keys, key)
			}
			if len(keys) == 0 {
				keys = config.Keys()
			}

			a := openApplication(false)
			if err := a.Reset(keys...); err != nil {
				_ = a.Close(cmd.Context())
				return err
			}
			if err := a.Close(cmd.Context()); err != nil {
				return err
			}

			names := make([]string, len(keys))
			for i, k := range keys {
				names[i] = string(k)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Reset %s\n", strings.Join(names, ", "))
			return nil
		},
	}
}
