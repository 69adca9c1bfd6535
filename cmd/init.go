package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// newInitCmd creates the command that seeds missing sections.
func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the configuration document or fill in missing sections",
		Long: `Create the configuration document with defaults, or add the defaults of
sections that are missing from an existing document. Existing sections are
never changed. A corrupt document is kept next to the new one with a
.corrupt suffix.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := openApplication(false)
			path := a.Services().Store.Path()
			seeded := a.Seeded()
			if err := a.Close(cmd.Context()); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(seeded) == 0 {
				fmt.Fprintf(out, "Configuration at %s is complete\n", path)
				return nil
			}
			names := make([]string, len(seeded))
			for i, k := range seeded {
				names[i] = string(k)
			}
			fmt.Fprintf(out, "Seeded %s in %s\n", strings.Join(names, ", "), path)
			return nil
		},
	}
}
