package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"baseproject/internal/config"
)

// newPathCmd creates the command that prints the document location.
func newPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the location of the configuration document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := config.ResolveDir(configDir)
			if err != nil {
				return err
			}
			path := config.DocumentPath(dir)
			fmt.Fprintln(cmd.OutOrStdout(), path)

			if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
				fmt.Fprintln(cmd.ErrOrStderr(), "(not created yet, run `baseproject init`)")
			}
			return nil
		},
	}
}
