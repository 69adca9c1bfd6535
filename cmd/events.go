package cmd

import (
	"github.com/spf13/cobra"
)

// newEventsCmd creates the command that reports diagnostics of opening the document.
func newEventsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "events",
		Short: "Show what the application would report when opening the document",
		Long: `Open the configuration document read-only and list the diagnostic events:
corrupt or unreadable documents, and sections that would fall back to
their defaults because they are missing or malformed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter, err := newFormatter(cmd)
			if err != nil {
				return err
			}
			a := openApplication(true)
			defer a.Close(cmd.Context())
			return formatter.FormatEvents(a.Events())
		},
	}
}
