package cmd

import (
	"github.com/spf13/cobra"

	"baseproject/internal/config"
)

var showStrict bool

// newShowCmd creates the command that prints typed sections.
func newShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [section]",
		Short: "Show the configuration document or one section",
		Long: `Show the configuration document or one of its sections:
project_config, window_config, window_state.

By default missing or malformed sections are shown with their defaults, the
way the application would use them. With --strict they are reported as
errors instead, as is a document that cannot be read or parsed.`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: sectionNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter, err := newFormatter(cmd)
			if err != nil {
				return err
			}

			a := openApplication(true)
			defer a.Close(cmd.Context())

			policy := config.Lenient
			if showStrict {
				if err := a.OpenErr(); err != nil {
					return err
				}
				policy = config.Strict
			}
			// Reading the store again keeps fallback events of this call out of
			// the startup diagnostics.
			src := a.Services().Store
			reporter := config.NewRecorder()

			if len(args) == 0 {
				doc, err := config.LoadDocument(src, policy, reporter)
				if err != nil {
					return err
				}
				return formatter.FormatDocument(doc)
			}

			key, err := parseSection(args[0])
			if err != nil {
				return err
			}
			var section any
			switch key {
			case config.KeyProjectConfig:
				section, err = config.LoadProject(src, policy, reporter)
			case config.KeyWindowConfig:
				section, err = config.LoadWindowConfig(src, policy, reporter)
			case config.KeyWindowState:
				section, err = config.LoadWindowState(src, policy, reporter)
			}
			if err != nil {
				return err
			}
			return formatter.FormatSection(key, section)
		},
	}

	cmd.Flags().BoolVar(&showStrict, "strict", false, "Fail on missing or malformed sections instead of showing defaults")
	return cmd
}
