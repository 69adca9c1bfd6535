package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"baseproject/internal/config"
	"baseproject/internal/theme"
)

// newThemeCmd creates the command that shows the theme the application would apply.
func newThemeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "theme",
		Short: "Show the stored theme and the theme it resolves to",
		Long: `Show the stored theme preference, the operating system preference, and
the theme the application applies. "auto" follows the operating system and
falls back to dark when the system gives no answer.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter, err := newFormatter(cmd)
			if err != nil {
				return err
			}

			a := openApplication(true)
			defer a.Close(cmd.Context())

			return formatter.FormatData(themeReport(cmd.Context(), a.WindowState().Theme, a.Services().Theme))
		},
	}
}

// themeReport queries p once and resolves setting against that answer.
func themeReport(ctx context.Context, setting config.Theme, p theme.HintProvider) map[string]interface{} {
	hint, hintErr := p.Detect(ctx)
	if hintErr != nil {
		hint = theme.HintUnknown
	}
	detected := theme.ProviderFunc(func(context.Context) (theme.Hint, error) {
		return hint, hintErr
	})
	return map[string]interface{}{
		"setting":  string(setting),
		"os_hint":  hint.String(),
		"resolved": string(theme.Resolve(ctx, setting, detected)),
	}
}
