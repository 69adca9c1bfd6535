package cmd

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"baseproject/internal/app"
	"baseproject/internal/config"
	"baseproject/internal/formatting"
)

// Exit codes for CLI commands.
const (
	// ExitCodeSuccess indicates successful execution.
	ExitCodeSuccess = 0
	// ExitCodeError indicates a general error (command failed, invalid arguments).
	ExitCodeError = 1
	// ExitCodeSectionMissing indicates a section is absent under --strict.
	ExitCodeSectionMissing = 2
	// ExitCodeInvalidSection indicates a stored or supplied section is malformed.
	ExitCodeInvalidSection = 3
	// ExitCodeDocumentError indicates the document could not be read, parsed or written.
	ExitCodeDocumentError = 4
)

var (
	configDir    string
	debug        bool
	outputFormat string
)

// rootCmd represents the base command for the baseproject application.
// It is the entry point when the application is called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "baseproject",
	Short: "Inspect and edit the baseproject configuration document",
	Long: `baseproject manages the per-user configuration document of the desktop
application: project metadata, the window template and the last window state.

The document lives in the per-user configuration directory unless
--config-dir or $BASEPROJECT_CONFIG_DIR point elsewhere.`,
	// SilenceUsage prevents Cobra from printing the usage message on errors that are handled by the application.
	SilenceUsage: true,
}

// SetVersion sets the version for the root command.
// This function is typically called from the main package to inject the application version at build time.
func SetVersion(v string) {
	rootCmd.Version = v
}

// GetVersion returns the current version of the application.
func GetVersion() string {
	return rootCmd.Version
}

// Execute is the main entry point for the CLI application.
// This function is called by main.main().
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "baseproject version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(getExitCode(err))
	}
}

// getExitCode determines the appropriate exit code based on the error type.
// This provides semantic exit codes for scripting and automation.
func getExitCode(err error) int {
	var missing *config.SectionMissingError
	if errors.As(err, &missing) {
		return ExitCodeSectionMissing
	}

	var invalid *config.DeserializationError
	if errors.As(err, &invalid) {
		return ExitCodeInvalidSection
	}

	var (
		ioErr    *config.IOError
		parseErr *config.ParseError
		writeErr *config.WriteError
	)
	if errors.As(err, &ioErr) || errors.As(err, &parseErr) || errors.As(err, &writeErr) {
		return ExitCodeDocumentError
	}

	// Default to general error
	return ExitCodeError
}

// openApplication bootstraps the configuration for one command.
func openApplication(readOnly bool) *app.Application {
	cfg := app.NewConfig(debug, false, configDir)
	cfg.ReadOnly = readOnly
	return app.NewApplication(cfg)
}

// newFormatter creates the formatter selected with --output, writing to the
// command's output stream.
func newFormatter(cmd *cobra.Command) (formatting.Formatter, error) {
	format, ok := formatting.ParseFormat(outputFormat)
	if !ok {
		return nil, errors.New("invalid --output: must be one of console, json, yaml, table")
	}
	return formatting.NewFactory().CreateFormatter(formatting.Options{
		Format: format,
		Out:    cmd.OutOrStdout(),
	}), nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "Configuration directory (default: $BASEPROJECT_CONFIG_DIR or the per-user config dir)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", string(formatting.FormatTable), "Output format (console, json, yaml, table)")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newShowCmd())
	rootCmd.AddCommand(newGetCmd())
	rootCmd.AddCommand(newSetCmd())
	rootCmd.AddCommand(newResetCmd())
	rootCmd.AddCommand(newThemeCmd())
	rootCmd.AddCommand(newPathCmd())
	rootCmd.AddCommand(newEventsCmd())
}
