// Package cli provides the command line interface.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/temirov/modparser/internal/config"
	"github.com/temirov/modparser/internal/modules"
	"github.com/temirov/modparser/internal/utils"
)

const (
	configFlagName       = "config"
	verboseFlagName      = "verbose"
	versionFlagName      = "version"
	versionTemplate      = "modparser version: %s\n"
	greetingMessage      = "Hello"
	rootUse              = "modparser [riotbase]"
	rootShortDescription = "walk the module directories of a RIOT base tree"
	rootLongDescription  = `modparser loads config.yml from the working directory, prints it, and walks the
board, core, cpu, drivers, pkg and sys directories under the RIOT base directory.
The base directory defaults to ../.. and may also be set with MODPARSER_RIOTBASE.`
	rootUsageExample = `  # Walk the tree two levels up using ./config.yml
  modparser

  # Walk an explicit checkout with debug output
  modparser --verbose ~/src/RIOT`

	configFlagDescription  = "configuration document path, relative to the working directory"
	verboseFlagDescription = "log walk results at debug level"
	versionFlagDescription = "display application version"

	bindFlagErrorFormat         = "bind --%s flag: %w"
	programDirectoryErrorFormat = "resolve program directory: %w"
	walkErrorFormat             = "walk module directories under %s: %w"
)

// scanRunner performs one invocation with resolved settings.
type scanRunner func(ctx context.Context, output io.Writer, settings config.Settings) error

// Execute runs the modparser application, logging through logger.
// The --verbose flag lowers logLevel to debug before the walk starts.
func Execute(logger *zap.Logger, logLevel zap.AtomicLevel) error {
	rootCommand, creationError := createRootCommand(newApplicationRunner(logger, logLevel))
	if creationError != nil {
		return creationError
	}
	return rootCommand.Execute()
}

// createRootCommand builds the root Cobra command.
func createRootCommand(runner scanRunner) (*cobra.Command, error) {
	var showVersion bool
	settingsReader := config.NewSettingsReader()

	rootCommand := &cobra.Command{
		Use:           rootUse,
		Short:         rootShortDescription,
		Long:          rootLongDescription,
		Example:       rootUsageExample,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(command *cobra.Command, arguments []string) error {
			if showVersion {
				_, writeError := fmt.Fprintf(command.OutOrStdout(), versionTemplate, utils.GetApplicationVersion())
				return writeError
			}
			if len(arguments) == 1 {
				settingsReader.Set(config.BaseDirectoryKey, arguments[0])
			}
			return runner(command.Context(), command.OutOrStdout(), config.ResolveSettings(settingsReader))
		},
	}

	flags := rootCommand.Flags()
	flags.String(configFlagName, utils.ConfigFileName, configFlagDescription)
	flags.Bool(verboseFlagName, false, verboseFlagDescription)
	flags.BoolVar(&showVersion, versionFlagName, false, versionFlagDescription)

	if bindError := settingsReader.BindPFlag(config.ConfigPathKey, flags.Lookup(configFlagName)); bindError != nil {
		return nil, fmt.Errorf(bindFlagErrorFormat, configFlagName, bindError)
	}
	if bindError := settingsReader.BindPFlag(config.VerboseKey, flags.Lookup(verboseFlagName)); bindError != nil {
		return nil, fmt.Errorf(bindFlagErrorFormat, verboseFlagName, bindError)
	}
	return rootCommand, nil
}

// newApplicationRunner returns the runner used by Execute.
func newApplicationRunner(logger *zap.Logger, logLevel zap.AtomicLevel) scanRunner {
	return func(ctx context.Context, output io.Writer, settings config.Settings) error {
		if settings.Verbose {
			logLevel.SetLevel(zapcore.DebugLevel)
		}
		return runModuleScan(ctx, output, settings, logger)
	}
}

// runModuleScan prints the diagnostics, loads the configuration document and walks the module directories.
// The configuration document is loaded before any directory is visited.
func runModuleScan(ctx context.Context, output io.Writer, settings config.Settings, logger *zap.Logger) error {
	fmt.Fprintln(output, greetingMessage)

	programDirectory, directoryError := utils.ProgramDirectory()
	if directoryError != nil {
		return fmt.Errorf(programDirectoryErrorFormat, directoryError)
	}
	fmt.Fprintln(output, programDirectory)

	document, loadError := config.LoadDocument(config.LoadOptions{FilePath: settings.ConfigPath})
	if loadError != nil {
		return loadError
	}
	fmt.Fprintln(output, document)

	summary, walkError := modules.Walk(ctx, settings.BaseDirectory, logger)
	if walkError != nil {
		return fmt.Errorf(walkErrorFormat, settings.BaseDirectory, walkError)
	}
	for _, target := range summary.Targets {
		logger.Debug("module directory walked",
			zap.String("name", target.Name),
			zap.String("root", target.Root),
			zap.Bool("present", target.Present),
			zap.Int("directories", target.Directories),
			zap.Int("files", target.Files),
			zap.Int("skipped", target.Skipped),
		)
	}
	return nil
}
