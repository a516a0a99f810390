package renamer

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/termswap/internal/execshell"
	"github.com/temirov/termswap/internal/pathmove"
	"github.com/temirov/termswap/internal/utils/flags"
)

const (
	commandUseConstant                    = "rename <directory> <old-term> <new-term>"
	commandShortDescriptionConstant       = "Replace a term in file contents and rename matching files and directories"
	commandLongDescriptionConstant        = "rename walks the directory bottom-up, rewrites every casing variant of old-term in files with recognized extensions, and renames files and directories whose names contain it."
	commandExecutionErrorTemplateConstant = "rename failed: %w"
	commandArgumentCountConstant          = 3
	flagDryRunNameConstant                = "dry-run"
	flagDryRunDescriptionConstant         = "Report what would change without modifying anything"
	flagGitMoveNameConstant               = "git-move"
	flagGitMoveDescriptionConstant        = "Rename with git mv inside the enclosing repository"
	flagGitFallbackNameConstant           = "git-fallback"
	flagGitFallbackDescriptionConstant    = "Fall back to a filesystem rename when git mv fails"
	flagShowDiffNameConstant              = "diff"
	flagShowDiffDescriptionConstant       = "Print a unified diff for every rewritten file"
)

// LoggerProvider supplies a zap logger instance.
type LoggerProvider func() *zap.Logger

// ConfigurationProvider supplies the rename configuration.
type ConfigurationProvider func() Configuration

// CommandBuilder assembles the rename command.
type CommandBuilder struct {
	LoggerProvider        LoggerProvider
	ConfigurationProvider ConfigurationProvider
	FileSystem            afero.Fs
	GitExecutor           pathmove.GitExecutor

	dryRunFlagValue      bool
	gitMoveFlagValue     bool
	gitFallbackFlagValue bool
	showDiffFlagValue    bool
}

// Build constructs the rename command.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   commandUseConstant,
		Short: commandShortDescriptionConstant,
		Long:  commandLongDescriptionConstant,
		Args:  cobra.ExactArgs(commandArgumentCountConstant),
		RunE:  builder.run,
	}

	defaults := DefaultConfiguration()
	flags.AddToggleFlag(command.Flags(), &builder.dryRunFlagValue, flagDryRunNameConstant, "", defaults.DryRun, flagDryRunDescriptionConstant)
	flags.AddToggleFlag(command.Flags(), &builder.gitMoveFlagValue, flagGitMoveNameConstant, "", defaults.GitMove, flagGitMoveDescriptionConstant)
	flags.AddToggleFlag(command.Flags(), &builder.gitFallbackFlagValue, flagGitFallbackNameConstant, "", defaults.GitFallback, flagGitFallbackDescriptionConstant)
	flags.AddToggleFlag(command.Flags(), &builder.showDiffFlagValue, flagShowDiffNameConstant, "", defaults.ShowDiff, flagShowDiffDescriptionConstant)

	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, arguments []string) error {
	options := builder.parseOptions(command, arguments)

	logger := builder.resolveLogger()
	gitExecutor, executorError := builder.resolveGitExecutor(logger)
	if executorError != nil {
		return executorError
	}

	service, serviceError := NewService(Dependencies{
		FileSystem:  builder.resolveFileSystem(),
		GitExecutor: gitExecutor,
		Output:      command.OutOrStdout(),
		Logger:      logger,
	})
	if serviceError != nil {
		return serviceError
	}

	if _, runError := service.Run(command.Context(), options); runError != nil {
		return fmt.Errorf(commandExecutionErrorTemplateConstant, runError)
	}
	return nil
}

func (builder *CommandBuilder) parseOptions(command *cobra.Command, arguments []string) Options {
	configuration := builder.resolveConfiguration()

	if command.Flags().Changed(flagDryRunNameConstant) {
		configuration.DryRun = builder.dryRunFlagValue
	}
	if command.Flags().Changed(flagGitMoveNameConstant) {
		configuration.GitMove = builder.gitMoveFlagValue
	}
	if command.Flags().Changed(flagGitFallbackNameConstant) {
		configuration.GitFallback = builder.gitFallbackFlagValue
	}
	if command.Flags().Changed(flagShowDiffNameConstant) {
		configuration.ShowDiff = builder.showDiffFlagValue
	}

	return Options{
		RootDirectory:       arguments[0],
		OldTerm:             arguments[1],
		NewTerm:             arguments[2],
		Extensions:          configuration.Extensions,
		ExcludedDirectories: configuration.ExcludedDirectories,
		DryRun:              configuration.DryRun,
		GitMove:             configuration.GitMove,
		GitFallback:         configuration.GitFallback,
		ShowDiff:            configuration.ShowDiff,
	}
}

func (builder *CommandBuilder) resolveConfiguration() Configuration {
	if builder.ConfigurationProvider == nil {
		return DefaultConfiguration().sanitize()
	}
	return builder.ConfigurationProvider().sanitize()
}

func (builder *CommandBuilder) resolveLogger() *zap.Logger {
	if builder.LoggerProvider == nil {
		return zap.NewNop()
	}

	logger := builder.LoggerProvider()
	if logger == nil {
		return zap.NewNop()
	}

	return logger
}

func (builder *CommandBuilder) resolveFileSystem() afero.Fs {
	if builder.FileSystem != nil {
		return builder.FileSystem
	}
	return afero.NewOsFs()
}

func (builder *CommandBuilder) resolveGitExecutor(logger *zap.Logger) (pathmove.GitExecutor, error) {
	if builder.GitExecutor != nil {
		return builder.GitExecutor, nil
	}

	shellExecutor, creationError := execshell.NewShellExecutor(logger, execshell.NewOSCommandRunner())
	if creationError != nil {
		return nil, creationError
	}
	return shellExecutor, nil
}
