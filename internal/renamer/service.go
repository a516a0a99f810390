package renamer

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/temirov/termswap/internal/pathmove"
	"github.com/temirov/termswap/internal/substitution"
	pathutils "github.com/temirov/termswap/internal/utils/path"
)

const (
	fileSystemMissingMessageConstant     = "rename service requires a filesystem"
	rootDirectoryMissingMessageConstant  = "directory not found"
	termRequiredMessageConstant          = "old and new terms must not be empty"
	rootDirectoryMissingTemplateConstant = "%w: %s"
	rootNotDirectoryTemplateConstant     = "%w: %s is not a directory"
	traversalInterruptedTemplateConstant = "traversal interrupted: %w"
	runStartedLogMessage                 = "rename run started"
	runFinishedLogMessage                = "rename run finished"
	logFieldRootConstant                 = "root"
	logFieldOldTermConstant              = "old_term"
	logFieldNewTermConstant              = "new_term"
	logFieldDryRunConstant               = "dry_run"
	logFieldGitMoveConstant              = "git_move"
	logFieldContentUpdatesConstant       = "content_updates"
	logFieldRenamesConstant              = "renames"
	logFieldFailuresConstant             = "failures"
	logFieldSkippedDirectoriesConstant   = "skipped_directories"
)

// ErrFileSystemNotConfigured indicates the service was constructed without a filesystem.
var ErrFileSystemNotConfigured = errors.New(fileSystemMissingMessageConstant)

// ErrRootDirectoryMissing indicates the root directory does not exist or is not a directory.
var ErrRootDirectoryMissing = errors.New(rootDirectoryMissingMessageConstant)

// ErrTermRequired indicates an empty old or new term.
var ErrTermRequired = errors.New(termRequiredMessageConstant)

// Options configures one rename run.
type Options struct {
	RootDirectory       string
	OldTerm             string
	NewTerm             string
	Extensions          []string
	ExcludedDirectories []string
	DryRun              bool
	GitMove             bool
	GitFallback         bool
	ShowDiff            bool
}

// Dependencies supplies collaborators for Service. Only FileSystem is required.
type Dependencies struct {
	FileSystem   afero.Fs
	GitExecutor  pathmove.GitExecutor
	RootResolver *pathutils.RootDirectoryResolver
	Output       io.Writer
	Logger       *zap.Logger
}

// Service runs the content rewrite and rename workflow.
type Service struct {
	dependencies Dependencies
}

// NewService validates dependencies and applies defaults for optional collaborators.
func NewService(dependencies Dependencies) (*Service, error) {
	if dependencies.FileSystem == nil {
		return nil, ErrFileSystemNotConfigured
	}
	if dependencies.RootResolver == nil {
		dependencies.RootResolver = pathutils.NewRootDirectoryResolver()
	}
	if dependencies.Output == nil {
		dependencies.Output = io.Discard
	}
	if dependencies.Logger == nil {
		dependencies.Logger = zap.NewNop()
	}
	return &Service{dependencies: dependencies}, nil
}

// Run validates preconditions, walks the tree once and prints a closing summary line.
//
// Precondition failures are returned before anything is touched. Per-item
// failures are reported to the output and counted in the Summary only.
func (service *Service) Run(executionContext context.Context, options Options) (Summary, error) {
	if len(options.OldTerm) == 0 || len(options.NewTerm) == 0 {
		return Summary{}, ErrTermRequired
	}

	rootPath, rootError := service.resolveRoot(options.RootDirectory)
	if rootError != nil {
		return Summary{}, rootError
	}

	if options.GitMove {
		if verificationError := pathmove.VerifyWorkTree(executionContext, service.dependencies.GitExecutor, rootPath); verificationError != nil {
			return Summary{}, verificationError
		}
	}

	mover, moverError := service.buildMover(options)
	if moverError != nil {
		return Summary{}, moverError
	}

	logger := service.dependencies.Logger
	logger.Info(
		runStartedLogMessage,
		zap.String(logFieldRootConstant, rootPath),
		zap.String(logFieldOldTermConstant, options.OldTerm),
		zap.String(logFieldNewTermConstant, options.NewTerm),
		zap.Bool(logFieldDryRunConstant, options.DryRun),
		zap.Bool(logFieldGitMoveConstant, options.GitMove),
	)

	rules := substitution.Build(options.OldTerm, options.NewTerm)
	reporter := newProgressReporter(service.dependencies.Output)
	walk := &treeWalk{
		fileSystem: service.dependencies.FileSystem,
		rootPath:   rootPath,
		rules:      rules,
		excluded:   toSet(options.ExcludedDirectories),
		content: &contentRewriter{
			fileSystem: service.dependencies.FileSystem,
			rules:      rules,
			extensions: toSet(options.Extensions),
			dryRun:     options.DryRun,
			showDiff:   options.ShowDiff,
			reporter:   reporter,
			logger:     logger,
		},
		renames: &renameExecutor{
			fileSystem: service.dependencies.FileSystem,
			mover:      mover,
			dryRun:     options.DryRun,
			reporter:   reporter,
			logger:     logger,
		},
		reporter: reporter,
		logger:   logger,
	}

	traversalError := walk.processDirectory(executionContext, rootPath)
	reporter.finished()

	logger.Info(
		runFinishedLogMessage,
		zap.Int(logFieldContentUpdatesConstant, reporter.summary.ContentUpdates),
		zap.Int(logFieldRenamesConstant, reporter.summary.Renames),
		zap.Int(logFieldFailuresConstant, reporter.summary.Failures),
		zap.Int(logFieldSkippedDirectoriesConstant, reporter.summary.SkippedDirectories),
	)

	if traversalError != nil {
		return reporter.summary, fmt.Errorf(traversalInterruptedTemplateConstant, traversalError)
	}
	return reporter.summary, nil
}

func (service *Service) resolveRoot(rootDirectory string) (string, error) {
	rootPath, resolveError := service.dependencies.RootResolver.Resolve(rootDirectory)
	if resolveError != nil {
		if errors.Is(resolveError, pathutils.ErrRootDirectoryRequired) {
			return "", fmt.Errorf(rootDirectoryMissingTemplateConstant, ErrRootDirectoryMissing, rootDirectory)
		}
		return "", resolveError
	}

	rootInfo, statError := service.dependencies.FileSystem.Stat(rootPath)
	if statError != nil {
		return "", fmt.Errorf(rootDirectoryMissingTemplateConstant, ErrRootDirectoryMissing, rootPath)
	}
	if !rootInfo.IsDir() {
		return "", fmt.Errorf(rootNotDirectoryTemplateConstant, ErrRootDirectoryMissing, rootPath)
	}
	return rootPath, nil
}

func (service *Service) buildMover(options Options) (pathmove.Mover, error) {
	filesystemMover, filesystemError := pathmove.NewFilesystemMover(service.dependencies.FileSystem)
	if filesystemError != nil {
		return nil, filesystemError
	}
	if !options.GitMove {
		return filesystemMover, nil
	}

	repositoryResolver, resolverError := pathmove.NewRepositoryRootResolver(service.dependencies.FileSystem)
	if resolverError != nil {
		return nil, resolverError
	}

	gitDependencies := pathmove.GitMoverDependencies{
		Executor: service.dependencies.GitExecutor,
		Resolver: repositoryResolver,
		Logger:   service.dependencies.Logger,
	}
	if options.GitFallback {
		gitDependencies.Fallback = filesystemMover
	}
	return pathmove.NewGitMover(gitDependencies)
}
