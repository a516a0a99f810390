package pathmove

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/temirov/termswap/internal/execshell"
)

const (
	gitExecutorNotConfiguredMessageConstant  = "git mover requires a git executor"
	repositoryResolverMissingMessageConstant = "git mover requires a repository root resolver"
	notGitRepositoryMessageConstant          = "not a git repository"
	notGitRepositoryTemplateConstant         = "%w: %s"
	gitMoveFailedTemplateConstant            = "git mv %s to %s: %w"
	fallbackFailedTemplateConstant           = "git mv %s to %s failed (%v) and fallback failed: %w"
	relativePathTemplateConstant             = "unable to express %s relative to %s: %w"
	gitMoveSubcommandConstant                = "mv"
	gitEndOfOptionsConstant                  = "--"
	gitRevParseSubcommandConstant            = "rev-parse"
	gitWorkTreeFlagConstant                  = "--is-inside-work-tree"
	gitWorkTreeConfirmedOutputConstant       = "true"
	gitTerminalPromptEnvironmentNameConstant = "GIT_TERMINAL_PROMPT"
	gitTerminalPromptDisabledValueConstant   = "0"
	gitFallbackLogMessageConstant            = "git mv failed; falling back"
	logFieldSourceConstant                   = "source"
	logFieldDestinationConstant              = "destination"
	logFieldFallbackMethodConstant           = "fallback_method"
)

// ErrGitExecutorNotConfigured indicates a nil git executor was supplied.
var ErrGitExecutorNotConfigured = errors.New(gitExecutorNotConfiguredMessageConstant)

// ErrRepositoryResolverNotConfigured indicates a nil repository root resolver was supplied.
var ErrRepositoryResolverNotConfigured = errors.New(repositoryResolverMissingMessageConstant)

// ErrNotGitRepository indicates git did not confirm a work tree.
var ErrNotGitRepository = errors.New(notGitRepositoryMessageConstant)

// GitExecutor exposes the git execution used by GitMover.
type GitExecutor interface {
	ExecuteGit(executionContext context.Context, details execshell.CommandDetails) (execshell.ExecutionResult, error)
}

// GitMover moves paths with git mv from the root of the owning repository.
type GitMover struct {
	executor GitExecutor
	resolver *RepositoryRootResolver
	fallback Mover
	logger   *zap.Logger
}

// GitMoverDependencies enumerates collaborators for GitMover. Fallback and Logger are optional.
type GitMoverDependencies struct {
	Executor GitExecutor
	Resolver *RepositoryRootResolver
	Fallback Mover
	Logger   *zap.Logger
}

// NewGitMover validates dependencies and constructs a GitMover.
func NewGitMover(dependencies GitMoverDependencies) (*GitMover, error) {
	if dependencies.Executor == nil {
		return nil, ErrGitExecutorNotConfigured
	}
	if dependencies.Resolver == nil {
		return nil, ErrRepositoryResolverNotConfigured
	}
	logger := dependencies.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GitMover{
		executor: dependencies.Executor,
		resolver: dependencies.Resolver,
		fallback: dependencies.Fallback,
		logger:   logger,
	}, nil
}

// Move runs git mv for the pair; when git fails and a fallback is configured the fallback performs the move.
func (mover *GitMover) Move(executionContext context.Context, sourcePath string, destinationPath string) (Method, error) {
	moveError := mover.gitMove(executionContext, sourcePath, destinationPath)
	if moveError == nil {
		return MethodGit, nil
	}

	if mover.fallback == nil {
		return MethodGit, moveError
	}

	mover.logger.Warn(
		gitFallbackLogMessageConstant,
		zap.String(logFieldSourceConstant, sourcePath),
		zap.String(logFieldDestinationConstant, destinationPath),
		zap.String(logFieldFallbackMethodConstant, string(mover.fallback.Method())),
		zap.Error(moveError),
	)

	fallbackMethod, fallbackError := mover.fallback.Move(executionContext, sourcePath, destinationPath)
	if fallbackError != nil {
		return fallbackMethod, fmt.Errorf(fallbackFailedTemplateConstant, sourcePath, destinationPath, moveError, fallbackError)
	}
	return fallbackMethod, nil
}

// Method reports MethodGit.
func (mover *GitMover) Method() Method {
	return MethodGit
}

func (mover *GitMover) gitMove(executionContext context.Context, sourcePath string, destinationPath string) error {
	repositoryRoot, resolveError := mover.resolver.ResolveEnclosingRoot(sourcePath)
	if resolveError != nil {
		return resolveError
	}

	relativeSource, sourceError := relativeToRoot(repositoryRoot, sourcePath)
	if sourceError != nil {
		return sourceError
	}
	relativeDestination, destinationError := relativeToRoot(repositoryRoot, destinationPath)
	if destinationError != nil {
		return destinationError
	}

	_, executionError := mover.executor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:            []string{gitMoveSubcommandConstant, gitEndOfOptionsConstant, relativeSource, relativeDestination},
		WorkingDirectory:     repositoryRoot,
		EnvironmentVariables: map[string]string{gitTerminalPromptEnvironmentNameConstant: gitTerminalPromptDisabledValueConstant},
	})
	if executionError != nil {
		return fmt.Errorf(gitMoveFailedTemplateConstant, relativeSource, relativeDestination, executionError)
	}
	return nil
}

// VerifyWorkTree confirms git recognizes directoryPath as part of a work tree.
func VerifyWorkTree(executionContext context.Context, executor GitExecutor, directoryPath string) error {
	if executor == nil {
		return ErrGitExecutorNotConfigured
	}

	executionResult, executionError := executor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:        []string{gitRevParseSubcommandConstant, gitWorkTreeFlagConstant},
		WorkingDirectory: directoryPath,
	})
	if executionError != nil {
		return fmt.Errorf(notGitRepositoryTemplateConstant, ErrNotGitRepository, directoryPath)
	}
	if strings.TrimSpace(executionResult.StandardOutput) != gitWorkTreeConfirmedOutputConstant {
		return fmt.Errorf(notGitRepositoryTemplateConstant, ErrNotGitRepository, directoryPath)
	}
	return nil
}

func relativeToRoot(repositoryRoot string, itemPath string) (string, error) {
	relativePath, relativeError := filepath.Rel(repositoryRoot, itemPath)
	if relativeError != nil {
		return "", fmt.Errorf(relativePathTemplateConstant, itemPath, repositoryRoot, relativeError)
	}
	return filepath.ToSlash(relativePath), nil
}
