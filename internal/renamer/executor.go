package renamer

import (
	"context"
	"os"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/temirov/termswap/internal/pathmove"
)

const (
	renameCompletedLogMessage   = "item renamed"
	logFieldDestinationConstant = "destination"
	logFieldMethodConstant      = "method"
)

// renameExecutor performs one rename, guarding against overwriting an existing target.
type renameExecutor struct {
	fileSystem afero.Fs
	mover      pathmove.Mover
	dryRun     bool
	reporter   *progressReporter
	logger     *zap.Logger
}

// Rename moves oldPath to newPath and returns the path the item ends up at.
func (executor *renameExecutor) Rename(executionContext context.Context, oldPath string, newPath string) string {
	if executor.targetOccupied(oldPath, newPath) {
		executor.reporter.targetExists(oldPath, newPath)
		return oldPath
	}

	if executor.dryRun {
		executor.reporter.wouldRename(executor.mover.Method(), oldPath, newPath)
		return oldPath
	}

	usedMethod, moveError := executor.mover.Move(executionContext, oldPath, newPath)
	if moveError != nil {
		executor.reporter.renameFailed(oldPath, moveError)
		return oldPath
	}

	executor.logger.Debug(
		renameCompletedLogMessage,
		zap.String(logFieldPathConstant, oldPath),
		zap.String(logFieldDestinationConstant, newPath),
		zap.String(logFieldMethodConstant, string(usedMethod)),
	)
	executor.reporter.renamed(executor.mover.Method(), usedMethod, oldPath, newPath)
	return newPath
}

// targetOccupied reports whether newPath exists as an item other than oldPath itself.
// Case-only renames on case-insensitive filesystems resolve newPath to the source.
func (executor *renameExecutor) targetOccupied(oldPath string, newPath string) bool {
	targetInfo, targetError := lstat(executor.fileSystem, newPath)
	if targetError != nil {
		return false
	}
	sourceInfo, sourceError := lstat(executor.fileSystem, oldPath)
	if sourceError != nil {
		return true
	}
	return !os.SameFile(sourceInfo, targetInfo)
}

func lstat(fileSystem afero.Fs, itemPath string) (os.FileInfo, error) {
	if lstater, supportsLstat := fileSystem.(afero.Lstater); supportsLstat {
		fileInfo, _, lstatError := lstater.LstatIfPossible(itemPath)
		return fileInfo, lstatError
	}
	return fileSystem.Stat(itemPath)
}
