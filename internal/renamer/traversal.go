package renamer

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/temirov/termswap/internal/substitution"
)

const directoryVisitLogMessage = "processing directory"

// treeWalk drives the bottom-up traversal of one root directory.
type treeWalk struct {
	fileSystem afero.Fs
	rootPath   string
	rules      substitution.Set
	excluded   map[string]struct{}
	content    *contentRewriter
	renames    *renameExecutor
	reporter   *progressReporter
	logger     *zap.Logger
}

// processDirectory handles every descendant of directoryPath before returning.
// Subdirectories are processed first, then files, then subdirectories are renamed.
func (walk *treeWalk) processDirectory(executionContext context.Context, directoryPath string) error {
	if contextError := executionContext.Err(); contextError != nil {
		return contextError
	}

	walk.logger.Debug(directoryVisitLogMessage, zap.String(logFieldPathConstant, directoryPath))

	entries, listingError := afero.ReadDir(walk.fileSystem, directoryPath)
	if listingError != nil {
		walk.reporter.listingFailed(directoryPath, listingError)
		return nil
	}

	subdirectoryPaths := make([]string, 0, len(entries))
	fileEntries := make([]os.FileInfo, 0, len(entries))
	for _, entry := range entries {
		entryPath := filepath.Join(directoryPath, entry.Name())
		if !entry.IsDir() {
			fileEntries = append(fileEntries, entry)
			continue
		}
		if walk.isExcluded(entryPath) {
			walk.reporter.skippedDirectory(entryPath)
			continue
		}
		subdirectoryPaths = append(subdirectoryPaths, entryPath)
	}

	for _, subdirectoryPath := range subdirectoryPaths {
		if traversalError := walk.processDirectory(executionContext, subdirectoryPath); traversalError != nil {
			return traversalError
		}
	}

	for _, fileEntry := range fileEntries {
		if contextError := executionContext.Err(); contextError != nil {
			return contextError
		}
		filePath := filepath.Join(directoryPath, fileEntry.Name())
		walk.content.Rewrite(filePath, fileEntry)
		walk.renameItem(executionContext, filePath)
	}

	for _, subdirectoryPath := range subdirectoryPaths {
		if contextError := executionContext.Err(); contextError != nil {
			return contextError
		}
		walk.renameItem(executionContext, subdirectoryPath)
	}

	return nil
}

func (walk *treeWalk) renameItem(executionContext context.Context, itemPath string) {
	newPath, changed := candidatePath(itemPath, walk.rules)
	if !changed {
		return
	}
	walk.renames.Rename(executionContext, itemPath, newPath)
}

// isExcluded reports whether any segment of directoryPath below the root is an excluded name.
func (walk *treeWalk) isExcluded(directoryPath string) bool {
	relativePath, relativeError := filepath.Rel(walk.rootPath, directoryPath)
	if relativeError != nil {
		relativePath = directoryPath
	}
	for _, segment := range strings.Split(filepath.ToSlash(relativePath), "/") {
		if _, excluded := walk.excluded[segment]; excluded {
			return true
		}
	}
	return false
}
