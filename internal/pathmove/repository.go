package pathmove

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
)

const (
	gitMetadataEntryNameConstant           = ".git"
	repositoryRootNotFoundMessageConstant  = "no enclosing git repository"
	repositoryRootNotFoundTemplateConstant = "%w for %s"
)

// ErrRepositoryRootNotFound indicates no ancestor holds a .git entry.
var ErrRepositoryRootNotFound = errors.New(repositoryRootNotFoundMessageConstant)

// RepositoryRootResolver finds the repository that owns a path by walking toward the filesystem root.
type RepositoryRootResolver struct {
	fileSystem afero.Fs
}

// NewRepositoryRootResolver constructs a resolver reading the provided filesystem.
func NewRepositoryRootResolver(fileSystem afero.Fs) (*RepositoryRootResolver, error) {
	if fileSystem == nil {
		return nil, ErrFileSystemNotConfigured
	}
	return &RepositoryRootResolver{fileSystem: fileSystem}, nil
}

// ResolveEnclosingRoot returns the nearest directory holding a .git entry that owns itemPath.
//
// A directory that is itself a repository boundary (a nested repository or
// submodule) is owned by the repository above it, so the search starts at its parent.
func (resolver *RepositoryRootResolver) ResolveEnclosingRoot(itemPath string) (string, error) {
	currentPath := filepath.Clean(itemPath)
	if resolver.IsRepositoryBoundary(currentPath) {
		currentPath = filepath.Dir(currentPath)
	}

	for {
		if resolver.IsRepositoryBoundary(currentPath) {
			return currentPath, nil
		}
		parentPath := filepath.Dir(currentPath)
		if parentPath == currentPath {
			return "", fmt.Errorf(repositoryRootNotFoundTemplateConstant, ErrRepositoryRootNotFound, itemPath)
		}
		currentPath = parentPath
	}
}

// IsRepositoryBoundary reports whether directoryPath contains a .git directory or gitdir file.
func (resolver *RepositoryRootResolver) IsRepositoryBoundary(directoryPath string) bool {
	_, statError := resolver.fileSystem.Stat(filepath.Join(directoryPath, gitMetadataEntryNameConstant))
	return statError == nil
}
