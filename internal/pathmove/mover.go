package pathmove

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/afero"
)

const (
	fileSystemNotConfiguredMessageConstant = "path mover requires a filesystem"
	filesystemRenameFailedTemplateConstant = "rename %s to %s: %w"
)

// ErrFileSystemNotConfigured indicates a nil afero.Fs was supplied.
var ErrFileSystemNotConfigured = errors.New(fileSystemNotConfiguredMessageConstant)

// Method names the strategy that performed a move.
type Method string

// Supported move methods.
const (
	MethodFilesystem Method = "rename"
	MethodGit        Method = "git mv"
)

// Mover relocates a path and reports which method performed the move.
type Mover interface {
	Move(executionContext context.Context, sourcePath string, destinationPath string) (Method, error)
	Method() Method
}

// FilesystemMover renames paths directly on an afero.Fs.
type FilesystemMover struct {
	fileSystem afero.Fs
}

// NewFilesystemMover constructs a FilesystemMover.
func NewFilesystemMover(fileSystem afero.Fs) (*FilesystemMover, error) {
	if fileSystem == nil {
		return nil, ErrFileSystemNotConfigured
	}
	return &FilesystemMover{fileSystem: fileSystem}, nil
}

// Move renames sourcePath to destinationPath.
func (mover *FilesystemMover) Move(executionContext context.Context, sourcePath string, destinationPath string) (Method, error) {
	if renameError := mover.fileSystem.Rename(sourcePath, destinationPath); renameError != nil {
		return MethodFilesystem, fmt.Errorf(filesystemRenameFailedTemplateConstant, sourcePath, destinationPath, renameError)
	}
	return MethodFilesystem, nil
}

// Method reports MethodFilesystem.
func (mover *FilesystemMover) Method() Method {
	return MethodFilesystem
}
