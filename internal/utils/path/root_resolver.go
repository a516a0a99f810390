package pathutils

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

const (
	rootDirectoryRequiredMessageConstant  = "root directory must be provided"
	rootDirectoryAbsoluteTemplateConstant = "unable to resolve absolute path for %s: %w"
)

// ErrRootDirectoryRequired indicates an empty root directory argument.
var ErrRootDirectoryRequired = errors.New(rootDirectoryRequiredMessageConstant)

// AbsolutePathFunc resolves a path against the working directory.
type AbsolutePathFunc func(path string) (string, error)

// RootDirectoryResolver turns a root directory argument into a clean absolute path.
type RootDirectoryResolver struct {
	homeExpander *HomeExpander
	absolutePath AbsolutePathFunc
}

// NewRootDirectoryResolver constructs a resolver backed by the operating system.
func NewRootDirectoryResolver() *RootDirectoryResolver {
	return NewRootDirectoryResolverWithDependencies(nil, nil)
}

// NewRootDirectoryResolverWithDependencies constructs a resolver with custom collaborators; nil values use defaults.
func NewRootDirectoryResolverWithDependencies(homeExpander *HomeExpander, absolutePath AbsolutePathFunc) *RootDirectoryResolver {
	if homeExpander == nil {
		homeExpander = NewHomeExpander()
	}
	if absolutePath == nil {
		absolutePath = filepath.Abs
	}
	return &RootDirectoryResolver{homeExpander: homeExpander, absolutePath: absolutePath}
}

// Resolve expands a leading tilde and returns the cleaned absolute path.
func (resolver *RootDirectoryResolver) Resolve(rootDirectory string) (string, error) {
	trimmedRootDirectory := strings.TrimSpace(rootDirectory)
	if len(trimmedRootDirectory) == 0 {
		return "", ErrRootDirectoryRequired
	}

	expandedRootDirectory := resolver.homeExpander.Expand(trimmedRootDirectory)
	absoluteRootDirectory, absoluteError := resolver.absolutePath(expandedRootDirectory)
	if absoluteError != nil {
		return "", fmt.Errorf(rootDirectoryAbsoluteTemplateConstant, expandedRootDirectory, absoluteError)
	}

	return filepath.Clean(absoluteRootDirectory), nil
}
