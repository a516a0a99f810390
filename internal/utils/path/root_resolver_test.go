package pathutils_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	pathutils "github.com/temirov/termswap/internal/utils/path"
)

const (
	testHomeDirectoryConstant      = "/home/tester"
	testWorkingDirectoryConstant   = "/work"
	testCaseTildeOnlyConstant      = "tilde_only"
	testCaseTildeChildConstant     = "tilde_child"
	testCaseRelativeConstant       = "relative"
	testCaseAbsoluteConstant       = "absolute_cleaned"
	testCaseEmptyConstant          = "empty"
	testCaseHomeLookupFailConstant = "home_lookup_failure"
)

func workingDirectoryAbsolutePath(path string) (string, error) {
	if filepath.IsAbs(path) {
		return path, nil
	}
	return filepath.Join(testWorkingDirectoryConstant, path), nil
}

func TestRootDirectoryResolverResolve(testInstance *testing.T) {
	testCases := []struct {
		name          string
		homeProvider  pathutils.HomeDirectoryProvider
		input         string
		expectedPath  string
		expectedError error
	}{
		{
			name:         testCaseTildeOnlyConstant,
			input:        "~",
			expectedPath: testHomeDirectoryConstant,
		},
		{
			name:         testCaseTildeChildConstant,
			input:        "~/projects/agent",
			expectedPath: filepath.Join(testHomeDirectoryConstant, "projects", "agent"),
		},
		{
			name:         testCaseRelativeConstant,
			input:        " crates/core ",
			expectedPath: filepath.Join(testWorkingDirectoryConstant, "crates", "core"),
		},
		{
			name:         testCaseAbsoluteConstant,
			input:        "/srv/app/../agent/",
			expectedPath: "/srv/agent",
		},
		{
			name:          testCaseEmptyConstant,
			input:         "   ",
			expectedError: pathutils.ErrRootDirectoryRequired,
		},
		{
			name: testCaseHomeLookupFailConstant,
			homeProvider: func() (string, error) {
				return "", errors.New("no home")
			},
			input:        "~/agent",
			expectedPath: filepath.Join(testWorkingDirectoryConstant, "~", "agent"),
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			homeProvider := testCase.homeProvider
			if homeProvider == nil {
				homeProvider = func() (string, error) { return testHomeDirectoryConstant, nil }
			}

			resolver := pathutils.NewRootDirectoryResolverWithDependencies(
				pathutils.NewHomeExpanderWithProvider(homeProvider),
				workingDirectoryAbsolutePath,
			)

			resolvedPath, resolveError := resolver.Resolve(testCase.input)
			if testCase.expectedError != nil {
				require.ErrorIs(testInstance, resolveError, testCase.expectedError)
				return
			}

			require.NoError(testInstance, resolveError)
			require.Equal(testInstance, testCase.expectedPath, resolvedPath)
		})
	}
}
