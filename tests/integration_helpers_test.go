package tests

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const (
	integrationCommandTimeout        = 2 * time.Minute
	integrationShortModeSkipMessage  = "integration tests build the CLI and are skipped in short mode"
	integrationGitMissingSkipMessage = "git executable not available"
	integrationGoExecutableConstant  = "go"
	integrationGitExecutableConstant = "git"
	integrationGitCeilingEnvironment = "GIT_CEILING_DIRECTORIES="
	integrationGitConfigGlobalEnv    = "GIT_CONFIG_GLOBAL=/dev/null"
)

func skipInShortMode(testInstance *testing.T) {
	testInstance.Helper()
	if testing.Short() {
		testInstance.Skip(integrationShortModeSkipMessage)
	}
}

func repositoryRootDirectory(testInstance *testing.T) string {
	testInstance.Helper()
	currentWorkingDirectory, workingDirectoryError := os.Getwd()
	require.NoError(testInstance, workingDirectoryError)
	return filepath.Dir(currentWorkingDirectory)
}

// runTermswap executes the CLI from source and returns its combined output.
func runTermswap(testInstance *testing.T, ceilingDirectory string, arguments ...string) (string, error) {
	testInstance.Helper()

	executionContext, cancel := context.WithTimeout(context.Background(), integrationCommandTimeout)
	defer cancel()

	command := exec.CommandContext(executionContext, integrationGoExecutableConstant, append([]string{"run", "."}, arguments...)...)
	command.Dir = repositoryRootDirectory(testInstance)
	command.Env = append(os.Environ(), integrationGitCeilingEnvironment+ceilingDirectory, integrationGitConfigGlobalEnv)

	outputBytes, runError := command.CombinedOutput()
	return string(outputBytes), runError
}

func runGit(testInstance *testing.T, workingDirectory string, arguments ...string) string {
	testInstance.Helper()

	command := exec.Command(integrationGitExecutableConstant, arguments...)
	command.Dir = workingDirectory
	command.Env = append(os.Environ(), integrationGitConfigGlobalEnv)

	outputBytes, runError := command.CombinedOutput()
	if runError != nil {
		testInstance.Fatalf("git %v failed: %v\n%s", arguments, runError, string(outputBytes))
	}
	return string(outputBytes)
}

func writeTreeFile(testInstance *testing.T, filePath string, contents string) {
	testInstance.Helper()
	require.NoError(testInstance, os.MkdirAll(filepath.Dir(filePath), 0o755))
	require.NoError(testInstance, os.WriteFile(filePath, []byte(contents), 0o644))
}

func readTreeFile(testInstance *testing.T, filePath string) string {
	testInstance.Helper()
	contents, readError := os.ReadFile(filePath)
	require.NoError(testInstance, readError)
	return string(contents)
}

func requireGit(testInstance *testing.T) {
	testInstance.Helper()
	if _, lookupError := exec.LookPath(integrationGitExecutableConstant); lookupError != nil {
		testInstance.Skip(integrationGitMissingSkipMessage)
	}
}
