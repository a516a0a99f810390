package tests

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	integrationOldTermConstant         = "foo"
	integrationNewTermConstant         = "bar"
	integrationRenameCommandConstant   = "rename"
	integrationNotRepositoryMessage    = "not a git repository"
	integrationMissingDirectoryMessage = "directory not found"
)

func TestRenameIntegrationRewritesTree(testInstance *testing.T) {
	skipInShortMode(testInstance)

	workspaceDirectory := testInstance.TempDir()
	rootDirectory := filepath.Join(workspaceDirectory, "project")
	writeTreeFile(testInstance, filepath.Join(rootDirectory, "crates", "foo-agentd", "foo-agentd.toml"), "name = \"Foo Agent\"\nbin = \"FOO-AGENTD\"\n")
	writeTreeFile(testInstance, filepath.Join(rootDirectory, "target", "foo.rs"), "foo")

	output, runError := runTermswap(testInstance, workspaceDirectory, integrationRenameCommandConstant, rootDirectory, integrationOldTermConstant, integrationNewTermConstant)
	require.NoError(testInstance, runError, output)

	require.Equal(testInstance, "name = \"Bar\"\nbin = \"BAR-SERVICE\"\n", readTreeFile(testInstance, filepath.Join(rootDirectory, "crates", "bar-service", "bar-service.toml")))
	require.Equal(testInstance, "foo", readTreeFile(testInstance, filepath.Join(rootDirectory, "target", "foo.rs")))
	require.Contains(testInstance, output, "Skipped excluded directory: "+filepath.Join(rootDirectory, "target"))
	require.Contains(testInstance, output, "Finished: 1 content updates, 2 renames, 0 failures")

	secondOutput, secondRunError := runTermswap(testInstance, workspaceDirectory, integrationRenameCommandConstant, rootDirectory, integrationOldTermConstant, integrationNewTermConstant)
	require.NoError(testInstance, secondRunError, secondOutput)
	require.Contains(testInstance, secondOutput, "Finished: 0 content updates, 0 renames, 0 failures")
}

func TestRenameIntegrationDryRunLeavesTreeUntouched(testInstance *testing.T) {
	skipInShortMode(testInstance)

	rootDirectory := testInstance.TempDir()
	filePath := filepath.Join(rootDirectory, "foo.toml")
	writeTreeFile(testInstance, filePath, "foo")

	output, runError := runTermswap(testInstance, rootDirectory, integrationRenameCommandConstant, "--dry-run", rootDirectory, integrationOldTermConstant, integrationNewTermConstant)
	require.NoError(testInstance, runError, output)

	require.Equal(testInstance, "foo", readTreeFile(testInstance, filePath))
	require.Contains(testInstance, output, "[DRY RUN] Would update content in: "+filePath)
	require.Contains(testInstance, output, "[DRY RUN] Would rename: "+filePath+" to "+filepath.Join(rootDirectory, "bar.toml"))
}

func TestRenameIntegrationFailsForMissingDirectory(testInstance *testing.T) {
	skipInShortMode(testInstance)

	workspaceDirectory := testInstance.TempDir()
	output, runError := runTermswap(testInstance, workspaceDirectory, integrationRenameCommandConstant, filepath.Join(workspaceDirectory, "absent"), integrationOldTermConstant, integrationNewTermConstant)
	require.Error(testInstance, runError)
	require.Contains(testInstance, output, integrationMissingDirectoryMessage)
}

func TestRenameIntegrationGitMove(testInstance *testing.T) {
	skipInShortMode(testInstance)
	requireGit(testInstance)

	workspaceDirectory := testInstance.TempDir()
	repositoryDirectory := filepath.Join(workspaceDirectory, "repository")
	writeTreeFile(testInstance, filepath.Join(repositoryDirectory, "src", "foo.rs"), "fn main() {}\n")
	writeTreeFile(testInstance, filepath.Join(repositoryDirectory, "foo-untracked.rs"), "")

	runGit(testInstance, repositoryDirectory, "init", "--quiet")
	runGit(testInstance, repositoryDirectory, "add", filepath.Join("src", "foo.rs"))
	runGit(testInstance, repositoryDirectory, "-c", "user.name=termswap", "-c", "user.email=termswap@example.com", "commit", "--quiet", "-m", "initial")

	output, runError := runTermswap(testInstance, workspaceDirectory, integrationRenameCommandConstant, "--git-move", repositoryDirectory, integrationOldTermConstant, integrationNewTermConstant)
	require.NoError(testInstance, runError, output)

	trackedFiles := strings.Fields(runGit(testInstance, repositoryDirectory, "ls-files"))
	require.Equal(testInstance, []string{"src/bar.rs"}, trackedFiles)
	require.Contains(testInstance, output, "Could not rename "+filepath.Join(repositoryDirectory, "foo-untracked.rs"))
	require.Contains(testInstance, output, "Skipped excluded directory: "+filepath.Join(repositoryDirectory, ".git"))

	fallbackOutput, fallbackError := runTermswap(testInstance, workspaceDirectory, integrationRenameCommandConstant, "--git-move", "--git-fallback", repositoryDirectory, integrationOldTermConstant, integrationNewTermConstant)
	require.NoError(testInstance, fallbackError, fallbackOutput)
	require.Contains(testInstance, fallbackOutput, "Renamed via rename: "+filepath.Join(repositoryDirectory, "foo-untracked.rs"))
}

func TestRenameIntegrationGitMoveRequiresRepository(testInstance *testing.T) {
	skipInShortMode(testInstance)
	requireGit(testInstance)

	rootDirectory := testInstance.TempDir()
	writeTreeFile(testInstance, filepath.Join(rootDirectory, "foo.toml"), "foo")

	output, runError := runTermswap(testInstance, filepath.Dir(rootDirectory), integrationRenameCommandConstant, "--git-move", rootDirectory, integrationOldTermConstant, integrationNewTermConstant)
	require.Error(testInstance, runError)
	require.Contains(testInstance, output, integrationNotRepositoryMessage)
	require.Equal(testInstance, "foo", readTreeFile(testInstance, filepath.Join(rootDirectory, "foo.toml")))
}
