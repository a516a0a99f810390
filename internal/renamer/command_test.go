package renamer_test

import (
	"bytes"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/temirov/termswap/internal/pathmove"
	"github.com/temirov/termswap/internal/renamer"
)

const (
	testConfigurationDryRunCaseConstant = "configuration_dry_run"
	testFlagOverridesDryRunCaseConstant = "flag_disables_configured_dry_run"
	testFlagEnablesDryRunCaseConstant   = "bare_flag_enables_dry_run"
	testDefaultExecutionCaseConstant    = "default_execution"
)

func buildTestCommand(testInstance *testing.T, fileSystem afero.Fs, configuration renamer.Configuration, gitExecutor pathmove.GitExecutor, outputBuffer *bytes.Buffer, arguments []string) error {
	testInstance.Helper()
	builder := renamer.CommandBuilder{
		ConfigurationProvider: func() renamer.Configuration {
			return configuration
		},
		FileSystem:  fileSystem,
		GitExecutor: gitExecutor,
	}
	command, buildError := builder.Build()
	require.NoError(testInstance, buildError)

	command.SetOut(outputBuffer)
	command.SetErr(&bytes.Buffer{})
	command.SetArgs(arguments)
	return command.Execute()
}

func TestRenameCommandHonorsDryRunSources(testInstance *testing.T) {
	dryRunConfiguration := renamer.DefaultConfiguration()
	dryRunConfiguration.DryRun = true

	testCases := []struct {
		name           string
		configuration  renamer.Configuration
		arguments      []string
		expectModified bool
	}{
		{
			name:           testDefaultExecutionCaseConstant,
			configuration:  renamer.DefaultConfiguration(),
			arguments:      []string{testRootDirectoryConstant, testOldTermConstant, testNewTermConstant},
			expectModified: true,
		},
		{
			name:          testConfigurationDryRunCaseConstant,
			configuration: dryRunConfiguration,
			arguments:     []string{testRootDirectoryConstant, testOldTermConstant, testNewTermConstant},
		},
		{
			name:           testFlagOverridesDryRunCaseConstant,
			configuration:  dryRunConfiguration,
			arguments:      []string{"--dry-run=no", testRootDirectoryConstant, testOldTermConstant, testNewTermConstant},
			expectModified: true,
		},
		{
			name:          testFlagEnablesDryRunCaseConstant,
			configuration: renamer.DefaultConfiguration(),
			arguments:     []string{"--dry-run", testRootDirectoryConstant, testOldTermConstant, testNewTermConstant},
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			fileSystem := afero.NewMemMapFs()
			writeTestFile(testInstance, fileSystem, "/tree/foo.toml", "foo")

			outputBuffer := &bytes.Buffer{}
			executionError := buildTestCommand(testInstance, fileSystem, testCase.configuration, nil, outputBuffer, testCase.arguments)
			require.NoError(testInstance, executionError)

			renamedExists, existsError := afero.Exists(fileSystem, "/tree/bar.toml")
			require.NoError(testInstance, existsError)
			require.Equal(testInstance, testCase.expectModified, renamedExists)
			if testCase.expectModified {
				require.Contains(testInstance, outputBuffer.String(), "Renamed: /tree/foo.toml to /tree/bar.toml\n")
				return
			}
			require.Contains(testInstance, outputBuffer.String(), "[DRY RUN] Would rename: /tree/foo.toml to /tree/bar.toml\n")
		})
	}
}

func TestRenameCommandRequiresThreeArguments(testInstance *testing.T) {
	executionError := buildTestCommand(testInstance, afero.NewMemMapFs(), renamer.DefaultConfiguration(), nil, &bytes.Buffer{}, []string{testRootDirectoryConstant, testOldTermConstant})
	require.Error(testInstance, executionError)
}

func TestRenameCommandFailsForMissingRoot(testInstance *testing.T) {
	executionError := buildTestCommand(testInstance, afero.NewMemMapFs(), renamer.DefaultConfiguration(), nil, &bytes.Buffer{}, []string{"/absent", testOldTermConstant, testNewTermConstant})
	require.ErrorIs(testInstance, executionError, renamer.ErrRootDirectoryMissing)
}

func TestRenameCommandGitMoveRequiresRepository(testInstance *testing.T) {
	fileSystem := afero.NewMemMapFs()
	writeTestFile(testInstance, fileSystem, "/tree/foo.toml", "foo")

	gitExecutor := &scriptedGitExecutor{workTreeOutput: "false\n"}
	executionError := buildTestCommand(
		testInstance,
		fileSystem,
		renamer.DefaultConfiguration(),
		gitExecutor,
		&bytes.Buffer{},
		[]string{"--git-move", testRootDirectoryConstant, testOldTermConstant, testNewTermConstant},
	)
	require.ErrorIs(testInstance, executionError, pathmove.ErrNotGitRepository)

	contents, readError := afero.ReadFile(fileSystem, "/tree/foo.toml")
	require.NoError(testInstance, readError)
	require.Equal(testInstance, "foo", string(contents))
}
