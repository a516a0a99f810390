package renamer

import "strings"

const (
	configurationExtensionsKeyConstant          = "extensions"
	configurationExcludedDirectoriesKeyConstant = "excluded_directories"
	configurationDryRunKeyConstant              = "dry_run"
	configurationGitMoveKeyConstant             = "git_move"
	configurationGitFallbackKeyConstant         = "git_fallback"
	configurationShowDiffKeyConstant            = "show_diff"
	configurationKeySeparatorConstant           = "."
	extensionPrefixConstant                     = "."
)

var (
	defaultExtensions          = []string{".rs", ".toml"}
	defaultExcludedDirectories = []string{".git", "vendor", "build", "target"}
)

// Configuration captures configuration values for the rename command.
type Configuration struct {
	Extensions          []string `mapstructure:"extensions"`
	ExcludedDirectories []string `mapstructure:"excluded_directories"`
	DryRun              bool     `mapstructure:"dry_run"`
	GitMove             bool     `mapstructure:"git_move"`
	GitFallback         bool     `mapstructure:"git_fallback"`
	ShowDiff            bool     `mapstructure:"show_diff"`
}

// DefaultConfiguration provides baseline configuration values for the rename command.
func DefaultConfiguration() Configuration {
	return Configuration{
		Extensions:          append([]string(nil), defaultExtensions...),
		ExcludedDirectories: append([]string(nil), defaultExcludedDirectories...),
		DryRun:              false,
		GitMove:             false,
		GitFallback:         false,
		ShowDiff:            false,
	}
}

// DefaultConfigurationValues returns the defaults keyed beneath rootKey for registration with the configuration loader.
func DefaultConfigurationValues(rootKey string) map[string]any {
	defaults := DefaultConfiguration()
	return map[string]any{
		qualifyKey(rootKey, configurationExtensionsKeyConstant):          defaults.Extensions,
		qualifyKey(rootKey, configurationExcludedDirectoriesKeyConstant): defaults.ExcludedDirectories,
		qualifyKey(rootKey, configurationDryRunKeyConstant):              defaults.DryRun,
		qualifyKey(rootKey, configurationGitMoveKeyConstant):             defaults.GitMove,
		qualifyKey(rootKey, configurationGitFallbackKeyConstant):         defaults.GitFallback,
		qualifyKey(rootKey, configurationShowDiffKeyConstant):            defaults.ShowDiff,
	}
}

// sanitize trims list entries and prefixes bare extensions with a dot.
func (configuration Configuration) sanitize() Configuration {
	sanitized := configuration

	sanitized.Extensions = sanitizeExtensions(configuration.Extensions)
	sanitized.ExcludedDirectories = sanitizeNames(configuration.ExcludedDirectories)

	return sanitized
}

func sanitizeExtensions(rawExtensions []string) []string {
	sanitized := make([]string, 0, len(rawExtensions))
	for _, extension := range sanitizeNames(rawExtensions) {
		if !strings.HasPrefix(extension, extensionPrefixConstant) {
			extension = extensionPrefixConstant + extension
		}
		sanitized = append(sanitized, extension)
	}
	return sanitized
}

func sanitizeNames(rawNames []string) []string {
	sanitized := make([]string, 0, len(rawNames))
	for _, candidate := range rawNames {
		trimmed := strings.TrimSpace(candidate)
		if len(trimmed) == 0 {
			continue
		}
		sanitized = append(sanitized, trimmed)
	}
	return sanitized
}

func qualifyKey(rootKey string, key string) string {
	trimmedRootKey := strings.TrimSpace(rootKey)
	if len(trimmedRootKey) == 0 {
		return key
	}
	return trimmedRootKey + configurationKeySeparatorConstant + key
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, value := range values {
		set[value] = struct{}{}
	}
	return set
}
