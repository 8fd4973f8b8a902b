package config

const (
	// DefaultChangelogFile is the changelog written in the working directory.
	DefaultChangelogFile = "CHANGELOG.md"
	// DefaultCommitLimit is the size of the history window per run.
	DefaultCommitLimit = 20
)

// GetDefaults returns the default configuration values keyed by koanf path.
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"changelog_file": DefaultChangelogFile,
		"commit_limit":   DefaultCommitLimit,
	}
}
