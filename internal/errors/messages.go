package errors

import (
	"fmt"
	"strings"
)

// Common error messages for the changelog-updater CLI.

// UnexpectedArguments creates an error for positional arguments, which the command does not take.
func UnexpectedArguments(args []string) *CLIError {
	return NewArgumentErrorWithUsage(
		fmt.Sprintf("unexpected arguments: %s", strings.Join(args, " ")),
		"changelog-updater",
		"Run the command without arguments from inside the repository",
	)
}

// InvalidConfiguration creates an error for unusable built-in settings.
func InvalidConfiguration(err error) *CLIError {
	return WrapWithMessage(err, Configuration, "invalid configuration")
}

// HistoryUnavailable creates an error for a failed history query.
func HistoryUnavailable(err error) *CLIError {
	return WrapWithMessage(err, Prerequisite, "cannot read commit history",
		"Run changelog-updater inside a git repository",
		"Make sure the current branch has at least one commit",
	)
}

// ChangelogUpdateFailed creates an error for a failed read or write of the changelog.
func ChangelogUpdateFailed(path string, err error) *CLIError {
	return WrapWithMessage(err, Runtime, fmt.Sprintf("updating %s", path),
		"Check that the file and its directory are writable",
	)
}
