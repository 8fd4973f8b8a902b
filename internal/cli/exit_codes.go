package cli

import clierrors "github.com/ariel-frischer/changelog-updater/internal/errors"

// Exit codes for the changelog-updater CLI
const (
	// ExitSuccess indicates the changelog was updated or left unchanged on purpose
	ExitSuccess = 0

	// ExitUpdateFailed indicates the history query or a file operation failed
	ExitUpdateFailed = 1

	// ExitInvalidArguments indicates invalid command arguments
	ExitInvalidArguments = 3
)

// ExitCode maps an error returned by Execute to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	if cliErr := clierrors.AsCLIError(err); cliErr != nil && cliErr.Category == clierrors.Argument {
		return ExitInvalidArguments
	}
	return ExitUpdateFailed
}
