// Package cli wires the changelog-updater command: built-in settings, the
// git history window and the changelog updater.
package cli

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"

	"github.com/ariel-frischer/changelog-updater/internal/changelog"
	"github.com/ariel-frischer/changelog-updater/internal/config"
	clierrors "github.com/ariel-frischer/changelog-updater/internal/errors"
	"github.com/ariel-frischer/changelog-updater/internal/version"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var rootCmd = &cobra.Command{
	Use:   "changelog-updater",
	Short: "Append recent commits to CHANGELOG.md",
	Long: `Append the most recent commits to CHANGELOG.md as a dated section.

Reads the last 20 non-merge commits reachable from HEAD and appends them
under a "## YYYY-MM-DD" heading (UTC) at the end of CHANGELOG.md in the
current directory. The file is created with a "# Changelog" header when
missing, and the header is inserted when an existing file lacks it.

When no commits are found the file is left untouched. Running twice over
the same history appends the same section twice.`,
	Example:       "  changelog-updater",
	Version:       version.String(),
	Args:          noArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runUpdate(cmd, newGitHistory(""))
	},
}

func init() {
	rootCmd.SetVersionTemplate("{{.Version}}\n")
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return clierrors.NewArgumentErrorWithUsage(err.Error(), cmd.CommandPath())
	})
}

// Execute runs the root command and prints any error to stderr.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		stderr := rootCmd.ErrOrStderr()
		clierrors.FprintError(stderr, clierrors.FromError(err), useColors(stderr))
	}
	return err
}

func noArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return clierrors.UnexpectedArguments(args)
	}
	return nil
}

// runUpdate loads the fixed settings and appends the history window.
func runUpdate(cmd *cobra.Command, history changelog.HistorySource) error {
	cfg, err := config.Load()
	if err != nil {
		return clierrors.InvalidConfiguration(err)
	}

	updater := changelog.NewUpdater(cfg.ChangelogFile, cfg.CommitLimit, history)
	result, err := updater.Update()
	if err != nil {
		var historyErr *changelog.HistoryError
		if stderrors.As(err, &historyErr) {
			return clierrors.HistoryUnavailable(historyErr.Err)
		}
		return clierrors.ChangelogUpdateFailed(cfg.ChangelogFile, err)
	}

	out := cmd.OutOrStdout()
	reportResult(out, result, useColors(out))
	return nil
}

// reportResult prints a one-line summary of the run.
func reportResult(w io.Writer, result *changelog.Result, colored bool) {
	if !result.Appended {
		fmt.Fprintf(w, "No commits found; %s left unchanged\n", result.Path)
		return
	}

	check := "✓"
	if colored {
		check = color.New(color.FgGreen, color.Bold).Sprint(check)
	}

	noun := "commits"
	if result.Commits == 1 {
		noun = "commit"
	}

	fmt.Fprintf(w, "%s Appended %d %s to %s under %s", check, result.Commits, noun, result.Path, result.Date)
	if result.Created {
		fmt.Fprint(w, " (created)")
	}
	fmt.Fprintln(w)
}

// useColors reports whether w is a terminal that accepts colored output.
func useColors(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return !color.NoColor && term.IsTerminal(int(f.Fd()))
}
