package changelog

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"
)

// HistorySource supplies the most recent commits, newest first.
type HistorySource interface {
	RecentCommits(limit int) ([]Commit, error)
}

// HistoryError wraps a failure of the history query.
type HistoryError struct {
	Err error
}

func (e *HistoryError) Error() string {
	return fmt.Sprintf("reading commit history: %v", e.Err)
}

func (e *HistoryError) Unwrap() error {
	return e.Err
}

// Result describes the outcome of one update run.
type Result struct {
	// Path is the changelog file that was considered.
	Path string
	// Date is the section heading date (YYYY-MM-DD), empty on a no-op.
	Date string
	// Commits is the number of bullet lines appended.
	Commits int
	// Appended is false when no commits were found and the file was untouched.
	Appended bool
	// Created is true when the file did not exist before this run.
	Created bool
}

// Updater appends the recent history window to a changelog file.
type Updater struct {
	Path    string
	Limit   int
	History HistorySource
	// Now returns the current time; the section uses its UTC date.
	Now func() time.Time
}

// NewUpdater creates an Updater using the wall clock.
func NewUpdater(path string, limit int, history HistorySource) *Updater {
	return &Updater{
		Path:    path,
		Limit:   limit,
		History: history,
		Now:     time.Now,
	}
}

// Update runs fetch, format, read, merge and write. When the history window
// is empty the file is neither read nor written. The whole file is rewritten
// on success; a failed write is not rolled back.
func (u *Updater) Update() (*Result, error) {
	result := &Result{Path: u.Path}

	commits, err := u.History.RecentCommits(u.Limit)
	if err != nil {
		return nil, &HistoryError{Err: err}
	}
	if len(commits) == 0 {
		return result, nil
	}

	section := NewSection(commits, u.now())

	existing, created, err := readDocument(u.Path)
	if err != nil {
		return nil, err
	}

	content := Merge(existing, section.String())
	if err := os.WriteFile(u.Path, []byte(content), 0o644); err != nil {
		return nil, fmt.Errorf("writing %s: %w", u.Path, err)
	}

	result.Date = section.Date.Format(DateLayout)
	result.Commits = len(commits)
	result.Appended = true
	result.Created = created
	return result, nil
}

func (u *Updater) now() time.Time {
	if u.Now == nil {
		return time.Now().UTC()
	}
	return u.Now().UTC()
}

// readDocument returns the file content, or empty content and created=true
// when the file does not exist.
func readDocument(path string) (content string, created bool, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", true, nil
		}
		return "", false, fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), false, nil
}
