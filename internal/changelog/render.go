package changelog

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// Render writes the section: heading, one bullet per commit in order, and a
// trailing blank line.
func (s *Section) Render(w io.Writer) error {
	if _, err := io.WriteString(w, s.Heading()+"\n"); err != nil {
		return fmt.Errorf("rendering heading: %w", err)
	}

	for _, c := range s.Commits {
		if _, err := io.WriteString(w, "- "+c.String()+"\n"); err != nil {
			return fmt.Errorf("rendering commit %s: %w", c.ShortHash, err)
		}
	}

	_, err := io.WriteString(w, "\n")
	return err
}

// String renders the section to a string.
func (s *Section) String() string {
	var b strings.Builder
	// strings.Builder never returns a write error
	_ = s.Render(&b)
	return b.String()
}

// FormatSection is a convenience function that renders commits as a section
// dated on the UTC calendar day of date.
func FormatSection(commits []Commit, date time.Time) string {
	return NewSection(commits, date).String()
}
