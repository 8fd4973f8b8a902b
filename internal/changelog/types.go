package changelog

import "time"

// DateLayout is the layout of section headings.
const DateLayout = "2006-01-02"

// Commit is a single history record rendered as one bullet line.
type Commit struct {
	ShortHash string
	Summary   string
}

// String returns the "<short-id> <summary>" form used in bullets.
func (c Commit) String() string {
	return c.ShortHash + " " + c.Summary
}

// Section is one dated block of the changelog.
type Section struct {
	Date    time.Time
	Commits []Commit
}

// NewSection creates a section dated on the UTC calendar day of date.
func NewSection(commits []Commit, date time.Time) *Section {
	return &Section{Date: date.UTC(), Commits: commits}
}

// Heading returns the "## YYYY-MM-DD" heading line without a newline.
func (s *Section) Heading() string {
	return "## " + s.Date.UTC().Format(DateLayout)
}

// IsEmpty returns true if the section has no commits.
func (s *Section) IsEmpty() bool {
	return len(s.Commits) == 0
}
