// Package changelog appends dated sections of commit summaries to a
// Markdown changelog.
//
// This package implements:
//   - Section formatting: a "## YYYY-MM-DD" heading and one bullet per commit
//   - Header handling: the document always starts with "# Changelog"
//   - Read/modify/write of the changelog file through Updater
//
// Sections are appended at the end of the file, so successive runs produce
// an oldest-at-top ordering. Running twice over the same history window
// appends the same section twice.
package changelog
