package changelog

import "strings"

// Header is the mandatory first line of the document.
const Header = "# Changelog"

// EnsureHeader returns content prefixed with the header block unless it
// already starts with Header.
func EnsureHeader(content string) string {
	if strings.HasPrefix(content, Header) {
		return content
	}
	return Header + "\n\n" + content
}

// Merge appends section to the existing document content. The header is
// inserted when missing and the existing content is padded so a blank line
// separates it from the new section.
func Merge(existing, section string) string {
	doc := EnsureHeader(existing)

	switch {
	case strings.HasSuffix(doc, "\n\n"):
	case strings.HasSuffix(doc, "\n"):
		doc += "\n"
	default:
		doc += "\n\n"
	}

	return doc + section
}
