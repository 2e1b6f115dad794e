package wprefactor

import "strings"

// Formatter re-indents an HTML document for readability.
type Formatter interface {
	Format(html string) (string, error)
}

// CountLines returns the number of newline-separated lines in s.
// A trailing newline counts as the start of an empty final line.
func CountLines(s string) int {
	return strings.Count(s, "\n") + 1
}
