package stringutils

import "strings"

// SplitLines splits s into lines, dropping the trailing newline if present.
// An empty input yields nil.
func SplitLines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
