package gitstatus

import "strings"

// ParseStatus folds the output of `git status --porcelain` into change counts.
// Each line starts with two status-code characters (staged, unstaged) followed
// by a path. Lines shorter than two characters are skipped. Stashed, Ahead,
// Behind, and Diverged are left at their baseline; those are filled in by
// other queries.
func ParseStatus(statusText string) Indicators {
	var ind Indicators
	for _, line := range strings.Split(statusText, "\n") {
		parseStatusLine(line, &ind)
	}
	return ind
}

func parseStatusLine(line string, ind *Indicators) {
	if len(line) < 2 {
		return
	}
	staged, unstaged := line[0], line[1]

	// Conflict markers win over any other interpretation of the same line.
	switch {
	case staged == 'U' || unstaged == 'U',
		staged == 'A' && unstaged == 'A',
		staged == 'D' && unstaged == 'D':
		ind.Conflicts++
		return
	case staged == '?' && unstaged == '?':
		ind.Untracked++
		return
	}

	switch staged {
	case 'M', 'A', 'C':
		ind.Staged++
	case 'D':
		ind.Deleted++
	case 'R':
		ind.Renamed++
	}
	switch unstaged {
	case 'M':
		ind.Modified++
	case 'D':
		ind.Deleted++
	case 'R':
		ind.Renamed++
	}
}
