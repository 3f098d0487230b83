package gitstatus

import (
	"context"

	"github.com/promptline/gitline/internal/utils/stringutils"
)

// stashCount returns the number of stash entries. Stash absence and query
// failure are indistinguishable; both report zero.
func stashCount(ctx context.Context, run Runner) int {
	out, err := run.Git(ctx, "stash", "list")
	if err != nil {
		return 0
	}
	count := 0
	for _, line := range stringutils.SplitLines(out) {
		if line != "" {
			count++
		}
	}
	return count
}
