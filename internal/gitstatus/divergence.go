package gitstatus

import (
	"context"
	"strconv"
	"strings"

	"github.com/promptline/gitline/internal/git"
	"github.com/sirupsen/logrus"
)

// aheadBehind returns the commit counts between HEAD and its upstream
// tracking ref. A branch without an upstream is the expected, non-error case
// and yields {0, 0}, as does any query failure.
func aheadBehind(ctx context.Context, run Runner) (ahead, behind int) {
	upstream, err := run.Git(ctx, "rev-parse", "--abbrev-ref", "@{upstream}")
	upstream = strings.TrimSpace(upstream)
	if err != nil || upstream == "" {
		if err != nil && !git.StderrMatches(err, "no upstream") {
			logrus.WithError(err).Debug("failed to resolve upstream ref")
		}
		return 0, 0
	}
	out, err := run.Git(ctx, "rev-list", "--left-right", "--count", upstream+"...HEAD")
	if err != nil {
		logrus.WithError(err).Debug("failed to count ahead/behind commits")
		return 0, 0
	}
	// Output is two tab-separated numbers: commits only in upstream (behind),
	// then commits only in HEAD (ahead).
	fields := strings.Split(strings.TrimSpace(out), "\t")
	if len(fields) != 2 {
		return 0, 0
	}
	return atoiOrZero(fields[1]), atoiOrZero(fields[0])
}

func atoiOrZero(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0
	}
	return n
}
