package git

import (
	"os/exec"
	"strings"

	"github.com/promptline/gitline/internal/utils/errutils"
)

// StderrMatches reports whether err is a git process failure whose stderr
// contains target.
func StderrMatches(err error, target string) bool {
	if exitErr, ok := errutils.As[*exec.ExitError](err); ok {
		return strings.Contains(string(exitErr.Stderr), target)
	}
	return false
}
