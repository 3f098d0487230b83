package git

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path"
	"strings"
	"time"

	"emperror.dev/errors"
	"github.com/sirupsen/logrus"
)

// DefaultTimeout bounds every git invocation that isn't given an explicit
// deadline. A hung git process (e.g., a repo on an unreachable network mount)
// must never stall the prompt.
const DefaultTimeout = 5 * time.Second

type Repo struct {
	repoDir string
	timeout time.Duration
	log     logrus.FieldLogger
}

func OpenRepo(repoDir string) *Repo {
	return &Repo{
		repoDir: repoDir,
		timeout: DefaultTimeout,
		log:     logrus.WithFields(logrus.Fields{"repo": path.Base(repoDir)}),
	}
}

func (r *Repo) Dir() string {
	return r.repoDir
}

// Git runs a git command in the repository directory and returns its stdout
// with surrounding whitespace trimmed. If ctx carries no deadline, the repo's
// default timeout is applied.
func (r *Repo) Git(ctx context.Context, args ...string) (string, error) {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}
	startTime := time.Now()
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = r.repoDir
	out, err := cmd.Output()
	log := r.log.WithField("duration", time.Since(startTime))
	if err != nil {
		stderr := "<no output>"
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			stderr = string(exitError.Stderr)
		}
		log.Debugf("git %s failed: %s: %s", args, err, stderr)
		return strings.TrimSpace(string(out)), errors.Wrapf(err, "git %s", args[0])
	}

	// trim trailing newline
	log.Debugf("git %s", args)
	return strings.TrimSpace(string(out)), nil
}

// IsRepo reports whether the repository directory is inside a git work tree.
// Any failure (not a repo, git missing, timeout) reports false.
func (r *Repo) IsRepo(ctx context.Context) bool {
	res, err := r.Run(ctx, &RunOpts{
		Args: []string{"rev-parse", "--is-inside-work-tree"},
	})
	if err != nil {
		return false
	}
	return res.ExitCode == 0 && strings.TrimSpace(string(res.Stdout)) == "true"
}

type RunOpts struct {
	Args []string
	Env  []string
	// If true, return a non-nil error if the command exited with a non-zero
	// exit code.
	ExitError bool
}

type Output struct {
	ExitCode int
	Stdout   []byte
	Stderr   []byte
}

func (r *Repo) Run(ctx context.Context, opts *RunOpts) (*Output, error) {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}
	cmd := exec.CommandContext(ctx, "git", opts.Args...)
	cmd.Dir = r.repoDir
	r.log.Debugf("git %s", opts.Args)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.Env = append(os.Environ(), opts.Env...)
	err := cmd.Run()
	var exitError *exec.ExitError
	if err != nil && !errors.As(err, &exitError) {
		return nil, errors.Wrapf(err, "git %s", opts.Args)
	}
	if err != nil && opts.ExitError && exitError.ExitCode() != 0 {
		return nil, errors.Errorf("git %s: %s: %s", opts.Args, err, stderr.String())
	}
	return &Output{
		ExitCode: cmd.ProcessState.ExitCode(),
		Stdout:   stdout.Bytes(),
		Stderr:   stderr.Bytes(),
	}, nil
}
