package gitstatus

import (
	"context"
	"time"

	"github.com/promptline/gitline/internal/config"
	"github.com/promptline/gitline/internal/git"
	"github.com/sirupsen/logrus"
)

// repoCheckTimeout bounds the initial "is this a repository" probe.
const repoCheckTimeout = 5000 * time.Millisecond

// Service computes Info for a directory. It never returns an error: a
// directory that isn't a repository, a missing git binary, a timeout, or a
// parse failure all degrade to nil or to baseline indicator values, logged at
// debug level only. Callers cannot distinguish "clean repository" from "query
// failed"; that's the intended trade for prompt robustness.
type Service struct {
	cfg      config.Git
	branches *BranchResolver
}

func NewService(cfg config.Git, cache Cache) *Service {
	return &Service{
		cfg:      cfg,
		branches: NewBranchResolver(cache),
	}
}

// Info returns the git segment data for dir, or nil when there is nothing to
// show (feature disabled, not a repository, or no resolvable branch).
func (s *Service) Info(ctx context.Context, dir string) *Info {
	if s.cfg.Disabled {
		return nil
	}

	repo := git.OpenRepo(dir)

	checkCtx, cancel := context.WithTimeout(ctx, repoCheckTimeout)
	defer cancel()
	if !repo.IsRepo(checkCtx) {
		return nil
	}

	branch := s.branches.Resolve(ctx, repo, dir)
	if branch == "" {
		// A repository with no resolvable branch (e.g., detached HEAD where
		// every fallback fails) is "nothing to show", not an error.
		logrus.WithField("dir", dir).Debug("no resolvable branch")
		return nil
	}

	var ind Indicators
	if out, err := repo.Git(ctx, "status", "--porcelain"); err == nil {
		ind = ParseStatus(out)
	} else {
		logrus.WithError(err).Debug("failed to read git status")
	}
	ind.Stashed = stashCount(ctx, repo)
	ind.Ahead, ind.Behind = aheadBehind(ctx, repo)
	ind.Diverged = ind.Ahead > 0 && ind.Behind > 0

	return &Info{Branch: branch, Indicators: ind}
}
