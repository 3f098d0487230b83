package gitstatus

import (
	"context"
	"strings"
	"time"

	"github.com/promptline/gitline/internal/utils/stringutils"
)

// Runner runs a git query against a repository and returns its trimmed
// stdout. Implemented by *git.Repo; tests substitute fakes.
type Runner interface {
	Git(ctx context.Context, args ...string) (string, error)
}

// Cache is the expiring key-value store used to memoize branch resolution
// between prompt renders. Implemented by *cache.Cache.
type Cache interface {
	Get(key string) (string, bool)
	Set(key, value string, ttl time.Duration)
}

// branchTTL bounds how stale a cached branch name can be. The cache is never
// invalidated explicitly (e.g., on checkout); staleness is bounded by expiry
// alone.
const branchTTL = 60 * time.Second

// BranchResolver determines the current branch name via an ordered chain of
// fallback queries. Different repository states (fresh clone, detached HEAD,
// shallow clone) make some queries fail or return ambiguous output; the chain
// is ordered from most specific to most general so the common case costs a
// single git invocation.
type BranchResolver struct {
	cache Cache
}

func NewBranchResolver(cache Cache) *BranchResolver {
	return &BranchResolver{cache: cache}
}

// branchAttempts are tried in order; the first non-empty result wins.
var branchAttempts = []func(ctx context.Context, run Runner) (string, error){
	func(ctx context.Context, run Runner) (string, error) {
		return run.Git(ctx, "branch", "--show-current")
	},
	func(ctx context.Context, run Runner) (string, error) {
		name, err := run.Git(ctx, "rev-parse", "--abbrev-ref", "HEAD")
		if err != nil {
			return "", err
		}
		// The literal token HEAD means detached; not a branch name.
		if strings.TrimSpace(name) == "HEAD" {
			return "", nil
		}
		return name, nil
	},
	func(ctx context.Context, run Runner) (string, error) {
		out, err := run.Git(ctx, "branch", "--list")
		if err != nil {
			return "", err
		}
		for _, line := range stringutils.SplitLines(out) {
			rest, ok := strings.CutPrefix(line, "* ")
			if !ok {
				continue
			}
			// Detached HEAD is listed as "* (HEAD detached at ...)".
			if strings.HasPrefix(rest, "(") {
				continue
			}
			return rest, nil
		}
		return "", nil
	},
}

// Resolve returns the current branch name for the repository at dir, or ""
// if none can be determined (e.g., detached HEAD where every fallback comes
// up empty). Results are cached for branchTTL keyed by directory.
func (b *BranchResolver) Resolve(ctx context.Context, run Runner, dir string) string {
	key := branchCacheKey(dir)
	if b.cache != nil {
		if name, ok := b.cache.Get(key); ok {
			return name
		}
	}
	for _, attempt := range branchAttempts {
		name, err := attempt(ctx, run)
		if err != nil {
			continue
		}
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if b.cache != nil {
			b.cache.Set(key, name, branchTTL)
		}
		return name
	}
	return ""
}

func branchCacheKey(dir string) string {
	return "branch:" + dir + ":current"
}
