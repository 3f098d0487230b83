// Package gitstatus computes the git segment of a shell prompt: the current
// branch name plus a compact set of change indicators. Every query it makes is
// bounded by a timeout and every failure degrades to a zero value, so a broken
// or slow git never breaks prompt rendering.
package gitstatus

// Indicators are the per-repository change counts shown next to the branch
// name. The zero value is the baseline every computation starts from and the
// fallback when a sub-query fails.
type Indicators struct {
	Stashed   int
	Staged    int
	Modified  int
	Untracked int
	Renamed   int
	Deleted   int
	Conflicts int
	Ahead     int
	Behind    int
	// Diverged is true iff both Ahead and Behind are nonzero.
	Diverged bool
}

// Info is the result of one status computation. It is immutable after
// construction and lives for a single prompt render.
type Info struct {
	Branch     string
	Indicators Indicators
}
