package gitstatus_test

import (
	"strings"
	"testing"

	"github.com/promptline/gitline/internal/gitstatus"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  gitstatus.Indicators
	}{
		{"empty", "", gitstatus.Indicators{}},
		{"blank lines", "\n\n\n", gitstatus.Indicators{}},
		{"short lines ignored", "M\nA\n?\n", gitstatus.Indicators{}},
		{"untracked", "?? foo.txt", gitstatus.Indicators{Untracked: 1}},
		{"both-modified conflict", "UU foo.txt", gitstatus.Indicators{Conflicts: 1}},
		{"unstaged conflict only", " U foo.txt", gitstatus.Indicators{Conflicts: 1}},
		{"both-added conflict", "AA foo.txt", gitstatus.Indicators{Conflicts: 1}},
		{"both-deleted conflict", "DD foo.txt", gitstatus.Indicators{Conflicts: 1}},
		{"staged modified", "M  foo.txt", gitstatus.Indicators{Staged: 1}},
		{"staged added", "A  foo.txt", gitstatus.Indicators{Staged: 1}},
		{"staged copied", "C  foo.txt", gitstatus.Indicators{Staged: 1}},
		{"staged and unstaged modified", "MM foo.txt", gitstatus.Indicators{Staged: 1, Modified: 1}},
		{"unstaged modified", " M foo.txt", gitstatus.Indicators{Modified: 1}},
		{"staged deleted", "D  foo.txt", gitstatus.Indicators{Deleted: 1}},
		{"unstaged deleted", " D foo.txt", gitstatus.Indicators{Deleted: 1}},
		{"staged renamed", "R  foo.txt -> bar.txt", gitstatus.Indicators{Renamed: 1}},
		{"renamed and modified", "RM foo.txt -> bar.txt", gitstatus.Indicators{Renamed: 1, Modified: 1}},
		{
			"mixed report",
			strings.Join([]string{
				"M  staged.txt",
				" M modified.txt",
				"?? untracked.txt",
				"?? another.txt",
				"UU conflicted.txt",
				"D  deleted.txt",
			}, "\n"),
			gitstatus.Indicators{
				Staged:    1,
				Modified:  1,
				Untracked: 2,
				Conflicts: 1,
				Deleted:   1,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, gitstatus.ParseStatus(tt.input))
		})
	}
}

func TestParseStatusConflictWinsOverOtherCodes(t *testing.T) {
	// AA and DD lines must not leak into staged/deleted counts.
	ind := gitstatus.ParseStatus("AA foo.txt\nDD bar.txt")
	require.Equal(t, gitstatus.Indicators{Conflicts: 2}, ind)
}

func TestParseStatusProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		lines := rapid.SliceOf(rapid.StringMatching(`[ MADRCU?!]{0,4}( [a-z.]+)?`)).Draw(t, "lines")
		ind := gitstatus.ParseStatus(strings.Join(lines, "\n"))

		// The parser never produces negative counts and never touches the
		// fields owned by other queries.
		for _, n := range []int{
			ind.Stashed, ind.Staged, ind.Modified, ind.Untracked,
			ind.Renamed, ind.Deleted, ind.Conflicts, ind.Ahead, ind.Behind,
		} {
			if n < 0 {
				t.Fatalf("negative count in %+v", ind)
			}
		}
		if ind.Stashed != 0 || ind.Ahead != 0 || ind.Behind != 0 || ind.Diverged {
			t.Fatalf("parser touched non-status fields: %+v", ind)
		}

		// Each line increments at most two counters.
		total := ind.Staged + ind.Modified + ind.Untracked + ind.Renamed +
			ind.Deleted + ind.Conflicts
		if total > 2*len(lines) {
			t.Fatalf("total %d exceeds 2x line count %d", total, len(lines))
		}
	})
}
