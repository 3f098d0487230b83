package gitstatus_test

import (
	"testing"

	"github.com/promptline/gitline/internal/config"
	"github.com/promptline/gitline/internal/gitstatus"
	"github.com/stretchr/testify/require"
)

// testSymbols uses single letters so expected strings stay readable.
var testSymbols = config.Symbols{
	Git:      "G",
	Stashed:  "S",
	Deleted:  "X",
	Staged:   "+",
	Renamed:  "R",
	Conflict: "=",
	Diverged: "V",
	Ahead:    "^",
	Behind:   "v",
}

func TestFormatIndicators(t *testing.T) {
	tests := []struct {
		name string
		ind  gitstatus.Indicators
		want string
	}{
		{"clean", gitstatus.Indicators{}, ""},
		{"all counters", gitstatus.Indicators{
			Stashed: 1, Deleted: 1, Modified: 1, Staged: 1,
			Untracked: 1, Renamed: 1, Conflicts: 1,
		}, "SX!+?R="},
		{"priority order with gaps", gitstatus.Indicators{
			Stashed: 1, Modified: 2, Untracked: 3,
		}, "S!?"},
		{"ahead only", gitstatus.Indicators{Ahead: 2}, "^"},
		{"behind only", gitstatus.Indicators{Behind: 1}, "v"},
		{"ahead and behind without diverged flag", gitstatus.Indicators{Ahead: 1, Behind: 1}, "^v"},
		{"diverged collapses ahead and behind", gitstatus.Indicators{
			Ahead: 1, Behind: 1, Diverged: true,
		}, "V"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, gitstatus.FormatIndicators(tt.ind, testSymbols))
		})
	}
}

func TestFormatStatus(t *testing.T) {
	clean := gitstatus.Info{Branch: "main"}
	require.Equal(t, " G main", gitstatus.FormatStatus(clean, testSymbols))

	dirty := gitstatus.Info{
		Branch:     "feature/foo",
		Indicators: gitstatus.Indicators{Modified: 1, Untracked: 2},
	}
	require.Equal(t, " G feature/foo [!?]", gitstatus.FormatStatus(dirty, testSymbols))
}
