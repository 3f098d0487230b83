package gitstatus

import (
	"fmt"
	"strings"

	"github.com/promptline/gitline/internal/config"
)

// FormatIndicators renders the indicator glyphs in fixed priority order,
// each only when its count is nonzero. The modified ("!") and untracked ("?")
// markers are literal and not configurable. When the branch has diverged, a
// single diverged glyph replaces the ahead/behind pair.
func FormatIndicators(ind Indicators, symbols config.Symbols) string {
	var b strings.Builder
	if ind.Stashed > 0 {
		b.WriteString(symbols.Stashed)
	}
	if ind.Deleted > 0 {
		b.WriteString(symbols.Deleted)
	}
	if ind.Modified > 0 {
		b.WriteString("!")
	}
	if ind.Staged > 0 {
		b.WriteString(symbols.Staged)
	}
	if ind.Untracked > 0 {
		b.WriteString("?")
	}
	if ind.Renamed > 0 {
		b.WriteString(symbols.Renamed)
	}
	if ind.Conflicts > 0 {
		b.WriteString(symbols.Conflict)
	}
	if ind.Diverged {
		b.WriteString(symbols.Diverged)
	} else {
		if ind.Ahead > 0 {
			b.WriteString(symbols.Ahead)
		}
		if ind.Behind > 0 {
			b.WriteString(symbols.Behind)
		}
	}
	return b.String()
}

// FormatStatus renders the full prompt fragment. The leading space is
// intentional: the fragment is concatenated directly onto the preceding
// prompt segment.
func FormatStatus(info Info, symbols config.Symbols) string {
	indicators := FormatIndicators(info.Indicators, symbols)
	if indicators != "" {
		return fmt.Sprintf(" %s %s [%s]", symbols.Git, info.Branch, indicators)
	}
	return fmt.Sprintf(" %s %s", symbols.Git, info.Branch)
}
