// Package emit implements the four pairwise emitters from spec.md §4.4:
// normal, unified, context, and ed. Each takes the Mismatch list produced by
// pkg/hunk and a diffcfg.Config and renders the format's exact wire syntax,
// described verbatim in spec.md §6.1.
package emit

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/gophersland/diffutils/pkg/diffcfg"
)

// noNewlineMarker is spec.md §6.1's missing-newline marker, emitted verbatim
// after the line it applies to.
const noNewlineMarker = "\\ No newline at end of file\n"

// formatRange renders an inclusive line range, collapsing to a single number
// when both endpoints are equal, per spec.md §4.4.1/§4.4.3.
func formatRange(a, b int) string {
	if a == b {
		return strconv.Itoa(a)
	}
	return fmt.Sprintf("%d,%d", a, b)
}

// endpoints returns the (start, end) line-range pair for a side with the
// given 1-based start and line count. A count of 0 (pure insert/delete on
// this side) collapses to the "point before" position on both endpoints,
// matching every emitter's {e1-1} / {a1-1} convention.
func endpoints(start, count int) (a, b int) {
	if count == 0 {
		return start - 1, start - 1
	}
	return start, start + count - 1
}

// writeBody writes one body line, applying tab expansion first when enabled.
// Tab expansion never reaches header/range syntax, only body lines.
func writeBody(buf *bytes.Buffer, line string, cfg diffcfg.Config) {
	if cfg.ExpandTabs {
		line = ExpandTabs(line, cfg.EffectiveTabSize())
	}
	buf.WriteString(line)
}
