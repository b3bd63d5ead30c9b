// Package hunk implements the Hunk Builder from spec.md §4.3: it walks the
// ordered edit stream produced by pkg/lcs and groups it into Mismatches, each
// carrying up to Context lines of surrounding Keep entries plus the line
// numbers needed by every emitter's header syntax.
//
// The windowing algorithm is grounded on the edit-run/context-window
// approach used by znkr/diff's hunk builder: a change run opens a hunk with
// up to Context leading Keep entries, the hunk stays open while the run of
// trailing Keep entries stays below Context, and two hunks whose windows
// touch or overlap are merged into one.
package hunk

import "github.com/gophersland/diffutils/pkg/lcs"

// LineTag classifies one line of a Mismatch's per-side context view, used by
// the context-format emitter.
type LineTag int

const (
	TagContext LineTag = iota
	TagChange
	TagAdd
)

// SideLine is one line of a per-side context view, see [Mismatch.ContextSides].
type SideLine struct {
	Tag  LineTag
	Text string
}

// Mismatch is a single hunk: a contiguous window of the edit stream bounded
// by (at most) Context unchanged lines on either end, as described in
// spec.md §3.
type Mismatch struct {
	// LineExpected, LineActual are the 1-based line number of the first line
	// of the hunk's window on the left and right respectively. For a hunk
	// whose window is empty on one side (a pure insert or pure delete under
	// Context == 0), this is the line number immediately following the
	// insertion/deletion point on that side; callers needing the
	// GNU-style "point before" form should compute LineExpected-1 /
	// LineActual-1 themselves when ExpectedCount / ActualCount is zero.
	LineExpected, LineActual int

	// ExpectedCount, ActualCount are the number of left-side and right-side
	// lines (Keep entries count on both sides) contained in the window.
	ExpectedCount, ActualCount int

	// Entries is the ordered slice of the edit stream making up this hunk,
	// including its leading and trailing context.
	Entries []lcs.Edit

	// ExpectedMissingNL is true when the window includes the final line of
	// the left input and that input lacked a trailing newline.
	ExpectedMissingNL bool
	// ActualMissingNL is the same, for the right input.
	ActualMissingNL bool

	// ExpectedAllContext is true when the window contains no Delete entry
	// (every left-side line in the hunk is unchanged context); the context
	// emitter renders such a side as its range header only, with no body.
	ExpectedAllContext bool
	// ActualAllContext is the same, for Insert entries on the right.
	ActualAllContext bool
}

// Build groups edits into Mismatches. context is the number of Keep entries
// allowed on either side of a change run before the hunk closes; pass 0 for
// the normal/ed formats, which carry no context at all.
//
// leftMissingNL and rightMissingNL record whether left and right,
// respectively, lacked a trailing newline on their final line. When exactly
// one of them is true and the final line of both inputs otherwise compared
// equal (a trailing Keep edit spanning both final lines), Build synthesizes
// a Delete+Insert pair in its place so that the newline-only difference
// still produces a hunk, per spec.md §3.
func Build(left, right []string, edits []lcs.Edit, leftMissingNL, rightMissingNL bool, context int) []Mismatch {
	edits = adjustFinalNewline(edits, len(left), len(right), leftMissingNL, rightMissingNL)

	type span struct{ start, end int }
	var spans []span

	n := len(edits)
	start := -1
	run := 0
	for i := 0; i < n; i++ {
		if edits[i].Op != lcs.Keep {
			run = 0
			if start < 0 {
				start = max(0, i-context)
				if len(spans) > 0 && spans[len(spans)-1].end >= start {
					start = spans[len(spans)-1].start
					spans = spans[:len(spans)-1]
				}
			}
		} else {
			run++
		}
		if start >= 0 && (run >= context || i == n-1) {
			spans = append(spans, span{start, i + 1})
			start = -1
			run = 0
		}
	}

	out := make([]Mismatch, len(spans))
	for i, sp := range spans {
		out[i] = newMismatch(edits, sp.start, sp.end, len(left), len(right), leftMissingNL, rightMissingNL)
	}
	return out
}

// adjustFinalNewline replaces a trailing Keep edit spanning the last line of
// both inputs with a synthetic Delete+Insert pair when the two inputs
// disagree about whether their last line has a trailing newline. Without
// this, two buffers differing only in a trailing newline would otherwise
// compare as fully identical and produce no hunk at all.
func adjustFinalNewline(edits []lcs.Edit, leftN, rightN int, leftMissingNL, rightMissingNL bool) []lcs.Edit {
	if len(edits) == 0 || leftMissingNL == rightMissingNL {
		return edits
	}
	last := edits[len(edits)-1]
	if last.Op != lcs.Keep || last.L != leftN-1 || last.R != rightN-1 {
		return edits
	}
	out := make([]lcs.Edit, len(edits)-1, len(edits)+1)
	copy(out, edits[:len(edits)-1])
	out = append(out,
		lcs.Edit{Op: lcs.Delete, Line: last.Line, L: last.L, R: -1},
		lcs.Edit{Op: lcs.Insert, Line: last.Line, L: -1, R: last.R},
	)
	return out
}

func newMismatch(all []lcs.Edit, start, end, leftN, rightN int, leftMissingNL, rightMissingNL bool) Mismatch {
	win := all[start:end]
	m := Mismatch{Entries: append([]lcs.Edit(nil), win...)}

	leftStart, rightStart := 0, 0
	for _, e := range all[:start] {
		if e.Op != lcs.Insert {
			leftStart++
		}
		if e.Op != lcs.Delete {
			rightStart++
		}
	}
	m.LineExpected = leftStart + 1
	m.LineActual = rightStart + 1

	hasLeftChange, hasRightChange := false, false
	for _, e := range win {
		if e.Op != lcs.Insert {
			m.ExpectedCount++
			if e.Op == lcs.Delete {
				hasLeftChange = true
			}
			if e.L == leftN-1 && leftMissingNL {
				m.ExpectedMissingNL = true
			}
		}
		if e.Op != lcs.Delete {
			m.ActualCount++
			if e.Op == lcs.Insert {
				hasRightChange = true
			}
			if e.R == rightN-1 && rightMissingNL {
				m.ActualMissingNL = true
			}
		}
	}
	m.ExpectedAllContext = !hasLeftChange
	m.ActualAllContext = !hasRightChange
	return m
}

// ContextSides splits a Mismatch's Entries into the per-side, per-line tag
// sequences used by the context-format emitter. A run of Delete entries
// immediately followed by a run of Insert entries is paired up: the shorter
// count becomes Change lines on both sides, and any excess on the longer
// side becomes Add lines, per spec.md §4.4.3.
func (m Mismatch) ContextSides() (left, right []SideLine) {
	entries := m.Entries
	i, n := 0, len(entries)
	for i < n {
		e := entries[i]
		if e.Op == lcs.Keep {
			left = append(left, SideLine{TagContext, e.Line})
			right = append(right, SideLine{TagContext, e.Line})
			i++
			continue
		}

		var dels, inss []string
		for i < n && entries[i].Op == lcs.Delete {
			dels = append(dels, entries[i].Line)
			i++
		}
		for i < n && entries[i].Op == lcs.Insert {
			inss = append(inss, entries[i].Line)
			i++
		}

		nc := min(len(dels), len(inss))
		for k := 0; k < nc; k++ {
			left = append(left, SideLine{TagChange, dels[k]})
			right = append(right, SideLine{TagChange, inss[k]})
		}
		for k := nc; k < len(dels); k++ {
			left = append(left, SideLine{TagAdd, dels[k]})
		}
		for k := nc; k < len(inss); k++ {
			right = append(right, SideLine{TagAdd, inss[k]})
		}
	}
	return left, right
}
