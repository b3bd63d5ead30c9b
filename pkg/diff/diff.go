// Package diff is the pairwise diff facade described in spec.md §6.2: it
// wires the line splitter, LCS engine, hunk builder, and the four emitters
// into the single `diff_pairwise(left, right, cfg) -> bytes` entry point.
package diff

import (
	"bytes"

	"github.com/gophersland/diffutils/pkg/diffcfg"
	"github.com/gophersland/diffutils/pkg/emit"
	"github.com/gophersland/diffutils/pkg/hunk"
	"github.com/gophersland/diffutils/pkg/lcs"
	"github.com/gophersland/diffutils/pkg/line"
)

// Pairwise runs the full pipeline for two byte buffers under cfg. It is the
// Go rendering of spec.md §6.2's diff_pairwise.
func Pairwise(left, right []byte, cfg diffcfg.Config) ([]byte, error) {
	// Byte-identical inputs always produce an empty diff; short-circuit
	// before the line splitter and the LCS search, which would just
	// rediscover this after more work. The ed format's missing-newline
	// refusal is a property of the inputs, not the diff, so it still has
	// to fire here even though there are no hunks to report.
	if bytes.Equal(left, right) {
		if cfg.Format == diffcfg.Ed && len(left) > 0 && left[len(left)-1] != '\n' {
			return nil, emit.ErrMissingNewline
		}
		return nil, nil
	}

	leftSet := line.Split(left)
	rightSet := line.Split(right)

	leftLines, rightLines := leftSet.Lines, rightSet.Lines
	if cfg.StripTrailingCR {
		leftLines = line.StripCR(leftLines)
		rightLines = line.StripCR(rightLines)
	}
	if cfg.Normalize != nil {
		leftLines = normalizeAll(leftLines, cfg.Normalize)
		rightLines = normalizeAll(rightLines, cfg.Normalize)
	}

	edits, err := lcs.Edits(leftLines, rightLines)
	if err != nil {
		return nil, err
	}

	if cfg.Format == diffcfg.Ed && !lcs.AnyChange(edits) {
		// Still need to honor the missing-newline refusal even with no
		// hunks, since that's a property of the inputs, not the diff.
		if leftSet.MissingTrailingNewline || rightSet.MissingTrailingNewline {
			return nil, emit.ErrMissingNewline
		}
		return nil, nil
	}

	context := 0
	switch cfg.Format {
	case diffcfg.Unified, diffcfg.Context:
		context = cfg.EffectiveContext()
	}

	// StripTrailingCR/Normalize only affect comparison; the hunk builder and
	// emitters must still see the original line content so it's preserved
	// on output. Swap the transformed text back in by the index each edit
	// already carries.
	if cfg.StripTrailingCR || cfg.Normalize != nil {
		edits = restoreOriginalText(edits, leftSet.Lines, rightSet.Lines)
	}

	hunks := hunk.Build(leftSet.Lines, rightSet.Lines, edits, leftSet.MissingTrailingNewline, rightSet.MissingTrailingNewline, context)

	switch cfg.Format {
	case diffcfg.Normal:
		return emit.Normal(hunks, cfg), nil
	case diffcfg.Unified:
		return emit.Unified(hunks, cfg), nil
	case diffcfg.Context:
		return emit.Context(hunks, cfg), nil
	case diffcfg.Ed:
		return emit.Ed(hunks, leftSet.MissingTrailingNewline, rightSet.MissingTrailingNewline, cfg)
	default:
		return emit.Unified(hunks, cfg), nil
	}
}

func normalizeAll(lines []string, fn func(string) string) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = fn(l)
	}
	return out
}

// restoreOriginalText swaps each edit's Line back to the untouched (not
// CR-stripped/normalized) text from the original line sets, keeping the L/R
// indices produced by comparing the transformed view.
func restoreOriginalText(edits []lcs.Edit, left, right []string) []lcs.Edit {
	out := make([]lcs.Edit, len(edits))
	for i, e := range edits {
		switch e.Op {
		case lcs.Delete:
			e.Line = left[e.L]
		case lcs.Insert:
			e.Line = right[e.R]
		case lcs.Keep:
			e.Line = left[e.L]
		}
		out[i] = e
	}
	return out
}

// Identical reports whether left and right would produce an empty diff under
// the hunk builder's comparison rules (trailing-newline presence included).
// Pairwise does not call it (its short-circuit is a plain byte comparison),
// and neither does the driver's -s handling, which checks for empty output.
func Identical(left, right []byte) bool {
	leftSet := line.Split(left)
	rightSet := line.Split(right)
	if leftSet.MissingTrailingNewline != rightSet.MissingTrailingNewline {
		return false
	}
	if len(leftSet.Lines) != len(rightSet.Lines) {
		return false
	}
	for i := range leftSet.Lines {
		if leftSet.Lines[i] != rightSet.Lines[i] {
			return false
		}
	}
	return true
}
