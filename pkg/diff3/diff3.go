// Package diff3 implements the Three-Way Merge Engine from spec.md §4.5: it
// takes three buffers (mine, older, yours), computes two pairwise diffs
// (mine↔older and older↔yours), correlates them into conflict regions, and
// renders one of three three-way formats (normal, merged-with-markers, ed
// script).
//
// The region-correlation approach — extract contiguous hunks from each
// pairwise diff, then merge by older-axis overlap — is grounded on
// odvcencio/got's diff3 chunk-building/merging pass; region extraction
// itself reuses pkg/hunk.Build with zero context, since a diff3 "hunk" is
// exactly a contiguous non-Keep run.
package diff3

import (
	"bytes"
	"fmt"

	"github.com/gophersland/diffutils/pkg/hunk"
	"github.com/gophersland/diffutils/pkg/lcs"
	"github.com/gophersland/diffutils/pkg/line"
)

// Conflict classifies a Region, per spec.md §3.
type Conflict int

const (
	NoConflict Conflict = iota
	NonOverlapping
	EasyConflict
	OverlappingConflict
)

// Format selects a three-way emitter.
type Format int

const (
	Normal Format = iota
	Merged
	Ed
	ShowOverlap
)

// OutputMode narrows which regions a format renders, per spec.md §4.5.
type OutputMode int

const (
	All OutputMode = iota
	EdScript
	ShowOverlapEd
	OverlapOnly
	OverlapOnlyMarked
	EasyOnly
)

// Config is the three-way configuration record from spec.md §4.6.
type Config struct {
	Format          Format
	Mode            OutputMode
	Text            bool
	StripTrailingCR bool
	Labels          [3]string
	InitialTab      bool
	CompatI         bool
}

// Region is a correlated conflict region, per spec.md §3. Starts are
// 0-based; counts are in lines.
type Region struct {
	MineStart, MineCount   int
	OlderStart, OlderCount int
	YoursStart, YoursCount int
	Conflict               Conflict

	// EasySide is 1 or 3 when Conflict == EasyConflict, identifying which
	// of mine/yours changed; 0 otherwise.
	EasySide int

	MineLines, OlderLines, YoursLines []string
}

// Diff3 runs the full three-way pipeline, returning the rendered output and
// whether it should be treated as "has conflicts" for exit-code purposes
// (spec.md §4.5, exit classification).
func Diff3(mine, older, yours []byte, cfg Config) ([]byte, bool, error) {
	if bytes.Equal(mine, older) && bytes.Equal(older, yours) {
		return nil, false, nil
	}

	if !cfg.Text {
		if out, conflicts, ok := binaryShortCircuit(mine, older, yours, cfg); ok {
			return out, conflicts, nil
		}
	}

	mineSet := line.Split(mine)
	olderSet := line.Split(older)
	yoursSet := line.Split(yours)

	mineLines, olderLines1, olderLines2, yoursLines := mineSet.Lines, olderSet.Lines, olderSet.Lines, yoursSet.Lines
	if cfg.StripTrailingCR {
		mineLines = line.StripCR(mineLines)
		olderLines1 = line.StripCR(olderLines1)
		olderLines2 = line.StripCR(olderLines2)
		yoursLines = line.StripCR(yoursLines)
	}

	edits1, err := lcs.Edits(mineLines, olderLines1)
	if err != nil {
		return nil, false, err
	}
	edits2, err := lcs.Edits(olderLines2, yoursLines)
	if err != nil {
		return nil, false, err
	}

	if cfg.StripTrailingCR {
		edits1 = restoreText(edits1, mineSet.Lines, olderSet.Lines)
		edits2 = restoreText(edits2, olderSet.Lines, yoursSet.Lines)
	}

	mineOlderHunks := hunk.Build(mineSet.Lines, olderSet.Lines, edits1, false, false, 0)
	olderYoursHunks := hunk.Build(olderSet.Lines, yoursSet.Lines, edits2, false, false, 0)

	regions := correlate(mineOlderHunks, olderYoursHunks, mineSet.Lines, olderSet.Lines, yoursSet.Lines)

	var out []byte
	switch cfg.Format {
	case Normal:
		out = renderNormal(regions, cfg)
	case Merged, ShowOverlap:
		out = renderMerged(mineSet.Lines, regions, cfg)
	case Ed:
		out = renderEd(regions, cfg)
	}

	return out, classify(regions, cfg), nil
}

// binaryShortCircuit mirrors the original source's per-pair gating: a pair
// only produces a "Binary files … differ" line when both of its sides are
// binary (and unequal), not merely when some side somewhere is binary.
func binaryShortCircuit(mine, older, yours []byte, cfg Config) ([]byte, bool, bool) {
	mineBin, olderBin, yoursBin := isBinary(mine), isBinary(older), isBinary(yours)
	if !mineBin && !olderBin && !yoursBin {
		return nil, false, false
	}

	var buf bytes.Buffer
	differed := false
	if mineBin && olderBin && !bytes.Equal(mine, older) {
		fmt.Fprintf(&buf, "Binary files %s and %s differ\n", label(cfg.Labels[0], "mine"), label(cfg.Labels[1], "older"))
		differed = true
	}
	if olderBin && yoursBin && !bytes.Equal(older, yours) {
		fmt.Fprintf(&buf, "Binary files %s and %s differ\n", label(cfg.Labels[1], "older"), label(cfg.Labels[2], "yours"))
		differed = true
	}
	if mineBin && yoursBin && !bytes.Equal(mine, yours) {
		fmt.Fprintf(&buf, "Binary files %s and %s differ\n", label(cfg.Labels[0], "mine"), label(cfg.Labels[2], "yours"))
		differed = true
	}
	return buf.Bytes(), differed, true
}

// isBinary applies spec.md §4.5's detection rule: a NUL in the first 8 KiB,
// or more than 30% of the first 512 bytes falling in the C0-control range
// (excluding bytes 9-13: tab, LF, VT, FF, CR) or DEL.
func isBinary(b []byte) bool {
	n := len(b)
	if n > 8192 {
		n = 8192
	}
	if bytes.IndexByte(b[:n], 0) >= 0 {
		return true
	}

	m := len(b)
	if m > 512 {
		m = 512
	}
	if m == 0 {
		return false
	}
	ctrl := 0
	for _, c := range b[:m] {
		if c <= 8 || (c >= 14 && c <= 31) || c == 127 {
			ctrl++
		}
	}
	return float64(ctrl)/float64(m) > 0.30
}

// restoreText swaps edits' line content back to the untouched (un-stripped)
// text after comparing against CR-stripped views, mirroring pkg/diff's own
// restoreOriginalText.
func restoreText(edits []lcs.Edit, left, right []string) []lcs.Edit {
	out := make([]lcs.Edit, len(edits))
	for i, e := range edits {
		switch e.Op {
		case lcs.Delete, lcs.Keep:
			e.Line = left[e.L]
		case lcs.Insert:
			e.Line = right[e.R]
		}
		out[i] = e
	}
	return out
}

func label(l, def string) string {
	if l != "" {
		return l
	}
	return def
}

// classify computes the "has conflicts" exit-classification rule from
// spec.md §4.5.
func classify(regions []Region, cfg Config) bool {
	switch cfg.Format {
	case Merged:
		if cfg.Mode == OverlapOnly || cfg.Mode == OverlapOnlyMarked {
			return false
		}
		for _, r := range regions {
			if r.Conflict == EasyConflict || r.Conflict == OverlappingConflict {
				return true
			}
		}
		return false
	case ShowOverlap:
		for _, r := range regions {
			if r.Conflict == OverlappingConflict {
				return true
			}
		}
		return false
	case Ed:
		if cfg.Mode == ShowOverlapEd || cfg.Mode == All {
			for _, r := range regions {
				if r.Conflict == OverlappingConflict {
					return true
				}
			}
		}
		return false
	default: // Normal
		return false
	}
}

// included reports whether a region should be rendered under cfg.Mode, per
// the region-inclusion table in spec.md §4.5.
func included(r Region, mode OutputMode) bool {
	if r.Conflict == NoConflict {
		return false
	}
	switch mode {
	case OverlapOnly, OverlapOnlyMarked:
		return r.Conflict == OverlappingConflict
	case EasyOnly:
		return r.Conflict == EasyConflict || r.Conflict == NonOverlapping
	default: // All, EdScript, ShowOverlapEd
		return true
	}
}
