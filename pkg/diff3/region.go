package diff3

import "github.com/gophersland/diffutils/pkg/hunk"

// correlate merges the mine↔older and older↔yours hunk lists into Regions
// by older-axis overlap, per spec.md §4.5 steps 6-7. Both hunk lists are
// already in ascending order (they come straight out of pkg/hunk.Build), so
// a single sweep with two cursors suffices.
func correlate(mineOlder, olderYours []hunk.Mismatch, mineLines, olderLines, yoursLines []string) []Region {
	var regions []Region
	// mineShift and yoursShift are how far mine's and yours' line indices
	// have drifted from older's after the hunks consumed so far; they place
	// the unchanged side of a one-sided region.
	mineShift, yoursShift := 0, 0
	i, j := 0, 0
	for i < len(mineOlder) || j < len(olderYours) {
		switch {
		case i < len(mineOlder) && (j >= len(olderYours) || olderEnd(mineOlder[i]) <= olderStartYours(olderYours[j])):
			a := mineOlder[i]
			r := mineOnlyRegion(a, mineLines, olderLines)
			r.YoursStart += yoursShift
			regions = append(regions, r)
			mineShift += a.ExpectedCount - a.ActualCount
			i++
		case j < len(olderYours) && (i >= len(mineOlder) || olderEndYours(olderYours[j]) <= olderStart(mineOlder[i])):
			b := olderYours[j]
			r := yoursOnlyRegion(b, olderLines, yoursLines)
			r.MineStart += mineShift
			regions = append(regions, r)
			yoursShift += b.ActualCount - b.ExpectedCount
			j++
		default:
			a := mineOlder[i]
			b := olderYours[j]
			regions = append(regions, bothChangedRegion(a, b, mineLines, olderLines, yoursLines))
			mineShift += a.ExpectedCount - a.ActualCount
			yoursShift += b.ActualCount - b.ExpectedCount
			i++
			j++
		}
	}
	return regions
}

// olderStart/olderEnd give the older-axis range of a mine↔older hunk, where
// older is the right-hand side; olderStartYours/olderEndYours give it for an
// older↔yours hunk, where older is the left-hand side.
func olderStart(h hunk.Mismatch) int      { return h.LineActual - 1 }
func olderEnd(h hunk.Mismatch) int        { return h.LineActual - 1 + h.ActualCount }
func olderStartYours(h hunk.Mismatch) int { return h.LineExpected - 1 }
func olderEndYours(h hunk.Mismatch) int   { return h.LineExpected - 1 + h.ExpectedCount }

func mineOnlyRegion(a hunk.Mismatch, mineLines, olderLines []string) Region {
	mineStart := a.LineExpected - 1
	olderStart := a.LineActual - 1
	return Region{
		MineStart: mineStart, MineCount: a.ExpectedCount,
		OlderStart: olderStart, OlderCount: a.ActualCount,
		YoursStart: olderStart, YoursCount: a.ActualCount,
		Conflict: EasyConflict,
		EasySide: 1,
		MineLines:  mineLines[mineStart : mineStart+a.ExpectedCount],
		OlderLines: olderLines[olderStart : olderStart+a.ActualCount],
		YoursLines: olderLines[olderStart : olderStart+a.ActualCount],
	}
}

func yoursOnlyRegion(b hunk.Mismatch, olderLines, yoursLines []string) Region {
	olderStart := b.LineExpected - 1
	yoursStart := b.LineActual - 1
	return Region{
		MineStart: olderStart, MineCount: b.ExpectedCount,
		OlderStart: olderStart, OlderCount: b.ExpectedCount,
		YoursStart: yoursStart, YoursCount: b.ActualCount,
		Conflict: EasyConflict,
		EasySide: 3,
		MineLines:  olderLines[olderStart : olderStart+b.ExpectedCount],
		OlderLines: olderLines[olderStart : olderStart+b.ExpectedCount],
		YoursLines: yoursLines[yoursStart : yoursStart+b.ActualCount],
	}
}

func bothChangedRegion(a, b hunk.Mismatch, mineLines, olderLines, yoursLines []string) Region {
	mineStart := a.LineExpected - 1
	olderStartA := a.LineActual - 1
	olderStartB := b.LineExpected - 1
	yoursStart := b.LineActual - 1

	olderStart := min(olderStartA, olderStartB)
	olderEndA := olderStartA + a.ActualCount
	olderEndB := olderStartB + b.ExpectedCount
	olderEnd := max(olderEndA, olderEndB)

	mineContent := mineLines[mineStart : mineStart+a.ExpectedCount]
	yoursContent := yoursLines[yoursStart : yoursStart+b.ActualCount]

	conflict := OverlappingConflict
	if linesEqual(mineContent, yoursContent) {
		conflict = NonOverlapping
	}

	return Region{
		MineStart: mineStart, MineCount: a.ExpectedCount,
		OlderStart: olderStart, OlderCount: olderEnd - olderStart,
		YoursStart: yoursStart, YoursCount: b.ActualCount,
		Conflict:   conflict,
		MineLines:  mineContent,
		OlderLines: olderLines[olderStart:olderEnd],
		YoursLines: yoursContent,
	}
}

func linesEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
