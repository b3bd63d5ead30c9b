package diff3

import (
	"bytes"
	"fmt"
)

// renderEd implements spec.md §4.5's "Ed script" emitter: commands in
// reverse region order, targeting mine's coordinates with yours' content.
func renderEd(regions []Region, cfg Config) []byte {
	var buf bytes.Buffer
	for i := len(regions) - 1; i >= 0; i-- {
		r := regions[i]
		if !included(r, cfg.Mode) {
			continue
		}

		if r.Conflict == OverlappingConflict && (cfg.Mode == ShowOverlapEd || cfg.Mode == All) {
			writeEdClosingMarkers(&buf, r.MineStart+r.MineCount, r.YoursLines, cfg.Labels)
			writeEdOpeningMarker(&buf, r.MineStart, cfg.Labels)
			continue
		}
		writeEdRegion(&buf, r.MineStart, r.MineCount, r.YoursLines)
	}
	if cfg.CompatI {
		buf.WriteString("w\n")
		buf.WriteString("q\n")
	}
	return buf.Bytes()
}

func writeEdRegion(buf *bytes.Buffer, start, count int, content []string) {
	switch {
	case count == 0:
		fmt.Fprintf(buf, "%da\n", start)
		writeEdContentBody(buf, content)
	case len(content) == 0:
		if count == 1 {
			fmt.Fprintf(buf, "%dd\n", start+1)
		} else {
			fmt.Fprintf(buf, "%d,%dd\n", start+1, start+count)
		}
	default:
		s1, e1 := start+1, start+count
		if s1 == e1 {
			fmt.Fprintf(buf, "%dc\n", s1)
		} else {
			fmt.Fprintf(buf, "%d,%dc\n", s1, e1)
		}
		writeEdContentBody(buf, content)
	}
}

func writeEdContentBody(buf *bytes.Buffer, lines []string) {
	for _, l := range lines {
		buf.WriteString(l)
		buf.WriteByte('\n')
	}
	buf.WriteString(".\n")
}

// writeEdClosingMarkers inserts the "=======" / yours-content / closing
// marker block after mine's range.
func writeEdClosingMarkers(buf *bytes.Buffer, afterLine int, yoursLines []string, labels [3]string) {
	fmt.Fprintf(buf, "%da\n", afterLine)
	buf.WriteString("=======\n")
	for _, l := range yoursLines {
		buf.WriteString(l)
		buf.WriteByte('\n')
	}
	fmt.Fprintf(buf, ">>>>>>> %s\n", label(labels[2], "yours"))
	buf.WriteString(".\n")
}

// writeEdOpeningMarker inserts the "<<<<<<<" opening marker before mine's
// range, using "0a" when the range starts at line 0 (spec.md §4.5).
func writeEdOpeningMarker(buf *bytes.Buffer, beforeLine int, labels [3]string) {
	fmt.Fprintf(buf, "%da\n", beforeLine)
	fmt.Fprintf(buf, "<<<<<<< %s\n", label(labels[0], "mine"))
	buf.WriteString(".\n")
}
