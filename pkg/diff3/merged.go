package diff3

import (
	"bytes"
	"fmt"
)

// renderMerged implements spec.md §4.5's "Merged with markers" emitter: it
// walks mine's content, substituting each included conflict region.
func renderMerged(mineLines []string, regions []Region, cfg Config) []byte {
	var buf bytes.Buffer
	cursor := 0

	for _, r := range regions {
		if r.MineStart > cursor {
			writePlain(&buf, mineLines[cursor:r.MineStart])
		}
		cursor = r.MineStart + r.MineCount

		if !included(r, cfg.Mode) {
			writePlain(&buf, r.MineLines)
			continue
		}

		switch r.Conflict {
		case EasyConflict:
			if r.EasySide == 1 {
				writePlain(&buf, r.MineLines)
			} else {
				writePlain(&buf, r.YoursLines)
			}
		case NonOverlapping:
			writePlain(&buf, r.MineLines)
		case OverlappingConflict:
			writeMergedConflict(&buf, r, cfg)
		}
	}

	if cursor < len(mineLines) {
		writePlain(&buf, mineLines[cursor:])
	}
	return buf.Bytes()
}

func writeMergedConflict(buf *bytes.Buffer, r Region, cfg Config) {
	if cfg.Mode == OverlapOnly || cfg.Mode == OverlapOnlyMarked {
		writePlain(buf, r.YoursLines)
		return
	}

	fmt.Fprintf(buf, "<<<<<<< %s\n", label(cfg.Labels[0], "mine"))
	writePlain(buf, r.MineLines)
	if cfg.Format == ShowOverlap || cfg.Mode == All {
		fmt.Fprintf(buf, "||||||| %s\n", label(cfg.Labels[1], "older"))
		writePlain(buf, r.OlderLines)
	}
	buf.WriteString("=======\n")
	writePlain(buf, r.YoursLines)
	fmt.Fprintf(buf, ">>>>>>> %s\n", label(cfg.Labels[2], "yours"))
}

func writePlain(buf *bytes.Buffer, lines []string) {
	for _, l := range lines {
		buf.WriteString(l)
		buf.WriteByte('\n')
	}
}
