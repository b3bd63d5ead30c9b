package diff3

import (
	"bytes"
	"fmt"
)

// renderNormal implements spec.md §4.5's "Normal three-way" emitter.
func renderNormal(regions []Region, cfg Config) []byte {
	var buf bytes.Buffer
	for _, r := range regions {
		if !included(r, cfg.Mode) {
			continue
		}

		sep := "===="
		if r.Conflict == EasyConflict {
			switch r.EasySide {
			case 1:
				sep = "====1"
			case 3:
				sep = "====3"
			}
		}
		buf.WriteString(sep + "\n")

		writeNormalSubHeader(&buf, 1, r.MineStart, r.MineCount)
		writeNormalBody(&buf, r.MineLines, cfg)

		writeNormalSubHeader(&buf, 2, r.OlderStart, r.OlderCount)
		if r.Conflict != EasyConflict {
			writeNormalBody(&buf, r.OlderLines, cfg)
		}

		writeNormalSubHeader(&buf, 3, r.YoursStart, r.YoursCount)
		writeNormalBody(&buf, r.YoursLines, cfg)
	}
	return buf.Bytes()
}

func writeNormalSubHeader(buf *bytes.Buffer, side, start, count int) {
	if count == 0 {
		fmt.Fprintf(buf, "%d:%da\n", side, start)
		return
	}
	s1, e1 := start+1, start+count
	if s1 == e1 {
		fmt.Fprintf(buf, "%d:%dc\n", side, s1)
	} else {
		fmt.Fprintf(buf, "%d:%d,%dc\n", side, s1, e1)
	}
}

func writeNormalBody(buf *bytes.Buffer, lines []string, cfg Config) {
	prefix := "  "
	if cfg.InitialTab {
		prefix = "\t"
	}
	for _, l := range lines {
		buf.WriteString(prefix)
		buf.WriteString(l)
		buf.WriteByte('\n')
	}
}
