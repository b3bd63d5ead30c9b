package emit

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/gophersland/diffutils/pkg/diffcfg"
	"github.com/gophersland/diffutils/pkg/hunk"
	"github.com/gophersland/diffutils/pkg/lcs"
)

// Unified renders hunks in unified-diff format, per spec.md §4.4.2.
func Unified(hunks []hunk.Mismatch, cfg diffcfg.Config) []byte {
	if cfg.Brief {
		if len(hunks) == 0 {
			return nil
		}
		return unifiedFileHeader(cfg)
	}
	if len(hunks) == 0 {
		return nil
	}

	var buf bytes.Buffer
	buf.Write(unifiedFileHeader(cfg))
	for _, h := range hunks {
		writeUnifiedHunk(&buf, h, cfg)
	}
	return buf.Bytes()
}

func unifiedFileHeader(cfg diffcfg.Config) []byte {
	return []byte(fmt.Sprintf("--- %s\t%s\n+++ %s\t%s\n", cfg.From, cfg.FromMTime, cfg.To, cfg.ToMTime))
}

// unifiedCoord renders one side of an "@@ ... @@" hunk header: the count
// suffix is omitted when count == 1, and a zero count uses the point-before
// line number with no suffix at all.
func unifiedCoord(lineStart, count int) string {
	switch count {
	case 0:
		return strconv.Itoa(lineStart - 1)
	case 1:
		return strconv.Itoa(lineStart)
	default:
		return fmt.Sprintf("%d,%d", lineStart, count)
	}
}

func writeUnifiedHunk(buf *bytes.Buffer, h hunk.Mismatch, cfg diffcfg.Config) {
	fmt.Fprintf(buf, "@@ -%s +%s @@\n",
		unifiedCoord(h.LineExpected, h.ExpectedCount),
		unifiedCoord(h.LineActual, h.ActualCount))

	lastLeft, lastRight := -1, -1
	for i, e := range h.Entries {
		if e.Op != lcs.Insert {
			lastLeft = i
		}
		if e.Op != lcs.Delete {
			lastRight = i
		}
	}

	for i, e := range h.Entries {
		var prefix byte
		switch e.Op {
		case lcs.Keep:
			prefix = ' '
		case lcs.Delete:
			prefix = '-'
		case lcs.Insert:
			prefix = '+'
		}
		buf.WriteByte(prefix)
		writeBody(buf, e.Line, cfg)
		buf.WriteByte('\n')
		if e.Op != lcs.Insert && i == lastLeft && h.ExpectedMissingNL {
			buf.WriteString(noNewlineMarker)
		}
		if e.Op != lcs.Delete && i == lastRight && h.ActualMissingNL {
			buf.WriteString(noNewlineMarker)
		}
	}
}
