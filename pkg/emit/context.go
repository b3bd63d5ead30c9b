package emit

import (
	"bytes"
	"fmt"

	"github.com/gophersland/diffutils/pkg/diffcfg"
	"github.com/gophersland/diffutils/pkg/hunk"
)

// Context renders hunks in GNU diff's -c context format, per spec.md §4.4.3.
func Context(hunks []hunk.Mismatch, cfg diffcfg.Config) []byte {
	if len(hunks) == 0 {
		return nil
	}
	if cfg.Brief {
		return contextFileHeader(cfg)
	}

	var buf bytes.Buffer
	buf.Write(contextFileHeader(cfg))
	for _, h := range hunks {
		buf.WriteString("***************\n")
		writeContextHunk(&buf, h, cfg)
	}
	return buf.Bytes()
}

func contextFileHeader(cfg diffcfg.Config) []byte {
	return []byte(fmt.Sprintf("*** %s\t\n--- %s\t\n", cfg.From, cfg.To))
}

func writeContextHunk(buf *bytes.Buffer, h hunk.Mismatch, cfg diffcfg.Config) {
	el, er := endpoints(h.LineExpected, h.ExpectedCount)
	al, ar := endpoints(h.LineActual, h.ActualCount)
	left, right := h.ContextSides()

	fmt.Fprintf(buf, "*** %s ****\n", formatRange(el, er))
	if !h.ExpectedAllContext {
		writeContextSide(buf, left, h.ExpectedMissingNL, cfg, contextLeftPrefix)
	}

	fmt.Fprintf(buf, "--- %s ----\n", formatRange(al, ar))
	if !h.ActualAllContext {
		writeContextSide(buf, right, h.ActualMissingNL, cfg, contextRightPrefix)
	}
}

func contextLeftPrefix(t hunk.LineTag) string {
	switch t {
	case hunk.TagChange:
		return "! "
	case hunk.TagAdd:
		return "- "
	default:
		return "  "
	}
}

func contextRightPrefix(t hunk.LineTag) string {
	switch t {
	case hunk.TagChange:
		return "! "
	case hunk.TagAdd:
		return "+ "
	default:
		return "  "
	}
}

func writeContextSide(buf *bytes.Buffer, lines []hunk.SideLine, missingNL bool, cfg diffcfg.Config, prefix func(hunk.LineTag) string) {
	for i, l := range lines {
		buf.WriteString(prefix(l.Tag))
		writeBody(buf, l.Text, cfg)
		buf.WriteByte('\n')
		if i == len(lines)-1 && missingNL {
			buf.WriteString(noNewlineMarker)
		}
	}
}
