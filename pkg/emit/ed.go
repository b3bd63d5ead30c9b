package emit

import (
	"bytes"
	"fmt"

	"github.com/gophersland/diffutils/pkg/diffcfg"
	"github.com/gophersland/diffutils/pkg/hunk"
	"github.com/gophersland/diffutils/pkg/lcs"
)

// Ed renders hunks as a script for the line editor `ed`, per spec.md §4.4.4.
// Commands are emitted in descending order of expected-line position so that
// earlier commands don't perturb the line numbers later ones target.
func Ed(hunks []hunk.Mismatch, leftMissingNL, rightMissingNL bool, cfg diffcfg.Config) ([]byte, error) {
	if leftMissingNL || rightMissingNL {
		return nil, ErrMissingNewline
	}
	if len(hunks) == 0 {
		return nil, nil
	}
	if cfg.Brief {
		return []byte{0}, nil
	}

	var buf bytes.Buffer
	for i := len(hunks) - 1; i >= 0; i-- {
		writeEdHunk(&buf, hunks[i], cfg)
	}
	return buf.Bytes(), nil
}

func writeEdHunk(buf *bytes.Buffer, h hunk.Mismatch, cfg diffcfg.Config) {
	el, er := endpoints(h.LineExpected, h.ExpectedCount)

	var inserted []string
	for _, e := range h.Entries {
		if e.Op == lcs.Insert {
			inserted = append(inserted, e.Line)
		}
	}

	switch {
	case h.ExpectedCount == 0:
		fmt.Fprintf(buf, "%da\n", el)
		writeEdBody(buf, inserted, cfg)
	case h.ActualCount == 0:
		fmt.Fprintf(buf, "%sd\n", formatRange(el, er))
	default:
		fmt.Fprintf(buf, "%sc\n", formatRange(el, er))
		writeEdBody(buf, inserted, cfg)
	}
}

// writeEdBody writes an insert/change body, terminated by a lone "." line.
// A body line whose content is exactly "." can't be written as-is (it would
// be read by ed as the end of input mode): it is instead written as a
// doubled ".." line, closed early, stripped back down to a single "." with
// `s/.//`, then unconditionally resumed with `a` — even if it was the last
// body line — since `s/.//` always leaves append mode closed, per spec.md
// §4.4.4.
func writeEdBody(buf *bytes.Buffer, lines []string, cfg diffcfg.Config) {
	for _, l := range lines {
		if cfg.ExpandTabs {
			l = ExpandTabs(l, cfg.EffectiveTabSize())
		}
		if l == "." {
			buf.WriteString("..\n")
			buf.WriteString(".\n")
			buf.WriteString("s/.//\n")
			buf.WriteString("a\n")
			continue
		}
		buf.WriteString(l)
		buf.WriteByte('\n')
	}
	buf.WriteString(".\n")
}
