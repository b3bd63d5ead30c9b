package emit

import (
	"bytes"

	"github.com/gophersland/diffutils/pkg/diffcfg"
	"github.com/gophersland/diffutils/pkg/hunk"
	"github.com/gophersland/diffutils/pkg/lcs"
)

// Normal renders hunks in GNU diff's default format, per spec.md §4.4.1.
func Normal(hunks []hunk.Mismatch, cfg diffcfg.Config) []byte {
	if len(hunks) == 0 {
		return nil
	}
	if cfg.Brief {
		return []byte(normalHeader(hunks[0]))
	}

	var buf bytes.Buffer
	for _, h := range hunks {
		buf.WriteString(normalHeader(h))

		var dels, inss []lcs.Edit
		for _, e := range h.Entries {
			switch e.Op {
			case lcs.Delete:
				dels = append(dels, e)
			case lcs.Insert:
				inss = append(inss, e)
			}
		}

		for i, e := range dels {
			buf.WriteString("< ")
			writeBody(&buf, e.Line, cfg)
			buf.WriteByte('\n')
			if i == len(dels)-1 && h.ExpectedMissingNL {
				buf.WriteString(noNewlineMarker)
			}
		}
		if len(dels) > 0 && len(inss) > 0 {
			buf.WriteString("---\n")
		}
		for i, e := range inss {
			buf.WriteString("> ")
			writeBody(&buf, e.Line, cfg)
			buf.WriteByte('\n')
			if i == len(inss)-1 && h.ActualMissingNL {
				buf.WriteString(noNewlineMarker)
			}
		}
	}
	return buf.Bytes()
}

func normalHeader(h hunk.Mismatch) string {
	el, er := endpoints(h.LineExpected, h.ExpectedCount)
	al, ar := endpoints(h.LineActual, h.ActualCount)

	var op byte
	switch {
	case h.ExpectedCount == 0:
		op = 'a'
	case h.ActualCount == 0:
		op = 'd'
	default:
		op = 'c'
	}
	return formatRange(el, er) + string(op) + formatRange(al, ar) + "\n"
}
