package emit

import (
	"strings"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// ExpandTabs replaces each '\t' in s with spaces up to the next multiple of
// tabsize, measured in display columns using Unicode grapheme-cluster width.
// Invalid UTF-8 falls back to counting one column per byte, per spec.md §4.4.
func ExpandTabs(s string, tabsize int) string {
	if tabsize <= 0 || !strings.Contains(s, "\t") {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	col := 0
	state := -1
	for len(s) > 0 {
		var cluster string
		var width int
		cluster, s, width, state = uniseg.FirstGraphemeClusterInString(s, state)
		if cluster == "\t" {
			n := tabsize - col%tabsize
			b.WriteString(strings.Repeat(" ", n))
			col += n
			continue
		}
		if width <= 0 {
			width = clusterWidth(cluster)
		}
		b.WriteString(cluster)
		col += width
	}
	return b.String()
}

func clusterWidth(s string) int {
	if !utf8.ValidString(s) {
		return len(s)
	}
	return uniseg.StringWidth(s)
}
