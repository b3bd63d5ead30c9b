// Package line implements the Line Splitter from spec.md §4.1: converting a
// byte buffer into an ordered sequence of lines plus a flag recording
// whether the buffer's last line lacked a trailing newline.
package line

import "strings"

// Set is the result of splitting one side of a diff input.
type Set struct {
	// Lines holds one entry per line, newline excluded.
	Lines []string
	// MissingTrailingNewline is true when the buffer was nonempty and did
	// not end in '\n'.
	MissingTrailingNewline bool
}

// Split divides buf into lines on '\n'. A single trailing empty element
// produced by a final '\n' is discarded; otherwise MissingTrailingNewline is
// set. Empty input yields zero lines and MissingTrailingNewline == false.
func Split(buf []byte) Set {
	if len(buf) == 0 {
		return Set{}
	}
	lines := strings.Split(string(buf), "\n")
	if lines[len(lines)-1] == "" {
		return Set{Lines: lines[:len(lines)-1]}
	}
	return Set{Lines: lines, MissingTrailingNewline: true}
}

// Join reconstructs the original buffer from a Set, the inverse of Split.
// Used to check the reconstructibility invariant in tests.
func Join(s Set) string {
	if len(s.Lines) == 0 {
		return ""
	}
	body := strings.Join(s.Lines, "\n")
	if s.MissingTrailingNewline {
		return body
	}
	return body + "\n"
}

// StripCR returns a copy of lines with a single trailing '\r' removed from
// any line that has one. It is used to build a comparison-only view of the
// lines when Config.StripTrailingCR is set; the original lines (with '\r'
// intact) remain the ones used for output.
func StripCR(lines []string) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		if strings.HasSuffix(l, "\r") {
			l = l[:len(l)-1]
		}
		out[i] = l
	}
	return out
}
