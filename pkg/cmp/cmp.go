// Package cmp implements the byte-level comparator that sits alongside the
// line-oriented diff engine: spec.md §1 calls it out by name as an external
// collaborator, not part of the CORE, but the driver still needs it to
// implement the `cmp` entry point described in spec.md §6.3. It is grounded
// on uutils/diffutils' cmp.rs: find the first byte (and line) at which two
// buffers diverge, or report that one is a prefix of the other.
package cmp

import "fmt"

// Result is the outcome of comparing two buffers byte by byte.
type Result struct {
	// Equal is true when both buffers matched completely.
	Equal bool
	// ByteOffset and LineNumber are 1-based positions of the first
	// differing byte, valid only when Equal is false and both buffers had
	// a byte at that offset.
	ByteOffset, LineNumber int
	// ShorterFileIsPrefix is true when one buffer is a strict prefix of
	// the other: no byte differs, but lengths differ.
	ShorterFileIsPrefix bool
	// LongerName identifies which of "first"/"second" is the longer
	// buffer when ShorterFileIsPrefix is true.
	LongerName string
}

// Bytes compares a and b, returning the position of their first divergence.
func Bytes(a, b []byte) Result {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	line := 1
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return Result{ByteOffset: i + 1, LineNumber: line}
		}
		if a[i] == '\n' {
			line++
		}
	}

	if len(a) == len(b) {
		return Result{Equal: true}
	}

	longer := "second"
	if len(a) > len(b) {
		longer = "first"
	}
	return Result{ShorterFileIsPrefix: true, LongerName: longer}
}

// String renders a Result the way GNU cmp's default (non-silent) mode does.
func (r Result) String() string {
	switch {
	case r.Equal:
		return ""
	case r.ShorterFileIsPrefix:
		return fmt.Sprintf("cmp: EOF on %s file", r.shorterName())
	default:
		return fmt.Sprintf("differ: byte %d, line %d", r.ByteOffset, r.LineNumber)
	}
}

func (r Result) shorterName() string {
	if r.LongerName == "first" {
		return "second"
	}
	return "first"
}
