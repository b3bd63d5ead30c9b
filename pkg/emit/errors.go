package emit

import "errors"

// ErrMissingNewline is returned by Ed when either input buffer lacks a
// trailing newline: ed's script format has no way to represent that, per
// spec.md §4.4.4/§7.
var ErrMissingNewline = errors.New("emit: missing trailing newline")
