// Package diffcfg holds the configuration knobs consumed by the pairwise and
// three-way diff engines. It carries no behavior of its own: its fields are
// read by pkg/diff (comparison transforms, context size) and by the
// emitters (format options, header names), as described in spec.md §4.6;
// ReportIdenticalFiles, InitialTab and StdinPath are read by neither.
package diffcfg

// Format selects a pairwise emitter.
type Format int

const (
	Normal Format = iota
	Unified
	Context
	Ed
)

func (f Format) String() string {
	switch f {
	case Normal:
		return "normal"
	case Unified:
		return "unified"
	case Context:
		return "context"
	case Ed:
		return "ed"
	default:
		return "unknown"
	}
}

// DefaultContext is the number of context lines used by unified/context
// formats when Config.Context is not set explicitly.
const DefaultContext = 3

// Config is the configuration record threaded through line splitting, hunk
// building, and emission for a single pairwise diff invocation.
type Config struct {
	Format Format

	// Context is the number of unchanged lines shown around each change in
	// unified/context formats, when ContextSet is true. Ignored by Normal
	// and Ed.
	Context int

	// ContextSet distinguishes an explicitly requested Context (including
	// an explicit 0, GNU diff's -U0/-C0) from "not specified, use the
	// format's default". EffectiveContext consults this rather than
	// treating a zero Context as unset.
	ContextSet bool

	// Brief short-circuits the emitter to minimal output: empty if the
	// inputs are equal, the file header only (unified) or a single NUL byte
	// (ed) otherwise.
	Brief bool

	// ReportIdenticalFiles is read by the driver, never by the core.
	ReportIdenticalFiles bool

	// ExpandTabs and TabSize control tab expansion of body lines. Tab
	// expansion never applies to header/range syntax.
	ExpandTabs bool
	TabSize    int

	// StripTrailingCR removes one trailing '\r' per line before comparison
	// (not before output) when set.
	StripTrailingCR bool

	// Normalize, when set, rewrites each line before comparison only
	// (--ignore-space-change / --ignore-all-space style transforms); the
	// emitted hunks still carry the untouched original text.
	Normalize func(string) string

	// InitialTab prefixes body lines with a tab instead of the format's
	// usual two-character marker column, used by some emitters' callers;
	// unused by the pairwise emitters in this spec (three-way only) but
	// kept here for symmetry with diff3.Config.
	InitialTab bool

	// From, To are the display names used in unified/context file headers.
	From, To string
	// StdinPath names the file standing in for stdin ("-"). Nothing in this
	// module reads it: the header timestamps are FromMTime/ToMTime as given,
	// whatever From or To is.
	StdinPath string

	// FromMTime, ToMTime are the preformatted timestamp strings placed in
	// unified file headers; the context header carries no timestamp.
	// Formatting the clock value is a driver
	// concern (spec.md §2, "shared helpers"); the core only ever embeds
	// whatever string it is handed here.
	FromMTime, ToMTime string
}

// EffectiveContext returns cfg.Context, defaulting to DefaultContext when
// ContextSet is false. An explicitly set negative Context is clamped to 0;
// an explicit 0 (-U0/-C0) is returned as-is.
func (cfg Config) EffectiveContext() int {
	if !cfg.ContextSet {
		return DefaultContext
	}
	if cfg.Context < 0 {
		return 0
	}
	return cfg.Context
}

// EffectiveTabSize returns cfg.TabSize, defaulting to 8.
func (cfg Config) EffectiveTabSize() int {
	if cfg.TabSize <= 0 {
		return 8
	}
	return cfg.TabSize
}
