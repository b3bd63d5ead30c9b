package emit

import (
	"testing"

	"github.com/gophersland/diffutils/pkg/diffcfg"
	"github.com/gophersland/diffutils/pkg/hunk"
	"github.com/gophersland/diffutils/pkg/lcs"
	"github.com/gophersland/diffutils/pkg/line"
	"github.com/stretchr/testify/require"
)

func buildHunks(t *testing.T, left, right string, context int) ([]hunk.Mismatch, line.Set, line.Set) {
	t.Helper()
	ls := line.Split([]byte(left))
	rs := line.Split([]byte(right))
	edits, err := lcs.Edits(ls.Lines, rs.Lines)
	require.NoError(t, err)
	return hunk.Build(ls.Lines, rs.Lines, edits, ls.MissingTrailingNewline, rs.MissingTrailingNewline, context), ls, rs
}

// S1. Unified one-line change.
func TestUnified_S1(t *testing.T) {
	hunks, _, _ := buildHunks(t, "a\n", "b\n", 3)
	cfg := diffcfg.Config{Format: diffcfg.Unified, Context: 3, From: "foo", To: "bar"}
	got := Unified(hunks, cfg)

	want := "--- foo\t\n+++ bar\t\n@@ -1 +1 @@\n-a\n+b\n"
	require.Equal(t, want, string(got))
}

// S2. Normal single-line add.
func TestNormal_S2(t *testing.T) {
	hunks, _, _ := buildHunks(t, "a\nb\n", "a\nb\nc\n", 0)
	got := Normal(hunks, diffcfg.Config{Format: diffcfg.Normal})
	require.Equal(t, "2a3\n> c\n", string(got))
}

// S3. Ed delete of middle line.
func TestEd_S3(t *testing.T) {
	hunks, ls, rs := buildHunks(t, "a\nb\nc\n", "a\nc\n", 0)
	got, err := Ed(hunks, ls.MissingTrailingNewline, rs.MissingTrailingNewline, diffcfg.Config{Format: diffcfg.Ed})
	require.NoError(t, err)
	require.Equal(t, "2d\n", string(got))
}

// S4. Context with change + add on last line missing newline.
func TestContext_S4(t *testing.T) {
	hunks, _, _ := buildHunks(t, "a\nb\n", "a\nb", 3)
	cfg := diffcfg.Config{Format: diffcfg.Context, Context: 3, From: "foo", To: "bar"}
	got := string(Context(hunks, cfg))

	require.Contains(t, got, "! b\n\\ No newline at end of file\n")
}

func TestNormal_Empty(t *testing.T) {
	hunks, _, _ := buildHunks(t, "same\n", "same\n", 0)
	require.Nil(t, Normal(hunks, diffcfg.Config{}))
}

func TestUnified_Empty(t *testing.T) {
	hunks, _, _ := buildHunks(t, "same\n", "same\n", 3)
	require.Nil(t, Unified(hunks, diffcfg.Config{From: "a", To: "b"}))
}

func TestUnified_Brief(t *testing.T) {
	hunks, _, _ := buildHunks(t, "a\n", "b\n", 3)
	cfg := diffcfg.Config{Brief: true, From: "a", To: "b"}
	got := Unified(hunks, cfg)
	require.NotEmpty(t, got)
	require.Equal(t, "--- a\t\n+++ b\t\n", string(got))

	same, _, _ := buildHunks(t, "a\n", "a\n", 3)
	require.Nil(t, Unified(same, cfg))
}

func TestEd_MissingNewlineRefused(t *testing.T) {
	hunks, _, _ := buildHunks(t, "a\nb", "a\nc", 0)
	_, err := Ed(hunks, true, false, diffcfg.Config{})
	require.ErrorIs(t, err, ErrMissingNewline)
}

func TestEd_Brief(t *testing.T) {
	hunks, ls, rs := buildHunks(t, "a\n", "b\n", 0)
	got, err := Ed(hunks, ls.MissingTrailingNewline, rs.MissingTrailingNewline, diffcfg.Config{Brief: true})
	require.NoError(t, err)
	require.Equal(t, []byte{0}, got)
}

func TestEd_EscapesLoneDotLine(t *testing.T) {
	hunks, ls, rs := buildHunks(t, "a\n", "a\n.\n", 0)
	got, err := Ed(hunks, ls.MissingTrailingNewline, rs.MissingTrailingNewline, diffcfg.Config{})
	require.NoError(t, err)
	require.Equal(t, "1a\n..\n.\ns/.//\na\n.\n", string(got))
}

// The resume command after `s/.//` must be unconditional: when the escaped
// "." line isn't the last line of the body, a missing "a\n" here leaves ed
// out of append mode for the rest of the script.
func TestEd_EscapesLoneDotLineNotLast(t *testing.T) {
	hunks, ls, rs := buildHunks(t, "a\n", "a\n.\nzzz\n", 0)
	got, err := Ed(hunks, ls.MissingTrailingNewline, rs.MissingTrailingNewline, diffcfg.Config{})
	require.NoError(t, err)
	require.Equal(t, "1a\n..\n.\ns/.//\na\nzzz\n.\n", string(got))
}

func TestContext_PureAddAllContextOnExpectedSide(t *testing.T) {
	hunks, _, _ := buildHunks(t, "a\nb\n", "a\nx\nb\n", 3)
	cfg := diffcfg.Config{From: "a", To: "b"}
	got := string(Context(hunks, cfg))
	require.Contains(t, got, "*** 1,2 ****\n")
	require.NotContains(t, got, "! x")
	require.Contains(t, got, "+ x\n")
}

func TestNormal_Brief(t *testing.T) {
	hunks, _, _ := buildHunks(t, "a\n", "b\n", 0)
	got := Normal(hunks, diffcfg.Config{Brief: true})
	require.Equal(t, "1c1\n", string(got))

	same, _, _ := buildHunks(t, "a\n", "a\n", 0)
	require.Nil(t, Normal(same, diffcfg.Config{Brief: true}))
}

func TestExpandTabs(t *testing.T) {
	require.Equal(t, "        x", ExpandTabs("\tx", 8))
	require.Equal(t, "ab      x", ExpandTabs("ab\tx", 8))
	require.Equal(t, "no tabs", ExpandTabs("no tabs", 8))
}
