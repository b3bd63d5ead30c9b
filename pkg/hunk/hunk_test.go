package hunk

import (
	"testing"

	"github.com/gophersland/diffutils/pkg/lcs"
	"github.com/stretchr/testify/require"
)

func edits(t *testing.T, left, right []string) []lcs.Edit {
	t.Helper()
	e, err := lcs.Edits(left, right)
	require.NoError(t, err)
	return e
}

func TestBuild_NoContext_GroupsOnlyChanges(t *testing.T) {
	left := []string{"a", "b", "c", "d", "e"}
	right := []string{"a", "x", "c", "d", "y"}
	e := edits(t, left, right)

	hunks := Build(left, right, e, false, false, 0)
	require.Len(t, hunks, 2)

	require.Equal(t, 2, hunks[0].LineExpected)
	require.Equal(t, 2, hunks[0].LineActual)
	require.Equal(t, 1, hunks[0].ExpectedCount)
	require.Equal(t, 1, hunks[0].ActualCount)

	require.Equal(t, 5, hunks[1].LineExpected)
	require.Equal(t, 5, hunks[1].LineActual)
}

func TestBuild_WithContext_MergesNearbyChanges(t *testing.T) {
	left := []string{"1", "2", "3", "4", "5", "6", "7", "8", "9"}
	right := []string{"1", "x", "3", "4", "5", "6", "7", "y", "9"}
	e := edits(t, left, right)

	hunks := Build(left, right, e, false, false, 3)
	require.Len(t, hunks, 1, "changes 6 lines apart with context 3 should merge into one hunk")
	require.Equal(t, 1, hunks[0].LineExpected)
	require.Equal(t, 9, hunks[0].ExpectedCount)
}

func TestBuild_WithContext_SeparateWhenFarApart(t *testing.T) {
	left := make([]string, 20)
	right := make([]string, 20)
	for i := range left {
		left[i] = "same"
		right[i] = "same"
	}
	left[0], right[0] = "a0", "b0"
	left[19], right[19] = "a19", "b19"
	e := edits(t, left, right)

	hunks := Build(left, right, e, false, false, 3)
	require.Len(t, hunks, 2)
}

func TestBuild_PureInsert_ZeroExpectedCount(t *testing.T) {
	left := []string{"a", "b"}
	right := []string{"a", "x", "b"}
	e := edits(t, left, right)

	hunks := Build(left, right, e, false, false, 0)
	require.Len(t, hunks, 1)
	h := hunks[0]
	require.Equal(t, 0, h.ExpectedCount)
	require.Equal(t, 1, h.ActualCount)
	require.True(t, h.ExpectedAllContext)
	require.False(t, h.ActualAllContext)
}

func TestBuild_MissingTrailingNewline_SynthesizesChange(t *testing.T) {
	lines := []string{"a", "b"}
	e := edits(t, lines, lines)
	require.True(t, func() bool {
		for _, ed := range e {
			if ed.Op != lcs.Keep {
				return false
			}
		}
		return true
	}(), "identical inputs should produce only Keep edits before newline adjustment")

	hunks := Build(lines, lines, e, true, false, 0)
	require.Len(t, hunks, 1, "a trailing-newline-only difference must still produce a hunk")
	h := hunks[0]
	require.True(t, h.ExpectedMissingNL)
	require.False(t, h.ActualMissingNL)
	require.Equal(t, 1, h.ExpectedCount)
	require.Equal(t, 1, h.ActualCount)
}

func TestBuild_BothMissingTrailingNewline_NoSyntheticChange(t *testing.T) {
	lines := []string{"a", "b"}
	e := edits(t, lines, lines)
	hunks := Build(lines, lines, e, true, true, 0)
	require.Empty(t, hunks, "identical content with matching missing-newline status is not a diff")
}

func TestContextSides_SplitsChangeAndAdd(t *testing.T) {
	left := []string{"a", "b"}
	right := []string{"a", "x", "y", "b"}
	e := edits(t, left, right)
	hunks := Build(left, right, e, false, false, 3)
	require.Len(t, hunks, 1)

	leftSides, rightSides := hunks[0].ContextSides()

	require.Equal(t, []SideLine{
		{TagContext, "a"},
		{TagContext, "b"},
	}, leftSides)

	require.Equal(t, []SideLine{
		{TagContext, "a"},
		{TagAdd, "x"},
		{TagAdd, "y"},
		{TagContext, "b"},
	}, rightSides)
}

func TestContextSides_PairsChangeLines(t *testing.T) {
	left := []string{"a", "old1", "old2", "b"}
	right := []string{"a", "new1", "b"}
	e := edits(t, left, right)
	hunks := Build(left, right, e, false, false, 3)
	require.Len(t, hunks, 1)

	leftSides, rightSides := hunks[0].ContextSides()
	require.Equal(t, []SideLine{
		{TagContext, "a"},
		{TagChange, "old1"},
		{TagAdd, "old2"},
		{TagContext, "b"},
	}, leftSides)
	require.Equal(t, []SideLine{
		{TagContext, "a"},
		{TagChange, "new1"},
		{TagContext, "b"},
	}, rightSides)
}
