package cmp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBytes_Equal(t *testing.T) {
	r := Bytes([]byte("same"), []byte("same"))
	require.True(t, r.Equal)
	require.Empty(t, r.String())
}

func TestBytes_FirstDifference(t *testing.T) {
	r := Bytes([]byte("ab\ncd"), []byte("ab\nxd"))
	require.False(t, r.Equal)
	require.Equal(t, 4, r.ByteOffset)
	require.Equal(t, 2, r.LineNumber)
}

func TestBytes_PrefixShorter(t *testing.T) {
	r := Bytes([]byte("abc"), []byte("abcdef"))
	require.True(t, r.ShorterFileIsPrefix)
	require.Equal(t, "second", r.LongerName)
	require.Equal(t, "cmp: EOF on first file", r.String())
}
