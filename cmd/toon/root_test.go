package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	toon "github.com/tooncore/toon-go"
)

func TestResolveDelimiter(t *testing.T) {
	cases := map[string]toon.Delimiter{
		"comma": toon.DelimiterComma,
		"":      toon.DelimiterComma,
		"tab":   toon.DelimiterTab,
		"pipe":  toon.DelimiterPipe,
	}
	for in, want := range cases {
		got, err := resolveDelimiter(in)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
	_, err := resolveDelimiter("semicolon")
	require.Error(t, err)
}

func TestResolveKeyFolding(t *testing.T) {
	off, err := resolveKeyFolding("off", 0)
	require.NoError(t, err)
	require.Equal(t, toon.KeyFoldingOff(), off)

	safe, err := resolveKeyFolding("safe", 3)
	require.NoError(t, err)
	require.Equal(t, toon.KeyFoldingSafe(3), safe)

	_, err = resolveKeyFolding("bogus", 0)
	require.Error(t, err)
}

func TestResolveExpandPaths(t *testing.T) {
	off, err := resolveExpandPaths("off")
	require.NoError(t, err)
	require.Equal(t, toon.ExpandPathsOff, off)

	safe, err := resolveExpandPaths("safe")
	require.NoError(t, err)
	require.Equal(t, toon.ExpandPathsSafe, safe)

	_, err = resolveExpandPaths("bogus")
	require.Error(t, err)
}

func TestResolveSourceFormatFromExtension(t *testing.T) {
	format, err := resolveSourceFormat("", "data.yaml")
	require.NoError(t, err)
	require.Equal(t, "yaml", string(format))

	format, err = resolveSourceFormat("", "data.unknown")
	require.NoError(t, err)
	require.Equal(t, "json", string(format))

	format, err = resolveSourceFormat("csv", "data.yaml")
	require.NoError(t, err)
	require.Equal(t, "csv", string(format))
}

func TestAppendTrailingNewline(t *testing.T) {
	require.Equal(t, []byte("abc\n"), appendTrailingNewline([]byte("abc")))
	require.Equal(t, []byte("abc\n"), appendTrailingNewline([]byte("abc\n")))
}
