package main

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zbalkan/gofc/modules/fcdiff"
)

func TestParseLegacyArgsDefaults(t *testing.T) {
	parsed, err := parseLegacyArgs([]string{"a.txt", "b.txt"})
	require.NoError(t, err)
	require.Equal(t, fcdiff.Auto, parsed.Mode)
	require.Equal(t, fcdiff.DefaultResyncLines, parsed.ResyncLines)
	require.Equal(t, fcdiff.DefaultBufferLines, parsed.BufferLines)
	require.Equal(t, "a.txt", parsed.PathA)
	require.Equal(t, "b.txt", parsed.PathB)
}

func TestParseLegacyArgsBinaryFlag(t *testing.T) {
	parsed, err := parseLegacyArgs([]string{"/B", "a.bin", "b.bin"})
	require.NoError(t, err)
	require.Equal(t, fcdiff.Binary, parsed.Mode)
}

func TestParseLegacyArgsDashPrefix(t *testing.T) {
	parsed, err := parseLegacyArgs([]string{"-C", "-W", "a.txt", "b.txt"})
	require.NoError(t, err)
	require.True(t, parsed.Flags&fcdiff.IgnoreCase != 0)
	require.True(t, parsed.Flags&fcdiff.IgnoreWhitespace != 0)
}

func TestParseLegacyArgsResyncOption(t *testing.T) {
	parsed, err := parseLegacyArgs([]string{"/5", "a.txt", "b.txt"})
	require.NoError(t, err)
	require.Equal(t, 5, parsed.ResyncLines)
}

func TestParseLegacyArgsBufferOption(t *testing.T) {
	parsed, err := parseLegacyArgs([]string{"/LB250", "a.txt", "b.txt"})
	require.NoError(t, err)
	require.Equal(t, 250, parsed.BufferLines)
}

func TestParseLegacyArgsCaseInsensitiveLetter(t *testing.T) {
	parsed, err := parseLegacyArgs([]string{"/u", "a.txt", "b.txt"})
	require.NoError(t, err)
	require.Equal(t, fcdiff.TextUnicode, parsed.Mode)
}

func TestParseLegacyArgsRejectsUnknownOption(t *testing.T) {
	_, err := parseLegacyArgs([]string{"/Z", "a.txt", "b.txt"})
	require.Error(t, err)
}

func TestParseLegacyArgsRejectsTooFewArguments(t *testing.T) {
	_, err := parseLegacyArgs([]string{"onlyone"})
	require.Error(t, err)
}

func TestParseLegacyArgsRejectsBareOperandBeforePaths(t *testing.T) {
	_, err := parseLegacyArgs([]string{"notanoption", "a.txt", "b.txt"})
	require.Error(t, err)
}
