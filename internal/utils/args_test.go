package utils

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

type testArgs struct {
	File  string `arg:"positional" help:"a file"`
	Quiet bool   `arg:"--quiet" help:"be quiet"`
}

func TestParseArgs(t *testing.T) {
	var stdout, stderr bytes.Buffer
	var args testArgs

	retcode, consumed := ParseArgs(&stdout, &stderr, "test", []string{"--quiet", "colors"}, &args)
	require.False(t, consumed)
	require.Equal(t, 0, retcode)
	require.Equal(t, testArgs{File: "colors", Quiet: true}, args)
	require.Empty(t, stdout.String())
	require.Empty(t, stderr.String())
}

func TestParseArgsHelp(t *testing.T) {
	var stdout, stderr bytes.Buffer
	var args testArgs

	retcode, consumed := ParseArgs(&stdout, &stderr, "test", []string{"--help"}, &args)
	require.True(t, consumed)
	require.Equal(t, 0, retcode)
	require.Contains(t, stdout.String(), "Usage: test")
	require.Contains(t, stdout.String(), "be quiet")
}

func TestParseArgsUnknownFlag(t *testing.T) {
	var stdout, stderr bytes.Buffer
	var args testArgs

	retcode, consumed := ParseArgs(&stdout, &stderr, "test", []string{"--loud"}, &args)
	require.True(t, consumed)
	require.Equal(t, 255, retcode)
	require.Contains(t, stderr.String(), "error:")
	require.Empty(t, stdout.String())
}
