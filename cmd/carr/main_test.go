package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDeriveName(t *testing.T) {
	require.Equal(t, "input", deriveName("/tmp/dir/input.txt"))
	require.Equal(t, "archive", deriveName("archive.tar.gz"))
	require.Equal(t, "bashrc", deriveName(".bashrc"))
	require.Equal(t, "plain", deriveName("plain"))
	require.Equal(t, "", deriveName("..."))
}

func TestRunCreatesArrayFile(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "banner.txt")
	require.NoError(t, os.WriteFile(input, []byte("A\nB"), 0o644))
	output := filepath.Join(dir, "banner.array")

	var stdout, stderr bytes.Buffer
	code := run([]string{input, "-n", "x", "-o", output}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())
	require.Contains(t, stdout.String(), "Done: 1 line(s) written to file.")

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	want := "/* This file was created from input file " + input + " by carr */\n\n" +
		`const char x[] = "A\nB";` + "\n\n// End of file\n"
	require.Equal(t, want, string(data))
}

func TestRunBareToStdout(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "banner.txt")
	require.NoError(t, os.WriteFile(input, []byte("A\nB"), 0o644))

	var stdout, stderr bytes.Buffer
	code := run([]string{input, "-n", "x", "-o", "-", "-b"}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())
	require.Equal(t, `const char x[] = "A\nB";`+"\n", stdout.String())
}

func TestRunDefaultNameAndOutput(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile("banner.txt", []byte("hi"), 0o644))

	var stdout, stderr bytes.Buffer
	code := run([]string{"banner.txt"}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())

	data, err := os.ReadFile("banner.array")
	require.NoError(t, err)
	require.Contains(t, string(data), `const char banner[] = "hi";`)
}

func TestRunMissingInputArgument(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run(nil, &stdout, &stderr)
	require.Equal(t, 2, code)
	require.Contains(t, stdout.String(), "Usage: carr input_file")
}

func TestRunUnopenableInput(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{filepath.Join(t.TempDir(), "missing.txt")}, &stdout, &stderr)
	require.Equal(t, 1, code)
	require.Contains(t, stderr.String(), "open input")
}

func TestRunRaisesShortLineLength(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "wide.txt")
	require.NoError(t, os.WriteFile(input, []byte("abcdef"), 0o644))
	output := filepath.Join(dir, "wide.array")

	var stdout, stderr bytes.Buffer
	code := run([]string{input, "-n", "x", "-l", "5", "-o", output, "-b"}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())
	require.Contains(t, stdout.String(),
		"Using line length 22 as 5 is less than the minimum required to print something.")

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	for _, line := range strings.Split(strings.TrimSuffix(string(data), "\n"), "\n") {
		require.LessOrEqual(t, len(line), 22, "line %q", line)
	}
}
