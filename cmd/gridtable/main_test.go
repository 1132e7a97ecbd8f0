package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const oneByOne = "head: [[X]]\nrows: [[Y]]\n"

const oneByOneGrid = "+---+\n| X |\n+===+\n| Y |\n+---+\n"

func TestRunStdin(t *testing.T) {
	t.Parallel()
	var stdout, stderr bytes.Buffer
	err := run([]string{"-columns", "10"}, strings.NewReader(oneByOne), &stdout, &stderr)
	require.NoError(t, err)
	assert.Equal(t, oneByOneGrid, stdout.String())
}

func TestRunStream(t *testing.T) {
	t.Parallel()
	var stdout, stderr bytes.Buffer
	input := oneByOne + "---\nrows: [[Z]]\n"
	err := run(nil, strings.NewReader(input), &stdout, &stderr)
	require.NoError(t, err)
	assert.Equal(t, oneByOneGrid+"\n+---+\n| Z |\n+---+\n", stdout.String())
}

func TestRunFiles(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	a := filepath.Join(dir, "a.yaml")
	b := filepath.Join(dir, "b.yaml")
	cfg := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(a, []byte(oneByOne), 0o600))
	require.NoError(t, os.WriteFile(b, []byte("rows: [[the quick brown fox]]\n"), 0o600))
	require.NoError(t, os.WriteFile(cfg, []byte("columns: 12\nwrap: none\n"), 0o600))

	var stdout, stderr bytes.Buffer
	err := run([]string{"-config", cfg, a, b}, strings.NewReader(""), &stdout, &stderr)
	require.NoError(t, err)
	assert.Equal(t, oneByOneGrid+"\n"+
		"+---------------------+\n"+
		"| the quick brown fox |\n"+
		"+---------------------+\n", stdout.String())
}

func TestRunWrapFlagOverridesConfig(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	cfg := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("wrap: none\n"), 0o600))

	var stdout, stderr bytes.Buffer
	input := "rows: [[aaaa bbbb cccc, x]]\n"
	err := run([]string{"-config", cfg, "-wrap", "auto", "-columns", "12"}, strings.NewReader(input), &stdout, &stderr)
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "| aaaa ")
	assert.NotContains(t, stdout.String(), "aaaa bbbb cccc")
}

func TestRunDebug(t *testing.T) {
	t.Parallel()
	var stdout, stderr bytes.Buffer
	err := run([]string{"-debug"}, strings.NewReader(oneByOne), &stdout, &stderr)
	require.NoError(t, err)
	assert.Equal(t, oneByOneGrid, stdout.String())
}

func TestRunErrors(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	badCfg := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(badCfg, []byte("columns: -1\n"), 0o600))

	tests := map[string]struct {
		args  []string
		input string
	}{
		"unknown flag":     {args: []string{"-nope"}},
		"bad wrap":         {args: []string{"-wrap", "sideways"}},
		"negative columns": {args: []string{"-columns", "-5"}},
		"missing config":   {args: []string{"-config", filepath.Join(dir, "missing.yaml")}},
		"invalid config":   {args: []string{"-config", badCfg}},
		"missing file":     {args: []string{filepath.Join(dir, "missing.yaml")}},
		"malformed table":  {input: "rows: [\n"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			var stdout, stderr bytes.Buffer
			err := run(tt.args, strings.NewReader(tt.input), &stdout, &stderr)
			require.Error(t, err)
		})
	}
}
