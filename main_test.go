package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/michaelmacinnis/flatlisp/internal/reader"
)

func TestEvaluate(t *testing.T) {
	var out bytes.Buffer

	r := &runner{stdout: &out}

	require.NoError(t, r.Evaluate("test", `
(defn inc [x]
  (+ x 1))
(inc 41)
`))

	assert.Equal(t, strings.Join([]string{
		"(exec defn inc %1 %2)",
		"(vector x)",
		"(exec + x 1)",
		"",
		"(exec inc 41)",
		"",
	}, "\n"), out.String())
}

func TestEvaluateDump(t *testing.T) {
	var out bytes.Buffer

	r := &runner{dump: true, stdout: &out}

	require.NoError(t, r.Evaluate("test", "(a)"))

	assert.True(t, strings.HasPrefix(out.String(), "tokens:\n"))
	assert.Contains(t, out.String(), "arena:\n")
	assert.True(t, strings.HasSuffix(out.String(), "(exec a)\n"))
}

func TestEvaluateReaderError(t *testing.T) {
	var out bytes.Buffer

	r := &runner{stdout: &out}

	err := r.Evaluate("test", "(a))")
	assert.ErrorIs(t, err, reader.ErrStackUnderflow)
	assert.Empty(t, out.String())
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "src.clj")
	require.NoError(t, os.WriteFile(path, []byte("(a)"), 0o600))

	label, src, err := load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, path, label)
	assert.Equal(t, "(a)", src)
}

func TestLoadStdin(t *testing.T) {
	label, src, err := load("", strings.NewReader("(b)"))
	require.NoError(t, err)
	assert.Equal(t, "stdin", label)
	assert.Equal(t, "(b)", src)
}

func TestLoadMissing(t *testing.T) {
	_, _, err := load(filepath.Join(t.TempDir(), "missing.clj"), nil)
	assert.ErrorIs(t, err, ErrSourceUnreadable)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
