package options

import (
	"testing"

	"github.com/docopt/docopt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quiet() *docopt.Parser {
	return &docopt.Parser{HelpHandler: docopt.NoHelpHandler}
}

func TestScript(t *testing.T) {
	o, err := parse(quiet(), []string{"-d", "src.clj"}, true)
	require.NoError(t, err)

	assert.Equal(t, &T{Dump: true, Script: "src.clj"}, o)
}

func TestTrace(t *testing.T) {
	o, err := parse(quiet(), []string{"--trace", "x.clj"}, false)
	require.NoError(t, err)

	assert.True(t, o.Trace)
	assert.False(t, o.Interactive)
	assert.Equal(t, "x.clj", o.Script)
}

func TestStdin(t *testing.T) {
	o, err := parse(quiet(), []string{}, false)
	require.NoError(t, err)

	assert.Equal(t, &T{}, o)
}

func TestTerminalWithoutScriptIsInteractive(t *testing.T) {
	o, err := parse(quiet(), []string{}, true)
	require.NoError(t, err)

	assert.True(t, o.Interactive)
}

func TestForcedInteractive(t *testing.T) {
	o, err := parse(quiet(), []string{"-i"}, false)
	require.NoError(t, err)

	assert.True(t, o.Interactive)
	assert.Empty(t, o.Script)
}

func TestUnknownOption(t *testing.T) {
	_, err := parse(quiet(), []string{"--bogus"}, false)
	assert.Error(t, err)
}
