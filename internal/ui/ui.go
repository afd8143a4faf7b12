// Released under an MIT license. See LICENSE.

// Package ui provides an interactive command-line interface for flatlisp.
package ui

import (
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/peterh/liner"

	"github.com/michaelmacinnis/flatlisp/internal/reader"
	"github.com/michaelmacinnis/flatlisp/internal/reader/lexer"
)

// Evaluator is the interface for things that want to process complete input.
type Evaluator interface {
	Evaluate(label, src string) error
}

// Run prompts for input and sends each complete chunk to the Evaluator.
// Errors are reported to stderr and the session continues. Ctrl-C discards
// the current chunk and Ctrl-D ends the session.
func Run(e Evaluator, stderr io.Writer) error {
	cli := liner.NewLiner()
	defer cli.Close()

	cli.SetCtrlCAborts(true)

	red := color.New(color.FgRed)

	var b buffer

	for n := 1; ; {
		line, err := cli.Prompt(b.prompt())

		switch {
		case err == nil:
		case errors.Is(err, liner.ErrPromptAborted):
			b.reset()
			continue
		case errors.Is(err, io.EOF):
			return nil
		default:
			return err
		}

		src, ok := b.add(line)
		if !ok {
			continue
		}

		if s := strings.TrimSpace(src); s != "" {
			cli.AppendHistory(s)
		}

		if err := e.Evaluate("input"+strconv.Itoa(n), src); err != nil {
			red.Fprintln(stderr, err.Error()) //nolint:errcheck
		}

		n++
	}
}

// A buffer collects lines until every container opened in them is closed.
type buffer struct {
	lines strings.Builder
}

func (b *buffer) add(line string) (string, bool) {
	b.lines.WriteString(line)
	b.lines.WriteString("\n")

	src := b.lines.String()
	if reader.Pending(lexer.Tokenize("", src)) > 0 {
		return "", false
	}

	b.reset()

	return src, true
}

func (b *buffer) prompt() string {
	if b.lines.Len() > 0 {
		return ". "
	}

	return "> "
}

func (b *buffer) reset() {
	b.lines.Reset()
}
