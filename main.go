/*
Flatlisp reads Lisp-like source into a flat arena of containers and walks
it from the first container, printing every container it visits:

	$ echo '(a (b 1) 2)' | flatlisp
	(exec a %1 2)
	(exec b 1)

Nested containers are replaced in their parent by references (%1 above)
to the id they were given when they opened. Ids are handed out in source
order, so a walk from each top-level container visits every id once.

Flatlisp is released under an MIT-style license.
*/
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"

	"github.com/michaelmacinnis/flatlisp/internal/engine"
	"github.com/michaelmacinnis/flatlisp/internal/engine/dump"
	"github.com/michaelmacinnis/flatlisp/internal/reader"
	"github.com/michaelmacinnis/flatlisp/internal/reader/lexer"
	"github.com/michaelmacinnis/flatlisp/internal/system/options"
	"github.com/michaelmacinnis/flatlisp/internal/ui"
)

// ErrSourceUnreadable wraps failures to obtain the source text.
var ErrSourceUnreadable = errors.New("source unreadable")

type runner struct {
	dump   bool
	logger *slog.Logger
	stdout io.Writer
}

// Evaluate tokenizes, reads and evaluates src, writing the trace to stdout.
func (r *runner) Evaluate(label, src string) error {
	tokens := lexer.Tokenize(label, src)

	a, err := reader.New(r.logger).Read(tokens)
	if err != nil {
		return err
	}

	if r.dump {
		if err := dump.New(tokens, a).Write(r.stdout); err != nil {
			return err
		}
	}

	return engine.New(
		engine.WithOutput(r.stdout),
		engine.WithLogger(r.logger),
	).Run(a)
}

func load(path string, stdin io.Reader) (label, src string, err error) {
	var b []byte

	if path == "" {
		label = "stdin"
		b, err = io.ReadAll(stdin)
	} else {
		label = path
		b, err = os.ReadFile(path)
	}

	if err != nil {
		return "", "", fmt.Errorf("%w: %w", ErrSourceUnreadable, err)
	}

	return label, string(b), nil
}

func main() {
	opts, err := options.Parse()
	if err != nil {
		fatal(err)
	}

	logger := slog.Default()
	if opts.Trace {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}

	r := &runner{
		dump:   opts.Dump,
		logger: logger,
		stdout: os.Stdout,
	}

	if opts.Interactive {
		err = ui.Run(r, os.Stderr)
	} else {
		var label, src string

		label, src, err = load(opts.Script, os.Stdin)
		if err == nil {
			err = r.Evaluate(label, src)
		}
	}

	if err != nil {
		fatal(err)
	}
}

func fatal(err error) {
	color.New(color.FgRed).Fprintln(os.Stderr, err.Error()) //nolint:errcheck
	os.Exit(1)
}
