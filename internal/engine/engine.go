// Released under an MIT license. See LICENSE.

// Package engine provides an evaluator for flatlisp arenas.
package engine

import (
	"io"
	"log/slog"

	"github.com/michaelmacinnis/flatlisp/internal/type/arena"
	"github.com/michaelmacinnis/flatlisp/internal/type/atom"
	"github.com/michaelmacinnis/flatlisp/internal/type/env"
	"github.com/michaelmacinnis/flatlisp/internal/type/node"
)

// T (engine) walks arenas and writes a trace line for every node it visits.
type T struct {
	err    error
	logger *slog.Logger
	out    io.Writer
}

type engine = T

// New creates a new T. Without options the trace is discarded.
func New(opts ...Option) *T {
	e := &T{}

	e.apply(opts...)

	return e
}

// Err returns the first error encountered writing the trace.
func (e *engine) Err() error {
	return e.err
}

// Eval renders the node with the given id and then, in order, every node
// it references. It returns the largest id visited. An id with no node
// is returned unchanged and nothing is written.
func (e *engine) Eval(a *arena.T, scope *env.T, id int) int {
	n, ok := a.Get(id)
	if !ok {
		return id
	}

	e.logger.Debug("visit",
		slog.Int("id", id),
		slog.String("kind", string(n.Kind())),
		slog.Int("bindings", scope.Len()))

	e.render(n)

	highest := id

	for _, c := range n.Children() {
		if !c.Is(atom.Reference) {
			continue
		}

		ref := c.Reference()
		if ref > highest {
			highest = ref
		}

		if sub := e.Eval(a, scope, ref); sub > highest {
			highest = sub
		}
	}

	return highest
}

// Run evaluates every top-level form in a, starting at id 0. After each
// form the cursor moves past the highest id that form reached. A blank line
// separates the traces of consecutive forms.
func (e *engine) Run(a *arena.T) error {
	scope := env.New()

	for pc := 0; pc < a.Len(); {
		if pc > 0 {
			e.write("\n")
		}

		pc = e.Eval(a, scope, pc) + 1
	}

	return e.err
}

func (e *engine) render(n *node.T) {
	e.write(n.String() + "\n")
}

func (e *engine) write(s string) {
	if e.err != nil {
		return
	}

	_, e.err = io.WriteString(e.out, s)
}
