// Released under an MIT license. See LICENSE.

// Package reader builds an arena from flatlisp tokens.
//
// Each opening delimiter reserves the next id. If a container is already
// open, a reference to that id is appended to it so the parent learns about
// the child before the child is complete. A closing delimiter commits the
// innermost open container under its reserved id.
package reader

import (
	"errors"
	"log/slog"

	"github.com/ahrtr/gocontainer/stack"
	"github.com/edwingeng/deque"

	"github.com/michaelmacinnis/flatlisp/internal/common/struct/loc"
	"github.com/michaelmacinnis/flatlisp/internal/common/struct/token"
	"github.com/michaelmacinnis/flatlisp/internal/reader/lexer"
	"github.com/michaelmacinnis/flatlisp/internal/type/arena"
	"github.com/michaelmacinnis/flatlisp/internal/type/atom"
	"github.com/michaelmacinnis/flatlisp/internal/type/node"
)

// Reader errors. An *Error wraps one of these or node.ErrUnsupportedDelimiter.
var (
	ErrStackUnderflow = errors.New("closing delimiter without an open container")
	ErrUnterminated   = errors.New("container is never closed")
)

// Error is a reader failure annotated with the offending token's location.
type Error struct {
	Source loc.T
	Token  string
	Err    error
}

func (e *Error) Error() string {
	return e.Source.String() + ": " + e.Err.Error() + " near '" + e.Token + "'"
}

func (e *Error) Unwrap() error {
	return e.Err
}

// T holds the state of the reader.
type T struct {
	arena arena.Builder
	ids   deque.Deque     // Reserved ids, innermost at the back.
	open  stack.Interface // Open containers, innermost on top.

	logger *slog.Logger
}

type reader = T

type container struct {
	node   *node.T
	opener *token.T
}

// New creates a new reader that logs to logger, or to slog's default if nil.
func New(logger *slog.Logger) *T {
	if logger == nil {
		logger = slog.Default()
	}

	return &T{logger: logger}
}

// Parse tokenizes and reads src. Label names the source in errors.
func Parse(label, src string) (*arena.T, error) {
	return New(nil).Read(lexer.Tokenize(label, src))
}

// Pending returns the number of containers left open after tokens.
// A negative count means a closing delimiter has nothing to close.
func Pending(tokens []*token.T) int {
	n := 0

	for _, t := range tokens {
		switch {
		case t.Is("(", "[", "{"):
			n++
		case t.Is(")", "]", "}"):
			n--
			if n < 0 {
				return n
			}
		}
	}

	return n
}

// Read consumes tokens and returns the completed arena.
func (r *reader) Read(tokens []*token.T) (*arena.T, error) {
	r.arena = arena.Builder{}
	r.ids = deque.NewDeque()
	r.open = stack.New()

	for _, t := range tokens {
		if err := r.token(t); err != nil {
			return nil, err
		}
	}

	if !r.arena.Complete() {
		// Every reserved id without a node belongs to an open container.
		c := r.open.Peek().(*container)

		return nil, fail(c.opener, ErrUnterminated)
	}

	return r.arena.Arena(), nil
}

func (r *reader) close(t *token.T) error {
	if r.ids.Empty() {
		return fail(t, ErrStackUnderflow)
	}

	id := r.ids.PopBack().(int)
	c := r.open.Pop().(*container)

	r.arena.Commit(id, c.node)

	r.logger.Debug("commit",
		slog.Int("id", id),
		slog.String("kind", string(c.node.Kind())),
		slog.Int("children", len(c.node.Children())))

	return nil
}

func (r *reader) current() *node.T {
	if r.open.IsEmpty() {
		return nil
	}

	return r.open.Peek().(*container).node
}

func (r *reader) scalar(t *token.T) {
	a := atom.Infer(t.Value())

	if n := r.current(); n != nil {
		n.Append(a)

		return
	}

	r.logger.Debug("discard top-level scalar",
		slog.String("source", t.Source().String()),
		slog.String("atom", a.Literal()))
}

func (r *reader) start(t *token.T) error {
	k, err := node.KindOf(t.Value())
	if err != nil {
		return fail(t, err)
	}

	if n := r.current(); n != nil {
		n.Append(atom.NewReference(r.arena.Next()))
	}

	id := r.arena.Reserve()

	r.ids.PushBack(id)
	r.open.Push(&container{node: node.New(k), opener: t})

	r.logger.Debug("reserve",
		slog.Int("id", id),
		slog.String("kind", string(k)),
		slog.Int("depth", r.open.Size()))

	return nil
}

func (r *reader) token(t *token.T) error {
	switch {
	case t.Is(`"`, "'"):
		// Quote and string markers open nothing.
		return nil
	case t.Is("(", "[", "{"):
		return r.start(t)
	case t.Is(")", "]", "}"):
		return r.close(t)
	}

	r.scalar(t)

	return nil
}

func fail(t *token.T, err error) *Error {
	return &Error{Source: t.Source(), Token: t.Value(), Err: err}
}
