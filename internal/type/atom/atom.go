// Released under an MIT license. See LICENSE.

// Package atom provides flatlisp's scalar and cross-reference values.
package atom

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/michaelmacinnis/adapted"
	"github.com/segmentio/fasthash/fnv1a"
)

// Kind is an atom's tag.
type Kind int

// Atom kinds.
const (
	Symbol Kind = iota
	Keyword
	Int
	Float
	String
	Boolean
	Reference
)

var names = [...]string{ //nolint:gochecknoglobals
	Symbol:    "symbol",
	Keyword:   "keyword",
	Int:       "int",
	Float:     "float",
	String:    "string",
	Boolean:   "boolean",
	Reference: "reference",
}

// String returns the name of the kind k.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(names) {
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}

	return names[k]
}

// T (atom) is a tagged value. Only the field selected by kind is meaningful.
type T struct {
	kind Kind
	text string
	num  int64
	dbl  float64
}

type atom = T

// NewSymbol creates a symbol atom.
func NewSymbol(v string) T {
	return T{kind: Symbol, text: v}
}

// NewKeyword creates a keyword atom.
func NewKeyword(v string) T {
	return T{kind: Keyword, text: v}
}

// NewInt creates an integer atom.
func NewInt(v int64) T {
	return T{kind: Int, num: v}
}

// NewFloat creates a floating-point atom.
func NewFloat(v float64) T {
	return T{kind: Float, dbl: v}
}

// NewString creates a string atom.
func NewString(v string) T {
	return T{kind: String, text: v}
}

// NewBoolean creates a boolean atom.
func NewBoolean(v bool) T {
	a := T{kind: Boolean}
	if v {
		a.num = 1
	}

	return a
}

// NewReference creates an atom that stands in for the node with the given id.
func NewReference(id int) T {
	return T{kind: Reference, num: int64(id)}
}

// Infer classifies the text of a single token.
// In order: true/false, a base-10 integer, a float, otherwise a symbol.
func Infer(s string) T {
	switch s {
	case "true":
		return NewBoolean(true)
	case "false":
		return NewBoolean(false)
	}

	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		return NewInt(v)
	}

	if v, ok := parseFloat(s); ok {
		return NewFloat(v)
	}

	return NewSymbol(s)
}

// Bool returns the value of a boolean atom.
func (a atom) Bool() bool {
	return a.num != 0
}

// Equal returns true if b has the same kind and an equal payload.
// Floats compare by bit pattern so that NaN can be a table key.
func (a atom) Equal(b T) bool {
	if a.kind != b.kind {
		return false
	}

	switch a.kind {
	case Symbol, Keyword, String:
		return a.text == b.text
	case Float:
		return math.Float64bits(a.dbl) == math.Float64bits(b.dbl)
	}

	return a.num == b.num
}

// Hash returns a hash of the atom a consistent with Equal.
func (a atom) Hash() uint64 {
	h := fnv1a.AddUint64(fnv1a.Init64, uint64(a.kind))

	switch a.kind {
	case Symbol, Keyword, String:
		return fnv1a.AddString64(h, a.text)
	case Float:
		return fnv1a.AddUint64(h, math.Float64bits(a.dbl))
	}

	return fnv1a.AddUint64(h, uint64(a.num))
}

// Is returns true if the atom a is any of the kinds in ks.
func (a atom) Is(ks ...Kind) bool {
	for _, k := range ks {
		if a.kind == k {
			return true
		}
	}

	return false
}

// Kind returns the atom's tag.
func (a atom) Kind() Kind {
	return a.kind
}

// Literal returns an unambiguous representation of the atom a.
// Text values are quoted; everything else renders as String does.
func (a atom) Literal() string {
	switch a.kind {
	case Symbol, Keyword, String:
		return a.kind.String() + " " + adapted.CanonicalString(a.text)
	}

	return a.String()
}

// Reference returns the node id held by a reference atom.
func (a atom) Reference() int {
	return int(a.num)
}

// String returns the text rendering of the atom a.
func (a atom) String() string {
	switch a.kind {
	case Symbol, Keyword, String:
		return a.text
	case Int:
		return strconv.FormatInt(a.num, 10)
	case Float:
		return formatFloat(a.dbl)
	case Boolean:
		return strconv.FormatBool(a.Bool())
	case Reference:
		return "%" + strconv.FormatInt(a.num, 10)
	}

	return ""
}

// Text returns the text of a symbol, keyword or string atom.
func (a atom) Text() string {
	return a.text
}

func formatFloat(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case math.IsNaN(f):
		return "NaN"
	}

	return strconv.FormatFloat(f, 'f', -1, 64)
}

// Go's ParseFloat also accepts hex mantissas and digit separators.
// Neither is a float here.
func parseFloat(s string) (float64, bool) {
	if strings.ContainsRune(s, '_') {
		return 0, false
	}

	u := strings.TrimLeft(s, "+-")
	if len(u) > 1 && u[0] == '0' && (u[1] == 'x' || u[1] == 'X') {
		return 0, false
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		// Out of range values are still floats (±Inf).
		var ne *strconv.NumError
		if !errors.As(err, &ne) || ne.Err != strconv.ErrRange {
			return 0, false
		}
	}

	return v, true
}
