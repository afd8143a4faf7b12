package reader

import (
	"math/rand"
	"sort"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/michaelmacinnis/flatlisp/internal/common/struct/loc"
	"github.com/michaelmacinnis/flatlisp/internal/common/struct/token"
	"github.com/michaelmacinnis/flatlisp/internal/reader/lexer"
	"github.com/michaelmacinnis/flatlisp/internal/type/arena"
	"github.com/michaelmacinnis/flatlisp/internal/type/atom"
	"github.com/michaelmacinnis/flatlisp/internal/type/node"
)

func children(t *testing.T, a *arena.T, id int) (node.Kind, []string) {
	t.Helper()

	n, ok := a.Get(id)
	require.Truef(t, ok, "no node %d", id)

	var cs []string
	for _, c := range n.Children() {
		cs = append(cs, c.Kind().String()+":"+c.String())
	}

	return n.Kind(), cs
}

func TestSingleCall(t *testing.T) {
	a, err := Parse("A", "(+ 1 2)")
	require.NoError(t, err)
	require.Equal(t, 1, a.Len())

	k, cs := children(t, a, 0)
	assert.Equal(t, node.Exec, k)
	assert.Equal(t, []string{"symbol:+", "int:1", "int:2"}, cs)
}

func TestNestedCall(t *testing.T) {
	a, err := Parse("B", "(a (b 1) 2)")
	require.NoError(t, err)
	require.Equal(t, 2, a.Len())

	k, cs := children(t, a, 0)
	assert.Equal(t, node.Exec, k)
	assert.Equal(t, []string{"symbol:a", "reference:%1", "int:2"}, cs)

	k, cs = children(t, a, 1)
	assert.Equal(t, node.Exec, k)
	assert.Equal(t, []string{"symbol:b", "int:1"}, cs)
}

func TestTopLevelScalarsAreDiscarded(t *testing.T) {
	a, err := Parse("C", "true false 3 3.5")
	require.NoError(t, err)
	assert.Equal(t, 0, a.Len())

	_, ok := a.Get(0)
	assert.False(t, ok)
}

func TestStackUnderflow(t *testing.T) {
	_, err := Parse("D", "(a)\n)")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrStackUnderflow)

	var rerr *Error
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, loc.T{Char: 1, Line: 2, Name: "D"}, rerr.Source)
	assert.Equal(t, ")", rerr.Token)
	assert.Equal(t, "D:2:1: "+ErrStackUnderflow.Error()+" near ')'", err.Error())
}

func TestUnterminated(t *testing.T) {
	a, err := Parse("open", "(a [b {c}")
	require.Error(t, err)
	assert.Nil(t, a)
	assert.ErrorIs(t, err, ErrUnterminated)

	var rerr *Error
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, "[", rerr.Token)
	assert.Equal(t, 4, rerr.Source.Char)
}

func TestContainerKinds(t *testing.T) {
	a, err := Parse("kinds", "{k [1 2.5] v (f)}")
	require.NoError(t, err)
	require.Equal(t, 3, a.Len())

	k, cs := children(t, a, 0)
	assert.Equal(t, node.Map, k)
	assert.Equal(t, []string{"symbol:k", "reference:%1", "symbol:v", "reference:%2"}, cs)

	k, cs = children(t, a, 1)
	assert.Equal(t, node.Vector, k)
	assert.Equal(t, []string{"int:1", "float:2.5"}, cs)

	k, _ = children(t, a, 2)
	assert.Equal(t, node.Exec, k)
}

func TestQuoteAndStringMarkersAreIgnored(t *testing.T) {
	a, err := Parse("quote", `'(a "b c")`)
	require.NoError(t, err)
	require.Equal(t, 1, a.Len())

	k, cs := children(t, a, 0)
	assert.Equal(t, node.Exec, k)
	assert.Equal(t, []string{"symbol:a", "symbol:b", "symbol:c"}, cs)
}

func TestEmptyContainer(t *testing.T) {
	a, err := Parse("empty", "()[]")
	require.NoError(t, err)
	require.Equal(t, 2, a.Len())

	_, cs := children(t, a, 0)
	assert.Empty(t, cs)
}

func TestStartRejectsUnknownOpener(t *testing.T) {
	r := New(nil)

	_, err := r.Read(nil)
	require.NoError(t, err)

	src := loc.New("synthetic").Advance('x')
	err = r.start(token.New(token.Delimiter, "<", src))
	require.Error(t, err)
	assert.ErrorIs(t, err, node.ErrUnsupportedDelimiter)

	var rerr *Error
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, "<", rerr.Token)
	assert.Equal(t, src, rerr.Source)

	assert.Equal(t, 0, r.arena.Next())
	assert.True(t, r.open.IsEmpty())
}

func TestReaderIsReusable(t *testing.T) {
	r := New(nil)

	_, err := r.Read(lexer.Tokenize("first", "(a"))
	require.Error(t, err)

	a, err := r.Read(lexer.Tokenize("second", "(b)"))
	require.NoError(t, err)
	assert.Equal(t, 1, a.Len())
}

func TestPending(t *testing.T) {
	for src, want := range map[string]int{
		"":         0,
		"(a":       1,
		"(a [b":    2,
		"(a [b])":  0,
		"(a))":     -1,
		")(":       -1,
		`"(" '[`:   2,
		"{}\n(\n(": 2,
	} {
		assert.Equal(t, want, Pending(lexer.Tokenize("pending", src)), src)
	}
}

// Properties over random well-nested sources.

func generate(rng *rand.Rand, depth int, b *strings.Builder) {
	open := []string{"(", "[", "{"}
	closing := map[string]string{"(": ")", "[": "]", "{": "}"}
	scalars := []string{"x", "-3", "4.25", "true", "false", "foo", "+"}

	d := open[rng.Intn(len(open))]
	b.WriteString(d)

	for i := rng.Intn(5); i > 0; i-- {
		b.WriteString(" ")

		if depth > 0 && rng.Intn(3) == 0 {
			generate(rng, depth-1, b)
		} else {
			b.WriteString(scalars[rng.Intn(len(scalars))])
		}
	}

	b.WriteString(closing[d])
}

func sources(n int) []string {
	rng := rand.New(rand.NewSource(1)) //nolint:gosec

	srcs := make([]string, n)
	for i := range srcs {
		var b strings.Builder

		for forms := 1 + rng.Intn(3); forms > 0; forms-- {
			generate(rng, 4, &b)
			b.WriteString("\n")
		}

		srcs[i] = b.String()
	}

	return srcs
}

func TestEntriesMatchOpeners(t *testing.T) {
	for _, src := range sources(200) {
		a, err := Parse("prop", src)
		require.NoError(t, err, src)

		openers := strings.Count(src, "(") + strings.Count(src, "[") + strings.Count(src, "{")
		assert.Equal(t, openers, a.Len(), src)

		count := 0
		a.Each(func(int, *node.T) { count++ })
		assert.Equal(t, openers, count, src)
	}
}

func TestReferencesPointForward(t *testing.T) {
	for _, src := range sources(200) {
		a, err := Parse("prop", src)
		require.NoError(t, err, src)

		a.Each(func(id int, n *node.T) {
			for _, ref := range n.References() {
				assert.Greater(t, ref, id, src)
			}
		})
	}
}

func TestLiteralsSurvive(t *testing.T) {
	for _, src := range sources(100) {
		a, err := Parse("prop", src)
		require.NoError(t, err, src)

		var want []string
		for _, tok := range lexer.Tokenize("prop", src) {
			if !lexer.IsDelimiter([]rune(tok.Value())[0]) {
				want = append(want, atom.Infer(tok.Value()).String())
			}
		}

		var got []string
		a.Each(func(_ int, n *node.T) {
			for _, c := range n.Children() {
				if !c.Is(atom.Reference) {
					got = append(got, c.String())
				}
			}
		})

		sort.Strings(want)
		sort.Strings(got)
		assert.Equal(t, want, got, src)
	}
}

func TestDeepNesting(t *testing.T) {
	const depth = 1000

	src := strings.Repeat("(", depth) + strings.Repeat(")", depth)

	a, err := Parse("deep", src)
	require.NoError(t, err)
	require.Equal(t, depth, a.Len())

	for id := 0; id < depth-1; id++ {
		n, ok := a.Get(id)
		require.True(t, ok)
		assert.Equal(t, []int{id + 1}, n.References(), strconv.Itoa(id))
	}
}
