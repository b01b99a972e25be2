package ast

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiam/sexpr/lexer"
)

func TestEncode(t *testing.T) {
	testCases := []struct {
		In  *Node
		Out string
	}{
		{Atom("12"), `12`},
		{Group(), `()`},
		{Group(Atom("1"), Atom("2")), `(1 2)`},
		{
			Group(Group(Atom("1"), Atom("2")), Group(Group(Atom("2")), Atom("3"))),
			`((1 2) ((2) 3))`,
		},
		{nil, ``},
	}

	for i := range testCases {
		assert.Equal(t, testCases[i].Out, string(Encode(testCases[i].In)))
	}
}

func TestFormat(t *testing.T) {
	testCases := []struct {
		In  *Node
		Out string
	}{
		{Atom("12"), `12`},
		{Group(), `[]`},
		{Group(Atom("1"), Atom("2")), `[1, 2]`},
		{
			Group(Group(Atom("1"), Atom("2")), Group(Group(Atom("2")), Atom("3"))),
			`[[1, 2], [[2], 3]]`,
		},
		{nil, `:nil`},
	}

	for i := range testCases {
		assert.Equal(t, testCases[i].Out, Format(testCases[i].In))
	}
}

func TestPrint(t *testing.T) {
	group := NewGroup(lexer.NewToken("(", 0))
	require.NoError(t, group.Push(NewAtom(lexer.NewToken("a", 1))))
	require.NoError(t, group.Push(NewGroup(lexer.NewToken("(", 3))))

	var buf bytes.Buffer
	require.NoError(t, Print(&buf, group))

	expected := "(group): (\"(\" [0])\n" +
		"    (atom): \"a\" (\"a\" [1])\n" +
		"    (group): (\"(\" [3])\n"
	assert.Equal(t, expected, buf.String())
}
