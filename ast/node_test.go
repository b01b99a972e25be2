package ast

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiam/sexpr/lexer"
)

func TestNode(t *testing.T) {
	token := lexer.NewToken("AAAA", 0)

	node := NewAtom(token)
	assert.True(t, node.IsAtom())
	assert.Equal(t, "AAAA", node.Text())
	assert.Equal(t, 0, node.Len())

	err := node.Push(Atom("B"))
	assert.Error(t, err)
}

func TestNodeGroup(t *testing.T) {
	token := lexer.NewToken("(", 0)

	group := NewGroup(token)
	assert.True(t, group.IsGroup())
	assert.Empty(t, group.Text())
	assert.NotNil(t, group.List())

	err := group.Push(NewAtom(lexer.NewToken("1", 1)))
	assert.NoError(t, err)
	assert.Equal(t, 1, group.Len())
	assert.Equal(t, "(group)[1]", group.String())
	assert.Equal(t, "(atom): 1", group.List()[0].String())
}

func TestEqual(t *testing.T) {
	testCases := []struct {
		A, B  *Node
		Equal bool
	}{
		{Atom("1"), Atom("1"), true},
		{Atom("1"), Atom("2"), false},
		{Group(), Group(), true},
		{Group(), Atom("()"), false},
		{Group(), nil, false},
		{nil, nil, true},
		{Group(Atom("1"), Group()), Group(Atom("1"), Group()), true},
		{Group(Atom("1"), Group()), Group(Atom("1")), false},
		{Group(Group(Atom("a"))), Group(Group(Atom("b"))), false},
	}

	for i := range testCases {
		assert.Equal(t, testCases[i].Equal, Equal(testCases[i].A, testCases[i].B), "case %d", i)
	}

	positioned := NewAtom(lexer.NewToken("x", 7))
	assert.True(t, Equal(positioned, Atom("x")))
}

func TestNodeJSON(t *testing.T) {
	tree := Group(Group(Atom("1"), Atom("2")), Group())

	buf, err := json.Marshal(tree)
	require.NoError(t, err)
	assert.JSONEq(t, `{"group":[{"group":[{"atom":"1"},{"atom":"2"}]},{"group":[]}]}`, string(buf))

	var decoded Node
	require.NoError(t, json.Unmarshal(buf, &decoded))
	assert.True(t, Equal(tree, &decoded))

	assert.Error(t, json.Unmarshal([]byte(`{}`), &decoded))
	assert.Error(t, json.Unmarshal([]byte(`{"group":[null]}`), &decoded))
	assert.Error(t, json.Unmarshal([]byte(`{"group":[{"atom":"1"},{"group":[null]}]}`), &decoded))
}

func TestNewGroupCopiesChildren(t *testing.T) {
	children := []*Node{Atom("a"), Atom("b")}

	group := NewGroup(lexer.NewToken("(", 0), children...)
	children[0] = Atom("z")

	assert.Equal(t, "(a b)", string(Encode(group)))
	assert.NotNil(t, NewGroup(lexer.NewToken("(", 0)).List())
}
