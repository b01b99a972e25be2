package ast

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/xiam/sexpr/lexer"
)

var errNotAGroup = errors.New("nodes of type atom can't accept children")

// Node represents a leaf (atom) or a branch (group) of the parse tree.
type Node struct {
	nt  NodeType
	tok lexer.Token

	children []*Node
}

// NewAtom creates and returns a node of type "atom" holding the given token
func NewAtom(tok lexer.Token) *Node {
	return &Node{
		nt:  NodeTypeAtom,
		tok: tok,
	}
}

// NewGroup creates and returns a node of type "group" holding the given
// children; tok is the token that opened the group.
func NewGroup(tok lexer.Token, children ...*Node) *Node {
	return &Node{
		nt:       NodeTypeGroup,
		tok:      tok,
		children: append([]*Node{}, children...),
	}
}

// Atom creates an atom that is not tied to any input position.
func Atom(text string) *Node {
	return NewAtom(lexer.NewToken(text, -1))
}

// Group creates a group with the given children that is not tied to any
// input position.
func Group(children ...*Node) *Node {
	return NewGroup(lexer.NewToken(lexer.OpenGroup, -1), children...)
}

// Push appends a child node to a node of type "group".
func (n *Node) Push(node *Node) error {
	if !n.IsGroup() {
		return errNotAGroup
	}
	n.children = append(n.children, node)
	return nil
}

// Token returns the token associated to the node
func (n *Node) Token() lexer.Token {
	return n.tok
}

// Type returns the type of the node
func (n *Node) Type() NodeType {
	return n.nt
}

// Text returns the text of an atom, or an empty string for groups.
func (n *Node) Text() string {
	if n.IsAtom() {
		return n.tok.Text()
	}
	return ""
}

// List returns all the children elements of the node
func (n *Node) List() []*Node {
	return n.children
}

// Len returns the number of children
func (n *Node) Len() int {
	return len(n.children)
}

// IsAtom returns true if the node is of type atom
func (n *Node) IsAtom() bool {
	return n.nt == NodeTypeAtom
}

// IsGroup returns true if the node is of type group
func (n *Node) IsGroup() bool {
	return n.nt == NodeTypeGroup
}

func (n *Node) String() string {
	if n.IsGroup() {
		return fmt.Sprintf("(%v)[%d]", n.nt, len(n.children))
	}
	return fmt.Sprintf("(%v): %v", n.nt, n.tok.Text())
}

// Equal reports whether both trees have the same shape and atom texts.
// Token positions are ignored.
func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.nt != b.nt {
		return false
	}
	if a.IsAtom() {
		return a.tok.Text() == b.tok.Text()
	}
	if len(a.children) != len(b.children) {
		return false
	}
	for i := range a.children {
		if !Equal(a.children[i], b.children[i]) {
			return false
		}
	}
	return true
}

type jsonNode struct {
	Atom  *string `json:"atom,omitempty"`
	Group []*Node `json:"group"`
}

// MarshalJSON encodes atoms as {"atom": text} and groups as
// {"group": [children...]}.
func (n *Node) MarshalJSON() ([]byte, error) {
	if n.IsAtom() {
		text := n.tok.Text()
		return json.Marshal(struct {
			Atom string `json:"atom"`
		}{text})
	}
	return json.Marshal(struct {
		Group []*Node `json:"group"`
	}{n.children})
}

// UnmarshalJSON decodes the format produced by MarshalJSON.
func (n *Node) UnmarshalJSON(data []byte) error {
	var v jsonNode
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	if v.Atom != nil {
		*n = *Atom(*v.Atom)
		return nil
	}
	if v.Group == nil {
		return errors.New("expecting atom or group")
	}
	for i := range v.Group {
		if v.Group[i] == nil {
			return errors.New("group children can't be null")
		}
	}
	*n = *Group(v.Group...)
	return nil
}
