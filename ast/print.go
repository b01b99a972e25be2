package ast

import (
	"fmt"
	"io"
	"strings"

	"github.com/samber/lo"

	"github.com/xiam/sexpr/lexer"
)

// Print writes a human-readable, indented representation of a node
func Print(w io.Writer, n *Node) error {
	return printLevel(w, n, 0)
}

func printLevel(w io.Writer, n *Node, level int) error {
	indent := strings.Repeat("    ", level)
	if n == nil {
		_, err := fmt.Fprintf(w, "%s:nil\n", indent)
		return err
	}

	switch n.Type() {
	case NodeTypeGroup:
		if _, err := fmt.Fprintf(w, "%s(%s): %v\n", indent, n.Type(), n.Token()); err != nil {
			return err
		}
		list := n.List()
		for i := range list {
			if err := printLevel(w, list[i], level+1); err != nil {
				return err
			}
		}
		return nil

	case NodeTypeAtom:
		_, err := fmt.Fprintf(w, "%s(%s): %q %v\n", indent, n.Type(), n.Text(), n.Token())
		return err
	}

	panic("unknown node type")
}

// Encode transforms a node into its canonical text representation: atoms as
// themselves, groups parenthesized with children joined by single spaces.
// Tokenizing and parsing the result yields an equal tree.
func Encode(n *Node) []byte {
	return []byte(encodeNode(n))
}

func encodeNode(n *Node) string {
	if n == nil {
		return ""
	}
	switch n.Type() {
	case NodeTypeGroup:
		nodes := lo.Map(n.List(), func(child *Node, _ int) string {
			return encodeNode(child)
		})
		return lexer.OpenGroup + strings.Join(nodes, " ") + lexer.CloseGroup

	case NodeTypeAtom:
		return n.Text()
	}

	panic("unknown node type")
}

// Format renders a node as a bracket-and-comma listing: atoms as themselves,
// groups as "[a, b, [c]]".
func Format(n *Node) string {
	if n == nil {
		return ":nil"
	}
	switch n.Type() {
	case NodeTypeGroup:
		nodes := lo.Map(n.List(), func(child *Node, _ int) string {
			return Format(child)
		})
		return "[" + strings.Join(nodes, ", ") + "]"

	case NodeTypeAtom:
		return n.Text()
	}

	panic("unknown node type")
}
