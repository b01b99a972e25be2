// Package sexpr reads S-expressions: it splits text into tokens and groups
// them by parentheses into a tree of atoms and groups.
package sexpr

import (
	"github.com/xiam/sexpr/lexer"
	"github.com/xiam/sexpr/parser"
)

// Interpret tokenizes and parses the first expression in text.
func Interpret(text string, opts ...parser.Option) Result {
	node, syntaxErr := parser.Read(lexer.Tokenize(text), opts...)
	if syntaxErr != nil {
		return Failure(syntaxErr)
	}
	return Success(node)
}

// InterpretAll tokenizes and parses every top-level expression in text.
func InterpretAll(text string, opts ...parser.Option) []Result {
	nodes, syntaxErr := parser.ReadAll(lexer.Tokenize(text), opts...)
	if syntaxErr != nil {
		return []Result{Failure(syntaxErr)}
	}

	results := make([]Result, 0, len(nodes))
	for i := range nodes {
		results = append(results, Success(nodes[i]))
	}
	return results
}
