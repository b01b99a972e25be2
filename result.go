package sexpr

import (
	"github.com/samber/mo"

	"github.com/xiam/sexpr/ast"
	"github.com/xiam/sexpr/parser"
)

// Result holds either a parse tree or the syntax error that prevented
// building it, never both. The zero Result holds neither and is not valid:
// IsOK, Node and Err all report false on it.
type Result struct {
	v mo.Either[*parser.SyntaxError, *ast.Node]
}

// Success wraps a parsed tree.
func Success(node *ast.Node) Result {
	return Result{v: mo.Right[*parser.SyntaxError, *ast.Node](node)}
}

// Failure wraps a syntax error.
func Failure(err *parser.SyntaxError) Result {
	return Result{v: mo.Left[*parser.SyntaxError, *ast.Node](err)}
}

// IsOK returns true if the result holds a tree.
func (r Result) IsOK() bool {
	_, ok := r.Node()
	return ok
}

// Node returns the parsed tree, if any.
func (r Result) Node() (*ast.Node, bool) {
	node, ok := r.v.Right()
	if !ok || node == nil {
		return nil, false
	}
	return node, true
}

// Err returns the syntax error, if any.
func (r Result) Err() (*parser.SyntaxError, bool) {
	err, ok := r.v.Left()
	if !ok || err == nil {
		return nil, false
	}
	return err, true
}

// Match calls onNode or onErr depending on what the result holds. It calls
// neither on an invalid Result.
func (r Result) Match(onNode func(*ast.Node), onErr func(*parser.SyntaxError)) {
	if node, ok := r.Node(); ok {
		onNode(node)
		return
	}
	if err, ok := r.Err(); ok {
		onErr(err)
	}
}

// String renders a tree as a bracket-and-comma listing and an error as its
// message.
func (r Result) String() string {
	if node, ok := r.Node(); ok {
		return ast.Format(node)
	}
	if err, ok := r.Err(); ok {
		return "syntax error: " + err.Error()
	}
	return "invalid result"
}
