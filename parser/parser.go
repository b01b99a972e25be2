package parser

import (
	"go.uber.org/zap"

	"github.com/xiam/sexpr/ast"
	"github.com/xiam/sexpr/lexer"
)

// parser holds the cursor of a single parse; it is created by Parse or
// ParseAll and discarded once they return.
type parser struct {
	tokens []lexer.Token
	pos    int
	depth  int

	opts Options
	log  *zap.Logger
}

func newParser(tokens []lexer.Token, opts []Option) *parser {
	o := newOptions(opts)
	return &parser{
		tokens: tokens,
		opts:   o,
		log:    o.Logger,
	}
}

func (p *parser) curr() (lexer.Token, bool) {
	if p.pos >= len(p.tokens) {
		return lexer.Token{}, false
	}
	return p.tokens[p.pos], true
}

func (p *parser) peek() (lexer.Token, bool) {
	if p.pos+1 >= len(p.tokens) {
		return lexer.Token{}, false
	}
	return p.tokens[p.pos+1], true
}

func (p *parser) next() {
	p.pos++
}

func (p *parser) expectExpression() (*ast.Node, *SyntaxError) {
	tok, ok := p.curr()
	if !ok {
		return nil, errUnexpectedEOF()
	}

	switch {
	case tok.IsClose():
		// a close with no matching open at this position
		return nil, errUnexpectedToken(tok)

	case tok.IsOpen():
		return p.expectGroup(tok)
	}

	p.next()
	return ast.NewAtom(tok), nil
}

func (p *parser) expectGroup(open lexer.Token) (*ast.Node, *SyntaxError) {
	if p.opts.MaxDepth > 0 && p.depth >= p.opts.MaxDepth {
		return nil, errNestingTooDeep(p.opts.MaxDepth, open)
	}

	next, ok := p.peek()
	if !ok {
		p.next()
		return nil, errUnexpectedEOF()
	}
	if next.IsClose() {
		p.next()
		p.next()
		return ast.NewGroup(open), nil
	}

	p.next()
	p.depth++
	defer func() {
		p.depth--
	}()

	first, err := p.expectExpression()
	if err != nil {
		return nil, err
	}
	children := []*ast.Node{first}

	for {
		tok, ok := p.curr()
		if !ok {
			return nil, errUnexpectedEOF()
		}
		if tok.IsClose() {
			p.next()
			return ast.NewGroup(open, children...), nil
		}

		child, err := p.expectExpression()
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}
}

func (p *parser) fail(err *SyntaxError) {
	p.log.Debug("parse failed",
		zap.Stringer("kind", err.Kind),
		zap.String("token", err.Token),
		zap.Int("offset", err.Offset),
		zap.Int("cursor", p.pos),
	)
}

// Read is like Parse, but returns the syntax error with its concrete type.
func Read(tokens []lexer.Token, opts ...Option) (*ast.Node, *SyntaxError) {
	p := newParser(tokens, opts)
	p.log.Debug("parsing expression", zap.Int("tokens", len(tokens)))

	node, err := p.expectExpression()
	if err != nil {
		p.fail(err)
		return nil, err
	}

	// The rest of the input is read and discarded; a stray ")" or an
	// unterminated group in it still fails the parse.
	for {
		if _, ok := p.curr(); !ok {
			break
		}
		if _, err := p.expectExpression(); err != nil {
			p.fail(err)
			return nil, err
		}
	}

	return node, nil
}

// ReadAll is like ParseAll, but returns the syntax error with its concrete
// type.
func ReadAll(tokens []lexer.Token, opts ...Option) ([]*ast.Node, *SyntaxError) {
	p := newParser(tokens, opts)
	p.log.Debug("parsing expressions", zap.Int("tokens", len(tokens)))

	nodes := []*ast.Node{}
	for {
		if _, ok := p.curr(); !ok {
			return nodes, nil
		}

		node, err := p.expectExpression()
		if err != nil {
			p.fail(err)
			return nil, err
		}
		nodes = append(nodes, node)
	}
}

// Parse returns the first expression in tokens. Expressions after it are
// checked for syntax errors and then ignored. On failure the returned error
// is a *SyntaxError and the node is nil.
func Parse(tokens []lexer.Token, opts ...Option) (*ast.Node, error) {
	node, err := Read(tokens, opts...)
	if err != nil {
		return nil, err
	}
	return node, nil
}

// ParseAll reads a sequence of top-level expressions, like "() (1) ()". Empty
// input yields an empty slice. The first error aborts the parse.
func ParseAll(tokens []lexer.Token, opts ...Option) ([]*ast.Node, error) {
	nodes, err := ReadAll(tokens, opts...)
	if err != nil {
		return nil, err
	}
	return nodes, nil
}
