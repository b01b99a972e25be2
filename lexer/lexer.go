package lexer

// Lexemes of the structural tokens.
const (
	OpenGroup  = "("
	CloseGroup = ")"
)

const (
	runeSpace      = ' '
	runeOpenGroup  = '('
	runeCloseGroup = ')'
)

type lexState func(*Lexer) lexState

// Lexer splits S-expression text into tokens. Space, "(" and ")" are the only
// structural characters; anything else is part of an atom.
type Lexer struct {
	in     string
	tokens []Token

	start int
	end   int
}

// New initializes a Lexer object
func New(in string) *Lexer {
	return &Lexer{
		in:     in,
		tokens: []Token{},
	}
}

// Scan runs the lexer until the input is exhausted and returns the tokens
// found.
func (lx *Lexer) Scan() []Token {
	for state := lexDefaultState; state != nil; {
		state = state(lx)
	}
	return lx.tokens
}

// Tokens returns the tokens emitted so far.
func (lx *Lexer) Tokens() []Token {
	return lx.tokens
}

func isStructural(c byte) bool {
	return c == runeSpace || c == runeOpenGroup || c == runeCloseGroup
}

func (lx *Lexer) pending() bool {
	return lx.start < lx.end
}

func (lx *Lexer) emitPending() {
	if lx.pending() {
		lx.tokens = append(lx.tokens, NewToken(lx.in[lx.start:lx.end], lx.start))
	}
	lx.start = lx.end
}

// skip moves both window bounds past the current character.
func (lx *Lexer) skip() {
	lx.end++
	lx.start = lx.end
}

func lexDefaultState(lx *Lexer) lexState {
	if lx.end >= len(lx.in) {
		return lexStateEOF
	}

	c := lx.in[lx.end]
	if !isStructural(c) {
		return lexAtom
	}

	lx.emitPending()
	if c != runeSpace {
		lx.tokens = append(lx.tokens, NewToken(lx.in[lx.end:lx.end+1], lx.end))
	}
	lx.skip()

	return lexDefaultState
}

func lexAtom(lx *Lexer) lexState {
	for lx.end < len(lx.in) && !isStructural(lx.in[lx.end]) {
		lx.end++
	}
	return lexDefaultState
}

func lexStateEOF(lx *Lexer) lexState {
	lx.emitPending()
	return nil
}

// Tokenize takes a string and returns all the tokens within it. Empty input
// yields an empty sequence.
func Tokenize(in string) []Token {
	return New(in).Scan()
}
