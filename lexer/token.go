package lexer

import (
	"fmt"
)

// Token represents a known sequence of characters (lexical unit)
type Token struct {
	lexeme string
	offset int
}

// NewToken creates a lexical unit
func NewToken(lexeme string, offset int) Token {
	return Token{
		lexeme: lexeme,
		offset: offset,
	}
}

// Pos returns the byte offset of the lexical unit within the input
func (t Token) Pos() int {
	return t.offset
}

// Text returns the raw text of the lexical unit
func (t Token) Text() string {
	return t.lexeme
}

// Is returns true if the token text matches the given lexeme
func (t Token) Is(lexeme string) bool {
	return t.lexeme == lexeme
}

// IsOpen returns true if the token opens a group
func (t Token) IsOpen() bool {
	return t.lexeme == OpenGroup
}

// IsClose returns true if the token closes a group
func (t Token) IsClose() bool {
	return t.lexeme == CloseGroup
}

func (t Token) String() string {
	return fmt.Sprintf("(%q [%d])", t.lexeme, t.offset)
}

// Texts returns the raw text of every token, in order.
func Texts(tokens []Token) []string {
	texts := make([]string, 0, len(tokens))
	for i := range tokens {
		texts = append(texts, tokens[i].lexeme)
	}
	return texts
}
