package parser

import (
	"errors"
	"fmt"

	"github.com/xiam/sexpr/lexer"
)

// Sentinel errors; every *SyntaxError matches exactly one of them through
// errors.Is.
var (
	ErrUnexpectedEOF   = errors.New("unexpected end of input")
	ErrUnexpectedToken = errors.New("unexpected token")
	ErrNestingTooDeep  = errors.New("nesting too deep")
)

// ErrorKind identifies the syntax error condition.
type ErrorKind uint8

// Syntax error conditions
const (
	UnexpectedEndOfInput ErrorKind = iota + 1
	UnexpectedToken
	NestingTooDeep
)

var errorKindName = map[ErrorKind]string{
	UnexpectedEndOfInput: "UnexpectedEndOfInput",
	UnexpectedToken:      "UnexpectedToken",
	NestingTooDeep:       "NestingTooDeep",
}

func (k ErrorKind) String() string {
	if s, ok := errorKindName[k]; ok {
		return s
	}
	return "invalid"
}

// SyntaxError describes why a token sequence could not be parsed.
type SyntaxError struct {
	Kind ErrorKind

	// Token and Offset are set for UnexpectedToken.
	Token  string
	Offset int

	// Limit is set for NestingTooDeep.
	Limit int
}

func errUnexpectedEOF() *SyntaxError {
	return &SyntaxError{Kind: UnexpectedEndOfInput, Offset: -1}
}

func errUnexpectedToken(tok lexer.Token) *SyntaxError {
	return &SyntaxError{Kind: UnexpectedToken, Token: tok.Text(), Offset: tok.Pos()}
}

func errNestingTooDeep(limit int, tok lexer.Token) *SyntaxError {
	return &SyntaxError{Kind: NestingTooDeep, Token: tok.Text(), Offset: tok.Pos(), Limit: limit}
}

func (e *SyntaxError) Error() string {
	switch e.Kind {
	case UnexpectedEndOfInput:
		return ErrUnexpectedEOF.Error()
	case UnexpectedToken:
		if e.Offset < 0 {
			return fmt.Sprintf("%v %q", ErrUnexpectedToken, e.Token)
		}
		return fmt.Sprintf("%v %q at offset %d", ErrUnexpectedToken, e.Token, e.Offset)
	case NestingTooDeep:
		return fmt.Sprintf("%v: more than %d levels at offset %d", ErrNestingTooDeep, e.Limit, e.Offset)
	}
	return "invalid syntax error"
}

// Unwrap returns the sentinel error matching the error kind.
func (e *SyntaxError) Unwrap() error {
	switch e.Kind {
	case UnexpectedEndOfInput:
		return ErrUnexpectedEOF
	case UnexpectedToken:
		return ErrUnexpectedToken
	case NestingTooDeep:
		return ErrNestingTooDeep
	}
	return nil
}
