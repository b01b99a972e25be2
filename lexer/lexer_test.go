package lexer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	testCases := []struct {
		In  string
		Out []string
	}{
		{
			``,
			[]string{},
		},
		{
			`12`,
			[]string{"12"},
		},
		{
			`()`,
			[]string{"(", ")"},
		},
		{
			`(1 2)`,
			[]string{"(", "1", "2", ")"},
		},
		{
			`  a  b `,
			[]string{"a", "b"},
		},
		{
			`((1 2) ((2) 3))`,
			[]string{"(", "(", "1", "2", ")", "(", "(", "2", ")", "3", ")", ")"},
		},
		{
			`(+ 1 (- 566 6))`,
			[]string{"(", "+", "1", "(", "-", "566", "6", ")", ")"},
		},
		{
			`)(`,
			[]string{")", "("},
		},
		{
			"(a\tb\nc)",
			[]string{"(", "a\tb\nc", ")"},
		},
		{
			`(fn1 [:A "😊"])`,
			[]string{"(", "fn1", "[:A", `"😊"]`, ")"},
		},
		{
			`   `,
			[]string{},
		},
	}

	for i := range testCases {
		tokens := Tokenize(testCases[i].In)

		assert.NotNil(t, tokens)
		assert.Equal(t, testCases[i].Out, Texts(tokens))
	}
}

func TestTokenPositions(t *testing.T) {
	testCases := []struct {
		In  string
		Pos []int
	}{
		{
			"",
			[]int{},
		},
		{
			"1",
			[]int{0},
		},
		{
			"(1 22)",
			[]int{0, 1, 3, 5},
		},
		{
			"  abc  (d)",
			[]int{2, 7, 8, 9},
		},
	}

	getTokenPositions := func(tokens []Token) []int {
		ret := make([]int, 0, len(tokens))
		for i := range tokens {
			ret = append(ret, tokens[i].Pos())
		}
		return ret
	}

	for i := range testCases {
		tokens := Tokenize(testCases[i].In)
		assert.Equal(t, testCases[i].Pos, getTokenPositions(tokens))
	}
}

func TestTokensNeverContainStructuralCharacters(t *testing.T) {
	inputs := []string{
		`(a(b)c)`,
		`(((  x  ) y)z  )`,
		`a b c d e`,
		`()()()`,
		`(fn sum [ a b ] [ (+ a b) ])`,
	}

	for _, in := range inputs {
		for _, tok := range Tokenize(in) {
			assert.NotEmpty(t, tok.Text())
			if tok.IsOpen() || tok.IsClose() {
				continue
			}
			assert.False(t, strings.ContainsAny(tok.Text(), " ()"), "token %v", tok)
		}
	}
}

func TestLexerScan(t *testing.T) {
	lx := New(`(a b)`)
	assert.Empty(t, lx.Tokens())

	tokens := lx.Scan()
	assert.Equal(t, []string{"(", "a", "b", ")"}, Texts(tokens))
	assert.Equal(t, tokens, lx.Tokens())
}

func TestToken(t *testing.T) {
	tok := NewToken(")", 4)

	assert.True(t, tok.Is(")"))
	assert.True(t, tok.IsClose())
	assert.False(t, tok.IsOpen())
	assert.Equal(t, 4, tok.Pos())
	assert.Equal(t, `(")" [4])`, tok.String())
}
