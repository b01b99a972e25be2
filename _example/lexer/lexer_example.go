package main

import (
	"fmt"

	"github.com/xiam/sexpr/lexer"
)

func main() {
	input := `(fn_a (fn_b (89 :A :B (67 3.27))) (fn_c 66 3 53 "Hello))`

	tokens := lexer.Tokenize(input)

	for i, tok := range tokens {
		fmt.Printf("token[%d] (offset: %d)\n\t-> %q\n\n", i, tok.Pos(), tok.Text())
	}
}
