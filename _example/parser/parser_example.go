package main

import (
	"log"
	"os"

	"github.com/xiam/sexpr/ast"
	"github.com/xiam/sexpr/lexer"
	"github.com/xiam/sexpr/parser"
)

func main() {
	input := `(fn_a (fn_b (89 :A :B (67 3.27))) (fn_c 66 3 53 😊))`

	root, err := parser.Parse(lexer.Tokenize(input))
	if err != nil {
		log.Fatal("parser.Parse:", err)
	}

	if err := ast.Print(os.Stdout, root); err != nil {
		log.Fatal("ast.Print:", err)
	}
}
