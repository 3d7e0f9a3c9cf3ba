package repl

import (
	"bufio"
	"fmt"
	"io"

	"cslex/internal/lexer"
)

const PROMPT = ">> "

// Start reads lines and prints the token stream for each one.
func Start(in io.Reader) {
	scanner := bufio.NewScanner(in)

	for {
		fmt.Print(PROMPT)
		if !scanner.Scan() {
			return
		}

		line := scanner.Text()
		tokens, err := lexer.New(line).Lex()
		if err != nil {
			fmt.Println(err)
			continue
		}

		for _, tok := range tokens {
			if tok.Value != nil {
				fmt.Printf("%-16s %q (%v)\n", tok.Type, tok.Lexeme, tok.Value)
				continue
			}
			fmt.Printf("%-16s %q\n", tok.Type, tok.Lexeme)
		}
	}
}
