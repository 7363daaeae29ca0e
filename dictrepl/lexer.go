package main

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strconv"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// Token kinds for REPL input lines.
const (
	Ident int = iota + 1
	Int
	String
)

// token is a scanned piece of a command line. For Int tokens, value holds
// the converted int, for String tokens the unquoted text; Ident tokens
// carry their lexeme as value.
type token struct {
	kind   int
	lexeme string
	value  interface{}
}

// newLineLexer compiles the DFA for REPL command lines: identifiers,
// (signed) integer literals and double-quoted strings, with blanks
// skipped.
func newLineLexer() (*lexmachine.Lexer, error) {
	lexer := lexmachine.NewLexer()
	lexer.Add([]byte(`[a-zA-Z_][a-zA-Z0-9_]*`), makeToken(Ident))
	lexer.Add([]byte(`-?[0-9]+`), makeToken(Int))
	lexer.Add([]byte(`"[^"]*"`), makeToken(String))
	lexer.Add([]byte(`( |\t)+`), skip)
	if err := lexer.Compile(); err != nil {
		tracer().Errorf("Error compiling DFA: %v", err)
		return nil, err
	}
	return lexer, nil
}

// skip is a pre-defined action which ignores the scanned match.
func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// makeToken is a pre-defined action which wraps a scanned match into a
// token.
func makeToken(kind int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(kind, string(m.Bytes), m), nil
	}
}

// lineTokens scans a command line into tokens. Unrecognized input yields
// an error instead of a token.
func lineTokens(lexer *lexmachine.Lexer, line string) ([]token, error) {
	scanner, err := lexer.Scanner([]byte(line))
	if err != nil {
		return nil, err
	}
	var tokens []token
	tok, err, eof := scanner.Next()
	for !eof {
		if err != nil {
			return nil, fmt.Errorf("cannot read input: %v", err)
		}
		if tok != nil {
			lmtok := tok.(*lexmachine.Token)
			t := token{kind: lmtok.Type, lexeme: string(lmtok.Lexeme)}
			switch t.kind {
			case Int:
				t.value, _ = strconv.Atoi(t.lexeme)
			case String:
				t.value = t.lexeme[1 : len(t.lexeme)-1]
			default:
				t.value = t.lexeme
			}
			tokens = append(tokens, t)
		}
		tok, err, eof = scanner.Next()
	}
	return tokens, nil
}
