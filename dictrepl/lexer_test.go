package main

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestLineTokens(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dicts.repl")
	defer teardown()
	//
	lexer, err := newLineLexer()
	if err != nil {
		t.Fatalf("Unexpected lexer error: %v", err)
	}
	tokens, err := lineTokens(lexer, `set greeting "hello world"`)
	if err != nil {
		t.Fatalf("Unexpected scanning error: %v", err)
	}
	if len(tokens) != 3 {
		t.Fatalf("Expected 3 tokens, got %d", len(tokens))
	}
	if tokens[0].kind != Ident || tokens[0].lexeme != "set" {
		t.Errorf("Expected command token set, got %v", tokens[0])
	}
	if tokens[2].kind != String || tokens[2].value != "hello world" {
		t.Errorf("Expected unquoted string value, got %v", tokens[2].value)
	}
}

func TestLineTokensInt(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dicts.repl")
	defer teardown()
	//
	lexer, err := newLineLexer()
	if err != nil {
		t.Fatalf("Unexpected lexer error: %v", err)
	}
	tokens, err := lineTokens(lexer, "set n -42")
	if err != nil {
		t.Fatalf("Unexpected scanning error: %v", err)
	}
	if len(tokens) != 3 {
		t.Fatalf("Expected 3 tokens, got %d", len(tokens))
	}
	if tokens[2].kind != Int || tokens[2].value != -42 {
		t.Errorf("Expected int value -42, got %v", tokens[2].value)
	}
}
