package lexer

import (
	"testing"

	"cleric/arena"
	"cleric/token"
)

func scanAll(t *testing.T, src string) []token.Token {
	t.Helper()
	l := New(src, arena.New(256, 0))
	toks, err := l.Scan()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return toks
}

func TestLexerKeywordsAndPunctuation(t *testing.T) {
	toks := scanAll(t, "int main(void){return 0;}")
	want := []token.Kind{
		token.KEYWORD_INT, token.IDENTIFIER, token.LPAREN, token.KEYWORD_VOID, token.RPAREN,
		token.LBRACE, token.KEYWORD_RETURN, token.INT, token.SEMICOLON, token.RBRACE, token.EOF,
	}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(toks), len(want), toks)
	}
	for i, k := range want {
		if toks[i].Kind != k {
			t.Errorf("token %d: got %s, want %s", i, toks[i].Kind, k)
		}
	}
}

func TestLexerLongestMatchOperators(t *testing.T) {
	toks := scanAll(t, "<= >= == != && || -- < > ! = -")
	want := []token.Kind{
		token.LESS_EQUAL, token.GREATER_EQUAL, token.EQUAL_EQUAL, token.NOT_EQUAL,
		token.AND_AND, token.OR_OR, token.MINUS_MINUS,
		token.LESS, token.GREATER, token.BANG, token.ASSIGN, token.MINUS, token.EOF,
	}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(toks), len(want), toks)
	}
	for i, k := range want {
		if toks[i].Kind != k {
			t.Errorf("token %d: got %s, want %s", i, toks[i].Kind, k)
		}
	}
}

func TestLexerUnknownCharacter(t *testing.T) {
	l := New("int x = 1 @ 2;", arena.New(256, 0))
	_, err := l.Scan()
	if err == nil {
		t.Fatal("expected an error for '@'")
	}
}

func TestLexerRoundTripOmittingWhitespace(t *testing.T) {
	src := "int  x=5;\n\treturn x ;"
	toks := scanAll(t, src)
	var rebuilt string
	for _, tok := range toks {
		if tok.Kind == token.EOF {
			continue
		}
		rebuilt += tok.Spelling()
	}
	var stripped string
	for i := 0; i < len(src); i++ {
		if !isWhitespace(src[i]) {
			stripped += string(src[i])
		}
	}
	if rebuilt != stripped {
		t.Errorf("got %q, want %q", rebuilt, stripped)
	}
}

func TestLexerOffsetsAreByteOffsets(t *testing.T) {
	toks := scanAll(t, "  return  x;")
	if toks[0].Offset != 2 {
		t.Errorf("got offset %d, want 2", toks[0].Offset)
	}
	if toks[1].Offset != 10 {
		t.Errorf("got offset %d, want 10", toks[1].Offset)
	}
}
