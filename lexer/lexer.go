// Package lexer turns source text into a stream of tokens.
package lexer

import (
	"cleric/arena"
	"cleric/cerr"
	"cleric/token"
)

func isLetter(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || c == '_'
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

// Lexer scans source text into tokens, one next() call at a time, interning
// every identifier/literal lexeme into the arena it was created with.
type Lexer struct {
	arena  *arena.Arena
	source string
	pos    int // byte offset of the next unread character
}

// New creates a Lexer over source, using a for interning lexemes.
func New(source string, a *arena.Arena) *Lexer {
	return &Lexer{arena: a, source: source}
}

func (l *Lexer) current() byte {
	if l.pos >= len(l.source) {
		return 0
	}
	return l.source[l.pos]
}

func (l *Lexer) peekAt(offset int) byte {
	if l.pos+offset >= len(l.source) {
		return 0
	}
	return l.source[l.pos+offset]
}

func (l *Lexer) skipWhitespace() {
	for isWhitespace(l.current()) {
		l.pos++
	}
}

// Next scans and returns the next token, or an error on the first
// unrecognized character. Returns an EOF token (never an error) once the
// source is exhausted.
func (l *Lexer) Next() (token.Token, error) {
	l.skipWhitespace()

	start := l.pos
	c := l.current()

	if c == 0 {
		return token.Token{Kind: token.EOF, Offset: start}, nil
	}

	if isLetter(c) {
		return l.scanIdentifier(start)
	}
	if isDigit(c) {
		return l.scanNumber(start)
	}

	if kind, width, ok := matchOperator(l.source[l.pos:]); ok {
		l.pos += width
		return token.Token{Kind: kind, Offset: start}, nil
	}

	l.pos++
	return token.Token{}, cerr.New("lexer", start, "unknown character %q", c)
}

// Scan runs the lexer to completion, returning every token up to and
// including EOF, or the first lexical error encountered.
func (l *Lexer) Scan() ([]token.Token, error) {
	tokens := arena.NewList[token.Token](32)
	for {
		tok, err := l.Next()
		if err != nil {
			return tokens.Slice(), err
		}
		tokens.Append(tok)
		if tok.Kind == token.EOF {
			return tokens.Slice(), nil
		}
	}
}

func (l *Lexer) scanIdentifier(start int) (token.Token, error) {
	for isLetter(l.current()) || isDigit(l.current()) {
		l.pos++
	}
	word := l.source[start:l.pos]
	if kind, ok := token.Keywords[word]; ok {
		return token.Token{Kind: kind, Offset: start}, nil
	}
	lexeme, err := l.arena.String(word)
	if err != nil {
		return token.Token{}, cerr.New("lexer", start, "%s", err)
	}
	return token.Token{Kind: token.IDENTIFIER, Lexeme: lexeme, Offset: start}, nil
}

func (l *Lexer) scanNumber(start int) (token.Token, error) {
	for isDigit(l.current()) {
		l.pos++
	}
	lexeme, err := l.arena.String(l.source[start:l.pos])
	if err != nil {
		return token.Token{}, cerr.New("lexer", start, "%s", err)
	}
	return token.Token{Kind: token.INT, Lexeme: lexeme, Offset: start}, nil
}

// multiCharOperators lists the two-character operators, longest-match
// first among operators sharing a leading character.
var multiCharOperators = []struct {
	spelling string
	kind     token.Kind
}{
	{"<=", token.LESS_EQUAL},
	{">=", token.GREATER_EQUAL},
	{"==", token.EQUAL_EQUAL},
	{"!=", token.NOT_EQUAL},
	{"&&", token.AND_AND},
	{"||", token.OR_OR},
	{"--", token.MINUS_MINUS},
}

var singleCharOperators = map[byte]token.Kind{
	'(': token.LPAREN,
	')': token.RPAREN,
	'{': token.LBRACE,
	'}': token.RBRACE,
	';': token.SEMICOLON,
	'~': token.TILDE,
	'-': token.MINUS,
	'+': token.PLUS,
	'*': token.STAR,
	'/': token.SLASH,
	'%': token.PERCENT,
	'<': token.LESS,
	'>': token.GREATER,
	'!': token.BANG,
	'=': token.ASSIGN,
}

// matchOperator checks rest (the unconsumed remainder of source) against
// the multi-character operators before falling back to single-character
// punctuation, implementing the lexer's longest-match precedence.
func matchOperator(rest string) (token.Kind, int, bool) {
	for _, op := range multiCharOperators {
		if len(rest) >= len(op.spelling) && rest[:len(op.spelling)] == op.spelling {
			return op.kind, len(op.spelling), true
		}
	}
	if kind, ok := singleCharOperators[rest[0]]; ok {
		return kind, 1, true
	}
	return "", 0, false
}
