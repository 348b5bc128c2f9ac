// Package parser implements a recursive-descent parser for statements and
// declarations, and a precedence-climbing parser for expressions.
//
// https://en.wikipedia.org/wiki/Operator-precedence_parser#Precedence_climbing_method
package parser

import (
	"strconv"

	"cleric/arena"
	"cleric/ast"
	"cleric/token"
)

// precedence gives each binary operator its level, lowest to highest.
// Assignment is the one right-associative operator; every other operator
// in this table is left-associative.
var precedence = map[token.Kind]int{
	token.ASSIGN:        1,
	token.OR_OR:         2,
	token.AND_AND:       3,
	token.EQUAL_EQUAL:   4,
	token.NOT_EQUAL:     4,
	token.LESS:          5,
	token.GREATER:       5,
	token.LESS_EQUAL:    5,
	token.GREATER_EQUAL: 5,
	token.PLUS:          6,
	token.MINUS:         6,
	token.STAR:          7,
	token.SLASH:         7,
	token.PERCENT:       7,
}

var binaryOps = map[token.Kind]ast.BinaryOperator{
	token.PLUS:          ast.Add,
	token.MINUS:         ast.Sub,
	token.STAR:          ast.Mul,
	token.SLASH:         ast.Div,
	token.PERCENT:       ast.Mod,
	token.LESS:          ast.Less,
	token.GREATER:       ast.Greater,
	token.LESS_EQUAL:    ast.LessEqual,
	token.GREATER_EQUAL: ast.GreaterEqual,
	token.EQUAL_EQUAL:   ast.Equal,
	token.NOT_EQUAL:     ast.NotEqual,
	token.AND_AND:       ast.LogicalAnd,
	token.OR_OR:         ast.LogicalOr,
}

var unaryOps = map[token.Kind]ast.UnaryOperator{
	token.MINUS: ast.Negate,
	token.TILDE: ast.Complement,
	token.BANG:  ast.LogicalNot,
}

// Parser consumes a token stream and produces an ast.Program.
type Parser struct {
	tokens []token.Token
	pos    int
}

// New creates a Parser over tokens, which must end with an EOF token.
func New(tokens []token.Token) *Parser {
	return &Parser{tokens: tokens}
}

func (p *Parser) peek() token.Token     { return p.tokens[p.pos] }
func (p *Parser) previous() token.Token { return p.tokens[p.pos-1] }

func (p *Parser) isFinished() bool { return p.peek().Kind == token.EOF }

func (p *Parser) advance() token.Token {
	if !p.isFinished() {
		p.pos++
	}
	return p.previous()
}

func (p *Parser) checkKind(kind token.Kind) bool {
	return !p.isFinished() && p.peek().Kind == kind
}

func (p *Parser) match(kinds ...token.Kind) bool {
	for _, k := range kinds {
		if p.checkKind(k) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) consume(kind token.Kind, errMsg string) (token.Token, error) {
	if p.checkKind(kind) {
		return p.advance(), nil
	}
	return token.Token{}, syntaxErrorf(p.peek().Offset, "%s", errMsg)
}

// Parse parses the entire token stream into a *ast.Program: `int <ident>
// ( void ) { <block-item>* }`.
func (p *Parser) Parse() (*ast.Program, error) {
	fn, err := p.funcDef()
	if err != nil {
		return nil, err
	}
	if !p.isFinished() {
		return nil, syntaxErrorf(p.peek().Offset, "unexpected token %q after function definition", p.peek().Spelling())
	}
	return &ast.Program{Func: fn}, nil
}

func (p *Parser) funcDef() (*ast.FuncDef, error) {
	if _, err := p.consume(token.KEYWORD_INT, "expected 'int' return type"); err != nil {
		return nil, err
	}
	name, err := p.consume(token.IDENTIFIER, "expected function name")
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.LPAREN, "expected '(' after function name"); err != nil {
		return nil, err
	}
	if _, err := p.consume(token.KEYWORD_VOID, "expected 'void' parameter list"); err != nil {
		return nil, err
	}
	if _, err := p.consume(token.RPAREN, "expected ')' after 'void'"); err != nil {
		return nil, err
	}
	body, err := p.block()
	if err != nil {
		return nil, err
	}
	return &ast.FuncDef{Name: name.Spelling(), Body: body}, nil
}

func (p *Parser) block() (*ast.Block, error) {
	if _, err := p.consume(token.LBRACE, "expected '{' to start block"); err != nil {
		return nil, err
	}
	items := arena.NewList[ast.Stmt](4)
	for !p.checkKind(token.RBRACE) && !p.isFinished() {
		item, err := p.blockItem()
		if err != nil {
			return nil, err
		}
		items.Append(item)
	}
	if _, err := p.consume(token.RBRACE, "expected '}' to close block"); err != nil {
		return nil, err
	}
	return &ast.Block{Items: items}, nil
}

func (p *Parser) blockItem() (ast.Stmt, error) {
	if p.checkKind(token.KEYWORD_INT) {
		return p.varDecl()
	}
	return p.statement()
}

// varDecl parses `int <ident> ( = <expr> )? ;`.
func (p *Parser) varDecl() (ast.Stmt, error) {
	typeTok, err := p.consume(token.KEYWORD_INT, "expected 'int' type")
	if err != nil {
		return nil, err
	}
	nameTok, err := p.consume(token.IDENTIFIER, "expected variable name")
	if err != nil {
		return nil, err
	}

	var init ast.Expr
	if p.match(token.ASSIGN) {
		init, err = p.expression()
		if err != nil {
			return nil, err
		}
	}

	if _, err := p.consume(token.SEMICOLON, "expected ';' after declaration"); err != nil {
		return nil, err
	}

	return &ast.VarDecl{
		TypeName: typeTok.Spelling(),
		Name:     nameTok.Spelling(),
		Tok:      nameTok,
		Init:     init,
		TempID:   ast.NoTempID,
	}, nil
}

// statement parses `return <expr> ;` or an expression statement `<expr> ;`.
func (p *Parser) statement() (ast.Stmt, error) {
	if p.match(token.KEYWORD_RETURN) {
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(token.SEMICOLON, "expected ';' after return value"); err != nil {
			return nil, err
		}
		return &ast.ReturnStmt{Expr: expr}, nil
	}

	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.SEMICOLON, "expected ';' after expression"); err != nil {
		return nil, err
	}
	return &ast.ExprStmt{Expr: expr}, nil
}

func (p *Parser) expression() (ast.Expr, error) {
	return p.parseExpression(1)
}

// parseExpression implements precedence climbing: parse a unary expression,
// then repeatedly consume binary operators whose precedence is at least
// minPrec, recursing into the right-hand side with minPrec raised to
// prec+1 (left-associative) or kept at prec (right-associative, i.e. only
// assignment in this grammar).
func (p *Parser) parseExpression(minPrec int) (ast.Expr, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}

	for {
		tok := p.peek()
		prec, ok := precedence[tok.Kind]
		if !ok || prec < minPrec {
			break
		}
		p.advance()

		if tok.Kind == token.ASSIGN {
			value, err := p.parseExpression(prec)
			if err != nil {
				return nil, err
			}
			left = &ast.AssignmentExp{Target: left, Value: value, Tok: tok}
			continue
		}

		right, err := p.parseExpression(prec + 1)
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryOp{Op: binaryOps[tok.Kind], Left: left, Right: right, Tok: tok}
	}

	return left, nil
}

func (p *Parser) parseUnary() (ast.Expr, error) {
	if p.checkKind(token.MINUS) || p.checkKind(token.TILDE) || p.checkKind(token.BANG) {
		op := p.advance()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryOp{Op: unaryOps[op.Kind], Operand: operand, Tok: op}, nil
	}
	return p.parsePrimary()
}

func (p *Parser) parsePrimary() (ast.Expr, error) {
	if p.match(token.INT) {
		tok := p.previous()
		value, err := strconv.ParseInt(tok.Lexeme, 10, 64)
		if err != nil {
			return nil, syntaxErrorf(tok.Offset, "invalid integer literal %q", tok.Lexeme)
		}
		return &ast.IntLiteral{Value: value}, nil
	}

	if p.match(token.IDENTIFIER) {
		tok := p.previous()
		return &ast.Identifier{Name: tok.Spelling(), Tok: tok, TempID: ast.NoTempID}, nil
	}

	if p.match(token.LPAREN) {
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(token.RPAREN, "expected ')' to close expression"); err != nil {
			return nil, err
		}
		return expr, nil
	}

	tok := p.peek()
	return nil, syntaxErrorf(tok.Offset, "unexpected token %q", tok.Spelling())
}
