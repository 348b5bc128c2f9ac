package ast

import "cleric/token"

// UnaryOperator enumerates the language's prefix unary operators.
type UnaryOperator int

const (
	Negate UnaryOperator = iota
	Complement
	LogicalNot
)

// BinaryOperator enumerates the language's binary operators (arithmetic,
// relational, and short-circuit logical).
type BinaryOperator int

const (
	Add BinaryOperator = iota
	Sub
	Mul
	Div
	Mod
	Less
	Greater
	LessEqual
	GreaterEqual
	Equal
	NotEqual
	LogicalAnd
	LogicalOr
)

// IsShortCircuit reports whether op must lower its right operand under a
// conditional jump rather than evaluate it unconditionally.
func (op BinaryOperator) IsShortCircuit() bool {
	return op == LogicalAnd || op == LogicalOr
}

// IntLiteral is a 64-bit signed integer constant.
type IntLiteral struct {
	Value int64
}

func (n *IntLiteral) Accept(v ExprVisitor) any { return v.VisitIntLiteral(n) }

// Identifier names a variable. TempID and Decorated are populated by the
// validator once the name resolves to a declaration; until then TempID is
// NoTempID.
type Identifier struct {
	Name      string
	Tok       token.Token
	TempID    int
	Decorated string
}

func (n *Identifier) Accept(v ExprVisitor) any { return v.VisitIdentifier(n) }

// UnaryOp applies a prefix operator to one operand.
type UnaryOp struct {
	Op      UnaryOperator
	Operand Expr
	Tok     token.Token
}

func (n *UnaryOp) Accept(v ExprVisitor) any { return v.VisitUnaryOp(n) }

// BinaryOp applies an infix operator to two operands.
type BinaryOp struct {
	Op    BinaryOperator
	Left  Expr
	Right Expr
	Tok   token.Token
}

func (n *BinaryOp) Accept(v ExprVisitor) any { return v.VisitBinaryOp(n) }

// AssignmentExp assigns Value to Target. Validation requires Target to be
// an *Identifier; the parser accepts any expression there and leaves the
// check to validation so a malformed target still produces a clean AST.
type AssignmentExp struct {
	Target Expr
	Value  Expr
	Tok    token.Token
}

func (n *AssignmentExp) Accept(v ExprVisitor) any { return v.VisitAssignmentExp(n) }
