package ast

import "cleric/token"

// VarDecl declares a variable, optionally with an initializer. TempID and
// Decorated are populated by the validator; TempID is NoTempID until then.
type VarDecl struct {
	TypeName  string
	Name      string
	Tok       token.Token
	Init      Expr
	TempID    int
	Decorated string
}

func (n *VarDecl) Accept(v StmtVisitor) any { return v.VisitVarDecl(n) }

// ReturnStmt returns the value of Expr from the enclosing function.
type ReturnStmt struct {
	Expr Expr
}

func (n *ReturnStmt) Accept(v StmtVisitor) any { return v.VisitReturnStmt(n) }

// ExprStmt evaluates Expr and discards the result.
type ExprStmt struct {
	Expr Expr
}

func (n *ExprStmt) Accept(v StmtVisitor) any { return v.VisitExprStmt(n) }
