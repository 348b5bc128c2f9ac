// Package sema validates an *ast.Program in place: it resolves every
// identifier, assigns fresh temporary IDs, computes decorated names, and
// rejects redeclaration, undeclared use, and non-identifier assignment
// targets.
package sema

import (
	"strconv"

	"cleric/ast"
)

// Validate walks prog and decorates its VarDecl and Identifier nodes with
// temporary IDs and decorated names. It returns the first error
// encountered, short-circuiting the remainder of the walk.
//
// The function body and its top-level block each get their own scope,
// producing two nested scopes for what looks like one region. That is
// observable only through shadowing of a function parameter, which this
// language does not have, so it is kept rather than collapsed.
func Validate(prog *ast.Program) error {
	v := &validator{}
	v.scopes.push() // function-body scope
	v.visitBlock(prog.Func.Body)
	v.scopes.pop()
	return v.err
}

type validator struct {
	scopes  scopeStack
	nextTmp int
	err     error
}

func (v *validator) fail(err error) any {
	if v.err == nil {
		v.err = err
	}
	return nil
}

func (v *validator) freshTemp() int {
	id := v.nextTmp
	v.nextTmp++
	return id
}

func (v *validator) visitBlock(b *ast.Block) {
	v.scopes.push()
	defer v.scopes.pop()
	for _, item := range b.Items.Slice() {
		if v.err != nil {
			return
		}
		item.Accept(v)
	}
}

func (v *validator) VisitVarDecl(n *ast.VarDecl) any {
	if v.err != nil {
		return nil
	}
	if n.TypeName != "int" {
		return v.fail(errorf(UnknownType, n.Tok.Offset, "unknown type %q", n.TypeName))
	}

	id := v.freshTemp()
	decorated := decoratedName(n.Name, id)
	if !v.scopes.declareInCurrent(Symbol{Name: n.Name, TempID: id, Decorated: decorated}) {
		return v.fail(errorf(Redeclaration, n.Tok.Offset, "%q already declared in this scope", n.Name))
	}
	n.TempID = id
	n.Decorated = decorated

	if n.Init != nil {
		n.Init.Accept(v)
	}
	return nil
}

func (v *validator) VisitReturnStmt(n *ast.ReturnStmt) any {
	if v.err != nil {
		return nil
	}
	n.Expr.Accept(v)
	return nil
}

func (v *validator) VisitExprStmt(n *ast.ExprStmt) any {
	if v.err != nil {
		return nil
	}
	n.Expr.Accept(v)
	return nil
}

func (v *validator) VisitIntLiteral(n *ast.IntLiteral) any {
	return nil
}

func (v *validator) VisitIdentifier(n *ast.Identifier) any {
	if v.err != nil {
		return nil
	}
	sym, ok := v.scopes.resolve(n.Name)
	if !ok {
		return v.fail(errorf(UndeclaredIdentifier, n.Tok.Offset, "undeclared identifier %q", n.Name))
	}
	n.TempID = sym.TempID
	n.Decorated = sym.Decorated
	return nil
}

func (v *validator) VisitUnaryOp(n *ast.UnaryOp) any {
	if v.err != nil {
		return nil
	}
	n.Operand.Accept(v)
	return nil
}

func (v *validator) VisitBinaryOp(n *ast.BinaryOp) any {
	if v.err != nil {
		return nil
	}
	n.Left.Accept(v)
	if v.err != nil {
		return nil
	}
	n.Right.Accept(v)
	return nil
}

func (v *validator) VisitAssignmentExp(n *ast.AssignmentExp) any {
	if v.err != nil {
		return nil
	}
	target, ok := n.Target.(*ast.Identifier)
	if !ok {
		return v.fail(errorf(InvalidAssignmentTarget, n.Tok.Offset, "assignment target must be an identifier"))
	}
	target.Accept(v)
	if v.err != nil {
		return nil
	}
	n.Value.Accept(v)
	return nil
}

func decoratedName(name string, id int) string {
	return name + "." + strconv.Itoa(id)
}
