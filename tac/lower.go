package tac

import (
	"strconv"

	"cleric/arena"
	"cleric/ast"
)

// NoHint marks the absence of a target-temp hint.
const NoHint = -1

// Lower produces the TAC for a validated program. The caller must run
// sema.Validate first; Lower trusts that every VarDecl and Identifier
// already carries its temporary ID.
func Lower(prog *ast.Program) *Program {
	fn := &Function{Name: prog.Func.Name, Instructions: arena.NewList[Instruction](16)}
	l := &lowerer{fn: fn}
	l.nextTemp = maxPreassignedTemp(prog.Func.Body) + 1
	l.lowerBlock(prog.Func.Body)
	return &Program{Func: l.fn}
}

// maxPreassignedTemp scans a function body for the highest temporary ID
// any VarDecl received during validation, so that expression temporaries
// allocated during lowering never collide with variable temporaries.
func maxPreassignedTemp(b *ast.Block) int {
	max := -1
	for _, item := range b.Items.Slice() {
		if decl, ok := item.(*ast.VarDecl); ok && decl.TempID > max {
			max = decl.TempID
		}
	}
	return max
}

type lowerer struct {
	fn        *Function
	nextTemp  int
	nextLabel int
	hint      int
}

func (l *lowerer) emit(instr Instruction) {
	l.fn.Instructions.Append(instr)
}

func (l *lowerer) freshTemp() int {
	id := l.nextTemp
	l.nextTemp++
	return id
}

func (l *lowerer) freshLabel() string {
	name := labelName(l.nextLabel)
	l.nextLabel++
	return name
}

func labelName(n int) string {
	return "L" + strconv.Itoa(n)
}

// resolveDst honors a target-temp hint if one was given, otherwise
// allocates a fresh destination.
func (l *lowerer) resolveDst(hint int) int {
	if hint != NoHint {
		return hint
	}
	return l.freshTemp()
}

func (l *lowerer) lowerBlock(b *ast.Block) {
	for _, item := range b.Items.Slice() {
		item.Accept(l)
	}
}

// lowerExpr lowers e under the given target-temp hint and returns the
// operand where its value ends up.
func (l *lowerer) lowerExpr(e ast.Expr, hint int) Operand {
	saved := l.hint
	l.hint = hint
	op := e.Accept(l).(Operand)
	l.hint = saved
	return op
}

func (l *lowerer) VisitVarDecl(n *ast.VarDecl) any {
	if n.Init == nil {
		return nil
	}
	value := l.lowerExpr(n.Init, n.TempID)
	if !(value.Kind == OperandTemp && value.Temp == n.TempID) {
		l.emit(Instruction{Op: OpCopy, Dst: TempOperand(n.TempID), Src1: value})
	}
	return nil
}

func (l *lowerer) VisitReturnStmt(n *ast.ReturnStmt) any {
	value := l.lowerExpr(n.Expr, NoHint)
	l.emit(Instruction{Op: OpReturn, Src1: value})
	return nil
}

func (l *lowerer) VisitExprStmt(n *ast.ExprStmt) any {
	l.lowerExpr(n.Expr, NoHint)
	return nil
}

func (l *lowerer) VisitIntLiteral(n *ast.IntLiteral) any {
	return ConstOperand(n.Value)
}

func (l *lowerer) VisitIdentifier(n *ast.Identifier) any {
	return TempOperand(n.TempID)
}

func (l *lowerer) VisitUnaryOp(n *ast.UnaryOp) any {
	hint := l.hint
	operand := l.lowerExpr(n.Operand, NoHint)
	dst := l.resolveDst(hint)

	var op Op
	switch n.Op {
	case ast.Negate:
		op = OpNegate
	case ast.Complement:
		op = OpComplement
	case ast.LogicalNot:
		op = OpLogicalNot
	}
	l.emit(Instruction{Op: op, Dst: TempOperand(dst), Src1: operand})
	return TempOperand(dst)
}

var binaryOpTable = map[ast.BinaryOperator]Op{
	ast.Add:          OpAdd,
	ast.Sub:          OpSub,
	ast.Mul:          OpMul,
	ast.Div:          OpDiv,
	ast.Mod:          OpMod,
	ast.Less:         OpLess,
	ast.Greater:      OpGreater,
	ast.LessEqual:    OpLessEqual,
	ast.GreaterEqual: OpGreaterEqual,
	ast.Equal:        OpEqual,
	ast.NotEqual:     OpNotEqual,
}

func (l *lowerer) VisitBinaryOp(n *ast.BinaryOp) any {
	hint := l.hint
	if n.Op == ast.LogicalAnd {
		return l.lowerLogicalAnd(n, hint)
	}
	if n.Op == ast.LogicalOr {
		return l.lowerLogicalOr(n, hint)
	}

	left := l.lowerExpr(n.Left, NoHint)
	right := l.lowerExpr(n.Right, NoHint)
	dst := l.resolveDst(hint)
	l.emit(Instruction{Op: binaryOpTable[n.Op], Dst: TempOperand(dst), Src1: left, Src2: right})
	return TempOperand(dst)
}

// lowerLogicalAnd lowers `lhs && rhs` per the short-circuit template: skip
// the right operand entirely when the left is already false.
func (l *lowerer) lowerLogicalAnd(n *ast.BinaryOp, hint int) any {
	dst := l.resolveDst(hint)
	left := l.lowerExpr(n.Left, NoHint)
	falseLabel := l.freshLabel()
	endLabel := l.freshLabel()

	l.emit(Instruction{Op: OpIfFalseGoto, Cond: left, Label: falseLabel})
	right := l.lowerExpr(n.Right, NoHint)
	l.emit(Instruction{Op: OpNotEqual, Dst: TempOperand(dst), Src1: right, Src2: ConstOperand(0)})
	l.emit(Instruction{Op: OpGoto, Label: endLabel})
	l.emit(Instruction{Op: OpLabel, Label: falseLabel})
	l.emit(Instruction{Op: OpCopy, Dst: TempOperand(dst), Src1: ConstOperand(0)})
	l.emit(Instruction{Op: OpLabel, Label: endLabel})
	return TempOperand(dst)
}

// lowerLogicalOr is lowerLogicalAnd's mirror image: skip the right operand
// once the left is already true.
func (l *lowerer) lowerLogicalOr(n *ast.BinaryOp, hint int) any {
	dst := l.resolveDst(hint)
	left := l.lowerExpr(n.Left, NoHint)
	trueLabel := l.freshLabel()
	endLabel := l.freshLabel()

	l.emit(Instruction{Op: OpIfTrueGoto, Cond: left, Label: trueLabel})
	right := l.lowerExpr(n.Right, NoHint)
	l.emit(Instruction{Op: OpNotEqual, Dst: TempOperand(dst), Src1: right, Src2: ConstOperand(0)})
	l.emit(Instruction{Op: OpGoto, Label: endLabel})
	l.emit(Instruction{Op: OpLabel, Label: trueLabel})
	l.emit(Instruction{Op: OpCopy, Dst: TempOperand(dst), Src1: ConstOperand(1)})
	l.emit(Instruction{Op: OpLabel, Label: endLabel})
	return TempOperand(dst)
}

func (l *lowerer) VisitAssignmentExp(n *ast.AssignmentExp) any {
	target := n.Target.(*ast.Identifier)
	value := l.lowerExpr(n.Value, NoHint)
	l.emit(Instruction{Op: OpCopy, Dst: TempOperand(target.TempID), Src1: value})
	return value
}
