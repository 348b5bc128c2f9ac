// Package codegen translates TAC into x86-64 assembly text using a naive
// stack-slot allocator: every temporary gets its own permanent slot on the
// function's frame.
package codegen

import (
	"fmt"
	"strings"

	"cleric/tac"
)

// Target selects the host assembler/symbol-naming convention. codegen
// itself never inspects the running OS; callers decide and pass Target in,
// keeping this package a pure function of its inputs.
type Target int

const (
	TargetLinuxAMD64 Target = iota
	TargetDarwinAMD64
)

// Generator accumulates assembly text for one function into a single
// strings.Builder, in the teacher's line-at-a-time emission style.
type Generator struct {
	out    strings.Builder
	target Target
}

// Generate renders p as x86-64 assembly text for target.
func Generate(p *tac.Program, target Target) string {
	g := &Generator{target: target}
	g.function(p.Func)
	return g.out.String()
}

func (g *Generator) line(format string, args ...any) {
	fmt.Fprintf(&g.out, format, args...)
	g.out.WriteByte('\n')
}

// symbolName applies the host-specific leading-underscore convention.
func (g *Generator) symbolName(name string) string {
	if g.target == TargetDarwinAMD64 {
		return "_" + name
	}
	return name
}

func (g *Generator) function(fn *tac.Function) {
	frame := frameSize(maxTempID(fn))
	sym := g.symbolName(fn.Name)

	g.line(".globl %s", sym)
	g.line("%s:", sym)
	g.line("\tpushq %%rbp")
	g.line("\tmovq %%rsp, %%rbp")
	g.line("\tsubq $%d, %%rsp", frame)

	for _, instr := range fn.Instructions.Slice() {
		g.instruction(instr)
	}
}

// maxTempID returns the highest temporary ID referenced by any operand in
// fn, or -1 if the function references none.
func maxTempID(fn *tac.Function) int {
	max := -1
	bump := func(o tac.Operand) {
		if o.Kind == tac.OperandTemp && o.Temp > max {
			max = o.Temp
		}
	}
	for _, instr := range fn.Instructions.Slice() {
		bump(instr.Dst)
		bump(instr.Src1)
		bump(instr.Src2)
		bump(instr.Cond)
	}
	return max
}

// frameSize allocates (maxTempID+1)*8 bytes, rounded up to 16 and floored
// at 32.
func frameSize(maxTempID int) int {
	size := (maxTempID + 1) * 8
	size = ((size + 15) / 16) * 16
	if size < 32 {
		size = 32
	}
	return size
}

// slot formats a temporary's stack operand: tN lives at -(N+1)*8(%rbp).
func slot(id int) string {
	return fmt.Sprintf("-%d(%%rbp)", (id+1)*8)
}

func operand(o tac.Operand) string {
	switch o.Kind {
	case tac.OperandConst:
		return fmt.Sprintf("$%d", o.Const)
	case tac.OperandTemp:
		return slot(o.Temp)
	default:
		return "?"
	}
}

func (g *Generator) instruction(i tac.Instruction) {
	switch i.Op {
	case tac.OpLabel:
		g.line("%s:", i.Label)
	case tac.OpGoto:
		g.line("\tjmp %s", i.Label)
	case tac.OpIfFalseGoto:
		g.line("\tmovl %s, %%eax", operand(i.Cond))
		g.line("\ttestl %%eax, %%eax")
		g.line("\tjz %s", i.Label)
	case tac.OpIfTrueGoto:
		g.line("\tmovl %s, %%eax", operand(i.Cond))
		g.line("\ttestl %%eax, %%eax")
		g.line("\tjnz %s", i.Label)
	case tac.OpReturn:
		g.line("\tmovl %s, %%eax", operand(i.Src1))
		g.line("\tleave")
		g.line("\tretq")
	case tac.OpCopy:
		// A constant source can be stored straight into the slot; only a
		// memory-to-memory copy needs to route through %eax.
		if i.Src1.Kind == tac.OperandConst {
			g.line("\tmovl %s, %s", operand(i.Src1), operand(i.Dst))
			break
		}
		g.line("\tmovl %s, %%eax", operand(i.Src1))
		g.line("\tmovl %%eax, %s", operand(i.Dst))
	case tac.OpNegate:
		g.line("\tmovl %s, %%eax", operand(i.Src1))
		g.line("\tnegl %%eax")
		g.line("\tmovl %%eax, %s", operand(i.Dst))
	case tac.OpComplement:
		g.complement(i)
	case tac.OpLogicalNot:
		g.line("\tmovl %s, %%eax", operand(i.Src1))
		g.line("\tcmpl $0, %%eax")
		g.line("\tsete %%al")
		g.line("\tmovzbl %%al, %%eax")
		g.line("\tmovl %%eax, %s", operand(i.Dst))
	case tac.OpAdd:
		g.arith("addl", i)
	case tac.OpSub:
		g.arith("subl", i)
	case tac.OpMul:
		g.arith("imull", i)
	case tac.OpDiv:
		g.divmod(i, "%eax")
	case tac.OpMod:
		g.divmod(i, "%edx")
	case tac.OpLess:
		g.relational("setl", i)
	case tac.OpGreater:
		g.relational("setg", i)
	case tac.OpLessEqual:
		g.relational("setle", i)
	case tac.OpGreaterEqual:
		g.relational("setge", i)
	case tac.OpEqual:
		g.relational("sete", i)
	case tac.OpNotEqual:
		g.relational("setne", i)
	}
}

// complement emits in place when dst and src coincide; otherwise routes
// through %eax like every other unary op.
func (g *Generator) complement(i tac.Instruction) {
	dst := operand(i.Dst)
	src := operand(i.Src1)
	if dst == src {
		g.line("\tnotl %s", dst)
		return
	}
	g.line("\tmovl %s, %%eax", src)
	g.line("\tnotl %%eax")
	g.line("\tmovl %%eax, %s", dst)
}

func (g *Generator) arith(op string, i tac.Instruction) {
	g.line("\tmovl %s, %%eax", operand(i.Src1))
	g.line("\t%s %s, %%eax", op, operand(i.Src2))
	g.line("\tmovl %%eax, %s", operand(i.Dst))
}

func (g *Generator) divmod(i tac.Instruction, result string) {
	g.line("\tmovl %s, %%eax", operand(i.Src1))
	g.line("\tcltd")
	g.line("\tidivl %s", operand(i.Src2))
	g.line("\tmovl %s, %s", result, operand(i.Dst))
}

func (g *Generator) relational(setcc string, i tac.Instruction) {
	g.line("\tmovl %s, %%eax", operand(i.Src1))
	g.line("\tcmpl %s, %%eax", operand(i.Src2))
	g.line("\t%s %%al", setcc)
	g.line("\tmovzbl %%al, %%eax")
	g.line("\tmovl %%eax, %s", operand(i.Dst))
}
