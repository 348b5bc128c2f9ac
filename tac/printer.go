package tac

import (
	"fmt"
	"strings"
)

// Dump renders p in the `program:` / `  function <name>:` header style,
// with one instruction or label per line, each indented four spaces,
// terminated by `end program`.
func Dump(p *Program) string {
	var b strings.Builder
	b.WriteString("program:\n")
	fmt.Fprintf(&b, "  function %s:\n", p.Func.Name)
	for _, instr := range p.Func.Instructions.Slice() {
		b.WriteString(formatInstruction(instr))
		b.WriteByte('\n')
	}
	b.WriteString("end program\n")
	return b.String()
}

func formatInstruction(i Instruction) string {
	switch i.Op {
	case OpLabel:
		return fmt.Sprintf("    %s:", i.Label)
	case OpGoto:
		return fmt.Sprintf("    goto %s", i.Label)
	case OpIfFalseGoto:
		return fmt.Sprintf("    if-false %s goto %s", i.Cond, i.Label)
	case OpIfTrueGoto:
		return fmt.Sprintf("    if-true %s goto %s", i.Cond, i.Label)
	case OpReturn:
		return fmt.Sprintf("    return %s", i.Src1)
	case OpCopy:
		return fmt.Sprintf("    %s = %s", i.Dst, i.Src1)
	case OpNegate:
		return fmt.Sprintf("    %s = -%s", i.Dst, i.Src1)
	case OpComplement:
		return fmt.Sprintf("    %s = ~%s", i.Dst, i.Src1)
	case OpLogicalNot:
		return fmt.Sprintf("    %s = !%s", i.Dst, i.Src1)
	default:
		return fmt.Sprintf("    %s = %s %s %s", i.Dst, i.Src1, opSymbol(i.Op), i.Src2)
	}
}

func opSymbol(op Op) string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpMod:
		return "%"
	case OpLess:
		return "<"
	case OpGreater:
		return ">"
	case OpLessEqual:
		return "<="
	case OpGreaterEqual:
		return ">="
	case OpEqual:
		return "=="
	case OpNotEqual:
		return "!="
	default:
		return "?"
	}
}
