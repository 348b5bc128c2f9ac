package codegen

import (
	"strings"
	"testing"

	"cleric/arena"
	"cleric/lexer"
	"cleric/parser"
	"cleric/sema"
	"cleric/tac"
)

func generate(t *testing.T, src string) string {
	t.Helper()
	l := lexer.New(src, arena.New(256, 0))
	toks, err := l.Scan()
	if err != nil {
		t.Fatalf("lex error: %v", err)
	}
	prog, err := parser.New(toks).Parse()
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if err := sema.Validate(prog); err != nil {
		t.Fatalf("validate error: %v", err)
	}
	return Generate(tac.Lower(prog), TargetLinuxAMD64)
}

func TestFrameSizeFormula(t *testing.T) {
	cases := []struct {
		maxTemp int
		want    int
	}{
		{-1, 32},
		{0, 32},
		{1, 32},
		{3, 32},
		{4, 48},
		{7, 64},
	}
	for _, c := range cases {
		if got := frameSize(c.maxTemp); got != c.want {
			t.Errorf("frameSize(%d) = %d, want %d", c.maxTemp, got, c.want)
		}
	}
}

func TestGenerateReturnLiteral(t *testing.T) {
	out := generate(t, "int main(void){return 42;}")
	for _, want := range []string{"movl $42, %eax", "leave", "retq"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestGenerateNegation(t *testing.T) {
	out := generate(t, "int main(void){return -10;}")
	for _, want := range []string{"movl $10, %eax", "negl %eax", "movl %eax, -8(%rbp)", "movl -8(%rbp), %eax"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestGenerateNestedUnaryKeepsMinimalFrame(t *testing.T) {
	// ~(-2) only ever needs two temporaries (one per unary op; the literal
	// itself is an inline constant operand, not a temp), so the frame stays
	// at the 32-byte floor.
	out := generate(t, "int main(void){return ~(-2);}")
	if !strings.Contains(out, "subq $32, %rsp") {
		t.Errorf("expected minimal 32-byte frame:\n%s", out)
	}
	if !strings.Contains(out, "notl %eax") && !strings.Contains(out, "notl -16(%rbp)") {
		t.Errorf("expected a notl instruction for the complement:\n%s", out)
	}
}

func TestGenerateShortCircuitAndUsesTestJzJmp(t *testing.T) {
	out := generate(t, "int main(void){return 1 && 0;}")
	for _, want := range []string{"testl %eax, %eax", "jz ", "jmp "} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestGenerateVarDeclLiteralInitIsSingleStore(t *testing.T) {
	out := generate(t, "int main(void){int x = 10; return x;}")
	if n := strings.Count(out, "movl $10, -8(%rbp)"); n != 1 {
		t.Errorf("got %d occurrences of the literal store, want 1:\n%s", n, out)
	}
}

func TestGenerateChainedDeclarationsFrameSize(t *testing.T) {
	out := generate(t, "int main(void){int y = 5; int x = y + 2; return x;}")
	if !strings.Contains(out, "subq $32, %rsp") {
		t.Errorf("expected 32-byte frame for two temporaries:\n%s", out)
	}
}

func TestDarwinTargetPrependsUnderscore(t *testing.T) {
	l := lexer.New("int main(void){return 0;}", arena.New(256, 0))
	toks, _ := l.Scan()
	prog, _ := parser.New(toks).Parse()
	sema.Validate(prog)
	out := Generate(tac.Lower(prog), TargetDarwinAMD64)
	if !strings.Contains(out, "_main:") {
		t.Errorf("expected Mach-O symbol name _main:\n%s", out)
	}
}
