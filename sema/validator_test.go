package sema

import (
	"strconv"
	"testing"

	"cleric/arena"
	"cleric/ast"
	"cleric/lexer"
	"cleric/parser"
)

func mustParse(t *testing.T, src string) *ast.Program {
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
	return prog
}

func TestValidateAssignsUniqueTempIDs(t *testing.T) {
	prog := mustParse(t, "int main(void){int x; int y; return x + y;}")
	if err := Validate(prog); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	items := prog.Func.Body.Items
	x := items.At(0).(*ast.VarDecl)
	y := items.At(1).(*ast.VarDecl)
	if x.TempID == ast.NoTempID || y.TempID == ast.NoTempID {
		t.Fatal("expected both declarations to receive temp IDs")
	}
	if x.TempID == y.TempID {
		t.Errorf("expected distinct temp IDs, got %d and %d", x.TempID, y.TempID)
	}
	if x.Decorated != "x."+strconv.Itoa(x.TempID) {
		t.Errorf("got decorated name %q", x.Decorated)
	}
}

func TestValidateScopeDiscipline(t *testing.T) {
	// An Identifier's resolved temp ID must match its innermost enclosing
	// VarDecl of the same name.
	prog := mustParse(t, "int main(void){int x; return x;}")
	if err := Validate(prog); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	decl := prog.Func.Body.Items.At(0).(*ast.VarDecl)
	ret := prog.Func.Body.Items.At(1).(*ast.ReturnStmt)
	ident := ret.Expr.(*ast.Identifier)
	if ident.TempID != decl.TempID {
		t.Errorf("identifier resolved to temp %d, want %d", ident.TempID, decl.TempID)
	}
	if ident.Decorated != decl.Decorated {
		t.Errorf("identifier decorated %q, want %q", ident.Decorated, decl.Decorated)
	}
}

func TestValidateRedeclarationInSameScope(t *testing.T) {
	prog := mustParse(t, "int main(void){int x; int x; return 0;}")
	err := Validate(prog)
	if err == nil {
		t.Fatal("expected a redeclaration error")
	}
	semErr, ok := err.(Error)
	if !ok || semErr.Kind != Redeclaration {
		t.Errorf("got %#v, want Redeclaration", err)
	}
}

func TestValidateUndeclaredIdentifier(t *testing.T) {
	prog := mustParse(t, "int main(void){return x;}")
	err := Validate(prog)
	if err == nil {
		t.Fatal("expected an undeclared-identifier error")
	}
	semErr, ok := err.(Error)
	if !ok || semErr.Kind != UndeclaredIdentifier {
		t.Errorf("got %#v, want UndeclaredIdentifier", err)
	}
}

func TestValidateInvalidAssignmentTarget(t *testing.T) {
	prog := mustParse(t, "int main(void){5 = 3; return 0;}")
	err := Validate(prog)
	if err == nil {
		t.Fatal("expected an invalid-assignment-target error")
	}
	semErr, ok := err.(Error)
	if !ok || semErr.Kind != InvalidAssignmentTarget {
		t.Errorf("got %#v, want InvalidAssignmentTarget", err)
	}
}

func TestValidateUnknownType(t *testing.T) {
	// The lexer has no "float" keyword, so this reaches the parser as an
	// identifier in type position and fails there; unknown-type is instead
	// reached by constructing the AST directly.
	items := arena.NewList[ast.Stmt](1)
	items.Append(&ast.VarDecl{TypeName: "float", Name: "x", TempID: ast.NoTempID})
	prog := &ast.Program{
		Func: &ast.FuncDef{
			Name: "main",
			Body: &ast.Block{
				Items: items,
			},
		},
	}
	err := Validate(prog)
	if err == nil {
		t.Fatal("expected an unknown-type error")
	}
	semErr, ok := err.(Error)
	if !ok || semErr.Kind != UnknownType {
		t.Errorf("got %#v, want UnknownType", err)
	}
}

func TestValidateResolvesThroughFunctionAndBlockScopes(t *testing.T) {
	// The grammar has no nested block statements and the function-body
	// scope never holds a symbol, so shadowing cannot be written yet; this
	// exercises only the two-scope function/body structure: a declaration
	// in the body block resolves without error.
	prog := mustParse(t, "int main(void){int x; return x;}")
	if err := Validate(prog); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
