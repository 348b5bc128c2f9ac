package main

import (
	"fmt"
	"runtime"

	"cleric/arena"
	"cleric/ast"
	"cleric/codegen"
	"cleric/lexer"
	"cleric/parser"
	"cleric/sema"
	"cleric/tac"
	"cleric/token"
)

// hostTarget maps the running OS to a codegen.Target. codegen itself never
// reads runtime.GOOS; this is the one place that decision is made and
// threaded through explicitly.
func hostTarget() codegen.Target {
	if runtime.GOOS == "darwin" {
		return codegen.TargetDarwinAMD64
	}
	return codegen.TargetLinuxAMD64
}

// runLex scans source into a token stream. Each call interns lexemes
// through a fresh arena that lives only as long as this call.
func runLex(source string) ([]token.Token, error) {
	l := lexer.New(source, arena.New(4096, 0))
	return l.Scan()
}

func runParse(source string) (*ast.Program, error) {
	toks, err := runLex(source)
	if err != nil {
		return nil, err
	}
	return parser.New(toks).Parse()
}

func runValidate(source string) (*ast.Program, error) {
	prog, err := runParse(source)
	if err != nil {
		return nil, err
	}
	if err := sema.Validate(prog); err != nil {
		return nil, err
	}
	return prog, nil
}

func runLower(source string) (*tac.Program, error) {
	prog, err := runValidate(source)
	if err != nil {
		return nil, err
	}
	return tac.Lower(prog), nil
}

func runCodegen(source string) (string, error) {
	lowered, err := runLower(source)
	if err != nil {
		return "", err
	}
	return codegen.Generate(lowered, hostTarget()), nil
}

func dumpTokens(toks []token.Token) string {
	out := ""
	for _, t := range toks {
		out += fmt.Sprintf("%s\n", t.String())
	}
	return out
}
